package disk

import "github.com/vmihailenco/msgpack/v5"

// MsgPackCodec uses the vmihailenco/msgpack library for serialization.
// It is generally faster and produces smaller files than JSON.
type MsgPackCodec struct{}

func (MsgPackCodec) Name() string { return "messagepack" }
func (MsgPackCodec) Ext() string  { return "msgpack" }

func (MsgPackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (MsgPackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
