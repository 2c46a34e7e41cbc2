package disk

import "encoding/json"

// Codec defines the interface for converting a value between its in-memory
// form and the bytes written to disk. Encoding and decoding are delegated
// entirely to the underlying format library; no codec adds a schema layer.
type Codec interface {
	// Name identifies the codec in errors and logs.
	Name() string
	// Ext is the canonical file extension, without the dot. An empty
	// string means the file has no extension.
	Ext() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONCodec is the default Codec. Output is indented, so saved files stay
// readable and diffable.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }
func (JSONCodec) Ext() string  { return "json" }

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
