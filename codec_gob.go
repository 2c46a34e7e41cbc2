package disk

import (
	"bytes"
	"encoding/gob"
)

// GobCodec persists values with encoding/gob, Go's native self-describing
// binary encoding. Useful for Go-to-Go persistence where neither human
// readability nor cross-language access matters.
type GobCodec struct{}

func (GobCodec) Name() string { return "gob" }
func (GobCodec) Ext() string  { return "gob" }

func (GobCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (GobCodec) Unmarshal(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
