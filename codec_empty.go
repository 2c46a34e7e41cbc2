package disk

import "fmt"

// EmptyCodec writes a zero-length file regardless of the payload, and
// decodes only zero-length input (into the zero value). Typically used for
// file-based signals, where existence is the whole message. Files carry no
// extension.
type EmptyCodec struct{}

func (EmptyCodec) Name() string { return "empty" }
func (EmptyCodec) Ext() string  { return "" }

func (EmptyCodec) Marshal(any) ([]byte, error) {
	return []byte{}, nil
}

func (EmptyCodec) Unmarshal(data []byte, _ any) error {
	if len(data) != 0 {
		return fmt.Errorf("expected empty file, found %d bytes", len(data))
	}
	return nil
}
