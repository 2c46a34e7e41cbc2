package disk

import "github.com/pelletier/go-toml/v2"

// TOMLCodec persists values as TOML via github.com/pelletier/go-toml/v2.
type TOMLCodec struct{}

func (TOMLCodec) Name() string { return "toml" }
func (TOMLCodec) Ext() string  { return "toml" }

func (TOMLCodec) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func (TOMLCodec) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}
