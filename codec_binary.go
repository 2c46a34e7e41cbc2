package disk

import (
	"encoding"
	"fmt"
	"reflect"
)

// BinaryCodec persists raw bytes. The payload must either be a []byte (or a
// type whose underlying type is []byte) or implement
// encoding.BinaryMarshaler / encoding.BinaryUnmarshaler.
type BinaryCodec struct{}

func (BinaryCodec) Name() string { return "binary" }
func (BinaryCodec) Ext() string  { return "bin" }

func (BinaryCodec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(encoding.BinaryMarshaler); ok {
		return m.MarshalBinary()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return rv.Bytes(), nil
	}
	return nil, fmt.Errorf("%T is neither []byte nor encoding.BinaryMarshaler", v)
}

func (BinaryCodec) Unmarshal(data []byte, v any) error {
	if u, ok := v.(encoding.BinaryUnmarshaler); ok {
		return u.UnmarshalBinary(data)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		elem := rv.Elem()
		if elem.Kind() == reflect.Slice && elem.Type().Elem().Kind() == reflect.Uint8 {
			buf := make([]byte, len(data))
			copy(buf, data)
			elem.SetBytes(buf)
			return nil
		}
	}
	return fmt.Errorf("target %T is neither *[]byte nor encoding.BinaryUnmarshaler", v)
}
