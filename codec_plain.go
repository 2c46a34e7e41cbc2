package disk

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// PlainCodec persists a value as plain UTF-8 text. The payload must be a
// single string-like scalar: a string, a bool, an integer, a float, or any
// type implementing encoding.TextMarshaler / encoding.TextUnmarshaler.
// Anything else fails to encode.
//
// Floats round-trip through their shortest decimal representation, so exact
// bit patterns are preserved but formatting is not caller-controlled.
type PlainCodec struct{}

func (PlainCodec) Name() string { return "plain" }
func (PlainCodec) Ext() string  { return "txt" }

func (PlainCodec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(encoding.TextMarshaler); ok {
		return m.MarshalText()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return []byte(rv.String()), nil
	case reflect.Bool:
		return strconv.AppendBool(nil, rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.AppendInt(nil, rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.AppendUint(nil, rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.AppendFloat(nil, rv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.AppendFloat(nil, rv.Float(), 'g', -1, 64), nil
	}
	return nil, fmt.Errorf("%T is not a string-like scalar", v)
}

func (PlainCodec) Unmarshal(data []byte, v any) error {
	if u, ok := v.(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText(data)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("target %T is not a non-nil pointer", v)
	}
	elem := rv.Elem()
	s := strings.TrimSuffix(string(data), "\n")

	switch elem.Kind() {
	case reflect.String:
		elem.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		elem.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, elem.Type().Bits())
		if err != nil {
			return err
		}
		elem.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, elem.Type().Bits())
		if err != nil {
			return err
		}
		elem.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, elem.Type().Bits())
		if err != nil {
			return err
		}
		elem.SetFloat(f)
	default:
		return fmt.Errorf("%T is not a string-like scalar", v)
	}
	return nil
}
