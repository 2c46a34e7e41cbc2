package disk

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Name   string   `json:"name" toml:"name" yaml:"name" msgpack:"name" bson:"name"`
	Number int      `json:"number" toml:"number" yaml:"number" msgpack:"number" bson:"number"`
	Tags   []string `json:"tags" toml:"tags" yaml:"tags" msgpack:"tags" bson:"tags"`
}

func TestCodec_RoundTrip(t *testing.T) {
	record := testRecord{Name: "alice", Number: 7, Tags: []string{"a", "b"}}

	codecs := []Codec{
		JSONCodec{},
		TOMLCodec{},
		YAMLCodec{},
		MsgPackCodec{},
		BSONCodec{},
		GobCodec{},
	}

	for _, c := range codecs {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(record)
			require.NoError(t, err)
			require.NotEmpty(t, data)

			var out testRecord
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, record, out)
		})
	}
}

func TestCodec_Extensions(t *testing.T) {
	expected := map[string]string{
		"json":        "json",
		"toml":        "toml",
		"yaml":        "yaml",
		"messagepack": "msgpack",
		"bson":        "bson",
		"gob":         "gob",
		"plain":       "txt",
		"binary":      "bin",
		"empty":       "",
	}
	codecs := []Codec{
		JSONCodec{}, TOMLCodec{}, YAMLCodec{}, MsgPackCodec{},
		BSONCodec{}, GobCodec{}, PlainCodec{}, BinaryCodec{}, EmptyCodec{},
	}
	for _, c := range codecs {
		assert.Equal(t, expected[c.Name()], c.Ext(), c.Name())
	}
}

// semver implements encoding.TextMarshaler/TextUnmarshaler on purpose with
// value receivers for marshal and pointer receivers for unmarshal.
type semver struct {
	Major, Minor int
}

func (v semver) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)), nil
}

func (v *semver) UnmarshalText(data []byte) error {
	parts := strings.SplitN(string(data), ".", 2)
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return err
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return err
	}
	v.Major, v.Minor = major, minor
	return nil
}

func TestPlainCodec(t *testing.T) {
	c := PlainCodec{}

	t.Run("string", func(t *testing.T) {
		data, err := c.Marshal("hello world")
		require.NoError(t, err)
		assert.Equal(t, "hello world", string(data))

		var out string
		require.NoError(t, c.Unmarshal(data, &out))
		assert.Equal(t, "hello world", out)
	})

	t.Run("int", func(t *testing.T) {
		data, err := c.Marshal(-42)
		require.NoError(t, err)
		assert.Equal(t, "-42", string(data))

		var out int
		require.NoError(t, c.Unmarshal(data, &out))
		assert.Equal(t, -42, out)
	})

	t.Run("uint", func(t *testing.T) {
		data, err := c.Marshal(uint16(9000))
		require.NoError(t, err)

		var out uint16
		require.NoError(t, c.Unmarshal(data, &out))
		assert.Equal(t, uint16(9000), out)
	})

	t.Run("float round-trips exactly", func(t *testing.T) {
		data, err := c.Marshal(3.140625)
		require.NoError(t, err)

		var out float64
		require.NoError(t, c.Unmarshal(data, &out))
		assert.Equal(t, 3.140625, out)
	})

	t.Run("bool", func(t *testing.T) {
		data, err := c.Marshal(true)
		require.NoError(t, err)
		assert.Equal(t, "true", string(data))

		var out bool
		require.NoError(t, c.Unmarshal(data, &out))
		assert.True(t, out)
	})

	t.Run("text marshaler", func(t *testing.T) {
		data, err := c.Marshal(semver{Major: 1, Minor: 4})
		require.NoError(t, err)
		assert.Equal(t, "1.4", string(data))

		var out semver
		require.NoError(t, c.Unmarshal(data, &out))
		assert.Equal(t, semver{Major: 1, Minor: 4}, out)
	})

	t.Run("trailing newline tolerated", func(t *testing.T) {
		var out int
		require.NoError(t, c.Unmarshal([]byte("7\n"), &out))
		assert.Equal(t, 7, out)
	})

	t.Run("non-scalar rejected", func(t *testing.T) {
		_, err := c.Marshal(testRecord{})
		assert.Error(t, err)

		var out testRecord
		assert.Error(t, c.Unmarshal([]byte("x"), &out))
	})
}

// blob implements encoding.BinaryMarshaler/BinaryUnmarshaler.
type blob struct {
	b []byte
}

func (b blob) MarshalBinary() ([]byte, error) { return b.b, nil }

func (b *blob) UnmarshalBinary(data []byte) error {
	b.b = append([]byte(nil), data...)
	return nil
}

func TestBinaryCodec(t *testing.T) {
	c := BinaryCodec{}

	t.Run("byte slice passthrough", func(t *testing.T) {
		in := []byte{0x00, 0x01, 0xff}
		data, err := c.Marshal(in)
		require.NoError(t, err)
		assert.Equal(t, in, data)

		var out []byte
		require.NoError(t, c.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("binary marshaler", func(t *testing.T) {
		data, err := c.Marshal(blob{b: []byte("raw")})
		require.NoError(t, err)

		var out blob
		require.NoError(t, c.Unmarshal(data, &out))
		assert.Equal(t, []byte("raw"), out.b)
	})

	t.Run("unsupported type rejected", func(t *testing.T) {
		_, err := c.Marshal(42)
		assert.Error(t, err)

		var out int
		assert.Error(t, c.Unmarshal([]byte{1}, &out))
	})
}

func TestEmptyCodec(t *testing.T) {
	c := EmptyCodec{}

	t.Run("always encodes zero bytes", func(t *testing.T) {
		data, err := c.Marshal(testRecord{Name: "ignored"})
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("decodes only empty input", func(t *testing.T) {
		var out testRecord
		assert.NoError(t, c.Unmarshal(nil, &out))
		assert.Error(t, c.Unmarshal([]byte{0}, &out))
	})
}
