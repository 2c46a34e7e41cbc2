package disk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Run("path error is a resolution failure, not a binding failure", func(t *testing.T) {
		err := &PathError{Dir: DirData, Reason: "base directory could not be determined"}
		assert.ErrorIs(t, err, ErrPathResolution)
		assert.NotErrorIs(t, err, ErrInvalidBinding)
		assert.Contains(t, err.Error(), "data")
	})

	t.Run("path error unwraps cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := &PathError{Dir: DirCache, Reason: "lookup failed", Err: cause}
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("encode error unwraps cause", func(t *testing.T) {
		cause := errors.New("bad value")
		err := &EncodeError{Codec: "toml", Err: cause}
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "toml")
	})

	t.Run("decode error unwraps cause", func(t *testing.T) {
		cause := errors.New("bad bytes")
		err := &DecodeError{Codec: "yaml", Err: cause}
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "yaml")
	})
}

func TestDir_String(t *testing.T) {
	testCases := []struct {
		dir  Dir
		want string
	}{
		{DirData, "data"},
		{DirDataLocal, "data-local"},
		{DirConfig, "config"},
		{DirCache, "cache"},
		{DirState, "state"},
		{DirPreference, "preference"},
		{DirDownload, "download"},
		{DirCustom, "custom"},
		{Dir(99), "unknown"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.dir.String())
	}
}

func TestDir_Resolve(t *testing.T) {
	t.Run("unknown kind fails", func(t *testing.T) {
		_, err := Dir(99).resolve("")
		assert.ErrorIs(t, err, ErrPathResolution)
	})

	t.Run("custom requires root", func(t *testing.T) {
		_, err := DirCustom.resolve("")
		assert.ErrorIs(t, err, ErrPathResolution)
	})

	t.Run("xdg kinds resolve", func(t *testing.T) {
		for _, d := range []Dir{DirData, DirDataLocal, DirConfig, DirCache, DirState, DirPreference} {
			base, err := d.resolve("")
			assert.NoError(t, err, d.String())
			assert.NotEmpty(t, base, d.String())
		}
	})
}
