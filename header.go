package disk

import "fmt"

// HeaderMagicLen is the fixed length of the magic portion of a Header.
const HeaderMagicLen = 24

// HeaderLen is the total number of bytes a Header occupies on disk:
// the magic bytes followed by one version byte.
const HeaderLen = HeaderMagicLen + 1

// Header is an optional identifying prefix for saved files: 24 magic bytes
// plus a single version byte. When configured via WithHeader, Save prepends
// it to the encoded bytes and Load verifies and strips it before decoding.
//
// When gzip is also enabled the header is compressed along with the
// payload, so the file must be decompressed before the header is visible.
type Header struct {
	Magic   [HeaderMagicLen]byte
	Version uint8
}

// prepend returns the header bytes followed by data.
func (h *Header) prepend(data []byte) []byte {
	out := make([]byte, 0, HeaderLen+len(data))
	out = append(out, h.Magic[:]...)
	out = append(out, h.Version)
	return append(out, data...)
}

// strip verifies the header at the front of data and returns the rest.
func (h *Header) strip(data []byte) ([]byte, error) {
	if len(data) < HeaderLen {
		return nil, fmt.Errorf("file shorter than %d header bytes: %d", HeaderLen, len(data))
	}
	if string(data[:HeaderMagicLen]) != string(h.Magic[:]) {
		return nil, fmt.Errorf("header magic mismatch: expected %v, found %v", h.Magic[:], data[:HeaderMagicLen])
	}
	if data[HeaderMagicLen] != h.Version {
		return nil, fmt.Errorf("header version mismatch: expected %d, found %d", h.Version, data[HeaderMagicLen])
	}
	return data[HeaderLen:], nil
}
