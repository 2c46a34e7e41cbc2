package disk

import "fmt"

// Metadata describes the outcome of an operation that touched the
// filesystem: how many bytes were written, read or removed, and where.
type Metadata struct {
	Size int64
	Path string
}

func (m Metadata) String() string {
	return fmt.Sprintf("%d bytes @ %s", m.Size, m.Path)
}
