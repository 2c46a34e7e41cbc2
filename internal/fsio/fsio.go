// Package fsio holds the byte-level filesystem plumbing shared by every
// codec: atomic writes, gzip transforms, and plain or memory-mapped reads.
package fsio

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
)

// Rename is swapped out by tests to inject a failure between the temp-file
// write and the rename.
var Rename = os.Rename

// TmpPattern returns the glob matching the temporary siblings WriteAtomic
// creates for path.
func TmpPattern(path string) string {
	return path + ".*.tmp"
}

// WriteAtomic writes data to path by writing a uniquely named temporary
// file in the same directory and renaming it over the target. On any
// failure the temporary file is removed and the target is left in its
// prior state. The parent directory must already exist.
func WriteAtomic(path string, data []byte, mode fs.FileMode) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// ReadFile reads the whole file with a buffered read.
func ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ReadFileMmap reads the whole file through a memory map. The mapping is
// copied and unmapped before returning, so callers own the bytes.
func ReadFileMmap(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	// Zero-length mappings are invalid on most platforms.
	if fi.Size() == 0 {
		return []byte{}, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer m.Unmap()

	buf := make([]byte, len(m))
	copy(buf, m)
	return buf, nil
}

// ReadRange reads bytes [start, end) of the file.
func ReadRange(path string, start, end int64, useMmap bool) ([]byte, error) {
	if start < 0 || end < 0 || start > end {
		return nil, fmt.Errorf("invalid range [%d, %d)", start, end)
	}

	if useMmap {
		data, err := ReadFileMmap(path)
		if err != nil {
			return nil, err
		}
		if int64(len(data)) < end {
			return nil, fmt.Errorf("file length %d less than range end %d", len(data), end)
		}
		return data[start:end], nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, end-start)
	if _, err := f.ReadAt(buf, start); err != nil {
		return nil, err
	}
	return buf, nil
}

// Compress gzips data, favoring speed over ratio.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, gzip.BestSpeed)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress gunzips data.
func Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// FileSize returns the file size in bytes, or 0 on any error.
func FileSize(path string) int64 {
	fi, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return fi.Size()
}

// TreeSize returns the total size in bytes of all regular files under
// root, or 0 on any error. Symlinks are not followed.
func TreeSize(root string) int64 {
	var total int64
	err := filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			fi, err := d.Info()
			if err != nil {
				return err
			}
			total += fi.Size()
		}
		return nil
	})
	if err != nil {
		return 0
	}
	return total
}
