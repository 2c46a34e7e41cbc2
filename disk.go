package disk

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/hinto-janai/disk/internal/fsio"
)

// Store is a persistence handle binding a value type T to one file on
// disk. The location comes from the Binding, the encoding from the
// configured Codec, and every operation resolves the path fresh, so a
// Store holds no filesystem state of its own.
//
// A Store is safe for concurrent use in the sense that readers never
// observe a torn write (saves are atomic), but concurrent savers are not
// ordered: the last rename wins.
type Store[T any] struct {
	binding Binding
	opts    *Options
}

// New creates a Store for type T. The binding is validated once, here;
// construction is the "declaration" step, after which Save and Load need
// no further path or format arguments.
func New[T any](binding Binding, opts ...Option) (*Store[T], error) {
	options := NewDefaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	if err := options.validate(); err != nil {
		return nil, fmt.Errorf("disk: invalid options: %w", err)
	}
	if err := binding.Validate(); err != nil {
		return nil, err
	}
	return &Store[T]{binding: binding, opts: options}, nil
}

// Binding returns the Store's binding.
func (s *Store[T]) Binding() Binding { return s.binding }

// Codec returns the Store's codec.
func (s *Store[T]) Codec() Codec { return s.opts.Codec }

// Path returns the absolute path of the bound file. The path is a pure
// function of the binding, the codec extension, and the OS environment.
func (s *Store[T]) Path() (string, error) {
	return s.binding.filePath(s.opts.Codec.Ext())
}

// Save encodes v and writes it to the bound path, creating intermediate
// directories as needed. The write is atomic: bytes go to a uniquely named
// temporary file in the target directory which is then renamed over the
// target, so a crash mid-write never leaves a half-written file under the
// final name. Returns the number of bytes written and the path.
func (s *Store[T]) Save(v T) (Metadata, error) {
	start := time.Now()
	md, err := s.save(v)
	if err != nil {
		s.opts.Metrics.IncSaveErrors()
		return Metadata{}, err
	}
	s.opts.Metrics.IncSaves()
	s.opts.Metrics.AddBytesWritten(md.Size)
	s.opts.Metrics.ObserveSaveLatency(time.Since(start))
	return md, nil
}

func (s *Store[T]) save(v T) (Metadata, error) {
	path, err := s.Path()
	if err != nil {
		return Metadata{}, err
	}

	data, err := s.opts.Codec.Marshal(v)
	if err != nil {
		return Metadata{}, &EncodeError{Codec: s.opts.Codec.Name(), Err: err}
	}
	if s.opts.Header != nil {
		data = s.opts.Header.prepend(data)
	}
	if s.opts.Gzip {
		data, err = fsio.Compress(data)
		if err != nil {
			return Metadata{}, fmt.Errorf("disk: gzip %s: %w", path, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), s.opts.DirMode); err != nil {
		return Metadata{}, fmt.Errorf("disk: create directories for %s: %w", path, err)
	}
	if err := fsio.WriteAtomic(path, data, s.opts.FileMode); err != nil {
		return Metadata{}, fmt.Errorf("disk: write %s: %w", path, err)
	}

	s.opts.Logger.Debug("saved file",
		"path", path, "codec", s.opts.Codec.Name(), "bytes", len(data), "gzip", s.opts.Gzip)
	return Metadata{Size: int64(len(data)), Path: path}, nil
}

// Load reads the bound file and decodes it into a fresh T. A missing file
// is reported as ErrNotFound (via errors.Is), never as a zero value.
func (s *Store[T]) Load() (T, error) {
	start := time.Now()
	v, n, err := s.load()
	if err != nil {
		s.opts.Metrics.IncLoadErrors()
		return v, err
	}
	s.opts.Metrics.IncLoads()
	s.opts.Metrics.AddBytesRead(n)
	s.opts.Metrics.ObserveLoadLatency(time.Since(start))
	return v, nil
}

func (s *Store[T]) load() (T, int64, error) {
	var zero T

	path, err := s.Path()
	if err != nil {
		return zero, 0, err
	}

	var data []byte
	if s.opts.MemoryMap {
		data, err = fsio.ReadFileMmap(path)
	} else {
		data, err = fsio.ReadFile(path)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zero, 0, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return zero, 0, fmt.Errorf("disk: read %s: %w", path, err)
	}
	read := int64(len(data))

	if s.opts.Gzip {
		data, err = fsio.Decompress(data)
		if err != nil {
			return zero, 0, fmt.Errorf("disk: gunzip %s: %w", path, err)
		}
	}
	if s.opts.Header != nil {
		data, err = s.opts.Header.strip(data)
		if err != nil {
			return zero, 0, &DecodeError{Codec: "header", Err: err}
		}
	}

	var v T
	if err := s.opts.Codec.Unmarshal(data, &v); err != nil {
		return zero, 0, &DecodeError{Codec: s.opts.Codec.Name(), Err: err}
	}

	s.opts.Logger.Debug("loaded file",
		"path", path, "codec", s.opts.Codec.Name(), "bytes", read, "gzip", s.opts.Gzip)
	return v, read, nil
}

// Stat reports the bound file's size and path, or ErrNotFound.
func (s *Store[T]) Stat() (Metadata, error) {
	path, err := s.Path()
	if err != nil {
		return Metadata{}, err
	}
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Metadata{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Metadata{}, fmt.Errorf("disk: stat %s: %w", path, err)
	}
	return Metadata{Size: fi.Size(), Path: path}, nil
}

// MkDir creates the directories leading up to the bound file and returns
// the directory path. Save does this implicitly; MkDir exists for callers
// that want the directory before the first save.
func (s *Store[T]) MkDir() (string, error) {
	dir, err := s.binding.basePath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, s.opts.DirMode); err != nil {
		return "", fmt.Errorf("disk: create %s: %w", dir, err)
	}
	return dir, nil
}

// Remove deletes the bound file. The file is renamed to a temporary
// sibling before deletion so a reader never observes a half-deleted file.
// A missing file is success, reported with zero Metadata.
func (s *Store[T]) Remove() (Metadata, error) {
	path, err := s.Path()
	if err != nil {
		return Metadata{}, err
	}

	size := fsio.FileSize(path)
	tmp := fmt.Sprintf("%s.rm.tmp", path)
	if err := os.Rename(path, tmp); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Metadata{Path: path}, nil
		}
		return Metadata{}, fmt.Errorf("disk: remove %s: %w", path, err)
	}
	if err := os.Remove(tmp); err != nil {
		return Metadata{}, fmt.Errorf("disk: remove %s: %w", tmp, err)
	}

	s.opts.Logger.Debug("removed file", "path", path, "bytes", size)
	return Metadata{Size: size, Path: path}, nil
}

// RemoveSub recursively deletes the top-most sub-directory of the binding,
// or the project directory when the binding has no sub-directories.
// The returned Size is the total size of the regular files removed.
// Symlinks are not followed.
func (s *Store[T]) RemoveSub() (Metadata, error) {
	dir, err := s.binding.subParentPath()
	if err != nil {
		return Metadata{}, err
	}
	return s.removeAll(dir)
}

// RemoveProject recursively deletes the whole project directory.
// The returned Size is the total size of the regular files removed.
// Symlinks are not followed.
func (s *Store[T]) RemoveProject() (Metadata, error) {
	dir, err := s.binding.projectDir()
	if err != nil {
		return Metadata{}, err
	}
	return s.removeAll(dir)
}

func (s *Store[T]) removeAll(dir string) (Metadata, error) {
	size := fsio.TreeSize(dir)
	if err := os.RemoveAll(dir); err != nil {
		return Metadata{}, fmt.Errorf("disk: remove %s: %w", dir, err)
	}
	s.opts.Logger.Debug("removed directory", "path", dir)
	return Metadata{Size: size, Path: dir}, nil
}

// CleanTmp deletes leftover temporary files from interrupted saves.
// Success when none exist.
func (s *Store[T]) CleanTmp() error {
	path, err := s.Path()
	if err != nil {
		return err
	}
	matches, err := filepath.Glob(fsio.TmpPattern(path))
	if err != nil {
		return fmt.Errorf("disk: glob temp files for %s: %w", path, err)
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("disk: remove temp file %s: %w", m, err)
		}
	}
	if len(matches) > 0 {
		s.opts.Logger.Debug("cleaned temp files", "path", path, "count", len(matches))
	}
	return nil
}

// FileBytes reads bytes [start, end) of the bound file without decoding.
// When gzip is enabled the range refers to the compressed on-disk bytes.
func (s *Store[T]) FileBytes(start, end int64) ([]byte, error) {
	path, err := s.Path()
	if err != nil {
		return nil, err
	}
	data, err := fsio.ReadRange(path, start, end, s.opts.MemoryMap)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("disk: read range of %s: %w", path, err)
	}
	return data, nil
}
