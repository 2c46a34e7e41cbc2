package disk

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
)

const (
	defaultFileMode fs.FileMode = 0o644
	defaultDirMode  fs.FileMode = 0o755
)

// Options contains all configuration for a Store.
type Options struct {
	// Codec turns values into bytes and back. Defaults to JSONCodec.
	Codec Codec
	// Gzip compresses the encoded bytes before writing and decompresses
	// before decoding. The file extension is unchanged.
	Gzip bool
	// MemoryMap makes Load and FileBytes read through a memory map
	// instead of buffered reads. Useful for large files.
	MemoryMap bool
	// Header, when non-nil, prefixes every file with 24 magic bytes and a
	// version byte, verified on load. Applied before compression.
	Header *Header
	// Logger receives per-operation debug events. Defaults to a discard
	// handler.
	Logger *slog.Logger
	// Metrics receives operation counters and latencies.
	Metrics Metrics
	// FileMode is the permission mode for created files. Default 0644.
	FileMode fs.FileMode
	// DirMode is the permission mode for created directories. Default 0755.
	DirMode fs.FileMode
}

// Option is a function to configure Options.
type Option func(*Options)

// NewDefaultOptions creates a default configuration.
func NewDefaultOptions() *Options {
	return &Options{
		Codec:    JSONCodec{},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics:  &noOpMetrics{},
		FileMode: defaultFileMode,
		DirMode:  defaultDirMode,
	}
}

func (o *Options) validate() error {
	if o.Codec == nil {
		return errors.New("codec must not be nil")
	}
	if o.Logger == nil {
		return errors.New("logger must not be nil")
	}
	if o.Metrics == nil {
		return errors.New("metrics must not be nil")
	}
	if o.FileMode == 0 {
		return errors.New("file mode must not be zero")
	}
	if o.DirMode == 0 {
		return errors.New("dir mode must not be zero")
	}
	return nil
}

// WithCodec selects the serialization format. Defaults to JSONCodec.
func WithCodec(c Codec) Option {
	return func(o *Options) { o.Codec = c }
}

// WithGzip enables transparent gzip compression.
func WithGzip() Option {
	return func(o *Options) { o.Gzip = true }
}

// WithMemoryMap enables memory-mapped reads.
func WithMemoryMap() Option {
	return func(o *Options) { o.MemoryMap = true }
}

// WithHeader prefixes files with an identifying magic + version header.
func WithHeader(magic [HeaderMagicLen]byte, version uint8) Option {
	return func(o *Options) { o.Header = &Header{Magic: magic, Version: version} }
}

// WithLogger allows integrating the application's logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics allows integrating a metrics system.
func WithMetrics(m Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithFileMode sets the permission mode for created files.
func WithFileMode(mode fs.FileMode) Option {
	return func(o *Options) { o.FileMode = mode }
}

// WithDirMode sets the permission mode for created directories.
func WithDirMode(mode fs.FileMode) Option {
	return func(o *Options) { o.DirMode = mode }
}
