package disk

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	maxSegmentLen = 255
	maxTotalLen   = 4000
	maxSubDepth   = 10
)

// Binding associates a value with one on-disk location: a base directory
// kind, a project name, optional sub-directories, and a file stem. The file
// extension comes from the codec, not the Binding.
//
// A Binding is a plain immutable value; it is validated once when a Store is
// constructed and never mutated afterwards.
type Binding struct {
	// Dir selects the OS base directory the file lives under.
	Dir Dir

	// Root is the absolute base directory used when Dir is DirCustom.
	// Ignored for every other kind.
	Root string

	// Project is the project directory name. It is lower-cased when
	// building the path, so "MyProject" ends up as ".../myproject/...".
	Project string

	// Sub is an optional slash-separated chain of sub-directories between
	// the project directory and the file. Empty means the file sits
	// directly under the project directory.
	Sub string

	// File is the file stem, without extension.
	File string
}

// Validate checks the Binding against the path rules. All failures wrap
// ErrInvalidBinding.
func (b Binding) Validate() error {
	if b.Project == "" {
		return fmt.Errorf("%w: project must not be empty", ErrInvalidBinding)
	}
	if b.File == "" {
		return fmt.Errorf("%w: file stem must not be empty", ErrInvalidBinding)
	}
	if len(b.Project) > maxSegmentLen {
		return fmt.Errorf("%w: project longer than %d bytes", ErrInvalidBinding, maxSegmentLen)
	}
	if len(b.File) > maxSegmentLen {
		return fmt.Errorf("%w: file stem longer than %d bytes", ErrInvalidBinding, maxSegmentLen)
	}
	if len(b.Project)+len(b.Sub)+len(b.File) > maxTotalLen {
		return fmt.Errorf("%w: combined path segments longer than %d bytes", ErrInvalidBinding, maxTotalLen)
	}
	if err := validSegment("project", b.Project); err != nil {
		return err
	}
	if err := validSegment("file stem", b.File); err != nil {
		return err
	}

	if b.Sub != "" {
		segs := strings.Split(b.Sub, "/")
		if len(segs) > maxSubDepth {
			return fmt.Errorf("%w: sub-directories deeper than %d levels", ErrInvalidBinding, maxSubDepth)
		}
		for _, s := range segs {
			if s == "" {
				return fmt.Errorf("%w: empty sub-directory segment", ErrInvalidBinding)
			}
			if len(s) > maxSegmentLen {
				return fmt.Errorf("%w: sub-directory segment longer than %d bytes", ErrInvalidBinding, maxSegmentLen)
			}
			if err := validSegment("sub-directory", s); err != nil {
				return err
			}
		}
	}

	if b.Dir == DirCustom {
		if b.Root == "" {
			return fmt.Errorf("%w: custom directory requires a root", ErrInvalidBinding)
		}
		if !filepath.IsAbs(b.Root) {
			return fmt.Errorf("%w: custom root %q is not absolute", ErrInvalidBinding, b.Root)
		}
	}
	return nil
}

// validSegment rejects anything that would escape or corrupt the resolved
// path. "." and ".." are rejected rather than interpreted; an empty Sub is
// the only way to say "no sub-directory".
func validSegment(what, s string) error {
	if s == "." || s == ".." {
		return fmt.Errorf("%w: %s must not be %q", ErrInvalidBinding, what, s)
	}
	if strings.ContainsAny(s, "/\\\x00") {
		return fmt.Errorf("%w: %s %q contains a path separator", ErrInvalidBinding, what, s)
	}
	return nil
}

// subSegments returns the sub-directory chain, nil when none is set.
func (b Binding) subSegments() []string {
	if b.Sub == "" {
		return nil
	}
	return strings.Split(b.Sub, "/")
}

// projectDir resolves the base directory and appends the lower-cased
// project segment.
func (b Binding) projectDir() (string, error) {
	base, err := b.Dir.resolve(b.Root)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, strings.ToLower(b.Project)), nil
}

// basePath is the directory that holds the file: project directory plus all
// sub-directories.
func (b Binding) basePath() (string, error) {
	dir, err := b.projectDir()
	if err != nil {
		return "", err
	}
	for _, s := range b.subSegments() {
		dir = filepath.Join(dir, s)
	}
	return dir, nil
}

// subParentPath is the top-most sub-directory, or the project directory when
// no sub-directories are set. RemoveSub deletes from here down.
func (b Binding) subParentPath() (string, error) {
	dir, err := b.projectDir()
	if err != nil {
		return "", err
	}
	if segs := b.subSegments(); len(segs) > 0 {
		dir = filepath.Join(dir, segs[0])
	}
	return dir, nil
}

// fileName joins the stem with a codec extension. An empty extension
// produces no trailing dot.
func (b Binding) fileName(ext string) string {
	if ext == "" {
		return b.File
	}
	return b.File + "." + ext
}

// filePath is the absolute path of the bound file for the given extension.
func (b Binding) filePath(ext string) (string, error) {
	dir, err := b.basePath()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, b.fileName(ext))
	if !filepath.IsAbs(path) {
		return "", &PathError{Dir: b.Dir, Reason: fmt.Sprintf("resolved path %q is not absolute", path)}
	}
	return path, nil
}
