package disk

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Load and Stat when the bound file does not exist.
	ErrNotFound = errors.New("disk: file not found")

	// ErrInvalidBinding is returned when a Binding fails validation.
	ErrInvalidBinding = errors.New("disk: invalid binding")

	// ErrPathResolution is returned when a valid Binding cannot be turned
	// into an absolute path, e.g. when the OS base directory cannot be
	// determined from the environment.
	ErrPathResolution = errors.New("disk: path resolution failed")
)

// PathError reports that a Binding could not be resolved to an absolute path.
type PathError struct {
	Dir    Dir
	Reason string
	Err    error
}

func (e *PathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("disk: resolve %s directory: %s: %v", e.Dir, e.Reason, e.Err)
	}
	return fmt.Sprintf("disk: resolve %s directory: %s", e.Dir, e.Reason)
}

func (e *PathError) Unwrap() error { return e.Err }

func (e *PathError) Is(target error) bool { return target == ErrPathResolution }

// EncodeError wraps a codec failure while turning a value into bytes.
type EncodeError struct {
	Codec string
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("disk: %s encode: %v", e.Codec, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError wraps a codec failure while turning bytes back into a value.
type DecodeError struct {
	Codec string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("disk: %s decode: %v", e.Codec, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
