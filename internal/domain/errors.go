package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBareRepository = errors.New("repository has no working tree")
	ErrNotARepository = errors.New("not a git repository")
)

// Kinds of fatal read failures, matched with errors.Is
var (
	ErrDiffComputation = errors.New("diff computation failed")
	ErrMarkerRead      = errors.New("operation marker read failed")
	ErrRefRead         = errors.New("ref read failed")
	ErrStashRead       = errors.New("stash read failed")
)

// ReadError reports a failed repository read.
// errors.Is matches both Kind and the underlying cause.
type ReadError struct {
	Err  error
	Kind error
	Path string
}

// NewReadError wraps err as a read failure of the given kind
func NewReadError(kind error, path string, err error) *ReadError {
	return &ReadError{Err: err, Kind: kind, Path: path}
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%v in %s: %v", e.Kind, e.Path, e.Err)
}

func (e *ReadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// IsOutsideWorkTree reports whether err means there is no working tree to describe.
// Callers render an empty status for these instead of failing.
func IsOutsideWorkTree(err error) bool {
	return errors.Is(err, ErrNotARepository) || errors.Is(err, ErrBareRepository)
}
