package domain

import (
	"errors"
	"fmt"
)

// Error categories surfaced by the I/O layer. The core itself never fails.
var (
	ErrMissingFile         = errors.New("missing file")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	ErrIO                  = errors.New("i/o failure")
	ErrUnexpected          = errors.New("unexpected error")
)

// DocumentError records a failed operation on a document path.
type DocumentError struct {
	Op   string
	Path string
	// Kind is one of the category sentinels above.
	Kind error
	Err  error
}

// NewDocumentError builds a DocumentError of the given category.
func NewDocumentError(op, path string, kind, err error) *DocumentError {
	return &DocumentError{Op: op, Path: path, Kind: kind, Err: err}
}

func (e *DocumentError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the category and the underlying cause to errors.Is/As.
func (e *DocumentError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Category names the error category of err for operators.
func Category(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingFile):
		return "missing-file"
	case errors.Is(err, ErrUnsupportedEncoding):
		return "unsupported-encoding"
	case errors.Is(err, ErrIO):
		return "io-failure"
	default:
		return "unexpected"
	}
}
