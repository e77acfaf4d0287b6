package awkio

import (
	"errors"
	"fmt"
)

// FieldError reports a failed field or column lookup: a positional
// index outside the record, a key absent from the header, or a lookup
// by name on a source with no header configured.
type FieldError struct {
	Key      string // the key or index as written
	NoHeader bool   // lookup by name on a headerless source
}

func (e *FieldError) Error() string {
	if e.NoHeader {
		return fmt.Sprintf("field %q: no header configured", e.Key)
	}
	return fmt.Sprintf("no field %s in record", e.Key)
}

// IsFieldError reports whether err is a FieldError.
// Returns (e, true) if err is or wraps a FieldError, or (nil, false) otherwise.
func IsFieldError(err error) (*FieldError, bool) {
	var e *FieldError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// ErrClosed is returned by Read after the Reader has been explicitly closed.
var ErrClosed = errors.New("awkio: reader is closed")

// fieldErrorIndex builds a FieldError for an out-of-range positional index.
func fieldErrorIndex(i int) *FieldError {
	return &FieldError{Key: fmt.Sprintf("%d", i)}
}
