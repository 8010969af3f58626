package registry

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord indicates a country tuple without a usable code.
var ErrMalformedRecord = errors.New("malformed country record")

// ErrDuplicateYear indicates a country series with the same year twice.
var ErrDuplicateYear = errors.New("duplicate year in series")

// RecordError points at the offending tuple in the countries list.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("country record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
