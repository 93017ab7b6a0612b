package storage

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("invalid document identifier")
)

// DuplicateKeyError is returned when a write violates a unique field.
type DuplicateKeyError struct {
	Collection string
	Field      string // empty when the engine does not report it
	Err        error
}

func (e *DuplicateKeyError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("duplicate key in collection %q", e.Collection)
	}
	return fmt.Sprintf("duplicate key in collection %q on field %q", e.Collection, e.Field)
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

// IsDuplicateKey reports whether err is or wraps a *DuplicateKeyError.
func IsDuplicateKey(err error) bool {
	var dup *DuplicateKeyError
	return errors.As(err, &dup)
}
