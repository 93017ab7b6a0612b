package author

import "errors"

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrDuplicateEmail = errors.New("author with this email already exists")
	ErrInvalidID      = errors.New("invalid author id")
)
