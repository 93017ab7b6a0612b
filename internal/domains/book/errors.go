package book

import "errors"

var (
	ErrBookNotFound  = errors.New("book not found")
	ErrDuplicateISBN = errors.New("book with this isbn already exists")
	ErrInvalidID     = errors.New("invalid book id")
)
