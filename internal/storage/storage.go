// Package storage defines the engine-neutral document collection used by
// every domain. Backends (MongoDB, PostgreSQL JSONB, in-memory) live in
// sub-packages and translate their native errors into the errors declared
// here, so handlers never see driver-specific codes.
package storage

import "context"

// Fields is a field-set update: each key is overwritten with its value,
// other fields of the document are left untouched. A nil value stores null.
type Fields map[string]any

// UpdateResult reports how many documents matched the identifier and how
// many were actually changed by the update.
type UpdateResult struct {
	Matched  int64
	Modified int64
}

// Collection is a named group of documents of type T.
//
// T is a struct (or map) carrying its identifier under the "_id" key for
// both json and bson encodings. Identifiers are 24-character hexadecimal
// strings assigned by the store on insert.
type Collection[T any] interface {
	// Name returns the collection name.
	Name() string

	// FindAll returns every document in storage-native order.
	// The returned slice is never nil.
	FindAll(ctx context.Context) ([]T, error)

	// FindByID returns ErrNotFound if no document has the identifier.
	FindByID(ctx context.Context, id string) (*T, error)

	// InsertOne stores doc under a new identifier and returns it.
	// Errors: *DuplicateKeyError on unique constraint violation.
	InsertOne(ctx context.Context, doc *T) (string, error)

	// UpdateByID applies fields to the document with the identifier.
	// A zero Matched count means no such document.
	// Errors: *DuplicateKeyError on unique constraint violation.
	UpdateByID(ctx context.Context, id string, fields Fields) (UpdateResult, error)

	// DeleteByID removes the document and returns the number removed.
	DeleteByID(ctx context.Context, id string) (int64, error)
}

// CollectionSpec describes a collection independently of the engine:
// its name and the fields that must be unique across documents.
//
// Uniqueness only applies to documents where the field holds a string.
type CollectionSpec struct {
	Name         string
	UniqueFields []string
}
