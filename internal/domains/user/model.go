package user

import "library-api/internal/storage"

// Collection is the storage layout of users. Documents are written by
// another system; this service only reads them.
var Collection = storage.CollectionSpec{Name: "users"}

// User is an opaque document; only its "_id" key is known here.
type User map[string]any
