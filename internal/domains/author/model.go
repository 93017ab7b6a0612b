package author

import (
	"time"

	"library-api/internal/storage"
)

// Collection is the storage layout of authors: email must be unique.
var Collection = storage.CollectionSpec{
	Name:         "Authors",
	UniqueFields: []string{"email"},
}

// Author is a document of the Authors collection.
// Text fields are pointers so that a missing value is stored as null.
type Author struct {
	ID          string     `json:"_id,omitempty" bson:"_id,omitempty"`
	FirstName   *string    `json:"firstName" bson:"firstName"`
	LastName    *string    `json:"lastName" bson:"lastName"`
	Nationality *string    `json:"nationality" bson:"nationality"`
	Email       *string    `json:"email" bson:"email"`
	CreatedAt   *time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
