package book

import "library-api/internal/storage"

// Collection is the storage layout of books: isbn must be unique.
var Collection = storage.CollectionSpec{
	Name:         "Books",
	UniqueFields: []string{"isbn"},
}

// Book is a document of the Books collection. Author is free text, not a
// reference to the Authors collection.
type Book struct {
	ID     string  `json:"_id,omitempty" bson:"_id,omitempty"`
	Title  *string `json:"title" bson:"title"`
	Author *string `json:"author" bson:"author"`
	ISBN   *string `json:"isbn" bson:"isbn"`
	Pages  *int    `json:"pages" bson:"pages"`
}
