package book

import "library-api/internal/storage"

// BookRequest - body of POST /books and PUT /books/:id.
type BookRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	ISBN   *string `json:"isbn"`
	Pages  *int    `json:"pages"`
}

func (req *BookRequest) ToEntity() *Book {
	return &Book{
		Title:  req.Title,
		Author: req.Author,
		ISBN:   req.ISBN,
		Pages:  req.Pages,
	}
}

// ToFields builds the field-set of a full update; absent fields become null.
func (req *BookRequest) ToFields() storage.Fields {
	return storage.Fields{
		"title":  req.Title,
		"author": req.Author,
		"isbn":   req.ISBN,
		"pages":  req.Pages,
	}
}
