package author

import (
	"time"

	"library-api/internal/storage"
)

// AuthorRequest - body of POST /authors and PUT /authors/:id.
// Keys other than these four are ignored.
type AuthorRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Nationality *string `json:"nationality"`
	Email       *string `json:"email"`
}

// ToEntity builds the document to insert, stamped with createdAt.
func (req *AuthorRequest) ToEntity(now time.Time) *Author {
	return &Author{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Nationality: req.Nationality,
		Email:       req.Email,
		CreatedAt:   &now,
	}
}

// ToFields builds the field-set of a full update: every recognized field
// is written, so fields missing from the request become null.
func (req *AuthorRequest) ToFields(now time.Time) storage.Fields {
	return storage.Fields{
		"firstName":   req.FirstName,
		"lastName":    req.LastName,
		"nationality": req.Nationality,
		"email":       req.Email,
		"updatedAt":   now,
	}
}
