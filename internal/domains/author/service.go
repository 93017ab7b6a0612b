package author

import "context"

// Service defines the operations on the Authors collection.
type Service interface {
	// List returns every author in storage order.
	List(ctx context.Context) ([]Author, error)

	// GetByID errors: ErrInvalidID, ErrAuthorNotFound
	GetByID(ctx context.Context, id string) (*Author, error)

	// Create inserts a new author and returns its identifier.
	// Errors: ErrDuplicateEmail
	Create(ctx context.Context, req *AuthorRequest) (string, error)

	// Update overwrites the four fields and stamps updatedAt.
	// Succeeds when the stored data already equals the request.
	// Errors: ErrInvalidID, ErrAuthorNotFound, ErrDuplicateEmail
	Update(ctx context.Context, id string, req *AuthorRequest) error

	// Delete errors: ErrInvalidID, ErrAuthorNotFound
	Delete(ctx context.Context, id string) error
}
