package user

import "context"

// Service is the read-only surface over the users collection.
type Service interface {
	List(ctx context.Context) ([]User, error)

	// GetByID errors: ErrInvalidID, ErrUserNotFound
	GetByID(ctx context.Context, id string) (User, error)
}
