package book

import "context"

// Service defines the operations on the Books collection.
type Service interface {
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id string) (*Book, error)
	Create(ctx context.Context, req *BookRequest) (string, error)
	Update(ctx context.Context, id string, req *BookRequest) error
	Delete(ctx context.Context, id string) error
}
