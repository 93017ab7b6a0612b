package service

import (
	"context"
	"errors"
	"fmt"

	"library-api/internal/domains/book"
	"library-api/internal/storage"
)

type bookService struct {
	repo storage.Collection[book.Book]
}

func NewBookService(repo storage.Collection[book.Book]) book.Service {
	return &bookService{repo: repo}
}

func (s *bookService) List(ctx context.Context) ([]book.Book, error) {
	books, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

func (s *bookService) GetByID(ctx context.Context, id string) (*book.Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "failed to get book")
	}
	return b, nil
}

func (s *bookService) Create(ctx context.Context, req *book.BookRequest) (string, error) {
	id, err := s.repo.InsertOne(ctx, req.ToEntity())
	if err != nil {
		return "", translate(err, "failed to create book")
	}
	return id, nil
}

// Update answers nil both when fields changed and when the stored book
// already held the same values.
func (s *bookService) Update(ctx context.Context, id string, req *book.BookRequest) error {
	res, err := s.repo.UpdateByID(ctx, id, req.ToFields())
	if err != nil {
		return translate(err, "failed to update book")
	}
	if res.Matched == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (s *bookService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return translate(err, "failed to delete book")
	}
	if deleted == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func translate(err error, op string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return book.ErrBookNotFound
	case errors.Is(err, storage.ErrInvalidID):
		return book.ErrInvalidID
	case storage.IsDuplicateKey(err):
		return fmt.Errorf("%w: %w", book.ErrDuplicateISBN, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
