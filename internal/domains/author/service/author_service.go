package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"library-api/internal/domains/author"
	"library-api/internal/storage"
)

// authorService implements author.Service on top of a document collection.
type authorService struct {
	repo storage.Collection[author.Author]
	now  func() time.Time
}

// NewAuthorService receives the collection from the container, so tests can
// pass an in-memory or mocked one.
func NewAuthorService(repo storage.Collection[author.Author]) author.Service {
	return &authorService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *authorService) List(ctx context.Context) ([]author.Author, error) {
	authors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, nil
}

func (s *authorService) GetByID(ctx context.Context, id string) (*author.Author, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "failed to get author")
	}
	return a, nil
}

func (s *authorService) Create(ctx context.Context, req *author.AuthorRequest) (string, error) {
	id, err := s.repo.InsertOne(ctx, req.ToEntity(s.now()))
	if err != nil {
		return "", translate(err, "failed to create author")
	}
	return id, nil
}

func (s *authorService) Update(ctx context.Context, id string, req *author.AuthorRequest) error {
	res, err := s.repo.UpdateByID(ctx, id, req.ToFields(s.now()))
	if err != nil {
		return translate(err, "failed to update author")
	}
	if res.Matched == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func (s *authorService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return translate(err, "failed to delete author")
	}
	if deleted == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

// translate maps storage errors to author errors and wraps the rest.
func translate(err error, op string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return author.ErrAuthorNotFound
	case errors.Is(err, storage.ErrInvalidID):
		return author.ErrInvalidID
	case storage.IsDuplicateKey(err):
		return fmt.Errorf("%w: %w", author.ErrDuplicateEmail, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
