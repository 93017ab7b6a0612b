package service

import (
	"context"
	"errors"
	"fmt"

	"library-api/internal/domains/user"
	"library-api/internal/storage"
)

type userService struct {
	repo storage.Collection[user.User]
}

func NewUserService(repo storage.Collection[user.User]) user.Service {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context) ([]user.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (user.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	switch {
	case err == nil:
		return *u, nil
	case errors.Is(err, storage.ErrNotFound):
		return nil, user.ErrUserNotFound
	case errors.Is(err, storage.ErrInvalidID):
		return nil, user.ErrInvalidID
	default:
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
}
