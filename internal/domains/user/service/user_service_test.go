package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"library-api/internal/domains/user"
	"library-api/internal/storage"
	"library-api/internal/storage/storagetest"
)

const testID = "65a1f0c2b3d4e5f60718293a"

func TestGetByID(t *testing.T) {
	repo := &storagetest.MockCollection[user.User]{}
	svc := NewUserService(repo)

	repo.On("FindByID", mock.Anything, testID).Return(&user.User{"_id": testID, "username": "ada"}, nil).Once()
	u, err := svc.GetByID(context.Background(), testID)
	require.NoError(t, err)
	assert.Equal(t, "ada", u["username"])

	repo.On("FindByID", mock.Anything, testID).Return(nil, storage.ErrNotFound).Once()
	_, err = svc.GetByID(context.Background(), testID)
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	repo.On("FindByID", mock.Anything, "nope").Return(nil, storage.ErrInvalidID).Once()
	_, err = svc.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, user.ErrInvalidID)
}

func TestList(t *testing.T) {
	repo := &storagetest.MockCollection[user.User]{}
	svc := NewUserService(repo)
	boom := errors.New("down")

	repo.On("FindAll", mock.Anything).Return([]user.User{{"username": "ada"}}, nil).Once()
	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)

	repo.On("FindAll", mock.Anything).Return(nil, boom).Once()
	_, err = svc.List(context.Background())
	assert.ErrorIs(t, err, boom)
}
