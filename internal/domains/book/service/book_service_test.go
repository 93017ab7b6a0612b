package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"library-api/internal/domains/book"
	"library-api/internal/storage"
	"library-api/internal/storage/storagetest"
)

const testID = "65a1f0c2b3d4e5f60718293a"

func newTestService() (book.Service, *storagetest.MockCollection[book.Book]) {
	repo := &storagetest.MockCollection[book.Book]{CollectionName: book.Collection.Name}
	return NewBookService(repo), repo
}

func TestCreate(t *testing.T) {
	svc, repo := newTestService()
	title, pages := "Dune", 412
	repo.On("InsertOne", mock.Anything, &book.Book{Title: &title, Pages: &pages}).Return(testID, nil)

	id, err := svc.Create(context.Background(), &book.BookRequest{Title: &title, Pages: &pages})
	require.NoError(t, err)
	assert.Equal(t, testID, id)
	repo.AssertExpectations(t)
}

func TestCreateDuplicateISBN(t *testing.T) {
	svc, repo := newTestService()
	repo.On("InsertOne", mock.Anything, mock.Anything).
		Return("", &storage.DuplicateKeyError{Collection: "Books", Field: "isbn"})

	_, err := svc.Create(context.Background(), &book.BookRequest{})
	assert.ErrorIs(t, err, book.ErrDuplicateISBN)
}

func TestUpdate(t *testing.T) {
	svc, repo := newTestService()
	title := "Dune Messiah"
	repo.On("UpdateByID", mock.Anything, testID, storage.Fields{
		"title":  &title,
		"author": (*string)(nil),
		"isbn":   (*string)(nil),
		"pages":  (*int)(nil),
	}).Return(storage.UpdateResult{Matched: 1}, nil)

	require.NoError(t, svc.Update(context.Background(), testID, &book.BookRequest{Title: &title}))
	repo.AssertExpectations(t)
}

func TestUpdateNotFound(t *testing.T) {
	svc, repo := newTestService()
	repo.On("UpdateByID", mock.Anything, testID, mock.Anything).Return(storage.UpdateResult{}, nil)

	assert.ErrorIs(t, svc.Update(context.Background(), testID, &book.BookRequest{}), book.ErrBookNotFound)
}

func TestGetAndDeleteErrors(t *testing.T) {
	svc, repo := newTestService()
	boom := errors.New("timeout")
	repo.On("FindByID", mock.Anything, "bad").Return(nil, storage.ErrInvalidID)
	repo.On("FindByID", mock.Anything, testID).Return(nil, storage.ErrNotFound)
	repo.On("DeleteByID", mock.Anything, testID).Return(int64(0), boom)

	_, err := svc.GetByID(context.Background(), "bad")
	assert.ErrorIs(t, err, book.ErrInvalidID)

	_, err = svc.GetByID(context.Background(), testID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	err = svc.Delete(context.Background(), testID)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, book.ErrBookNotFound)
}

func TestList(t *testing.T) {
	svc, repo := newTestService()
	title := "Dune"
	repo.On("FindAll", mock.Anything).Return([]book.Book{{ID: testID, Title: &title}}, nil)

	books, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, testID, books[0].ID)
}
