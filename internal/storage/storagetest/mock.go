// Package storagetest provides a testify mock of storage.Collection.
package storagetest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"library-api/internal/storage"
)

type MockCollection[T any] struct {
	mock.Mock
	CollectionName string
}

var _ storage.Collection[struct{}] = (*MockCollection[struct{}])(nil)

func (m *MockCollection[T]) Name() string {
	return m.CollectionName
}

func (m *MockCollection[T]) FindAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	docs, _ := args.Get(0).([]T)
	return docs, args.Error(1)
}

func (m *MockCollection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	doc, _ := args.Get(0).(*T)
	return doc, args.Error(1)
}

func (m *MockCollection[T]) InsertOne(ctx context.Context, doc *T) (string, error) {
	args := m.Called(ctx, doc)
	return args.String(0), args.Error(1)
}

func (m *MockCollection[T]) UpdateByID(ctx context.Context, id string, fields storage.Fields) (storage.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	res, _ := args.Get(0).(storage.UpdateResult)
	return res, args.Error(1)
}

func (m *MockCollection[T]) DeleteByID(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}
