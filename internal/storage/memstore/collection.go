// Package memstore is an in-memory storage.Collection used for local
// development (memory:// connection string) and handler tests.
package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-api/internal/storage"
)

const idField = "_id"

// document is the JSON-normalized form of a stored value.
type document map[string]any

type collection[T any] struct {
	spec storage.CollectionSpec

	mu    sync.RWMutex
	order []string
	docs  map[string]document
}

// NewCollection creates an empty collection enforcing spec.UniqueFields.
func NewCollection[T any](spec storage.CollectionSpec) storage.Collection[T] {
	return &collection[T]{
		spec: spec,
		docs: make(map[string]document),
	}
}

func (c *collection[T]) Name() string {
	return c.spec.Name
}

func (c *collection[T]) FindAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		var v T
		if err := decode(c.docs[id], &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (c *collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !primitive.IsValidObjectID(id) {
		return nil, storage.ErrInvalidID
	}
	id = strings.ToLower(id)

	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.docs[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	var v T
	if err := decode(doc, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *collection[T]) InsertOne(ctx context.Context, v *T) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := encode(v)
	if err != nil {
		return "", err
	}

	id := primitive.NewObjectID().Hex()
	doc[idField] = id

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkUnique(doc, ""); err != nil {
		return "", err
	}

	c.docs[id] = doc
	c.order = append(c.order, id)
	return id, nil
}

func (c *collection[T]) UpdateByID(ctx context.Context, id string, fields storage.Fields) (storage.UpdateResult, error) {
	if err := ctx.Err(); err != nil {
		return storage.UpdateResult{}, err
	}
	if !primitive.IsValidObjectID(id) {
		return storage.UpdateResult{}, storage.ErrInvalidID
	}
	id = strings.ToLower(id)

	set, err := encode(fields)
	if err != nil {
		return storage.UpdateResult{}, err
	}
	delete(set, idField)

	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.docs[id]
	if !ok {
		return storage.UpdateResult{}, nil
	}

	next := make(document, len(current)+len(set))
	for k, v := range current {
		next[k] = v
	}
	for k, v := range set {
		next[k] = v
	}

	if reflect.DeepEqual(current, next) {
		return storage.UpdateResult{Matched: 1}, nil
	}
	if err := c.checkUnique(next, id); err != nil {
		return storage.UpdateResult{}, err
	}

	c.docs[id] = next
	return storage.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (c *collection[T]) DeleteByID(ctx context.Context, id string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if !primitive.IsValidObjectID(id) {
		return 0, storage.ErrInvalidID
	}
	id = strings.ToLower(id)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[id]; !ok {
		return 0, nil
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

// checkUnique must be called with the write lock held.
func (c *collection[T]) checkUnique(doc document, selfID string) error {
	for _, field := range c.spec.UniqueFields {
		value, ok := doc[field].(string)
		if !ok {
			continue
		}
		for id, other := range c.docs {
			if id == selfID {
				continue
			}
			if existing, ok := other[field].(string); ok && existing == value {
				return &storage.DuplicateKeyError{Collection: c.spec.Name, Field: field}
			}
		}
	}
	return nil
}

func encode(v any) (document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	doc := document{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("document must encode to an object: %w", err)
	}
	return doc, nil
}

func decode(doc document, dest any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return json.Unmarshal(raw, dest)
}
