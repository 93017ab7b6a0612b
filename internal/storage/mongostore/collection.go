// Package mongostore implements storage.Collection on a MongoDB collection.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"library-api/internal/storage"
)

type collection[T any] struct {
	coll *mongo.Collection
}

// NewCollection wraps coll. Documents of type T must map their identifier
// to "_id" with omitempty so that MongoDB assigns an ObjectID on insert.
func NewCollection[T any](coll *mongo.Collection) storage.Collection[T] {
	return &collection[T]{coll: coll}
}

func (c *collection[T]) Name() string {
	return c.coll.Name()
}

func (c *collection[T]) FindAll(ctx context.Context) ([]T, error) {
	cursor, err := c.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.Name(), err)
	}

	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.Name(), err)
	}
	return out, nil
}

func (c *collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, storage.ErrInvalidID
	}

	var doc T
	err = c.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s by id: %w", c.Name(), err)
	}
	return &doc, nil
}

func (c *collection[T]) InsertOne(ctx context.Context, doc *T) (string, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", c.translateWriteError(err)
	}

	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return "", fmt.Errorf("unexpected identifier type %T in %s", res.InsertedID, c.Name())
	}
}

func (c *collection[T]) UpdateByID(ctx context.Context, id string, fields storage.Fields) (storage.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storage.UpdateResult{}, storage.ErrInvalidID
	}

	res, err := c.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return storage.UpdateResult{}, c.translateWriteError(err)
	}
	return storage.UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

func (c *collection[T]) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, storage.ErrInvalidID
	}

	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", c.Name(), err)
	}
	return res.DeletedCount, nil
}

// E11000 messages name the violated index: "... index: email_1 dup key: ..."
var dupIndexPattern = regexp.MustCompile(`index: (\S+)`)

func (c *collection[T]) translateWriteError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("failed to write to %s: %w", c.Name(), err)
	}
	return &storage.DuplicateKeyError{
		Collection: c.Name(),
		Field:      duplicateField(err.Error()),
		Err:        err,
	}
}

func duplicateField(msg string) string {
	m := dupIndexPattern.FindStringSubmatch(msg)
	if m == nil {
		return ""
	}
	return strings.TrimSuffix(m[1], "_1")
}
