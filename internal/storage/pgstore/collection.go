// Package pgstore implements storage.Collection on PostgreSQL, keeping each
// document as a JSONB value in a table named after the collection.
package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-api/internal/storage"
)

const uniqueViolation = "23505"

type collection[T any] struct {
	pool  *pgxpool.Pool
	spec  storage.CollectionSpec
	table string // sanitized identifier
}

// NewCollection returns a collection backed by the table created by
// EnsureSchema for spec.
func NewCollection[T any](pool *pgxpool.Pool, spec storage.CollectionSpec) storage.Collection[T] {
	return &collection[T]{
		pool:  pool,
		spec:  spec,
		table: pgx.Identifier{spec.Name}.Sanitize(),
	}
}

func (c *collection[T]) Name() string {
	return c.spec.Name
}

func (c *collection[T]) FindAll(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(`
        SELECT doc || jsonb_build_object('_id', id)
        FROM %s
        ORDER BY seq
    `, c.table)

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.Name(), err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", c.Name(), err)
		}
		var doc T
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", c.Name(), err)
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", c.Name(), err)
	}
	return out, nil
}

func (c *collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if !primitive.IsValidObjectID(id) {
		return nil, storage.ErrInvalidID
	}

	query := fmt.Sprintf(`
        SELECT doc || jsonb_build_object('_id', id)
        FROM %s
        WHERE id = $1
    `, c.table)

	var raw []byte
	if err := c.pool.QueryRow(ctx, query, strings.ToLower(id)).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s by id: %w", c.Name(), err)
	}

	var doc T
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s document: %w", c.Name(), err)
	}
	return &doc, nil
}

func (c *collection[T]) InsertOne(ctx context.Context, doc *T) (string, error) {
	body, err := encodeObject(doc)
	if err != nil {
		return "", err
	}

	id := primitive.NewObjectID().Hex()
	query := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2::jsonb)`, c.table)

	if _, err := c.pool.Exec(ctx, query, id, body); err != nil {
		return "", c.translateWriteError(err)
	}
	return id, nil
}

// UpdateByID merges fields into the stored document. The row is only
// rewritten when the merge changes something, so Modified mirrors
// MongoDB's modifiedCount.
func (c *collection[T]) UpdateByID(ctx context.Context, id string, fields storage.Fields) (storage.UpdateResult, error) {
	if !primitive.IsValidObjectID(id) {
		return storage.UpdateResult{}, storage.ErrInvalidID
	}

	body, err := encodeObject(fields)
	if err != nil {
		return storage.UpdateResult{}, err
	}

	query := fmt.Sprintf(`
        WITH target AS (
            SELECT id, doc FROM %[1]s WHERE id = $1 FOR UPDATE
        ), updated AS (
            UPDATE %[1]s AS t
            SET doc = t.doc || $2::jsonb
            FROM target
            WHERE t.id = target.id AND NOT (target.doc @> $2::jsonb)
            RETURNING t.id
        )
        SELECT (SELECT count(*) FROM target), (SELECT count(*) FROM updated)
    `, c.table)

	var res storage.UpdateResult
	if err := c.pool.QueryRow(ctx, query, strings.ToLower(id), body).Scan(&res.Matched, &res.Modified); err != nil {
		return storage.UpdateResult{}, c.translateWriteError(err)
	}
	return res, nil
}

func (c *collection[T]) DeleteByID(ctx context.Context, id string) (int64, error) {
	if !primitive.IsValidObjectID(id) {
		return 0, storage.ErrInvalidID
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, c.table)
	tag, err := c.pool.Exec(ctx, query, strings.ToLower(id))
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", c.Name(), err)
	}
	return tag.RowsAffected(), nil
}

func (c *collection[T]) translateWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &storage.DuplicateKeyError{
			Collection: c.Name(),
			Field:      c.fieldForConstraint(pgErr.ConstraintName),
			Err:        err,
		}
	}
	return fmt.Errorf("failed to write to %s: %w", c.Name(), err)
}

func (c *collection[T]) fieldForConstraint(constraint string) string {
	for _, field := range c.spec.UniqueFields {
		if constraint == indexName(c.spec.Name, field) {
			return field
		}
	}
	return ""
}

// encodeObject renders v as a JSON object without its "_id" key; the
// identifier lives in its own column.
func encodeObject(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", fmt.Errorf("document must encode to an object: %w", err)
	}
	delete(obj, "_id")

	raw, err = json.Marshal(obj)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}
	return string(raw), nil
}
