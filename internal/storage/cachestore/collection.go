// Package cachestore decorates a storage.Collection with a read-through
// cache of single-document lookups. Writes to a document evict its entry;
// cache failures are logged and never fail the underlying operation.
package cachestore

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"library-api/internal/storage"
	"library-api/pkg/cache"
)

type collection[T any] struct {
	storage.Collection[T]
	cache cache.Cache
	ttl   time.Duration

	// writes counts completed evicting writes. A fill that overlapped one
	// may hold the old document and must not stay cached.
	writes atomic.Uint64
}

// Wrap returns inner with FindByID served from c for ttl. Every write to
// the collection must go through the returned value, or readers may see
// stale documents until ttl expires.
func Wrap[T any](inner storage.Collection[T], c cache.Cache, ttl time.Duration) storage.Collection[T] {
	return &collection[T]{Collection: inner, cache: c, ttl: ttl}
}

// key lowercases id: the backends match identifiers case-insensitively.
func (c *collection[T]) key(id string) string {
	return c.Name() + ":" + strings.ToLower(id)
}

func (c *collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	key := c.key(id)

	var doc T
	hit, err := c.cache.Get(ctx, key, &doc)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	if hit {
		return &doc, nil
	}

	seen := c.writes.Load()
	found, err := c.Collection.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.writes.Load() != seen {
		return found, nil
	}

	if err := c.cache.Set(ctx, key, found, c.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	// A write that landed between the check and Set may have evicted
	// before our Set.
	if c.writes.Load() != seen {
		c.evictKey(ctx, key)
	}
	return found, nil
}

func (c *collection[T]) UpdateByID(ctx context.Context, id string, fields storage.Fields) (storage.UpdateResult, error) {
	res, err := c.Collection.UpdateByID(ctx, id, fields)
	if err == nil && res.Modified > 0 {
		c.evict(ctx, id)
	}
	return res, err
}

func (c *collection[T]) DeleteByID(ctx context.Context, id string) (int64, error) {
	n, err := c.Collection.DeleteByID(ctx, id)
	if err == nil && n > 0 {
		c.evict(ctx, id)
	}
	return n, err
}

func (c *collection[T]) evict(ctx context.Context, id string) {
	c.writes.Add(1)
	c.evictKey(ctx, c.key(id))
}

func (c *collection[T]) evictKey(ctx context.Context, key string) {
	if err := c.cache.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache eviction failed")
	}
}
