package cache

import (
	"context"
	"time"
)

// Cache is the contract of the cache layer. Implementations can be swapped
// (Redis, in-memory) without touching the decorated collections.
type Cache interface {
	// Get loads key and unmarshals it into dest.
	// Returns (false, nil) on a cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value (marshalled to JSON unless it is a string or []byte)
	// with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the keys.
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the connection.
	Ping(ctx context.Context) error
}
