// Package cache stores solved results so repeated solves of the same
// instance are served from disk. The search is exact and deterministic, so
// cached results never expire: a key fully identifies the instance and the
// solver configuration that produced the result.
package cache

import "context"

// Cache persists encoded results under string keys.
type Cache interface {
	// Get retrieves a cached value. The second return value reports whether
	// the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value under the key, overwriting any previous value.
	Set(ctx context.Context, key string, data []byte) error
}

// NullCache is a no-op cache used when caching is disabled.
type NullCache struct{}

// NewNullCache creates a cache that stores nothing and never hits.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always reports a miss.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the value.
func (c *NullCache) Set(ctx context.Context, key string, data []byte) error {
	return nil
}
