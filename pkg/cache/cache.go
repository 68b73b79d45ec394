// Package cache provides result caching for the depline pipeline.
//
// Expansion is deterministic, so a result can be cached under a hash of
// the raw input document. Three backends are provided:
//   - FileCache: per-user cache directory, used by the CLI
//   - RedisCache: shared cache for serve deployments
//   - NullCache: caching disabled
//
// All backends are safe for concurrent use.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional TTL.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was found; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
