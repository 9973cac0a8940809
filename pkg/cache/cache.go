// Package cache provides a small byte-oriented cache used to memoize slow
// external queries, such as listing the packages installed in an ecosystem.
//
// Two implementations are provided: [FileCache] persists entries under a
// directory with per-entry expiry, and [NullCache] disables caching
// entirely (used by --refresh and in tests).
package cache

import (
	"context"
	"time"
)

// Cache stores byte values under string keys with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A non-positive ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the cache.
	Close() error
}
