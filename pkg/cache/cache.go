// Package cache provides byte-level caching for ingested datasets.
//
// The CLI caches the JSON snapshot of a freshly loaded dataset keyed by a
// hash of the dataset's source files, so repeated queries against the same
// CSVs skip parsing. Entries are plain bytes; callers own serialization.
package cache

import (
	"context"
	"time"
)

// Cache stores byte values under string keys with optional expiration.
type Cache interface {
	// Get retrieves a value. The second result reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
