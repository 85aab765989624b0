// Package cache memoizes rendered diagram artifacts.
//
// Rendering is deterministic, so an artifact is fully identified by the
// hash of its input payload, profile, and output format. The Cache
// interface has three interchangeable backends: a file cache for the CLI,
// a Redis cache for the HTTP service, and a null cache for disabling
// caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts by key.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any backend resources.
	Close() error
}
