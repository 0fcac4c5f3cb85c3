// Package cache stores benchmark and verification reports keyed by the
// configuration that produced them.
//
// Backends:
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: JSON entries on disk, used by the CLI
//   - [RedisCache]: shared storage for several machines running the harness
//
// Keys are produced by a [Keyer] so that callers never build key strings by
// hand; [ScopedKeyer] adds a namespace prefix on top of any keyer.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long reports stay cached unless configured otherwise.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with per-entry expiration.
//
// Get reports a miss as (nil, false, nil); an error means the backend
// itself failed. A ttl <= 0 passed to Set means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
