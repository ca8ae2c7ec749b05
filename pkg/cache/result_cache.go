package cache

import (
	"context"
	"fmt"
	"time"
)

// ResultCache is a best-effort, non-durable cache in front of the hot read
// paths. It is never authoritative: a miss, an expired entry, or a lost
// backend only costs a read against the aggregate store.
//
// All operations degrade to no-ops when the backend is unreachable — the
// engine stays fully correct, only slower, with the cache down. That is why
// none of the methods return an error.
type ResultCache interface {
	// Get returns the cached value for key, or false on miss, expiry, or a
	// degraded backend. Never returns a value past its TTL.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key. The TTL window always (re)starts from this
	// call.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)

	// Invalidate deletes the given keys.
	Invalidate(ctx context.Context, keys ...string)
}

// TopNKey is the cache key for the top-N listing.
func TopNKey(n int) string {
	return fmt.Sprintf("leaderboard:top%d", n)
}

// RankKey is the cache key for a single player's rank.
func RankKey(userID int64) string {
	return fmt.Sprintf("rank:%d", userID)
}

// NoopResultCache is a ResultCache that caches nothing. Used when caching is
// disabled and in tests that exercise the cache-bypass path.
type NoopResultCache struct{}

// NewNoopResultCache creates a cache that misses on every read.
func NewNoopResultCache() *NoopResultCache {
	return &NoopResultCache{}
}

// Get always misses.
func (c *NoopResultCache) Get(ctx context.Context, key string) ([]byte, bool) {
	return nil, false
}

// Set does nothing.
func (c *NoopResultCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
}

// Invalidate does nothing.
func (c *NoopResultCache) Invalidate(ctx context.Context, keys ...string) {
}
