package cache

import (
	"context"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/AccelByte/extend-leaderboard-common/pkg/common"
)

// Redis connection settings. Every call is bounded so a cache outage can
// never stall a request; it only turns the operation into a no-op.
const (
	dialTimeout = 5 * time.Second
	opTimeout   = 500 * time.Millisecond
)

// RedisResultCache implements ResultCache backed by Redis.
//
// The handle is constructed once at process start and injected into the
// engine. If the backend is unreachable at construction time the cache comes
// up in a degraded state (every operation a no-op) instead of failing
// startup; if the backend drops later, individual operations degrade the same
// way. Correctness never depends on cache content.
type RedisResultCache struct {
	client   *goredis.Client
	degraded bool
	logger   *slog.Logger
}

// NewRedisResultCache connects to the Redis backend at addr. A failed startup
// ping is logged once and yields a degraded cache, never an error: the
// engine runs correctly without caching.
func NewRedisResultCache(addr string, logger *slog.Logger) *RedisResultCache {
	client := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: dialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unavailable - running without cache",
			"addr", addr,
			"error", err,
		)
		_ = client.Close()
		return &RedisResultCache{
			client:   nil,
			degraded: true,
			logger:   logger,
		}
	}

	logger.Info("Redis connected - caching is enabled", "addr", addr)

	return &RedisResultCache{
		client: client,
		logger: logger,
	}
}

// NewRedisResultCacheFromEnv connects using REDIS_ADDR (localhost:6379 when
// unset).
func NewRedisResultCacheFromEnv(logger *slog.Logger) *RedisResultCache {
	return NewRedisResultCache(common.GetEnv("REDIS_ADDR", "localhost:6379"), logger)
}

// Degraded reports whether the cache came up without a reachable backend.
func (c *RedisResultCache) Degraded() bool {
	return c.degraded
}

// Get returns the cached value for key. Backend errors are treated as a miss.
func (c *RedisResultCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.degraded {
		return nil, false
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	value, err := c.client.Get(opCtx, key).Bytes()
	if err == goredis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Debug("cache get failed", "key", key, "error", err)
		return nil, false
	}

	return value, true
}

// Set stores value under key with the given TTL. Backend errors are dropped.
func (c *RedisResultCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if c.degraded {
		return
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := c.client.Set(opCtx, key, value, ttl).Err(); err != nil {
		c.logger.Debug("cache set failed", "key", key, "error", err)
	}
}

// Invalidate deletes the given keys. Backend errors are dropped; the TTL is
// the backstop for any entry a failed delete leaves behind.
func (c *RedisResultCache) Invalidate(ctx context.Context, keys ...string) {
	if c.degraded || len(keys) == 0 {
		return
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := c.client.Del(opCtx, keys...).Err(); err != nil {
		c.logger.Debug("cache invalidate failed", "keys", keys, "error", err)
	}
}

// Close releases the Redis connection.
func (c *RedisResultCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
