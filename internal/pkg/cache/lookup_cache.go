// Package cache holds the Redis read-through cache for lookup-table keys.
// Lookup tables are closed and pre-populated, so a cached key never goes stale
// while the schema is unchanged.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/yigit/schoolregistry/internal/pkg/logger"
)

const keyPrefix = "lookup"

// LookupCache stores symbolic-name to surrogate-key translations in Redis.
type LookupCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}

	return client, nil
}

// NewLookupCache creates a LookupCache. A zero ttl keeps entries without expiry.
func NewLookupCache(client *redis.Client, ttl time.Duration) *LookupCache {
	return &LookupCache{
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(table, name string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, table, name)
}

// GetKey returns the cached key for name in table. Any Redis failure is reported
// as a miss so callers fall back to the database.
func (c *LookupCache) GetKey(ctx context.Context, table, name string) (int64, bool) {
	key, err := c.client.Get(ctx, cacheKey(table, name)).Int64()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn().Err(err).Str("table", table).Str("name", name).Msg("Lookup cache read failed")
		}
		return 0, false
	}
	return key, true
}

// SetKey stores key for name in table.
func (c *LookupCache) SetKey(ctx context.Context, table, name string, key int64) {
	if err := c.client.Set(ctx, cacheKey(table, name), key, c.ttl).Err(); err != nil {
		logger.Warn().Err(err).Str("table", table).Str("name", name).Msg("Lookup cache write failed")
	}
}
