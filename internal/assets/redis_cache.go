package assets

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "propostas:asset:"

// RedisCache shares resolved encodings between service instances.
// Redis failures degrade to cache misses.
type RedisCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

var _ Cache = (*RedisCache)(nil)

// NewRedisCache wraps rdb. A zero ttl keeps entries until Redis evicts them.
func NewRedisCache(rdb *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisCache{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	v, err := c.rdb.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[assets][redis] get failed key=%s err=%v", key, err)
		}
		return "", false
	}
	return v, true
}

func (c *RedisCache) Set(ctx context.Context, key, value string) {
	if err := c.rdb.Set(ctx, c.prefix+key, value, c.ttl).Err(); err != nil {
		log.Printf("[assets][redis] set failed key=%s err=%v", key, err)
	}
}

// Ping verifies connectivity at startup.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
