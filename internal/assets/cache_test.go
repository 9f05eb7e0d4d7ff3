package assets

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_Unbounded(t *testing.T) {
	c := NewMemoryCache(Unbounded())
	ctx := context.Background()
	for _, k := range []string{"a", "b", "c", "d"} {
		c.Set(ctx, k, k+"-v")
	}
	assert.Equal(t, 4, c.Len())
	v, ok := c.Get(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, "a-v", v)
}

func TestMemoryCache_LRU(t *testing.T) {
	c := NewMemoryCache(LRU(2))
	ctx := context.Background()

	c.Set(ctx, "a", "1")
	c.Set(ctx, "b", "2")
	_, _ = c.Get(ctx, "a")
	c.Set(ctx, "c", "3")

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get(ctx, "b")
	assert.False(t, ok, "b was least recently used")
	_, ok = c.Get(ctx, "a")
	assert.True(t, ok)
	_, ok = c.Get(ctx, "c")
	assert.True(t, ok)
}

func TestMemoryCache_Overwrite(t *testing.T) {
	c := NewMemoryCache(LRU(1))
	ctx := context.Background()
	c.Set(ctx, "a", "1")
	c.Set(ctx, "a", "2")
	v, ok := c.Get(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
	assert.Equal(t, 1, c.Len())
}

func setupRedisCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisCache(rdb, "", ttl), mr
}

func TestRedisCache_GetSet(t *testing.T) {
	c, mr := setupRedisCache(t, 0)
	ctx := context.Background()

	_, ok := c.Get(ctx, "https://cdn.example/a.png")
	assert.False(t, ok)

	c.Set(ctx, "https://cdn.example/a.png", "data:image/png;base64,AAAA")
	v, ok := c.Get(ctx, "https://cdn.example/a.png")
	assert.True(t, ok)
	assert.Equal(t, "data:image/png;base64,AAAA", v)
	assert.True(t, mr.Exists(defaultRedisPrefix+"https://cdn.example/a.png"))
	require.NoError(t, c.Ping(ctx))
}

func TestRedisCache_TTL(t *testing.T) {
	c, mr := setupRedisCache(t, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "k", "v")
	mr.FastForward(2 * time.Minute)

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestRedisCache_UnavailableIsMiss(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	t.Cleanup(func() { rdb.Close() })
	c := NewRedisCache(rdb, "test:", 0)

	_, ok := c.Get(context.Background(), "k")
	assert.False(t, ok)
	c.Set(context.Background(), "k", "v")
	assert.Error(t, c.Ping(context.Background()))
}

func TestResolver_WithRedisCache(t *testing.T) {
	c, _ := setupRedisCache(t, 0)
	loader := &countingLoader{data: samplePNG(t)}

	first := NewResolver(loader, c)
	second := NewResolver(loader, c)

	a := first.ResolveEmbeddable(context.Background(), "https://cdn.example/shared.png")
	b := second.ResolveEmbeddable(context.Background(), "https://cdn.example/shared.png")
	assert.Equal(t, a, b)
	assert.Equal(t, int32(1), loader.calls.Load())
}
