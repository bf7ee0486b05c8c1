package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T, opts ...RedisOption) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	c := NewRedisCacheFromClient(backend.NewClient(&backend.Options{Addr: mr.Addr()}), opts...)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	c, mr := newTestRedis(t)
	ctx := context.Background()

	_, hit, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	assert.True(t, mr.Exists("spheregrid:k"))

	data, hit, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []byte("v"), data)

	require.NoError(t, c.Delete(ctx, "k"))
	assert.False(t, mr.Exists("spheregrid:k"))
}

func TestRedisCache_TTL(t *testing.T) {
	c, mr := newTestRedis(t, WithRedisPrefix("test:"), WithRedisTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "default", []byte("x"), 0))
	require.NoError(t, c.Set(ctx, "explicit", []byte("y"), time.Hour))
	assert.Equal(t, time.Minute, mr.TTL("test:default"))
	assert.Equal(t, time.Hour, mr.TTL("test:explicit"))

	mr.FastForward(2 * time.Minute)
	_, hit, err := c.Get(ctx, "default")
	assert.NoError(t, err)
	assert.False(t, hit, "entry should expire with the default TTL")

	_, hit, _ = c.Get(ctx, "explicit")
	assert.True(t, hit)
}

func TestNewRedisCache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	c, err := NewRedisCache(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	defer c.Close()

	_, err = NewRedisCache(context.Background(), "not a url")
	assert.Error(t, err)
}
