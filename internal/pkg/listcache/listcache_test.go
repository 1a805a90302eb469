package listcache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type page struct {
	Items []string `json:"items"`
	Total int      `json:"total"`
}

func newTestCache(t *testing.T) (Cache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedis(client, time.Minute), mr
}

func TestRedisCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	saved := page{Items: []string{"R101", "R102"}, Total: 2}
	cache.Save(ctx, "room:list:page=1", saved)

	var got page
	require.True(t, cache.Get(ctx, "room:list:page=1", &got))
	assert.Equal(t, saved, got)
}

func TestRedisCacheMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	var got page
	assert.False(t, cache.Get(context.Background(), "room:list:missing", &got))
}

func TestRedisCacheClearPrefix(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.Save(ctx, "room:list:page=1", page{Total: 1})
	cache.Save(ctx, "room:list:page=2", page{Total: 1})
	cache.Save(ctx, "booking:list:page=1", page{Total: 1})

	cache.Clear(ctx, "room:list:")

	var got page
	assert.False(t, cache.Get(ctx, "room:list:page=1", &got))
	assert.False(t, cache.Get(ctx, "room:list:page=2", &got))
	assert.True(t, cache.Get(ctx, "booking:list:page=1", &got), "other prefixes must survive")
}

func TestRedisCacheExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewRedis(client, time.Second)
	ctx := context.Background()

	cache.Save(ctx, "room:list:page=1", page{Total: 1})
	mr.FastForward(2 * time.Second)

	var got page
	assert.False(t, cache.Get(ctx, "room:list:page=1", &got))
}

func TestDisabledCache(t *testing.T) {
	cache := Disabled()
	ctx := context.Background()

	cache.Save(ctx, "k", page{Total: 1})
	var got page
	assert.False(t, cache.Get(ctx, "k", &got))
	cache.Clear(ctx, "k")
}
