// Package listcache caches paginated list results keyed by their serialized
// filter parameters. Entries are TTL-bounded and cleared by key prefix after
// every mutation of the underlying resource, so a screen session never reads
// results older than the last write it performed.
package listcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Cache interface {
	// Get loads the cached entry for key into value. It reports whether a
	// usable entry was found; cache errors are treated as misses.
	Get(ctx context.Context, key string, value any) bool
	// Save stores value under key. Failures are logged, never propagated:
	// the cache is an optimization, not a source of truth.
	Save(ctx context.Context, key string, value any)
	// Clear removes every entry whose key starts with prefix.
	Clear(ctx context.Context, prefix string)
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis returns a Cache backed by the given redis client.
func NewRedis(client *redis.Client, ttl time.Duration) Cache {
	return &redisCache{client: client, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context, key string, value any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Debug().Err(err).Str("key", key).Msg("list cache get failed")
		}
		return false
	}

	if err := json.Unmarshal(raw, value); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("list cache entry unreadable")
		return false
	}
	return true
}

func (c *redisCache) Save(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Debug().Err(err).Str("key", key).Msg("list cache marshal failed")
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("list cache set failed")
	}
}

func (c *redisCache) Clear(ctx context.Context, prefix string) {
	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			log.Debug().Err(err).Str("key", iter.Val()).Msg("list cache del failed")
		}
	}
	if err := iter.Err(); err != nil {
		log.Debug().Err(err).Str("prefix", prefix).Msg("list cache scan failed")
	}
}

type noopCache struct{}

// Disabled returns a Cache that stores nothing. Used when no redis address
// is configured.
func Disabled() Cache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string, any) bool { return false }
func (noopCache) Save(context.Context, string, any)     {}
func (noopCache) Clear(context.Context, string)         {}
