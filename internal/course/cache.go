package course

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"coursebay/internal/platform/redis"
)

// CatalogCache caches the public catalog listing. A cache failure is never an
// error; callers fall through to the store.
type CatalogCache interface {
	Get(ctx context.Context) ([]Course, bool)
	Set(ctx context.Context, courses []Course)
	Invalidate(ctx context.Context)
}

const catalogKey = "coursebay:catalog"

// RedisCatalogCache keeps the serialized catalog in Redis with a short TTL.
// Every course mutation invalidates the key, so the TTL only bounds staleness
// across multiple service instances.
type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCatalogCache builds the catalog cache over the shared Redis client.
func NewRedisCatalogCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisCatalogCache {
	return &RedisCatalogCache{client: client, ttl: ttl, logger: logger}
}

func (c *RedisCatalogCache) Get(ctx context.Context) ([]Course, bool) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.logger.WarnContext(ctx, "catalog cache read failed", "error", err)
		}
		return nil, false
	}
	var courses []Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		c.logger.WarnContext(ctx, "catalog cache entry corrupt", "error", err)
		return nil, false
	}
	return courses, true
}

func (c *RedisCatalogCache) Set(ctx context.Context, courses []Course) {
	raw, err := json.Marshal(courses)
	if err != nil {
		c.logger.WarnContext(ctx, "catalog cache encode failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "catalog cache write failed", "error", err)
	}
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		c.logger.WarnContext(ctx, "catalog cache invalidation failed", "error", err)
	}
}

// NoopCatalogCache is used when Redis is not configured.
type NoopCatalogCache struct{}

func (NoopCatalogCache) Get(context.Context) ([]Course, bool) { return nil, false }
func (NoopCatalogCache) Set(context.Context, []Course)        {}
func (NoopCatalogCache) Invalidate(context.Context)           {}
