// internal/prediction/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"prediction-service/internal/common/logger"
	"prediction-service/internal/common/metrics"
	"prediction-service/internal/models"
)

const (
	redisBackend   = "redis"
	redisKeyPrefix = "prediction:"
)

// RedisCache is the shared backend: entries expire by TTL instead of FIFO
// eviction, so multiple instances can serve from the same cache. Backend
// failures degrade to recomputation and are logged, never surfaced.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    logger.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

func NewRedis(client *redis.Client, ttl time.Duration, log logger.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, log: log}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*models.PredictionResult, bool) {
	data, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.WithError(err).Warn("redis cache get failed", nil)
		}
		c.misses.Add(1)
		metrics.CacheMisses.WithLabelValues(redisBackend).Inc()
		return nil, false
	}

	var result models.PredictionResult
	if err := json.Unmarshal(data, &result); err != nil {
		c.log.WithError(err).Warn("redis cache entry corrupt", nil)
		c.misses.Add(1)
		metrics.CacheMisses.WithLabelValues(redisBackend).Inc()
		return nil, false
	}

	c.hits.Add(1)
	metrics.CacheHits.WithLabelValues(redisBackend).Inc()
	return &result, true
}

func (c *RedisCache) Set(ctx context.Context, key string, result *models.PredictionResult) {
	data, err := json.Marshal(result)
	if err != nil {
		c.log.WithError(err).Warn("redis cache marshal failed", nil)
		return
	}

	if err := c.client.Set(ctx, redisKeyPrefix+key, data, c.ttl).Err(); err != nil {
		c.log.WithError(err).Warn("redis cache set failed", nil)
	}
}

func (c *RedisCache) Clear(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	keys := []string{}
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.log.WithError(err).Warn("redis cache scan failed", nil)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.WithError(err).Warn("redis cache clear failed", nil)
	}
}

func (c *RedisCache) Stats(ctx context.Context) models.CacheStats {
	entries := 0
	iter := c.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		entries++
	}
	if err := iter.Err(); err != nil {
		c.log.WithError(err).Warn("redis cache scan failed", nil)
	}

	return models.CacheStats{
		Backend: redisBackend,
		Entries: entries,
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}
