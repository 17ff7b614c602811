// internal/prediction/cache/memory.go
package cache

import (
	"context"
	"sync"
	"sync/atomic"

	"prediction-service/internal/common/metrics"
	"prediction-service/internal/models"
)

const memoryBackend = "memory"

// MemoryCache is the default backend: a mutex-guarded map with an
// insertion-order queue driving FIFO eviction. Size never exceeds capacity.
type MemoryCache struct {
	mu       sync.Mutex
	entries  map[string]*models.PredictionResult
	order    []string
	capacity int

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// NewMemory creates a bounded in-memory cache. Capacity must be positive;
// config validation enforces that upstream.
func NewMemory(capacity int) *MemoryCache {
	return &MemoryCache{
		entries:  make(map[string]*models.PredictionResult, capacity),
		order:    make([]string, 0, capacity),
		capacity: capacity,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (*models.PredictionResult, bool) {
	c.mu.Lock()
	stored, ok := c.entries[key]
	c.mu.Unlock()

	if !ok {
		c.misses.Add(1)
		metrics.CacheMisses.WithLabelValues(memoryBackend).Inc()
		return nil, false
	}

	out, err := copyResult(stored)
	if err != nil {
		c.misses.Add(1)
		metrics.CacheMisses.WithLabelValues(memoryBackend).Inc()
		return nil, false
	}

	c.hits.Add(1)
	metrics.CacheHits.WithLabelValues(memoryBackend).Inc()
	return out, true
}

func (c *MemoryCache) Set(_ context.Context, key string, result *models.PredictionResult) {
	stored, err := copyResult(result)
	if err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		// Overwrite keeps the original queue position.
		c.entries[key] = stored
		return
	}

	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
		c.evictions.Add(1)
		metrics.CacheEvictions.WithLabelValues(memoryBackend).Inc()
	}

	c.entries[key] = stored
	c.order = append(c.order, key)
	metrics.CacheSize.WithLabelValues(memoryBackend).Set(float64(len(c.entries)))
}

func (c *MemoryCache) Clear(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*models.PredictionResult, c.capacity)
	c.order = c.order[:0]
	metrics.CacheSize.WithLabelValues(memoryBackend).Set(0)
}

func (c *MemoryCache) Stats(_ context.Context) models.CacheStats {
	c.mu.Lock()
	entries := len(c.entries)
	c.mu.Unlock()

	return models.CacheStats{
		Backend:    memoryBackend,
		Entries:    entries,
		MaxEntries: c.capacity,
		Hits:       c.hits.Load(),
		Misses:     c.misses.Load(),
		Evictions:  c.evictions.Load(),
	}
}
