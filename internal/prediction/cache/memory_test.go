// internal/prediction/cache/memory_test.go
package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prediction-service/internal/models"
)

func createTestResult(requestID string) *models.PredictionResult {
	return &models.PredictionResult{
		RequestID:         requestID,
		Timestamp:         "2026-01-01T00:00:00Z",
		TotalUniversities: 2,
		Predictions: []models.UniversityPrediction{
			{UniversityName: "A", AdmissionProbability: 0.8, Tier: models.TierSafety, RequirementsMet: map[string]bool{"gpa": true}},
			{UniversityName: "B", AdmissionProbability: 0.4, Tier: models.TierReach, RequirementsMet: map[string]bool{"gpa": false}},
		},
		OverallAssessment: "Competitive profile with good chances at most target universities",
		Recommendations:   []string{},
	}
}

func TestMemoryCache_MissThenHit(t *testing.T) {
	c := NewMemory(4)
	ctx := context.Background()

	_, ok := c.Get(ctx, "k1")
	assert.False(t, ok)

	c.Set(ctx, "k1", createTestResult("req-1"))

	got, ok := c.Get(ctx, "k1")
	require.True(t, ok)
	assert.Equal(t, "req-1", got.RequestID)
	assert.Len(t, got.Predictions, 2)
}

func TestMemoryCache_HitReturnsIndependentCopy(t *testing.T) {
	c := NewMemory(4)
	ctx := context.Background()

	c.Set(ctx, "k1", createTestResult("req-1"))

	first, ok := c.Get(ctx, "k1")
	require.True(t, ok)
	first.RequestID = "mutated"
	first.Predictions[0].AdmissionProbability = 0.0
	first.Predictions[0].RequirementsMet["gpa"] = false

	second, ok := c.Get(ctx, "k1")
	require.True(t, ok)
	assert.Equal(t, "req-1", second.RequestID)
	assert.Equal(t, 0.8, second.Predictions[0].AdmissionProbability)
	assert.True(t, second.Predictions[0].RequirementsMet["gpa"])
}

func TestMemoryCache_SetDoesNotAliasCaller(t *testing.T) {
	c := NewMemory(4)
	ctx := context.Background()

	original := createTestResult("req-1")
	c.Set(ctx, "k1", original)
	original.Predictions[0].AdmissionProbability = 0.0

	got, ok := c.Get(ctx, "k1")
	require.True(t, ok)
	assert.Equal(t, 0.8, got.Predictions[0].AdmissionProbability)
}

func TestMemoryCache_FIFOEviction(t *testing.T) {
	c := NewMemory(3)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		c.Set(ctx, fmt.Sprintf("k%d", i), createTestResult(fmt.Sprintf("req-%d", i)))
	}
	c.Set(ctx, "k4", createTestResult("req-4"))

	_, ok := c.Get(ctx, "k1")
	assert.False(t, ok, "oldest entry should be evicted first")
	for _, key := range []string{"k2", "k3", "k4"} {
		_, ok := c.Get(ctx, key)
		assert.True(t, ok, "entry %s should survive", key)
	}

	stats := c.Stats(ctx)
	assert.Equal(t, 3, stats.Entries)
	assert.Equal(t, int64(1), stats.Evictions)
}

func TestMemoryCache_SizeNeverExceedsCapacity(t *testing.T) {
	c := NewMemory(5)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		c.Set(ctx, fmt.Sprintf("k%d", i), createTestResult("req"))
		assert.LessOrEqual(t, c.Stats(ctx).Entries, 5)
	}
}

func TestMemoryCache_OverwriteDoesNotGrow(t *testing.T) {
	c := NewMemory(3)
	ctx := context.Background()

	c.Set(ctx, "k1", createTestResult("req-1"))
	c.Set(ctx, "k1", createTestResult("req-2"))

	stats := c.Stats(ctx)
	assert.Equal(t, 1, stats.Entries)

	got, ok := c.Get(ctx, "k1")
	require.True(t, ok)
	assert.Equal(t, "req-2", got.RequestID)
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemory(4)
	ctx := context.Background()

	c.Set(ctx, "k1", createTestResult("req-1"))
	c.Set(ctx, "k2", createTestResult("req-2"))
	c.Clear(ctx)

	assert.Equal(t, 0, c.Stats(ctx).Entries)
	_, ok := c.Get(ctx, "k1")
	assert.False(t, ok)

	// Reusable after clear.
	c.Set(ctx, "k3", createTestResult("req-3"))
	_, ok = c.Get(ctx, "k3")
	assert.True(t, ok)
}

func TestMemoryCache_StatsCounters(t *testing.T) {
	c := NewMemory(4)
	ctx := context.Background()

	c.Get(ctx, "absent")
	c.Set(ctx, "k1", createTestResult("req-1"))
	c.Get(ctx, "k1")
	c.Get(ctx, "k1")

	stats := c.Stats(ctx)
	assert.Equal(t, memoryBackend, stats.Backend)
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 4, stats.MaxEntries)
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	c := NewMemory(8)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", n%4)
			for j := 0; j < 100; j++ {
				c.Set(ctx, key, createTestResult("req"))
				c.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Stats(ctx).Entries, 8)
}
