// internal/prediction/cache/cache.go
package cache

import (
	"context"
	"encoding/json"

	"prediction-service/internal/models"
)

// Cache stores completed bulk-prediction results keyed by the profile cache
// key. Implementations must be safe for concurrent use and must never let a
// caller mutate a stored entry through a returned value.
type Cache interface {
	// Get returns a private copy of the cached result, or false on a miss.
	Get(ctx context.Context, key string) (*models.PredictionResult, bool)
	// Set stores a result, evicting per backend policy when full.
	Set(ctx context.Context, key string, result *models.PredictionResult)
	// Clear drops all entries.
	Clear(ctx context.Context)
	// Stats reports occupancy and traffic counters.
	Stats(ctx context.Context) models.CacheStats
}

// copyResult deep-copies a result through its JSON form so cached entries
// stay immutable no matter what callers do with the copy.
func copyResult(r *models.PredictionResult) (*models.PredictionResult, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var out models.PredictionResult
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
