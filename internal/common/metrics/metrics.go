// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prediction_requests_total",
			Help: "Total number of prediction requests processed",
		},
		[]string{"operation", "status"},
	)

	PredictionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "prediction_duration_seconds",
			Help: "Duration of prediction processing in seconds",
		},
		[]string{"operation"},
	)

	ScoringInvocations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scoring_engine_invocations_total",
			Help: "Total number of per-university scoring computations",
		},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prediction_cache_hits_total",
			Help: "Total number of prediction cache hits",
		},
		[]string{"backend"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prediction_cache_misses_total",
			Help: "Total number of prediction cache misses",
		},
		[]string{"backend"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prediction_cache_evictions_total",
			Help: "Total number of prediction cache evictions",
		},
		[]string{"backend"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "prediction_cache_entries",
			Help: "Number of entries currently held by the prediction cache",
		},
		[]string{"backend"},
	)
)
