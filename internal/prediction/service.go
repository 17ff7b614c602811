// internal/prediction/service.go
package prediction

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"prediction-service/internal/common/config"
	"prediction-service/internal/common/errors"
	"prediction-service/internal/common/logger"
	"prediction-service/internal/common/metrics"
	"prediction-service/internal/models"
	"prediction-service/internal/prediction/aggregate"
	"prediction-service/internal/prediction/cache"
	"prediction-service/internal/prediction/catalog"
	"prediction-service/internal/prediction/profile"
	"prediction-service/internal/prediction/recommend"
	"prediction-service/internal/prediction/scoring"
	"prediction-service/internal/prediction/tier"
)

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status             string `json:"status"`
	Timestamp          string `json:"timestamp"`
	UniversitiesLoaded int    `json:"universities_loaded"`
	CacheEntries       int    `json:"cache_entries"`
	TotalRequests      int64  `json:"total_requests"`
}

// Service runs the full prediction pipeline: normalize, score across the
// catalog, classify, recommend, aggregate. It is stateless per request apart
// from the shared cache and the request counter.
type Service struct {
	log        logger.Logger
	normalizer *profile.Normalizer
	catalog    *catalog.Catalog
	engine     *scoring.Engine
	cache      cache.Cache
	workers    int

	totalRequests atomic.Int64
}

func NewService(log logger.Logger, cat *catalog.Catalog, engine *scoring.Engine, c cache.Cache, cfg config.ScoringConfig) *Service {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Service{
		log:        log,
		normalizer: profile.NewNormalizer(),
		catalog:    cat,
		engine:     engine,
		cache:      c,
		workers:    workers,
	}
}

// PredictUniversities scores the profile against the whole catalog and
// returns the ranked result. Identical profiles are served from the cache
// with a fresh request identity.
func (s *Service) PredictUniversities(ctx context.Context, raw map[string]interface{}) (*models.PredictionResult, error) {
	start := time.Now()
	requestID := uuid.New().String()
	s.totalRequests.Add(1)

	p, err := s.normalizer.Normalize(raw)
	if err != nil {
		metrics.PredictionsTotal.WithLabelValues("bulk", "error").Inc()
		return nil, err
	}

	key := profile.CacheKey(p)
	if cached, ok := s.cache.Get(ctx, key); ok {
		cached.RequestID = requestID
		cached.Timestamp = now()
		s.log.Info("prediction served from cache", map[string]interface{}{
			"request_id": requestID,
			"cache_key":  key,
		})
		metrics.PredictionsTotal.WithLabelValues("bulk", "success").Inc()
		metrics.PredictionDuration.WithLabelValues("bulk").Observe(time.Since(start).Seconds())
		return cached, nil
	}

	predictions := s.scoreAll(p)
	aggregate.Rank(predictions)

	result := &models.PredictionResult{
		RequestID:         requestID,
		Timestamp:         now(),
		Profile:           *p,
		TotalUniversities: len(predictions),
		Predictions:       predictions,
		Summary:           aggregate.Summarize(predictions),
		OverallAssessment: recommend.OverallAssessment(predictions),
		Recommendations:   recommend.ForProfile(p, predictions),
		ProcessingTime:    time.Since(start).Seconds(),
	}

	s.cache.Set(ctx, key, result)

	s.log.Info("prediction completed", map[string]interface{}{
		"request_id":      requestID,
		"universities":    len(predictions),
		"processing_time": result.ProcessingTime,
	})
	metrics.PredictionsTotal.WithLabelValues("bulk", "success").Inc()
	metrics.PredictionDuration.WithLabelValues("bulk").Observe(result.ProcessingTime)

	return result, nil
}

// PredictSingle scores the profile against one named university.
func (s *Service) PredictSingle(ctx context.Context, raw map[string]interface{}, universityName string) (*models.SinglePredictionResult, error) {
	start := time.Now()
	requestID := uuid.New().String()
	s.totalRequests.Add(1)

	p, err := s.normalizer.Normalize(raw)
	if err != nil {
		metrics.PredictionsTotal.WithLabelValues("single", "error").Inc()
		return nil, err
	}

	u, ok := s.catalog.FindByName(universityName)
	if !ok {
		metrics.PredictionsTotal.WithLabelValues("single", "error").Inc()
		return nil, errors.NewUniversityNotFoundError(universityName)
	}

	prediction := s.scoreOne(p, u)

	result := &models.SinglePredictionResult{
		RequestID:      requestID,
		Timestamp:      now(),
		University:     u.Name,
		Prediction:     prediction,
		ProcessingTime: time.Since(start).Seconds(),
	}

	s.log.Info("single prediction completed", map[string]interface{}{
		"request_id": requestID,
		"university": u.Name,
	})
	metrics.PredictionsTotal.WithLabelValues("single", "success").Inc()
	metrics.PredictionDuration.WithLabelValues("single").Observe(result.ProcessingTime)

	return result, nil
}

// scoreAll fans per-university scoring out across a bounded worker set.
// Workers write to indexed slots, so no ordering is lost before the sort.
func (s *Service) scoreAll(p *models.CandidateProfile) []models.UniversityPrediction {
	universities := s.catalog.All()
	predictions := make([]models.UniversityPrediction, len(universities))

	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup
	for i := range universities {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			predictions[i] = s.scoreOne(p, &universities[i])
		}(i)
	}
	wg.Wait()

	return predictions
}

// scoreOne composes the scored outcome with tier, reasoning and
// recommendations into the full prediction payload.
func (s *Service) scoreOne(p *models.CandidateProfile, u *models.UniversityRequirement) models.UniversityPrediction {
	out := s.engine.Score(p, u)

	return models.UniversityPrediction{
		UniversityName:       u.Name,
		Ranking:              u.Ranking,
		Program:              p.TargetProgram,
		AdmissionProbability: out.Probability,
		Tier:                 tier.Classify(out.Probability),
		ScoreBreakdown:       out.Breakdown,
		RequirementsMet:      out.RequirementsMet,
		Reasoning:            recommend.Reasoning(p, out.RequirementsMet),
		UniversityInfo:       u.Info(),
		Recommendations:      recommend.ForUniversity(out.RequirementsMet),
	}
}

// Health reports liveness plus the load counters the health endpoint exposes.
func (s *Service) Health(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:             "healthy",
		Timestamp:          now(),
		UniversitiesLoaded: s.catalog.Size(),
		CacheEntries:       s.cache.Stats(ctx).Entries,
		TotalRequests:      s.totalRequests.Load(),
	}
}

// CacheStats exposes the cache counters for the admin endpoint.
func (s *Service) CacheStats(ctx context.Context) models.CacheStats {
	return s.cache.Stats(ctx)
}

// ClearCache drops all cached predictions.
func (s *Service) ClearCache(ctx context.Context) {
	s.cache.Clear(ctx)
	s.log.Info("prediction cache cleared", nil)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
