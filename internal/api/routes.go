// internal/api/routes.go
package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"prediction-service/internal/api/controllers"
	"prediction-service/internal/common/logger"
	"prediction-service/internal/common/observability"
	"prediction-service/internal/prediction"
)

// InitRoute wires all HTTP routes onto the router.
func InitRoute(r *chi.Mux, svc *prediction.Service, log logger.Logger, obs *observability.Observability, version string, requestTimeout time.Duration) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	healthController := controllers.NewHealthController(svc, version)
	r.Get("/health", healthController.Health)

	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/debug", middleware.Profiler())

	r.Route("/api/v1", func(r chi.Router) {
		predictionController := controllers.NewPredictionController(svc, log, obs)
		r.Route("/predict", func(r chi.Router) {
			r.Post("/universities", predictionController.PredictUniversities)
			r.Post("/university", predictionController.PredictUniversity)
		})

		cacheController := controllers.NewCacheController(svc, log)
		r.Route("/cache", func(r chi.Router) {
			r.Get("/info", cacheController.Info)
			r.Post("/clear", cacheController.Clear)
		})
	})
}
