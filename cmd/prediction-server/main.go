// cmd/prediction-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"prediction-service/internal/api"
	"prediction-service/internal/common/config"
	"prediction-service/internal/common/database"
	"prediction-service/internal/common/logger"
	"prediction-service/internal/common/observability"
	"prediction-service/internal/prediction"
	"prediction-service/internal/prediction/cache"
	"prediction-service/internal/prediction/catalog"
	"prediction-service/internal/prediction/scoring"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting prediction server...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL (catalog source only) ---
	var pg *database.PostgresClient
	if cfg.Catalog.Source == "postgres" {
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()
		zapLog.Info("PostgreSQL connected successfully")
	}

	// --- Load University Catalog ---
	var cat *catalog.Catalog
	if pg != nil {
		cat, err = catalog.Load(ctx, cfg.Catalog, pg.DB)
	} else {
		cat, err = catalog.Load(ctx, cfg.Catalog, nil)
	}
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}
	obs.RecordCatalogSize(ctx, cat.Size())
	zapLog.Info("University catalog loaded",
		zap.String("source", cfg.Catalog.Source),
		zap.Int("universities", cat.Size()),
	)

	// --- Init Prediction Cache ---
	var predictionCache cache.Cache
	switch cfg.Cache.Backend {
	case "redis":
		var rdb *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			rdb, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return rdb.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer rdb.Close()
		zapLog.Info("Redis connected successfully")

		predictionCache = cache.NewRedis(rdb.Client, config.GetDuration(cfg.Cache.TTL), log)
	default:
		predictionCache = cache.NewMemory(cfg.Cache.MaxEntries)
	}
	zapLog.Info("Prediction cache initialized", zap.String("backend", cfg.Cache.Backend))

	// --- Build Service and Router ---
	engine := scoring.NewEngine(cfg.Scoring)
	svc := prediction.NewService(log, cat, engine, predictionCache, cfg.Scoring)

	router := chi.NewRouter()
	api.InitRoute(router, svc, log, obs, cfg.App.Version, config.GetDuration(cfg.Server.RequestTimeout))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}

	zapLog.Info("Prediction server stopped")
}
