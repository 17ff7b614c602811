// internal/api/controllers/cache_controller.go
package controllers

import (
	"net/http"

	"github.com/go-chi/render"

	"prediction-service/internal/common/logger"
	"prediction-service/internal/prediction"
)

// CacheController exposes cache inspection and admin endpoints.
type CacheController struct {
	svc *prediction.Service
	log logger.Logger
}

func NewCacheController(svc *prediction.Service, log logger.Logger) *CacheController {
	return &CacheController{svc: svc, log: log}
}

// Info reports cache occupancy and traffic counters.
// GET /api/v1/cache/info
func (c *CacheController) Info(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SuccessResponse("cache info", c.svc.CacheStats(r.Context())))
}

// Clear drops all cached predictions.
// POST /api/v1/cache/clear
func (c *CacheController) Clear(w http.ResponseWriter, r *http.Request) {
	c.svc.ClearCache(r.Context())
	c.log.Info("cache cleared via admin endpoint", nil)
	render.JSON(w, r, SuccessResponse("cache cleared", nil))
}
