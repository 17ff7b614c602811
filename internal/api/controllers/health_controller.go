// internal/api/controllers/health_controller.go
package controllers

import (
	"net/http"

	"github.com/go-chi/render"

	"prediction-service/internal/prediction"
)

// HealthController reports service liveness and load counters.
type HealthController struct {
	svc     *prediction.Service
	version string
}

func NewHealthController(svc *prediction.Service, version string) *HealthController {
	return &HealthController{svc: svc, version: version}
}

// HealthResponse is the health endpoint payload.
type HealthResponse struct {
	prediction.HealthStatus
	Service string `json:"service"`
	Version string `json:"version"`
}

// Health reports liveness.
// GET /health
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, HealthResponse{
		HealthStatus: c.svc.Health(r.Context()),
		Service:      "prediction-service",
		Version:      c.version,
	})
}
