// internal/api/controllers/prediction_controller.go
package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"prediction-service/internal/common/errors"
	"prediction-service/internal/common/logger"
	"prediction-service/internal/common/observability"
	"prediction-service/internal/prediction"
)

// PredictionController serves the prediction endpoints.
type PredictionController struct {
	svc *prediction.Service
	log logger.Logger
	obs *observability.Observability
}

func NewPredictionController(svc *prediction.Service, log logger.Logger, obs *observability.Observability) *PredictionController {
	return &PredictionController{svc: svc, log: log, obs: obs}
}

// singleProfilePayload extracts the profile fields from a single-university
// request body. The profile sits flat beside the university name; a nested
// "profile" object is also accepted.
func singleProfilePayload(raw map[string]interface{}) map[string]interface{} {
	if nested, ok := raw["profile"].(map[string]interface{}); ok {
		return nested
	}
	delete(raw, "university")
	return raw
}

// PredictUniversities runs the profile against the whole catalog.
// POST /api/v1/predict/universities
func (c *PredictionController) PredictUniversities(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var raw map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		renderBadRequest(w, r, "Request body must be valid JSON")
		c.obs.RecordRequestProcessed(r.Context(), "predict_universities", "bad_request")
		return
	}

	result, err := c.svc.PredictUniversities(r.Context(), raw)
	if err != nil {
		c.logFailure("bulk prediction failed", err)
		renderError(w, r, err)
		c.obs.RecordRequestProcessed(r.Context(), "predict_universities", "error")
		return
	}

	render.JSON(w, r, SuccessResponse("prediction completed", result))
	c.obs.RecordRequestProcessed(r.Context(), "predict_universities", "success")
	c.obs.RecordRequestDuration(r.Context(), time.Since(start), "predict_universities")
}

// PredictUniversity runs the profile against one named university.
// POST /api/v1/predict/university
func (c *PredictionController) PredictUniversity(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var raw map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		renderBadRequest(w, r, "Request body must be valid JSON")
		c.obs.RecordRequestProcessed(r.Context(), "predict_university", "bad_request")
		return
	}
	name, _ := raw["university"].(string)
	if name == "" {
		renderError(w, r, errors.NewValidationError("university", "university name is required"))
		c.obs.RecordRequestProcessed(r.Context(), "predict_university", "bad_request")
		return
	}

	result, err := c.svc.PredictSingle(r.Context(), singleProfilePayload(raw), name)
	if err != nil {
		c.logFailure("single prediction failed", err)
		renderError(w, r, err)
		c.obs.RecordRequestProcessed(r.Context(), "predict_university", "error")
		return
	}

	render.JSON(w, r, SuccessResponse("prediction completed", result))
	c.obs.RecordRequestProcessed(r.Context(), "predict_university", "success")
	c.obs.RecordRequestDuration(r.Context(), time.Since(start), "predict_university")
}

// logFailure logs internal errors with full details; client errors at debug.
func (c *PredictionController) logFailure(msg string, err error) {
	stdErr := errors.AsStandardError(err)
	if errors.IsClientError(stdErr.Code) {
		c.log.Debug(msg, map[string]interface{}{"code": stdErr.Code, "details": stdErr.Details})
		return
	}
	c.log.WithError(err).Error(msg, map[string]interface{}{"code": stdErr.Code, "details": stdErr.Details})
}
