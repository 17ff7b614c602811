// internal/api/controllers/response.go
package controllers

import (
	"net/http"

	"github.com/go-chi/render"

	"prediction-service/internal/common/errors"
)

// APIResponse is the uniform response envelope.
type APIResponse struct {
	Status int         `json:"status"`
	Msg    string      `json:"msg"`
	Data   interface{} `json:"data,omitempty"`
}

// SuccessResponse wraps a successful payload.
func SuccessResponse(msg string, data interface{}) APIResponse {
	return APIResponse{Status: 0, Msg: msg, Data: data}
}

// ErrorResponse wraps a failure with its HTTP status code.
func ErrorResponse(status int, msg string) APIResponse {
	return APIResponse{Status: status, Msg: msg}
}

// renderError maps a service error onto the response envelope. Client errors
// keep their details; internal details stay out of the payload.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	stdErr := errors.AsStandardError(err)
	status := errors.HTTPStatus(stdErr.Code)
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse(status, errors.PublicMessage(stdErr)))
}

// renderBadRequest reports a malformed request body.
func renderBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, ErrorResponse(http.StatusBadRequest, msg))
}
