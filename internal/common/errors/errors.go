// Package errors provides standardized error handling for the prediction service.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Caller input problems (4xx-equivalent).
	ErrCodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	ErrCodeUniversityNotFound ErrorCode = "UNIVERSITY_NOT_FOUND"

	// Configuration / internal problems (5xx-equivalent).
	ErrCodeComputationFailed  ErrorCode = "COMPUTATION_FAILED"
	ErrCodeCatalogLoadFailed  ErrorCode = "CATALOG_LOAD_FAILED"
	ErrCodeCacheBackendFailed ErrorCode = "CACHE_BACKEND_FAILED"
	ErrCodeInternal           ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewValidationError creates a non-retryable input validation error naming the
// offending field.
func NewValidationError(field, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   fmt.Sprintf("Invalid value for field '%s'", field),
		Details:   details,
		Retryable: false,
		Metadata:  map[string]interface{}{"field": field},
		Timestamp: time.Now().UTC(),
	}
}

// NewUniversityNotFoundError creates a non-retryable catalog lookup error.
func NewUniversityNotFoundError(name string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUniversityNotFound,
		Message:   "University not found in catalog",
		Details:   fmt.Sprintf("university: %s", name),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewComputationError creates a non-retryable internal computation error.
// Details are for logging only and must not be surfaced to callers.
func NewComputationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeComputationFailed,
		Message:   "Prediction computation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogLoadError creates a non-retryable catalog loading error.
func NewCatalogLoadError(source string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLoadFailed,
		Message:   "University catalog could not be loaded",
		Details:   fmt.Sprintf("source: %s, error: %s", source, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheBackendError creates a retryable cache backend error. Cache failures
// degrade to recomputation and are never surfaced to callers.
func NewCacheBackendError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheBackendFailed,
		Message:   "Prediction cache backend error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected error.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// AsStandardError normalizes any error into a StandardError.
func AsStandardError(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return NewInternalError(err)
}

// HTTPStatus maps an error code to the HTTP status the boundary should return.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeUniversityNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// IsClientError reports whether the error is caused by caller input.
func IsClientError(code ErrorCode) bool {
	return HTTPStatus(code) < http.StatusInternalServerError
}

// PublicMessage returns the message safe to surface to callers. Internal
// failures are reduced to a generic message; the details stay in the logs.
func PublicMessage(e *StandardError) string {
	if IsClientError(e.Code) {
		if e.Details != "" {
			return fmt.Sprintf("%s: %s", e.Message, e.Details)
		}
		return e.Message
	}
	return "An internal error occurred"
}
