package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnsupportedFormat indicates an unknown report or manifest format.
	ErrCodeUnsupportedFormat = "unsupported_format"
	// ErrCodeUnavailable indicates a backing store is unavailable.
	ErrCodeUnavailable = "unavailable"
	// ErrCodeIdempotencyMismatch indicates an Idempotency-Key reused with a different body.
	ErrCodeIdempotencyMismatch = "idempotency_key_reused"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data (a PackingResult for the pack endpoint)
	Data any `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"items[0].weight: must not be negative"`
	// Details maps each invalid field to its message (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails attaches per-field details to the error response.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusUnsupportedMediaType:
		return ErrCodeUnsupportedFormat
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// RemovePlacedResponse is the outcome of removing a placement.
//
// @Description Updated plan and the unit that was taken out
type RemovePlacedResponse struct {
	Result  model.PackingResult `json:"result"`
	Removed model.UnitItem      `json:"removed"`
} // @name RemovePlacedResponse

// ContainerListResponse lists presets and custom containers.
//
// @Description Available containers and the server default
type ContainerListResponse struct {
	Containers []model.ContainerSpec `json:"containers"`
	DefaultID  string                `json:"default_id" example:"40ft-hc"`
} // @name ContainerListResponse

// ConstraintListResponse lists the constraint catalog in the caller's locale.
//
// @Description Constraint catalog
type ConstraintListResponse struct {
	Constraints []model.ConstraintInfo `json:"constraints"`
	Locale      string                 `json:"locale" example:"en"`
} // @name ConstraintListResponse

// ManifestImportResponse is the parsed content of an uploaded manifest file.
//
// @Description Items parsed from an uploaded manifest
type ManifestImportResponse struct {
	Name        string           `json:"name,omitempty" example:"Week 42 outbound"`
	ContainerID string           `json:"container_id,omitempty" example:"40ft-hc"`
	Items       []model.ItemSpec `json:"items"`
	Format      string           `json:"format" example:"csv"`
} // @name ManifestImportResponse
