package dto

import (
	"net/http"
	"time"
)

// Error codes carried in ErrorResponse.Error.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeUnauthorized   = "unauthorized"
	ErrCodeNotFound       = "not_found"
	ErrCodeMethod         = "method_not_allowed"
	ErrCodeConflict       = "conflict"
	ErrCodeRateLimit      = "rate_limit_exceeded"
	ErrCodeTimeout        = "timeout"
	// ErrCodeUnavailable covers a full job queue and an open store circuit.
	ErrCodeUnavailable = "service_unavailable"
	ErrCodeInternal    = "internal_error"
)

var statusErrCodes = map[int]string{
	http.StatusBadRequest:          ErrCodeInvalidRequest,
	http.StatusUnauthorized:        ErrCodeUnauthorized,
	http.StatusNotFound:            ErrCodeNotFound,
	http.StatusMethodNotAllowed:    ErrCodeMethod,
	http.StatusConflict:            ErrCodeConflict,
	http.StatusTooManyRequests:     ErrCodeRateLimit,
	http.StatusRequestTimeout:      ErrCodeTimeout,
	http.StatusGatewayTimeout:      ErrCodeTimeout,
	http.StatusServiceUnavailable:  ErrCodeUnavailable,
	http.StatusInternalServerError: ErrCodeInternal,
}

// SuccessResponse is the envelope for job, run and run-list payloads.
// @Description Successful API response wrapper
type SuccessResponse struct {
	Data      interface{} `json:"data" swaggertype:"object"`
	RequestID string      `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time   `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse is the body of every non-2xx answer.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"quantity: must be a positive number"`
	// Details maps offending fields to their messages.
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError stamps a new error body with the current UTC time.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Error: code, Message: message, Timestamp: time.Now().UTC()}
}

// WithDetails sets per-field details. Empty maps are dropped so the field is omitted.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	if len(details) > 0 {
		e.Details = details
	}
	return e
}

func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus maps an HTTP status to its error code. Unlisted 4xx
// statuses are invalid requests, everything else is internal.
func ErrCodeFromStatus(status int) string {
	if code, ok := statusErrCodes[status]; ok {
		return code
	}
	if status >= 400 && status < 500 {
		return ErrCodeInvalidRequest
	}
	return ErrCodeInternal
}
