// Package i18n translates user-facing API messages.
package i18n

// Message keys, grouped by the layer that emits them.
const (
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody is for bodies that are not valid JSON for the endpoint.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyMethodNotAllowed   = "error.method_not_allowed"

	ErrKeyAPIKeyRequired    = "error.api_key_required"
	ErrKeyInvalidAPIKey     = "error.invalid_api_key"
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	ErrKeyTimeout           = "error.timeout"

	ErrKeyIdempotencyKeyInvalid = "error.idempotency.key_invalid"
	ErrKeyIdempotencyInFlight   = "error.idempotency.in_flight"
	ErrKeyIdempotencyMismatch   = "error.idempotency.mismatch"

	ErrKeyValidationQuantity = "error.validation.quantity"
	ErrKeyValidationOffers   = "error.validation.offers"
	ErrKeyValidationOffer    = "error.validation.offer"

	ErrKeyJobNotFound     = "error.job_not_found"
	ErrKeyQueueFull       = "error.queue_full"
	ErrKeyHistoryDisabled = "error.history_disabled"
	// ErrKeyHistoryUnavailable is used while the history store's circuit is open.
	ErrKeyHistoryUnavailable = "error.history_unavailable"
	ErrKeyRunNotFound        = "error.run_not_found"
	ErrKeyAuditUnavailable   = "error.audit_unavailable"
)
