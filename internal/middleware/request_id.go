package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation id in both directions.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds caller ids stored with runs and audit logs.
const maxRequestIDLength = 128

// ContextKey namespaces values stored on the gin context.
type ContextKey string

// RequestIDKey is where RequestID stores the id.
const RequestIDKey ContextKey = "request_id"

// RequestID reuses the caller's X-Request-ID when it is well formed and
// assigns a UUID otherwise. The id is echoed in the response and attached to
// history runs, jobs and audit logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// validRequestID accepts ids made of letters, digits and . _ : - only.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '_', r == ':', r == '-':
		default:
			return false
		}
	}
	return true
}

// GetRequestID returns the id set by RequestID, or "" outside that middleware.
func GetRequestID(c *gin.Context) string {
	if requestID, ok := c.Get(string(RequestIDKey)); ok {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}
