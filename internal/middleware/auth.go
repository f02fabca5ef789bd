package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-optimizer/internal/domain/dto"
	"github.com/guttosm/quote-optimizer/internal/i18n"
)

const (
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery exists for EventSource clients, which cannot set headers.
	APIKeyQuery = "api_key"

	ClientIDKey ContextKey = "client_id"

	bearerPrefix = "Bearer "
)

// APIKeyAuth accepts a key from X-API-Key, an Authorization bearer token or
// the api_key query parameter, in that order. Keys are compared by SHA-256
// digest in constant time, and only a short fingerprint of an accepted key is
// kept on the context. An empty key set disables authentication.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	digests := make([][sha256.Size]byte, 0, len(validKeys))
	for key, enabled := range validKeys {
		if enabled && key != "" {
			digests = append(digests, sha256.Sum256([]byte(key)))
		}
	}
	if len(digests) == 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := presentedKey(c)
		if key == "" {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}
		if !knownDigest(digests, sha256.Sum256([]byte(key))) {
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Set(string(ClientIDKey), ClientFingerprint(key))
		c.Next()
	}
}

func presentedKey(c *gin.Context) string {
	if key := c.GetHeader(APIKeyHeader); key != "" {
		return key
	}
	if auth := c.GetHeader("Authorization"); len(auth) > len(bearerPrefix) &&
		strings.EqualFold(auth[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(auth[len(bearerPrefix):])
	}
	return c.Query(APIKeyQuery)
}

// knownDigest checks every digest so timing does not depend on which matched.
func knownDigest(digests [][sha256.Size]byte, sum [sha256.Size]byte) bool {
	found := 0
	for i := range digests {
		found |= subtle.ConstantTimeCompare(digests[i][:], sum[:])
	}
	return found == 1
}

func abortUnauthorized(c *gin.Context, messageKey string) {
	c.Header("WWW-Authenticate", `Bearer realm="quote-optimizer"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewError(dto.ErrCodeUnauthorized, i18n.Message(c, messageKey)).WithRequestID(GetRequestID(c)))
}

// ClientFingerprint is the first 8 hex characters of the key's SHA-256.
func ClientFingerprint(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:4])
}

// GetClientID returns the fingerprint set by APIKeyAuth, or "".
func GetClientID(c *gin.Context) string {
	return c.GetString(string(ClientIDKey))
}
