package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-optimizer/internal/domain/dto"
	"github.com/guttosm/quote-optimizer/internal/i18n"
)

const (
	// IdempotencyKeyHeader carries the client's idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader is set on replayed responses.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long a response stays replayable.
	IdempotencyKeyTTL = 5 * time.Minute

	idempotencyMaxEntries   = 10000
	maxIdempotencyKeyLength = 255
)

// cachedResponse is a stored 2xx response.
type cachedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

type IdempotencyConfig struct {
	Cache   *idempotencyCache
	Enabled bool
}

func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   newIdempotencyCache(IdempotencyKeyTTL, idempotencyMaxEntries),
		Enabled: true,
	}
}

// Idempotency makes POSTs carrying an Idempotency-Key safe to retry. Keys are
// scoped to the API client and path. A successful response is replayed for
// the same key and body; reusing the key with another body is rejected with
// 422, and a retry racing the original gets 409. Failed requests release the
// key.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if c.Request.Method != http.MethodPost || key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			abortIdempotency(c, http.StatusBadRequest, i18n.ErrKeyIdempotencyKeyInvalid)
			return
		}

		scope := idempotencyScope(key, GetClientID(c), c.Request)
		fingerprint, err := bodyFingerprint(c.Request)
		if err != nil {
			abortIdempotency(c, http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody)
			return
		}

		state, stored := cfg.Cache.claim(scope, fingerprint)
		switch state {
		case claimReplay:
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(stored.StatusCode, stored.ContentType, stored.Body)
			c.Abort()
			return
		case claimInFlight:
			abortIdempotency(c, http.StatusConflict, i18n.ErrKeyIdempotencyInFlight)
			return
		case claimMismatch:
			abortIdempotency(c, http.StatusUnprocessableEntity, i18n.ErrKeyIdempotencyMismatch)
			return
		}
		defer cfg.Cache.release(scope)

		writer := &capturingWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		if status := writer.Status(); status >= 200 && status < 300 {
			cfg.Cache.complete(scope, &cachedResponse{
				StatusCode:  status,
				ContentType: writer.Header().Get("Content-Type"),
				Body:        bytes.Clone(writer.body.Bytes()),
			})
		}
	}
}

func abortIdempotency(c *gin.Context, status int, messageKey string) {
	c.AbortWithStatusJSON(status,
		dto.NewError(dto.ErrCodeFromStatus(status), i18n.Message(c, messageKey)).WithRequestID(GetRequestID(c)))
}

func idempotencyScope(key, clientID string, req *http.Request) string {
	h := sha256.New()
	for _, part := range []string{key, clientID, req.URL.Path} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// bodyFingerprint hashes the request body and restores it for the handler.
func bodyFingerprint(req *http.Request) (string, error) {
	if req.Body == nil {
		return "", nil
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return "", err
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:]), nil
}

// capturingWriter copies the response body while writing it through.
type capturingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
