package middleware

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/guttosm/quote-optimizer/internal/domain/dto"
	"github.com/guttosm/quote-optimizer/internal/i18n"
	"github.com/guttosm/quote-optimizer/internal/logger"
)

// TimeoutConfig holds configuration for the timeout middleware.
type TimeoutConfig struct {
	// Timeout is the maximum duration for request processing.
	Timeout time.Duration
	// ErrorMessage is used when no translator is available.
	ErrorMessage string
}

// DefaultTimeoutConfig returns a 30s timeout.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:      30 * time.Second,
		ErrorMessage: "Tempo limite da requisição excedido",
	}
}

// Timeout runs the rest of the chain against a buffered writer and answers 504
// if it has not finished within cfg.Timeout. Output produced after the
// deadline is discarded. The request context carries the deadline so the
// optimizer can stop early. Streaming routes such as the job event stream must
// not be wrapped.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		out := c.Writer
		buf := newBufferedWriter(out)
		c.Writer = buf

		var panicked interface{}
		done := make(chan struct{})
		go func() {
			defer close(done)
			defer func() { panicked = recover() }()
			c.Next()
		}()

		select {
		case <-done:
		case <-ctx.Done():
			select {
			case <-done:
			default:
				buf.expire()
				writeTimeout(c, out, cfg)
				// Keep the gin context alive until the handler lets go of it.
				<-done
				if panicked != nil {
					log := logger.Logger()
					log.Error().Str("request_id", GetRequestID(c)).Interface("panic", panicked).
						Msg("handler panicked after timeout")
				}
				return
			}
		}

		if panicked != nil {
			buf.discard()
			panic(panicked)
		}
		buf.commit()
	}
}

func writeTimeout(c *gin.Context, out gin.ResponseWriter, cfg TimeoutConfig) {
	message := cfg.ErrorMessage
	if i18n.GetTranslator() != nil {
		message = i18n.Message(c, i18n.ErrKeyTimeout)
	}

	out.WriteHeader(http.StatusGatewayTimeout)
	_ = render.JSON{Data: dto.NewError(dto.ErrCodeTimeout, message).WithRequestID(GetRequestID(c))}.Render(out)
	out.Flush()
}

// TimeoutWithDuration is Timeout with the default config and the given duration.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}

// bufferedWriter holds a handler's response until the timeout middleware
// either commits it or expires it. Once committed it writes straight through.
type bufferedWriter struct {
	gin.ResponseWriter

	mu          sync.Mutex
	header      http.Header
	body        bytes.Buffer
	status      int
	wroteHeader bool
	committed   bool
	expired     bool
}

func newBufferedWriter(w gin.ResponseWriter) *bufferedWriter {
	return &bufferedWriter{ResponseWriter: w, header: make(http.Header)}
}

func (w *bufferedWriter) Header() http.Header {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.committed {
		return w.ResponseWriter.Header()
	}
	return w.header
}

func (w *bufferedWriter) WriteHeader(code int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch {
	case w.expired:
	case w.committed:
		w.ResponseWriter.WriteHeader(code)
	case !w.wroteHeader:
		w.status = code
	}
}

func (w *bufferedWriter) WriteHeaderNow() {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch {
	case w.expired:
	case w.committed:
		w.ResponseWriter.WriteHeaderNow()
	default:
		w.wroteHeader = true
	}
}

func (w *bufferedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch {
	case w.expired:
		return 0, http.ErrHandlerTimeout
	case w.committed:
		return w.ResponseWriter.Write(p)
	}
	w.wroteHeader = true
	return w.body.Write(p)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

func (w *bufferedWriter) Written() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.committed || w.expired {
		return w.ResponseWriter.Written()
	}
	return w.wroteHeader
}

func (w *bufferedWriter) Status() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.committed || w.expired {
		return w.ResponseWriter.Status()
	}
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *bufferedWriter) Size() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.committed || w.expired {
		return w.ResponseWriter.Size()
	}
	if !w.wroteHeader {
		return -1
	}
	return w.body.Len()
}

// Flush is a no-op while buffering.
func (w *bufferedWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.committed {
		w.ResponseWriter.Flush()
	}
}

// commit copies the buffered response to the real writer and switches to
// write-through.
func (w *bufferedWriter) commit() {
	w.mu.Lock()
	defer w.mu.Unlock()

	dst := w.ResponseWriter.Header()
	for key, values := range w.header {
		dst[key] = values
	}
	if w.status != 0 {
		w.ResponseWriter.WriteHeader(w.status)
	}
	if w.wroteHeader {
		w.ResponseWriter.WriteHeaderNow()
	}
	if w.body.Len() > 0 {
		_, _ = w.ResponseWriter.Write(w.body.Bytes())
	}
	w.committed = true
}

// discard drops the buffered response and switches to write-through, so an
// outer recovery handler can answer.
func (w *bufferedWriter) discard() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.body.Reset()
	w.committed = true
}

// expire makes every later handler write fail with http.ErrHandlerTimeout.
func (w *bufferedWriter) expire() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.expired = true
}
