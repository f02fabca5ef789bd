package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-optimizer/internal/domain/dto"
	"github.com/guttosm/quote-optimizer/internal/i18n"
	"github.com/guttosm/quote-optimizer/internal/logger"
)

// Recovery turns a handler panic into a translated 500 envelope.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			if err, ok := recovered.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(recovered)
			}

			requestID := GetRequestID(c)
			log := logger.Logger()
			log.Error().
				Str("request_id", requestID).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Interface("panic", recovered).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewError(dto.ErrCodeInternal, i18n.Message(c, i18n.ErrKeyInternalError)).WithRequestID(requestID))
		}()
		c.Next()
	}
}
