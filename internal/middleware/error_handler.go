package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-optimizer/internal/domain/dto"
	"github.com/guttosm/quote-optimizer/internal/i18n"
	"github.com/guttosm/quote-optimizer/internal/logger"
)

// ErrorHandler logs errors attached to the gin context and, when the handler
// wrote nothing, answers with a 500 envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.Logger()
		log.Error().
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("errors", len(c.Errors)).
			Msg("Request error")

		if !c.Writer.Written() {
			errorResp := dto.NewError(dto.ErrCodeInternal, i18n.Message(c, i18n.ErrKeyInternalError)).
				WithRequestID(requestID)
			c.JSON(http.StatusInternalServerError, errorResp)
		}
	}
}
