package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-optimizer/internal/domain/dto"
	"github.com/guttosm/quote-optimizer/internal/i18n"
	"github.com/guttosm/quote-optimizer/internal/middleware"
	"github.com/rs/zerolog/log"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	resp.Error = ""
	resp.Message = ""
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	resp.Details = nil
	errorResponsePool.Put(resp)
}

// RequestBuilder binds request bodies and query strings.
type RequestBuilder struct {
	c *gin.Context
}

// NewRequestBuilder creates a new request builder for the given context.
func NewRequestBuilder(c *gin.Context) *RequestBuilder {
	return &RequestBuilder{c: c}
}

// Bind unmarshals the JSON body into v and applies its binding rules.
func (b *RequestBuilder) Bind(v interface{}) error {
	return b.c.ShouldBindJSON(v)
}

// BindQuery binds query parameters into v.
func (b *RequestBuilder) BindQuery(v interface{}) error {
	return b.c.ShouldBindQuery(v)
}

// BuildRequest binds the JSON body into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := NewRequestBuilder(c).Bind(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Validator is implemented by requests with rules beyond their binding tags.
type Validator interface {
	Validate() error
}

// BuildRequestAndValidate binds the JSON body into a new T and runs its
// Validate method when it has one.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if validator, ok := any(req).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// ResponseBuilder writes the success and error envelopes. Envelopes are
// pooled; gin serializes synchronously so they can be returned right after.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success wraps data in the success envelope.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now().UTC()

	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessAccepted sends a 202 Accepted response with the given data.
func (b *ResponseBuilder) SuccessAccepted(data interface{}) {
	b.Success(http.StatusAccepted, data)
}

// Error aborts with the error envelope carrying the translated messageKey.
// Server errors are attached to the context for ErrorHandler; client errors
// are only logged at debug level.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.write(statusCode, i18n.Message(b.c, messageKey), nil, err)
}

// ErrorWithDetails is Error with per-field details.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, details map[string]string, err error) {
	b.write(statusCode, i18n.Message(b.c, messageKey), details, err)
}

// ErrorWithMessage is Error with an already translated message.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	b.write(statusCode, message, nil, err)
}

func (b *ResponseBuilder) write(statusCode int, message string, details map[string]string, err error) {
	requestID := middleware.GetRequestID(b.c)

	resp := getErrorResponse()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = message
	resp.RequestID = requestID
	resp.Timestamp = time.Now().UTC()
	if len(details) > 0 {
		resp.Details = details
	}

	if err != nil {
		if statusCode >= http.StatusInternalServerError {
			_ = b.c.Error(err)
		} else {
			log.Debug().Err(err).Str("request_id", requestID).Int("status", statusCode).Msg("Request rejected")
		}
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}
