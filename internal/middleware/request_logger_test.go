//go:build !integration

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/guttosm/quote-optimizer/internal/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLevelForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   zerolog.Level
	}{
		{http.StatusOK, zerolog.InfoLevel},
		{http.StatusAccepted, zerolog.InfoLevel},
		{http.StatusNotModified, zerolog.InfoLevel},
		{http.StatusBadRequest, zerolog.WarnLevel},
		{http.StatusTooManyRequests, zerolog.WarnLevel},
		{http.StatusInternalServerError, zerolog.ErrorLevel},
		{http.StatusServiceUnavailable, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, levelForStatus(tt.status))
		})
	}
}

// storedEntry routes the request through RequestLogger with a mocked audit
// store and returns what reached it.
func storedEntry(t *testing.T, method, target string, register func(*gin.Engine)) *model.LogEntry {
	t.Helper()
	StopAsyncLogger()

	stored := make(chan *model.LogEntry, 1)
	loggingService := mocks.NewMockLoggingService(t)
	loggingService.On("CreateLog", mock.Anything, mock.AnythingOfType("*model.LogEntry")).
		Run(func(args mock.Arguments) { stored <- args.Get(1).(*model.LogEntry) }).
		Return(nil).Once()

	router := gin.New()
	router.Use(RequestID(), func(c *gin.Context) {
		c.Set(string(ClientIDKey), "c0ffee12")
		c.Next()
	}, RequestLogger(loggingService))
	register(router)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, target, nil))

	select {
	case entry := <-stored:
		return entry
	case <-time.After(time.Second):
		t.Fatal("request log not stored")
		return nil
	}
}

func TestRequestLogger_StoresEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		method     string
		target     string
		register   func(*gin.Engine)
		wantStatus int
		wantLevel  string
		wantRoute  interface{}
		wantError  string
	}{
		{
			name:   "optimization answered",
			method: http.MethodPost,
			target: "/api/optimize",
			register: func(r *gin.Engine) {
				r.POST("/api/optimize", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"cost": 870}) })
			},
			wantStatus: http.StatusOK,
			wantLevel:  "info",
		},
		{
			name:   "unknown run keeps its route template",
			method: http.MethodGet,
			target: "/api/runs/r-404",
			register: func(r *gin.Engine) {
				r.GET("/api/runs/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
			},
			wantStatus: http.StatusNotFound,
			wantLevel:  "warn",
			wantRoute:  "/api/runs/:id",
		},
		{
			name:   "handler error is recorded",
			method: http.MethodPost,
			target: "/api/optimize/jobs",
			register: func(r *gin.Engine) {
				r.POST("/api/optimize/jobs", func(c *gin.Context) {
					_ = c.Error(errors.New("queue closed"))
					c.Status(http.StatusServiceUnavailable)
				})
			},
			wantStatus: http.StatusServiceUnavailable,
			wantLevel:  "error",
			wantError:  "queue closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := storedEntry(t, tt.method, tt.target, tt.register)
			require.NotNil(t, entry)

			assert.Equal(t, tt.wantStatus, entry.StatusCode)
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, tt.wantError, entry.Error)
			assert.Equal(t, tt.wantRoute, entry.Fields["route"])
			assert.Equal(t, tt.method, entry.Method)
			assert.Equal(t, "c0ffee12", entry.ClientID)
			assert.NotEmpty(t, entry.RequestID)
			assert.Equal(t, time.UTC, entry.Timestamp.Location())
		})
	}
}

func TestRequestLogger_WithoutAuditStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(nil))
	router.POST("/api/optimize", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/optimize", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestLogger_SkipPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	loggingService := mocks.NewMockLoggingService(t)

	router := gin.New()
	router.Use(RequestLogger(loggingService, "/healthz", "/readyz", "/metrics"))
	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		router.GET(path, func(c *gin.Context) { c.Status(http.StatusOK) })
	}

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
	loggingService.AssertNotCalled(t, "CreateLog", mock.Anything, mock.Anything)
}
