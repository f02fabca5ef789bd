package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-optimizer/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTimeoutConfig(t *testing.T) {
	cfg := DefaultTimeoutConfig()

	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "Tempo limite da requisição excedido", cfg.ErrorMessage)
}

// slowOptimization blocks until the request context ends, like an optimizer
// honoring cancellation, and lingers so the middleware answers first.
func slowOptimization(c *gin.Context) {
	<-c.Request.Context().Done()
	time.Sleep(50 * time.Millisecond)
}

func TestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		timeout     time.Duration
		handler     gin.HandlerFunc
		language    string
		wantStatus  int
		wantMessage string
	}{
		{
			name:    "optimization finishing in time",
			timeout: time.Second,
			handler: func(c *gin.Context) {
				time.Sleep(10 * time.Millisecond)
				c.JSON(http.StatusOK, gin.H{"cost": 870})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:        "optimization exceeding the deadline",
			timeout:     30 * time.Millisecond,
			handler:     slowOptimization,
			wantStatus:  http.StatusGatewayTimeout,
			wantMessage: "Tempo limite da requisição excedido",
		},
		{
			name:        "timeout message follows Accept-Language",
			timeout:     30 * time.Millisecond,
			handler:     slowOptimization,
			language:    "en-GB",
			wantStatus:  http.StatusGatewayTimeout,
			wantMessage: "Request timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), TimeoutWithDuration(tt.timeout))
			router.POST("/api/optimize", tt.handler)

			req := httptest.NewRequest(http.MethodPost, "/api/optimize", nil)
			if tt.language != "" {
				req.Header.Set("Accept-Language", tt.language)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusGatewayTimeout {
				return
			}

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, dto.ErrCodeTimeout, resp.Error)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestTimeout_SetsRequestDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var remaining time.Duration
	router.Use(Timeout(TimeoutConfig{Timeout: 2 * time.Second, ErrorMessage: "timeout"}))
	router.POST("/api/optimize", func(c *gin.Context) {
		deadline, ok := c.Request.Context().Deadline()
		if ok {
			remaining = time.Until(deadline)
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/optimize", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Greater(t, remaining, time.Second)
	assert.LessOrEqual(t, remaining, 2*time.Second)
}

func TestTimeout_LateWritesAreDiscarded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), TimeoutWithDuration(20*time.Millisecond))

	wrote := make(chan error, 1)
	router.POST("/api/optimize", func(c *gin.Context) {
		<-c.Request.Context().Done()
		c.Header("X-Late", "1")
		_, err := c.Writer.Write([]byte(`{"cost":870}`))
		wrote <- err
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/optimize", nil))

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.ErrorIs(t, <-wrote, http.ErrHandlerTimeout)
	assert.Empty(t, w.Header().Get("X-Late"))
	assert.NotContains(t, w.Body.String(), "870")
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestTimeout_CommitsHandlerResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   string
		wantHeader string
	}{
		{
			name: "json body and headers",
			handler: func(c *gin.Context) {
				c.Header("X-Optimizer-Status", "optimal")
				c.JSON(http.StatusCreated, gin.H{"cost": 870})
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"cost":870}`,
			wantHeader: "optimal",
		},
		{
			name:       "status only",
			handler:    func(c *gin.Context) { c.Status(http.StatusNoContent) },
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(TimeoutWithDuration(time.Second))
			router.POST("/api/optimize", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/optimize", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantHeader, w.Header().Get("X-Optimizer-Status"))
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestTimeout_PanicReachesRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), Recovery(), TimeoutWithDuration(time.Second))
	router.POST("/api/optimize", func(c *gin.Context) {
		c.Header("X-Partial", "1")
		c.String(http.StatusOK, "partial")
		panic("allocator bug")
	})

	done := make(chan struct{})
	w := httptest.NewRecorder()
	go func() {
		defer close(done)
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/optimize", nil))
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("request hung after handler panic")
	}

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "partial")
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeInternal, resp.Error)
}
