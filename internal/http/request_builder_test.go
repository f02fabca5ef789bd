package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-optimizer/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONContext(method, target, body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c
}

func TestRequestBuilder_Bind(t *testing.T) {
	tests := []struct {
		name             string
		body             string
		expectedQuantity float64
		expectedOffers   int
		expectError      bool
	}{
		{
			name:             "valid request",
			body:             `{"quantity": 100, "offers": [{"id": "a", "price": 8}]}`,
			expectedQuantity: 100,
			expectedOffers:   1,
		},
		{
			name:        "invalid JSON",
			body:        `{"quantity": invalid}`,
			expectError: true,
		},
		{
			name:        "empty body",
			body:        ``,
			expectError: true,
		},
		{
			name:        "binding rule violated",
			body:        `{"quantity": -1, "offers": []}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newJSONContext(http.MethodPost, "/", tt.body)

			var request dto.OptimizeRequest
			err := NewRequestBuilder(c).Bind(&request)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedQuantity, request.Quantity)
			assert.Len(t, request.Offers, tt.expectedOffers)
		})
	}
}

func TestRequestBuilder_BindQuery(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		expected    dto.RunListQuery
		expectError bool
	}{
		{
			name:     "empty query",
			target:   "/api/runs",
			expected: dto.RunListQuery{},
		},
		{
			name:   "all parameters",
			target: "/api/runs?limit=10&skip=20&source=job&satisfied=true",
			expected: dto.RunListQuery{
				Limit:     10,
				Skip:      20,
				Source:    "job",
				Satisfied: boolPtr(true),
			},
		},
		{
			name:        "limit above maximum",
			target:      "/api/runs?limit=1000",
			expectError: true,
		},
		{
			name:        "unknown source",
			target:      "/api/runs?source=ftp",
			expectError: true,
		},
		{
			name:        "non numeric skip",
			target:      "/api/runs?skip=abc",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newJSONContext(http.MethodGet, tt.target, "")

			var query dto.RunListQuery
			err := NewRequestBuilder(c).BindQuery(&query)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, query)
		})
	}
}

func TestBuildRequestAndValidate(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectedError error
		expectError   bool
	}{
		{
			name: "valid request",
			body: `{"quantity": 100, "offers": [{"id": "a", "price": 8}, {"id": "b", "price": 9}]}`,
		},
		{
			name: "empty offers accepted",
			body: `{"quantity": 100, "offers": []}`,
		},
		{
			name:          "duplicate offer id",
			body:          `{"quantity": 100, "offers": [{"id": "a", "price": 8}, {"id": "a", "price": 9}]}`,
			expectedError: dto.ErrDuplicateOfferID,
			expectError:   true,
		},
		{
			name:        "missing quantity",
			body:        `{"offers": []}`,
			expectError: true,
		},
		{
			name:        "invalid JSON",
			body:        `{`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newJSONContext(http.MethodPost, "/", tt.body)

			req, err := BuildRequestAndValidate[dto.OptimizeRequest](c)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, req)
				if tt.expectedError != nil {
					assert.True(t, errors.Is(err, tt.expectedError))
				}
				return
			}
			require.NoError(t, err)
			require.NotNil(t, req)
		})
	}
}

func TestBuildRequest_WithoutValidator(t *testing.T) {
	type plain struct {
		Name string `json:"name"`
	}
	c := newJSONContext(http.MethodPost, "/", `{"name": "x"}`)

	req, err := BuildRequestAndValidate[plain](c)

	require.NoError(t, err)
	assert.Equal(t, "x", req.Name)
}

func boolPtr(v bool) *bool {
	return &v
}
