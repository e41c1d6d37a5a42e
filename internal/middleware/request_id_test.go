package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		header   string
		wantEcho bool
	}{
		{name: "generated when absent"},
		{name: "caller id reused", header: "dock7-run-42", wantEcho: true},
		{name: "uuid reused", header: "550e8400-e29b-41d4-a716-446655440000", wantEcho: true},
		{name: "trace style id reused", header: "edge:01HQ.7_a", wantEcho: true},
		{name: "spaces rejected", header: "run 42"},
		{name: "newline rejected", header: "run\n42"},
		{name: "overlong rejected", header: strings.Repeat("a", 65)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID())
			router.GET("/api/containers", func(c *gin.Context) {
				c.String(http.StatusOK, GetRequestID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/containers", nil)
			if tt.header != "" {
				req.Header[RequestIDHeader] = []string{tt.header}
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			id := w.Body.String()
			assert.Equal(t, id, w.Header().Get(RequestIDHeader))
			if tt.wantEcho {
				assert.Equal(t, tt.header, id)
				return
			}
			_, err := uuid.Parse(id)
			assert.NoError(t, err, "expected a generated uuid, got %q", id)
		})
	}
}

func TestRequestLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	router := gin.New()
	router.Use(RequestID())
	router.GET("/api/containers", func(c *gin.Context) {
		RequestLog(c).Info().Msg("listing")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/containers", nil)
	req.Header.Set(RequestIDHeader, "dock7-run-42")
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"request_id":"dock7-run-42"`)
	assert.Contains(t, buf.String(), `"message":"listing"`)
}

func TestRequestLog_OutsideRequestID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	l := RequestLog(c)

	require.NotNil(t, l)
	assert.NotEqual(t, zerolog.Disabled, l.GetLevel())
	assert.Empty(t, GetRequestID(c))
}
