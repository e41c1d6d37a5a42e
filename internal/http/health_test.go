package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readyBody struct {
	Status string         `json:"status"`
	Checks map[string]any `json:"checks"`
	Stats  map[string]any `json:"stats"`
}

func probe(t *testing.T, h *HealthHandler, path string) (int, readyBody) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h.Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var body readyBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func trippedBreaker() *circuitbreaker.CircuitBreaker {
	cb := circuitbreaker.New(circuitbreaker.Config{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Hour})
	_ = cb.Execute(context.Background(), func() error { return errors.New("write failed") })
	return cb
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(h *HealthHandler)
		wantStatus int
		wantChecks map[string]any
	}{
		{
			name:       "no dependencies",
			setup:      func(*HealthHandler) {},
			wantStatus: http.StatusOK,
			wantChecks: map[string]any{"service": "ok"},
		},
		{
			name: "closed breaker",
			setup: func(h *HealthHandler) {
				h.RegisterCircuitBreaker("mongodb_logs", circuitbreaker.New(circuitbreaker.DefaultConfig()))
			},
			wantStatus: http.StatusOK,
			wantChecks: map[string]any{"mongodb_logs_circuit": "closed"},
		},
		{
			name: "open breaker",
			setup: func(h *HealthHandler) {
				h.RegisterCircuitBreaker("mongodb_manifests", trippedBreaker())
			},
			wantStatus: http.StatusServiceUnavailable,
			wantChecks: map[string]any{"mongodb_manifests_circuit": "open"},
		},
		{
			name: "nil breaker ignored",
			setup: func(h *HealthHandler) {
				h.RegisterCircuitBreaker("mongodb_logs", nil)
			},
			wantStatus: http.StatusOK,
			wantChecks: map[string]any{"service": "ok"},
		},
		{
			name: "failing dependency",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("mongodb", CheckerFunc(func(context.Context) error {
					return errors.New("server selection timeout")
				}))
				h.RegisterChecker("cache", CheckerFunc(func(context.Context) error { return nil }))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantChecks: map[string]any{"mongodb": "server selection timeout", "cache": "ok"},
		},
		{
			name: "healthy dependency",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("mongodb", CheckerFunc(func(context.Context) error { return nil }))
			},
			wantStatus: http.StatusOK,
			wantChecks: map[string]any{"mongodb": "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler()
			tt.setup(h)

			code, body := probe(t, h, "/readyz")

			assert.Equal(t, tt.wantStatus, code)
			assert.Equal(t, tt.wantChecks, body.Checks)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "ok", body.Status)
			} else {
				assert.Equal(t, "degraded", body.Status)
			}
		})
	}
}

func TestHealthHandler_CheckTimeout(t *testing.T) {
	h := NewHealthHandler(WithCheckTimeout(20 * time.Millisecond))
	h.RegisterChecker("mongodb", CheckerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))

	start := time.Now()
	code, body := probe(t, h, "/readyz")

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, context.DeadlineExceeded.Error(), body.Checks["mongodb"])
}

func TestHealthHandler_Stats(t *testing.T) {
	h := NewHealthHandler()
	h.RegisterStats("idempotency_keys", func() any { return 3 })

	code, body := probe(t, h, "/readyz")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"idempotency_keys": float64(3)}, body.Stats)
}

func TestHealthHandler_Liveness(t *testing.T) {
	h := NewHealthHandler()
	h.RegisterChecker("mongodb", CheckerFunc(func(context.Context) error { return errors.New("down") }))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h.Register(router)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["uptime"])
}
