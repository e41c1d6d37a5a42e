package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/circuitbreaker"
	"golang.org/x/sync/errgroup"
)

// DefaultCheckTimeout bounds each dependency probe on /readyz.
const DefaultCheckTimeout = 2 * time.Second

// HealthChecker probes one dependency.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to HealthChecker.
type CheckerFunc func(ctx context.Context) error

// Check implements HealthChecker.
func (f CheckerFunc) Check(ctx context.Context) error { return f(ctx) }

// StatsFunc reports diagnostic counters. Stats never change the probe status.
type StatsFunc func() any

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
	stats           map[string]StatsFunc
	timeout         time.Duration
	started         time.Time
}

// HealthOption configures a HealthHandler.
type HealthOption func(*HealthHandler)

// WithCheckTimeout overrides DefaultCheckTimeout.
func WithCheckTimeout(d time.Duration) HealthOption {
	return func(h *HealthHandler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
		stats:           make(map[string]StatsFunc),
		timeout:         DefaultCheckTimeout,
		started:         time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterCircuitBreaker reports cb's state on /readyz. An open breaker fails the probe.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	if cb != nil {
		h.circuitBreakers[name] = cb
	}
}

// RegisterChecker adds a dependency probe to the readiness check.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// RegisterStats adds a diagnostic section to the readiness body.
func (h *HealthHandler) RegisterStats(name string, fn StatsFunc) {
	h.stats[name] = fn
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK while the process is serving requests.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]any "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Probes MongoDB and the repository circuit breakers. Returns 503 when any of them is unhealthy.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]any "Service is ready"
// @Failure     503 {object} map[string]any "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks, healthy := h.runChecks(c.Request.Context())

	for name, cb := range h.circuitBreakers {
		stats := cb.GetStats()
		checks[name+"_circuit"] = stats.State
		if !stats.IsHealthy {
			healthy = false
		}
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	body := gin.H{"status": "ok", "checks": checks}
	if len(h.stats) > 0 {
		stats := make(map[string]any, len(h.stats))
		for name, fn := range h.stats {
			stats[name] = fn()
		}
		body["stats"] = stats
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
		body["status"] = "degraded"
	}
	c.JSON(status, body)
}

// runChecks probes every checker concurrently, each under h.timeout.
func (h *HealthHandler) runChecks(ctx context.Context) (map[string]any, bool) {
	var (
		mu      sync.Mutex
		healthy = true
		checks  = make(map[string]any, len(h.checkers)+len(h.circuitBreakers))
	)
	g, gctx := errgroup.WithContext(ctx)
	for name, checker := range h.checkers {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(gctx, h.timeout)
			defer cancel()

			err := checker.Check(cctx)

			mu.Lock()
			defer mu.Unlock()
			checks[name] = "ok"
			if err != nil {
				checks[name] = err.Error()
				healthy = false
			}
			return nil
		})
	}
	_ = g.Wait()
	return checks, healthy
}
