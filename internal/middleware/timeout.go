package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/i18n"
)

// TimeoutConfig sets the deadline placed on each request context.
type TimeoutConfig struct {
	// Default applies to every route without an override.
	Default time.Duration
	// Routes overrides Default per registered route pattern, e.g. "/api/cargo/pack/report".
	Routes map[string]time.Duration
}

// ReportTimeout derives the config used by the service: report rendering gets twice the default.
func ReportTimeout(d time.Duration) TimeoutConfig {
	return TimeoutConfig{
		Default: d,
		Routes: map[string]time.Duration{
			"/api/cargo/pack/report":    2 * d,
			"/api/manifests/:id/report": 2 * d,
			"/api/manifests/import":     2 * d,
		},
	}
}

func (cfg TimeoutConfig) forRoute(route string) time.Duration {
	if d, ok := cfg.Routes[route]; ok {
		return d
	}
	return cfg.Default
}

// Timeout bounds each request with a context deadline. Handlers and the stores they
// call observe it through c.Request.Context(). A handler that gives up without writing
// a response once the deadline has passed gets a localized 504.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := cfg.forRoute(c.FullPath())
		if d <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if c.Writer.Written() || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}
		RequestLog(c).Warn().
			Str("route", c.FullPath()).
			Dur("timeout", d).
			Msg("Request deadline exceeded")
		abortWithKey(c, http.StatusGatewayTimeout, dto.ErrCodeTimeout, i18n.ErrKeyTimeout)
	}
}
