package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/service"
	"github.com/rs/zerolog"
)

const contextKeyPackStats = "pack_stats"

// PackStats summarizes the packing run a request performed.
type PackStats struct {
	ContainerID string
	Placed      int
	Unpacked    int
}

// SetPackStats records the outcome of a packing run for the access log.
func SetPackStats(c *gin.Context, containerID string, placed, unpacked int) {
	c.Set(contextKeyPackStats, PackStats{ContainerID: containerID, Placed: placed, Unpacked: unpacked})
}

// GetPackStats returns the stats recorded by SetPackStats.
func GetPackStats(c *gin.Context) (PackStats, bool) {
	v, ok := c.Get(contextKeyPackStats)
	if !ok {
		return PackStats{}, false
	}
	s, ok := v.(PackStats)
	return s, ok
}

// probeRoutes are polled by orchestrators and scrapers. They are logged at debug and never persisted.
var probeRoutes = map[string]bool{
	"/healthz":      true,
	"/readyz":       true,
	"/metrics":      true,
	"/swagger/*any": true,
}

// RequestLogger writes one access line per request and, when logs is set, queues the
// same record for the audit store. Requests that packed cargo carry the container and
// unit counts.
func RequestLogger(logs service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		status := c.Writer.Status()
		entry := &model.LogEntry{
			Timestamp:  start,
			Kind:       model.KindRequest,
			Level:      model.LevelForStatus(status),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: status,
			Duration:   time.Since(start).Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			Subject:    GetSubject(c),
		}
		if stats, ok := GetPackStats(c); ok {
			entry.ContainerID = stats.ContainerID
			entry.Placed = stats.Placed
			entry.Unpacked = stats.Unpacked
		}

		probe := probeRoutes[route]
		logAccess(RequestLog(c), entry, route, probe)
		if logs != nil && !probe {
			record(logs, entry)
		}
	}
}

func logAccess(l *zerolog.Logger, e *model.LogEntry, route string, probe bool) {
	var event *zerolog.Event
	switch {
	case probe:
		event = l.Debug()
	case e.Level == model.LevelError:
		event = l.Error()
	case e.Level == model.LevelWarn:
		event = l.Warn()
	default:
		event = l.Info()
	}

	event = event.
		Str("method", e.Method).
		Str("path", e.Path).
		Str("route", route).
		Int("status_code", e.StatusCode).
		Int64("duration_ms", e.Duration).
		Str("ip", e.IP)
	if e.Subject != "" {
		event = event.Str("subject", e.Subject)
	}
	if e.ContainerID != "" {
		event = event.
			Str("container_id", e.ContainerID).
			Int("placed", e.Placed).
			Int("unpacked", e.Unpacked)
	}
	event.Msg(e.Message)
}
