package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/service"
	"github.com/rs/zerolog/log"
)

// fallbackWriteTimeout bounds direct writes made when no AsyncLogger is installed.
const fallbackWriteTimeout = 5 * time.Second

// AuditLog records a caller action such as a plan edit or a container change.
// container_id and manifest_id in fields become filterable columns.
func AuditLog(logs service.LoggingService, c *gin.Context, action, message string, fields map[string]any) {
	if logs == nil {
		return
	}
	record(logs, auditEntry(c, model.LevelInfo, action, message, fields))
}

// AuditLogError records a rejected caller action with its cause.
func AuditLogError(logs service.LoggingService, c *gin.Context, action, message string, err error, fields map[string]any) {
	if logs == nil {
		return
	}
	entry := auditEntry(c, model.LevelError, action, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	record(logs, entry)
}

func auditEntry(c *gin.Context, level, action, message string, fields map[string]any) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp: time.Now(),
		Kind:      model.KindAudit,
		Level:     level,
		Message:   message,
		RequestID: GetRequestID(c),
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Subject:   GetSubject(c),
		Action:    action,
	}
	if stats, ok := GetPackStats(c); ok {
		entry.ContainerID = stats.ContainerID
		entry.Placed = stats.Placed
		entry.Unpacked = stats.Unpacked
	}
	return entry.WithFields(fields)
}

// record hands entry to the installed AsyncLogger, or writes it from a goroutine.
func record(logs service.LoggingService, entry *model.LogEntry) {
	if al := GetAsyncLogger(); al != nil {
		al.Log(entry)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), fallbackWriteTimeout)
		defer cancel()
		if err := logs.CreateLog(ctx, entry); err != nil {
			log.Warn().Err(err).
				Str("request_id", entry.RequestID).
				Str("kind", entry.Kind).
				Msg("Log entry write failed")
		}
	}()
}
