package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/domain/model"
)

func auditContext(subject string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPut, "/api/containers/reefer", nil)
	c.Request.Header.Set("User-Agent", "cargoctl/1.0")
	c.Set(contextKeyRequestID, "req-audit")
	if subject != "" {
		setClaims(c, &dto.Claims{Subject: subject})
	}
	return c
}

func TestAuditLog(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		action  string
		fields  map[string]any
		stats   *PackStats
		check   func(*testing.T, *model.LogEntry)
	}{
		{
			name:    "container change lifts the id",
			subject: "dock-7",
			action:  "container_upsert",
			fields:  map[string]any{"container_id": "reefer", "max_weight": 27400.0},
			check: func(t *testing.T, e *model.LogEntry) {
				assert.Equal(t, "dock-7", e.Subject)
				assert.Equal(t, "reefer", e.ContainerID)
				assert.Equal(t, map[string]any{"max_weight": 27400.0}, e.Fields)
			},
		},
		{
			name:   "anonymous pack carries stats",
			action: "manifest_pack",
			fields: map[string]any{"manifest_id": "65f0c0ffee"},
			stats:  &PackStats{ContainerID: "40ft", Placed: 30, Unpacked: 4},
			check: func(t *testing.T, e *model.LogEntry) {
				assert.Empty(t, e.Subject)
				assert.Equal(t, "65f0c0ffee", e.ManifestID)
				assert.Equal(t, "40ft", e.ContainerID)
				assert.Equal(t, 30, e.Placed)
				assert.Equal(t, 4, e.Unpacked)
				assert.Nil(t, e.Fields)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := withRecorder(t)
			c := auditContext(tt.subject)
			if tt.stats != nil {
				SetPackStats(c, tt.stats.ContainerID, tt.stats.Placed, tt.stats.Unpacked)
			}

			AuditLog(rec, c, tt.action, "Action performed", tt.fields)
			StopAsyncLogger()

			entries := rec.entries()
			require.Len(t, entries, 1)
			e := entries[0]
			assert.Equal(t, model.KindAudit, e.Kind)
			assert.Equal(t, model.LevelInfo, e.Level)
			assert.Equal(t, tt.action, e.Action)
			assert.Equal(t, "req-audit", e.RequestID)
			assert.Equal(t, http.MethodPut, e.Method)
			assert.Equal(t, "cargoctl/1.0", e.UserAgent)
			assert.Empty(t, e.Error)
			tt.check(t, e)
		})
	}
}

func TestAuditLogError(t *testing.T) {
	rec := withRecorder(t)
	c := auditContext("dock-7")

	AuditLogError(rec, c, "container_delete", "Container delete failed", errors.New("container is built in"), map[string]any{"container_id": "20ft"})
	AuditLogError(rec, c, "container_delete", "Container delete failed", nil, nil)
	StopAsyncLogger()

	entries := rec.entries()
	require.Len(t, entries, 2)
	assert.Equal(t, model.LevelError, entries[0].Level)
	assert.Equal(t, "container is built in", entries[0].Error)
	assert.Equal(t, "20ft", entries[0].ContainerID)
	assert.Empty(t, entries[1].Error)
}

func TestAuditLog_NilService(t *testing.T) {
	c := auditContext("dock-7")
	assert.NotPanics(t, func() {
		AuditLog(nil, c, "pack", "Pack requested", nil)
		AuditLogError(nil, c, "pack", "Pack failed", errors.New("boom"), nil)
	})
}
