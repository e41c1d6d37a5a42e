package dto

import (
	"time"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

// AuditQuery holds the query string of GET /api/audit.
type AuditQuery struct {
	Kind        string `form:"kind" example:"audit"`
	Level       string `form:"level" example:"warn"`
	Subject     string `form:"subject" example:"dock-7"`
	Action      string `form:"action" example:"manifest_pack"`
	ContainerID string `form:"container_id" example:"40ft-hc"`
	ManifestID  string `form:"manifest_id"`
	RequestID   string `form:"request_id"`
	PathPrefix  string `form:"path_prefix" example:"/api/cargo"`
	// Since and Until are RFC 3339 timestamps.
	Since string `form:"since" example:"2026-10-01T00:00:00Z"`
	Until string `form:"until"`
	Limit int    `form:"limit" example:"50"`
	Skip  int    `form:"skip"`
}

// Filter validates the query and converts it into a log filter.
func (q AuditQuery) Filter() (model.LogFilter, error) {
	f := model.LogFilter{
		Kind:        q.Kind,
		Level:       q.Level,
		Subject:     q.Subject,
		Action:      q.Action,
		ContainerID: q.ContainerID,
		ManifestID:  q.ManifestID,
		RequestID:   q.RequestID,
		PathPrefix:  q.PathPrefix,
		Limit:       q.Limit,
		Skip:        q.Skip,
	}

	details := map[string]string{}
	if q.Kind != "" && q.Kind != model.KindRequest && q.Kind != model.KindAudit {
		details["kind"] = "must be request or audit"
	}
	if q.Limit < 0 {
		details["limit"] = "must not be negative"
	}
	if q.Skip < 0 {
		details["skip"] = "must not be negative"
	}
	for field, raw := range map[string]string{"since": q.Since, "until": q.Until} {
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			details[field] = "must be an RFC 3339 timestamp"
			continue
		}
		if field == "since" {
			f.Since = &t
		} else {
			f.Until = &t
		}
	}

	if len(details) > 0 {
		return model.LogFilter{}, &ValidationError{Field: "query", Message: "invalid audit query", Details: details}
	}
	return f, nil
}
