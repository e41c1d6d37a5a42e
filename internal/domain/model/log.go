package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Log levels stored with each entry.
const (
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Kinds of log entry.
const (
	// KindRequest marks the per-request access record.
	KindRequest = "request"
	// KindAudit marks a caller action such as a pack run or a container change.
	KindAudit = "audit"
)

// Audit log paging limits.
const (
	DefaultLogLimit = 50
	MaxLogLimit     = 500
)

// LogEntry is a persisted access or audit record.
// ContainerID and ManifestID are lifted out of Fields so audit queries can filter on them.
type LogEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
	Kind        string             `bson:"kind" json:"kind"`
	Level       string             `bson:"level" json:"level"`
	Message     string             `bson:"message" json:"message"`
	RequestID   string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method      string             `bson:"method,omitempty" json:"method,omitempty"`
	Path        string             `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode  int                `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration    int64              `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP          string             `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent   string             `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error       string             `bson:"error,omitempty" json:"error,omitempty"`
	Subject     string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Action      string             `bson:"action,omitempty" json:"action,omitempty"`
	ContainerID string             `bson:"container_id,omitempty" json:"container_id,omitempty"`
	ManifestID  string             `bson:"manifest_id,omitempty" json:"manifest_id,omitempty"`
	Placed      int                `bson:"placed,omitempty" json:"placed,omitempty"`
	Unpacked    int                `bson:"unpacked,omitempty" json:"unpacked,omitempty"`
	Fields      map[string]any     `bson:"fields,omitempty" json:"fields,omitempty"`
} // @name LogEntry

// WithFields merges fields into the entry, lifting the well-known ids.
func (e *LogEntry) WithFields(fields map[string]any) *LogEntry {
	for k, v := range fields {
		switch k {
		case "container_id":
			if s, ok := v.(string); ok {
				e.ContainerID = s
				continue
			}
		case "manifest_id":
			if s, ok := v.(string); ok {
				e.ManifestID = s
				continue
			}
		}
		if e.Fields == nil {
			e.Fields = make(map[string]any, len(fields))
		}
		e.Fields[k] = v
	}
	return e
}

// LevelForStatus maps an HTTP status onto a log level.
func LevelForStatus(status int) string {
	switch {
	case status >= 500:
		return LevelError
	case status >= 400:
		return LevelWarn
	default:
		return LevelInfo
	}
}

// LogFilter selects audit and access entries.
type LogFilter struct {
	Kind        string
	Level       string
	Subject     string
	Action      string
	ContainerID string
	ManifestID  string
	RequestID   string
	// PathPrefix matches literally from the start of the request path.
	PathPrefix string
	Since      *time.Time
	Until      *time.Time
	Limit      int
	Skip       int
}

// Normalize clamps paging and trims string filters.
func (f LogFilter) Normalize() LogFilter {
	f.Kind = strings.TrimSpace(f.Kind)
	f.Level = strings.ToLower(strings.TrimSpace(f.Level))
	f.Subject = strings.TrimSpace(f.Subject)
	f.Action = strings.TrimSpace(f.Action)
	f.ContainerID = strings.TrimSpace(f.ContainerID)
	f.ManifestID = strings.TrimSpace(f.ManifestID)
	f.RequestID = strings.TrimSpace(f.RequestID)
	f.PathPrefix = strings.TrimSpace(f.PathPrefix)
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultLogLimit
	case f.Limit > MaxLogLimit:
		f.Limit = MaxLogLimit
	}
	if f.Skip < 0 {
		f.Skip = 0
	}
	return f
}

// LogPage is one page of a log query.
type LogPage struct {
	Entries []LogEntry `json:"entries"`
	Total   int64      `json:"total"`
	Limit   int        `json:"limit"`
	Skip    int        `json:"skip"`
} // @name LogPage
