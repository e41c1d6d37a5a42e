package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/repository"
)

// maxTextLen bounds free-text fields copied from requests into stored entries.
const maxTextLen = 512

// ErrInvalidLogFilter reports a log query whose window ends before it starts.
var ErrInvalidLogFilter = errors.New("invalid log filter")

// LoggingService stores access and audit entries and pages through them.
type LoggingService interface {
	CreateLog(ctx context.Context, entry *model.LogEntry) error
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error
	QueryLogs(ctx context.Context, filter model.LogFilter) (*model.LogPage, error)
}

// LoggingServiceImpl implements LoggingService on a logs repository.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
}

// NewLoggingService creates a new logging service implementation.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{repo: repo}
}

// CreateLog stores a single entry.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	if entry == nil {
		return nil
	}
	return s.repo.Create(ctx, sanitize(entry))
}

// CreateLogs stores a batch. Nil entries are skipped.
func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	batch := make([]*model.LogEntry, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			batch = append(batch, sanitize(e))
		}
	}
	if len(batch) == 0 {
		return nil
	}
	return s.repo.CreateMany(ctx, batch)
}

// QueryLogs returns one page of entries matching filter, newest first, with the total match count.
func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, filter model.LogFilter) (*model.LogPage, error) {
	f := filter.Normalize()
	if f.Since != nil && f.Until != nil && f.Until.Before(*f.Since) {
		return nil, fmt.Errorf("%w: until is before since", ErrInvalidLogFilter)
	}

	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	page := &model.LogPage{Entries: []model.LogEntry{}, Total: total, Limit: f.Limit, Skip: f.Skip}
	if total == 0 || int64(f.Skip) >= total {
		return page, nil
	}

	entries, err := s.repo.Query(ctx, f)
	if err != nil {
		return nil, err
	}
	if entries != nil {
		page.Entries = entries
	}
	return page, nil
}

// sanitize fills the kind and level and clips free-text fields.
func sanitize(e *model.LogEntry) *model.LogEntry {
	if e.Kind == "" {
		e.Kind = model.KindAudit
		if e.StatusCode != 0 {
			e.Kind = model.KindRequest
		}
	}
	switch e.Level {
	case model.LevelInfo, model.LevelWarn, model.LevelError:
	default:
		e.Level = model.LevelInfo
	}
	e.UserAgent = clip(e.UserAgent)
	e.Error = clip(e.Error)
	e.Message = clip(e.Message)
	return e
}

func clip(s string) string {
	if len(s) <= maxTextLen {
		return s
	}
	return s[:maxTextLen]
}
