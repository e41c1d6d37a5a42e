package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/logger"
	"github.com/guttosm/cargo-service/internal/metrics"
	"github.com/guttosm/cargo-service/internal/service"
)

// AsyncLoggerConfig tunes the batching audit writer.
type AsyncLoggerConfig struct {
	// QueueSize bounds entries waiting to be written. Entries beyond it are dropped.
	QueueSize int
	// BatchSize flushes as soon as this many entries are pending.
	BatchSize int
	// FlushInterval flushes a partial batch after this long.
	FlushInterval time.Duration
	// WriteTimeout bounds each bulk insert.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns the writer settings used by the service.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		QueueSize:     2048,
		BatchSize:     64,
		FlushInterval: 500 * time.Millisecond,
		WriteTimeout:  5 * time.Second,
	}
}

func (cfg AsyncLoggerConfig) withDefaults() AsyncLoggerConfig {
	def := DefaultAsyncLoggerConfig()
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = def.QueueSize
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = def.FlushInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}
	return cfg
}

// AsyncLoggerStats counts entries by outcome.
type AsyncLoggerStats struct {
	Enqueued int64 `json:"enqueued"`
	Dropped  int64 `json:"dropped"`
	Written  int64 `json:"written"`
	Failed   int64 `json:"failed"`
	Batches  int64 `json:"batches"`
}

// AsyncLogger queues access and audit entries and writes them in bulk from a single
// goroutine, so request handling never waits on MongoDB.
type AsyncLogger struct {
	logs  service.LoggingService
	cfg   AsyncLoggerConfig
	queue chan *model.LogEntry

	stopOnce sync.Once
	stopping chan struct{}
	done     chan struct{}

	enqueued, dropped, written, failed, batches atomic.Int64
}

// NewAsyncLogger starts a writer for logs. It returns nil when logs is nil.
func NewAsyncLogger(logs service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if logs == nil {
		return nil
	}
	cfg = cfg.withDefaults()

	al := &AsyncLogger{
		logs:     logs,
		cfg:      cfg,
		queue:    make(chan *model.LogEntry, cfg.QueueSize),
		stopping: make(chan struct{}),
		done:     make(chan struct{}),
	}
	go al.run()
	return al
}

func (al *AsyncLogger) run() {
	defer close(al.done)

	ticker := time.NewTicker(al.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]*model.LogEntry, 0, al.cfg.BatchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		al.write(batch)
		batch = make([]*model.LogEntry, 0, al.cfg.BatchSize)
	}

	for {
		select {
		case e := <-al.queue:
			batch = append(batch, e)
			if len(batch) >= al.cfg.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-al.stopping:
			for {
				select {
				case e := <-al.queue:
					batch = append(batch, e)
					if len(batch) >= al.cfg.BatchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}

func (al *AsyncLogger) write(batch []*model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.cfg.WriteTimeout)
	defer cancel()

	al.batches.Add(1)
	if err := al.logs.CreateLogs(ctx, batch); err != nil {
		al.failed.Add(int64(len(batch)))
		metrics.RecordAuditEntries("failed", len(batch))
		l := logger.Component("audit")
		l.Warn().Err(err).Int("entries", len(batch)).Msg("Audit batch write failed")
		return
	}
	al.written.Add(int64(len(batch)))
	metrics.RecordAuditEntries("written", len(batch))
}

// Log queues entry without blocking. It reports false when the queue is full or the
// writer has been stopped.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	if al == nil || entry == nil {
		return false
	}
	select {
	case <-al.stopping:
		al.drop()
		return false
	default:
	}
	select {
	case al.queue <- entry:
		al.enqueued.Add(1)
		return true
	default:
		al.drop()
		return false
	}
}

func (al *AsyncLogger) drop() {
	al.dropped.Add(1)
	metrics.RecordAuditEntries("dropped", 1)
}

// Stop flushes queued entries and waits for the writer to exit. It is safe to call twice.
func (al *AsyncLogger) Stop() {
	if al == nil {
		return
	}
	al.stopOnce.Do(func() { close(al.stopping) })
	<-al.done
}

// Stats returns a snapshot of the writer counters.
func (al *AsyncLogger) Stats() AsyncLoggerStats {
	return AsyncLoggerStats{
		Enqueued: al.enqueued.Load(),
		Dropped:  al.dropped.Load(),
		Written:  al.written.Load(),
		Failed:   al.failed.Load(),
		Batches:  al.batches.Load(),
	}
}

var (
	asyncLogger   *AsyncLogger
	asyncLoggerMu sync.RWMutex
)

// InitAsyncLogger installs the process-wide writer, stopping any previous one.
func InitAsyncLogger(logs service.LoggingService, cfg AsyncLoggerConfig) {
	asyncLoggerMu.Lock()
	defer asyncLoggerMu.Unlock()

	asyncLogger.Stop()
	asyncLogger = NewAsyncLogger(logs, cfg)
}

// GetAsyncLogger returns the process-wide writer, or nil.
func GetAsyncLogger() *AsyncLogger {
	asyncLoggerMu.RLock()
	defer asyncLoggerMu.RUnlock()
	return asyncLogger
}

// StopAsyncLogger flushes and removes the process-wide writer.
func StopAsyncLogger() {
	asyncLoggerMu.Lock()
	defer asyncLoggerMu.Unlock()

	asyncLogger.Stop()
	asyncLogger = nil
}
