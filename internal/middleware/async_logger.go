package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/guttosm/quote-optimizer/internal/logger"
	"github.com/guttosm/quote-optimizer/internal/metrics"
	"github.com/guttosm/quote-optimizer/internal/service"
)

// AsyncLoggerConfig sizes the audit write pipeline.
type AsyncLoggerConfig struct {
	BufferSize int
	NumWorkers int
	// BatchSize caps the entries written in one CreateLogs call.
	BatchSize int
	// FlushInterval bounds how long a partial batch waits.
	FlushInterval time.Duration
	// WriteTimeout bounds one batch write.
	WriteTimeout time.Duration
}

func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:    1000,
		NumWorkers:    2,
		BatchSize:     50,
		FlushInterval: time.Second,
		WriteTimeout:  5 * time.Second,
	}
}

func (cfg AsyncLoggerConfig) withDefaults() AsyncLoggerConfig {
	d := DefaultAsyncLoggerConfig()
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = d.NumWorkers
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 1
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = d.FlushInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = d.WriteTimeout
	}
	return cfg
}

// AsyncLoggerStats counts entries by outcome.
type AsyncLoggerStats struct {
	Enqueued int64
	Dropped  int64
	Written  int64
	Failed   int64
}

// AsyncLogger moves request and audit entries off the request path. Entries
// go into a bounded buffer and are written in batches by a fixed set of
// workers. A full buffer drops the entry instead of blocking the request.
type AsyncLogger struct {
	sink    service.LoggingService
	cfg     AsyncLoggerConfig
	entries chan *model.LogEntry

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	failed   atomic.Int64
}

// NewAsyncLogger starts the workers. Returns nil when sink is nil.
func NewAsyncLogger(sink service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if sink == nil {
		return nil
	}

	cfg = cfg.withDefaults()
	al := &AsyncLogger{
		sink:    sink,
		cfg:     cfg,
		entries: make(chan *model.LogEntry, cfg.BufferSize),
		stop:    make(chan struct{}),
	}
	for range cfg.NumWorkers {
		al.wg.Go(al.run)
	}
	return al
}

// Log enqueues entry. It returns false, dropping the entry, when the buffer is
// full or the logger is stopped.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	if al.stopped.Load() {
		al.drop()
		return false
	}
	select {
	case al.entries <- entry:
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

// Stop writes what is buffered and waits for the workers. Safe to call more
// than once.
func (al *AsyncLogger) Stop() {
	al.stopOnce.Do(func() {
		al.stopped.Store(true)
		close(al.stop)
	})
	al.wg.Wait()
}

func (al *AsyncLogger) Stats() AsyncLoggerStats {
	return AsyncLoggerStats{
		Enqueued: al.enqueued.Load(),
		Dropped:  al.dropped.Load(),
		Written:  al.written.Load(),
		Failed:   al.failed.Load(),
	}
}

func (al *AsyncLogger) run() {
	ticker := time.NewTicker(al.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]*model.LogEntry, 0, al.cfg.BatchSize)
	add := func(entry *model.LogEntry) {
		batch = append(batch, entry)
		if len(batch) >= al.cfg.BatchSize {
			al.write(batch)
			batch = make([]*model.LogEntry, 0, al.cfg.BatchSize)
		}
	}

	for {
		select {
		case entry := <-al.entries:
			add(entry)
		case <-ticker.C:
			if len(batch) > 0 {
				al.write(batch)
				batch = make([]*model.LogEntry, 0, al.cfg.BatchSize)
			}
		case <-al.stop:
			for {
				select {
				case entry := <-al.entries:
					add(entry)
				default:
					if len(batch) > 0 {
						al.write(batch)
					}
					return
				}
			}
		}
	}
}

func (al *AsyncLogger) write(batch []*model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.cfg.WriteTimeout)
	defer cancel()

	var err error
	if len(batch) == 1 {
		err = al.sink.CreateLog(ctx, batch[0])
	} else {
		err = al.sink.CreateLogs(ctx, batch)
	}

	n := int64(len(batch))
	if err != nil {
		al.failed.Add(n)
		metrics.RecordAuditEntries("failed", len(batch))
		log := logger.Logger()
		log.Warn().Err(err).Int64("entries", n).Msg("Failed to write audit log batch")
		return
	}
	al.written.Add(n)
	metrics.RecordAuditEntries("written", len(batch))
}

var (
	globalAsyncLogger   *AsyncLogger
	globalAsyncLoggerMu sync.RWMutex
)

// InitAsyncLogger installs the process-wide async logger used by
// RequestLogger and AuditLog. A previous one is flushed and replaced.
func InitAsyncLogger(sink service.LoggingService, cfg AsyncLoggerConfig) {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
	}
	globalAsyncLogger = NewAsyncLogger(sink, cfg)
}

func GetAsyncLogger() *AsyncLogger {
	globalAsyncLoggerMu.RLock()
	defer globalAsyncLoggerMu.RUnlock()
	return globalAsyncLogger
}

// StopAsyncLogger flushes and removes the process-wide async logger.
func StopAsyncLogger() {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
		globalAsyncLogger = nil
	}
}
