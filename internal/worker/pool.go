package worker

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/guttosm/quote-optimizer/internal/logger"
	"github.com/guttosm/quote-optimizer/internal/metrics"
	"github.com/guttosm/quote-optimizer/internal/service"
	"github.com/rs/zerolog/log"
)

var (
	// ErrQueueFull is returned by Submit when no queue slot is free.
	ErrQueueFull = errors.New("optimization queue is full")
	// ErrPoolStopped is returned by Submit after Stop.
	ErrPoolStopped = errors.New("worker pool is stopped")
)

// unexpectedErrorMessage is reported when a run panics with a non-error value.
const unexpectedErrorMessage = "Erro inesperado ao otimizar."

// Runner computes an optimization, reporting per-offer progress.
type Runner interface {
	OptimizeWithProgress(input model.OptimizeInput, progress service.ProgressFunc) model.OptimizeResult
}

// CompletionFunc is called once per job after its terminal event.
type CompletionFunc func(job *Job)

// Config holds worker pool configuration.
type Config struct {
	// PoolSize is the number of goroutines running jobs.
	PoolSize int
	// QueueSize is the number of jobs that may wait for a goroutine.
	QueueSize int
	// ProgressInterval is how often the latest progress is re-emitted.
	ProgressInterval time.Duration
	// JobRetention is how long finished jobs stay available for polling.
	JobRetention time.Duration
}

// DefaultConfig returns the default pool configuration.
func DefaultConfig() Config {
	return Config{
		PoolSize:         4,
		QueueSize:        100,
		ProgressInterval: 500 * time.Millisecond,
		JobRetention:     10 * time.Minute,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.PoolSize <= 0 {
		c.PoolSize = d.PoolSize
	}
	if c.QueueSize <= 0 {
		c.QueueSize = d.QueueSize
	}
	if c.ProgressInterval <= 0 {
		c.ProgressInterval = d.ProgressInterval
	}
	if c.JobRetention <= 0 {
		c.JobRetention = d.JobRetention
	}
	return c
}

// Option configures a Pool.
type Option func(*Pool)

// WithCompletionHook registers fn to run after every job.
func WithCompletionHook(fn CompletionFunc) Option {
	return func(p *Pool) {
		p.onComplete = fn
	}
}

// Pool runs submitted jobs on a fixed set of goroutines.
type Pool struct {
	runner     Runner
	cfg        Config
	onComplete CompletionFunc

	queue   chan *Job
	mu      sync.RWMutex
	jobs    map[string]*Job
	stopped bool

	wg       sync.WaitGroup
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewPool starts cfg.PoolSize workers executing jobs with runner.
func NewPool(runner Runner, cfg Config, opts ...Option) *Pool {
	cfg = cfg.withDefaults()
	p := &Pool{
		runner: runner,
		cfg:    cfg,
		queue:  make(chan *Job, cfg.QueueSize),
		jobs:   make(map[string]*Job),
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	for i := 0; i < cfg.PoolSize; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	go p.janitor()

	log.Info().
		Int("pool_size", cfg.PoolSize).
		Int("queue_size", cfg.QueueSize).
		Dur("progress_interval", cfg.ProgressInterval).
		Msg("Worker pool started")
	return p
}

// Submit enqueues input and returns its job without waiting for a worker.
func (p *Pool) Submit(input model.OptimizeInput, requestID string) (*Job, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return nil, ErrPoolStopped
	}

	job := newJob(input, requestID)
	select {
	case p.queue <- job:
	default:
		metrics.RecordWorkerJob("rejected")
		return nil, ErrQueueFull
	}
	p.jobs[job.ID] = job
	metrics.WorkerQueueDepth.Set(float64(len(p.queue)))

	jobLog := logger.ForJob(job.ID, requestID)
	jobLog.Debug().Msg("Optimization job queued")
	return job, nil
}

// Get returns a job that is queued, running or finished within the retention window.
func (p *Pool) Get(id string) (*Job, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	job, ok := p.jobs[id]
	return job, ok
}

// Stop rejects new jobs, runs the queued ones and waits for the workers. Safe
// to call more than once.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.stopped = true
		close(p.queue)
		p.mu.Unlock()

		p.wg.Wait()
		close(p.stopCh)
		log.Info().Msg("Worker pool stopped")
	})
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.queue {
		metrics.WorkerQueueDepth.Set(float64(len(p.queue)))
		p.run(job)
	}
}

func (p *Pool) run(job *Job) {
	metrics.WorkerJobsInFlight.Inc()
	defer metrics.WorkerJobsInFlight.Dec()

	job.start()

	stopTicks := make(chan struct{})
	ticksDone := make(chan struct{})
	go func() {
		defer close(ticksDone)
		ticker := time.NewTicker(p.cfg.ProgressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				job.tick()
			case <-stopTicks:
				return
			}
		}
	}()

	result, err := p.execute(job)
	close(stopTicks)
	<-ticksDone

	jobLog := logger.ForJob(job.ID, job.RequestID)
	if err != nil {
		job.fail(err.Error())
		metrics.RecordWorkerJob("failed")
		jobLog.Error().Err(err).Msg("Optimization job failed")
	} else {
		job.reportProgress(100)
		job.succeed(result)
		metrics.RecordWorkerJob("succeeded")
		jobLog.Debug().Dur("duration", job.Duration()).Msg("Optimization job finished")
	}

	if p.onComplete != nil {
		p.onComplete(job)
	}
}

// execute runs the optimization, turning a panic into an error.
func (p *Pool) execute(job *Job) (result model.OptimizeResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = errors.New(unexpectedErrorMessage)
			}
			jobLog := logger.ForJob(job.ID, job.RequestID)
			jobLog.Error().Str("panic", fmt.Sprint(r)).Msg("Recovered from panic in optimization job")
		}
	}()
	return p.runner.OptimizeWithProgress(job.input, job.reportProgress), nil
}

func (p *Pool) janitor() {
	interval := p.cfg.JobRetention / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.evictFinished(time.Now().Add(-p.cfg.JobRetention))
		case <-p.stopCh:
			return
		}
	}
}

// evictFinished drops jobs that finished before cutoff and returns how many.
func (p *Pool) evictFinished(cutoff time.Time) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	evicted := 0
	for id, job := range p.jobs {
		if job.finishedBefore(cutoff) {
			delete(p.jobs, id)
			evicted++
		}
	}
	if evicted > 0 {
		log.Debug().Int("evicted", evicted).Msg("Evicted finished optimization jobs")
	}
	return evicted
}
