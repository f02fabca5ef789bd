// Package worker runs optimizations in the background. A Pool drains a
// bounded queue with a fixed number of goroutines; each submitted Job streams
// progress events followed by exactly one result or error event.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/quote-optimizer/internal/domain/model"
)

// ErrJobFailed wraps the message of a job that ended with an error event.
var ErrJobFailed = errors.New("optimization job failed")

// Event types.
const (
	EventProgress = "progress"
	EventResult   = "result"
	EventError    = "error"
)

// Event is a message emitted by a running job.
type Event struct {
	Type    string
	Value   float64
	Result  *model.OptimizeResult
	Message string
}

// Terminal reports whether the event ends the stream.
func (e Event) Terminal() bool {
	return e.Type == EventResult || e.Type == EventError
}

// MarshalJSON renders {type, value}, {type, result} or {type, message}.
func (e Event) MarshalJSON() ([]byte, error) {
	switch e.Type {
	case EventProgress:
		return json.Marshal(struct {
			Type  string  `json:"type"`
			Value float64 `json:"value"`
		}{e.Type, e.Value})
	case EventResult:
		return json.Marshal(struct {
			Type   string                `json:"type"`
			Result *model.OptimizeResult `json:"result"`
		}{e.Type, e.Result})
	default:
		return json.Marshal(struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		}{e.Type, e.Message})
	}
}

// Status is the lifecycle state of a job.
type Status string

// Job statuses.
const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Snapshot is a point-in-time copy of a job's state.
type Snapshot struct {
	ID          string
	RequestID   string
	Status      Status
	Progress    float64
	Result      *model.OptimizeResult
	Error       string
	SubmittedAt time.Time
	FinishedAt  *time.Time
}

// Job is the future of one submitted optimization.
type Job struct {
	ID        string
	RequestID string

	input model.OptimizeInput

	mu          sync.Mutex
	status      Status
	progress    float64
	result      *model.OptimizeResult
	errMsg      string
	submittedAt time.Time
	startedAt   time.Time
	finishedAt  time.Time
	events      []Event
	updated     chan struct{}
	done        chan struct{}
}

func newJob(input model.OptimizeInput, requestID string) *Job {
	return &Job{
		ID:          uuid.NewString(),
		RequestID:   requestID,
		input:       input,
		status:      StatusQueued,
		submittedAt: time.Now().UTC(),
		updated:     make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Input returns the optimization input of the job.
func (j *Job) Input() model.OptimizeInput {
	return j.input
}

// Snapshot returns the current state of the job.
func (j *Job) Snapshot() Snapshot {
	j.mu.Lock()
	defer j.mu.Unlock()

	s := Snapshot{
		ID:          j.ID,
		RequestID:   j.RequestID,
		Status:      j.status,
		Progress:    j.progress,
		Error:       j.errMsg,
		SubmittedAt: j.submittedAt,
	}
	if j.result != nil {
		r := *j.result
		s.Result = &r
	}
	if !j.finishedAt.IsZero() {
		t := j.finishedAt
		s.FinishedAt = &t
	}
	return s
}

// Done is closed once the terminal event has been emitted.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Wait blocks until the job finishes or ctx ends. The job keeps running
// when ctx ends first.
func (j *Job) Wait(ctx context.Context) (model.OptimizeResult, error) {
	select {
	case <-j.done:
	case <-ctx.Done():
		return model.OptimizeResult{}, ctx.Err()
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.status == StatusFailed {
		return model.OptimizeResult{}, fmt.Errorf("%w: %s", ErrJobFailed, j.errMsg)
	}
	return *j.result, nil
}

// Duration returns how long the job ran, or zero while unfinished.
func (j *Job) Duration() time.Duration {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.finishedAt.IsZero() || j.startedAt.IsZero() {
		return 0
	}
	return j.finishedAt.Sub(j.startedAt)
}

// Events streams every event of the job, replaying those already emitted.
// The channel closes after the terminal event or when ctx ends.
func (j *Job) Events(ctx context.Context) <-chan Event {
	out := make(chan Event)
	go func() {
		defer close(out)
		next := 0
		for {
			j.mu.Lock()
			pending := append([]Event(nil), j.events[next:]...)
			next = len(j.events)
			updated := j.updated
			finished := !j.finishedAt.IsZero()
			j.mu.Unlock()

			for _, ev := range pending {
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
			if finished {
				return
			}

			select {
			case <-updated:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func (j *Job) start() {
	j.mu.Lock()
	j.status = StatusRunning
	j.startedAt = time.Now()
	j.mu.Unlock()
	j.reportProgress(0)
}

// reportProgress records and emits value clamped to [0, 100].
func (j *Job) reportProgress(value float64) {
	if math.IsNaN(value) {
		return
	}
	value = math.Max(0, math.Min(100, value))

	j.mu.Lock()
	defer j.mu.Unlock()
	j.progress = value
	j.emit(Event{Type: EventProgress, Value: value})
}

// tick re-emits the latest progress.
func (j *Job) tick() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.emit(Event{Type: EventProgress, Value: j.progress})
}

func (j *Job) succeed(result model.OptimizeResult) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = StatusSucceeded
	j.result = &result
	j.finish(Event{Type: EventResult, Result: &result})
}

func (j *Job) fail(message string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = StatusFailed
	j.errMsg = message
	j.finish(Event{Type: EventError, Message: message})
}

// finish must be called with mu held.
func (j *Job) finish(ev Event) {
	j.emit(ev)
	j.finishedAt = time.Now()
	close(j.done)
}

// emit must be called with mu held. Nothing is emitted after the terminal event.
func (j *Job) emit(ev Event) {
	if !j.finishedAt.IsZero() {
		return
	}
	j.events = append(j.events, ev)
	close(j.updated)
	j.updated = make(chan struct{})
}

func (j *Job) finishedBefore(cutoff time.Time) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return !j.finishedAt.IsZero() && j.finishedAt.Before(cutoff)
}
