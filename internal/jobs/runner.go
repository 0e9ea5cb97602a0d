package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/contractwatch/contractwatch/internal/common"
	"github.com/contractwatch/contractwatch/internal/llm"
)

// ErrQueueFull is returned when the intake channel is at capacity.
var ErrQueueFull = errors.New("job queue full")

type RunnerConfig struct {
	Workers     int
	MaxAttempts int
	QueueDepth  int
	// Backoff maps a failed attempt number (1-based) to the retry delay.
	// Nil selects the default polynomial backoff.
	Backoff func(attempt int) time.Duration
}

// DefaultBackoff waits attempt^4 + 2 seconds, so 3s, 18s, 83s.
func DefaultBackoff(attempt int) time.Duration {
	n := attempt * attempt * attempt * attempt
	return time.Duration(n+2) * time.Second
}

// Runner is an in-process work queue. Jobs that fail with a retryable error
// are re-enqueued with backoff until MaxAttempts is exhausted.
type Runner struct {
	cfg     RunnerConfig
	handler Handler
	log     *slog.Logger

	jobs   chan Job
	wg     sync.WaitGroup
	timers sync.WaitGroup

	mu      sync.Mutex
	started bool
	closed  bool
}

func NewRunner(cfg RunnerConfig, logger *slog.Logger) *Runner {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.QueueDepth <= 0 {
		cfg.QueueDepth = 256
	}
	if cfg.Backoff == nil {
		cfg.Backoff = DefaultBackoff
	}
	return &Runner{
		cfg:  cfg,
		log:  logger,
		jobs: make(chan Job, cfg.QueueDepth),
	}
}

// SetHandler wires the job executor. Must be called before Start; the
// handler usually holds a reference back to this runner for follow-up jobs.
func (r *Runner) SetHandler(h Handler) { r.handler = h }

// Start launches the worker pool. Workers drain until Shutdown.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return
	}
	r.started = true

	for i := 0; i < r.cfg.Workers; i++ {
		r.wg.Add(1)
		go r.worker(ctx, i)
	}
	r.log.Info("job runner started", "workers", r.cfg.Workers, "queue_depth", r.cfg.QueueDepth)
}

// Shutdown stops intake and waits for in-flight jobs and pending retry
// timers, or until ctx expires.
func (r *Runner) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.jobs)
	}
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.timers.Wait()
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		r.log.Info("job runner stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) EnqueueExtractDocument(ctx context.Context, documentID uuid.UUID) error {
	return r.enqueue(ctx, Job{Kind: KindExtractDocument, DocumentID: documentID})
}

func (r *Runner) EnqueueAnalyzeContract(ctx context.Context, contractID uuid.UUID, mode llm.Mode, newDocumentID *uuid.UUID) error {
	return r.enqueue(ctx, Job{
		Kind:          KindAnalyzeContract,
		ContractID:    contractID,
		Mode:          mode,
		NewDocumentID: newDocumentID,
	})
}

func (r *Runner) enqueue(ctx context.Context, j Job) error {
	r.mu.Lock()
	closed := r.closed
	r.mu.Unlock()
	if closed {
		return errors.New("job runner shutting down")
	}
	select {
	case r.jobs <- j:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		r.log.Error("job rejected", "kind", j.Kind, "error", ErrQueueFull)
		return ErrQueueFull
	}
}

func (r *Runner) worker(ctx context.Context, id int) {
	defer r.wg.Done()
	for j := range r.jobs {
		r.run(ctx, j)
		_ = id
	}
}

func (r *Runner) run(ctx context.Context, j Job) {
	j.attempt++
	start := time.Now()
	err := r.dispatch(ctx, j)
	elapsed := time.Since(start).Milliseconds()
	if err == nil {
		r.log.Info("job ok", "kind", j.Kind, "attempt", j.attempt, "elapsed_ms", elapsed)
		return
	}

	if j.attempt >= r.cfg.MaxAttempts || !common.Retryable(err) {
		r.log.Error("job failed permanently",
			"kind", j.Kind, "attempt", j.attempt, "elapsed_ms", elapsed, "error", err)
		return
	}

	delay := r.cfg.Backoff(j.attempt)
	r.log.Warn("job failed, retrying",
		"kind", j.Kind, "attempt", j.attempt, "retry_in", delay, "error", err)
	r.timers.Add(1)
	retry := j
	time.AfterFunc(delay, func() {
		defer r.timers.Done()
		// The closed check and the send stay under the same lock so Shutdown
		// cannot close the channel between them.
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.closed {
			r.log.Warn("retry dropped, runner shutting down", "kind", retry.Kind)
			return
		}
		select {
		case r.jobs <- retry:
		default:
			r.log.Error("retry rejected", "kind", retry.Kind, "error", ErrQueueFull)
		}
	})
}

func (r *Runner) dispatch(ctx context.Context, j Job) error {
	switch j.Kind {
	case KindExtractDocument:
		return r.handler.ExtractDocument(ctx, j.DocumentID)
	case KindAnalyzeContract:
		return r.handler.AnalyzeContract(ctx, j.ContractID, j.Mode, j.NewDocumentID)
	default:
		return fmt.Errorf("unknown job kind %q", j.Kind)
	}
}
