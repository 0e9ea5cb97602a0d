package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/contractwatch/contractwatch/internal/common"
	"github.com/contractwatch/contractwatch/internal/llm"
)

// countingHandler fails the first n attempts of every job, then succeeds.
type countingHandler struct {
	mu       sync.Mutex
	failures int
	err      error
	calls    int
	done     chan struct{}
}

func (h *countingHandler) run() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	if h.calls <= h.failures {
		return h.err
	}
	if h.done != nil {
		close(h.done)
		h.done = nil
	}
	return nil
}

func (h *countingHandler) callCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

func (h *countingHandler) ExtractDocument(context.Context, uuid.UUID) error {
	return h.run()
}

func (h *countingHandler) AnalyzeContract(context.Context, uuid.UUID, llm.Mode, *uuid.UUID) error {
	return h.run()
}

func newTestRunner(t *testing.T, h Handler, cfg RunnerConfig) *Runner {
	t.Helper()
	if cfg.Backoff == nil {
		cfg.Backoff = func(int) time.Duration { return time.Millisecond }
	}
	r := NewRunner(cfg, slog.New(slog.DiscardHandler))
	r.SetHandler(h)
	r.Start(context.Background())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = r.Shutdown(ctx)
	})
	return r
}

func waitFor(t *testing.T, done <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestRunnerRetriesRetryableErrors(t *testing.T) {
	done := make(chan struct{})
	h := &countingHandler{failures: 2, err: errors.New("transient"), done: done}
	r := newTestRunner(t, h, RunnerConfig{Workers: 1, MaxAttempts: 3})

	if err := r.EnqueueExtractDocument(context.Background(), uuid.New()); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	waitFor(t, done, "the job to succeed after retries")
	if got := h.callCount(); got != 3 {
		t.Errorf("attempts: got %d, want 3", got)
	}
}

func TestRunnerStopsAtMaxAttempts(t *testing.T) {
	h := &countingHandler{failures: 100, err: errors.New("always failing")}
	r := newTestRunner(t, h, RunnerConfig{Workers: 1, MaxAttempts: 2})

	if err := r.EnqueueExtractDocument(context.Background(), uuid.New()); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	// Both attempts fire within a couple of backoff periods.
	time.Sleep(200 * time.Millisecond)
	if got := h.callCount(); got != 2 {
		t.Errorf("attempts: got %d, want 2", got)
	}
}

func TestRunnerDoesNotRetryPermanentErrors(t *testing.T) {
	h := &countingHandler{failures: 100, err: common.ErrUnsupportedFormat}
	r := newTestRunner(t, h, RunnerConfig{Workers: 1, MaxAttempts: 3})

	if err := r.EnqueueExtractDocument(context.Background(), uuid.New()); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	time.Sleep(200 * time.Millisecond)
	if got := h.callCount(); got != 1 {
		t.Errorf("attempts: got %d, want 1", got)
	}
}

func TestRunnerQueueFull(t *testing.T) {
	block := make(chan struct{})
	h := &blockingHandler{block: block, running: make(chan struct{})}
	r := newTestRunner(t, h, RunnerConfig{Workers: 1, QueueDepth: 1})
	defer close(block)

	// First job occupies the worker, second fills the buffer.
	if err := r.EnqueueExtractDocument(context.Background(), uuid.New()); err != nil {
		t.Fatalf("enqueue 1: %v", err)
	}
	<-h.running
	if err := r.EnqueueExtractDocument(context.Background(), uuid.New()); err != nil {
		t.Fatalf("enqueue 2: %v", err)
	}
	if err := r.EnqueueExtractDocument(context.Background(), uuid.New()); !errors.Is(err, ErrQueueFull) {
		t.Errorf("expected ErrQueueFull, got %v", err)
	}
}

func TestRunnerShutdownDrains(t *testing.T) {
	done := make(chan struct{})
	h := &countingHandler{done: done}
	r := NewRunner(RunnerConfig{Workers: 2}, slog.New(slog.DiscardHandler))
	r.SetHandler(h)
	r.Start(context.Background())

	if err := r.EnqueueAnalyzeContract(context.Background(), uuid.New(), llm.ModeFull, nil); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	waitFor(t, done, "the queued job to run before shutdown returned")

	if err := r.EnqueueExtractDocument(context.Background(), uuid.New()); err == nil {
		t.Error("enqueue after shutdown should fail")
	}
}

type blockingHandler struct {
	block   chan struct{}
	running chan struct{}
	once    sync.Once
}

func (h *blockingHandler) signal() {
	h.once.Do(func() { close(h.running) })
}

func (h *blockingHandler) ExtractDocument(context.Context, uuid.UUID) error {
	h.signal()
	<-h.block
	return nil
}

func (h *blockingHandler) AnalyzeContract(context.Context, uuid.UUID, llm.Mode, *uuid.UUID) error {
	h.signal()
	<-h.block
	return nil
}
