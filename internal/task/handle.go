package task

import (
	"context"
	"fmt"
	"log/slog"
)

// Outcome represents the completion state of a spawned task
type Outcome string

// Possible outcome values
const (
	OutcomeRunning   Outcome = "running"
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

// Handle pairs a spawned task's metadata with a non-blocking view of its
// running computation. The orchestrator holds one Handle per task it
// believes is still running; it never joins on or cancels the computation
// through the Handle, it only polls for completion.
type Handle struct {
	meta Metadata

	// done is closed when the task goroutine returns. err is written
	// before the close, so readers that observed done closed may read it
	// without further synchronization.
	done chan struct{}
	err  error
}

// newHandle captures the task's metadata and immediately starts its body on
// a new goroutine. It never blocks the caller: spawning is fire-and-forget
// from the orchestrator's point of view.
func newHandle(ctx context.Context, t Task, logger *slog.Logger) *Handle {
	meta := t.Metadata()
	h := &Handle{
		meta: meta,
		done: make(chan struct{}),
	}

	logger.Info("task started",
		"task_id", meta.ID,
		"task_name", meta.Name,
		"task_kind", meta.Kind)

	go h.run(ctx, t)

	return h
}

// run executes the task body and records its outcome. A panicking task is
// recorded as a failure; it must never take down the orchestrator.
func (h *Handle) run(ctx context.Context, t Task) {
	defer close(h.done)
	defer func() {
		if r := recover(); r != nil {
			h.err = fmt.Errorf("task panicked: %v", r)
		}
	}()

	h.err = t.Execute(ctx)
}

// Metadata returns the descriptor captured at spawn time.
func (h *Handle) Metadata() Metadata {
	return h.meta
}

// IsFinished reports whether the task's goroutine has returned. It never
// blocks and is safe to call repeatedly from any goroutine.
func (h *Handle) IsFinished() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Outcome returns the task's completion state and, for failed tasks, the
// error that ended them. While the task is still running it returns
// OutcomeRunning and a nil error.
func (h *Handle) Outcome() (Outcome, error) {
	select {
	case <-h.done:
	default:
		return OutcomeRunning, nil
	}

	if h.err != nil {
		return OutcomeFailed, h.err
	}
	return OutcomeSucceeded, nil
}
