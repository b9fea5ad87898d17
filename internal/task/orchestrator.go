package task

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultTick is the interval between orchestrator cycles when the
// configuration does not specify one.
const DefaultTick = 50 * time.Millisecond

// OrchestratorConfig holds configuration for the orchestrator
type OrchestratorConfig struct {
	// Tick is the pause between launch/prune cycles.
	// If zero or negative, DefaultTick is used.
	Tick time.Duration
}

// DefaultOrchestratorConfig returns an OrchestratorConfig with reasonable defaults
func DefaultOrchestratorConfig() OrchestratorConfig {
	return OrchestratorConfig{
		Tick: DefaultTick,
	}
}

// Orchestrator owns the pending task queue and the set of handles for
// running tasks. Producers enqueue work with AddTask from any goroutine;
// a single run loop drains the queue into live executions and sweeps
// finished handles out of the active set, once per tick, until its context
// is cancelled.
//
// Completion is observed by polling, so a finished task's handle may
// remain in the active set for up to one tick before it is pruned.
type Orchestrator struct {
	mu      sync.Mutex
	pending []Task
	active  []*Handle

	tick   time.Duration
	logger *slog.Logger
}

// NewOrchestrator creates a new Orchestrator
func NewOrchestrator(config OrchestratorConfig, logger *slog.Logger) *Orchestrator {
	tick := config.Tick
	if tick <= 0 {
		tick = DefaultTick
		logger.Warn("invalid tick interval specified, using default",
			"specified_tick", config.Tick,
			"default_tick", DefaultTick)
	}

	return &Orchestrator{
		tick:   tick,
		logger: logger,
	}
}

// AddTask appends a task to the back of the pending queue. It never fails
// and never blocks beyond the queue mutex; the queue is unbounded and
// bounding its growth is the producers' responsibility. Tasks are started
// in the order they were enqueued. A call that races with a launch cycle
// lands either in that cycle or in the next one.
func (o *Orchestrator) AddTask(t Task) {
	meta := t.Metadata()

	o.mu.Lock()
	o.pending = append(o.pending, t)
	queued := len(o.pending)
	o.mu.Unlock()

	o.logger.Debug("task enqueued",
		"task_id", meta.ID,
		"task_name", meta.Name,
		"task_kind", meta.Kind,
		"pending", queued)
}

// Run executes the orchestration loop: launch all pending tasks, prune
// finished handles, sleep one tick, repeat. It blocks until ctx is
// cancelled and then returns ctx's error. The same ctx is passed to every
// task body it spawns, so cooperative tasks observe the shutdown signal;
// Run does not wait for them to finish (the core never joins on a task).
//
// Run must be called at most once per Orchestrator.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.logger.Info("orchestrator started", "tick", o.tick)

	ticker := time.NewTicker(o.tick)
	defer ticker.Stop()

	for {
		o.runTasks(ctx)
		o.cleanHandles()

		select {
		case <-ctx.Done():
			// One final sweep so tasks that finished just before the
			// shutdown signal are logged as completed.
			o.cleanHandles()
			o.logger.Info("orchestrator stopped",
				"active", o.ActiveCount(),
				"pending", o.PendingCount())
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// runTasks drains the whole pending queue in FIFO order, converting each
// task into a running execution. There is no per-cycle launch cap: a burst
// of N enqueued tasks all start within the same cycle.
func (o *Orchestrator) runTasks(ctx context.Context) {
	o.mu.Lock()
	pending := o.pending
	o.pending = nil
	o.mu.Unlock()

	if len(pending) == 0 {
		return
	}

	handles := make([]*Handle, 0, len(pending))
	for _, t := range pending {
		handles = append(handles, newHandle(ctx, t, o.logger))
	}

	o.mu.Lock()
	o.active = append(o.active, handles...)
	o.mu.Unlock()
}

// cleanHandles scans the active set and drops handles whose task has
// finished. Dropping a handle releases bookkeeping only; the computation
// behind it has already returned. Running it again without an intervening
// state change is a no-op.
func (o *Orchestrator) cleanHandles() {
	o.mu.Lock()
	defer o.mu.Unlock()

	kept := o.active[:0]
	for _, h := range o.active {
		if !h.IsFinished() {
			kept = append(kept, h)
			continue
		}

		outcome, err := h.Outcome()
		if outcome == OutcomeFailed {
			o.logger.Error("task failed",
				"task_id", h.meta.ID,
				"task_name", h.meta.Name,
				"error", err)
		} else {
			o.logger.Info("task completed",
				"task_id", h.meta.ID,
				"task_name", h.meta.Name)
		}
	}

	// Clear the tail so finished handles can be collected.
	for i := len(kept); i < len(o.active); i++ {
		o.active[i] = nil
	}
	o.active = kept
}

// Snapshot returns the metadata of every task believed still running.
// The result is a copy and safe to retain.
func (o *Orchestrator) Snapshot() []Metadata {
	o.mu.Lock()
	defer o.mu.Unlock()

	metas := make([]Metadata, 0, len(o.active))
	for _, h := range o.active {
		metas = append(metas, h.meta)
	}
	return metas
}

// ActiveCount returns the number of handles in the active set.
func (o *Orchestrator) ActiveCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.active)
}

// PendingCount returns the number of tasks waiting to be launched.
func (o *Orchestrator) PendingCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.pending)
}
