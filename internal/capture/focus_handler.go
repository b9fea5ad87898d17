package capture

import (
	"context"
	"log/slog"
	"sync"

	"github.com/framecast/client/internal/events"
	"github.com/framecast/client/internal/task"
)

// TaskQueue is the producer-side surface of the orchestrator the handler
// needs: enqueue only. Satisfied by *task.Orchestrator.
type TaskQueue interface {
	AddTask(t task.Task)
}

// FocusHandler reacts to focus events by starting a capture session when a
// game gains foreground focus and stopping the current one when it loses
// it. At most one session is live at a time.
type FocusHandler struct {
	queue  TaskQueue
	logger *slog.Logger

	mu      sync.Mutex
	current *SessionTask
}

// NewFocusHandler creates a FocusHandler enqueueing sessions on the given
// queue.
func NewFocusHandler(queue TaskQueue, logger *slog.Logger) *FocusHandler {
	return &FocusHandler{
		queue:  queue,
		logger: logger.With("component", "focus_handler"),
	}
}

// HandleEvent implements events.Handler.
func (h *FocusHandler) HandleEvent(ctx context.Context, event *events.FocusEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Whatever changed, the previous session no longer matches the
	// foreground application.
	if h.current != nil {
		h.current.Stop()
		h.current = nil
	}

	if !event.IsGame {
		return nil
	}

	session := NewSessionTask(event.Path, h.logger)
	h.current = session
	h.queue.AddTask(session)

	h.logger.Debug("capture session enqueued",
		"task_id", session.Metadata().ID,
		"game_path", event.Path,
		"event_id", event.ID)
	return nil
}
