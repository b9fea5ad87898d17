// Package capture turns game focus events into capture session tasks.
// A session is a one-shot task that is enqueued when a game gains
// foreground focus and stopped when it loses it; the actual frame capture
// hand-off to the backend happens inside the session body.
package capture

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"sync"

	"github.com/framecast/client/internal/task"
)

// SessionTask represents one capture session for a single game. It runs
// from the moment the orchestrator starts it until the game loses focus
// (Stop) or the process shuts down (context cancellation).
type SessionTask struct {
	meta     task.Metadata
	gamePath string
	stop     chan struct{}
	stopOnce sync.Once
	logger   *slog.Logger
}

// NewSessionTask creates a capture session for the game at the given
// executable path.
func NewSessionTask(gamePath string, logger *slog.Logger) *SessionTask {
	name := "capture:" + sessionName(gamePath)
	return &SessionTask{
		meta:     task.NewMetadata(name, task.KindOneShot),
		gamePath: gamePath,
		stop:     make(chan struct{}),
		logger:   logger.With("component", "capture_session"),
	}
}

// sessionName derives a short, readable session name from the executable
// path, tolerating Windows-style separators.
func sessionName(gamePath string) string {
	normalized := strings.ReplaceAll(gamePath, `\`, "/")
	base := path.Base(normalized)
	if base == "." || base == "/" || base == "" {
		return "unknown"
	}
	return strings.TrimSuffix(base, path.Ext(base))
}

// Metadata returns the task's descriptor.
func (t *SessionTask) Metadata() task.Metadata {
	return t.meta
}

// Stop ends the session. Safe to call more than once and before the
// session has been started.
func (t *SessionTask) Stop() {
	t.stopOnce.Do(func() {
		close(t.stop)
	})
}

// Execute runs the session until it is stopped or the context is
// cancelled.
func (t *SessionTask) Execute(ctx context.Context) error {
	t.logger.Info("capture session started",
		"task_id", t.meta.ID,
		"game_path", t.gamePath)

	select {
	case <-t.stop:
	case <-ctx.Done():
	}

	t.logger.Info("capture session stopped",
		"task_id", t.meta.ID,
		"game_path", t.gamePath)
	return nil
}
