// Package watch implements the foreground focus watcher: a long-lived
// polling task that asks an OS-level Inspector for the foreground process
// path, classifies it, and emits a focus event whenever the game status
// of the foreground application changes.
package watch

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/framecast/client/internal/events"
	"github.com/framecast/client/internal/task"
)

// DefaultPollInterval is used when the configuration does not specify one.
const DefaultPollInterval = 500 * time.Millisecond

// DefaultGameMarkers are the path fragments that classify a foreground
// process as a game.
var DefaultGameMarkers = []string{"steamapps"}

// Inspector provides the foreground process path. OS-level window and
// process introspection lives behind this seam; the watcher never talks to
// the OS directly.
type Inspector interface {
	// ForegroundProcessPath returns the executable path of the process
	// owning the foreground window.
	ForegroundProcessPath() (string, error)
}

// IsGamePath reports whether the given executable path belongs to a game,
// by checking it against the configured path markers. Matching is
// case-insensitive and tolerates Windows-style separators.
func IsGamePath(path string, markers []string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(path, `\`, "/"))
	for _, marker := range markers {
		if marker == "" {
			continue
		}
		if strings.Contains(normalized, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// Config holds configuration for the focus watcher
type Config struct {
	// PollInterval is the pause between foreground inspections.
	// If zero or negative, DefaultPollInterval is used.
	PollInterval time.Duration

	// GameMarkers are the path fragments that identify a game executable.
	// If empty, DefaultGameMarkers is used.
	GameMarkers []string
}

// FocusTask is the long-lived polling task that watches the foreground
// application. It implements task.Task and runs until its context is
// cancelled.
type FocusTask struct {
	meta      task.Metadata
	inspector Inspector
	emitter   events.Emitter
	config    Config
	logger    *slog.Logger
}

// NewFocusTask creates a FocusTask polling the given inspector and
// publishing changes through the given emitter.
func NewFocusTask(
	inspector Inspector,
	emitter events.Emitter,
	config Config,
	logger *slog.Logger,
) *FocusTask {
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultPollInterval
	}
	if len(config.GameMarkers) == 0 {
		config.GameMarkers = DefaultGameMarkers
	}

	return &FocusTask{
		meta:      task.NewMetadata("focus-watch", task.KindPoll),
		inspector: inspector,
		emitter:   emitter,
		config:    config,
		logger:    logger.With("component", "focus_watch"),
	}
}

// Metadata returns the task's descriptor.
func (t *FocusTask) Metadata() task.Metadata {
	return t.meta
}

// Execute polls the inspector until ctx is cancelled. Inspector failures
// are logged and do not stop the loop; a clean shutdown returns nil.
func (t *FocusTask) Execute(ctx context.Context) error {
	t.logger.Info("focus watcher started",
		"poll_interval", t.config.PollInterval,
		"game_markers", t.config.GameMarkers)

	ticker := time.NewTicker(t.config.PollInterval)
	defer ticker.Stop()

	var lastPath string
	var lastGame bool

	for {
		select {
		case <-ctx.Done():
			t.logger.Info("focus watcher stopped")
			return nil
		case <-ticker.C:
		}

		path, err := t.inspector.ForegroundProcessPath()
		if err != nil {
			t.logger.Debug("foreground inspection failed", "error", err)
			continue
		}

		isGame := IsGamePath(path, t.config.GameMarkers)

		// Emit on any change of game status, and on switches between two
		// different games (the capture target changed even though the
		// status did not).
		changed := isGame != lastGame || (isGame && path != lastPath)
		if changed {
			event := events.NewFocusEvent(path, isGame)
			t.logger.Info("foreground focus changed",
				"path", path,
				"is_game", isGame,
				"event_id", event.ID)

			if err := t.emitter.EmitEvent(ctx, event); err != nil {
				t.logger.Error("failed to emit focus event",
					"error", err,
					"event_id", event.ID)
			}
		}

		lastPath, lastGame = path, isGame
	}
}
