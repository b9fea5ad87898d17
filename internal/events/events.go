package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FocusEvent describes a change of the foreground application's game
// status, as observed by the focus watcher.
type FocusEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Path is the executable path of the foreground process
	Path string `json:"path"`

	// IsGame reports whether the foreground process was classified as a game
	IsGame bool `json:"is_game"`

	// At is the timestamp when the change was observed
	At time.Time `json:"at"`
}

// NewFocusEvent creates a FocusEvent for the given foreground process.
func NewFocusEvent(path string, isGame bool) *FocusEvent {
	return &FocusEvent{
		ID:     uuid.New(),
		Path:   path,
		IsGame: isGame,
		At:     time.Now(),
	}
}

// Handler defines an interface for components that react to focus events.
type Handler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *FocusEvent) error
}

// Emitter defines an interface for components that publish focus events.
// This allows the watcher to publish events without direct knowledge of
// who consumes them.
type Emitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *FocusEvent) error
}
