package task

import (
	"context"

	"github.com/google/uuid"
)

// Task kind constants
const (
	// KindOneShot marks tasks that do a bounded amount of work and return.
	KindOneShot = "oneshot"

	// KindPoll marks long-lived tasks that loop until the context is
	// cancelled, such as the foreground focus watcher.
	KindPoll = "poll"
)

// Metadata is the immutable descriptor for a task. It identifies the task
// for logging and inspection only; names are not required to be unique and
// the orchestrator never branches on any of these fields.
type Metadata struct {
	// ID is a unique identifier assigned at construction
	ID uuid.UUID

	// Name is a human-readable identifier for observability
	Name string

	// Kind is a coarse classification of the task's lifetime
	Kind string
}

// NewMetadata creates a Metadata with a fresh ID.
func NewMetadata(name, kind string) Metadata {
	return Metadata{
		ID:   uuid.New(),
		Name: name,
		Kind: kind,
	}
}

// Task represents a unit of asynchronous work the orchestrator can run.
// Version: 1.0
type Task interface {
	// Metadata returns the task's immutable descriptor. It must be
	// side-effect-free and callable at any time before the task is started.
	Metadata() Metadata

	// Execute runs the task body. The orchestrator calls it exactly once,
	// on a dedicated goroutine; after that the task object belongs to that
	// goroutine and the orchestrator interacts only with the Handle.
	// Long-lived tasks must return promptly once ctx is cancelled.
	Execute(ctx context.Context) error
}
