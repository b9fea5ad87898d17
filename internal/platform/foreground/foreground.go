// Package foreground implements the OS-level foreground window inspector
// consumed by the focus watcher. The real implementation exists for
// Windows; other platforms get a stub so the rest of the client still
// builds and runs.
package foreground

import "errors"

// Errors returned by the inspector
var (
	ErrNoForegroundWindow = errors.New("no foreground window")
	ErrUnsupported        = errors.New("foreground inspection is not supported on this platform")
)
