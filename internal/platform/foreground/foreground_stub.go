//go:build !windows

package foreground

// Inspector is the stub inspector for platforms without foreground window
// introspection.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// ForegroundProcessPath always returns ErrUnsupported. The focus watcher
// logs the error and keeps polling, so the client stays functional for
// tasks that do not depend on focus tracking.
func (i *Inspector) ForegroundProcessPath() (string, error) {
	return "", ErrUnsupported
}
