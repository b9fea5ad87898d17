//go:build !windows

package foreground

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStubInspector(t *testing.T) {
	t.Parallel()

	inspector := NewInspector()

	path, err := inspector.ForegroundProcessPath()
	assert.Empty(t, path)
	assert.ErrorIs(t, err, ErrUnsupported)
}
