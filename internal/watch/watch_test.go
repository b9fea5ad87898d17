package watch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framecast/client/internal/events"
	"github.com/framecast/client/internal/task"
)

// scriptedInspector returns a sequence of foreground paths, sticking to the
// last one once the script is exhausted.
type scriptedInspector struct {
	mu    sync.Mutex
	paths []string
	err   error
	pos   int
}

func (s *scriptedInspector) ForegroundProcessPath() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	if len(s.paths) == 0 {
		return "", errors.New("no foreground window")
	}
	path := s.paths[s.pos]
	if s.pos < len(s.paths)-1 {
		s.pos++
	}
	return path, nil
}

// collectingEmitter records emitted events.
type collectingEmitter struct {
	mu     sync.Mutex
	events []*events.FocusEvent
}

func (c *collectingEmitter) EmitEvent(ctx context.Context, event *events.FocusEvent) error {
	c.mu.Lock()
	c.events = append(c.events, event)
	c.mu.Unlock()
	return nil
}

func (c *collectingEmitter) snapshot() []*events.FocusEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*events.FocusEvent(nil), c.events...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func TestIsGamePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		markers []string
		want    bool
	}{
		{
			name:    "steam game forward slashes",
			path:    "/c/program files/steam/steamapps/common/portal/portal.exe",
			markers: DefaultGameMarkers,
			want:    true,
		},
		{
			name:    "steam game backslashes",
			path:    `C:\Program Files\Steam\steamapps\common\portal\portal.exe`,
			markers: DefaultGameMarkers,
			want:    true,
		},
		{
			name:    "marker is case-insensitive",
			path:    `C:\SteamApps\common\game.exe`,
			markers: []string{"steamapps"},
			want:    true,
		},
		{
			name:    "regular application",
			path:    `C:\Windows\System32\notepad.exe`,
			markers: DefaultGameMarkers,
			want:    false,
		},
		{
			name:    "custom marker",
			path:    "/opt/epic/games/fortnite",
			markers: []string{"epic/games"},
			want:    true,
		},
		{
			name:    "empty marker matches nothing",
			path:    "/bin/sh",
			markers: []string{""},
			want:    false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsGamePath(tc.path, tc.markers))
		})
	}
}

func TestNewFocusTask_Metadata(t *testing.T) {
	t.Parallel()

	ft := NewFocusTask(&scriptedInspector{}, &collectingEmitter{}, Config{}, testLogger())

	meta := ft.Metadata()
	assert.Equal(t, "focus-watch", meta.Name)
	assert.Equal(t, task.KindPoll, meta.Kind)
}

func TestFocusTask_EmitsOnGameFocusChange(t *testing.T) {
	t.Parallel()

	inspector := &scriptedInspector{paths: []string{
		"/usr/bin/editor",
		"/games/steamapps/common/portal/portal.exe",
		"/games/steamapps/common/portal/portal.exe",
		"/usr/bin/editor",
	}}
	emitter := &collectingEmitter{}

	ft := NewFocusTask(inspector, emitter, Config{
		PollInterval: time.Millisecond,
	}, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- ft.Execute(ctx)
	}()

	// Expect two events: entered a game, then left it. The initial
	// non-game focus emits nothing.
	require.Eventually(t, func() bool {
		return len(emitter.snapshot()) >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err, "clean shutdown should not be an error")
	case <-time.After(time.Second):
		t.Fatal("focus task did not stop after context cancellation")
	}

	got := emitter.snapshot()
	require.GreaterOrEqual(t, len(got), 2)
	assert.True(t, got[0].IsGame)
	assert.Equal(t, "/games/steamapps/common/portal/portal.exe", got[0].Path)
	assert.False(t, got[1].IsGame)
	assert.Equal(t, "/usr/bin/editor", got[1].Path)
}

func TestFocusTask_EmitsOnGameSwitch(t *testing.T) {
	t.Parallel()

	inspector := &scriptedInspector{paths: []string{
		"/games/steamapps/common/portal/portal.exe",
		"/games/steamapps/common/hl2/hl2.exe",
		"/games/steamapps/common/hl2/hl2.exe",
	}}
	emitter := &collectingEmitter{}

	ft := NewFocusTask(inspector, emitter, Config{
		PollInterval: time.Millisecond,
	}, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = ft.Execute(ctx)
	}()

	// Switching directly between two games emits a fresh event for the
	// second game even though the game status never changed.
	require.Eventually(t, func() bool {
		return len(emitter.snapshot()) >= 2
	}, time.Second, 5*time.Millisecond)

	got := emitter.snapshot()
	assert.True(t, got[1].IsGame)
	assert.Equal(t, "/games/steamapps/common/hl2/hl2.exe", got[1].Path)
}

func TestFocusTask_InspectorErrorsDoNotStopLoop(t *testing.T) {
	t.Parallel()

	inspector := &scriptedInspector{err: errors.New("no window system")}
	emitter := &collectingEmitter{}

	ft := NewFocusTask(inspector, emitter, Config{
		PollInterval: time.Millisecond,
	}, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- ft.Execute(ctx)
	}()

	// Give the loop time to hit the error repeatedly, then confirm it is
	// still running and stops only on cancellation.
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, emitter.snapshot())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("focus task did not stop after context cancellation")
	}
}
