// Package main implements the entry point for the framecast capture
// client. It wires the task orchestrator, the foreground focus watcher,
// the capture session handler, and the local status API together, then
// runs until interrupted.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/framecast/client/internal/api"
	"github.com/framecast/client/internal/capture"
	"github.com/framecast/client/internal/config"
	"github.com/framecast/client/internal/events"
	"github.com/framecast/client/internal/platform/foreground"
	"github.com/framecast/client/internal/platform/logger"
	"github.com/framecast/client/internal/task"
	"github.com/framecast/client/internal/watch"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("client failed: %v", err)
	}
}

// run loads configuration, assembles the application, and blocks until a
// shutdown signal arrives.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	slogger := logger.Setup(cfg.Server)
	slogger.Info("client configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"tick_ms", cfg.Orchestrator.TickMs,
		"poll_ms", cfg.Watcher.PollMs)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	orchestrator := task.NewOrchestrator(task.OrchestratorConfig{
		Tick: time.Duration(cfg.Orchestrator.TickMs) * time.Millisecond,
	}, slogger)

	emitter := events.NewInMemoryEmitter(slogger)
	emitter.RegisterHandler(capture.NewFocusHandler(orchestrator, slogger))

	orchestrator.AddTask(watch.NewFocusTask(
		foreground.NewInspector(),
		emitter,
		watch.Config{
			PollInterval: time.Duration(cfg.Watcher.PollMs) * time.Millisecond,
			GameMarkers:  cfg.Watcher.GamePathMarkers,
		},
		slogger,
	))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: api.NewRouter(orchestrator),
	}

	go func() {
		slogger.Info("status server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("status server failed", "error", err)
		}
	}()

	// Blocks until the signal context is cancelled.
	runErr := orchestrator.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slogger.Error("status server shutdown failed", "error", err)
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	slogger.Info("client shutdown completed")
	return nil
}
