package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/framecast/client/internal/task"
)

// StatusSource is the read-only view of the orchestrator the status API
// needs. Satisfied by *task.Orchestrator.
type StatusSource interface {
	Snapshot() []task.Metadata
	PendingCount() int
}

// TaskResponse represents one active task in the status response
type TaskResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// StatusResponse represents the response data for the tasks endpoint
type StatusResponse struct {
	Active  []TaskResponse `json:"active"`
	Pending int            `json:"pending"`
}

// StatusHandler handles status-related HTTP requests
type StatusHandler struct {
	source StatusSource
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(source StatusSource) *StatusHandler {
	return &StatusHandler{source: source}
}

// NewRouter builds the status API router.
func NewRouter(source StatusSource) http.Handler {
	h := NewStatusHandler(source)

	r := chi.NewRouter()
	r.Get("/healthz", h.Health)
	r.Get("/tasks", h.Tasks)
	return r
}

// Health handles GET /healthz requests
func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Tasks handles GET /tasks requests, returning the orchestrator's active
// set and pending queue length.
func (h *StatusHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	metas := h.source.Snapshot()

	active := make([]TaskResponse, 0, len(metas))
	for _, m := range metas {
		active = append(active, TaskResponse{
			ID:   m.ID.String(),
			Name: m.Name,
			Kind: m.Kind,
		})
	}

	respondWithJSON(w, http.StatusOK, StatusResponse{
		Active:  active,
		Pending: h.source.PendingCount(),
	})
}

// respondWithJSON writes a JSON response with the given status code and data.
func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}
