package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"school-api/internal/model"
)

const (
	ServiceName       = "school-api"
	healthPingTimeout = 2 * time.Second
)

type pinger interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	db pinger
}

func NewHealthHandler(db pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health always answers 200 while the process is up; database reachability is
// reported in the body.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := model.HealthStatus{
		Status:   "ok",
		Service:  ServiceName,
		Message:  "School management API is running",
		Database: "ok",
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()
	if h.db == nil {
		status.Database = "unavailable"
	} else if err := h.db.Health(ctx); err != nil {
		slog.Warn("health check: database unreachable", "error", err)
		status.Database = "unavailable"
	}

	writeSuccess(w, http.StatusOK, status)
}
