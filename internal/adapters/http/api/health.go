package api

import (
	"context"
	"net/http"

	"github.com/crewsync/backend/internal/domain/model"
)

// HealthDependencies defines the interface for health check counts.
type HealthDependencies interface {
	Crew(ctx context.Context) ([]*model.CrewMember, error)
	Flights(ctx context.Context) ([]*model.Flight, error)
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	deps HealthDependencies
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(deps HealthDependencies) *HealthHandler {
	return &HealthHandler{deps: deps}
}

type healthResponse struct {
	Status      string `json:"status"`
	CrewCount   int    `json:"crew_count"`
	FlightCount int    `json:"flight_count"`
}

// HandleHealth handles GET /api/health requests.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	const op = "api.health"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	crew, err := h.deps.Crew(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	flights, err := h.deps.Flights(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "healthy",
		CrewCount:   len(crew),
		FlightCount: len(flights),
	})
}
