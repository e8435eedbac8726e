package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/crewsync/backend/internal/adapters/repository"
	"github.com/crewsync/backend/internal/domain/model"
)

// FlightDependencies defines the interface for flight reads.
type FlightDependencies interface {
	Flights(ctx context.Context) ([]*model.Flight, error)
	FlightByNumber(ctx context.Context, number string) (*model.Flight, error)
}

// FlightsHandler handles flight read requests.
type FlightsHandler struct {
	deps FlightDependencies
}

// NewFlightsHandler creates a new flights handler.
func NewFlightsHandler(deps FlightDependencies) *FlightsHandler {
	return &FlightsHandler{deps: deps}
}

// HandleListFlights handles GET /api/flights requests.
func (h *FlightsHandler) HandleListFlights(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_flights"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	flights, err := h.deps.Flights(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, flights)
}

// HandleGetFlight handles GET /api/flights/{number} requests.
func (h *FlightsHandler) HandleGetFlight(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_flight"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	number := strings.TrimPrefix(r.URL.Path, "/api/flights/")
	if number == "" || strings.Contains(number, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	flight, err := h.deps.FlightByNumber(r.Context(), number)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, flight)
}
