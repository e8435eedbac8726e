package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/crewsync/backend/internal/adapters/repository"
	service "github.com/crewsync/backend/internal/app"
	"github.com/crewsync/backend/internal/domain/model"
)

// CrewDependencies defines the interface for crew reads and the assignment
// mutation.
type CrewDependencies interface {
	Crew(ctx context.Context) ([]*model.CrewMember, error)
	CrewByID(ctx context.Context, empID string) (*model.CrewMember, error)
	AssignCrew(ctx context.Context, empID, flightNumber string) (*service.AssignmentReceipt, error)
}

// CrewHandler handles crew requests.
type CrewHandler struct {
	deps CrewDependencies
}

// NewCrewHandler creates a new crew handler.
func NewCrewHandler(deps CrewDependencies) *CrewHandler {
	return &CrewHandler{deps: deps}
}

// HandleListCrew handles GET /api/crew requests.
func (h *CrewHandler) HandleListCrew(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_crew"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	crew, err := h.deps.Crew(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, crew)
}

// HandleCrewSubpath dispatches GET /api/crew/{id} and POST /api/crew/{id}/assign.
func (h *CrewHandler) HandleCrewSubpath(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/crew/")
	if empID, ok := strings.CutSuffix(path, "/assign"); ok {
		h.handleAssign(w, r, empID)
		return
	}
	h.handleGetCrew(w, r, path)
}

func (h *CrewHandler) handleGetCrew(w http.ResponseWriter, r *http.Request, empID string) {
	const op = "api.get_crew"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	if empID == "" || strings.Contains(empID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	member, err := h.deps.CrewByID(r.Context(), empID)
	if err != nil {
		if errors.Is(err, repository.ErrCrewNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, member)
}

// assignRequest mirrors the POST /api/crew/{id}/assign body.
type assignRequest struct {
	FlightNumber string `json:"flight_number"`
}

type assignResponse struct {
	Success bool                       `json:"success"`
	Message string                     `json:"message"`
	Crew    *service.AssignmentReceipt `json:"crew"`
}

func (h *CrewHandler) handleAssign(w http.ResponseWriter, r *http.Request, empID string) {
	const op = "api.assign_crew"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if empID == "" || strings.Contains(empID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if strings.TrimSpace(req.FlightNumber) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing flight_number")))
		return
	}

	receipt, err := h.deps.AssignCrew(r.Context(), empID, req.FlightNumber)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCrewNotFound):
			writeError(w, http.StatusNotFound, "not_found", err)
		case errors.Is(err, repository.ErrNotAvailable):
			writeError(w, http.StatusBadRequest, "not_available", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}
	writeJSON(w, http.StatusOK, assignResponse{
		Success: true,
		Message: receipt.Name + " assigned to flight " + req.FlightNumber,
		Crew:    receipt,
	})
}
