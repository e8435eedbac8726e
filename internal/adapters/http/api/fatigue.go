package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/crewsync/backend/internal/domain/model"
)

// FatigueDependencies defines the interface for fatigue monitoring queries.
type FatigueDependencies interface {
	LeastFatigued(ctx context.Context, n int) []*model.CrewMember
}

// FatigueHandler serves the least-fatigued monitoring view.
type FatigueHandler struct {
	deps FatigueDependencies
}

// NewFatigueHandler creates a new fatigue handler.
func NewFatigueHandler(deps FatigueDependencies) *FatigueHandler {
	return &FatigueHandler{deps: deps}
}

// fatigueEntry is the read shape for one monitoring row.
type fatigueEntry struct {
	EmpID        string  `json:"emp_id"`
	Name         string  `json:"name"`
	BaseLocation string  `json:"baseLocation"`
	FatigueScore float64 `json:"fatigueScore"`
}

// HandleLeastFatigued handles GET /api/fatigue/least?n=K requests.
// Rows come back in ascending fatigue order; ties have no guaranteed order.
func (h *FatigueHandler) HandleLeastFatigued(w http.ResponseWriter, r *http.Request) {
	const op = "api.least_fatigued"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	n := 3
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		n = parsed
	}
	members := h.deps.LeastFatigued(r.Context(), n)
	entries := make([]fatigueEntry, 0, len(members))
	for _, m := range members {
		entries = append(entries, fatigueEntry{
			EmpID:        m.EmpID,
			Name:         m.Name,
			BaseLocation: m.BaseLocation,
			FatigueScore: m.Attributes.Fatigue,
		})
	}
	writeJSON(w, http.StatusOK, entries)
}
