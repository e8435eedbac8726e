package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/crewsync/backend/internal/adapters/repository"
	"github.com/crewsync/backend/internal/domain/model"
)

// RecommendationDependencies defines the interface for ranking operations.
type RecommendationDependencies interface {
	Recommend(ctx context.Context, flightNumber string, topK int) ([]model.Recommendation, error)
}

// RecommendationsHandler handles recommendation requests.
type RecommendationsHandler struct {
	deps    RecommendationDependencies
	maxTopK int
}

// NewRecommendationsHandler creates a new recommendations handler.
func NewRecommendationsHandler(deps RecommendationDependencies, maxTopK int) *RecommendationsHandler {
	return &RecommendationsHandler{deps: deps, maxTopK: maxTopK}
}

// HandleGetRecommendations handles GET /api/recommendations/{number}?top_k=N.
// An empty array is a valid response: it means no candidate survived the
// qualification, availability and reachability filters.
func (h *RecommendationsHandler) HandleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_recommendations"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	number := strings.TrimPrefix(r.URL.Path, "/api/recommendations/")
	if number == "" || strings.Contains(number, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	topK := 0 // 0 lets the service apply its configured default
	if raw := r.URL.Query().Get("top_k"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if n > h.maxTopK {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
			return
		}
		topK = n
	}

	recs, err := h.deps.Recommend(r.Context(), number, topK)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, recs)
}
