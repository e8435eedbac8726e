// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	service "github.com/crewsync/backend/internal/app"
	"github.com/crewsync/backend/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Crew(ctx context.Context) ([]*model.CrewMember, error)
	CrewByID(ctx context.Context, empID string) (*model.CrewMember, error)
	Flights(ctx context.Context) ([]*model.Flight, error)
	FlightByNumber(ctx context.Context, number string) (*model.Flight, error)
	Recommend(ctx context.Context, flightNumber string, topK int) ([]model.Recommendation, error)
	AssignCrew(ctx context.Context, empID, flightNumber string) (*service.AssignmentReceipt, error)
	LeastFatigued(ctx context.Context, n int) []*model.CrewMember
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler          *HealthHandler
	statsHandler           *StatsHandler
	flightsHandler         *FlightsHandler
	crewHandler            *CrewHandler
	recommendationsHandler *RecommendationsHandler
	fatigueHandler         *FatigueHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxTopK int) *Server {
	return &Server{
		healthHandler:          NewHealthHandler(deps),
		statsHandler:           NewStatsHandler(statsProvider),
		flightsHandler:         NewFlightsHandler(deps),
		crewHandler:            NewCrewHandler(deps),
		recommendationsHandler: NewRecommendationsHandler(deps, maxTopK),
		fatigueHandler:         NewFatigueHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/api/health", MetricsMiddleware(s.healthHandler.HandleHealth, "health"))
	mux.HandleFunc("/api/dashboard/stats", MetricsMiddleware(s.statsHandler.HandleStats, "dashboard_stats"))
	mux.HandleFunc("/api/flights", MetricsMiddleware(s.flightsHandler.HandleListFlights, "flights"))
	mux.HandleFunc("/api/flights/", MetricsMiddleware(s.flightsHandler.HandleGetFlight, "flight"))
	mux.HandleFunc("/api/crew", MetricsMiddleware(s.crewHandler.HandleListCrew, "crew"))
	mux.HandleFunc("/api/crew/", MetricsMiddleware(s.crewHandler.HandleCrewSubpath, "crew_member"))
	mux.HandleFunc("/api/recommendations/", MetricsMiddleware(s.recommendationsHandler.HandleGetRecommendations, "recommendations"))
	mux.HandleFunc("/api/fatigue/least", MetricsMiddleware(s.fatigueHandler.HandleLeastFatigued, "fatigue_least"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
