// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crewsync/backend/internal/adapters/repository"
	"github.com/crewsync/backend/internal/domain/engine"
	"github.com/crewsync/backend/internal/domain/model"
	"github.com/crewsync/backend/pkg/logger"
	"github.com/crewsync/backend/pkg/metrics"
)

// AssignmentReceipt acknowledges a successful crew assignment.
type AssignmentReceipt struct {
	AssignmentID   string             `json:"assignment_id"`
	EmpID          string             `json:"emp_id"`
	Name           string             `json:"name"`
	Availability   model.Availability `json:"availability"`
	AssignedFlight string             `json:"assignedFlight"`
}

// Service wires the record store and the recommendation engine. The engine
// is an immutable snapshot index: every roster mutation rebuilds a fresh one
// and swaps the pointer, so in-flight readers keep the snapshot they started
// with and never race a re-index.
type Service struct {
	mu     sync.RWMutex
	engine *engine.Engine

	store       repository.Store
	locations   []string
	defaultTopK int
	rng         engine.Rand

	started bool
	log     logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the record store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithRecordFiles points the service at JSON record files.
func WithRecordFiles(crewPath, flightsPath string) Option {
	return func(s *Service) {
		s.store = repository.NewFileStore(crewPath, flightsPath)
	}
}

// WithLocations sets the base-location network.
func WithLocations(locations []string) Option {
	return func(s *Service) {
		if len(locations) > 0 {
			s.locations = locations
		}
	}
}

// WithDefaultTopK sets the recommendation count used when a request does not
// specify one.
func WithDefaultTopK(k int) Option {
	return func(s *Service) {
		if k > 0 {
			s.defaultTopK = k
		}
	}
}

// WithRand sets the random source injected into the engine.
func WithRand(rng engine.Rand) Option {
	return func(s *Service) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		locations:   engine.DefaultLocations,
		defaultTopK: 5,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the roster and builds the first engine snapshot.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.log == nil {
		s.log = logger.Get()
	}
	if s.store == nil {
		return errors.New("service: no record store configured")
	}

	if err := s.rebuildLocked(ctx); err != nil {
		return err
	}

	s.started = true
	s.log.Info(ctx, "crew recommendation service started",
		logger.Int("roster", s.engine.CrewCount()),
		logger.Int("locations", len(s.locations)),
	)
	return nil
}

// Stop releases the engine snapshot.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.engine = nil
	s.started = false
	s.log.Info(context.Background(), "crew recommendation service stopped")
}

// rebuildLocked re-indexes the roster into a fresh engine and swaps it in.
// Caller holds s.mu.
func (s *Service) rebuildLocked(ctx context.Context) error {
	start := time.Now()

	roster, err := s.store.Roster(ctx)
	if err != nil {
		return err
	}

	opts := []engine.Option{
		engine.WithLocations(s.locations),
		engine.WithLogger(s.log),
	}
	if s.rng != nil {
		opts = append(opts, engine.WithRand(s.rng))
	}
	eng, err := engine.New(roster, opts...)
	if err != nil {
		return err
	}
	s.engine = eng

	available := 0
	for _, member := range roster {
		if member.Availability.IsAvailable() {
			available++
		}
	}
	metrics.UpdateRosterSize(len(roster))
	metrics.UpdateAvailableCrew(available)
	metrics.UpdateStandbyPoolSize(len(eng.StandbyMembers()))
	metrics.RecordEngineRebuild(float64(time.Since(start).Microseconds()) / 1000)

	s.log.Info(ctx, "roster indexed",
		logger.Int("crew", len(roster)),
		logger.Int("available", available),
	)
	return nil
}

// snapshot returns the current engine pointer for a single request.
func (s *Service) snapshot() *engine.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// Recommend returns the top-K ranked candidates for the flight.
// Returns repository.ErrFlightNotFound for an unknown flight number; an
// empty slice is a valid result.
func (s *Service) Recommend(ctx context.Context, flightNumber string, topK int) ([]model.Recommendation, error) {
	flight, err := s.store.FlightByNumber(ctx, flightNumber)
	if err != nil {
		return nil, err
	}
	if topK < 1 {
		topK = s.defaultTopK
	}

	start := time.Now()
	recs := s.snapshot().Recommend(ctx, flight, topK)
	metrics.RecordRecommendation(len(recs), float64(time.Since(start).Microseconds())/1000)
	return recs, nil
}

// AssignCrew marks a crew member as assigned to a flight and rebuilds the
// engine from the updated roster.
func (s *Service) AssignCrew(ctx context.Context, empID, flightNumber string) (*AssignmentReceipt, error) {
	member, err := s.store.Assign(ctx, empID, flightNumber)
	if err != nil {
		metrics.RecordAssignmentError()
		return nil, err
	}
	metrics.RecordAssignment()

	s.mu.Lock()
	rebuildErr := s.rebuildLocked(ctx)
	s.mu.Unlock()
	if rebuildErr != nil {
		// The mutation is already persisted; the stale snapshot keeps
		// serving until the next successful rebuild.
		s.log.Error(ctx, "engine rebuild after assignment failed", logger.Error(rebuildErr))
	}

	s.log.Info(ctx, "crew assigned",
		logger.String("emp_id", member.EmpID),
		logger.String("flight", flightNumber),
	)
	return &AssignmentReceipt{
		AssignmentID:   uuid.NewString(),
		EmpID:          member.EmpID,
		Name:           member.Name,
		Availability:   member.Availability,
		AssignedFlight: member.AssignedFlight,
	}, nil
}

// Crew returns the full roster snapshot.
func (s *Service) Crew(ctx context.Context) ([]*model.CrewMember, error) {
	return s.store.Roster(ctx)
}

// CrewByID returns one roster entry.
func (s *Service) CrewByID(ctx context.Context, empID string) (*model.CrewMember, error) {
	return s.store.CrewByID(ctx, empID)
}

// Flights returns all flight records.
func (s *Service) Flights(ctx context.Context) ([]*model.Flight, error) {
	return s.store.Flights(ctx)
}

// FlightByNumber returns one flight record.
func (s *Service) FlightByNumber(ctx context.Context, number string) (*model.Flight, error) {
	return s.store.FlightByNumber(ctx, number)
}

// LeastFatigued returns up to n crew members in ascending fatigue order.
func (s *Service) LeastFatigued(ctx context.Context, n int) []*model.CrewMember {
	return s.snapshot().LeastFatigued(n)
}

// GetStats returns dashboard statistics.
func (s *Service) GetStats(ctx context.Context) (map[string]interface{}, error) {
	roster, err := s.store.Roster(ctx)
	if err != nil {
		return nil, err
	}
	flights, err := s.store.Flights(ctx)
	if err != nil {
		return nil, err
	}

	available := 0
	totalPerformance := 0.0
	for _, member := range roster {
		if member.Availability.IsAvailable() {
			available++
		}
		totalPerformance += member.Attributes.Performance
	}
	needsAssignment := 0
	for _, flight := range flights {
		if flight.NeedsCrew() {
			needsAssignment++
		}
	}
	avgPerformance := 0.0
	if len(roster) > 0 {
		// Mean performance rescaled from 0-100 to a 0-5 display rating.
		avgPerformance = math.Round(totalPerformance/float64(len(roster))/20*10) / 10
	}

	return map[string]interface{}{
		"totalFlights":    len(flights),
		"availableCrew":   available,
		"needsAssignment": needsAssignment,
		"avgPerformance":  avgPerformance,
		"rosterSize":      len(roster),
		"standbyPool":     len(s.snapshot().StandbyMembers()),
	}, nil
}
