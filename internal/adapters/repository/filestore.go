package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/crewsync/backend/internal/domain/model"
)

// FileStore reads crew and flight records from flat JSON files and persists
// the assignment mutation back to the crew file. Every read unmarshals fresh,
// so returned slices are independent snapshots; the mutex only serializes
// writers against each other.
type FileStore struct {
	mu          sync.Mutex
	crewPath    string
	flightsPath string
}

// NewFileStore creates a store over the given record files.
func NewFileStore(crewPath, flightsPath string) *FileStore {
	return &FileStore{
		crewPath:    crewPath,
		flightsPath: flightsPath,
	}
}

// Roster returns the full crew roster snapshot.
func (s *FileStore) Roster(ctx context.Context) ([]*model.CrewMember, error) {
	return s.loadCrew()
}

// CrewByID returns the crew member with the given employee ID.
func (s *FileStore) CrewByID(ctx context.Context, empID string) (*model.CrewMember, error) {
	crew, err := s.loadCrew()
	if err != nil {
		return nil, err
	}
	for _, member := range crew {
		if member.EmpID == empID {
			return member, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCrewNotFound, empID)
}

// Flights returns all flight records.
func (s *FileStore) Flights(ctx context.Context) ([]*model.Flight, error) {
	return s.loadFlights()
}

// FlightByNumber returns the flight with the given number.
func (s *FileStore) FlightByNumber(ctx context.Context, number string) (*model.Flight, error) {
	flights, err := s.loadFlights()
	if err != nil {
		return nil, err
	}
	for _, flight := range flights {
		if flight.FlightNumber == number {
			return flight, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrFlightNotFound, number)
}

// Assign flips the member's availability to Assigned and records the flight,
// provided they are currently available. The crew file is rewritten via a
// temp file and rename so a crash never leaves a half-written roster.
func (s *FileStore) Assign(ctx context.Context, empID, flightNumber string) (*model.CrewMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	crew, err := s.loadCrew()
	if err != nil {
		return nil, err
	}

	var target *model.CrewMember
	for _, member := range crew {
		if member.EmpID == empID {
			target = member
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %s", ErrCrewNotFound, empID)
	}
	if !target.Availability.IsAvailable() {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotAvailable, target.Name, target.Availability)
	}

	target.Availability = model.Assigned
	target.AssignedFlight = flightNumber

	if err := s.writeCrew(crew); err != nil {
		return nil, err
	}
	return target, nil
}

func (s *FileStore) loadCrew() ([]*model.CrewMember, error) {
	raw, err := os.ReadFile(s.crewPath)
	if err != nil {
		return nil, fmt.Errorf("read crew records: %w", err)
	}
	var crew []*model.CrewMember
	if err := json.Unmarshal(raw, &crew); err != nil {
		return nil, fmt.Errorf("decode crew records: %w", err)
	}
	return crew, nil
}

func (s *FileStore) loadFlights() ([]*model.Flight, error) {
	raw, err := os.ReadFile(s.flightsPath)
	if err != nil {
		return nil, fmt.Errorf("read flight records: %w", err)
	}
	var flights []*model.Flight
	if err := json.Unmarshal(raw, &flights); err != nil {
		return nil, fmt.Errorf("decode flight records: %w", err)
	}
	return flights, nil
}

func (s *FileStore) writeCrew(crew []*model.CrewMember) error {
	raw, err := json.MarshalIndent(crew, "", "  ")
	if err != nil {
		return fmt.Errorf("encode crew records: %w", err)
	}
	dir := filepath.Dir(s.crewPath)
	tmp, err := os.CreateTemp(dir, ".crew-*.json")
	if err != nil {
		return fmt.Errorf("create temp crew file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp crew file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp crew file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.crewPath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace crew file: %w", err)
	}
	return nil
}
