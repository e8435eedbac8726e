// Package repository defines the record store interface and errors.
package repository

import (
	"context"

	"github.com/crewsync/backend/internal/domain/model"
)

// Store provides read access to crew and flight records and the single
// assignment mutation. Reads return fresh snapshots; callers never observe
// in-place mutation of previously returned records.
type Store interface {
	// Roster returns the full crew roster snapshot.
	Roster(ctx context.Context) ([]*model.CrewMember, error)

	// CrewByID returns the crew member with the given employee ID.
	// Returns ErrCrewNotFound if the ID is unknown.
	CrewByID(ctx context.Context, empID string) (*model.CrewMember, error)

	// Flights returns all flight records.
	Flights(ctx context.Context) ([]*model.Flight, error)

	// FlightByNumber returns the flight with the given number.
	// Returns ErrFlightNotFound if the number is unknown.
	FlightByNumber(ctx context.Context, number string) (*model.Flight, error)

	// Assign marks the crew member as assigned to the flight, provided their
	// current availability is "available", and persists the change. Returns
	// the updated record, ErrCrewNotFound for an unknown ID, or
	// ErrNotAvailable when the precondition fails.
	Assign(ctx context.Context, empID, flightNumber string) (*model.CrewMember, error)
}
