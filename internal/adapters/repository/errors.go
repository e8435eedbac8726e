package repository

import "errors"

// Sentinel kinds for record store errors.
var (
	ErrCrewNotFound   = errors.New("crew member not found")
	ErrFlightNotFound = errors.New("flight not found")
	ErrNotAvailable   = errors.New("crew member not available")
)
