package engine

import "errors"

// Sentinel kinds for engine errors.
var (
	ErrInvalidWeights = errors.New("invalid weight table")
)
