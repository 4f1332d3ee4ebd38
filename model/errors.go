package model

import "errors"

// Construction and validation errors. Callers match them with errors.Is;
// the returned errors carry the offending value as context.
var (
	ErrInvalidGrid          = errors.New("model: grid dimension must be positive")
	ErrInvalidServiceRadius = errors.New("model: service radius must be positive")
	ErrInvalidPenaltyRadius = errors.New("model: penalty radius must be non-negative")
	ErrNoCities             = errors.New("model: instance must contain at least one city")
	ErrCityOutOfBounds      = errors.New("model: city lies outside the grid")
	ErrDuplicateCity        = errors.New("model: duplicate city")

	ErrTowerOutOfBounds = errors.New("model: tower lies outside the grid")
	ErrUncoveredCity    = errors.New("model: city not covered by any tower")
)
