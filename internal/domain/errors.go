package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, stop outside trip dates).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidRange is returned by the itinerary reconciler when a date range
// has its start after its end. It wraps ErrValidation so errors.Is checks
// against either sentinel succeed.
var ErrInvalidRange = fmt.Errorf("%w: start date is after end date", ErrValidation)
