package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/khartman/trip-planner/internal/domain"
	"github.com/khartman/trip-planner/internal/repo"
)

// StopService implements business logic for multi-location stops. It holds
// the trips repo because a stop must be contained in its parent trip's range.
type StopService struct {
	trips repo.TripRepo
	stops repo.StopRepo
}

// NewStopService constructs a StopService backed by the provided repos.
func NewStopService(trips repo.TripRepo, stops repo.StopRepo) *StopService {
	return &StopService{trips: trips, stops: stops}
}

// Create validates the stop against its parent trip, then persists it.
// Returns domain.ErrNotFound if the trip does not exist, domain.ErrValidation
// if the stop has no name, an inverted range, or dates outside the trip.
func (s *StopService) Create(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	trip, err := s.trips.GetByID(ctx, stop.TripID)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Create: %w", err)
	}
	if err := validateStop(trip, stop); err != nil {
		return domain.Stop{}, err
	}
	created, err := s.stops.Create(ctx, stop)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Create: %w", err)
	}
	return created, nil
}

// ListByTripID returns all stops for a trip ordered by start date.
// Always returns a non-nil slice so callers can safely range over it.
func (s *StopService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error) {
	stops, err := s.stops.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.StopService.ListByTripID: %w", err)
	}
	if stops == nil {
		return []domain.Stop{}, nil
	}
	return stops, nil
}

// Delete removes a stop; days pointing at it keep their content but lose the
// reference. Returns domain.ErrNotFound if the stop does not exist under the
// given trip.
func (s *StopService) Delete(ctx context.Context, tripID, stopID uuid.UUID) error {
	if err := s.stops.Delete(ctx, tripID, stopID); err != nil {
		return fmt.Errorf("service.StopService.Delete: %w", err)
	}
	return nil
}

// validateStop enforces the stop invariants.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - StartDate must not be after EndDate.
//   - The stop's range must be fully contained in the trip's range.
func validateStop(trip domain.Trip, stop domain.Stop) error {
	if strings.TrimSpace(stop.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if stop.StartDate.After(stop.EndDate) {
		return fmt.Errorf("%w: stop start date is after its end date", domain.ErrValidation)
	}
	if midnightUTC(stop.StartDate).Before(midnightUTC(trip.StartDate)) ||
		midnightUTC(stop.EndDate).After(midnightUTC(trip.EndDate)) {
		return fmt.Errorf("%w: stop dates fall outside the trip dates", domain.ErrValidation)
	}
	return nil
}
