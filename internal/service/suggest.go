package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/khartman/trip-planner/internal/domain"
	"github.com/khartman/trip-planner/internal/repo"
	"github.com/khartman/trip-planner/internal/suggest"
)

// ChecklistSource supplies suggested places, restaurants, and hotels for a
// destination. Satisfied by *suggest.PlacesClient.
type ChecklistSource interface {
	Checklist(ctx context.Context, destination string, style domain.TravelStyle) suggest.Checklist
}

// SuggestService populates trips with generated content: per-day checklist
// suggestions, style-keyed slot text, and the templated recipe and highlights.
type SuggestService struct {
	txr    repo.TxRunner
	trips  repo.TripRepo
	places ChecklistSource
}

// NewSuggestService constructs a SuggestService backed by the provided repos
// and checklist source.
func NewSuggestService(txr repo.TxRunner, trips repo.TripRepo, places ChecklistSource) *SuggestService {
	return &SuggestService{txr: txr, trips: trips, places: places}
}

// Apply adds suggested checklist items to every day of the trip, unchecked.
// Days covered by a stop get suggestions for that stop's location instead of
// the trip destination; results are fetched once per distinct location.
// Exact (category, name) duplicates on a day are skipped, so Apply is safe to
// repeat. Reports how many items were added.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *SuggestService) Apply(ctx context.Context, tripID uuid.UUID) (int, error) {
	added := 0
	err := s.txr.InTx(ctx, func(r repo.Repos) error {
		trip, err := r.Trips.GetByID(ctx, tripID)
		if err != nil {
			return err
		}
		days, err := r.Days.ListByTripID(ctx, tripID)
		if err != nil {
			return err
		}
		stops, err := r.Stops.ListByTripID(ctx, tripID)
		if err != nil {
			return err
		}

		cityByDate := locationByDate(stops)
		cache := map[string]suggest.Checklist{}
		for _, day := range days {
			location, ok := cityByDate[midnightUTC(day.Date)]
			if !ok {
				location = trip.Destination
			}
			checklist, ok := cache[location]
			if !ok {
				checklist = s.places.Checklist(ctx, location, trip.TravelStyle)
				cache[location] = checklist
			}

			for _, group := range []struct {
				category domain.ItemCategory
				names    []string
			}{
				{domain.CategoryPlace, checklist.Places},
				{domain.CategoryRestaurant, checklist.Restaurants},
				{domain.CategoryHotel, checklist.Hotels},
			} {
				for _, name := range group.names {
					inserted, err := r.Days.AddItemIfAbsent(ctx, domain.ChecklistItem{
						DayID:    day.ID,
						Category: group.category,
						Name:     name,
					})
					if err != nil {
						return err
					}
					if inserted {
						added++
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("service.SuggestService.Apply: %w", err)
	}
	return added, nil
}

// Generate fills every day's empty slot descriptions with style-keyed text.
// Non-empty descriptions are left alone so manual edits and imported text
// survive. Returns domain.ErrNotFound if the trip does not exist.
func (s *SuggestService) Generate(ctx context.Context, tripID uuid.UUID) error {
	err := s.txr.InTx(ctx, func(r repo.Repos) error {
		trip, err := r.Trips.GetByID(ctx, tripID)
		if err != nil {
			return err
		}
		days, err := r.Days.ListByTripID(ctx, tripID)
		if err != nil {
			return err
		}

		plan := suggest.PlanForStyle(trip.Destination, trip.TravelStyle)
		for _, day := range days {
			if day.Morning.Description == "" {
				day.Morning.Description = plan.Morning
			}
			if day.Afternoon.Description == "" {
				day.Afternoon.Description = plan.Afternoon
			}
			if day.Evening.Description == "" {
				day.Evening.Description = plan.Evening
			}
			if err := r.Days.UpdateSlots(ctx, day); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.SuggestService.Generate: %w", err)
	}
	return nil
}

// Recipe returns the simple local recipe for the trip's destination.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *SuggestService) Recipe(ctx context.Context, tripID uuid.UUID) (suggest.Recipe, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return suggest.Recipe{}, fmt.Errorf("service.SuggestService.Recipe: %w", err)
	}
	return suggest.RecipeFor(trip.Destination), nil
}

// Highlights returns the foodie highlights for the trip's destination.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *SuggestService) Highlights(ctx context.Context, tripID uuid.UUID) (suggest.Highlights, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return suggest.Highlights{}, fmt.Errorf("service.SuggestService.Highlights: %w", err)
	}
	return suggest.HighlightsFor(trip.Destination), nil
}
