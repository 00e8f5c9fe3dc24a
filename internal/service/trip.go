// Package service contains the business logic for the trip planner API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/khartman/trip-planner/internal/domain"
	"github.com/khartman/trip-planner/internal/itinerary"
	"github.com/khartman/trip-planner/internal/repo"
	"github.com/khartman/trip-planner/internal/suggest"
	"github.com/khartman/trip-planner/internal/weather"
)

// Forecaster supplies per-date weather summaries for a destination.
// Satisfied by *weather.Client.
type Forecaster interface {
	Forecast(ctx context.Context, destination string, dates []time.Time) []weather.DayForecast
}

// TripService implements business logic for Trip operations, including the
// date-range reconciliation that keeps the day set consistent with the trip's
// range. Mutations that touch multiple tables run inside one transaction.
type TripService struct {
	txr     repo.TxRunner
	trips   repo.TripRepo
	days    repo.DayRepo
	stops   repo.StopRepo
	budget  repo.BudgetRepo
	packing repo.PackingRepo
	weather Forecaster
	now     func() time.Time
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(txr repo.TxRunner, r repo.Repos, forecaster Forecaster) *TripService {
	return &TripService{
		txr:     txr,
		trips:   r.Trips,
		days:    r.Days,
		stops:   r.Stops,
		budget:  r.Budget,
		packing: r.Packing,
		weather: forecaster,
		now:     time.Now,
	}
}

// TripListing is one dashboard row: a trip plus its derived planning status.
type TripListing struct {
	domain.Trip
	Status domain.PlanningStatus
}

// TripPage is one page of trips split into upcoming and past relative to
// today (a trip is upcoming while its end date has not passed).
type TripPage struct {
	Upcoming []TripListing
	Past     []TripListing
	Total    int64
	Page     int
	Limit    int
}

// DayView is a day enriched with derived read-model fields.
type DayView struct {
	domain.Day
	City          string
	DirectionsURL string
	ItemsTotal    int
	ItemsChecked  int
}

// TripDetail aggregates everything the trip page needs in one read.
type TripDetail struct {
	Trip        domain.Trip
	Days        []DayView
	Stops       []domain.Stop
	BudgetItems []domain.BudgetItem
	Budget      domain.BudgetSummary
	Packing     []domain.PackingItem
	Weather     []weather.DayForecast
	Status      domain.PlanningStatus
}

// TripSummary is the read-only digest of a trip's itinerary.
type TripSummary struct {
	Trip   domain.Trip
	Days   []DayView
	Stops  []domain.Stop
	Status domain.PlanningStatus
}

// UpdateResult carries the updated trip plus the stops that were removed
// because the new date range no longer fully contains them.
type UpdateResult struct {
	Trip          domain.Trip
	OrphanedStops []domain.Stop
}

// Create validates and persists a new trip together with one empty day per
// calendar date in its range, atomically.
// Returns domain.ErrValidation (or ErrInvalidRange) for invalid input.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	var created domain.Trip
	err := s.txr.InTx(ctx, func(r repo.Repos) error {
		var err error
		created, err = r.Trips.Create(ctx, trip)
		if err != nil {
			return err
		}
		days, err := itinerary.Initialize(created.ID, created.StartDate, created.EndDate)
		if err != nil {
			return err
		}
		_, err = r.Days.CreateBatch(ctx, days)
		return err
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns one page of trips split into upcoming and past, each with its
// planning status.
func (s *TripService) List(ctx context.Context, p domain.PaginationParams) (TripPage, error) {
	trips, total, err := s.trips.ListPaged(ctx, p)
	if err != nil {
		return TripPage{}, fmt.Errorf("service.TripService.List: %w", err)
	}

	page := TripPage{
		Upcoming: []TripListing{},
		Past:     []TripListing{},
		Total:    total,
		Page:     p.Page,
		Limit:    p.Limit,
	}
	today := midnightUTC(s.now())
	for _, trip := range trips {
		days, err := s.days.ListByTripID(ctx, trip.ID)
		if err != nil {
			return TripPage{}, fmt.Errorf("service.TripService.List: %w", err)
		}
		listing := TripListing{Trip: trip, Status: domain.PlanningStatusFor(days)}
		if trip.EndDate.Before(today) {
			page.Past = append(page.Past, listing)
		} else {
			page.Upcoming = append(page.Upcoming, listing)
		}
	}
	return page, nil
}

// Update validates the edit and reconciles the day set against the new date
// range: kept days survive with their content, uncovered dates get fresh empty
// days, days outside the range are dropped, and stops no longer contained in
// the range are deleted. Runs in one transaction and reports the removed stops.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (UpdateResult, error) {
	if err := validateTrip(trip); err != nil {
		return UpdateResult{}, err
	}

	var result UpdateResult
	err := s.txr.InTx(ctx, func(r repo.Repos) error {
		if _, err := r.Trips.GetByID(ctx, trip.ID); err != nil {
			return err
		}
		oldDays, err := r.Days.ListByTripID(ctx, trip.ID)
		if err != nil {
			return err
		}
		stops, err := r.Stops.ListByTripID(ctx, trip.ID)
		if err != nil {
			return err
		}

		rec, err := itinerary.Reconcile(trip.ID, oldDays, stops, trip.StartDate, trip.EndDate)
		if err != nil {
			return err
		}

		updated, err := r.Trips.Update(ctx, trip)
		if err != nil {
			return err
		}
		if _, err := r.Days.Replace(ctx, trip.ID, rec.Days); err != nil {
			return err
		}
		if len(rec.OrphanedStopIDs) > 0 {
			if err := r.Stops.DeleteByIDs(ctx, trip.ID, rec.OrphanedStopIDs); err != nil {
				return err
			}
		}

		result.Trip = updated
		result.OrphanedStops = pickStops(stops, rec.OrphanedStopIDs)
		return nil
	})
	if err != nil {
		return UpdateResult{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip; days, stops, items, budget, and packing rows cascade.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Detail aggregates the full trip page: days with items and derived fields,
// stops, budget with totals, the (seeded) packing list, and the forecast.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Detail(ctx context.Context, id uuid.UUID) (TripDetail, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return TripDetail{}, fmt.Errorf("service.TripService.Detail: %w", err)
	}
	days, err := s.days.ListByTripID(ctx, id)
	if err != nil {
		return TripDetail{}, fmt.Errorf("service.TripService.Detail: %w", err)
	}
	stops, err := s.stops.ListByTripID(ctx, id)
	if err != nil {
		return TripDetail{}, fmt.Errorf("service.TripService.Detail: %w", err)
	}
	budgetItems, err := s.budget.ListByTripID(ctx, id)
	if err != nil {
		return TripDetail{}, fmt.Errorf("service.TripService.Detail: %w", err)
	}
	if err := s.packing.SeedMissing(ctx, id, suggest.PackingList(trip)); err != nil {
		return TripDetail{}, fmt.Errorf("service.TripService.Detail: %w", err)
	}
	packing, err := s.packing.ListByTripID(ctx, id)
	if err != nil {
		return TripDetail{}, fmt.Errorf("service.TripService.Detail: %w", err)
	}

	return TripDetail{
		Trip:        trip,
		Days:        dayViews(trip, days, stops),
		Stops:       stops,
		BudgetItems: budgetItems,
		Budget:      domain.SummarizeBudget(budgetItems),
		Packing:     packing,
		Weather:     s.weather.Forecast(ctx, trip.Destination, itinerary.DatesIn(trip.StartDate, trip.EndDate)),
		Status:      domain.PlanningStatusFor(days),
	}, nil
}

// Summary returns the read-only itinerary digest for a trip.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Summary(ctx context.Context, id uuid.UUID) (TripSummary, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return TripSummary{}, fmt.Errorf("service.TripService.Summary: %w", err)
	}
	days, err := s.days.ListByTripID(ctx, id)
	if err != nil {
		return TripSummary{}, fmt.Errorf("service.TripService.Summary: %w", err)
	}
	stops, err := s.stops.ListByTripID(ctx, id)
	if err != nil {
		return TripSummary{}, fmt.Errorf("service.TripService.Summary: %w", err)
	}
	return TripSummary{
		Trip:   trip,
		Days:   dayViews(trip, days, stops),
		Stops:  stops,
		Status: domain.PlanningStatusFor(days),
	}, nil
}

// dayViews derives per-day read-model fields: the city in effect on each date
// (the covering stop, else the trip destination), a driving-directions link,
// and checklist completion counts over visible items.
func dayViews(trip domain.Trip, days []domain.Day, stops []domain.Stop) []DayView {
	cityByDate := locationByDate(stops)
	views := make([]DayView, len(days))
	for i, day := range days {
		city, ok := cityByDate[midnightUTC(day.Date)]
		if !ok {
			city = trip.Destination
		}
		total, checked := 0, 0
		for _, item := range day.Items {
			if item.Hidden {
				continue
			}
			total++
			if item.Checked {
				checked++
			}
		}
		views[i] = DayView{
			Day:           day,
			City:          city,
			DirectionsURL: suggest.DirectionsURL(day, city),
			ItemsTotal:    total,
			ItemsChecked:  checked,
		}
	}
	return views
}

// locationByDate maps each covered calendar date to a stop name. Later stops
// win on overlap, matching the ascending start_date iteration order.
func locationByDate(stops []domain.Stop) map[time.Time]string {
	out := map[time.Time]string{}
	for _, stop := range stops {
		for _, date := range itinerary.DatesIn(stop.StartDate, stop.EndDate) {
			out[date] = stop.Name
		}
	}
	return out
}

func pickStops(stops []domain.Stop, ids []uuid.UUID) []domain.Stop {
	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := []domain.Stop{}
	for _, stop := range stops {
		if _, ok := wanted[stop.ID]; ok {
			out = append(out, stop)
		}
	}
	return out
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// validateTrip enforces business rules common to Create and Update.
//   - Destination must be non-empty (whitespace-only is rejected).
//   - StartDate must not be after EndDate.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if trip.StartDate.After(trip.EndDate) {
		return domain.ErrInvalidRange
	}
	return nil
}
