package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/khartman/trip-planner/internal/domain"
	"github.com/khartman/trip-planner/internal/repo"
)

// BudgetService implements business logic for a trip's budget lines.
type BudgetService struct {
	trips  repo.TripRepo
	budget repo.BudgetRepo
}

// NewBudgetService constructs a BudgetService backed by the provided repos.
func NewBudgetService(trips repo.TripRepo, budget repo.BudgetRepo) *BudgetService {
	return &BudgetService{trips: trips, budget: budget}
}

// ActualUpdate sets one budget line's actual spend.
type ActualUpdate struct {
	ID     uuid.UUID
	Actual float64
}

// Create validates and persists a new budget line under a trip.
// Returns domain.ErrNotFound if the trip does not exist, domain.ErrValidation
// for an empty label or negative amounts.
func (s *BudgetService) Create(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error) {
	if _, err := s.trips.GetByID(ctx, item.TripID); err != nil {
		return domain.BudgetItem{}, fmt.Errorf("service.BudgetService.Create: %w", err)
	}
	if strings.TrimSpace(item.Label) == "" {
		return domain.BudgetItem{}, fmt.Errorf("%w: label is required", domain.ErrValidation)
	}
	if item.EstimatedCost < 0 || item.ActualCost < 0 {
		return domain.BudgetItem{}, fmt.Errorf("%w: amounts must not be negative", domain.ErrValidation)
	}
	created, err := s.budget.Create(ctx, item)
	if err != nil {
		return domain.BudgetItem{}, fmt.Errorf("service.BudgetService.Create: %w", err)
	}
	return created, nil
}

// List returns a trip's budget lines plus their totals and progress percent.
func (s *BudgetService) List(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetItem, domain.BudgetSummary, error) {
	items, err := s.budget.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, domain.BudgetSummary{}, fmt.Errorf("service.BudgetService.List: %w", err)
	}
	if items == nil {
		items = []domain.BudgetItem{}
	}
	return items, domain.SummarizeBudget(items), nil
}

// UpdateActuals records actual spend against the given budget lines.
// Returns domain.ErrValidation for a negative amount, domain.ErrNotFound if
// any line does not exist under the trip.
func (s *BudgetService) UpdateActuals(ctx context.Context, tripID uuid.UUID, updates []ActualUpdate) error {
	for _, upd := range updates {
		if upd.Actual < 0 {
			return fmt.Errorf("%w: amounts must not be negative", domain.ErrValidation)
		}
	}
	for _, upd := range updates {
		if err := s.budget.UpdateActual(ctx, tripID, upd.ID, upd.Actual); err != nil {
			return fmt.Errorf("service.BudgetService.UpdateActuals: %w", err)
		}
	}
	return nil
}

// Delete removes one budget line, scoped to the trip.
// Returns domain.ErrNotFound if the line does not exist under that trip.
func (s *BudgetService) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	if err := s.budget.Delete(ctx, tripID, itemID); err != nil {
		return fmt.Errorf("service.BudgetService.Delete: %w", err)
	}
	return nil
}
