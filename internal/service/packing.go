package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/khartman/trip-planner/internal/domain"
	"github.com/khartman/trip-planner/internal/repo"
	"github.com/khartman/trip-planner/internal/suggest"
)

// PackingService implements business logic for a trip's packing list. The
// list self-seeds: listing a trip's items first inserts any generated
// suggestions not yet present, so user edits and checks survive re-listing.
type PackingService struct {
	trips   repo.TripRepo
	packing repo.PackingRepo
}

// NewPackingService constructs a PackingService backed by the provided repos.
func NewPackingService(trips repo.TripRepo, packing repo.PackingRepo) *PackingService {
	return &PackingService{trips: trips, packing: packing}
}

// PackingUpdate sets one packing item's editable fields.
type PackingUpdate struct {
	ID      uuid.UUID
	Label   string
	Checked bool
}

// List seeds destination- and season-appropriate suggestions and returns the
// full packing list. Returns domain.ErrNotFound if the trip does not exist.
func (s *PackingService) List(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.PackingService.List: %w", err)
	}
	if err := s.packing.SeedMissing(ctx, tripID, suggest.PackingList(trip)); err != nil {
		return nil, fmt.Errorf("service.PackingService.List: %w", err)
	}
	items, err := s.packing.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.PackingService.List: %w", err)
	}
	if items == nil {
		items = []domain.PackingItem{}
	}
	return items, nil
}

// Create adds a user-defined packing item.
// Returns domain.ErrValidation for an empty label.
func (s *PackingService) Create(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error) {
	if strings.TrimSpace(item.Label) == "" {
		return domain.PackingItem{}, fmt.Errorf("%w: label is required", domain.ErrValidation)
	}
	if strings.TrimSpace(item.Category) == "" {
		item.Category = "Personal"
	}
	created, err := s.packing.Create(ctx, item)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.Create: %w", err)
	}
	return created, nil
}

// Update applies label and checked edits to the given items.
// Returns domain.ErrNotFound if any item does not exist under the trip.
func (s *PackingService) Update(ctx context.Context, tripID uuid.UUID, updates []PackingUpdate) error {
	for _, upd := range updates {
		if strings.TrimSpace(upd.Label) == "" {
			return fmt.Errorf("%w: label is required", domain.ErrValidation)
		}
	}
	for _, upd := range updates {
		if err := s.packing.Update(ctx, tripID, upd.ID, upd.Label, upd.Checked); err != nil {
			return fmt.Errorf("service.PackingService.Update: %w", err)
		}
	}
	return nil
}

// Delete removes one packing item, scoped to the trip.
// Returns domain.ErrNotFound if the item does not exist under that trip.
func (s *PackingService) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	if err := s.packing.Delete(ctx, tripID, itemID); err != nil {
		return fmt.Errorf("service.PackingService.Delete: %w", err)
	}
	return nil
}
