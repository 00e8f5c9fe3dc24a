package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/khartman/trip-planner/internal/domain"
	"github.com/khartman/trip-planner/internal/repo"
)

// DayService implements business logic for itinerary days and their
// checklist items.
type DayService struct {
	txr  repo.TxRunner
	days repo.DayRepo
}

// NewDayService constructs a DayService backed by the provided repos.
func NewDayService(txr repo.TxRunner, days repo.DayRepo) *DayService {
	return &DayService{txr: txr, days: days}
}

// ItemState is one existing item's editable fields in a day update.
type ItemState struct {
	ID      uuid.UUID
	Checked bool
	Slot    string
}

// NewItem is a user-typed checklist addition. Items added by hand start
// checked, unlike generated suggestions.
type NewItem struct {
	Category domain.ItemCategory
	Name     string
	Slot     string
}

// DayUpdate is the full editable state of one day submitted at once.
type DayUpdate struct {
	Morning   domain.Slot
	Afternoon domain.Slot
	Evening   domain.Slot
	StopID    *uuid.UUID
	Items     []ItemState
	NewItems  []NewItem
}

// GetByID returns a single day with its items, scoped to the trip.
// Returns domain.ErrNotFound if the day does not exist under that trip.
func (s *DayService) GetByID(ctx context.Context, tripID, dayID uuid.UUID) (domain.Day, error) {
	day, err := s.days.GetByID(ctx, tripID, dayID)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.GetByID: %w", err)
	}
	return day, nil
}

// Update applies a day edit atomically: slot texts, per-item checked/slot
// state, and any newly typed items. Item slots outside the allowed values for
// their category are stored as empty. Returns the day as persisted.
// Returns domain.ErrNotFound if the day does not exist under that trip.
func (s *DayService) Update(ctx context.Context, tripID, dayID uuid.UUID, upd DayUpdate) (domain.Day, error) {
	var updated domain.Day
	err := s.txr.InTx(ctx, func(r repo.Repos) error {
		day, err := r.Days.GetByID(ctx, tripID, dayID)
		if err != nil {
			return err
		}

		day.Morning = upd.Morning
		day.Afternoon = upd.Afternoon
		day.Evening = upd.Evening
		day.StopID = upd.StopID
		if err := r.Days.UpdateSlots(ctx, day); err != nil {
			return err
		}

		for _, item := range upd.Items {
			slot := normalizeSlot(itemCategory(day, item.ID), item.Slot)
			if err := r.Days.UpdateItem(ctx, dayID, item.ID, item.Checked, slot); err != nil {
				return err
			}
		}
		for _, item := range upd.NewItems {
			if strings.TrimSpace(item.Name) == "" {
				continue
			}
			_, err := r.Days.AddItem(ctx, domain.ChecklistItem{
				DayID:    dayID,
				Category: item.Category,
				Name:     strings.TrimSpace(item.Name),
				Checked:  true,
				Slot:     normalizeSlot(item.Category, item.Slot),
			})
			if err != nil {
				return err
			}
		}

		updated, err = r.Days.GetByID(ctx, tripID, dayID)
		return err
	})
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.Update: %w", err)
	}
	return updated, nil
}

// AddItem appends one checklist item to a day.
// Returns domain.ErrValidation for an empty name, domain.ErrNotFound if the
// day does not exist under that trip.
func (s *DayService) AddItem(ctx context.Context, tripID, dayID uuid.UUID, item NewItem) (domain.ChecklistItem, error) {
	if strings.TrimSpace(item.Name) == "" {
		return domain.ChecklistItem{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if _, err := s.days.GetByID(ctx, tripID, dayID); err != nil {
		return domain.ChecklistItem{}, fmt.Errorf("service.DayService.AddItem: %w", err)
	}
	created, err := s.days.AddItem(ctx, domain.ChecklistItem{
		DayID:    dayID,
		Category: item.Category,
		Name:     strings.TrimSpace(item.Name),
		Checked:  true,
		Slot:     normalizeSlot(item.Category, item.Slot),
	})
	if err != nil {
		return domain.ChecklistItem{}, fmt.Errorf("service.DayService.AddItem: %w", err)
	}
	return created, nil
}

// HideItem soft-hides a suggestion so it stops appearing without being lost.
// Returns domain.ErrNotFound if the item does not belong to the trip.
func (s *DayService) HideItem(ctx context.Context, tripID, itemID uuid.UUID) error {
	if err := s.days.HideItem(ctx, tripID, itemID); err != nil {
		return fmt.Errorf("service.DayService.HideItem: %w", err)
	}
	return nil
}

// itemCategory looks up an existing item's category on the loaded day so its
// submitted slot can be validated against the right vocabulary.
func itemCategory(day domain.Day, itemID uuid.UUID) domain.ItemCategory {
	for _, item := range day.Items {
		if item.ID == itemID {
			return item.Category
		}
	}
	return domain.CategoryPlace
}

// normalizeSlot keeps only slot values meaningful for the category: a time of
// day for places, a meal for restaurants, nothing for hotels.
func normalizeSlot(category domain.ItemCategory, slot string) string {
	slot = strings.ToLower(strings.TrimSpace(slot))
	switch category {
	case domain.CategoryPlace:
		switch slot {
		case "morning", "afternoon", "evening":
			return slot
		}
	case domain.CategoryRestaurant:
		switch slot {
		case "breakfast", "lunch", "dinner", "snack":
			return slot
		}
	}
	return ""
}
