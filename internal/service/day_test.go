package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khartman/trip-planner/internal/domain"
	"github.com/khartman/trip-planner/internal/repo"
	"github.com/khartman/trip-planner/internal/service"
)

func newDayService(days repo.DayRepo) *service.DayService {
	repos := repo.Repos{Days: days}
	return service.NewDayService(&fakeTxRunner{repos: repos}, days)
}

func TestDayService_Update_AppliesSlotsItemsAndNewItems(t *testing.T) {
	tripID := uuid.New()
	dayID := uuid.New()
	itemID := uuid.New()

	day := domain.Day{
		ID: dayID, TripID: tripID, Date: date(2026, 6, 2), DayNumber: 2,
		Items: []domain.ChecklistItem{
			{ID: itemID, DayID: dayID, Category: domain.CategoryRestaurant, Name: "Ramen bar"},
		},
	}

	var savedDay domain.Day
	var itemChecked bool
	var itemSlot string
	var added []domain.ChecklistItem

	days := &mockDayRepo{
		getByID: func(_ context.Context, _, _ uuid.UUID) (domain.Day, error) { return day, nil },
		updateSlots: func(_ context.Context, d domain.Day) error {
			savedDay = d
			return nil
		},
		updateItem: func(_ context.Context, _, _ uuid.UUID, checked bool, slot string) error {
			itemChecked = checked
			itemSlot = slot
			return nil
		},
		addItem: func(_ context.Context, item domain.ChecklistItem) (domain.ChecklistItem, error) {
			item.ID = uuid.New()
			added = append(added, item)
			return item, nil
		},
	}

	_, err := newDayService(days).Update(context.Background(), tripID, dayID, service.DayUpdate{
		Morning: domain.Slot{Title: "Morning", Description: "Fish market"},
		Items:   []service.ItemState{{ID: itemID, Checked: true, Slot: "Dinner"}},
		NewItems: []service.NewItem{
			{Category: domain.CategoryHotel, Name: "  Park Hotel  "},
			{Category: domain.CategoryPlace, Name: "   "},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Fish market", savedDay.Morning.Description)
	assert.True(t, itemChecked)
	assert.Equal(t, "dinner", itemSlot, "meal slots are lowercased")

	require.Len(t, added, 1, "blank new items are skipped")
	assert.Equal(t, "Park Hotel", added[0].Name)
	assert.True(t, added[0].Checked, "hand-typed items start checked")
}

func TestDayService_Update_RejectsBogusSlot(t *testing.T) {
	tripID := uuid.New()
	dayID := uuid.New()
	itemID := uuid.New()

	day := domain.Day{
		ID: dayID, TripID: tripID,
		Items: []domain.ChecklistItem{
			{ID: itemID, DayID: dayID, Category: domain.CategoryPlace, Name: "Temple"},
		},
	}

	var itemSlot string
	days := &mockDayRepo{
		getByID:     func(_ context.Context, _, _ uuid.UUID) (domain.Day, error) { return day, nil },
		updateSlots: func(_ context.Context, _ domain.Day) error { return nil },
		updateItem: func(_ context.Context, _, _ uuid.UUID, _ bool, slot string) error {
			itemSlot = slot
			return nil
		},
	}

	_, err := newDayService(days).Update(context.Background(), tripID, dayID, service.DayUpdate{
		Items: []service.ItemState{{ID: itemID, Checked: true, Slot: "brunch"}},
	})

	require.NoError(t, err)
	assert.Empty(t, itemSlot, "a meal value is not a valid place slot")
}

func TestDayService_Update_DayNotFound(t *testing.T) {
	days := &mockDayRepo{
		getByID: func(_ context.Context, _, _ uuid.UUID) (domain.Day, error) {
			return domain.Day{}, domain.ErrNotFound
		},
	}

	_, err := newDayService(days).Update(context.Background(), uuid.New(), uuid.New(), service.DayUpdate{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDayService_AddItem_EmptyName(t *testing.T) {
	_, err := newDayService(&mockDayRepo{}).AddItem(
		context.Background(), uuid.New(), uuid.New(),
		service.NewItem{Category: domain.CategoryPlace, Name: "  "},
	)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDayService_HideItem(t *testing.T) {
	var hidden uuid.UUID
	days := &mockDayRepo{
		hideItem: func(_ context.Context, _, itemID uuid.UUID) error {
			hidden = itemID
			return nil
		},
	}

	itemID := uuid.New()
	err := newDayService(days).HideItem(context.Background(), uuid.New(), itemID)

	require.NoError(t, err)
	assert.Equal(t, itemID, hidden)
}
