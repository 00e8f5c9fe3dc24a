package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khartman/trip-planner/internal/domain"
	"github.com/khartman/trip-planner/internal/service"
)

func TestPackingService_List_SeedsThenLists(t *testing.T) {
	trip := validTrip()
	trip.ID = uuid.New()

	var seeded []domain.PackingItem
	listed := false
	packing := &mockPackingRepo{
		seedMissing: func(_ context.Context, _ uuid.UUID, items []domain.PackingItem) error {
			seeded = items
			return nil
		},
		listByTripID: func(_ context.Context, _ uuid.UUID) ([]domain.PackingItem, error) {
			listed = true
			return []domain.PackingItem{{ID: uuid.New(), TripID: trip.ID, Label: "Passport"}}, nil
		},
	}
	svc := service.NewPackingService(tripRepoReturning(trip), packing)

	items, err := svc.List(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.True(t, listed)
	assert.NotEmpty(t, seeded, "generated suggestions are seeded before listing")
	require.Len(t, items, 1)
	assert.Equal(t, "Passport", items[0].Label)
}

func TestPackingService_List_TripNotFound(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewPackingService(trips, &mockPackingRepo{})

	_, err := svc.List(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPackingService_Create_DefaultsCategory(t *testing.T) {
	packing := &mockPackingRepo{
		create: func(_ context.Context, item domain.PackingItem) (domain.PackingItem, error) {
			item.ID = uuid.New()
			return item, nil
		},
	}
	svc := service.NewPackingService(&mockTripRepo{}, packing)

	got, err := svc.Create(context.Background(), domain.PackingItem{
		TripID: uuid.New(), Label: "Umbrella",
	})

	require.NoError(t, err)
	assert.Equal(t, "Personal", got.Category)
}

func TestPackingService_Create_EmptyLabel(t *testing.T) {
	svc := service.NewPackingService(&mockTripRepo{}, &mockPackingRepo{})

	_, err := svc.Create(context.Background(), domain.PackingItem{TripID: uuid.New(), Label: " "})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPackingService_Update_AppliesAll(t *testing.T) {
	var updates []string
	packing := &mockPackingRepo{
		update: func(_ context.Context, _, _ uuid.UUID, label string, checked bool) error {
			updates = append(updates, label)
			return nil
		},
	}
	svc := service.NewPackingService(&mockTripRepo{}, packing)

	err := svc.Update(context.Background(), uuid.New(), []service.PackingUpdate{
		{ID: uuid.New(), Label: "Passport", Checked: true},
		{ID: uuid.New(), Label: "Umbrella"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Passport", "Umbrella"}, updates)
}
