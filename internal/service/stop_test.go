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

func tripRepoReturning(trip domain.Trip) *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) { return trip, nil },
	}
}

func TestStopService_Create_Valid(t *testing.T) {
	trip := validTrip()
	trip.ID = uuid.New()

	stops := &mockStopRepo{
		create: func(_ context.Context, stop domain.Stop) (domain.Stop, error) {
			stop.ID = uuid.New()
			return stop, nil
		},
	}
	svc := service.NewStopService(tripRepoReturning(trip), stops)

	got, err := svc.Create(context.Background(), domain.Stop{
		TripID:    trip.ID,
		Name:      "Kyoto",
		StartDate: date(2026, 6, 2),
		EndDate:   date(2026, 6, 4),
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "Kyoto", got.Name)
}

func TestStopService_Create_OutsideTripRange(t *testing.T) {
	trip := validTrip()
	trip.ID = uuid.New()

	svc := service.NewStopService(tripRepoReturning(trip), &mockStopRepo{})

	_, err := svc.Create(context.Background(), domain.Stop{
		TripID:    trip.ID,
		Name:      "Kyoto",
		StartDate: date(2026, 6, 4),
		EndDate:   date(2026, 6, 8), // trip ends June 5
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStopService_Create_InvertedRange(t *testing.T) {
	trip := validTrip()
	trip.ID = uuid.New()

	svc := service.NewStopService(tripRepoReturning(trip), &mockStopRepo{})

	_, err := svc.Create(context.Background(), domain.Stop{
		TripID:    trip.ID,
		Name:      "Kyoto",
		StartDate: date(2026, 6, 4),
		EndDate:   date(2026, 6, 2),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStopService_Create_MissingName(t *testing.T) {
	trip := validTrip()
	trip.ID = uuid.New()

	svc := service.NewStopService(tripRepoReturning(trip), &mockStopRepo{})

	_, err := svc.Create(context.Background(), domain.Stop{
		TripID:    trip.ID,
		Name:      " ",
		StartDate: date(2026, 6, 2),
		EndDate:   date(2026, 6, 3),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStopService_Create_TripNotFound(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewStopService(trips, &mockStopRepo{})

	_, err := svc.Create(context.Background(), domain.Stop{
		TripID:    uuid.New(),
		Name:      "Kyoto",
		StartDate: date(2026, 6, 2),
		EndDate:   date(2026, 6, 3),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStopService_ListByTripID_NeverNil(t *testing.T) {
	stops := &mockStopRepo{
		listByTripID: func(_ context.Context, _ uuid.UUID) ([]domain.Stop, error) { return nil, nil },
	}
	svc := service.NewStopService(&mockTripRepo{}, stops)

	got, err := svc.ListByTripID(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
