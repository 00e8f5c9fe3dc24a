package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khartman/trip-planner/internal/domain"
	"github.com/khartman/trip-planner/internal/repo"
	"github.com/khartman/trip-planner/internal/service"
)

func newExportService(r repo.Repos) *service.ExportService {
	return service.NewExportService(&fakeTxRunner{repos: r}, r)
}

func TestExportService_Export_WritesItemsWithCityAndSlots(t *testing.T) {
	trip := validTrip()
	trip.ID = uuid.New()

	days := emptyDays(trip.ID, trip.StartDate, 2)
	days[0].Items = []domain.ChecklistItem{
		{ID: uuid.New(), Category: domain.CategoryPlace, Name: "Temple", Checked: true, Slot: "morning"},
		{ID: uuid.New(), Category: domain.CategoryRestaurant, Name: "Ramen bar", Slot: "dinner"},
		{ID: uuid.New(), Category: domain.CategoryPlace, Name: "Skip me", Hidden: true},
	}

	stop := domain.Stop{
		ID: uuid.New(), TripID: trip.ID, Name: "Asakusa",
		StartDate: date(2026, 6, 1), EndDate: date(2026, 6, 1),
	}

	repos := repo.Repos{
		Trips: tripRepoReturning(trip),
		Days: &mockDayRepo{
			listByTripID: func(_ context.Context, _ uuid.UUID) ([]domain.Day, error) { return days, nil },
		},
		Stops: &mockStopRepo{
			listByTripID: func(_ context.Context, _ uuid.UUID) ([]domain.Stop, error) {
				return []domain.Stop{stop}, nil
			},
		},
	}

	var buf bytes.Buffer
	err := newExportService(repos).Export(context.Background(), trip.ID, &buf)

	require.NoError(t, err)
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3, "header plus two visible items")
	assert.Equal(t, []string{"date", "time_of_day", "category", "name", "city", "meal", "selected"}, records[0])
	assert.Equal(t, []string{"2026-06-01", "morning", "place", "Temple", "Asakusa", "", "1"}, records[1])
	assert.Equal(t, []string{"2026-06-01", "", "restaurant", "Ramen bar", "Asakusa", "dinner", "0"}, records[2])
}

func TestExportService_ImportNew_BuildsTripDaysStopsAndItems(t *testing.T) {
	input := strings.Join([]string{
		"date,time_of_day,category,name,city,meal,selected",
		"2026-06-02,morning,place,Temple,Kyoto,,1",
		"2026-06-01,,restaurant,Ramen bar,,dinner,0",
		"2026-06-03,,unknown-category,Mystery spot,Kyoto,,yes",
		",,place,No date so skipped,,,1",
	}, "\n")

	tripID := uuid.New()
	var createdStops []domain.Stop
	var addedItems []domain.ChecklistItem
	var batchedDays []domain.Day

	repos := repo.Repos{
		Trips: &mockTripRepo{
			create: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
				trip.ID = tripID
				return trip, nil
			},
		},
		Days: &mockDayRepo{
			createBatch: func(_ context.Context, days []domain.Day) ([]domain.Day, error) {
				for i := range days {
					days[i].ID = uuid.New()
				}
				batchedDays = days
				return days, nil
			},
			addItem: func(_ context.Context, item domain.ChecklistItem) (domain.ChecklistItem, error) {
				item.ID = uuid.New()
				addedItems = append(addedItems, item)
				return item, nil
			},
		},
		Stops: &mockStopRepo{
			create: func(_ context.Context, stop domain.Stop) (domain.Stop, error) {
				stop.ID = uuid.New()
				createdStops = append(createdStops, stop)
				return stop, nil
			},
		},
	}

	trip, err := newExportService(repos).ImportNew(
		context.Background(), "Kyoto, Japan", domain.StyleFlexible, strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, tripID, trip.ID)
	assert.Equal(t, date(2026, 6, 1), trip.StartDate, "range spans the row dates")
	assert.Equal(t, date(2026, 6, 3), trip.EndDate)
	assert.Len(t, batchedDays, 3)

	require.Len(t, createdStops, 1)
	assert.Equal(t, "Kyoto", createdStops[0].Name)
	assert.Equal(t, date(2026, 6, 2), createdStops[0].StartDate)
	assert.Equal(t, date(2026, 6, 3), createdStops[0].EndDate)

	require.Len(t, addedItems, 3)
	assert.Equal(t, "Temple", addedItems[0].Name)
	assert.Equal(t, "morning", addedItems[0].Slot)
	assert.True(t, addedItems[0].Checked)
	assert.Equal(t, "dinner", addedItems[1].Slot)
	assert.False(t, addedItems[1].Checked)
	assert.Equal(t, domain.CategoryPlace, addedItems[2].Category, "unknown categories fall back to place")
}

func TestExportService_ImportNew_MissingDestination(t *testing.T) {
	_, err := newExportService(repo.Repos{}).ImportNew(
		context.Background(), "  ", domain.StyleFlexible, strings.NewReader("date,name\n"))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExportService_ImportNew_NoUsableRows(t *testing.T) {
	input := "date,time_of_day,category,name,city,meal,selected\nnot-a-date,,place,Temple,,,1\n"

	_, err := newExportService(repo.Repos{}).ImportNew(
		context.Background(), "Kyoto", domain.StyleFlexible, strings.NewReader(input))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExportService_ImportMerge_IgnoresRowsOutsideRange(t *testing.T) {
	trip := validTrip() // June 1-5
	trip.ID = uuid.New()
	days := emptyDays(trip.ID, trip.StartDate, 5)

	input := strings.Join([]string{
		"date,time_of_day,category,name,city,meal,selected",
		"2026-06-02,,place,Temple,,,1",
		"2026-07-01,,place,Too late,,,1",
	}, "\n")

	var addedItems []domain.ChecklistItem
	repos := repo.Repos{
		Trips: tripRepoReturning(trip),
		Days: &mockDayRepo{
			listByTripID: func(_ context.Context, _ uuid.UUID) ([]domain.Day, error) { return days, nil },
			addItem: func(_ context.Context, item domain.ChecklistItem) (domain.ChecklistItem, error) {
				addedItems = append(addedItems, item)
				return item, nil
			},
		},
		Stops: &mockStopRepo{},
	}

	applied, err := newExportService(repos).ImportMerge(context.Background(), trip.ID, strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	require.Len(t, addedItems, 1)
	assert.Equal(t, "Temple", addedItems[0].Name)
}

func TestExportService_ImportMerge_AllRowsOutsideRange(t *testing.T) {
	trip := validTrip()
	trip.ID = uuid.New()

	input := "date,time_of_day,category,name,city,meal,selected\n2027-01-01,,place,Temple,,,1\n"

	repos := repo.Repos{Trips: tripRepoReturning(trip)}

	_, err := newExportService(repos).ImportMerge(context.Background(), trip.ID, strings.NewReader(input))

	assert.ErrorIs(t, err, domain.ErrValidation)
}
