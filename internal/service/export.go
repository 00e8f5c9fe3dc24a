package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/khartman/trip-planner/internal/domain"
	"github.com/khartman/trip-planner/internal/itinerary"
	"github.com/khartman/trip-planner/internal/repo"
)

// csvHeader is the itinerary interchange format, one row per checklist item.
var csvHeader = []string{"date", "time_of_day", "category", "name", "city", "meal", "selected"}

// ExportService round-trips itineraries through CSV: exporting a trip's
// checklist items, creating a new trip from a CSV file, and merging CSV rows
// into an existing trip.
type ExportService struct {
	txr   repo.TxRunner
	trips repo.TripRepo
	days  repo.DayRepo
	stops repo.StopRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(txr repo.TxRunner, r repo.Repos) *ExportService {
	return &ExportService{txr: txr, trips: r.Trips, days: r.Days, stops: r.Stops}
}

// Export writes the trip's visible checklist items as CSV, one row per item
// in day order. The city column carries the stop location covering the day's
// date, falling back to the trip destination.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ExportService) Export(ctx context.Context, tripID uuid.UUID, w io.Writer) error {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.ExportService.Export: %w", err)
	}
	days, err := s.days.ListByTripID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.ExportService.Export: %w", err)
	}
	stops, err := s.stops.ListByTripID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.ExportService.Export: %w", err)
	}

	cityByDate := locationByDate(stops)
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("service.ExportService.Export: %w", err)
	}
	for _, day := range days {
		city, ok := cityByDate[midnightUTC(day.Date)]
		if !ok {
			city = trip.Destination
		}
		for _, item := range day.Items {
			if item.Hidden {
				continue
			}
			timeOfDay, meal := "", ""
			switch item.Category {
			case domain.CategoryPlace:
				timeOfDay = item.Slot
			case domain.CategoryRestaurant:
				meal = item.Slot
			}
			selected := "0"
			if item.Checked {
				selected = "1"
			}
			record := []string{
				day.Date.Format("2006-01-02"),
				timeOfDay,
				string(item.Category),
				item.Name,
				city,
				meal,
				selected,
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("service.ExportService.Export: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("service.ExportService.Export: %w", err)
	}
	return nil
}

// ImportNew builds a whole trip from a CSV file: the trip's range spans the
// rows' min and max dates, each distinct city becomes a stop spanning its
// rows' dates, and every row becomes a checklist item on its day.
// Returns domain.ErrValidation when the destination is empty or the file has
// no usable rows.
func (s *ExportService) ImportNew(ctx context.Context, destination string, style domain.TravelStyle, r io.Reader) (domain.Trip, error) {
	if strings.TrimSpace(destination) == "" {
		return domain.Trip{}, fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	rows, err := parseCSVRows(r)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ExportService.ImportNew: %w", err)
	}
	if len(rows) == 0 {
		return domain.Trip{}, fmt.Errorf("%w: no valid rows found in CSV", domain.ErrValidation)
	}

	start, end := rows[0].Date, rows[0].Date
	for _, row := range rows[1:] {
		if row.Date.Before(start) {
			start = row.Date
		}
		if row.Date.After(end) {
			end = row.Date
		}
	}

	var created domain.Trip
	err = s.txr.InTx(ctx, func(r repo.Repos) error {
		var err error
		created, err = r.Trips.Create(ctx, domain.Trip{
			Destination: strings.TrimSpace(destination),
			StartDate:   start,
			EndDate:     end,
			TravelStyle: style,
		})
		if err != nil {
			return err
		}
		days, err := itinerary.Initialize(created.ID, start, end)
		if err != nil {
			return err
		}
		days, err = r.Days.CreateBatch(ctx, days)
		if err != nil {
			return err
		}
		if err := createStopsFromRows(ctx, r.Stops, created.ID, rows); err != nil {
			return err
		}
		return insertRows(ctx, r.Days, days, rows)
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ExportService.ImportNew: %w", err)
	}
	return created, nil
}

// ImportMerge appends CSV rows to an existing trip, ignoring rows dated
// outside the trip's current range. Stops and items from the file are added
// on top of what is already there. Reports how many item rows were applied.
// Returns domain.ErrNotFound if the trip does not exist, domain.ErrValidation
// when no row falls inside the trip's dates.
func (s *ExportService) ImportMerge(ctx context.Context, tripID uuid.UUID, r io.Reader) (int, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return 0, fmt.Errorf("service.ExportService.ImportMerge: %w", err)
	}
	rows, err := parseCSVRows(r)
	if err != nil {
		return 0, fmt.Errorf("service.ExportService.ImportMerge: %w", err)
	}

	start, end := midnightUTC(trip.StartDate), midnightUTC(trip.EndDate)
	inRange := rows[:0]
	for _, row := range rows {
		if !row.Date.Before(start) && !row.Date.After(end) {
			inRange = append(inRange, row)
		}
	}
	if len(inRange) == 0 {
		return 0, fmt.Errorf("%w: CSV rows are all outside the current trip dates", domain.ErrValidation)
	}

	applied := 0
	err = s.txr.InTx(ctx, func(r repo.Repos) error {
		days, err := r.Days.ListByTripID(ctx, tripID)
		if err != nil {
			return err
		}
		if err := createStopsFromRows(ctx, r.Stops, tripID, inRange); err != nil {
			return err
		}
		if err := insertRows(ctx, r.Days, days, inRange); err != nil {
			return err
		}
		applied = len(inRange)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("service.ExportService.ImportMerge: %w", err)
	}
	return applied, nil
}

// csvRow is one parsed itinerary CSV line.
type csvRow struct {
	Date     time.Time
	Name     string
	Category domain.ItemCategory
	City     string
	Slot     string
	Selected bool
}

// parseCSVRows reads the interchange format leniently: rows missing a date or
// name are skipped, unknown categories fall back to "place", and the selected
// column defaults to true unless it says otherwise.
func parseCSVRows(r io.Reader) ([]csvRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not read CSV header", domain.ErrValidation)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []csvRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: malformed CSV row", domain.ErrValidation)
		}

		dateStr := field(record, "date")
		name := field(record, "name")
		if dateStr == "" || name == "" {
			continue
		}
		date, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
		if err != nil {
			continue
		}

		category := domain.ParseItemCategory(field(record, "category"))
		slot := ""
		switch category {
		case domain.CategoryPlace:
			slot = normalizeSlot(category, field(record, "time_of_day"))
		case domain.CategoryRestaurant:
			slot = normalizeSlot(category, field(record, "meal"))
		}

		selected := true
		switch strings.ToLower(field(record, "selected")) {
		case "0", "false", "no", "n":
			selected = false
		}

		rows = append(rows, csvRow{
			Date:     date,
			Name:     name,
			Category: category,
			City:     field(record, "city"),
			Slot:     slot,
			Selected: selected,
		})
	}
	return rows, nil
}

// createStopsFromRows turns each distinct city in the rows into one stop
// spanning that city's earliest and latest row dates.
func createStopsFromRows(ctx context.Context, stops repo.StopRepo, tripID uuid.UUID, rows []csvRow) error {
	type span struct{ start, end time.Time }
	spans := map[string]*span{}
	var order []string
	for _, row := range rows {
		if row.City == "" {
			continue
		}
		sp, ok := spans[row.City]
		if !ok {
			spans[row.City] = &span{start: row.Date, end: row.Date}
			order = append(order, row.City)
			continue
		}
		if row.Date.Before(sp.start) {
			sp.start = row.Date
		}
		if row.Date.After(sp.end) {
			sp.end = row.Date
		}
	}
	sort.Strings(order)
	for _, city := range order {
		sp := spans[city]
		_, err := stops.Create(ctx, domain.Stop{
			TripID:    tripID,
			Name:      city,
			StartDate: sp.start,
			EndDate:   sp.end,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// insertRows adds each row as a checklist item on the day matching its date.
// Rows dated on a date with no day are dropped.
func insertRows(ctx context.Context, days repo.DayRepo, tripDays []domain.Day, rows []csvRow) error {
	dayByDate := make(map[time.Time]uuid.UUID, len(tripDays))
	for _, day := range tripDays {
		dayByDate[midnightUTC(day.Date)] = day.ID
	}
	for _, row := range rows {
		dayID, ok := dayByDate[row.Date]
		if !ok {
			continue
		}
		_, err := days.AddItem(ctx, domain.ChecklistItem{
			DayID:    dayID,
			Category: row.Category,
			Name:     row.Name,
			Checked:  row.Selected,
			Slot:     row.Slot,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
