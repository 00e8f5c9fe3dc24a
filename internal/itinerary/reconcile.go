// Package itinerary maintains the invariant that a trip's Day records exactly
// cover its current date range. It is pure data transformation over in-memory
// records; loading and persisting days is the caller's responsibility.
package itinerary

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/khartman/trip-planner/internal/domain"
)

// Result is the outcome of reconciling a trip's days against a new date range.
type Result struct {
	// Days is the full reconciled day set, ordered by date ascending and
	// renumbered from 1. Kept days retain their IDs and content; synthesized
	// days have a zero ID until persisted.
	Days []domain.Day

	// Dropped holds the day records whose dates fell outside the new range.
	// The caller deletes them; there is no soft-delete or archival.
	Dropped []domain.Day

	// OrphanedStopIDs lists stops no longer fully contained in the new range.
	// The reconciler does not mutate stops; the caller decides the policy.
	OrphanedStopIDs []uuid.UUID
}

// DatesIn returns every calendar date from start to end inclusive.
// Returns nil when start is after end. Times are truncated to midnight UTC so
// date equality is a plain Equal check throughout the package.
func DatesIn(start, end time.Time) []time.Time {
	start, end = midnight(start), midnight(end)
	if start.After(end) {
		return nil
	}
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Initialize builds one empty Day per calendar date in [start, end] for a
// newly created trip. Returns domain.ErrInvalidRange when start > end.
func Initialize(tripID uuid.UUID, start, end time.Time) ([]domain.Day, error) {
	if midnight(start).After(midnight(end)) {
		return nil, domain.ErrInvalidRange
	}
	dates := DatesIn(start, end)
	days := make([]domain.Day, len(dates))
	for i, date := range dates {
		days[i] = domain.Day{
			TripID:    tripID,
			Date:      date,
			DayNumber: i + 1,
		}
	}
	return days, nil
}

// Reconcile computes the day set for a trip whose range changed to
// [newStart, newEnd]. Existing days whose dates still fall inside the new
// range are kept with their content intact; dates with no existing day get a
// fresh empty one; days outside the range are returned in Result.Dropped.
//
// Stops not fully contained in the new range are reported as orphaned, and
// any kept day referencing an orphaned stop has its reference cleared.
// Calling Reconcile twice with the same range is a no-op the second time.
func Reconcile(tripID uuid.UUID, oldDays []domain.Day, stops []domain.Stop, newStart, newEnd time.Time) (Result, error) {
	newStart, newEnd = midnight(newStart), midnight(newEnd)
	if newStart.After(newEnd) {
		return Result{}, domain.ErrInvalidRange
	}

	orphaned := orphanedStops(stops, newStart, newEnd)

	keep := make(map[time.Time]domain.Day, len(oldDays))
	var result Result
	for _, day := range oldDays {
		date := midnight(day.Date)
		if date.Before(newStart) || date.After(newEnd) {
			result.Dropped = append(result.Dropped, day)
			continue
		}
		day.Date = date
		if day.StopID != nil {
			if _, gone := orphaned[*day.StopID]; gone {
				day.StopID = nil
			}
		}
		keep[date] = day
	}

	for i, date := range DatesIn(newStart, newEnd) {
		day, ok := keep[date]
		if !ok {
			day = domain.Day{TripID: tripID, Date: date}
		}
		day.DayNumber = i + 1
		result.Days = append(result.Days, day)
	}

	for id := range orphaned {
		result.OrphanedStopIDs = append(result.OrphanedStopIDs, id)
	}
	sort.Slice(result.OrphanedStopIDs, func(i, j int) bool {
		return result.OrphanedStopIDs[i].String() < result.OrphanedStopIDs[j].String()
	})

	return result, nil
}

// orphanedStops returns the set of stop IDs whose ranges are not fully
// contained in [start, end].
func orphanedStops(stops []domain.Stop, start, end time.Time) map[uuid.UUID]struct{} {
	out := map[uuid.UUID]struct{}{}
	for _, s := range stops {
		if midnight(s.StartDate).Before(start) || midnight(s.EndDate).After(end) {
			out[s.ID] = struct{}{}
		}
	}
	return out
}

// midnight truncates t to its calendar date in UTC.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
