package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stop is a sub-range of a trip spent in one city or region.
// Invariant: [StartDate, EndDate] must be fully contained in the parent
// trip's date range. Days reference stops but do not own them.
type Stop struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}

// Contains reports whether date falls within the stop's range, inclusive.
func (s Stop) Contains(date time.Time) bool {
	return !date.Before(s.StartDate) && !date.After(s.EndDate)
}
