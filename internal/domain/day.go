package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Slot is one time-of-day activity entry on a Day.
type Slot struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	MapLink     string `json:"map_link,omitempty"`
}

// Empty reports whether the slot carries no user content.
func (s Slot) Empty() bool {
	return s.Title == "" && s.Description == "" && s.MapLink == ""
}

// ItemCategory classifies checklist items on a day.
type ItemCategory string

const (
	CategoryPlace      ItemCategory = "place"
	CategoryRestaurant ItemCategory = "restaurant"
	CategoryHotel      ItemCategory = "hotel"
)

// ParseItemCategory normalizes free-form input to a known category.
// Anything unrecognized becomes CategoryPlace, matching the CSV import rules.
func ParseItemCategory(s string) ItemCategory {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "restaurant":
		return CategoryRestaurant
	case "hotel":
		return CategoryHotel
	default:
		return CategoryPlace
	}
}

// ChecklistItem is one candidate place, restaurant, or hotel on a day.
// Slot narrows the item to a time of day (places: morning/afternoon/evening)
// or a meal (restaurants: breakfast/lunch/dinner/snack); empty means
// unassigned. Hidden items are suggestions the user dismissed; they stay in
// the database but are excluded from reads.
type ChecklistItem struct {
	ID       uuid.UUID    `json:"id"`
	DayID    uuid.UUID    `json:"day_id"`
	Category ItemCategory `json:"category"`
	Name     string       `json:"name"`
	Checked  bool         `json:"checked"`
	Slot     string       `json:"slot,omitempty"`
	Hidden   bool         `json:"-"`
}

// Day is one calendar date's itinerary record within a trip.
// Invariant: exactly one Day per date inside the trip's current range, none
// outside it. StopID is set when the date falls inside a stop the user has
// associated with this day; it is cleared when that stop is removed.
type Day struct {
	ID        uuid.UUID  `json:"id"`
	TripID    uuid.UUID  `json:"trip_id"`
	Date      time.Time  `json:"date"`
	DayNumber int        `json:"day_number"`
	StopID    *uuid.UUID `json:"stop_id,omitempty"`

	Morning   Slot `json:"morning"`
	Afternoon Slot `json:"afternoon"`
	Evening   Slot `json:"evening"`

	Items []ChecklistItem `json:"items"`
}

// HasActivity reports whether any slot has a description or any visible item
// is checked. Used to compute a trip's planning status.
func (d Day) HasActivity() bool {
	if strings.TrimSpace(d.Morning.Description) != "" ||
		strings.TrimSpace(d.Afternoon.Description) != "" ||
		strings.TrimSpace(d.Evening.Description) != "" {
		return true
	}
	for _, item := range d.Items {
		if item.Checked && !item.Hidden {
			return true
		}
	}
	return false
}

// ItemsByCategory groups the day's visible items, preserving order.
func (d Day) ItemsByCategory() map[ItemCategory][]ChecklistItem {
	out := map[ItemCategory][]ChecklistItem{}
	for _, item := range d.Items {
		if item.Hidden {
			continue
		}
		out[item.Category] = append(out[item.Category], item)
	}
	return out
}
