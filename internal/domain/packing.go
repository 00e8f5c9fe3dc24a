package domain

import "github.com/google/uuid"

// PackingItem is one entry in a trip's packing checklist.
// Rows are seeded from the suggestion generator on first read and can be
// renamed, checked, or deleted by the user afterwards.
type PackingItem struct {
	ID       uuid.UUID `json:"id"`
	TripID   uuid.UUID `json:"trip_id"`
	Category string    `json:"category"`
	Label    string    `json:"label"`
	Checked  bool      `json:"checked"`
}
