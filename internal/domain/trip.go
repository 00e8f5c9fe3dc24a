// Package domain contains the core data types for the trip planner API.
// This package has zero external dependencies and is imported by every other
// internal package (itinerary, repo, service, handler).
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TravelStyle biases the suggestion and itinerary generators.
type TravelStyle string

const (
	StyleBudget   TravelStyle = "Budget"
	StyleLuxury   TravelStyle = "Luxury"
	StyleFamily   TravelStyle = "Family"
	StyleFoodie   TravelStyle = "Foodie"
	StyleFlexible TravelStyle = "Flexible"
)

// ParseTravelStyle normalizes free-form input to a known style.
// Unrecognized or empty input falls back to StyleFlexible.
func ParseTravelStyle(s string) TravelStyle {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "budget":
		return StyleBudget
	case "luxury":
		return StyleLuxury
	case "family":
		return StyleFamily
	case "foodie":
		return StyleFoodie
	default:
		return StyleFlexible
	}
}

// Trip represents one planned trip with a fixed date range.
// A trip is the top-level aggregate; days, stops, budget items, and packing
// items belong to a trip. Invariant: StartDate <= EndDate, and exactly one Day
// record exists per calendar date in [StartDate, EndDate] (see internal/itinerary).
type Trip struct {
	ID          uuid.UUID   `json:"id"`
	Destination string      `json:"destination"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	TravelStyle TravelStyle `json:"travel_style"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// PlanningStatus summarizes how planned-out a trip's days are.
type PlanningStatus string

const (
	StatusPlanning      PlanningStatus = "Planning"
	StatusMostlyPlanned PlanningStatus = "Mostly planned"
	StatusReady         PlanningStatus = "Ready"
)

// PlanningStatusFor derives a trip's status from the share of days that have
// activity: under half planned is still "Planning", under 90% is "Mostly
// planned", and 90% or more is "Ready". A trip with no days is "Planning".
func PlanningStatusFor(days []Day) PlanningStatus {
	if len(days) == 0 {
		return StatusPlanning
	}
	active := 0
	for _, d := range days {
		if d.HasActivity() {
			active++
		}
	}
	ratio := float64(active) / float64(len(days))
	switch {
	case ratio < 0.5:
		return StatusPlanning
	case ratio < 0.9:
		return StatusMostlyPlanned
	default:
		return StatusReady
	}
}
