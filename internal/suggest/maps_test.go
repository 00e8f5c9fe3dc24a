package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khartman/trip-planner/internal/domain"
)

func TestMapsSearchURL(t *testing.T) {
	assert.Empty(t, MapsSearchURL(""))
	assert.Equal(t,
		"https://www.google.com/maps/search/?api=1&query=Senso-ji+Temple",
		MapsSearchURL("Senso-ji Temple"))
}

func TestDirectionsURL_RoutesHotelToHotel(t *testing.T) {
	day := domain.Day{
		Items: []domain.ChecklistItem{
			{Category: domain.CategoryHotel, Name: "Hotel Niwa", Checked: true},
			{Category: domain.CategoryRestaurant, Name: "Cafe Kitsune", Checked: true, Slot: "breakfast"},
			{Category: domain.CategoryRestaurant, Name: "Ramen Bar", Checked: true, Slot: "dinner"},
			{Category: domain.CategoryPlace, Name: "Meiji Shrine", Checked: true},
			{Category: domain.CategoryPlace, Name: "Skipped Museum", Checked: false},
		},
	}

	got := DirectionsURL(day, "Tokyo")

	require.NotEmpty(t, got)
	assert.Contains(t, got, "origin=Hotel+Niwa%2C+Tokyo")
	assert.Contains(t, got, "destination=Hotel+Niwa%2C+Tokyo")
	// Breakfast restaurant and checked places are waypoints; dinner and
	// unchecked entries are not.
	assert.Contains(t, got, "Cafe+Kitsune")
	assert.Contains(t, got, "Meiji+Shrine")
	assert.NotContains(t, got, "Ramen+Bar")
	assert.NotContains(t, got, "Skipped+Museum")
	assert.Contains(t, got, "travelmode=driving")
}

func TestDirectionsURL_NoCheckedHotel(t *testing.T) {
	day := domain.Day{
		Items: []domain.ChecklistItem{
			{Category: domain.CategoryHotel, Name: "Hotel Niwa", Checked: false},
			{Category: domain.CategoryPlace, Name: "Meiji Shrine", Checked: true},
		},
	}

	assert.Empty(t, DirectionsURL(day, "Tokyo"))
}

func TestDirectionsURL_NoWaypoints(t *testing.T) {
	day := domain.Day{
		Items: []domain.ChecklistItem{
			{Category: domain.CategoryHotel, Name: "Hotel Niwa", Checked: true},
		},
	}

	assert.Empty(t, DirectionsURL(day, "Tokyo"))
}
