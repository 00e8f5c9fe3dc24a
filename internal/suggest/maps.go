package suggest

import (
	"net/url"
	"strings"

	"github.com/khartman/trip-planner/internal/domain"
)

// MapsSearchURL returns a Google Maps search link for a place name,
// or "" for an empty name.
func MapsSearchURL(name string) string {
	if name == "" {
		return ""
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(name)
}

// DirectionsURL builds a driving-directions link for one day: starting and
// ending at the day's first checked hotel, routing through checked breakfast
// restaurants and then checked places. Returns "" when the day has no checked
// hotel or nothing to route through.
func DirectionsURL(day domain.Day, city string) string {
	byCategory := day.ItemsByCategory()

	var hotel string
	for _, item := range byCategory[domain.CategoryHotel] {
		if item.Checked {
			hotel = item.Name + ", " + city
			break
		}
	}
	if hotel == "" {
		return ""
	}

	var waypoints []string
	for _, item := range byCategory[domain.CategoryRestaurant] {
		if item.Checked && strings.EqualFold(item.Slot, "breakfast") {
			waypoints = append(waypoints, item.Name+", "+city)
		}
	}
	for _, item := range byCategory[domain.CategoryPlace] {
		if item.Checked {
			waypoints = append(waypoints, item.Name+", "+city)
		}
	}
	if len(waypoints) == 0 {
		return ""
	}

	parts := []string{
		"https://www.google.com/maps/dir/?api=1",
		"origin=" + url.QueryEscape(hotel),
		"destination=" + url.QueryEscape(hotel),
		// Google Maps expects waypoints joined by pipe characters.
		"waypoints=" + url.QueryEscape(strings.Join(waypoints, "|")),
		"travelmode=driving",
	}
	return strings.Join(parts, "&")
}
