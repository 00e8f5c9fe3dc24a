package handler

import (
	"net/http"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/khartman/trip-planner/internal/domain"
	"github.com/khartman/trip-planner/internal/service"
)

// --- wire types -------------------------------------------------------------

// Slot is one of a day's three time-of-day blocks.
type Slot struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	MapLink     string `json:"map_link"`
}

// ChecklistItem is the wire representation of a day checklist entry.
type ChecklistItem struct {
	ID       uuid.UUID `json:"id"`
	Category string    `json:"category"`
	Name     string    `json:"name"`
	Checked  bool      `json:"checked"`
	Slot     string    `json:"slot,omitempty"`
}

// Day is the wire representation of one itinerary day with its derived
// read-model fields.
type Day struct {
	ID            uuid.UUID          `json:"id"`
	Date          openapi_types.Date `json:"date"`
	DayNumber     int                `json:"day_number"`
	StopID        *uuid.UUID         `json:"stop_id,omitempty"`
	Morning       Slot               `json:"morning"`
	Afternoon     Slot               `json:"afternoon"`
	Evening       Slot               `json:"evening"`
	Items         []ChecklistItem    `json:"items"`
	City          string             `json:"city,omitempty"`
	DirectionsURL string             `json:"directions_url,omitempty"`
	ItemsTotal    int                `json:"items_total"`
	ItemsChecked  int                `json:"items_checked"`
}

// DayUpdateRequest is the body for PUT /trips/{id}/days/{dayID}.
type DayUpdateRequest struct {
	Morning   Slot        `json:"morning"`
	Afternoon Slot        `json:"afternoon"`
	Evening   Slot        `json:"evening"`
	StopID    *uuid.UUID  `json:"stop_id"`
	Items     []ItemState `json:"items"`
	NewItems  []NewItem   `json:"new_items"`
}

// ItemState updates one existing checklist item.
type ItemState struct {
	ID      uuid.UUID `json:"id"`
	Checked bool      `json:"checked"`
	Slot    string    `json:"slot"`
}

// NewItem adds one checklist item.
type NewItem struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Slot     string `json:"slot"`
}

// --- handlers ---------------------------------------------------------------

// UpdateDay handles PUT /trips/{id}/days/{dayID}.
func (s *Server) UpdateDay(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}
	dayID, ok := pathUUID(r, "dayID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("day not found"))
		return
	}
	var body DayUpdateRequest
	if err := decode(r, &body); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	day, err := s.days.Update(r.Context(), tripID, dayID, requestToDayUpdate(body))
	if err != nil {
		respondError(w, err, "day")
		return
	}

	writeJSON(w, http.StatusOK, dayToResponse(day))
}

// AddDayItem handles POST /trips/{id}/days/{dayID}/items.
func (s *Server) AddDayItem(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}
	dayID, ok := pathUUID(r, "dayID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("day not found"))
		return
	}
	var body NewItem
	if err := decode(r, &body); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	item, err := s.days.AddItem(r.Context(), tripID, dayID, service.NewItem{
		Category: domain.ParseItemCategory(body.Category),
		Name:     body.Name,
		Slot:     body.Slot,
	})
	if err != nil {
		respondError(w, err, "day")
		return
	}

	writeJSON(w, http.StatusCreated, itemToResponse(item))
}

// HideDayItem handles POST /trips/{id}/days/{dayID}/items/{itemID}/hide.
func (s *Server) HideDayItem(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}
	itemID, ok := pathUUID(r, "itemID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("item not found"))
		return
	}

	if err := s.days.HideItem(r.Context(), tripID, itemID); err != nil {
		respondError(w, err, "item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func requestToDayUpdate(body DayUpdateRequest) service.DayUpdate {
	upd := service.DayUpdate{
		Morning:   requestToSlot(body.Morning),
		Afternoon: requestToSlot(body.Afternoon),
		Evening:   requestToSlot(body.Evening),
		StopID:    body.StopID,
	}
	for _, item := range body.Items {
		upd.Items = append(upd.Items, service.ItemState{
			ID:      item.ID,
			Checked: item.Checked,
			Slot:    item.Slot,
		})
	}
	for _, item := range body.NewItems {
		upd.NewItems = append(upd.NewItems, service.NewItem{
			Category: domain.ParseItemCategory(item.Category),
			Name:     item.Name,
			Slot:     item.Slot,
		})
	}
	return upd
}

func requestToSlot(s Slot) domain.Slot {
	return domain.Slot{Title: s.Title, Description: s.Description, MapLink: s.MapLink}
}

func slotToResponse(s domain.Slot) Slot {
	return Slot{Title: s.Title, Description: s.Description, MapLink: s.MapLink}
}

func itemToResponse(item domain.ChecklistItem) ChecklistItem {
	return ChecklistItem{
		ID:       item.ID,
		Category: string(item.Category),
		Name:     item.Name,
		Checked:  item.Checked,
		Slot:     item.Slot,
	}
}

func dayToResponse(d domain.Day) Day {
	out := Day{
		ID:        d.ID,
		Date:      openapi_types.Date{Time: d.Date},
		DayNumber: d.DayNumber,
		StopID:    d.StopID,
		Morning:   slotToResponse(d.Morning),
		Afternoon: slotToResponse(d.Afternoon),
		Evening:   slotToResponse(d.Evening),
		Items:     []ChecklistItem{},
	}
	for _, item := range d.Items {
		if item.Hidden {
			continue
		}
		out.Items = append(out.Items, itemToResponse(item))
	}
	return out
}

func dayViewsToResponse(views []service.DayView) []Day {
	out := make([]Day, len(views))
	for i, v := range views {
		day := dayToResponse(v.Day)
		day.City = v.City
		day.DirectionsURL = v.DirectionsURL
		day.ItemsTotal = v.ItemsTotal
		day.ItemsChecked = v.ItemsChecked
		out[i] = day
	}
	return out
}
