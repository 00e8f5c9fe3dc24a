package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/khartman/trip-planner/internal/domain"
	"github.com/khartman/trip-planner/internal/service"
)

// --- wire types -------------------------------------------------------------

// PackingItem is the wire representation of one packing-list entry.
type PackingItem struct {
	ID       uuid.UUID `json:"id"`
	Category string    `json:"category"`
	Label    string    `json:"label"`
	Checked  bool      `json:"checked"`
}

// PackingItemRequest is the body for POST /trips/{id}/packing.
type PackingItemRequest struct {
	Category string `json:"category"`
	Label    string `json:"label"`
}

// PackingUpdateRequest is the body for PUT /trips/{id}/packing.
type PackingUpdateRequest struct {
	Items []PackingUpdate `json:"items"`
}

// PackingUpdate edits one packing item.
type PackingUpdate struct {
	ID      uuid.UUID `json:"id"`
	Label   string    `json:"label"`
	Checked bool      `json:"checked"`
}

// --- handlers ---------------------------------------------------------------

// ListPacking handles GET /trips/{id}/packing.
func (s *Server) ListPacking(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	items, err := s.packing.List(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, packingToResponse(items))
}

// CreatePackingItem handles POST /trips/{id}/packing.
func (s *Server) CreatePackingItem(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}
	var body PackingItemRequest
	if err := decode(r, &body); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	created, err := s.packing.Create(r.Context(), domain.PackingItem{
		TripID:   tripID,
		Category: body.Category,
		Label:    body.Label,
	})
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusCreated, packingItemToResponse(created))
}

// UpdatePacking handles PUT /trips/{id}/packing.
func (s *Server) UpdatePacking(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}
	var body PackingUpdateRequest
	if err := decode(r, &body); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	updates := make([]service.PackingUpdate, len(body.Items))
	for i, item := range body.Items {
		updates[i] = service.PackingUpdate{ID: item.ID, Label: item.Label, Checked: item.Checked}
	}
	if err := s.packing.Update(r.Context(), tripID, updates); err != nil {
		respondError(w, err, "packing item")
		return
	}

	items, err := s.packing.List(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "trip")
		return
	}
	writeJSON(w, http.StatusOK, packingToResponse(items))
}

// DeletePackingItem handles DELETE /trips/{id}/packing/{itemID}.
func (s *Server) DeletePackingItem(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}
	itemID, ok := pathUUID(r, "itemID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("packing item not found"))
		return
	}

	if err := s.packing.Delete(r.Context(), tripID, itemID); err != nil {
		respondError(w, err, "packing item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func packingItemToResponse(item domain.PackingItem) PackingItem {
	return PackingItem{
		ID:       item.ID,
		Category: item.Category,
		Label:    item.Label,
		Checked:  item.Checked,
	}
}

func packingToResponse(items []domain.PackingItem) []PackingItem {
	out := make([]PackingItem, len(items))
	for i, item := range items {
		out[i] = packingItemToResponse(item)
	}
	return out
}
