package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/khartman/trip-planner/internal/domain"
	"github.com/khartman/trip-planner/internal/service"
)

// --- wire types -------------------------------------------------------------

// BudgetItemRequest is the body for POST /trips/{id}/budget.
type BudgetItemRequest struct {
	Label         string  `json:"label"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// BudgetItem is the wire representation of one budget line.
type BudgetItem struct {
	ID            uuid.UUID `json:"id"`
	Label         string    `json:"label"`
	EstimatedCost float64   `json:"estimated_cost"`
	ActualCost    float64   `json:"actual_cost"`
}

// BudgetSummary carries the totals shown alongside the items.
type BudgetSummary struct {
	TotalEstimated  float64 `json:"total_estimated"`
	TotalActual     float64 `json:"total_actual"`
	ProgressPercent int     `json:"progress_percent"`
}

// BudgetResponse is the body for GET /trips/{id}/budget.
type BudgetResponse struct {
	Items   []BudgetItem  `json:"items"`
	Summary BudgetSummary `json:"summary"`
}

// BudgetActualsRequest is the body for PUT /trips/{id}/budget.
type BudgetActualsRequest struct {
	Items []BudgetActual `json:"items"`
}

// BudgetActual records spend against one line.
type BudgetActual struct {
	ID     uuid.UUID `json:"id"`
	Actual float64   `json:"actual_cost"`
}

// --- handlers ---------------------------------------------------------------

// ListBudget handles GET /trips/{id}/budget.
func (s *Server) ListBudget(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	items, summary, err := s.budget.List(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, budgetToResponse(items, summary))
}

// CreateBudgetItem handles POST /trips/{id}/budget.
func (s *Server) CreateBudgetItem(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}
	var body BudgetItemRequest
	if err := decode(r, &body); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	created, err := s.budget.Create(r.Context(), domain.BudgetItem{
		TripID:        tripID,
		Label:         body.Label,
		EstimatedCost: body.EstimatedCost,
	})
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusCreated, budgetItemToResponse(created))
}

// UpdateBudgetActuals handles PUT /trips/{id}/budget.
func (s *Server) UpdateBudgetActuals(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}
	var body BudgetActualsRequest
	if err := decode(r, &body); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	updates := make([]service.ActualUpdate, len(body.Items))
	for i, item := range body.Items {
		updates[i] = service.ActualUpdate{ID: item.ID, Actual: item.Actual}
	}
	if err := s.budget.UpdateActuals(r.Context(), tripID, updates); err != nil {
		respondError(w, err, "budget item")
		return
	}

	items, summary, err := s.budget.List(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "trip")
		return
	}
	writeJSON(w, http.StatusOK, budgetToResponse(items, summary))
}

// DeleteBudgetItem handles DELETE /trips/{id}/budget/{itemID}.
func (s *Server) DeleteBudgetItem(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}
	itemID, ok := pathUUID(r, "itemID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("budget item not found"))
		return
	}

	if err := s.budget.Delete(r.Context(), tripID, itemID); err != nil {
		respondError(w, err, "budget item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func budgetItemToResponse(item domain.BudgetItem) BudgetItem {
	return BudgetItem{
		ID:            item.ID,
		Label:         item.Label,
		EstimatedCost: item.EstimatedCost,
		ActualCost:    item.ActualCost,
	}
}

func budgetToResponse(items []domain.BudgetItem, summary domain.BudgetSummary) BudgetResponse {
	out := BudgetResponse{
		Items: make([]BudgetItem, len(items)),
		Summary: BudgetSummary{
			TotalEstimated:  summary.TotalEstimated,
			TotalActual:     summary.TotalActual,
			ProgressPercent: summary.ProgressPercent,
		},
	}
	for i, item := range items {
		out.Items[i] = budgetItemToResponse(item)
	}
	return out
}
