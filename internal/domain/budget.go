package domain

import "github.com/google/uuid"

// BudgetItem is one line in a trip's budget.
// Costs are non-negative; ActualCost stays zero until the user records spend.
type BudgetItem struct {
	ID            uuid.UUID `json:"id"`
	TripID        uuid.UUID `json:"trip_id"`
	Label         string    `json:"label"`
	EstimatedCost float64   `json:"estimated_cost"`
	ActualCost    float64   `json:"actual_cost"`
}

// BudgetSummary holds the totals shown alongside a trip's budget items.
// ProgressPercent is actual spend over the estimate, capped at 100.
type BudgetSummary struct {
	TotalEstimated  float64 `json:"total_estimated"`
	TotalActual     float64 `json:"total_actual"`
	ProgressPercent int     `json:"progress_percent"`
}

// SummarizeBudget computes totals and the capped progress percentage.
func SummarizeBudget(items []BudgetItem) BudgetSummary {
	var s BudgetSummary
	for _, item := range items {
		s.TotalEstimated += item.EstimatedCost
		s.TotalActual += item.ActualCost
	}
	if s.TotalEstimated > 0 {
		ratio := s.TotalActual / s.TotalEstimated
		if ratio > 1 {
			ratio = 1
		}
		s.ProgressPercent = int(ratio*100 + 0.5)
	}
	return s
}
