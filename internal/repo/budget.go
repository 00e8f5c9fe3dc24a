package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/khartman/trip-planner/internal/domain"
)

// BudgetRepo defines the persistence operations for budget items.
type BudgetRepo interface {
	// Create inserts a budget line and returns the persisted record.
	Create(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error)

	// ListByTripID returns all budget items for a trip in insertion order.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetItem, error)

	// UpdateActual sets the actual cost of one item, scoped to the trip.
	// Returns domain.ErrNotFound if the item does not exist under that trip.
	UpdateActual(ctx context.Context, tripID, itemID uuid.UUID, actual float64) error

	// Delete removes a budget item, scoped to the trip.
	// Returns domain.ErrNotFound if the item does not exist under that trip.
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
}

// pgBudgetRepo is the Postgres implementation of BudgetRepo.
type pgBudgetRepo struct {
	db db
}

// NewBudgetRepo constructs a BudgetRepo backed by the provided db connection.
func NewBudgetRepo(db db) BudgetRepo {
	return &pgBudgetRepo{db: db}
}

func (r *pgBudgetRepo) Create(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error) {
	const q = `
		INSERT INTO budget_items (trip_id, label, estimated_cost, actual_cost)
		VALUES (@trip_id, @label, @estimated_cost, @actual_cost)
		RETURNING id, trip_id, label, estimated_cost, actual_cost`

	args := pgx.NamedArgs{
		"trip_id":        item.TripID,
		"label":          item.Label,
		"estimated_cost": item.EstimatedCost,
		"actual_cost":    item.ActualCost,
	}

	result, err := scanBudgetItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.BudgetItem{}, fmt.Errorf("repo.BudgetRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgBudgetRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetItem, error) {
	const q = `
		SELECT id, trip_id, label, estimated_cost, actual_cost
		FROM budget_items
		WHERE trip_id = @trip_id
		ORDER BY seq`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.BudgetRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	items := []domain.BudgetItem{}
	for rows.Next() {
		item, err := scanBudgetItem(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.BudgetRepo.ListByTripID: scan: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.BudgetRepo.ListByTripID: rows: %w", err)
	}
	return items, nil
}

func (r *pgBudgetRepo) UpdateActual(ctx context.Context, tripID, itemID uuid.UUID, actual float64) error {
	const q = `
		UPDATE budget_items
		SET actual_cost = @actual
		WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": itemID, "trip_id": tripID, "actual": actual})
	if err != nil {
		return fmt.Errorf("repo.BudgetRepo.UpdateActual: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.BudgetRepo.UpdateActual: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgBudgetRepo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	const q = `DELETE FROM budget_items WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": itemID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.BudgetRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.BudgetRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanBudgetItem maps a single database row into a domain.BudgetItem.
func scanBudgetItem(s scanner) (domain.BudgetItem, error) {
	var (
		item   domain.BudgetItem
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &item.Label, &item.EstimatedCost, &item.ActualCost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.BudgetItem{}, domain.ErrNotFound
		}
		return domain.BudgetItem{}, err
	}

	item.ID = uuid.UUID(id.Bytes)
	item.TripID = uuid.UUID(tripID.Bytes)
	return item, nil
}
