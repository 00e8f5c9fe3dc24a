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

// PackingRepo defines the persistence operations for packing list items.
type PackingRepo interface {
	// ListByTripID returns all packing items for a trip ordered by
	// category then label.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error)

	// SeedMissing inserts any of the given items not already present on the
	// trip, matching on (category, label). Existing rows are left untouched so
	// user edits survive repeated seeding.
	SeedMissing(ctx context.Context, tripID uuid.UUID, items []domain.PackingItem) error

	// Create inserts a user-defined packing item.
	Create(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error)

	// Update sets an item's label and checked flag, scoped to the trip.
	// Returns domain.ErrNotFound if the item does not exist under that trip.
	Update(ctx context.Context, tripID, itemID uuid.UUID, label string, checked bool) error

	// Delete removes a packing item, scoped to the trip.
	// Returns domain.ErrNotFound if the item does not exist under that trip.
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
}

// pgPackingRepo is the Postgres implementation of PackingRepo.
type pgPackingRepo struct {
	db db
}

// NewPackingRepo constructs a PackingRepo backed by the provided db connection.
func NewPackingRepo(db db) PackingRepo {
	return &pgPackingRepo{db: db}
}

func (r *pgPackingRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error) {
	const q = `
		SELECT id, trip_id, category, label, checked
		FROM packing_items
		WHERE trip_id = @trip_id
		ORDER BY category, label`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.PackingRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	items := []domain.PackingItem{}
	for rows.Next() {
		item, err := scanPackingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PackingRepo.ListByTripID: scan: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PackingRepo.ListByTripID: rows: %w", err)
	}
	return items, nil
}

// SeedMissing is idempotent via the (trip_id, category, label) unique
// constraint and ON CONFLICT DO NOTHING.
func (r *pgPackingRepo) SeedMissing(ctx context.Context, tripID uuid.UUID, items []domain.PackingItem) error {
	const q = `
		INSERT INTO packing_items (trip_id, category, label, checked)
		VALUES (@trip_id, @category, @label, false)
		ON CONFLICT (trip_id, category, label) DO NOTHING`

	for _, item := range items {
		args := pgx.NamedArgs{"trip_id": tripID, "category": item.Category, "label": item.Label}
		if _, err := r.db.Exec(ctx, q, args); err != nil {
			return fmt.Errorf("repo.PackingRepo.SeedMissing: %w", err)
		}
	}
	return nil
}

func (r *pgPackingRepo) Create(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error) {
	const q = `
		INSERT INTO packing_items (trip_id, category, label, checked)
		VALUES (@trip_id, @category, @label, @checked)
		ON CONFLICT (trip_id, category, label) DO UPDATE SET label = EXCLUDED.label
		RETURNING id, trip_id, category, label, checked`

	args := pgx.NamedArgs{
		"trip_id":  item.TripID,
		"category": item.Category,
		"label":    item.Label,
		"checked":  item.Checked,
	}

	result, err := scanPackingItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("repo.PackingRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgPackingRepo) Update(ctx context.Context, tripID, itemID uuid.UUID, label string, checked bool) error {
	const q = `
		UPDATE packing_items
		SET label = @label, checked = @checked
		WHERE id = @id AND trip_id = @trip_id`

	args := pgx.NamedArgs{"id": itemID, "trip_id": tripID, "label": label, "checked": checked}

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return fmt.Errorf("repo.PackingRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PackingRepo.Update: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgPackingRepo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	const q = `DELETE FROM packing_items WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": itemID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.PackingRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PackingRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanPackingItem maps a single database row into a domain.PackingItem.
func scanPackingItem(s scanner) (domain.PackingItem, error) {
	var (
		item   domain.PackingItem
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &item.Category, &item.Label, &item.Checked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PackingItem{}, domain.ErrNotFound
		}
		return domain.PackingItem{}, err
	}

	item.ID = uuid.UUID(id.Bytes)
	item.TripID = uuid.UUID(tripID.Bytes)
	return item, nil
}
