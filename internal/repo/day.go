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

// DayRepo defines the persistence operations for Days and their checklist items.
// All operations are scoped by tripID to enforce ownership.
type DayRepo interface {
	// ListByTripID returns all days for a trip ordered by day_number, with
	// visible checklist items loaded in insertion order.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error)

	// GetByID retrieves a single day with its items, scoped to the given trip.
	// Returns domain.ErrNotFound if no day with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, dayID uuid.UUID) (domain.Day, error)

	// CreateBatch inserts the given days (no items) and returns them with
	// DB-generated IDs, in input order.
	CreateBatch(ctx context.Context, days []domain.Day) ([]domain.Day, error)

	// Replace makes the stored day set for a trip exactly match days: rows not
	// present are deleted (cascading their items), kept rows get their
	// day_number and stop_id updated, and days with a zero ID are inserted.
	// Returns the full persisted set ordered by day_number.
	Replace(ctx context.Context, tripID uuid.UUID, days []domain.Day) ([]domain.Day, error)

	// UpdateSlots overwrites a day's three slots and stop reference.
	// Returns domain.ErrNotFound if the day does not exist under the trip.
	UpdateSlots(ctx context.Context, day domain.Day) error

	// AddItem inserts a checklist item and returns the persisted record.
	AddItem(ctx context.Context, item domain.ChecklistItem) (domain.ChecklistItem, error)

	// AddItemIfAbsent inserts the item unless one with the same category and
	// name already exists on the day. Reports whether a row was inserted.
	AddItemIfAbsent(ctx context.Context, item domain.ChecklistItem) (bool, error)

	// UpdateItem sets an item's checked flag and slot, scoped to its day.
	// Returns domain.ErrNotFound if the item does not exist under that day.
	UpdateItem(ctx context.Context, dayID, itemID uuid.UUID, checked bool, slot string) error

	// HideItem soft-hides a suggestion, scoped to the owning trip.
	// Returns domain.ErrNotFound if the item does not belong to the trip.
	HideItem(ctx context.Context, tripID, itemID uuid.UUID) error
}

// pgDayRepo is the Postgres implementation of DayRepo.
type pgDayRepo struct {
	db db
}

// NewDayRepo constructs a DayRepo backed by the provided db connection.
func NewDayRepo(db db) DayRepo {
	return &pgDayRepo{db: db}
}

const dayColumns = `
	id, trip_id, date, day_number, stop_id,
	morning_title, morning_description, morning_map_link,
	afternoon_title, afternoon_description, afternoon_map_link,
	evening_title, evening_description, evening_map_link`

func (r *pgDayRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error) {
	q := `SELECT ` + dayColumns + `
		FROM days
		WHERE trip_id = @trip_id
		ORDER BY day_number`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	days := []domain.Day{}
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DayRepo.ListByTripID: scan: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByTripID: rows: %w", err)
	}

	if err := r.attachItems(ctx, tripID, days); err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByTripID: %w", err)
	}
	return days, nil
}

func (r *pgDayRepo) GetByID(ctx context.Context, tripID, dayID uuid.UUID) (domain.Day, error) {
	q := `SELECT ` + dayColumns + `
		FROM days
		WHERE trip_id = @trip_id AND id = @id`

	day, err := scanDay(r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID, "id": dayID}))
	if err != nil {
		return domain.Day{}, fmt.Errorf("repo.DayRepo.GetByID: %w", err)
	}

	items, err := r.itemsForDay(ctx, dayID)
	if err != nil {
		return domain.Day{}, fmt.Errorf("repo.DayRepo.GetByID: %w", err)
	}
	day.Items = items
	return day, nil
}

func (r *pgDayRepo) CreateBatch(ctx context.Context, days []domain.Day) ([]domain.Day, error) {
	out := make([]domain.Day, 0, len(days))
	for _, day := range days {
		created, err := r.insertDay(ctx, day)
		if err != nil {
			return nil, fmt.Errorf("repo.DayRepo.CreateBatch: %w", err)
		}
		out = append(out, created)
	}
	return out, nil
}

// Replace deletes days missing from the new set first so their items cascade
// away, then updates kept rows and inserts synthesized ones. Run inside a
// transaction (see repo.TxRunner) so a failure never leaves a partial mix.
func (r *pgDayRepo) Replace(ctx context.Context, tripID uuid.UUID, days []domain.Day) ([]domain.Day, error) {
	keptIDs := []string{}
	for _, day := range days {
		if day.ID != uuid.Nil {
			keptIDs = append(keptIDs, day.ID.String())
		}
	}

	const deleteQ = `
		DELETE FROM days
		WHERE trip_id = @trip_id
		  AND NOT (id = ANY(@kept::uuid[]))`

	if _, err := r.db.Exec(ctx, deleteQ, pgx.NamedArgs{"trip_id": tripID, "kept": keptIDs}); err != nil {
		return nil, fmt.Errorf("repo.DayRepo.Replace: delete: %w", err)
	}

	out := make([]domain.Day, 0, len(days))
	for _, day := range days {
		if day.ID == uuid.Nil {
			created, err := r.insertDay(ctx, day)
			if err != nil {
				return nil, fmt.Errorf("repo.DayRepo.Replace: insert: %w", err)
			}
			out = append(out, created)
			continue
		}

		const updateQ = `
			UPDATE days
			SET day_number = @day_number, stop_id = @stop_id
			WHERE trip_id = @trip_id AND id = @id`

		args := pgx.NamedArgs{
			"trip_id":    tripID,
			"id":         day.ID,
			"day_number": day.DayNumber,
			"stop_id":    day.StopID,
		}
		if _, err := r.db.Exec(ctx, updateQ, args); err != nil {
			return nil, fmt.Errorf("repo.DayRepo.Replace: update: %w", err)
		}
		out = append(out, day)
	}
	return out, nil
}

func (r *pgDayRepo) UpdateSlots(ctx context.Context, day domain.Day) error {
	const q = `
		UPDATE days
		SET stop_id              = @stop_id,
		    morning_title        = @m_title,
		    morning_description  = @m_desc,
		    morning_map_link     = @m_link,
		    afternoon_title      = @a_title,
		    afternoon_description = @a_desc,
		    afternoon_map_link   = @a_link,
		    evening_title        = @e_title,
		    evening_description  = @e_desc,
		    evening_map_link     = @e_link
		WHERE trip_id = @trip_id AND id = @id`

	args := pgx.NamedArgs{
		"trip_id": day.TripID,
		"id":      day.ID,
		"stop_id": day.StopID,
		"m_title": day.Morning.Title, "m_desc": day.Morning.Description, "m_link": day.Morning.MapLink,
		"a_title": day.Afternoon.Title, "a_desc": day.Afternoon.Description, "a_link": day.Afternoon.MapLink,
		"e_title": day.Evening.Title, "e_desc": day.Evening.Description, "e_link": day.Evening.MapLink,
	}

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return fmt.Errorf("repo.DayRepo.UpdateSlots: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DayRepo.UpdateSlots: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgDayRepo) AddItem(ctx context.Context, item domain.ChecklistItem) (domain.ChecklistItem, error) {
	const q = `
		INSERT INTO day_items (day_id, category, name, checked, slot)
		VALUES (@day_id, @category, @name, @checked, @slot)
		RETURNING id, day_id, category, name, checked, slot, hidden`

	args := pgx.NamedArgs{
		"day_id":   item.DayID,
		"category": string(item.Category),
		"name":     item.Name,
		"checked":  item.Checked,
		"slot":     item.Slot,
	}

	result, err := scanItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.ChecklistItem{}, fmt.Errorf("repo.DayRepo.AddItem: %w", err)
	}
	return result, nil
}

// AddItemIfAbsent dedupes on (day, category, name) so repeated suggestion runs
// never pile up identical rows. Hidden rows count as present: a dismissed
// suggestion stays dismissed.
func (r *pgDayRepo) AddItemIfAbsent(ctx context.Context, item domain.ChecklistItem) (bool, error) {
	const q = `
		INSERT INTO day_items (day_id, category, name, checked, slot)
		SELECT @day_id, @category, @name, @checked, @slot
		WHERE NOT EXISTS (
			SELECT 1 FROM day_items
			WHERE day_id = @day_id AND category = @category AND name = @name
		)`

	args := pgx.NamedArgs{
		"day_id":   item.DayID,
		"category": string(item.Category),
		"name":     item.Name,
		"checked":  item.Checked,
		"slot":     item.Slot,
	}

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return false, fmt.Errorf("repo.DayRepo.AddItemIfAbsent: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *pgDayRepo) UpdateItem(ctx context.Context, dayID, itemID uuid.UUID, checked bool, slot string) error {
	const q = `
		UPDATE day_items
		SET checked = @checked, slot = @slot
		WHERE id = @id AND day_id = @day_id`

	args := pgx.NamedArgs{"id": itemID, "day_id": dayID, "checked": checked, "slot": slot}

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return fmt.Errorf("repo.DayRepo.UpdateItem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DayRepo.UpdateItem: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgDayRepo) HideItem(ctx context.Context, tripID, itemID uuid.UUID) error {
	const q = `
		UPDATE day_items
		SET hidden = true
		WHERE id = @id
		  AND day_id IN (SELECT id FROM days WHERE trip_id = @trip_id)`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": itemID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.DayRepo.HideItem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DayRepo.HideItem: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgDayRepo) insertDay(ctx context.Context, day domain.Day) (domain.Day, error) {
	const q = `
		INSERT INTO days (
			trip_id, date, day_number, stop_id,
			morning_title, morning_description, morning_map_link,
			afternoon_title, afternoon_description, afternoon_map_link,
			evening_title, evening_description, evening_map_link
		)
		VALUES (
			@trip_id, @date, @day_number, @stop_id,
			@m_title, @m_desc, @m_link,
			@a_title, @a_desc, @a_link,
			@e_title, @e_desc, @e_link
		)
		RETURNING ` + dayColumns

	args := pgx.NamedArgs{
		"trip_id": day.TripID, "date": day.Date, "day_number": day.DayNumber, "stop_id": day.StopID,
		"m_title": day.Morning.Title, "m_desc": day.Morning.Description, "m_link": day.Morning.MapLink,
		"a_title": day.Afternoon.Title, "a_desc": day.Afternoon.Description, "a_link": day.Afternoon.MapLink,
		"e_title": day.Evening.Title, "e_desc": day.Evening.Description, "e_link": day.Evening.MapLink,
	}

	return scanDay(r.db.QueryRow(ctx, q, args))
}

// attachItems loads all visible items for the trip in one query and fans them
// out to the matching days in place.
func (r *pgDayRepo) attachItems(ctx context.Context, tripID uuid.UUID, days []domain.Day) error {
	const q = `
		SELECT i.id, i.day_id, i.category, i.name, i.checked, i.slot, i.hidden
		FROM day_items i
		JOIN days d ON d.id = i.day_id
		WHERE d.trip_id = @trip_id AND i.hidden = false
		ORDER BY i.seq`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return err
	}
	defer rows.Close()

	byDay := map[uuid.UUID][]domain.ChecklistItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return err
		}
		byDay[item.DayID] = append(byDay[item.DayID], item)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range days {
		days[i].Items = byDay[days[i].ID]
	}
	return nil
}

func (r *pgDayRepo) itemsForDay(ctx context.Context, dayID uuid.UUID) ([]domain.ChecklistItem, error) {
	const q = `
		SELECT id, day_id, category, name, checked, slot, hidden
		FROM day_items
		WHERE day_id = @day_id AND hidden = false
		ORDER BY seq`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"day_id": dayID})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.ChecklistItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// scanDay maps a single database row into a domain.Day (items not loaded).
func scanDay(s scanner) (domain.Day, error) {
	var (
		d      domain.Day
		id     pgtype.UUID
		tripID pgtype.UUID
		date   pgtype.Date
		stopID pgtype.UUID
	)

	err := s.Scan(
		&id, &tripID, &date, &d.DayNumber, &stopID,
		&d.Morning.Title, &d.Morning.Description, &d.Morning.MapLink,
		&d.Afternoon.Title, &d.Afternoon.Description, &d.Afternoon.MapLink,
		&d.Evening.Title, &d.Evening.Description, &d.Evening.MapLink,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Day{}, domain.ErrNotFound
		}
		return domain.Day{}, err
	}

	d.ID = uuid.UUID(id.Bytes)
	d.TripID = uuid.UUID(tripID.Bytes)
	d.Date = date.Time
	if stopID.Valid {
		sid := uuid.UUID(stopID.Bytes)
		d.StopID = &sid
	}
	return d, nil
}

// scanItem maps a single database row into a domain.ChecklistItem.
func scanItem(s scanner) (domain.ChecklistItem, error) {
	var (
		item     domain.ChecklistItem
		id       pgtype.UUID
		dayID    pgtype.UUID
		category string
	)

	err := s.Scan(&id, &dayID, &category, &item.Name, &item.Checked, &item.Slot, &item.Hidden)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ChecklistItem{}, domain.ErrNotFound
		}
		return domain.ChecklistItem{}, err
	}

	item.ID = uuid.UUID(id.Bytes)
	item.DayID = uuid.UUID(dayID.Bytes)
	item.Category = domain.ItemCategory(category)
	return item, nil
}
