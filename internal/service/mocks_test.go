package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khartman/trip-planner/internal/domain"
	"github.com/khartman/trip-planner/internal/repo"
	"github.com/khartman/trip-planner/internal/suggest"
	"github.com/khartman/trip-planner/internal/weather"
)

// Hand-written test doubles for the repo interfaces. Each method is a
// function field; set only the ones your test needs.

type mockTripRepo struct {
	create    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockDayRepo struct {
	listByTripID    func(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error)
	getByID         func(ctx context.Context, tripID, dayID uuid.UUID) (domain.Day, error)
	createBatch     func(ctx context.Context, days []domain.Day) ([]domain.Day, error)
	replace         func(ctx context.Context, tripID uuid.UUID, days []domain.Day) ([]domain.Day, error)
	updateSlots     func(ctx context.Context, day domain.Day) error
	addItem         func(ctx context.Context, item domain.ChecklistItem) (domain.ChecklistItem, error)
	addItemIfAbsent func(ctx context.Context, item domain.ChecklistItem) (bool, error)
	updateItem      func(ctx context.Context, dayID, itemID uuid.UUID, checked bool, slot string) error
	hideItem        func(ctx context.Context, tripID, itemID uuid.UUID) error
}

func (m *mockDayRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockDayRepo) GetByID(ctx context.Context, tripID, dayID uuid.UUID) (domain.Day, error) {
	return m.getByID(ctx, tripID, dayID)
}
func (m *mockDayRepo) CreateBatch(ctx context.Context, days []domain.Day) ([]domain.Day, error) {
	return m.createBatch(ctx, days)
}
func (m *mockDayRepo) Replace(ctx context.Context, tripID uuid.UUID, days []domain.Day) ([]domain.Day, error) {
	return m.replace(ctx, tripID, days)
}
func (m *mockDayRepo) UpdateSlots(ctx context.Context, day domain.Day) error {
	return m.updateSlots(ctx, day)
}
func (m *mockDayRepo) AddItem(ctx context.Context, item domain.ChecklistItem) (domain.ChecklistItem, error) {
	return m.addItem(ctx, item)
}
func (m *mockDayRepo) AddItemIfAbsent(ctx context.Context, item domain.ChecklistItem) (bool, error) {
	return m.addItemIfAbsent(ctx, item)
}
func (m *mockDayRepo) UpdateItem(ctx context.Context, dayID, itemID uuid.UUID, checked bool, slot string) error {
	return m.updateItem(ctx, dayID, itemID, checked, slot)
}
func (m *mockDayRepo) HideItem(ctx context.Context, tripID, itemID uuid.UUID) error {
	return m.hideItem(ctx, tripID, itemID)
}

var _ repo.DayRepo = (*mockDayRepo)(nil)

type mockStopRepo struct {
	create       func(ctx context.Context, stop domain.Stop) (domain.Stop, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error)
	delete       func(ctx context.Context, tripID, stopID uuid.UUID) error
	deleteByIDs  func(ctx context.Context, tripID uuid.UUID, ids []uuid.UUID) error
}

func (m *mockStopRepo) Create(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	return m.create(ctx, stop)
}
func (m *mockStopRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockStopRepo) Delete(ctx context.Context, tripID, stopID uuid.UUID) error {
	return m.delete(ctx, tripID, stopID)
}
func (m *mockStopRepo) DeleteByIDs(ctx context.Context, tripID uuid.UUID, ids []uuid.UUID) error {
	return m.deleteByIDs(ctx, tripID, ids)
}

var _ repo.StopRepo = (*mockStopRepo)(nil)

type mockBudgetRepo struct {
	create       func(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetItem, error)
	updateActual func(ctx context.Context, tripID, itemID uuid.UUID, actual float64) error
	delete       func(ctx context.Context, tripID, itemID uuid.UUID) error
}

func (m *mockBudgetRepo) Create(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error) {
	return m.create(ctx, item)
}
func (m *mockBudgetRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetItem, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockBudgetRepo) UpdateActual(ctx context.Context, tripID, itemID uuid.UUID, actual float64) error {
	return m.updateActual(ctx, tripID, itemID, actual)
}
func (m *mockBudgetRepo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	return m.delete(ctx, tripID, itemID)
}

var _ repo.BudgetRepo = (*mockBudgetRepo)(nil)

type mockPackingRepo struct {
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error)
	seedMissing  func(ctx context.Context, tripID uuid.UUID, items []domain.PackingItem) error
	create       func(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error)
	update       func(ctx context.Context, tripID, itemID uuid.UUID, label string, checked bool) error
	delete       func(ctx context.Context, tripID, itemID uuid.UUID) error
}

func (m *mockPackingRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockPackingRepo) SeedMissing(ctx context.Context, tripID uuid.UUID, items []domain.PackingItem) error {
	return m.seedMissing(ctx, tripID, items)
}
func (m *mockPackingRepo) Create(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error) {
	return m.create(ctx, item)
}
func (m *mockPackingRepo) Update(ctx context.Context, tripID, itemID uuid.UUID, label string, checked bool) error {
	return m.update(ctx, tripID, itemID, label, checked)
}
func (m *mockPackingRepo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	return m.delete(ctx, tripID, itemID)
}

var _ repo.PackingRepo = (*mockPackingRepo)(nil)

// fakeTxRunner hands the bundled mocks straight to the callback. There is no
// commit/rollback behavior to fake: a returned error simply propagates.
type fakeTxRunner struct {
	repos repo.Repos
}

func (f *fakeTxRunner) InTx(_ context.Context, fn func(r repo.Repos) error) error {
	return fn(f.repos)
}

var _ repo.TxRunner = (*fakeTxRunner)(nil)

// staticForecaster returns the offline placeholder shape without any network.
type staticForecaster struct{}

func (staticForecaster) Forecast(_ context.Context, _ string, dates []time.Time) []weather.DayForecast {
	out := make([]weather.DayForecast, len(dates))
	for i, d := range dates {
		out[i] = weather.DayForecast{Date: d, Summary: "sunny"}
	}
	return out
}

// staticChecklist returns a fixed suggestion set, recording the locations
// it was asked about.
type staticChecklist struct {
	checklist suggest.Checklist
	asked     []string
}

func (s *staticChecklist) Checklist(_ context.Context, destination string, _ domain.TravelStyle) suggest.Checklist {
	s.asked = append(s.asked, destination)
	return s.checklist
}
