package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/khartman/trip-planner/internal/domain"
	"github.com/khartman/trip-planner/internal/handler"
	"github.com/khartman/trip-planner/internal/service"
	"github.com/khartman/trip-planner/internal/suggest"
)

// Hand-written test doubles for the handler's Servicer interfaces.
// Set only the method fields your test needs.

type mockTripServicer struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	list    func(ctx context.Context, p domain.PaginationParams) (service.TripPage, error)
	detail  func(ctx context.Context, id uuid.UUID) (service.TripDetail, error)
	summary func(ctx context.Context, id uuid.UUID) (service.TripSummary, error)
	update  func(ctx context.Context, trip domain.Trip) (service.UpdateResult, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) List(ctx context.Context, p domain.PaginationParams) (service.TripPage, error) {
	return m.list(ctx, p)
}
func (m *mockTripServicer) Detail(ctx context.Context, id uuid.UUID) (service.TripDetail, error) {
	return m.detail(ctx, id)
}
func (m *mockTripServicer) Summary(ctx context.Context, id uuid.UUID) (service.TripSummary, error) {
	return m.summary(ctx, id)
}
func (m *mockTripServicer) Update(ctx context.Context, t domain.Trip) (service.UpdateResult, error) {
	return m.update(ctx, t)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockDayServicer struct {
	update   func(ctx context.Context, tripID, dayID uuid.UUID, upd service.DayUpdate) (domain.Day, error)
	addItem  func(ctx context.Context, tripID, dayID uuid.UUID, item service.NewItem) (domain.ChecklistItem, error)
	hideItem func(ctx context.Context, tripID, itemID uuid.UUID) error
}

func (m *mockDayServicer) Update(ctx context.Context, tripID, dayID uuid.UUID, upd service.DayUpdate) (domain.Day, error) {
	return m.update(ctx, tripID, dayID, upd)
}
func (m *mockDayServicer) AddItem(ctx context.Context, tripID, dayID uuid.UUID, item service.NewItem) (domain.ChecklistItem, error) {
	return m.addItem(ctx, tripID, dayID, item)
}
func (m *mockDayServicer) HideItem(ctx context.Context, tripID, itemID uuid.UUID) error {
	return m.hideItem(ctx, tripID, itemID)
}

var _ handler.DayServicer = (*mockDayServicer)(nil)

type mockStopServicer struct {
	create       func(ctx context.Context, stop domain.Stop) (domain.Stop, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error)
	delete       func(ctx context.Context, tripID, stopID uuid.UUID) error
}

func (m *mockStopServicer) Create(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	return m.create(ctx, stop)
}
func (m *mockStopServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockStopServicer) Delete(ctx context.Context, tripID, stopID uuid.UUID) error {
	return m.delete(ctx, tripID, stopID)
}

var _ handler.StopServicer = (*mockStopServicer)(nil)

type mockBudgetServicer struct {
	create        func(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error)
	list          func(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetItem, domain.BudgetSummary, error)
	updateActuals func(ctx context.Context, tripID uuid.UUID, updates []service.ActualUpdate) error
	delete        func(ctx context.Context, tripID, itemID uuid.UUID) error
}

func (m *mockBudgetServicer) Create(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error) {
	return m.create(ctx, item)
}
func (m *mockBudgetServicer) List(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetItem, domain.BudgetSummary, error) {
	return m.list(ctx, tripID)
}
func (m *mockBudgetServicer) UpdateActuals(ctx context.Context, tripID uuid.UUID, updates []service.ActualUpdate) error {
	return m.updateActuals(ctx, tripID, updates)
}
func (m *mockBudgetServicer) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	return m.delete(ctx, tripID, itemID)
}

var _ handler.BudgetServicer = (*mockBudgetServicer)(nil)

type mockPackingServicer struct {
	list   func(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error)
	create func(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error)
	update func(ctx context.Context, tripID uuid.UUID, updates []service.PackingUpdate) error
	delete func(ctx context.Context, tripID, itemID uuid.UUID) error
}

func (m *mockPackingServicer) List(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error) {
	return m.list(ctx, tripID)
}
func (m *mockPackingServicer) Create(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error) {
	return m.create(ctx, item)
}
func (m *mockPackingServicer) Update(ctx context.Context, tripID uuid.UUID, updates []service.PackingUpdate) error {
	return m.update(ctx, tripID, updates)
}
func (m *mockPackingServicer) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	return m.delete(ctx, tripID, itemID)
}

var _ handler.PackingServicer = (*mockPackingServicer)(nil)

type mockSuggestServicer struct {
	apply      func(ctx context.Context, tripID uuid.UUID) (int, error)
	generate   func(ctx context.Context, tripID uuid.UUID) error
	recipe     func(ctx context.Context, tripID uuid.UUID) (suggest.Recipe, error)
	highlights func(ctx context.Context, tripID uuid.UUID) (suggest.Highlights, error)
}

func (m *mockSuggestServicer) Apply(ctx context.Context, tripID uuid.UUID) (int, error) {
	return m.apply(ctx, tripID)
}
func (m *mockSuggestServicer) Generate(ctx context.Context, tripID uuid.UUID) error {
	return m.generate(ctx, tripID)
}
func (m *mockSuggestServicer) Recipe(ctx context.Context, tripID uuid.UUID) (suggest.Recipe, error) {
	return m.recipe(ctx, tripID)
}
func (m *mockSuggestServicer) Highlights(ctx context.Context, tripID uuid.UUID) (suggest.Highlights, error) {
	return m.highlights(ctx, tripID)
}

var _ handler.SuggestServicer = (*mockSuggestServicer)(nil)

type mockExportServicer struct {
	export      func(ctx context.Context, tripID uuid.UUID, w io.Writer) error
	importNew   func(ctx context.Context, destination string, style domain.TravelStyle, r io.Reader) (domain.Trip, error)
	importMerge func(ctx context.Context, tripID uuid.UUID, r io.Reader) (int, error)
}

func (m *mockExportServicer) Export(ctx context.Context, tripID uuid.UUID, w io.Writer) error {
	return m.export(ctx, tripID, w)
}
func (m *mockExportServicer) ImportNew(ctx context.Context, destination string, style domain.TravelStyle, r io.Reader) (domain.Trip, error) {
	return m.importNew(ctx, destination, style, r)
}
func (m *mockExportServicer) ImportMerge(ctx context.Context, tripID uuid.UUID, r io.Reader) (int, error) {
	return m.importMerge(ctx, tripID, r)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// deps bundles the mocks a test installs; nil fields stay nil, which is fine
// for endpoints the test never hits.
type deps struct {
	trips   handler.TripServicer
	days    handler.DayServicer
	stops   handler.StopServicer
	budget  handler.BudgetServicer
	packing handler.PackingServicer
	suggest handler.SuggestServicer
	export  handler.ExportServicer
}

// newTestHandler wires a Server with the given mocks into the chi router,
// mirroring how main.go wires it in production.
func newTestHandler(d deps) http.Handler {
	return handler.NewServer(d.trips, d.days, d.stops, d.budget, d.packing, d.suggest, d.export).Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}
