// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server, split into domain-specific files
// (health.go, trip.go, day.go, ...) but sharing the same struct so they can
// access its dependencies. Routes assembles the full chi route tree.
package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/khartman/trip-planner/internal/domain"
	"github.com/khartman/trip-planner/internal/service"
	"github.com/khartman/trip-planner/internal/suggest"
)

// The Servicer interfaces define the business operations each handler depends
// on. Defining them here (in the consumer package) follows the Go convention:
// "accept interfaces, return concrete types". It lets handler tests inject a
// mock without touching the database or service layer.

// TripServicer covers the trip CRUD surface plus the aggregated reads.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	List(ctx context.Context, p domain.PaginationParams) (service.TripPage, error)
	Detail(ctx context.Context, id uuid.UUID) (service.TripDetail, error)
	Summary(ctx context.Context, id uuid.UUID) (service.TripSummary, error)
	Update(ctx context.Context, trip domain.Trip) (service.UpdateResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DayServicer covers itinerary-day edits and checklist items.
type DayServicer interface {
	Update(ctx context.Context, tripID, dayID uuid.UUID, upd service.DayUpdate) (domain.Day, error)
	AddItem(ctx context.Context, tripID, dayID uuid.UUID, item service.NewItem) (domain.ChecklistItem, error)
	HideItem(ctx context.Context, tripID, itemID uuid.UUID) error
}

// StopServicer covers multi-location stops.
type StopServicer interface {
	Create(ctx context.Context, stop domain.Stop) (domain.Stop, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error)
	Delete(ctx context.Context, tripID, stopID uuid.UUID) error
}

// BudgetServicer covers budget lines and their summary.
type BudgetServicer interface {
	Create(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error)
	List(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetItem, domain.BudgetSummary, error)
	UpdateActuals(ctx context.Context, tripID uuid.UUID, updates []service.ActualUpdate) error
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
}

// PackingServicer covers the self-seeding packing list.
type PackingServicer interface {
	List(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error)
	Create(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error)
	Update(ctx context.Context, tripID uuid.UUID, updates []service.PackingUpdate) error
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
}

// SuggestServicer covers the generated-content operations.
type SuggestServicer interface {
	Apply(ctx context.Context, tripID uuid.UUID) (int, error)
	Generate(ctx context.Context, tripID uuid.UUID) error
	Recipe(ctx context.Context, tripID uuid.UUID) (suggest.Recipe, error)
	Highlights(ctx context.Context, tripID uuid.UUID) (suggest.Highlights, error)
}

// ExportServicer covers CSV export and import.
type ExportServicer interface {
	Export(ctx context.Context, tripID uuid.UUID, w io.Writer) error
	ImportNew(ctx context.Context, destination string, style domain.TravelStyle, r io.Reader) (domain.Trip, error)
	ImportMerge(ctx context.Context, tripID uuid.UUID, r io.Reader) (int, error)
}

// Server holds every handler dependency. Methods live in domain-specific
// files but all operate on this struct.
type Server struct {
	trips   TripServicer
	days    DayServicer
	stops   StopServicer
	budget  BudgetServicer
	packing PackingServicer
	suggest SuggestServicer
	export  ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	trips TripServicer,
	days DayServicer,
	stops StopServicer,
	budget BudgetServicer,
	packing PackingServicer,
	sugg SuggestServicer,
	export ExportServicer,
) *Server {
	return &Server{
		trips:   trips,
		days:    days,
		stops:   stops,
		budget:  budget,
		packing: packing,
		suggest: sugg,
		export:  export,
	}
}

// Routes assembles the API route tree.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)
		r.Post("/import", s.ImportTrip)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Get("/summary", s.GetTripSummary)

			r.Put("/days/{dayID}", s.UpdateDay)
			r.Post("/days/{dayID}/items", s.AddDayItem)
			r.Post("/days/{dayID}/items/{itemID}/hide", s.HideDayItem)

			r.Get("/stops", s.ListStops)
			r.Post("/stops", s.CreateStop)
			r.Delete("/stops/{stopID}", s.DeleteStop)

			r.Get("/budget", s.ListBudget)
			r.Post("/budget", s.CreateBudgetItem)
			r.Put("/budget", s.UpdateBudgetActuals)
			r.Delete("/budget/{itemID}", s.DeleteBudgetItem)

			r.Get("/packing", s.ListPacking)
			r.Post("/packing", s.CreatePackingItem)
			r.Put("/packing", s.UpdatePacking)
			r.Delete("/packing/{itemID}", s.DeletePackingItem)

			r.Post("/suggest", s.SuggestPlaces)
			r.Post("/generate", s.GenerateItinerary)
			r.Get("/recipe", s.GetRecipe)
			r.Get("/highlights", s.GetHighlights)

			r.Get("/export.csv", s.ExportTrip)
			r.Post("/import", s.ImportIntoTrip)
		})
	})

	return r
}

// --- shared plumbing --------------------------------------------------------

// writeJSON serializes v with the given status. Encoding failures at this
// point cannot be reported to the client; they surface in the request log.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decode parses the request body into v, rejecting unknown fields.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// pathUUID parses one chi URL parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	return id, err == nil
}
