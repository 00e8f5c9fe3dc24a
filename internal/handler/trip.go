package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/khartman/trip-planner/internal/domain"
	"github.com/khartman/trip-planner/internal/service"
	"github.com/khartman/trip-planner/internal/weather"
)

// --- wire types -------------------------------------------------------------

// TripRequest is the body for POST /trips and PUT /trips/{id}.
type TripRequest struct {
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	TravelStyle string             `json:"travel_style"`
}

// Trip is the wire representation of a trip.
type Trip struct {
	ID          uuid.UUID          `json:"id"`
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	TravelStyle string             `json:"travel_style"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// TripListing is one dashboard entry.
type TripListing struct {
	Trip
	Status string `json:"status"`
}

// Pagination echoes the applied page parameters plus the total row count.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// TripListResponse is the body for GET /trips.
type TripListResponse struct {
	Upcoming   []TripListing `json:"upcoming"`
	Past       []TripListing `json:"past"`
	Pagination Pagination    `json:"pagination"`
}

// TripUpdateResponse is the body for PUT /trips/{id}: the updated trip plus
// the stops that were removed because the new range no longer contains them.
type TripUpdateResponse struct {
	Trip          Trip   `json:"trip"`
	OrphanedStops []Stop `json:"orphaned_stops"`
}

// TripDetailResponse is the body for GET /trips/{id}.
type TripDetailResponse struct {
	Trip    Trip           `json:"trip"`
	Status  string         `json:"status"`
	Days    []Day          `json:"days"`
	Stops   []Stop         `json:"stops"`
	Budget  BudgetResponse `json:"budget"`
	Packing []PackingItem  `json:"packing"`
	Weather []WeatherDay   `json:"weather"`
}

// TripSummaryResponse is the body for GET /trips/{id}/summary.
type TripSummaryResponse struct {
	Trip   Trip   `json:"trip"`
	Status string `json:"status"`
	Days   []Day  `json:"days"`
	Stops  []Stop `json:"stops"`
}

// WeatherDay is one forecast line.
type WeatherDay struct {
	Date    openapi_types.Date `json:"date"`
	Summary string             `json:"summary"`
}

// --- handlers ---------------------------------------------------------------

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	page, err := s.trips.List(r.Context(), params)
	if err != nil {
		respondError(w, err, "trips")
		return
	}

	writeJSON(w, http.StatusOK, TripListResponse{
		Upcoming: listingsToResponse(page.Upcoming),
		Past:     listingsToResponse(page.Past),
		Pagination: Pagination{
			Page:  page.Page,
			Limit: page.Limit,
			Total: int(page.Total),
		},
	})
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body TripRequest
	if err := decode(r, &body); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	created, err := s.trips.Create(r.Context(), requestToTrip(uuid.Nil, body))
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// GetTrip handles GET /trips/{id}: the full aggregated trip page.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	detail, err := s.trips.Detail(r.Context(), id)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	items, summary := detail.BudgetItems, detail.Budget
	writeJSON(w, http.StatusOK, TripDetailResponse{
		Trip:    tripToResponse(detail.Trip),
		Status:  string(detail.Status),
		Days:    dayViewsToResponse(detail.Days),
		Stops:   stopsToResponse(detail.Stops),
		Budget:  budgetToResponse(items, summary),
		Packing: packingToResponse(detail.Packing),
		Weather: weatherToResponse(detail.Weather),
	})
}

// GetTripSummary handles GET /trips/{id}/summary.
func (s *Server) GetTripSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	sum, err := s.trips.Summary(r.Context(), id)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, TripSummaryResponse{
		Trip:   tripToResponse(sum.Trip),
		Status: string(sum.Status),
		Days:   dayViewsToResponse(sum.Days),
		Stops:  stopsToResponse(sum.Stops),
	})
}

// UpdateTrip handles PUT /trips/{id}: edits the trip and reconciles its days.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}
	var body TripRequest
	if err := decode(r, &body); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	result, err := s.trips.Update(r.Context(), requestToTrip(id, body))
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, TripUpdateResponse{
		Trip:          tripToResponse(result.Trip),
		OrphanedStops: stopsToResponse(result.OrphanedStops),
	})
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		respondError(w, err, "trip")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func requestToTrip(id uuid.UUID, body TripRequest) domain.Trip {
	return domain.Trip{
		ID:          id,
		Destination: body.Destination,
		StartDate:   body.StartDate.Time,
		EndDate:     body.EndDate.Time,
		TravelStyle: domain.ParseTravelStyle(body.TravelStyle),
	}
}

func tripToResponse(t domain.Trip) Trip {
	return Trip{
		ID:          t.ID,
		Destination: t.Destination,
		StartDate:   openapi_types.Date{Time: t.StartDate},
		EndDate:     openapi_types.Date{Time: t.EndDate},
		TravelStyle: string(t.TravelStyle),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func listingsToResponse(listings []service.TripListing) []TripListing {
	out := make([]TripListing, len(listings))
	for i, l := range listings {
		out[i] = TripListing{Trip: tripToResponse(l.Trip), Status: string(l.Status)}
	}
	return out
}

func weatherToResponse(forecast []weather.DayForecast) []WeatherDay {
	out := make([]WeatherDay, len(forecast))
	for i, f := range forecast {
		out[i] = WeatherDay{Date: openapi_types.Date{Time: f.Date}, Summary: f.Summary}
	}
	return out
}

// queryInt parses one integer query parameter, nil when absent or malformed.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
