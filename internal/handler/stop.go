package handler

import (
	"net/http"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/khartman/trip-planner/internal/domain"
)

// --- wire types -------------------------------------------------------------

// StopRequest is the body for POST /trips/{id}/stops.
type StopRequest struct {
	Name      string             `json:"name"`
	StartDate openapi_types.Date `json:"start_date"`
	EndDate   openapi_types.Date `json:"end_date"`
}

// Stop is the wire representation of a multi-location stop.
type Stop struct {
	ID        uuid.UUID          `json:"id"`
	TripID    uuid.UUID          `json:"trip_id"`
	Name      string             `json:"name"`
	StartDate openapi_types.Date `json:"start_date"`
	EndDate   openapi_types.Date `json:"end_date"`
}

// --- handlers ---------------------------------------------------------------

// ListStops handles GET /trips/{id}/stops.
func (s *Server) ListStops(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	stops, err := s.stops.ListByTripID(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, stopsToResponse(stops))
}

// CreateStop handles POST /trips/{id}/stops.
func (s *Server) CreateStop(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}
	var body StopRequest
	if err := decode(r, &body); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	created, err := s.stops.Create(r.Context(), domain.Stop{
		TripID:    tripID,
		Name:      body.Name,
		StartDate: body.StartDate.Time,
		EndDate:   body.EndDate.Time,
	})
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusCreated, stopToResponse(created))
}

// DeleteStop handles DELETE /trips/{id}/stops/{stopID}.
func (s *Server) DeleteStop(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}
	stopID, ok := pathUUID(r, "stopID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("stop not found"))
		return
	}

	if err := s.stops.Delete(r.Context(), tripID, stopID); err != nil {
		respondError(w, err, "stop")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func stopToResponse(s domain.Stop) Stop {
	return Stop{
		ID:        s.ID,
		TripID:    s.TripID,
		Name:      s.Name,
		StartDate: openapi_types.Date{Time: s.StartDate},
		EndDate:   openapi_types.Date{Time: s.EndDate},
	}
}

func stopsToResponse(stops []domain.Stop) []Stop {
	out := make([]Stop, len(stops))
	for i, s := range stops {
		out[i] = stopToResponse(s)
	}
	return out
}
