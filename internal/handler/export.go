package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/khartman/trip-planner/internal/domain"
)

// ExportTrip handles GET /trips/{id}/export.csv.
func (s *Server) ExportTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	// Buffer before writing headers so a service error can still produce a
	// proper JSON error response.
	var buf bytes.Buffer
	if err := s.export.Export(r.Context(), tripID, &buf); err != nil {
		respondError(w, err, "trip")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=trip_%s_itinerary.csv", tripID))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// ImportTrip handles POST /trips/import. The request body is the CSV file;
// the destination and optional travel_style come from query parameters.
func (s *Server) ImportTrip(w http.ResponseWriter, r *http.Request) {
	destination := r.URL.Query().Get("destination")
	style := domain.ParseTravelStyle(r.URL.Query().Get("travel_style"))

	trip, err := s.export.ImportNew(r.Context(), destination, style, r.Body)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(trip))
}

// ImportIntoTrip handles POST /trips/{id}/import. Rows dated outside the
// trip's current range are ignored.
func (s *Server) ImportIntoTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	applied, err := s.export.ImportMerge(r.Context(), tripID, r.Body)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"rows_applied": applied})
}
