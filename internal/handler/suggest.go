package handler

import "net/http"

// SuggestPlaces handles POST /trips/{id}/suggest: populates day checklists
// with suggested places, restaurants, and hotels.
func (s *Server) SuggestPlaces(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	added, err := s.suggest.Apply(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"items_added": added})
}

// GenerateItinerary handles POST /trips/{id}/generate: fills empty slot
// descriptions with style-keyed text.
func (s *Server) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	if err := s.suggest.Generate(r.Context(), tripID); err != nil {
		respondError(w, err, "trip")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetRecipe handles GET /trips/{id}/recipe.
func (s *Server) GetRecipe(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	recipe, err := s.suggest.Recipe(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, recipe)
}

// GetHighlights handles GET /trips/{id}/highlights.
func (s *Server) GetHighlights(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	highlights, err := s.suggest.Highlights(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, highlights)
}
