package suggest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khartman/trip-planner/internal/domain"
)

func newTestPlacesClient(apiKey, baseURL string) *PlacesClient {
	return &PlacesClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: time.Second},
	}
}

func TestPlacesClient_NoKey_ServesOfflineTables(t *testing.T) {
	c := NewPlacesClient("", time.Second)

	got := c.Checklist(context.Background(), "Tokyo, Japan", domain.StyleFoodie)

	require.NotEmpty(t, got.Places)
	assert.Contains(t, got.Places[0], "Senso-ji")
}

func TestPlacesClient_Live_ReturnsAPIResults(t *testing.T) {
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("query"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "OK",
			"results": []map[string]string{
				{"name": "Pastel de Nata Spot", "formatted_address": "Rua Augusta 1, Lisbon"},
				{"name": "Miradouro Viewpoint", "vicinity": "Alfama"},
			},
		})
	}))
	defer srv.Close()

	c := newTestPlacesClient("test-key", srv.URL)

	got := c.Checklist(context.Background(), "Lisbon, Portugal", domain.StyleFoodie)

	require.NotEmpty(t, got.Places)
	assert.Equal(t, "Pastel de Nata Spot (Rua Augusta 1, Lisbon)", got.Places[0])
	assert.Equal(t, "Miradouro Viewpoint (Alfama)", got.Places[1])

	// One search per category, with the foodie phrasing for restaurants.
	require.Len(t, queries, 3)
	assert.Equal(t, "tourist attractions in Lisbon, Portugal", queries[0])
	assert.Equal(t, "best local food in Lisbon, Portugal", queries[1])
	assert.Equal(t, "hotels in Lisbon, Portugal", queries[2])
}

func TestPlacesClient_APIError_FallsBackToOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestPlacesClient("test-key", srv.URL)

	got := c.Checklist(context.Background(), "Tokyo, Japan", domain.StyleFlexible)

	require.NotEmpty(t, got.Places)
	assert.Contains(t, got.Places[0], "Senso-ji")
}

func TestPlacesClient_ZeroResults_FillsFromOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "ZERO_RESULTS", "results": []any{}})
	}))
	defer srv.Close()

	c := newTestPlacesClient("test-key", srv.URL)

	got := c.Checklist(context.Background(), "Tokyo, Japan", domain.StyleFlexible)

	require.NotEmpty(t, got.Places, "empty categories fill from the offline tables")
	assert.Contains(t, got.Places[0], "Senso-ji")
	assert.NotEmpty(t, got.Restaurants)
	assert.NotEmpty(t, got.Hotels)
}
