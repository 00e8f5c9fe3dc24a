package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/khartman/trip-planner/internal/domain"
)

const defaultPlacesBaseURL = "https://maps.googleapis.com/maps/api/place/textsearch/json"

// PlacesClient produces day checklist suggestions. With an API key it queries
// the Google Places Text Search API; without one, or on any failure, it serves
// the offline tables. Failures never surface to callers; the fallback is the
// contract.
type PlacesClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewPlacesClient constructs a PlacesClient. An empty apiKey disables network
// calls entirely.
func NewPlacesClient(apiKey string, timeout time.Duration) *PlacesClient {
	return &PlacesClient{
		apiKey:  apiKey,
		baseURL: defaultPlacesBaseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Checklist returns suggestions for the destination, biased by travel style.
func (c *PlacesClient) Checklist(ctx context.Context, destination string, style domain.TravelStyle) Checklist {
	if c.apiKey == "" {
		return OfflineChecklist(destination)
	}

	live, err := c.liveChecklist(ctx, destination, style)
	if err != nil {
		return OfflineChecklist(destination)
	}

	// Fill any category the API returned nothing for from the offline tables.
	offline := OfflineChecklist(destination)
	if len(live.Places) == 0 {
		live.Places = offline.Places
	}
	if len(live.Restaurants) == 0 {
		live.Restaurants = offline.Restaurants
	}
	if len(live.Hotels) == 0 {
		live.Hotels = offline.Hotels
	}
	return live
}

func (c *PlacesClient) liveChecklist(ctx context.Context, destination string, style domain.TravelStyle) (Checklist, error) {
	places, err := c.search(ctx, "tourist attractions in "+destination, "tourist_attraction")
	if err != nil {
		return Checklist{}, err
	}

	restaurantPhrase := "restaurants"
	switch style {
	case domain.StyleBudget:
		restaurantPhrase = "cheap eats"
	case domain.StyleLuxury:
		restaurantPhrase = "fine dining restaurants"
	case domain.StyleFamily:
		restaurantPhrase = "family friendly restaurants"
	case domain.StyleFoodie:
		restaurantPhrase = "best local food"
	}
	restaurants, err := c.search(ctx, restaurantPhrase+" in "+destination, "restaurant")
	if err != nil {
		return Checklist{}, err
	}

	hotelPhrase := "hotels"
	switch style {
	case domain.StyleBudget:
		hotelPhrase = "budget hotels"
	case domain.StyleLuxury:
		hotelPhrase = "luxury hotels"
	}
	hotels, err := c.search(ctx, hotelPhrase+" in "+destination, "lodging")
	if err != nil {
		return Checklist{}, err
	}

	return Checklist{Places: places, Restaurants: restaurants, Hotels: hotels}, nil
}

// placesResponse is the subset of the Text Search payload this client reads.
type placesResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name             string `json:"name"`
		FormattedAddress string `json:"formatted_address"`
		Vicinity         string `json:"vicinity"`
	} `json:"results"`
}

// search runs one text search and returns up to five "Name (Address)" strings.
func (c *PlacesClient) search(ctx context.Context, query, placeType string) ([]string, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("key", c.apiKey)
	if placeType != "" {
		params.Set("type", placeType)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggest: places API status %s", resp.Status)
	}

	var body placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status != "OK" && body.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("suggest: places API status %q", body.Status)
	}

	names := []string{}
	for i, result := range body.Results {
		if i == 5 {
			break
		}
		if result.Name == "" {
			continue
		}
		address := result.FormattedAddress
		if address == "" {
			address = result.Vicinity
		}
		if address != "" {
			names = append(names, result.Name+" ("+address+")")
		} else {
			names = append(names, result.Name)
		}
	}
	return names, nil
}
