// Package weather produces a short per-date forecast for a trip's destination.
// With an OpenWeather API key it geocodes the destination and aggregates the
// 5-day/3-hour forecast into daily summaries; otherwise, or on any failure,
// it returns an offline placeholder. Failures never surface to callers.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultGeoBaseURL      = "https://api.openweathermap.org/geo/1.0/direct"
	defaultForecastBaseURL = "https://api.openweathermap.org/data/2.5/forecast"

	// maxForecastDays caps the forecast length; OpenWeather's free forecast
	// only covers about five days anyway.
	maxForecastDays = 7

	offlineSummary = "Forecast placeholder (connect to real API later)"
)

// DayForecast is one date's summary line.
type DayForecast struct {
	Date    time.Time `json:"date"`
	Summary string    `json:"summary"`
}

// Client fetches forecasts. An empty apiKey disables network calls.
type Client struct {
	apiKey          string
	geoBaseURL      string
	forecastBaseURL string
	http            *http.Client
}

// NewClient constructs a weather Client.
func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:          apiKey,
		geoBaseURL:      defaultGeoBaseURL,
		forecastBaseURL: defaultForecastBaseURL,
		http:            &http.Client{Timeout: timeout},
	}
}

// Forecast returns one summary per date for up to the first seven dates.
// Dates beyond the provider's horizon get "Forecast unavailable"; with no API
// key or on any provider error every date gets the offline placeholder.
func (c *Client) Forecast(ctx context.Context, destination string, dates []time.Time) []DayForecast {
	if len(dates) > maxForecastDays {
		dates = dates[:maxForecastDays]
	}
	if c.apiKey == "" {
		return offlineForecast(dates)
	}

	summaries, err := c.liveSummaries(ctx, destination)
	if err != nil || len(summaries) == 0 {
		return offlineForecast(dates)
	}

	out := make([]DayForecast, len(dates))
	for i, date := range dates {
		summary, ok := summaries[date.Format("2006-01-02")]
		if !ok {
			summary = "Forecast unavailable"
		}
		out[i] = DayForecast{Date: date, Summary: summary}
	}
	return out
}

func offlineForecast(dates []time.Time) []DayForecast {
	out := make([]DayForecast, len(dates))
	for i, date := range dates {
		out[i] = DayForecast{Date: date, Summary: offlineSummary}
	}
	return out
}

type geoResult struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp *float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

// liveSummaries geocodes the destination and aggregates the 3-hour forecast
// blocks into one "description, max / min°C" line per date.
func (c *Client) liveSummaries(ctx context.Context, destination string) (map[string]string, error) {
	lat, lon, err := c.geocode(ctx, destination)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("units", "metric")
	params.Set("appid", c.apiKey)

	var body forecastResponse
	if err := c.getJSON(ctx, c.forecastBaseURL+"?"+params.Encode(), &body); err != nil {
		return nil, err
	}

	type bucket struct {
		temps        []float64
		descriptions []string
	}
	byDate := map[string]*bucket{}
	for _, entry := range body.List {
		if entry.Dt == 0 {
			continue
		}
		dateStr := time.Unix(entry.Dt, 0).UTC().Format("2006-01-02")
		b, ok := byDate[dateStr]
		if !ok {
			b = &bucket{}
			byDate[dateStr] = b
		}
		if entry.Main.Temp != nil {
			b.temps = append(b.temps, *entry.Main.Temp)
		}
		if len(entry.Weather) > 0 && entry.Weather[0].Description != "" {
			b.descriptions = append(b.descriptions, entry.Weather[0].Description)
		}
	}

	summaries := map[string]string{}
	for dateStr, b := range byDate {
		var parts []string
		if len(b.descriptions) > 0 {
			parts = append(parts, capitalize(b.descriptions[0]))
		}
		if len(b.temps) > 0 {
			lo, hi := b.temps[0], b.temps[0]
			for _, t := range b.temps[1:] {
				if t < lo {
					lo = t
				}
				if t > hi {
					hi = t
				}
			}
			parts = append(parts, fmt.Sprintf("%.0f / %.0f°C", hi, lo))
		}
		if len(parts) == 0 {
			summaries[dateStr] = "Forecast unavailable"
			continue
		}
		summaries[dateStr] = strings.Join(parts, ", ")
	}
	return summaries, nil
}

func (c *Client) geocode(ctx context.Context, destination string) (lat, lon float64, err error) {
	params := url.Values{}
	params.Set("q", destination)
	params.Set("limit", "1")
	params.Set("appid", c.apiKey)

	var results []geoResult
	if err := c.getJSON(ctx, c.geoBaseURL+"?"+params.Encode(), &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 || results[0].Lat == nil || results[0].Lon == nil {
		return 0, 0, fmt.Errorf("weather: no geocoding result for %q", destination)
	}
	return *results[0].Lat, *results[0].Lon, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, into any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather: API status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(into)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
