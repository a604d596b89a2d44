package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"agro-advisor/internal/models"
	"agro-advisor/pkg/logger"
)

const (
	OpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5/forecast"
)

// OpenWeatherRepository fetches the 5-day/3-hour forecast from
// OpenWeatherMap and converts it into the logical observation shape.
type OpenWeatherRepository struct {
	BaseURL    string
	APIKey     string
	Lat        float64
	Lon        float64
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenWeatherRepository(apiKey string, lat, lon float64, l *logger.Logger, httpClient HTTPClient) (*OpenWeatherRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}

	return &OpenWeatherRepository{
		BaseURL:    OpenWeatherBaseURL,
		APIKey:     apiKey,
		Lat:        lat,
		Lon:        lon,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (o *OpenWeatherRepository) Name() string {
	return "openweathermap"
}

// OpenWeatherResponse mirrors the slice of the forecast payload we consume.
// Temperature and humidity are pointers so that a field the API omitted
// stays nil and fails validation downstream instead of becoming zero.
type OpenWeatherResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     *float64 `json:"temp"`
			Humidity *float64 `json:"humidity"`
		} `json:"main"`
		Rain *struct {
			ThreeH float64 `json:"3h"`
		} `json:"rain,omitempty"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
	} `json:"list"`
}

func (o *OpenWeatherRepository) FetchObservations(ctx context.Context) ([]models.Observation, error) {
	url := fmt.Sprintf("%s?lat=%f&lon=%f&units=metric&appid=%s", o.BaseURL, o.Lat, o.Lon, o.APIKey)

	o.l.Info("making openweathermap API request", map[string]any{
		"lat": o.Lat,
		"lon": o.Lon,
	})

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	o.l.Info("received openweathermap API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	var response OpenWeatherResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	o.l.Info("parsed API response", map[string]any{
		"items": len(response.List),
	})

	// An empty forecast list is valid data, not a provider failure; the
	// pipeline renders the no-data message for it downstream.
	return observationsFromResponse(response), nil
}

// observationsFromResponse reshapes API items into observations. A missing
// rain block means no precipitation is predicted; everything else is passed
// through untouched for the aggregator to validate.
func observationsFromResponse(response OpenWeatherResponse) []models.Observation {
	observations := make([]models.Observation, 0, len(response.List))

	for _, item := range response.List {
		var ts *time.Time
		if item.Dt != 0 {
			t := time.Unix(item.Dt, 0).UTC()
			ts = &t
		}

		var precip float64
		if item.Rain != nil {
			precip = item.Rain.ThreeH
		}

		conditions := make([]string, 0, len(item.Weather))
		for _, w := range item.Weather {
			conditions = append(conditions, w.Main)
		}

		observations = append(observations, models.Observation{
			Timestamp:       ts,
			TemperatureC:    item.Main.Temp,
			HumidityPct:     item.Main.Humidity,
			PrecipitationMM: precip,
			Conditions:      conditions,
		})
	}

	return observations
}
