package repositories

import (
	"context"
	"net/http"
	"time"

	"agro-advisor/config"
	"agro-advisor/internal/models"
	"agro-advisor/pkg/logger"
)

// HTTPClient is the minimal client surface the repositories need; satisfied
// by *http.Client and by ResilientClient.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ForecastRepository supplies the raw observation stream for the configured
// region. The core pipeline never talks to the network itself.
type ForecastRepository interface {
	Name() string
	FetchObservations(ctx context.Context) ([]models.Observation, error)
}

// InitForecastRepository builds the OpenWeatherMap repository with a
// retrying, circuit-broken HTTP client.
func InitForecastRepository(cfg *config.Config, l *logger.Logger) (ForecastRepository, error) {
	client := NewResilientClient(
		&http.Client{Timeout: 15 * time.Second},
		"openweathermap",
		BackoffConfig{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
	)

	return NewOpenWeatherRepository(cfg.OpenWeatherAPIKey, cfg.Region.Lat, cfg.Region.Lon, l, client)
}
