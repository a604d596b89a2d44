package repositories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agro-advisor/pkg/logger"
)

const sampleForecastJSON = `{
	"list": [
		{
			"dt": 1753430400,
			"main": {"temp": 26.4, "humidity": 72},
			"rain": {"3h": 1.2},
			"weather": [{"main": "Rain"}, {"main": "Clouds"}]
		},
		{
			"dt": 1753441200,
			"main": {"temp": 29.1, "humidity": 55},
			"weather": [{"main": "Clear"}]
		}
	]
}`

func newTestRepository(t *testing.T, baseURL string) *OpenWeatherRepository {
	t.Helper()

	l := logger.NewZapLogger("test-app")

	repo, err := NewOpenWeatherRepository("test-key", -0.5143, 34.4618, l, &http.Client{})
	require.NoError(t, err)

	repo.BaseURL = baseURL
	return repo
}

func TestNewOpenWeatherRepository_EmptyAPIKey(t *testing.T) {
	l := logger.NewZapLogger("test-app")

	_, err := NewOpenWeatherRepository("  ", 0, 0, l, &http.Client{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestOpenWeatherRepository_FetchObservations(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleForecastJSON))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	observations, err := repo.FetchObservations(context.Background())

	require.NoError(t, err)
	require.Len(t, observations, 2)

	first := observations[0]
	require.NotNil(t, first.Timestamp)
	assert.Equal(t, time.Unix(1753430400, 0).UTC(), *first.Timestamp)
	require.NotNil(t, first.TemperatureC)
	assert.Equal(t, 26.4, *first.TemperatureC)
	require.NotNil(t, first.HumidityPct)
	assert.Equal(t, 72.0, *first.HumidityPct)
	assert.Equal(t, 1.2, first.PrecipitationMM)
	assert.Equal(t, []string{"Rain", "Clouds"}, first.Conditions)

	// No rain block means zero precipitation, not an error.
	second := observations[1]
	assert.Equal(t, 0.0, second.PrecipitationMM)
	assert.Equal(t, []string{"Clear"}, second.Conditions)
}

func TestOpenWeatherRepository_MissingFieldsStayNil(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"list": [{"dt": 1753430400, "main": {"humidity": 72}, "weather": []}]}`))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	observations, err := repo.FetchObservations(context.Background())

	require.NoError(t, err)
	require.Len(t, observations, 1)
	assert.Nil(t, observations[0].TemperatureC)
	require.NotNil(t, observations[0].HumidityPct)
}

func TestOpenWeatherRepository_FetchObservations_InvalidJSON(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("invalid json"))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	_, err := repo.FetchObservations(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse JSON")
}

func TestOpenWeatherRepository_FetchObservations_HTTPError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	_, err := repo.FetchObservations(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestOpenWeatherRepository_FetchObservations_EmptyListIsNotAnError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"list": []}`))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	observations, err := repo.FetchObservations(context.Background())

	require.NoError(t, err)
	assert.Empty(t, observations)
}

func TestResilientClient_RetriesOnServerError(t *testing.T) {
	var calls int32
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleForecastJSON))
	}))
	defer mockServer.Close()

	client := NewResilientClient(&http.Client{}, "test", BackoffConfig{
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
	})

	req, err := http.NewRequestWithContext(context.Background(), "GET", mockServer.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestResilientClient_GivesUpAfterMaxRetries(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer mockServer.Close()

	client := NewResilientClient(&http.Client{}, "test", BackoffConfig{
		MaxRetries:      1,
		InitialInterval: time.Millisecond,
	})

	req, err := http.NewRequestWithContext(context.Background(), "GET", mockServer.URL, nil)
	require.NoError(t, err)

	_, err = client.Do(req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error")
}

func TestResilientClient_ContextCancellation(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer mockServer.Close()

	client := NewResilientClient(&http.Client{}, "test", BackoffConfig{
		MaxRetries:      1,
		InitialInterval: time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", mockServer.URL, nil)
	require.NoError(t, err)

	_, err = client.Do(req)

	require.Error(t, err)
}
