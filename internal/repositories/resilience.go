package repositories

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// BackoffConfig controls exponential backoff behaviour.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

var (
	errRateLimited  = errors.New("rate limited")
	errServerError  = errors.New("server error")
	errCircuitOpen  = errors.New("circuit breaker open")
	errNoHTTPClient = errors.New("http client not configured")
)

// ResilientClient wraps an *http.Client with retries, exponential backoff,
// and a circuit breaker. Only safe for requests without a body.
type ResilientClient struct {
	client  *http.Client
	cb      *gobreaker.CircuitBreaker
	backoff BackoffConfig
}

func NewResilientClient(client *http.Client, name string, backoff BackoffConfig) *ResilientClient {
	return &ResilientClient{
		client:  client,
		cb:      gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: name}),
		backoff: backoff,
	}
}

func (c *ResilientClient) Do(req *http.Request) (*http.Response, error) {
	if c.client == nil {
		return nil, errNoHTTPClient
	}

	ctx := req.Context()
	var attempt int
	var lastErr error

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		result, err := c.cb.Execute(func() (interface{}, error) {
			resp, execErr := c.client.Do(req.Clone(ctx))
			if execErr != nil {
				return nil, execErr
			}

			// Rate limiting and server errors are retryable; anything
			// else is the caller's to interpret.
			if resp.StatusCode == http.StatusTooManyRequests {
				resp.Body.Close()
				return nil, errRateLimited
			}
			if resp.StatusCode >= 500 {
				resp.Body.Close()
				return nil, fmt.Errorf("%w: %d", errServerError, resp.StatusCode)
			}

			return resp, nil
		})

		if err == nil {
			resp, ok := result.(*http.Response)
			if !ok {
				return nil, fmt.Errorf("unexpected result type from circuit breaker")
			}
			return resp, nil
		}

		// If circuit is open, propagate immediately.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}

		lastErr = err
		if attempt >= c.backoff.MaxRetries {
			return nil, lastErr
		}

		delay := c.backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if c.backoff.MaxInterval > 0 && delay > c.backoff.MaxInterval {
			delay = c.backoff.MaxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
			// next attempt
		}

		attempt++
	}
}
