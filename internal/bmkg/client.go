package bmkg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"bmkg-forecast/internal/forecast"
)

var (
	errServerError = errors.New("server error")
	errClientError = errors.New("request rejected")
	errCircuitOpen = errors.New("circuit breaker open")
	errNoClient    = errors.New("http client not configured")
)

// Client fetches one forecast payload per call from the BMKG public API for
// a single administrative region. Exactly one attempt per call: there is no
// retry or backoff, only a circuit breaker that fails fast after repeated
// transport failures.
type Client struct {
	httpClient *http.Client
	baseURL    string
	regionCode string
	circuit    *gobreaker.CircuitBreaker
}

// NewClient creates a Client for the given base URL and adm4 region code.
func NewClient(httpClient *http.Client, baseURL, regionCode string) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "bmkg",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		regionCode: regionCode,
		circuit:    cb,
	}
}

// Fetch performs the single upstream GET and normalizes the response body.
// Transport failures and non-2xx statuses surface as one wrapped error; the
// body itself never fails — malformed payloads degrade to an empty bundle
// inside forecast.Normalize.
func (c *Client) Fetch(ctx context.Context) (forecast.Bundle, error) {
	if c.httpClient == nil {
		return forecast.Bundle{}, errNoClient
	}

	values := url.Values{}
	values.Set("adm4", c.regionCode)
	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return forecast.Bundle{}, fmt.Errorf("build request: %w", err)
	}

	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, execErr := c.httpClient.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return nil, fmt.Errorf("%w: %d", errServerError, resp.StatusCode)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("%w: %d", errClientError, resp.StatusCode)
		}

		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, readErr
		}
		return body, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return forecast.Bundle{}, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}
		return forecast.Bundle{}, fmt.Errorf("fetch forecast: %w", err)
	}

	body, ok := result.([]byte)
	if !ok {
		return forecast.Bundle{}, fmt.Errorf("unexpected result type from circuit breaker")
	}

	return forecast.Normalize(body), nil
}
