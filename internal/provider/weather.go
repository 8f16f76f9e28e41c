package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/FranklinWilson/api-orchestrator/internal/client"
	"github.com/FranklinWilson/api-orchestrator/internal/logger"
	"github.com/FranklinWilson/api-orchestrator/internal/model"
)

// weatherParams requests the simplified "civil light" forecast from the
// primary provider.
var weatherParams = map[string]string{
	"product": "civillight",
	"output":  "json",
}

// WeatherClient retrieves the current weather category for a coordinate.
//
// It is a two-state machine: the primary provider is always tried first;
// a transport-level failure there (non-200 status, unreachable host, open
// circuit breaker) transitions to the fallback provider, whose numeric
// weather code is translated into the primary's category vocabulary.
// There is exactly one fallback tier: any failure in the fallback branch
// is fatal for the call.
type WeatherClient struct {
	client      *client.Client
	primaryURL  string
	fallbackURL string
	circuit     *gobreaker.CircuitBreaker
}

// NewWeatherClient creates a WeatherClient using primaryURL first and
// fallbackURL when the primary fails.
func NewWeatherClient(c *client.Client, primaryURL, fallbackURL string) *WeatherClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weather-primary",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &WeatherClient{
		client:      c,
		primaryURL:  primaryURL,
		fallbackURL: fallbackURL,
		circuit:     cb,
	}
}

// Current returns the weather category at the given coordinate.
func (w *WeatherClient) Current(ctx context.Context, coord model.Coordinate) (string, error) {
	category, err := w.fetchPrimary(ctx, coord)
	if err == nil {
		return category, nil
	}

	if !isTransportFailure(err) {
		// A malformed 200 response from the primary is not a transport
		// failure and does not enter the fallback tier.
		return "", fmt.Errorf("failed to get weather from primary provider: %w", err)
	}

	logger.Error(fmt.Errorf("primary weather provider failed, trying fallback: %v", err))

	return w.fetchFallback(ctx, coord)
}

// fetchPrimary queries the primary provider and extracts
// dataseries[0].weather. Calls go through the circuit breaker so a
// persistently failing provider is skipped instead of hammered.
func (w *WeatherClient) fetchPrimary(ctx context.Context, coord model.Coordinate) (string, error) {
	params := map[string]string{
		"lat": formatCoord(coord.Lat),
		"lon": formatCoord(coord.Lon),
	}
	for k, v := range weatherParams {
		params[k] = v
	}

	result, err := w.circuit.Execute(func() (interface{}, error) {
		return w.client.Get(ctx, w.primaryURL, params)
	})
	if err != nil {
		return "", err
	}

	data, ok := result.(client.Payload)
	if !ok {
		return "", fmt.Errorf("%w: unexpected payload type", client.ErrMalformedResponse)
	}

	series, err := data.Objects("dataseries")
	if err != nil {
		return "", fmt.Errorf("failed to read dataseries: %w", err)
	}
	if len(series) == 0 {
		return "", fmt.Errorf("%w: empty dataseries", client.ErrMalformedResponse)
	}

	category, err := series[0].String("weather")
	if err != nil {
		return "", fmt.Errorf("failed to read weather category: %w", err)
	}

	return category, nil
}

// fetchFallback queries the fallback provider and translates its
// current_weather.weathercode through the code table.
func (w *WeatherClient) fetchFallback(ctx context.Context, coord model.Coordinate) (string, error) {
	// The fallback provider uses its own parameter convention.
	params := map[string]string{
		"latitude":        formatCoord(coord.Lat),
		"longitude":       formatCoord(coord.Lon),
		"current_weather": "true",
	}

	data, err := w.client.Get(ctx, w.fallbackURL, params)
	if err != nil {
		return "", fmt.Errorf("failed to query fallback weather provider: %w", err)
	}

	current, err := data.Object("current_weather")
	if err != nil {
		return "", fmt.Errorf("failed to read current weather: %w", err)
	}

	code, err := current.Int("weathercode")
	if err != nil {
		return "", fmt.Errorf("failed to read weather code: %w", err)
	}

	category, err := LookupWeatherCode(code)
	if err != nil {
		return "", fmt.Errorf("failed to translate weather code: %w", err)
	}

	return category, nil
}

// isTransportFailure reports whether err is a transport-level failure of the
// primary provider rather than a bad payload in a successful response.
func isTransportFailure(err error) bool {
	var respErr *client.ResponseError
	if errors.As(err, &respErr) {
		return true
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return true
	}

	// Connection-level errors surface as plain wrapped errors from the
	// fetch primitive; malformed payloads are marked explicitly.
	return !errors.Is(err, client.ErrMalformedResponse)
}
