// Package service orchestrates the upstream providers behind the gateway's
// query types, including the compound postcode-to-route query.
package service

import (
	"context"
	"fmt"

	"github.com/FranklinWilson/api-orchestrator/internal/model"
)

// PostcodeResolver converts postcodes to coordinates.
type PostcodeResolver interface {
	Resolve(ctx context.Context, postcode string) (model.Coordinate, error)
}

// RouteResolver retrieves road travel durations between coordinates.
type RouteResolver interface {
	Duration(ctx context.Context, start, end model.Coordinate) (float64, error)
}

// WeatherResolver retrieves the current weather category at a coordinate.
type WeatherResolver interface {
	Current(ctx context.Context, coord model.Coordinate) (string, error)
}

// GeoService provides the gateway's aggregation queries.
type GeoService struct {
	postcodes PostcodeResolver
	routes    RouteResolver
	weather   WeatherResolver
}

// New creates a new GeoService.
func New(postcodes PostcodeResolver, routes RouteResolver, weather WeatherResolver) *GeoService {
	return &GeoService{
		postcodes: postcodes,
		routes:    routes,
		weather:   weather,
	}
}

// ResolvePostcode converts a postcode to coordinates.
func (s *GeoService) ResolvePostcode(ctx context.Context, postcode string) (model.Coordinate, error) {
	return s.postcodes.Resolve(ctx, postcode)
}

// RouteDuration returns the travel duration by road between two coordinates.
func (s *GeoService) RouteDuration(ctx context.Context, start, end model.Coordinate) (float64, error) {
	return s.routes.Duration(ctx, start, end)
}

// RouteBetweenPostcodes resolves both postcodes and returns the travel
// duration by road between them. Sub-calls run in order and the first
// failure aborts the query; no partial result is returned.
func (s *GeoService) RouteBetweenPostcodes(ctx context.Context, first, second string) (float64, error) {
	start, err := s.postcodes.Resolve(ctx, first)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve first postcode: %w", err)
	}

	end, err := s.postcodes.Resolve(ctx, second)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve second postcode: %w", err)
	}

	return s.routes.Duration(ctx, start, end)
}

// WeatherAt returns the current weather category at the given coordinate.
func (s *GeoService) WeatherAt(ctx context.Context, coord model.Coordinate) (string, error) {
	return s.weather.Current(ctx, coord)
}

// WeatherAtPostcode resolves a postcode and returns the current weather
// category at its location.
func (s *GeoService) WeatherAtPostcode(ctx context.Context, postcode string) (string, error) {
	coord, err := s.postcodes.Resolve(ctx, postcode)
	if err != nil {
		return "", fmt.Errorf("failed to resolve postcode: %w", err)
	}

	return s.weather.Current(ctx, coord)
}
