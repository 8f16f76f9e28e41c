package provider

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/FranklinWilson/api-orchestrator/internal/client"
	"github.com/FranklinWilson/api-orchestrator/internal/model"
)

// ErrNoRoute is returned when the routing provider responds without any route.
var ErrNoRoute = errors.New("no route returned")

// routeParams suppresses route geometry and turn-by-turn steps, the cheapest
// response shape the provider offers.
var routeParams = map[string]string{
	"overview": "false",
	"steps":    "false",
}

// RouteClient retrieves road travel durations from an OSRM compatible
// routing provider.
type RouteClient struct {
	client  *client.Client
	baseURL string
}

// NewRouteClient creates a RouteClient for the given base URL.
func NewRouteClient(c *client.Client, baseURL string) *RouteClient {
	return &RouteClient{
		client:  c,
		baseURL: baseURL,
	}
}

// Duration returns the travel duration by road between start and end.
// The value is routes[0].duration from the provider, passed through
// unchanged (seconds, per provider documentation).
func (r *RouteClient) Duration(ctx context.Context, start, end model.Coordinate) (float64, error) {
	// The provider mandates longitude before latitude in the path.
	endpoint := fmt.Sprintf("%s/%s,%s;%s,%s",
		r.baseURL,
		formatCoord(start.Lon), formatCoord(start.Lat),
		formatCoord(end.Lon), formatCoord(end.Lat),
	)

	data, err := r.client.Get(ctx, endpoint, routeParams)
	if err != nil {
		return 0, fmt.Errorf("failed to query routing provider: %w", err)
	}

	routes, err := data.Objects("routes")
	if err != nil {
		return 0, fmt.Errorf("failed to read routes: %w", err)
	}
	if len(routes) == 0 {
		return 0, ErrNoRoute
	}

	duration, err := routes[0].Number("duration")
	if err != nil {
		return 0, fmt.Errorf("failed to read route duration: %w", err)
	}

	return duration, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
