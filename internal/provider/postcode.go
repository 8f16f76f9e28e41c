// Package provider contains the clients for the upstream services the
// gateway aggregates: postcode lookup, road routing and weather.
package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/FranklinWilson/api-orchestrator/internal/client"
	"github.com/FranklinWilson/api-orchestrator/internal/model"
)

// ErrPostcodeNotFound is returned when the postcode provider does not know
// the requested postcode.
var ErrPostcodeNotFound = errors.New("postcode not found")

// PostcodeClient resolves postcodes to coordinates via a postcodes.io
// compatible provider.
type PostcodeClient struct {
	client  *client.Client
	baseURL string
}

// NewPostcodeClient creates a PostcodeClient for the given base URL.
func NewPostcodeClient(c *client.Client, baseURL string) *PostcodeClient {
	return &PostcodeClient{
		client:  c,
		baseURL: baseURL,
	}
}

// Resolve converts a postcode to a coordinate pair.
//
// The provider reports unknown postcodes two ways: a plain non-200 response,
// or a 200 response carrying an embedded "status": 404 field. Both are
// translated into ErrPostcodeNotFound so callers see one domain failure,
// while the wrapped cause keeps them distinguishable.
func (p *PostcodeClient) Resolve(ctx context.Context, postcode string) (model.Coordinate, error) {
	endpoint := fmt.Sprintf("%s/%s", p.baseURL, postcode)

	data, err := p.client.Get(ctx, endpoint, nil)
	var respErr *client.ResponseError
	if errors.As(err, &respErr) {
		return model.Coordinate{}, fmt.Errorf("%w: %v", ErrPostcodeNotFound, err)
	}
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("failed to query postcode provider: %w", err)
	}

	status, err := data.Int("status")
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("failed to read postcode response status: %w", err)
	}
	if status == http.StatusNotFound {
		return model.Coordinate{}, fmt.Errorf("%w: provider reported embedded status 404", ErrPostcodeNotFound)
	}

	result, err := data.Object("result")
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("failed to read postcode result: %w", err)
	}

	lat, err := result.Number("latitude")
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("failed to read latitude: %w", err)
	}

	lon, err := result.Number("longitude")
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("failed to read longitude: %w", err)
	}

	return model.Coordinate{Lat: lat, Lon: lon}, nil
}
