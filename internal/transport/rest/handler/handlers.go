package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/FranklinWilson/api-orchestrator/internal/logger"
	"github.com/FranklinWilson/api-orchestrator/internal/model"
	"github.com/FranklinWilson/api-orchestrator/internal/provider"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go GeoService

// GeoService provides the gateway's aggregation queries.
type GeoService interface {
	ResolvePostcode(ctx context.Context, postcode string) (model.Coordinate, error)
	RouteDuration(ctx context.Context, start, end model.Coordinate) (float64, error)
	RouteBetweenPostcodes(ctx context.Context, first, second string) (float64, error)
	WeatherAt(ctx context.Context, coord model.Coordinate) (string, error)
	WeatherAtPostcode(ctx context.Context, postcode string) (string, error)
}

// GeoServer is a server for geospatial query processing.
type GeoServer struct {
	service GeoService
}

// NewGeoServer creates new GeoServer.
func NewGeoServer(service GeoService) *GeoServer {
	return &GeoServer{service}
}

// RootHandler confirms the gateway is up.
func (s *GeoServer) RootHandler(w http.ResponseWriter, r *http.Request) {
	respondOK(w, "Orchestrator Root Endpoint", map[string]interface{}{})
}

// DistanceHandler handles a route duration request between two coordinates.
func (s *GeoServer) DistanceHandler(w http.ResponseWriter, r *http.Request) {
	req, err := validateDistanceParams(r.URL.Query())
	if err != nil {
		logger.Error(err)
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	distance, err := s.service.RouteDuration(r.Context(), req.Origin, req.Destination)
	if err != nil {
		s.respondQueryError(w, err)
		return
	}

	respondOK(w, "Retrieved Distance", map[string]interface{}{"distance": distance})
}

// DistancePostcodeHandler handles a route duration request between two postcodes.
func (s *GeoServer) DistancePostcodeHandler(w http.ResponseWriter, r *http.Request) {
	req, err := validatePostcodePairParams(r.URL.Query())
	if err != nil {
		logger.Error(err)
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	distance, err := s.service.RouteBetweenPostcodes(r.Context(), req.FirstPostcode, req.SecondPostcode)
	if err != nil {
		s.respondQueryError(w, err)
		return
	}

	respondOK(w, "Retrieved Distance", map[string]interface{}{"distance": distance})
}

// WeatherCoordinatesHandler handles a current weather request for a coordinate.
func (s *GeoServer) WeatherCoordinatesHandler(w http.ResponseWriter, r *http.Request) {
	coord, err := validateCoordinateParams(r.URL.Query())
	if err != nil {
		logger.Error(err)
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	weather, err := s.service.WeatherAt(r.Context(), coord)
	if err != nil {
		s.respondQueryError(w, err)
		return
	}

	respondOK(w, "Retrieved weather", map[string]interface{}{"weather": weather})
}

// WeatherPostcodeHandler handles a current weather request for a postcode.
func (s *GeoServer) WeatherPostcodeHandler(w http.ResponseWriter, r *http.Request) {
	postcode, err := validatePostcodeParam(r.URL.Query())
	if err != nil {
		logger.Error(err)
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	weather, err := s.service.WeatherAtPostcode(r.Context(), postcode)
	if err != nil {
		s.respondQueryError(w, err)
		return
	}

	respondOK(w, "Retrieved weather", map[string]interface{}{"weather": weather})
}

// PostcodeToCoordinatesHandler handles a postcode resolution request.
func (s *GeoServer) PostcodeToCoordinatesHandler(w http.ResponseWriter, r *http.Request) {
	postcode, err := validatePostcodeParam(r.URL.Query())
	if err != nil {
		logger.Error(err)
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	coord, err := s.service.ResolvePostcode(r.Context(), postcode)
	if err != nil {
		s.respondQueryError(w, err)
		return
	}

	respondOK(w, "Retrieved Co-ordinates", map[string]interface{}{
		"lat": coord.Lat,
		"lon": coord.Lon,
	})
}

// respondQueryError converts a propagated query failure into a failure
// envelope. An unknown postcode keeps HTTP 200 with success=false, matching
// the provider-facing behavior callers already rely on; upstream transport
// and payload failures surface as 502.
func (s *GeoServer) respondQueryError(w http.ResponseWriter, err error) {
	logger.Error(err)

	if errors.Is(err, provider.ErrPostcodeNotFound) {
		respondFailure(w, http.StatusOK, "Request Failed, bad postcode")
		return
	}

	respondFailure(w, http.StatusBadGateway, "Request Failed, upstream error")
}

func validateDistanceParams(params url.Values) (*model.RouteRequest, error) {
	originLat, err := parseFloatParam(params, "origin_lat")
	if err != nil {
		return nil, err
	}

	originLon, err := parseFloatParam(params, "origin_long")
	if err != nil {
		return nil, err
	}

	destLat, err := parseFloatParam(params, "dest_lat")
	if err != nil {
		return nil, err
	}

	destLon, err := parseFloatParam(params, "dest_lon")
	if err != nil {
		return nil, err
	}

	return &model.RouteRequest{
		Origin:      model.Coordinate{Lat: originLat, Lon: originLon},
		Destination: model.Coordinate{Lat: destLat, Lon: destLon},
	}, nil
}

func validateCoordinateParams(params url.Values) (model.Coordinate, error) {
	lat, err := parseFloatParam(params, "lat")
	if err != nil {
		return model.Coordinate{}, err
	}

	lon, err := parseFloatParam(params, "lon")
	if err != nil {
		return model.Coordinate{}, err
	}

	return model.Coordinate{Lat: lat, Lon: lon}, nil
}

func validatePostcodePairParams(params url.Values) (*model.PostcodeRouteRequest, error) {
	first := params.Get("first_postcode")
	if first == "" {
		return nil, errors.New("first_postcode parameter not provided in query")
	}

	second := params.Get("second_postcode")
	if second == "" {
		return nil, errors.New("second_postcode parameter not provided in query")
	}

	return &model.PostcodeRouteRequest{
		FirstPostcode:  first,
		SecondPostcode: second,
	}, nil
}

func validatePostcodeParam(params url.Values) (string, error) {
	postcode := params.Get("postcode")
	if postcode == "" {
		return "", errors.New("postcode parameter not provided in query")
	}

	return postcode, nil
}

func parseFloatParam(params url.Values, name string) (float64, error) {
	str := params.Get(name)
	if str == "" {
		return 0, fmt.Errorf("%s parameter not provided in query", name)
	}

	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("%s parameter is not a number: %w", name, err)
	}

	return v, nil
}
