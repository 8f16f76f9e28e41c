package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/FranklinWilson/api-orchestrator/internal/client"
	"github.com/FranklinWilson/api-orchestrator/internal/config"
	"github.com/FranklinWilson/api-orchestrator/internal/logger"
	"github.com/FranklinWilson/api-orchestrator/internal/provider"
	"github.com/FranklinWilson/api-orchestrator/internal/service"
	"github.com/FranklinWilson/api-orchestrator/internal/transport/rest/handler"
)

// RunAPI runs the geospatial aggregation gateway.
func RunAPI() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fetchClient := client.New(cfg.HTTPTimeout)

	geoService := service.New(
		provider.NewPostcodeClient(fetchClient, cfg.PostcodeBaseURL),
		provider.NewRouteClient(fetchClient, cfg.RoutingBaseURL),
		provider.NewWeatherClient(fetchClient, cfg.WeatherBaseURL, cfg.WeatherFallbackBaseURL),
	)

	server := handler.NewGeoServer(geoService)

	r := mux.NewRouter()

	r.HandleFunc("/", server.RootHandler).Methods("GET")
	r.HandleFunc("/distance", server.DistanceHandler).Methods("GET")
	r.HandleFunc("/distance-postcode", server.DistancePostcodeHandler).Methods("GET")
	r.HandleFunc("/weather-coordinates", server.WeatherCoordinatesHandler).Methods("GET")
	r.HandleFunc("/weather-postcode", server.WeatherPostcodeHandler).Methods("GET")
	r.HandleFunc("/postcode-to-coordinates", server.PostcodeToCoordinatesHandler).Methods("GET")

	logger.Info(fmt.Sprintf("Starting api orchestrator at port %s", cfg.Port))

	options := setupCorsOptions()
	return http.ListenAndServe(":"+cfg.Port, handlers.CORS(options...)(r))
}
