// Package config loads gateway configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/FranklinWilson/api-orchestrator/internal/logger"
)

// Default upstream endpoints. Each can be overridden via environment,
// which is also how tests point the gateway at stub servers.
const (
	defaultPostcodeURL        = "https://api.postcodes.io/postcodes"
	defaultRoutingURL         = "https://router.project-osrm.org/route/v1/driving"
	defaultWeatherURL         = "http://www.7timer.info/bin/api.pl"
	defaultWeatherFallbackURL = "https://api.open-meteo.com/v1/forecast"
)

// Config holds the gateway runtime configuration.
type Config struct {
	Port string

	PostcodeBaseURL        string
	RoutingBaseURL         string
	WeatherBaseURL         string
	WeatherFallbackBaseURL string

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info(fmt.Sprintf("no .env file loaded: %v", err))
	}

	cfg := &Config{
		Port:                   getenvDefault("PORT", "8080"),
		PostcodeBaseURL:        getenvDefault("POSTCODE_API_URL", defaultPostcodeURL),
		RoutingBaseURL:         getenvDefault("ROUTING_API_URL", defaultRoutingURL),
		WeatherBaseURL:         getenvDefault("WEATHER_API_URL", defaultWeatherURL),
		WeatherFallbackBaseURL: getenvDefault("WEATHER_FALLBACK_API_URL", defaultWeatherFallbackURL),
	}

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
