package provider

import (
	"errors"
	"fmt"
)

// ErrUnknownWeatherCode is returned when the fallback provider reports a
// weather code outside its documented code space.
var ErrUnknownWeatherCode = errors.New("unknown weather code")

// weatherCodes maps the fallback provider's WMO weather codes to the brief
// descriptions used as the gateway's weather category vocabulary.
// Initialized once, read-only afterwards, safe for concurrent reads.
var weatherCodes = map[int]string{
	0:  "Sunny",
	1:  "Mainly Sunny",
	2:  "Partly Cloudy",
	3:  "Cloudy",
	45: "Foggy",
	48: "Rime Fog",
	51: "Light Drizzle",
	53: "Drizzle",
	55: "Heavy Drizzle",
	56: "Light Freezing Drizzle",
	57: "Freezing Drizzle",
	61: "Light Rain",
	63: "Rain",
	65: "Heavy Rain",
	66: "Light Freezing Rain",
	67: "Freezing Rain",
	71: "Light Snow",
	73: "Snow",
	75: "Heavy Snow",
	77: "Snow Grains",
	80: "Light Showers",
	81: "Showers",
	82: "Heavy Showers",
	85: "Light Snow Showers",
	86: "Snow Showers",
	95: "Thunderstorm",
	96: "Light Thunderstorms With Hail",
	99: "Thunderstorm With Hail",
}

// LookupWeatherCode translates a fallback provider weather code into its
// description.
func LookupWeatherCode(code int) (string, error) {
	desc, ok := weatherCodes[code]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownWeatherCode, code)
	}

	return desc, nil
}
