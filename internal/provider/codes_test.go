package provider

import (
	"errors"
	"testing"

	"github.com/tj/assert"
)

func TestLookupWeatherCode(t *testing.T) {
	cases := []struct {
		name     string
		code     int
		expected string
	}{
		{name: "clear sky", code: 0, expected: "Sunny"},
		{name: "mainly sunny", code: 1, expected: "Mainly Sunny"},
		{name: "thunderstorm with hail", code: 99, expected: "Thunderstorm With Hail"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			desc, err := LookupWeatherCode(tc.code)
			assert.Nil(t, err)
			assert.Equal(t, tc.expected, desc)
		})
	}
}

func TestLookupWeatherCodeUnknown(t *testing.T) {
	_, err := LookupWeatherCode(42)
	assert.True(t, errors.Is(err, ErrUnknownWeatherCode))
}
