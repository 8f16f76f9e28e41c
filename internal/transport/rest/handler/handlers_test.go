package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/tj/assert"

	"github.com/FranklinWilson/api-orchestrator/internal/model"
	"github.com/FranklinWilson/api-orchestrator/internal/provider"
	mock "github.com/FranklinWilson/api-orchestrator/internal/transport/rest/handler/mock"
)

var errTest = errors.New("test error")

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	err := json.NewDecoder(w.Result().Body).Decode(&env)
	assert.Nil(t, err)
	defer func() {
		err := w.Result().Body.Close()
		assert.Nil(t, err)
	}()

	return env
}

func TestRootHandler(t *testing.T) {
	s := NewGeoServer(nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	s.RootHandler(w, r)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "Orchestrator Root Endpoint", env.Message)
}

func TestDistanceHandler(t *testing.T) {
	cases := []struct {
		name            string
		target          string
		expectedStatus  int
		expectedError   error
		isMockCalled    bool
		expectedSuccess bool
	}{
		{
			name:            "ok",
			target:          "/distance?origin_lat=52.95&origin_long=1.16&dest_lat=53.0&dest_lon=1.2",
			expectedStatus:  http.StatusOK,
			isMockCalled:    true,
			expectedSuccess: true,
		},
		{
			name:           "service error",
			target:         "/distance?origin_lat=52.95&origin_long=1.16&dest_lat=53.0&dest_lon=1.2",
			expectedStatus: http.StatusBadGateway,
			expectedError:  errTest,
			isMockCalled:   true,
		},
		{
			name:           "missing parameter",
			target:         "/distance?origin_lat=52.95",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non-numeric parameter",
			target:         "/distance?origin_lat=abc&origin_long=1.16&dest_lat=53.0&dest_lon=1.2",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mock.NewMockGeoService(ctrl)
			s := NewGeoServer(mockService)

			if tc.isMockCalled {
				mockService.EXPECT().
					RouteDuration(gomock.Any(),
						model.Coordinate{Lat: 52.95, Lon: 1.16},
						model.Coordinate{Lat: 53.0, Lon: 1.2}).
					Return(734.2, tc.expectedError)
			}

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)

			s.DistanceHandler(w, r)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)

			env := decodeEnvelope(t, w)
			assert.Equal(t, tc.expectedSuccess, env.Success)
			if tc.expectedSuccess {
				assert.Equal(t, 734.2, env.Data["distance"])
			}
		})
	}
}

func TestDistancePostcodeHandler(t *testing.T) {
	cases := []struct {
		name            string
		target          string
		expectedStatus  int
		expectedError   error
		isMockCalled    bool
		expectedSuccess bool
		expectedMessage string
	}{
		{
			name:            "ok",
			target:          "/distance-postcode?first_postcode=ng76nw&second_postcode=ng25gy",
			expectedStatus:  http.StatusOK,
			isMockCalled:    true,
			expectedSuccess: true,
			expectedMessage: "Retrieved Distance",
		},
		{
			name:            "postcode not found",
			target:          "/distance-postcode?first_postcode=ZZ999&second_postcode=ng25gy",
			expectedStatus:  http.StatusOK,
			expectedError:   provider.ErrPostcodeNotFound,
			isMockCalled:    true,
			expectedMessage: "Request Failed, bad postcode",
		},
		{
			name:           "missing parameter",
			target:         "/distance-postcode?first_postcode=ng76nw",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mock.NewMockGeoService(ctrl)
			s := NewGeoServer(mockService)

			if tc.isMockCalled {
				mockService.EXPECT().
					RouteBetweenPostcodes(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(734.2, tc.expectedError)
			}

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)

			s.DistancePostcodeHandler(w, r)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)

			env := decodeEnvelope(t, w)
			assert.Equal(t, tc.expectedSuccess, env.Success)
			if tc.expectedMessage != "" {
				assert.Equal(t, tc.expectedMessage, env.Message)
			}
			if !tc.expectedSuccess {
				assert.Empty(t, env.Data)
			}
		})
	}
}

func TestWeatherCoordinatesHandler(t *testing.T) {
	cases := []struct {
		name            string
		target          string
		expectedStatus  int
		expectedError   error
		isMockCalled    bool
		expectedSuccess bool
	}{
		{
			name:            "ok",
			target:          "/weather-coordinates?lat=52.95&lon=1.16",
			expectedStatus:  http.StatusOK,
			isMockCalled:    true,
			expectedSuccess: true,
		},
		{
			name:           "service error",
			target:         "/weather-coordinates?lat=52.95&lon=1.16",
			expectedStatus: http.StatusBadGateway,
			expectedError:  errTest,
			isMockCalled:   true,
		},
		{
			name:           "missing parameter",
			target:         "/weather-coordinates?lat=52.95",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mock.NewMockGeoService(ctrl)
			s := NewGeoServer(mockService)

			if tc.isMockCalled {
				mockService.EXPECT().
					WeatherAt(gomock.Any(), model.Coordinate{Lat: 52.95, Lon: 1.16}).
					Return("clear", tc.expectedError)
			}

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)

			s.WeatherCoordinatesHandler(w, r)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)

			env := decodeEnvelope(t, w)
			assert.Equal(t, tc.expectedSuccess, env.Success)
			if tc.expectedSuccess {
				assert.Equal(t, "clear", env.Data["weather"])
			}
		})
	}
}

func TestWeatherPostcodeHandler(t *testing.T) {
	cases := []struct {
		name            string
		target          string
		expectedStatus  int
		expectedError   error
		isMockCalled    bool
		expectedSuccess bool
		expectedMessage string
	}{
		{
			name:            "ok",
			target:          "/weather-postcode?postcode=bs84bz",
			expectedStatus:  http.StatusOK,
			isMockCalled:    true,
			expectedSuccess: true,
			expectedMessage: "Retrieved weather",
		},
		{
			name:            "postcode not found",
			target:          "/weather-postcode?postcode=ZZ999",
			expectedStatus:  http.StatusOK,
			expectedError:   provider.ErrPostcodeNotFound,
			isMockCalled:    true,
			expectedMessage: "Request Failed, bad postcode",
		},
		{
			name:           "missing parameter",
			target:         "/weather-postcode",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mock.NewMockGeoService(ctrl)
			s := NewGeoServer(mockService)

			if tc.isMockCalled {
				mockService.EXPECT().
					WeatherAtPostcode(gomock.Any(), gomock.Any()).
					Return("clear", tc.expectedError)
			}

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)

			s.WeatherPostcodeHandler(w, r)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)

			env := decodeEnvelope(t, w)
			assert.Equal(t, tc.expectedSuccess, env.Success)
			if tc.expectedMessage != "" {
				assert.Equal(t, tc.expectedMessage, env.Message)
			}
		})
	}
}

func TestPostcodeToCoordinatesHandler(t *testing.T) {
	cases := []struct {
		name            string
		target          string
		expectedStatus  int
		expectedError   error
		isMockCalled    bool
		expectedSuccess bool
	}{
		{
			name:            "ok",
			target:          "/postcode-to-coordinates?postcode=bs84bz",
			expectedStatus:  http.StatusOK,
			isMockCalled:    true,
			expectedSuccess: true,
		},
		{
			name:           "postcode not found",
			target:         "/postcode-to-coordinates?postcode=ZZ999",
			expectedStatus: http.StatusOK,
			expectedError:  provider.ErrPostcodeNotFound,
			isMockCalled:   true,
		},
		{
			name:           "missing parameter",
			target:         "/postcode-to-coordinates",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mock.NewMockGeoService(ctrl)
			s := NewGeoServer(mockService)

			if tc.isMockCalled {
				mockService.EXPECT().
					ResolvePostcode(gomock.Any(), gomock.Any()).
					Return(model.Coordinate{Lat: 51.45, Lon: -2.58}, tc.expectedError)
			}

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)

			s.PostcodeToCoordinatesHandler(w, r)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)

			env := decodeEnvelope(t, w)
			assert.Equal(t, tc.expectedSuccess, env.Success)
			if tc.expectedSuccess {
				assert.Equal(t, 51.45, env.Data["lat"])
				assert.Equal(t, -2.58, env.Data["lon"])
			}
		})
	}
}
