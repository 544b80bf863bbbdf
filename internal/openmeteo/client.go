// Package openmeteo fetches current conditions and daily forecasts from Open-Meteo
package openmeteo

import (
	"context"
	"errors"

	"github.com/ngmaloney/globe-weather/internal/models"
)

var (
	// ErrMissingField is returned when a required value is absent or null
	ErrMissingField = errors.New("missing field in weather response")

	// ErrShapeMismatch is returned when the daily arrays are not index aligned
	ErrShapeMismatch = errors.New("daily arrays have mismatched lengths")

	// ErrIncompleteForecast is returned when fewer than models.ForecastDays days come back
	ErrIncompleteForecast = errors.New("incomplete daily forecast")
)

// WeatherClient defines the interface for fetching weather for a coordinate
type WeatherClient interface {
	// FetchCurrentAndForecast retrieves current conditions and exactly
	// models.ForecastDays daily entries in one request.
	FetchCurrentAndForecast(ctx context.Context, c models.Coordinate) (*models.WeatherSnapshot, models.Forecast, error)
}
