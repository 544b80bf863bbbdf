package models

import "time"

// ForecastDays is the number of daily entries in a complete forecast
const ForecastDays = 7

// WeatherSnapshot represents current conditions at a coordinate.
// All fields come from the same provider response.
type WeatherSnapshot struct {
	TemperatureC    float64 // Celsius
	WindKph         float64 // km/h at 10 m
	PrecipitationMm float64 // mm
}

// ForecastDay represents a single day of the daily forecast
type ForecastDay struct {
	Date            time.Time // local calendar date at the coordinate
	TempMaxC        float64
	TempMinC        float64
	PrecipitationMm float64
}

// Forecast is an ordered daily series, index 0 being the day of the fetch.
// A Forecast is either empty or exactly ForecastDays long.
type Forecast []ForecastDay

// Complete reports whether the forecast holds a full series
func (f Forecast) Complete() bool {
	return len(f) == ForecastDays
}
