package selection

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/globe-weather/internal/geocoding"
	"github.com/ngmaloney/globe-weather/internal/models"
	"github.com/ngmaloney/globe-weather/internal/openmeteo"
)

const (
	geocodeTimeout = 10 * time.Second
	weatherTimeout = 30 * time.Second
)

// reverseGeocode resolves the place name in the background
func reverseGeocode(geocoder geocoding.Geocoder, seq uint64, c models.Coordinate) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), geocodeTimeout)
		defer cancel()

		return PlaceResolvedMsg{Seq: seq, Name: geocoder.Reverse(ctx, c)}
	}
}

// forwardGeocode looks up a search query in the background
func forwardGeocode(geocoder geocoding.Geocoder, token uint64, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), geocodeTimeout)
		defer cancel()

		match, err := geocoder.Forward(ctx, query)
		return SearchResolvedMsg{Token: token, Query: query, Match: match, Err: err}
	}
}

// fetchWeather fetches current conditions and forecast in the background
func fetchWeather(client openmeteo.WeatherClient, seq uint64, c models.Coordinate) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), weatherTimeout)
		defer cancel()

		weather, forecast, err := client.FetchCurrentAndForecast(ctx, c)
		return WeatherFetchedMsg{
			Seq:      seq,
			Weather:  weather,
			Forecast: forecast,
			Err:      err,
		}
	}
}
