package selection

import (
	"github.com/ngmaloney/globe-weather/internal/geocoding"
	"github.com/ngmaloney/globe-weather/internal/models"
)

// Message types for async lookups. Seq ties a response to the selection
// that requested it.

// PlaceResolvedMsg is sent when reverse geocoding completes
type PlaceResolvedMsg struct {
	Seq  uint64
	Name string
}

// WeatherFetchedMsg is sent when the weather request completes
type WeatherFetchedMsg struct {
	Seq      uint64
	Weather  *models.WeatherSnapshot
	Forecast models.Forecast
	Err      error
}

// SearchResolvedMsg is sent when a forward lookup completes
type SearchResolvedMsg struct {
	Token uint64
	Query string
	Match *geocoding.Match
	Err   error
}
