package geocoding

import (
	"context"

	"github.com/ngmaloney/globe-weather/internal/models"
)

// Geocoder resolves between coordinates and place names
type Geocoder interface {
	// Reverse returns the most specific administrative name for c.
	// It never fails: unresolvable points and request errors yield
	// models.FallbackPlaceName.
	Reverse(ctx context.Context, c models.Coordinate) string

	// Forward returns the best match for a free-text city query, or nil
	// when the provider has no match.
	Forward(ctx context.Context, query string) (*Match, error)
}

// Match is a forward geocoding result
type Match struct {
	Coordinate  models.Coordinate
	DisplayName string
}

// address holds the administrative keys we read from a reverse lookup
type address struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	Country string `json:"country"`
}

// placeName picks city, town, village, then country
func (a *address) placeName() string {
	if a == nil {
		return models.FallbackPlaceName
	}
	for _, name := range []string{a.City, a.Town, a.Village, a.Country} {
		if name != "" {
			return name
		}
	}
	return models.FallbackPlaceName
}
