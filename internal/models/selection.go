package models

// FallbackPlaceName is shown when no administrative name resolves for a point
const FallbackPlaceName = "GPS coordinates"

// SliceStatus tracks one asynchronously filled part of a Selection.
// The place name never fails (it falls back), so only weather becomes
// StatusUnavailable.
type SliceStatus int

const (
	StatusPending     SliceStatus = iota // Request in flight
	StatusLoaded                         // Value present
	StatusUnavailable                    // Weather request failed, no data
)

// Selection is what the user is currently looking at.
// A new click or search replaces it wholesale.
type Selection struct {
	Seq        uint64
	Coordinate Coordinate

	PlaceName   string
	PlaceStatus SliceStatus

	Weather       *WeatherSnapshot
	Forecast      Forecast
	WeatherStatus SliceStatus
}

// NewSelection starts a selection with both slices pending
func NewSelection(seq uint64, c Coordinate) *Selection {
	return &Selection{
		Seq:           seq,
		Coordinate:    c,
		PlaceStatus:   StatusPending,
		WeatherStatus: StatusPending,
	}
}
