// Package globe defines the command surface of the globe view and a
// terminal implementation of it.
package globe

import (
	"time"

	"github.com/ngmaloney/globe-weather/internal/models"
)

// Camera is a point of view above the globe; Altitude is in globe radii
type Camera struct {
	Lat      float64
	Lng      float64
	Altitude float64
}

// Marker is an animated ring drawn around a point
type Marker struct {
	Lat    float64
	Lng    float64
	Radius float64       // maximum ring radius in degrees
	Speed  float64       // propagation speed in degrees per second
	Period time.Duration // time between ring emissions
	Color  string
}

// Adapter receives view commands. It never reads controller state back.
type Adapter interface {
	SetCamera(view Camera, transition time.Duration)
	SetMarkers(markers []Marker)
	SetBaseTexture(dayMode bool)
	Resize(width, height int)
}

// ClickMsg is emitted when the user clicks a point on the globe
type ClickMsg struct {
	Coordinate models.Coordinate
}

// Selection ring defaults
const (
	RingRadius = 10
	RingSpeed  = 2
	RingPeriod = 1000 * time.Millisecond
	RingColor  = "rgba(0, 200, 255, 0.9)"
)

// SelectionRing returns the marker drawn at the selected point
func SelectionRing(c models.Coordinate) Marker {
	return Marker{
		Lat:    c.Lat,
		Lng:    c.Lng,
		Radius: RingRadius,
		Speed:  RingSpeed,
		Period: RingPeriod,
		Color:  RingColor,
	}
}
