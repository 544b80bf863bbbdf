package models

import (
	"fmt"
	"math"
)

// Coordinate is a geographic point in decimal degrees
type Coordinate struct {
	Lat float64
	Lng float64
}

// NewCoordinate validates lat/lng ranges
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return Coordinate{}, fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return Coordinate{}, fmt.Errorf("longitude %v out of range [-180, 180]", lng)
	}
	return Coordinate{Lat: lat, Lng: lng}, nil
}

// Normalize clamps latitude to [-90, 90] and wraps longitude into [-180, 180]
func Normalize(lat, lng float64) Coordinate {
	lat = math.Max(-90, math.Min(90, lat))

	lng = math.Mod(lng+180, 360)
	if lng < 0 {
		lng += 360
	}
	lng -= 180
	// keep the eastern edge as +180 rather than folding it to -180
	if lng == -180 {
		lng = 180
	}

	return Coordinate{Lat: lat, Lng: lng}
}

// String renders the coordinate the way the panel shows it
func (c Coordinate) String() string {
	return fmt.Sprintf("Lat: %.2f | Lng: %.2f", c.Lat, c.Lng)
}
