package models

import (
	"math"
	"testing"
)

func TestNewCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{"paris", 48.8566, 2.3522, false},
		{"north pole", 90, 0, false},
		{"antimeridian", -12, -180, false},
		{"latitude too high", 90.5, 0, true},
		{"longitude too low", 0, -181, true},
		{"nan", math.NaN(), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCoordinate(tt.lat, tt.lng)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewCoordinate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && (c.Lat != tt.lat || c.Lng != tt.lng) {
				t.Errorf("NewCoordinate() = %+v", c)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantLat float64
		wantLng float64
	}{
		{"unchanged", 10, 20, 10, 20},
		{"clamp south", -120, 0, -90, 0},
		{"wrap east", 0, 190, 0, -170},
		{"wrap west", 0, -190, 0, 170},
		{"edge", 0, 180, 0, 180},
		{"full turn", 5, 360 + 45, 5, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Normalize(tt.lat, tt.lng)
			if math.Abs(c.Lat-tt.wantLat) > 1e-9 || math.Abs(c.Lng-tt.wantLng) > 1e-9 {
				t.Errorf("Normalize(%v, %v) = %+v, want {%v %v}", tt.lat, tt.lng, c, tt.wantLat, tt.wantLng)
			}
		})
	}
}

func TestCoordinate_String(t *testing.T) {
	c := Coordinate{Lat: 48.8566, Lng: 2.3522}
	if got := c.String(); got != "Lat: 48.86 | Lng: 2.35" {
		t.Errorf("String() = %q", got)
	}
}
