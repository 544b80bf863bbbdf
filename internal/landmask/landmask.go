// Package landmask rasterizes land polygons into a coarse lat/lng grid
package landmask

import (
	"fmt"
	"log"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonas-p/go-shp"
)

// Grid resolution: one cell per degree
const (
	gridCols = 360
	gridRows = 180
)

// Point is a polygon vertex in degrees (X = longitude, Y = latitude)
type Point struct {
	Lng float64
	Lat float64
}

// Ring is a closed polygon boundary; outer rings and holes are treated alike
type Ring []Point

// Mask answers land/ocean queries on a 1° grid
type Mask struct {
	cells []bool
	rings int
}

// IsLand reports whether the grid cell containing (lat, lng) is land
func (m *Mask) IsLand(lat, lng float64) bool {
	if m == nil {
		return false
	}
	row := int(math.Floor(90 - lat))
	col := int(math.Floor(lng + 180))
	row = clamp(row, 0, gridRows-1)
	col = clamp(col, 0, gridCols-1)
	return m.cells[row*gridCols+col]
}

// Rings returns how many rings were rasterized
func (m *Mask) Rings() int {
	return m.rings
}

// Rasterize builds a mask with an even-odd fill over all rings, so holes
// punched by inner rings stay ocean.
func Rasterize(rings []Ring) *Mask {
	m := &Mask{cells: make([]bool, gridCols*gridRows)}

	for _, ring := range rings {
		if len(ring) < 3 {
			continue
		}
		m.fillRing(ring)
		m.rings++
	}

	return m
}

// fillRing toggles every cell whose centre lies inside ring (scanline)
func (m *Mask) fillRing(ring Ring) {
	minLat, maxLat := math.Inf(1), math.Inf(-1)
	for _, p := range ring {
		minLat = math.Min(minLat, p.Lat)
		maxLat = math.Max(maxLat, p.Lat)
	}

	firstRow := clamp(int(math.Floor(90-maxLat)), 0, gridRows-1)
	lastRow := clamp(int(math.Floor(90-minLat)), 0, gridRows-1)

	crossings := make([]float64, 0, 16)
	for row := firstRow; row <= lastRow; row++ {
		y := 90 - float64(row) - 0.5

		crossings = crossings[:0]
		for i := range ring {
			a := ring[i]
			b := ring[(i+1)%len(ring)]
			if (a.Lat > y) == (b.Lat > y) {
				continue
			}
			x := a.Lng + (y-a.Lat)*(b.Lng-a.Lng)/(b.Lat-a.Lat)
			crossings = append(crossings, x)
		}
		sort.Float64s(crossings)

		for i := 0; i+1 < len(crossings); i += 2 {
			m.toggleSpan(row, crossings[i], crossings[i+1])
		}
	}
}

// toggleSpan flips cells in row whose centre longitude falls in [west, east)
func (m *Mask) toggleSpan(row int, west, east float64) {
	first := int(math.Ceil(west + 180 - 0.5))
	last := int(math.Ceil(east+180-0.5)) - 1
	if first < 0 {
		first = 0
	}
	if last > gridCols-1 {
		last = gridCols - 1
	}
	for col := first; col <= last; col++ {
		idx := row*gridCols + col
		m.cells[idx] = !m.cells[idx]
	}
}

// Load reads every polygon of a shapefile (e.g. Natural Earth land) into a Mask
func Load(shapefilePath string) (*Mask, error) {
	if !strings.EqualFold(filepath.Ext(shapefilePath), ".shp") {
		return nil, fmt.Errorf("expected a .shp file, got %s", shapefilePath)
	}

	shape, err := shp.Open(shapefilePath)
	if err != nil {
		return nil, fmt.Errorf("opening shapefile: %w", err)
	}
	defer shape.Close()

	var rings []Ring
	skipped := 0
	for shape.Next() {
		_, p := shape.Shape()

		polygon, ok := p.(*shp.Polygon)
		if !ok {
			skipped++
			continue
		}

		// Split the flat point list into its parts
		for partIdx := 0; partIdx < len(polygon.Parts); partIdx++ {
			startIdx := int(polygon.Parts[partIdx])
			endIdx := len(polygon.Points)
			if partIdx+1 < len(polygon.Parts) {
				endIdx = int(polygon.Parts[partIdx+1])
			}

			ring := make(Ring, 0, endIdx-startIdx)
			for i := startIdx; i < endIdx; i++ {
				point := polygon.Points[i]
				ring = append(ring, Point{Lng: point.X, Lat: point.Y})
			}
			rings = append(rings, ring)
		}
	}

	if skipped > 0 {
		log.Printf("landmask: skipped %d non-polygon shapes in %s", skipped, shapefilePath)
	}
	if len(rings) == 0 {
		return nil, fmt.Errorf("no polygons found in %s", shapefilePath)
	}

	mask := Rasterize(rings)
	log.Printf("landmask: rasterized %d rings from %s", mask.Rings(), shapefilePath)
	return mask, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
