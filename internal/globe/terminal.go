package globe

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/globe-weather/internal/models"
)

// LandSource tells land from ocean for the base texture
type LandSource interface {
	IsLand(lat, lng float64) bool
}

// referenceAltitude is the altitude at which the sphere fills most of the surface
const referenceAltitude = 2.5

// Terminal draws an orthographic globe into a grid of terminal cells.
// Cells are assumed twice as tall as they are wide.
type Terminal struct {
	land LandSource

	camera     Camera
	transition time.Duration
	markers    []Marker
	dayMode    bool

	width  int
	height int
}

// NewTerminal creates a terminal globe; land may be nil
func NewTerminal(land LandSource) *Terminal {
	return &Terminal{
		land:    land,
		camera:  Camera{Altitude: referenceAltitude},
		dayMode: true,
	}
}

// SetCamera implements Adapter. The terminal view jumps straight to the
// target; the transition is kept for inspection.
func (g *Terminal) SetCamera(view Camera, transition time.Duration) {
	if view.Altitude <= 0 {
		view.Altitude = referenceAltitude
	}
	g.camera = view
	g.transition = transition
}

// SetMarkers implements Adapter
func (g *Terminal) SetMarkers(markers []Marker) {
	g.markers = append([]Marker(nil), markers...)
}

// SetBaseTexture implements Adapter
func (g *Terminal) SetBaseTexture(dayMode bool) {
	g.dayMode = dayMode
}

// Resize implements Adapter
func (g *Terminal) Resize(width, height int) {
	g.width = max(width, 0)
	g.height = max(height, 0)
}

// Camera returns the current point of view and its requested transition
func (g *Terminal) Camera() (Camera, time.Duration) {
	return g.camera, g.transition
}

// Markers returns the markers currently drawn
func (g *Terminal) Markers() []Marker {
	return g.markers
}

// DayMode reports which base texture is active
func (g *Terminal) DayMode() bool {
	return g.dayMode
}

// Size returns the drawing area in cells
func (g *Terminal) Size() (width, height int) {
	return g.width, g.height
}

// radius returns the sphere radius in rows
func (g *Terminal) radius() float64 {
	fit := math.Min(float64(g.width)/4, float64(g.height)/2) * 0.9
	return fit * referenceAltitude / g.camera.Altitude
}

// Unproject converts a cell inside the drawing area to the coordinate under
// it. ok is false when the cell is off the sphere.
func (g *Terminal) Unproject(col, row int) (c models.Coordinate, ok bool) {
	r := g.radius()
	if r <= 0 || col < 0 || row < 0 || col >= g.width || row >= g.height {
		return models.Coordinate{}, false
	}

	x := (float64(col) + 0.5 - float64(g.width)/2) / (2 * r)
	y := (float64(g.height)/2 - (float64(row) + 0.5)) / r
	rho := math.Hypot(x, y)
	if rho > 1 {
		return models.Coordinate{}, false
	}

	lat0 := g.camera.Lat * math.Pi / 180
	lng0 := g.camera.Lng * math.Pi / 180
	if rho == 0 {
		return models.Normalize(g.camera.Lat, g.camera.Lng), true
	}

	cosC := math.Sqrt(1 - rho*rho)
	sinC := rho

	lat := math.Asin(cosC*math.Sin(lat0) + y*sinC*math.Cos(lat0)/rho)
	lng := lng0 + math.Atan2(x*sinC, rho*cosC*math.Cos(lat0)-y*sinC*math.Sin(lat0))

	return models.Normalize(lat*180/math.Pi, lng*180/math.Pi), true
}

// Project converts a coordinate to the cell it is drawn in. ok is false when
// the point faces away from the camera or falls outside the area.
func (g *Terminal) Project(c models.Coordinate) (col, row int, ok bool) {
	r := g.radius()
	if r <= 0 {
		return 0, 0, false
	}

	lat := c.Lat * math.Pi / 180
	lat0 := g.camera.Lat * math.Pi / 180
	dLng := (c.Lng - g.camera.Lng) * math.Pi / 180

	cosC := math.Sin(lat0)*math.Sin(lat) + math.Cos(lat0)*math.Cos(lat)*math.Cos(dLng)
	if cosC < 0 {
		return 0, 0, false
	}

	x := math.Cos(lat) * math.Sin(dLng)
	y := math.Cos(lat0)*math.Sin(lat) - math.Sin(lat0)*math.Cos(lat)*math.Cos(dLng)

	col = int(math.Floor(float64(g.width)/2 + x*2*r))
	row = int(math.Floor(float64(g.height)/2 - y*r))
	if col < 0 || row < 0 || col >= g.width || row >= g.height {
		return 0, 0, false
	}
	return col, row, true
}

// cellKind is what a cell shows
type cellKind int

const (
	cellSpace cellKind = iota
	cellOcean
	cellLand
	cellGrid
	cellRing
	cellMarker
)

// palette maps cell kinds to glyph and colour per texture
type palette struct {
	glyphs map[cellKind]string
	styles map[cellKind]lipgloss.Style
}

var (
	dayPalette = palette{
		glyphs: map[cellKind]string{
			cellSpace: " ", cellOcean: "~", cellLand: "#", cellGrid: "·", cellRing: "○", cellMarker: "◉",
		},
		styles: map[cellKind]lipgloss.Style{
			cellSpace:  lipgloss.NewStyle(),
			cellOcean:  lipgloss.NewStyle().Foreground(lipgloss.Color("#1E90FF")),
			cellLand:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6BCF7F")),
			cellGrid:   lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
			cellRing:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00C8FF")),
			cellMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("#00C8FF")).Bold(true),
		},
	}

	nightPalette = palette{
		glyphs: map[cellKind]string{
			cellSpace: " ", cellOcean: "·", cellLand: "*", cellGrid: "·", cellRing: "○", cellMarker: "◉",
		},
		styles: map[cellKind]lipgloss.Style{
			cellSpace:  lipgloss.NewStyle(),
			cellOcean:  lipgloss.NewStyle().Foreground(lipgloss.Color("#1B2A49")),
			cellLand:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD93D")),
			cellGrid:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4A90E2")),
			cellRing:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00C8FF")),
			cellMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("#00C8FF")).Bold(true),
		},
	}
)

// View renders the globe as width x height cells
func (g *Terminal) View() string {
	if g.width == 0 || g.height == 0 {
		return ""
	}

	pal := dayPalette
	if !g.dayMode {
		pal = nightPalette
	}

	grid := g.cells()

	var b strings.Builder
	for row := 0; row < g.height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		// render runs of equal cells with one style call
		start := 0
		for col := 1; col <= g.width; col++ {
			if col < g.width && grid[row][col] == grid[row][start] {
				continue
			}
			kind := grid[row][start]
			b.WriteString(pal.styles[kind].Render(strings.Repeat(pal.glyphs[kind], col-start)))
			start = col
		}
	}
	return b.String()
}

// cells classifies every cell of the drawing area
func (g *Terminal) cells() [][]cellKind {
	grid := make([][]cellKind, g.height)
	degPerRow := 180 / math.Pi / math.Max(g.radius(), 1)

	for row := range grid {
		grid[row] = make([]cellKind, g.width)
		for col := range grid[row] {
			c, ok := g.Unproject(col, row)
			if !ok {
				continue
			}
			grid[row][col] = g.surfaceKind(c, degPerRow)
			if ring := g.ringKind(c, degPerRow); ring != cellSpace {
				grid[row][col] = ring
			}
		}
	}

	for _, m := range g.markers {
		if col, row, ok := g.Project(models.Coordinate{Lat: m.Lat, Lng: m.Lng}); ok {
			grid[row][col] = cellMarker
		}
	}
	return grid
}

// surfaceKind picks land/ocean, or a 30° graticule when no land data exists
func (g *Terminal) surfaceKind(c models.Coordinate, degPerRow float64) cellKind {
	if g.land != nil {
		if g.land.IsLand(c.Lat, c.Lng) {
			return cellLand
		}
		return cellOcean
	}

	tol := degPerRow / 2
	if nearMultiple(c.Lat, 30, tol) || nearMultiple(c.Lng, 30, tol/math.Max(math.Cos(c.Lat*math.Pi/180), 0.2)) {
		return cellGrid
	}
	return cellOcean
}

// ringKind reports whether c lies on the outer edge of a marker ring
func (g *Terminal) ringKind(c models.Coordinate, degPerRow float64) cellKind {
	band := math.Max(degPerRow/2, 0.75)
	for _, m := range g.markers {
		d := angularDistance(c.Lat, c.Lng, m.Lat, m.Lng)
		if math.Abs(d-m.Radius) <= band {
			return cellRing
		}
	}
	return cellSpace
}

func nearMultiple(v, step, tol float64) bool {
	r := math.Mod(math.Abs(v), step)
	return r <= tol || step-r <= tol
}

// angularDistance is the great-circle distance between two points in degrees
func angularDistance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	// Haversine formula
	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return c * 180 / math.Pi
}
