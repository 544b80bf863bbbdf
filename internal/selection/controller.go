// Package selection owns the selected point and keeps its place name,
// weather and the globe view consistent with the latest user choice.
package selection

import (
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/globe-weather/internal/geocoding"
	"github.com/ngmaloney/globe-weather/internal/globe"
	"github.com/ngmaloney/globe-weather/internal/models"
	"github.com/ngmaloney/globe-weather/internal/openmeteo"
	"github.com/ngmaloney/globe-weather/internal/viewport"
)

// CameraTransition is the duration of the camera move to a new selection
const CameraTransition = time.Second

// Layout supplies the current viewport classification
type Layout interface {
	State() viewport.State
}

// Controller orchestrates lookups for the current Selection.
// All methods must be called from the bubbletea update loop; the commands
// it returns only talk to the clients and report back through messages.
type Controller struct {
	geocoder geocoding.Geocoder
	weather  openmeteo.WeatherClient
	globe    globe.Adapter
	layout   Layout

	seq     uint64
	current *models.Selection

	// search bookkeeping
	searchToken   uint64
	searchSeq     uint64
	searching     bool
	notFound      string
	searchFailure error
}

// NewController wires the controller to its clients, globe and layout
func NewController(geocoder geocoding.Geocoder, weather openmeteo.WeatherClient, adapter globe.Adapter, layout Layout) *Controller {
	return &Controller{
		geocoder: geocoder,
		weather:  weather,
		globe:    adapter,
		layout:   layout,
	}
}

// Selection returns a copy of the current selection; ok is false before the
// first click or search.
func (c *Controller) Selection() (sel models.Selection, ok bool) {
	if c.current == nil {
		return models.Selection{}, false
	}
	return *c.current, true
}

// HasSelection reports whether anything has been selected yet
func (c *Controller) HasSelection() bool {
	return c.current != nil
}

// Searching reports whether the latest search is still in flight
func (c *Controller) Searching() bool {
	return c.searching
}

// NotFound returns the last query that had no match, if the selection has
// not changed since.
func (c *Controller) NotFound() string {
	return c.notFound
}

// SearchFailure returns the transport error of the last search, if any
func (c *Controller) SearchFailure() error {
	return c.searchFailure
}

func (c *Controller) isMobile() bool {
	if c.layout == nil {
		return false
	}
	return c.layout.State().IsMobile
}

// InitialView points the camera at the starting position for the layout
func (c *Controller) InitialView() {
	offset := viewport.CameraOffset(c.isMobile(), true)
	target := models.Normalize(offset.Lat, offset.Lng)
	c.globe.SetCamera(globe.Camera{Lat: target.Lat, Lng: target.Lng, Altitude: offset.Altitude}, 0)
}

// SelectByCoordinate replaces the selection with coord and starts the
// reverse geocoding and weather lookups.
func (c *Controller) SelectByCoordinate(coord models.Coordinate) tea.Cmd {
	seq := c.begin(coord)
	return tea.Batch(
		reverseGeocode(c.geocoder, seq, coord),
		fetchWeather(c.weather, seq, coord),
	)
}

// SelectByQuery starts a forward lookup for text. Blank text does nothing.
func (c *Controller) SelectByQuery(text string) tea.Cmd {
	query := strings.TrimSpace(text)
	if query == "" {
		return nil
	}

	c.searchToken++
	c.searchSeq = c.seq
	c.searching = true
	c.notFound = ""
	c.searchFailure = nil

	return forwardGeocode(c.geocoder, c.searchToken, query)
}

// Update applies lookup results. Messages it does not own return nil.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SearchResolvedMsg:
		return c.handleSearch(msg)

	case PlaceResolvedMsg:
		if !c.isCurrent(msg.Seq) {
			return nil
		}
		name := msg.Name
		if name == "" {
			name = models.FallbackPlaceName
		}
		c.current.PlaceName = name
		c.current.PlaceStatus = models.StatusLoaded
		return nil

	case WeatherFetchedMsg:
		if !c.isCurrent(msg.Seq) {
			return nil
		}
		if msg.Err != nil || msg.Weather == nil || !msg.Forecast.Complete() {
			if msg.Err != nil {
				log.Printf("weather for %.4f,%.4f: %v", c.current.Coordinate.Lat, c.current.Coordinate.Lng, msg.Err)
			}
			c.current.Weather = nil
			c.current.Forecast = nil
			c.current.WeatherStatus = models.StatusUnavailable
			return nil
		}
		weather := *msg.Weather
		c.current.Weather = &weather
		c.current.Forecast = msg.Forecast
		c.current.WeatherStatus = models.StatusLoaded
		return nil
	}

	return nil
}

// handleSearch turns a forward lookup into a selection. Results of a search
// that was superseded by a newer search or a click are dropped.
func (c *Controller) handleSearch(msg SearchResolvedMsg) tea.Cmd {
	if msg.Token != c.searchToken || !c.searching {
		return nil
	}
	c.searching = false

	if c.seq != c.searchSeq {
		return nil
	}

	if msg.Err != nil {
		log.Printf("searching %q: %v", msg.Query, msg.Err)
		c.searchFailure = msg.Err
		return nil
	}
	if msg.Match == nil {
		c.notFound = msg.Query
		return nil
	}

	seq := c.begin(msg.Match.Coordinate)
	c.current.PlaceName = msg.Match.DisplayName
	if c.current.PlaceName == "" {
		c.current.PlaceName = models.FallbackPlaceName
	}
	c.current.PlaceStatus = models.StatusLoaded

	return fetchWeather(c.weather, seq, msg.Match.Coordinate)
}

// begin supersedes the current selection and moves the globe to coord
func (c *Controller) begin(coord models.Coordinate) uint64 {
	c.seq++
	c.current = models.NewSelection(c.seq, coord)
	c.searching = false
	c.notFound = ""
	c.searchFailure = nil

	offset := viewport.CameraOffset(c.isMobile(), false)
	target := models.Normalize(coord.Lat+offset.Lat, coord.Lng+offset.Lng)
	c.globe.SetCamera(globe.Camera{Lat: target.Lat, Lng: target.Lng, Altitude: offset.Altitude}, CameraTransition)
	c.globe.SetMarkers([]globe.Marker{globe.SelectionRing(coord)})

	return c.seq
}

func (c *Controller) isCurrent(seq uint64) bool {
	return c.current != nil && c.current.Seq == seq
}
