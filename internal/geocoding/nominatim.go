package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ngmaloney/globe-weather/internal/models"
	"golang.org/x/time/rate"
)

const (
	defaultNominatimURL = "https://nominatim.openstreetmap.org"
	userAgent           = "GlobeWeather/1.0 (github.com/ngmaloney/globe-weather)" // Required by Nominatim ToS
)

// Nominatim implements Geocoder against an OpenStreetMap Nominatim server
type Nominatim struct {
	baseURL    string
	language   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewNominatim creates a geocoder for baseURL (empty means the public server).
// Requests are limited to 1 per second as Nominatim's usage policy requires.
func NewNominatim(baseURL, language string) *Nominatim {
	if baseURL == "" {
		baseURL = defaultNominatimURL
	}
	return &Nominatim{
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: language,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// nominatimPlace represents an entry of the /search response
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// nominatimReverse represents the /reverse response.
// Points with nothing to resolve (open ocean) come back with only "error".
type nominatimReverse struct {
	DisplayName string   `json:"display_name"`
	Address     *address `json:"address"`
	Error       string   `json:"error"`
}

// Reverse resolves c to a place name, falling back to models.FallbackPlaceName
func (n *Nominatim) Reverse(ctx context.Context, c models.Coordinate) string {
	params := url.Values{}
	params.Add("lat", strconv.FormatFloat(c.Lat, 'f', -1, 64))
	params.Add("lon", strconv.FormatFloat(c.Lng, 'f', -1, 64))
	params.Add("format", "json")

	var resp nominatimReverse
	if err := n.get(ctx, "/reverse", params, &resp); err != nil {
		log.Printf("reverse geocoding %.4f,%.4f: %v", c.Lat, c.Lng, err)
		return models.FallbackPlaceName
	}

	return resp.Address.placeName()
}

// Forward looks up the single best match for a city query
func (n *Nominatim) Forward(ctx context.Context, query string) (*Match, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}

	params := url.Values{}
	params.Add("city", query)
	params.Add("format", "json")
	params.Add("limit", "1")

	var results []nominatimPlace
	if err := n.get(ctx, "/search", params, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, nil
	}

	result := results[0]

	lat, err := strconv.ParseFloat(strings.TrimSpace(result.Lat), 64)
	if err != nil {
		return nil, fmt.Errorf("parsing latitude %q: %w", result.Lat, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(result.Lon), 64)
	if err != nil {
		return nil, fmt.Errorf("parsing longitude %q: %w", result.Lon, err)
	}

	coord, err := models.NewCoordinate(lat, lon)
	if err != nil {
		return nil, fmt.Errorf("invalid coordinate for %q: %w", query, err)
	}

	return &Match{
		Coordinate:  coord,
		DisplayName: result.DisplayName,
	}, nil
}

// get performs a rate limited GET and decodes the JSON body into out
func (n *Nominatim) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait canceled: %w", err)
	}

	reqURL := fmt.Sprintf("%s%s?%s", n.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	// Set required User-Agent header (Nominatim ToS requirement)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if n.language != "" {
		req.Header.Set("Accept-Language", n.language)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("nominatim API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
