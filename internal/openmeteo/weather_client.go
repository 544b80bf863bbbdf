package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ngmaloney/globe-weather/internal/models"
)

const (
	defaultBaseURL = "https://api.open-meteo.com/v1/forecast"
	dateLayout     = "2006-01-02"
)

// Client implements WeatherClient using the Open-Meteo forecast API
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new Open-Meteo client; empty baseURL uses the public API
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: "GlobeWeather/1.0 (github.com/ngmaloney/globe-weather)",
	}
}

// FetchCurrentAndForecast retrieves current conditions and the 7-day forecast
func (c *Client) FetchCurrentAndForecast(ctx context.Context, coord models.Coordinate) (*models.WeatherSnapshot, models.Forecast, error) {
	params := url.Values{}
	params.Add("latitude", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	params.Add("longitude", strconv.FormatFloat(coord.Lng, 'f', -1, 64))
	params.Add("current", "temperature_2m,precipitation,wind_speed_10m")
	params.Add("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum")
	params.Add("timezone", "auto")
	params.Add("forecast_days", strconv.Itoa(models.ForecastDays))

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var forecastResp forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&forecastResp); err != nil {
		return nil, nil, fmt.Errorf("failed to decode response: %w", err)
	}

	snapshot, err := forecastResp.Current.snapshot()
	if err != nil {
		return nil, nil, err
	}

	forecast, err := forecastResp.Daily.forecast()
	if err != nil {
		return nil, nil, err
	}

	return snapshot, forecast, nil
}

// Internal types for Open-Meteo API responses.
// Values are pointers so a JSON null is distinguishable from zero.

type forecastResponse struct {
	Timezone string       `json:"timezone"`
	Current  currentBlock `json:"current"`
	Daily    dailyBlock   `json:"daily"`
}

type currentBlock struct {
	Time          string   `json:"time"`
	Temperature   *float64 `json:"temperature_2m"`
	Precipitation *float64 `json:"precipitation"`
	WindSpeed     *float64 `json:"wind_speed_10m"`
}

type dailyBlock struct {
	Time             []string   `json:"time"`
	TemperatureMax   []*float64 `json:"temperature_2m_max"`
	TemperatureMin   []*float64 `json:"temperature_2m_min"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
}

// snapshot converts the current block, rejecting absent values
func (b currentBlock) snapshot() (*models.WeatherSnapshot, error) {
	switch {
	case b.Temperature == nil:
		return nil, fmt.Errorf("current.temperature_2m: %w", ErrMissingField)
	case b.WindSpeed == nil:
		return nil, fmt.Errorf("current.wind_speed_10m: %w", ErrMissingField)
	case b.Precipitation == nil:
		return nil, fmt.Errorf("current.precipitation: %w", ErrMissingField)
	}

	return &models.WeatherSnapshot{
		TemperatureC:    *b.Temperature,
		WindKph:         *b.WindSpeed,
		PrecipitationMm: *b.Precipitation,
	}, nil
}

// forecast maps the parallel daily arrays positionally into ForecastDays
func (b dailyBlock) forecast() (models.Forecast, error) {
	n := len(b.Time)
	if len(b.TemperatureMax) != n || len(b.TemperatureMin) != n || len(b.PrecipitationSum) != n {
		return nil, fmt.Errorf("%w: time=%d max=%d min=%d precip=%d", ErrShapeMismatch,
			n, len(b.TemperatureMax), len(b.TemperatureMin), len(b.PrecipitationSum))
	}
	if n < models.ForecastDays {
		return nil, fmt.Errorf("%w: got %d days, want %d", ErrIncompleteForecast, n, models.ForecastDays)
	}

	forecast := make(models.Forecast, 0, models.ForecastDays)
	for i := 0; i < models.ForecastDays; i++ {
		date, err := time.Parse(dateLayout, b.Time[i])
		if err != nil {
			return nil, fmt.Errorf("parsing daily.time[%d]: %w", i, err)
		}
		if b.TemperatureMax[i] == nil || b.TemperatureMin[i] == nil || b.PrecipitationSum[i] == nil {
			return nil, fmt.Errorf("daily values for %s: %w", b.Time[i], ErrMissingField)
		}

		forecast = append(forecast, models.ForecastDay{
			Date:            date,
			TempMaxC:        *b.TemperatureMax[i],
			TempMinC:        *b.TemperatureMin[i],
			PrecipitationMm: *b.PrecipitationSum[i],
		})
	}

	return forecast, nil
}
