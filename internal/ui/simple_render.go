package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/ngmaloney/globe-weather/internal/models"
)

// renderConditions renders current conditions one per line
func renderConditions(w *models.WeatherSnapshot) string {
	if w == nil {
		return mutedStyle.Render("No data")
	}

	lines := []string{
		labelStyle.Render("Temperature: ") + valueStyle.Render(formatTemperature(w.TemperatureC)),
		labelStyle.Render("Wind: ") + valueStyle.Render(fmt.Sprintf("%.1f km/h", w.WindKph)),
		labelStyle.Render("Precipitation: ") + valueStyle.Render(fmt.Sprintf("%.1f mm", w.PrecipitationMm)),
	}
	return strings.Join(lines, "\n")
}

// renderForecast renders one line per day: label, max, min, precipitation
func renderForecast(forecast models.Forecast) string {
	if len(forecast) == 0 {
		return mutedStyle.Render("No data")
	}

	lines := make([]string, 0, len(forecast))
	for i, day := range forecast {
		lines = append(lines, fmt.Sprintf("%-6s %s %s %s",
			dayLabel(i, day),
			maxTempStyle.Render(fmt.Sprintf("%4d°", roundInt(day.TempMaxC))),
			minTempStyle.Render(fmt.Sprintf("%4d°", roundInt(day.TempMinC))),
			rainStyle.Render(fmt.Sprintf("%3dmm", roundInt(day.PrecipitationMm))),
		))
	}
	return strings.Join(lines, "\n")
}

// dayLabel names the first forecast day "Today" and the rest by weekday
func dayLabel(i int, day models.ForecastDay) string {
	if i == 0 {
		return "Today"
	}
	return day.Date.Format("Mon")
}

func formatTemperature(c float64) string {
	return fmt.Sprintf("%.1f °C", c)
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
