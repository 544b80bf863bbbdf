// Package config loads provider endpoints from the environment
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultWeatherURL  = "https://api.open-meteo.com/v1/forecast"
	DefaultGeocoderURL = "https://nominatim.openstreetmap.org"
	DefaultLanguage    = "en"
)

// Config holds provider endpoint settings
type Config struct {
	WeatherURL  string
	GeocoderURL string
	Language    string
}

// Load reads an optional .env file and then the process environment
func Load(files ...string) *Config {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file found, using system environment")
	}

	return &Config{
		WeatherURL:  strings.TrimRight(getEnv("GLOBE_WEATHER_URL", DefaultWeatherURL), "/"),
		GeocoderURL: strings.TrimRight(getEnv("GLOBE_GEOCODER_URL", DefaultGeocoderURL), "/"),
		Language:    getEnv("GLOBE_LANGUAGE", DefaultLanguage),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
