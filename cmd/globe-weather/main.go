package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/globe-weather/internal/config"
	"github.com/ngmaloney/globe-weather/internal/geocoding"
	"github.com/ngmaloney/globe-weather/internal/globe"
	"github.com/ngmaloney/globe-weather/internal/landmask"
	"github.com/ngmaloney/globe-weather/internal/openmeteo"
	"github.com/ngmaloney/globe-weather/internal/ui"
)

func main() {
	landPath := flag.String("land", "", "Path to a land polygon shapefile (e.g. ne_110m_land.shp)")
	debugPath := flag.String("debug", "", "Write debug logs to this file")
	flag.Parse()

	// The terminal belongs to the UI, so logs go to a file or nowhere
	if *debugPath != "" {
		f, err := tea.LogToFile(*debugPath, "globe-weather")
		if err != nil {
			fmt.Printf("Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg := config.Load()

	var land globe.LandSource
	if *landPath != "" {
		mask, err := landmask.Load(*landPath)
		if err != nil {
			fmt.Printf("Error loading land shapefile: %v\n", err)
			os.Exit(1)
		}
		land = mask
	}

	model := ui.NewModel(
		geocoding.NewNominatim(cfg.GeocoderURL, cfg.Language),
		openmeteo.NewClient(cfg.WeatherURL),
		land,
	)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
