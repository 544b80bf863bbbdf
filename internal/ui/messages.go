package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/globe-weather/internal/globe"
	"github.com/ngmaloney/globe-weather/internal/models"
)

// clickGlobe reports a click on the globe surface as a message so it goes
// through the same path as any other selection.
func clickGlobe(c models.Coordinate) tea.Cmd {
	return func() tea.Msg {
		return globe.ClickMsg{Coordinate: c}
	}
}
