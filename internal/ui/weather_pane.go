package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/globe-weather/internal/models"
	"github.com/ngmaloney/globe-weather/internal/panel"
)

// renderDetails renders the full panel: search, place, current weather and
// the 7-day forecast.
func (m Model) renderDetails(width int) string {
	sections := m.renderHeader()

	sel, ok := m.selection.Selection()
	if !ok {
		sections = append(sections, "", mutedStyle.Render("Click the globe or search a city"))
		return lipgloss.NewStyle().Width(width).Render(strings.Join(sections, "\n"))
	}

	sections = append(sections,
		"",
		valueStyle.Render(sel.Coordinate.String()),
		m.renderPlace(sel),
		sectionHeaderStyle.Render("CURRENT"),
		m.renderCurrent(sel),
	)

	if sel.WeatherStatus == models.StatusLoaded {
		sections = append(sections,
			sectionHeaderStyle.Render("7-DAY FORECAST"),
			renderForecast(sel.Forecast),
		)
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Join(sections, "\n"))
}

// renderCollapsed renders the compact mobile panel: temperature only
func (m Model) renderCollapsed() string {
	sections := m.renderHeader()

	sel, ok := m.selection.Selection()
	if !ok {
		sections = append(sections, mutedStyle.Render("Tap the globe or search a city"))
		return strings.Join(sections, "\n")
	}

	sections = append(sections, m.renderPlace(sel), m.renderTemperature(sel))
	if !m.panel.State().DropdownOpen {
		sections = append(sections, helpStyle.Render("Ctrl+E: More"))
	}

	return strings.Join(sections, "\n")
}

// renderHeader renders the parts shared by both panel sizes
func (m Model) renderHeader() []string {
	sections := []string{
		titleStyle.Render("🌍 Globe Weather"),
		m.searchInput.View(),
	}

	if notice := m.renderSearchNotice(); notice != "" {
		sections = append(sections, notice)
	}
	if m.panel.State().DropdownOpen {
		sections = append(sections, m.renderDropdown())
	}

	return sections
}

// renderSearchNotice reports a search in flight, a miss or a failure
func (m Model) renderSearchNotice() string {
	switch {
	case m.selection.Searching():
		return m.spinner.View() + " " + mutedStyle.Render("Searching...")
	case m.selection.NotFound() != "":
		return errorStyle.Render(fmt.Sprintf("✗ No match for %q", m.selection.NotFound()))
	case m.selection.SearchFailure() != nil:
		return errorStyle.Render("✗ Search unavailable, try again")
	}
	return ""
}

// renderDropdown renders the options dropdown with the cursor
func (m Model) renderDropdown() string {
	state := m.panel.State()
	items := m.panel.DropdownItems(m.isMobile())

	lines := make([]string, 0, len(items))
	for i, item := range items {
		if i == m.cursor {
			lines = append(lines, selectedItemStyle.Render("> "+item.Label(state)))
		} else {
			lines = append(lines, itemStyle.Render(item.Label(state)))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPlace(sel models.Selection) string {
	switch sel.PlaceStatus {
	case models.StatusPending:
		return m.spinner.View() + " " + mutedStyle.Render("Locating...")
	}
	return placeStyle.Render("📍 " + sel.PlaceName)
}

func (m Model) renderTemperature(sel models.Selection) string {
	switch sel.WeatherStatus {
	case models.StatusPending:
		return m.spinner.View() + " " + mutedStyle.Render("Fetching weather...")
	case models.StatusUnavailable:
		return mutedStyle.Render("No data")
	}
	return labelStyle.Render("Temperature: ") + valueStyle.Render(formatTemperature(sel.Weather.TemperatureC))
}

// renderCurrent renders temperature, wind and precipitation
func (m Model) renderCurrent(sel models.Selection) string {
	if sel.WeatherStatus != models.StatusLoaded {
		return m.renderTemperature(sel)
	}
	return renderConditions(sel.Weather)
}

// renderHelp renders the key hints for the current layout
func (m Model) renderHelp() string {
	state := m.panel.State()
	isMobile := m.isMobile()

	keys := []string{"Enter: Search", "Click: Select"}
	if !state.Visible() {
		keys = append(keys, "Ctrl+O: Open menu")
	} else {
		keys = append(keys, "Ctrl+O: Options")
	}
	if !isMobile {
		keys = append(keys, "Ctrl+T: "+panel.ActionToggleDayMode.Label(state))
	}
	if isMobile && state.Expanded() {
		keys = append(keys, "Ctrl+E/Esc: Less")
	} else if isMobile && state.Visible() && m.selection.HasSelection() {
		keys = append(keys, "Ctrl+E: More")
	}
	keys = append(keys, "Ctrl+C: Quit")

	return helpStyle.Render(strings.Join(keys, " • "))
}
