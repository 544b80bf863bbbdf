package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/globe-weather/internal/geocoding"
	"github.com/ngmaloney/globe-weather/internal/globe"
	"github.com/ngmaloney/globe-weather/internal/models"
	"github.com/ngmaloney/globe-weather/internal/openmeteo"
	"github.com/ngmaloney/globe-weather/internal/panel"
	"github.com/ngmaloney/globe-weather/internal/selection"
	"github.com/ngmaloney/globe-weather/internal/viewport"
)

// Fixed layout rows
const (
	helpRows        = 1 // key hints at the bottom
	hintRows        = 1 // "open menu" hint while the panel is hidden
	mobilePanelRows = 8 // collapsed panel on top of the globe
)

// Model represents the application's state
type Model struct {
	// Search
	searchInput textinput.Model
	spinner     spinner.Model

	// Dropdown cursor, reset whenever the dropdown opens
	cursor int

	policy    *viewport.Policy
	globe     *globe.Terminal
	panel     *panel.Machine
	selection *selection.Controller
}

// NewModel creates a new application model
func NewModel(geocoder geocoding.Geocoder, weather openmeteo.WeatherClient, land globe.LandSource) Model {
	ti := textinput.New()
	ti.Placeholder = "Search a city (e.g. Paris)..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = viewport.DesktopPanelCols - 8

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	policy := viewport.NewPolicy(viewport.DefaultCellWidthPx, viewport.DefaultCellHeightPx)
	view := globe.NewTerminal(land)

	return Model{
		searchInput: ti,
		spinner:     s,
		policy:      policy,
		globe:       view,
		panel:       panel.NewMachine(view),
		selection:   selection.NewController(geocoder, weather, view, policy),
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) isMobile() bool {
	return m.policy.State().IsMobile
}

// pending reports whether anything is still loading
func (m Model) pending() bool {
	if m.selection.Searching() {
		return true
	}
	sel, ok := m.selection.Selection()
	return ok && (sel.PlaceStatus == models.StatusPending || sel.WeatherStatus == models.StatusPending)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	m = model.(Model)
	m.syncGlobe()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		first := !m.policy.Sized()
		state, modeChanged := m.policy.Resize(msg.Width, msg.Height)
		if first {
			m.selection.InitialView()
		}
		if modeChanged {
			// the item list differs between layouts
			m.cursor = 0
			if m.panel.State().DropdownOpen && m.panel.GlobeHidden(state.IsMobile) {
				m.panel.ToggleDropdown(state.IsMobile)
			}
		}
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case globe.ClickMsg:
		m.searchInput.SetValue("")
		return m, tea.Batch(m.selection.SelectByCoordinate(msg.Coordinate), m.spinner.Tick)

	case selection.PlaceResolvedMsg, selection.WeatherFetchedMsg, selection.SearchResolvedMsg:
		return m, m.selection.Update(msg)

	case spinner.TickMsg:
		if !m.pending() {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	isMobile := m.isMobile()

	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// The open dropdown captures navigation keys
	if m.panel.State().DropdownOpen {
		items := m.panel.DropdownItems(isMobile)
		switch msg.Type {
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown:
			if m.cursor < len(items)-1 {
				m.cursor++
			}
			return m, nil
		case tea.KeyEnter:
			if m.cursor < len(items) {
				m.panel.SelectAction(items[m.cursor], isMobile)
			}
			return m, nil
		case tea.KeyEsc:
			m.panel.ToggleDropdown(isMobile)
			return m, nil
		}
	}

	switch msg.Type {
	case tea.KeyCtrlT:
		m.panel.ToggleDayMode()
		return m, nil

	case tea.KeyCtrlO:
		if !m.panel.Open() && m.panel.ToggleDropdown(isMobile) {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyCtrlE:
		if !m.panel.Collapse(isMobile) {
			m.panel.Expand(isMobile, m.selection.HasSelection())
		}
		return m, nil

	case tea.KeyEsc:
		m.panel.Collapse(isMobile)
		return m, nil

	case tea.KeyEnter:
		query := m.searchInput.Value()
		cmd = m.selection.SelectByQuery(query)
		if cmd == nil {
			return m, nil
		}
		m.searchInput.SetValue("")
		return m, tea.Batch(cmd, m.spinner.Tick)
	}

	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleMouse turns a left click on the globe into a ClickMsg
func (m Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	x, y, w, h := m.globeArea()
	col, row := msg.X-x, msg.Y-y
	if col < 0 || row < 0 || col >= w || row >= h {
		return nil
	}

	c, ok := m.globe.Unproject(col, row)
	if !ok {
		return nil
	}
	return clickGlobe(c)
}

// globeArea returns the globe's position and size in cells
func (m Model) globeArea() (x, y, w, h int) {
	cols, rows := m.policy.Cells()
	state := m.panel.State()
	isMobile := m.isMobile()

	switch {
	case m.panel.GlobeHidden(isMobile):
		return 0, 0, 0, 0
	case !state.Visible():
		y = hintRows
	case isMobile:
		y = mobilePanelRows
	default:
		x = viewport.DesktopPanelCols
	}

	w = max(cols-x, 0)
	h = max(rows-helpRows-y, 0)
	return x, y, w, h
}

// syncGlobe keeps the globe surface matched to the layout
func (m Model) syncGlobe() {
	if !m.policy.Sized() {
		return
	}
	_, _, w, h := m.globeArea()
	if gw, gh := m.globe.Size(); gw != w || gh != h {
		m.globe.Resize(w, h)
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.policy.Sized() {
		return "Loading..."
	}

	cols, rows := m.policy.Cells()
	state := m.panel.State()
	isMobile := m.isMobile()
	help := m.renderHelp()

	var body string
	switch {
	case !state.Visible():
		hint := mutedStyle.Render("Menu hidden • Ctrl+O: Open")
		body = lipgloss.JoinVertical(lipgloss.Left, hint, m.globe.View())

	case m.panel.GlobeHidden(isMobile):
		body = lipgloss.NewStyle().
			Width(cols).
			MaxHeight(rows - helpRows).
			Render(m.renderDetails(cols))

	case isMobile:
		top := lipgloss.NewStyle().
			Width(cols).
			Height(mobilePanelRows).
			MaxHeight(mobilePanelRows).
			Render(m.renderCollapsed())
		body = lipgloss.JoinVertical(lipgloss.Left, top, m.globe.View())

	default:
		side := panelStyle.
			Width(viewport.DesktopPanelCols).
			Height(rows - helpRows).
			MaxHeight(rows - helpRows).
			Render(m.renderDetails(viewport.DesktopPanelCols - 2))
		body = lipgloss.JoinHorizontal(lipgloss.Top, side, m.globe.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}
