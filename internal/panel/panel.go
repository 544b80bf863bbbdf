// Package panel holds the visibility, expansion and option state of the weather panel
package panel

// Visibility is the panel's place in the open/collapse state machine
type Visibility int

const (
	Hidden           Visibility = iota // Only the reopen control is shown
	VisibleCollapsed                   // Compact panel (full panel on desktop)
	VisibleExpanded                    // Full screen details, mobile only
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case VisibleCollapsed:
		return "collapsed"
	case VisibleExpanded:
		return "expanded"
	}
	return "unknown"
}

// State is the panel's full state. DropdownOpen and DayMode are independent
// of Visibility.
type State struct {
	Visibility   Visibility
	DropdownOpen bool
	DayMode      bool
}

// Visible reports whether the panel is shown
func (s State) Visible() bool {
	return s.Visibility != Hidden
}

// Expanded reports the expanded flag; only meaningful on mobile
func (s State) Expanded() bool {
	return s.Visibility == VisibleExpanded
}

// Action is an entry of the options dropdown
type Action int

const (
	ActionToggleDayMode Action = iota
	ActionCloseMenu
)

// Label returns the text shown for the action given the current state
func (a Action) Label(s State) string {
	switch a {
	case ActionToggleDayMode:
		if s.DayMode {
			return "Night mode"
		}
		return "Day mode"
	case ActionCloseMenu:
		return "Close menu"
	}
	return ""
}

// TextureSetter receives the base texture command when day mode changes
type TextureSetter interface {
	SetBaseTexture(dayMode bool)
}

// Machine owns the panel State
type Machine struct {
	state   State
	texture TextureSetter
}

// NewMachine returns a machine in the initial state: visible and
// collapsed, dropdown closed, day mode.
func NewMachine(texture TextureSetter) *Machine {
	return &Machine{
		state: State{
			Visibility: VisibleCollapsed,
			DayMode:    true,
		},
		texture: texture,
	}
}

// State returns a copy of the current state
func (m *Machine) State() State {
	return m.state
}

// Open shows a hidden panel
func (m *Machine) Open() bool {
	if m.state.Visibility != Hidden {
		return false
	}
	m.state.Visibility = VisibleCollapsed
	return true
}

// Close hides the panel and its dropdown. An expanded panel must be
// collapsed first on mobile; on desktop expanded and collapsed look the
// same, so both close.
func (m *Machine) Close(isMobile bool) bool {
	switch m.state.Visibility {
	case VisibleCollapsed:
	case VisibleExpanded:
		if isMobile {
			return false
		}
	default:
		return false
	}
	m.state.Visibility = Hidden
	m.state.DropdownOpen = false
	return true
}

// Expand opens the detailed view. Mobile only, and only once something is
// selected.
func (m *Machine) Expand(isMobile, hasSelection bool) bool {
	if !isMobile || !hasSelection || m.state.Visibility != VisibleCollapsed {
		return false
	}
	m.state.Visibility = VisibleExpanded
	m.state.DropdownOpen = false
	return true
}

// Collapse returns from the detailed view. Mobile only.
func (m *Machine) Collapse(isMobile bool) bool {
	if !isMobile || m.state.Visibility != VisibleExpanded {
		return false
	}
	m.state.Visibility = VisibleCollapsed
	return true
}

// ToggleDropdown opens or closes the options dropdown of a visible panel.
// The expanded mobile panel has no dropdown, so it can only be closed there.
func (m *Machine) ToggleDropdown(isMobile bool) bool {
	if !m.state.Visible() {
		return false
	}
	if !m.state.DropdownOpen && isMobile && m.state.Visibility == VisibleExpanded {
		return false
	}
	m.state.DropdownOpen = !m.state.DropdownOpen
	return true
}

// SelectAction closes the dropdown after one of its items is chosen and
// applies the action.
func (m *Machine) SelectAction(a Action, isMobile bool) bool {
	if !m.state.DropdownOpen {
		return false
	}
	m.state.DropdownOpen = false

	switch a {
	case ActionToggleDayMode:
		m.ToggleDayMode()
	case ActionCloseMenu:
		m.Close(isMobile)
	}
	return true
}

// ToggleDayMode flips between day and night and sends the matching texture.
// It always changes state.
func (m *Machine) ToggleDayMode() bool {
	m.state.DayMode = !m.state.DayMode
	if m.texture != nil {
		m.texture.SetBaseTexture(m.state.DayMode)
	}
	return true
}

// DropdownItems lists the dropdown entries. Desktop has a dedicated
// day/night control, so its dropdown only closes the menu.
func (m *Machine) DropdownItems(isMobile bool) []Action {
	if isMobile {
		return []Action{ActionToggleDayMode, ActionCloseMenu}
	}
	return []Action{ActionCloseMenu}
}

// GlobeHidden reports whether the expanded mobile panel covers the globe
func (m *Machine) GlobeHidden(isMobile bool) bool {
	return isMobile && m.state.Visibility == VisibleExpanded
}
