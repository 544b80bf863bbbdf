package panel

import "testing"

// recordingTexture captures SetBaseTexture calls
type recordingTexture struct {
	calls []bool
}

func (r *recordingTexture) SetBaseTexture(dayMode bool) {
	r.calls = append(r.calls, dayMode)
}

func TestNewMachine_InitialState(t *testing.T) {
	m := NewMachine(nil)
	s := m.State()

	if s.Visibility != VisibleCollapsed {
		t.Errorf("Visibility = %v, want collapsed", s.Visibility)
	}
	if !s.Visible() || s.Expanded() {
		t.Errorf("Visible/Expanded = %v/%v, want true/false", s.Visible(), s.Expanded())
	}
	if s.DropdownOpen {
		t.Error("dropdown should start closed")
	}
	if !s.DayMode {
		t.Error("should start in day mode")
	}
}

func TestMachine_OpenClose(t *testing.T) {
	m := NewMachine(nil)

	if m.Open() {
		t.Error("Open() on a visible panel should be a no-op")
	}

	m.ToggleDropdown(false)
	if !m.Close(false) {
		t.Fatal("Close() from collapsed should succeed")
	}
	if m.State().Visibility != Hidden {
		t.Errorf("Visibility = %v, want hidden", m.State().Visibility)
	}
	if m.State().DropdownOpen {
		t.Error("Close() should also close the dropdown")
	}

	if m.Close(false) {
		t.Error("Close() on a hidden panel should be a no-op")
	}

	if !m.Open() {
		t.Fatal("Open() from hidden should succeed")
	}
	if m.State().Visibility != VisibleCollapsed {
		t.Errorf("Visibility = %v, want collapsed", m.State().Visibility)
	}
}

func TestMachine_ExpandRequiresMobileAndSelection(t *testing.T) {
	tests := []struct {
		name         string
		isMobile     bool
		hasSelection bool
		want         Visibility
	}{
		{"mobile with selection", true, true, VisibleExpanded},
		{"mobile without selection", true, false, VisibleCollapsed},
		{"desktop with selection", false, true, VisibleCollapsed},
		{"desktop without selection", false, false, VisibleCollapsed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(nil)
			before := m.State()

			changed := m.Expand(tt.isMobile, tt.hasSelection)
			if got := m.State().Visibility; got != tt.want {
				t.Errorf("Visibility = %v, want %v", got, tt.want)
			}
			if !changed && m.State() != before {
				t.Error("a rejected Expand() must leave state unchanged")
			}
		})
	}
}

func TestMachine_ExpandOnlyFromCollapsed(t *testing.T) {
	m := NewMachine(nil)
	m.Close(true)

	if m.Expand(true, true) {
		t.Error("Expand() from hidden should be a no-op")
	}
}

func TestMachine_Collapse(t *testing.T) {
	m := NewMachine(nil)
	m.Expand(true, true)

	if m.Collapse(false) {
		t.Error("Collapse() on desktop should be a no-op")
	}
	if !m.Collapse(true) {
		t.Fatal("Collapse() on mobile should succeed")
	}
	if m.State().Visibility != VisibleCollapsed {
		t.Errorf("Visibility = %v, want collapsed", m.State().Visibility)
	}
	if m.Collapse(true) {
		t.Error("Collapse() from collapsed should be a no-op")
	}
}

func TestMachine_CloseFromExpanded(t *testing.T) {
	m := NewMachine(nil)
	m.Expand(true, true)

	if m.Close(true) {
		t.Error("Close() from expanded on mobile should be a no-op")
	}
	if !m.Close(false) {
		t.Error("Close() from expanded on desktop should hide the panel")
	}
}

func TestMachine_Dropdown(t *testing.T) {
	m := NewMachine(nil)

	if !m.ToggleDropdown(false) || !m.State().DropdownOpen {
		t.Fatal("ToggleDropdown() should open the dropdown")
	}
	if !m.ToggleDropdown(false) || m.State().DropdownOpen {
		t.Fatal("second ToggleDropdown() should close it")
	}

	m.Close(false)
	if m.ToggleDropdown(false) {
		t.Error("ToggleDropdown() on a hidden panel should be a no-op")
	}
}

func TestMachine_NoDropdownInExpandedMobilePanel(t *testing.T) {
	m := NewMachine(nil)
	m.Expand(true, true)

	if m.ToggleDropdown(true) {
		t.Error("ToggleDropdown() should not open over the expanded mobile panel")
	}
	if m.State().DropdownOpen {
		t.Fatal("dropdown should stay closed")
	}

	// on desktop the expanded panel looks collapsed and keeps its dropdown
	if !m.ToggleDropdown(false) || !m.State().DropdownOpen {
		t.Fatal("ToggleDropdown(false) should open the dropdown")
	}
	// an open dropdown can always be closed
	if !m.ToggleDropdown(true) || m.State().DropdownOpen {
		t.Error("ToggleDropdown(true) should close an open dropdown")
	}
}

func TestMachine_SelectActionClosesDropdown(t *testing.T) {
	tex := &recordingTexture{}
	m := NewMachine(tex)

	if m.SelectAction(ActionToggleDayMode, true) {
		t.Error("SelectAction() with a closed dropdown should be a no-op")
	}

	m.ToggleDropdown(false)
	if !m.SelectAction(ActionToggleDayMode, true) {
		t.Fatal("SelectAction() should succeed with an open dropdown")
	}
	s := m.State()
	if s.DropdownOpen {
		t.Error("dropdown should close after an action")
	}
	if s.DayMode {
		t.Error("toggle action should switch to night")
	}
	if len(tex.calls) != 1 || tex.calls[0] {
		t.Errorf("texture calls = %v, want [false]", tex.calls)
	}

	m.ToggleDropdown(false)
	m.SelectAction(ActionCloseMenu, true)
	if m.State().Visible() {
		t.Error("close action should hide the panel")
	}
}

func TestMachine_ToggleDayModeTwice(t *testing.T) {
	tex := &recordingTexture{}
	m := NewMachine(tex)
	original := m.State().DayMode

	if !m.ToggleDayMode() || !m.ToggleDayMode() {
		t.Error("ToggleDayMode() should always report a change")
	}

	if m.State().DayMode != original {
		t.Errorf("DayMode = %v after two toggles, want %v", m.State().DayMode, original)
	}
	if len(tex.calls) != 2 {
		t.Fatalf("texture calls = %d, want 2", len(tex.calls))
	}
	if tex.calls[0] == tex.calls[1] {
		t.Errorf("texture calls = %v, want opposite arguments", tex.calls)
	}
}

func TestMachine_ToggleDayModeIndependentOfVisibility(t *testing.T) {
	m := NewMachine(nil)
	m.Close(false)

	m.ToggleDayMode()
	if m.State().DayMode {
		t.Error("day mode should toggle while hidden")
	}
	if m.State().Visible() {
		t.Error("toggling day mode should not reopen the panel")
	}
}

func TestMachine_DropdownItems(t *testing.T) {
	m := NewMachine(nil)

	if got := m.DropdownItems(true); len(got) != 2 || got[0] != ActionToggleDayMode || got[1] != ActionCloseMenu {
		t.Errorf("mobile items = %v", got)
	}
	if got := m.DropdownItems(false); len(got) != 1 || got[0] != ActionCloseMenu {
		t.Errorf("desktop items = %v", got)
	}
}

func TestMachine_GlobeHidden(t *testing.T) {
	m := NewMachine(nil)
	m.Expand(true, true)

	if !m.GlobeHidden(true) {
		t.Error("expanded mobile panel should hide the globe")
	}
	if m.GlobeHidden(false) {
		t.Error("desktop never hides the globe")
	}
}

func TestAction_Label(t *testing.T) {
	day := State{DayMode: true}
	night := State{DayMode: false}

	if got := ActionToggleDayMode.Label(day); got != "Night mode" {
		t.Errorf("label in day mode = %q", got)
	}
	if got := ActionToggleDayMode.Label(night); got != "Day mode" {
		t.Errorf("label in night mode = %q", got)
	}
	if got := ActionCloseMenu.Label(day); got != "Close menu" {
		t.Errorf("close label = %q", got)
	}
}
