// Package viewport classifies the display surface and derives camera offsets
package viewport

// MobileBreakpointPx is the width below which the layout is mobile
const MobileBreakpointPx = 768

// Terminal cell size used to turn columns/rows into pixels
const (
	DefaultCellWidthPx  = 8
	DefaultCellHeightPx = 16
)

// DesktopPanelCols is the side panel width on desktop (288 px at 8 px per cell)
const DesktopPanelCols = 36

// State is the responsive layout classification of the surface
type State struct {
	WidthPx  int
	HeightPx int
	IsMobile bool
}

// Compute derives State from a surface size in pixels
func Compute(widthPx, heightPx int) State {
	return State{
		WidthPx:  widthPx,
		HeightPx: heightPx,
		IsMobile: widthPx < MobileBreakpointPx,
	}
}

// Policy tracks the latest State for a terminal surface
type Policy struct {
	cellWidthPx  int
	cellHeightPx int

	cols  int
	rows  int
	state State
	sized bool
}

// NewPolicy creates a policy with the given cell size; zero values use the defaults
func NewPolicy(cellWidthPx, cellHeightPx int) *Policy {
	if cellWidthPx <= 0 {
		cellWidthPx = DefaultCellWidthPx
	}
	if cellHeightPx <= 0 {
		cellHeightPx = DefaultCellHeightPx
	}
	return &Policy{
		cellWidthPx:  cellWidthPx,
		cellHeightPx: cellHeightPx,
	}
}

// Resize recomputes the state for a surface of cols x rows cells.
// modeChanged reports a switch between mobile and desktop.
func (p *Policy) Resize(cols, rows int) (state State, modeChanged bool) {
	next := Compute(cols*p.cellWidthPx, rows*p.cellHeightPx)
	modeChanged = p.sized && next.IsMobile != p.state.IsMobile

	p.cols, p.rows = cols, rows
	p.state = next
	p.sized = true

	return next, modeChanged
}

// State returns the latest computed state
func (p *Policy) State() State {
	return p.state
}

// Sized reports whether at least one resize has been seen
func (p *Policy) Sized() bool {
	return p.sized
}

// Cells returns the last surface size in terminal cells
func (p *Policy) Cells() (cols, rows int) {
	return p.cols, p.rows
}
