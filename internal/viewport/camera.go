package viewport

// Offset is added to a target point when moving the camera
type Offset struct {
	Lat      float64
	Lng      float64
	Altitude float64
}

// Camera altitudes in globe radii
const (
	DesktopAltitude = 2.5
	MobileAltitude  = 4.5
)

// CameraOffset returns the camera offset for a layout and view context.
// On mobile the panel covers the bottom of the screen, so the point of
// interest is shifted toward the upper region.
func CameraOffset(isMobile, isInitial bool) Offset {
	switch {
	case isInitial && isMobile:
		return Offset{Lat: -30, Lng: 30, Altitude: MobileAltitude}
	case isInitial:
		return Offset{Lat: 0, Lng: 50, Altitude: DesktopAltitude}
	case isMobile:
		return Offset{Lat: -20, Lng: 0, Altitude: MobileAltitude}
	default:
		return Offset{Lat: 0, Lng: 0, Altitude: DesktopAltitude}
	}
}
