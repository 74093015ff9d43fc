package panelarea

// Metrics are the geometric constants used when arranging an Area.
// Units are pixels for graphical backends and cells for the terminal.
type Metrics struct {
	HeaderHeight    float32 // Region title bar height (0 = no header, no buttons)
	CollapsedLength float32 // Main-axis length of a collapsed region
	GutterHitSlop   float32 // Extra grab margin on each side of a gutter
}

// DefaultMetrics returns pixel metrics for graphical backends.
func DefaultMetrics() Metrics {
	return Metrics{
		HeaderHeight:    20,
		CollapsedLength: 24,
		GutterHitSlop:   2,
	}
}

// TerminalMetrics returns cell metrics for terminal backends.
func TerminalMetrics() Metrics {
	return Metrics{
		HeaderHeight:    1,
		CollapsedLength: 3,
		GutterHitSlop:   0,
	}
}

// Style defines the visual appearance of regions and gutters.
type Style struct {
	// Region colors
	RegionColor       uint32
	RegionBorderColor uint32
	HeaderColor       uint32
	HeaderTextColor   uint32

	// Header button colors
	ButtonColor        uint32
	ButtonHoveredColor uint32
	CloseButtonColor   uint32

	// Gutter colors
	GutterColor        uint32
	GutterHoveredColor uint32
	GutterActiveColor  uint32 // While dragging
	GripColor          uint32 // Grip dots drawn on the gutter

	// Background behind a fullscreen region
	BackdropColor uint32

	BorderSize float32

	Metrics Metrics
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		RegionColor:       RGBA(20, 20, 20, 230),
		RegionBorderColor: RGBA(80, 80, 80, 255),
		HeaderColor:       RGBA(40, 40, 45, 255),
		HeaderTextColor:   ColorWhite,

		ButtonColor:        RGBA(70, 70, 70, 255),
		ButtonHoveredColor: RGBA(100, 100, 100, 255),
		CloseButtonColor:   RGBA(180, 60, 60, 255),

		GutterColor:        RGBA(45, 45, 45, 255),
		GutterHoveredColor: RGBA(0, 150, 200, 255),
		GutterActiveColor:  RGBA(0, 200, 255, 255),
		GripColor:          RGBA(200, 200, 200, 255),

		BackdropColor: RGBA(0, 0, 0, 200),

		BorderSize: 1,

		Metrics: DefaultMetrics(),
	}
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()
	s.RegionColor = RGBA(245, 245, 245, 250)
	s.RegionBorderColor = RGBA(200, 200, 200, 255)
	s.HeaderColor = RGBA(220, 220, 225, 255)
	s.HeaderTextColor = RGBA(20, 20, 20, 255)
	s.ButtonColor = RGBA(200, 200, 200, 255)
	s.ButtonHoveredColor = RGBA(180, 180, 180, 255)
	s.GutterColor = RGBA(210, 210, 210, 255)
	s.GutterHoveredColor = RGBA(0, 120, 215, 255)
	s.GutterActiveColor = RGBA(0, 100, 200, 255)
	s.GripColor = RGBA(90, 90, 90, 255)
	s.BackdropColor = RGBA(255, 255, 255, 200)
	return s
}
