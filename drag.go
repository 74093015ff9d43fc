package panelarea

// DragSession is the state of one gutter drag. It exists only between
// pointer-down on a gutter and pointer-up, pointer-cancel or teardown.
type DragSession struct {
	GutterIndex  int     // Gutter being dragged
	StartPointer float32 // Main-axis pointer coordinate at drag start
	StartLeft    float64 // Size of the region before the gutter at drag start
	StartRight   float64 // Size of the region after the gutter at drag start

	left  *Region
	right *Region

	// scope holds the global listeners acquired for this session.
	scope listenerScope
}

// Left returns the region before the active gutter.
func (s *DragSession) Left() *Region {
	return s.left
}

// Right returns the region after the active gutter.
func (s *DragSession) Right() *Region {
	return s.right
}

// listenerScope collects release functions acquired for a session and runs
// each of them exactly once.
type listenerScope struct {
	releases []func()
}

// acquire records a release function.
func (s *listenerScope) acquire(release func()) {
	if release != nil {
		s.releases = append(s.releases, release)
	}
}

// release runs every recorded release function in reverse order.
func (s *listenerScope) release() {
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
}

// held returns the number of acquired, unreleased listeners.
func (s *listenerScope) held() int {
	return len(s.releases)
}
