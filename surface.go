package panelarea

// PointerHandler receives normalized pointer events from a Surface.
type PointerHandler func(phase PointerPhase, pos Vec2)

// PointerTarget is offered pointer-down events that no listener claimed.
// It returns true when it consumed the event.
type PointerTarget interface {
	HandlePointerDown(pos Vec2) bool
}

// Surface is the whole input surface of a window or terminal.
//
// Listeners registered with Listen see every matching event regardless of
// where the pointer is, which is what keeps fast drags tracked after the
// pointer leaves a gutter. Targets only see pointer-down events and are
// hit-tested in reverse attach order.
type Surface struct {
	nextID    uint64
	listeners []surfaceListener
	targets   []surfaceTarget

	position    Vec2
	hasPosition bool
}

type surfaceListener struct {
	id     uint64
	phases uint8
	fn     PointerHandler
}

type surfaceTarget struct {
	id     uint64
	target PointerTarget
}

// NewSurface creates an empty input surface.
func NewSurface() *Surface {
	return &Surface{
		listeners: make([]surfaceListener, 0, 4),
		targets:   make([]surfaceTarget, 0, 2),
	}
}

// Listen registers fn for the given phases and returns the function that
// removes it. The release function is safe to call more than once.
func (s *Surface) Listen(fn PointerHandler, phases ...PointerPhase) (release func()) {
	if fn == nil || len(phases) == 0 {
		return func() {}
	}
	var mask uint8
	for _, p := range phases {
		mask |= 1 << p
	}
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, surfaceListener{id: id, phases: mask, fn: fn})
	return func() { s.removeListener(id) }
}

func (s *Surface) removeListener(id uint64) {
	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Attach registers a pointer-down target and returns its detach function.
func (s *Surface) Attach(t PointerTarget) (detach func()) {
	if t == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.targets = append(s.targets, surfaceTarget{id: id, target: t})
	return func() {
		for i, e := range s.targets {
			if e.id == id {
				s.targets = append(s.targets[:i], s.targets[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of registered global listeners.
func (s *Surface) ListenerCount() int {
	return len(s.listeners)
}

// Position returns the last known pointer position.
func (s *Surface) Position() (Vec2, bool) {
	return s.position, s.hasPosition
}

// Dispatch delivers one pointer event. Events without a usable coordinate
// (a touch with no contact points) are dropped. Non-primary buttons never
// reach pointer-down targets.
func (s *Surface) Dispatch(ev PointerEvent) {
	pos, ok := ev.Position()
	if !ok {
		return
	}
	if ev.Phase != PointerCancel {
		s.position = pos
		s.hasPosition = true
	}

	if len(s.listeners) > 0 {
		// Handlers release themselves while running.
		listeners := append([]surfaceListener(nil), s.listeners...)
		for _, l := range listeners {
			if l.phases&(1<<ev.Phase) == 0 || !s.registered(l.id) {
				continue
			}
			l.fn(ev.Phase, pos)
		}
	}

	if ev.Phase != PointerDown || ev.Pointer == nil || !ev.Pointer.primary() {
		return
	}
	for i := len(s.targets) - 1; i >= 0; i-- {
		if s.targets[i].target.HandlePointerDown(pos) {
			return
		}
	}
}

// registered reports whether a listener is still attached.
func (s *Surface) registered(id uint64) bool {
	for _, l := range s.listeners {
		if l.id == id {
			return true
		}
	}
	return false
}
