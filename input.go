package panelarea

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// PointerPhase is the stage of a pointer interaction.
type PointerPhase uint8

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
	PointerCancel
)

// String returns the phase name.
func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	}
	return "unknown"
}

// Pointer is the device-specific payload of a pointer event.
// It is either Mouse or Touch.
type Pointer interface {
	// position normalizes the payload to a single coordinate.
	position() (Vec2, bool)
	// primary reports whether the pointer may start a drag.
	primary() bool
}

// Mouse is a mouse pointer sample.
type Mouse struct {
	X, Y   float32
	Button MouseButton
}

func (m Mouse) position() (Vec2, bool) { return Vec2{X: m.X, Y: m.Y}, true }
func (m Mouse) primary() bool          { return m.Button == MouseButtonLeft }

// Touch is a touch sample. Only the first contact point is used.
type Touch struct {
	Points []Vec2
}

func (t Touch) position() (Vec2, bool) {
	if len(t.Points) == 0 {
		return Vec2{}, false
	}
	return t.Points[0], true
}

func (t Touch) primary() bool { return true }

// PointerEvent is one pointer input event.
type PointerEvent struct {
	Phase   PointerPhase
	Pointer Pointer
}

// Position returns the normalized coordinate of the event.
// Events without a usable coordinate report false, except cancel events,
// which carry no position.
func (e PointerEvent) Position() (Vec2, bool) {
	if e.Pointer == nil {
		return Vec2{}, e.Phase == PointerCancel
	}
	pos, ok := e.Pointer.position()
	if !ok && e.Phase == PointerCancel {
		return Vec2{}, true
	}
	return pos, ok
}

// MouseEvent builds a mouse pointer event.
func MouseEvent(phase PointerPhase, x, y float32, button MouseButton) PointerEvent {
	return PointerEvent{Phase: phase, Pointer: Mouse{X: x, Y: y, Button: button}}
}

// TouchEvent builds a touch pointer event.
func TouchEvent(phase PointerPhase, points ...Vec2) PointerEvent {
	return PointerEvent{Phase: phase, Pointer: Touch{Points: points}}
}

// CancelEvent builds a pointer cancel event.
func CancelEvent() PointerEvent {
	return PointerEvent{Phase: PointerCancel}
}

// PointerTracker turns level-triggered samples (position plus "button held")
// into edge-triggered pointer events. Backends that only see button state,
// like terminal mouse reports, feed it one sample per input event.
type PointerTracker struct {
	down    bool
	last    Vec2
	hasLast bool
}

// Sample records a new sample and returns the events it produces.
// A press yields Down, a held button that moved yields Move, a release
// yields Up at the release position.
func (t *PointerTracker) Sample(pos Vec2, down bool) []PointerEvent {
	wasDown := t.down
	moved := !t.hasLast || pos != t.last
	t.down = down
	t.last = pos
	t.hasLast = true

	mk := func(phase PointerPhase) PointerEvent {
		return MouseEvent(phase, pos.X, pos.Y, MouseButtonLeft)
	}

	switch {
	case down && !wasDown:
		return []PointerEvent{mk(PointerDown)}
	case !down && wasDown:
		if moved {
			return []PointerEvent{mk(PointerMove), mk(PointerUp)}
		}
		return []PointerEvent{mk(PointerUp)}
	case moved:
		return []PointerEvent{mk(PointerMove)}
	}
	return nil
}

// Down reports whether the tracked button is held.
func (t *PointerTracker) Down() bool {
	return t.down
}

// Reset forgets the button state, returning a cancel event if the button
// was held.
func (t *PointerTracker) Reset() []PointerEvent {
	wasDown := t.down
	t.down = false
	t.hasLast = false
	if wasDown {
		return []PointerEvent{CancelEvent()}
	}
	return nil
}
