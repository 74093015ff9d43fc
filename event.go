package panelarea

// EventKind identifies a layout notification.
type EventKind uint8

const (
	EventSizeChanged EventKind = iota + 1 // Region size changed (Size holds the new percentage)
	EventDragStart                        // Gutter drag started
	EventDragEnd                          // Gutter drag ended (up, cancel or teardown)
	EventCollapsed                        // Region collapse toggled (State = collapsed)
	EventFullscreen                       // Region fullscreen toggled (State = fullscreen)
	EventClosed                           // Region closed (hidden)
	EventOpened                           // Region shown again
)

// String returns the wire name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSizeChanged:
		return "size_changed"
	case EventDragStart:
		return "drag_start"
	case EventDragEnd:
		return "drag_end"
	case EventCollapsed:
		return "collapsed"
	case EventFullscreen:
		return "fullscreen"
	case EventClosed:
		return "closed"
	case EventOpened:
		return "opened"
	}
	return "unknown"
}

// Event is emitted outward to whatever embeds the layout.
type Event struct {
	Kind     EventKind
	AreaID   string  // Area that owns the region (or the dragged gutter)
	RegionID string  // Empty for drag events
	Gutter   int     // Gutter index for drag events, -1 otherwise
	Size     float64 // New percentage for EventSizeChanged
	State    bool    // Boolean state for collapse/fullscreen notifications
}

// Observer receives layout events.
type Observer func(Event)

// observers is an ordered observer list with stable removal handles.
type observers struct {
	next uint64
	list []observerEntry
}

type observerEntry struct {
	id uint64
	fn Observer
}

// add registers fn and returns a function removing it.
func (o *observers) add(fn Observer) func() {
	if fn == nil {
		return func() {}
	}
	o.next++
	id := o.next
	o.list = append(o.list, observerEntry{id: id, fn: fn})
	return func() {
		for i, e := range o.list {
			if e.id == id {
				o.list = append(o.list[:i], o.list[i+1:]...)
				return
			}
		}
	}
}

// emit delivers ev to every observer in registration order.
func (o *observers) emit(ev Event) {
	if len(o.list) == 0 {
		return
	}
	// Observers may unsubscribe while being notified.
	list := append([]observerEntry(nil), o.list...)
	for _, e := range list {
		e.fn(ev)
	}
}
