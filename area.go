package panelarea

import "math"

// Default Area geometry in pixels.
const (
	DefaultGutterSize = 8
	DefaultGap        = 8
)

// Gutter is the draggable divider between two consecutive visible sized
// Regions. Gutters are derived state and are rebuilt on every structural
// change.
type Gutter struct {
	Index    int     // Position in the visible sized sequence
	Rect     Rect    // Hit/draw rectangle from the last arrange (empty when hidden)
	Position float32 // Main-axis pixel offset, valid only while Dragging
	Dragging bool
}

// Area is the layout container. It owns an ordered list of Regions, derives
// the gutters between them and runs at most one drag session at a time.
//
// Usage:
//
//	area := panelarea.NewArea("main", panelarea.WithDirection(panelarea.Horizontal))
//	area.Add(
//		panelarea.NewRegion(panelarea.WithTitle("Left"), panelarea.WithSize(30)),
//		panelarea.NewRegion(panelarea.WithTitle("Right"), panelarea.WithSize(70)),
//	)
//	area.Attach(surface)
//	area.Resize(panelarea.Rect{W: 1280, H: 720})
type Area struct {
	id         string
	direction  Direction
	gutterSize float32
	gap        float32
	policy     ResizePolicy
	metrics    Metrics

	regions []*Region // All regions in order, hidden ones included
	visible []*Region // Non-hidden regions in order
	sized   []*Region // Visible regions with a percentage (gutter neighbours)
	gutters []Gutter

	bounds  Rect
	layouts []RegionLayout

	session *DragSession
	surface *Surface
	detach  func()

	// parent is the region this area is nested in, nil for a root area.
	parent *Region

	observers observers
	onDragEnd func()

	destroyed bool
}

// AreaOption configures an Area.
type AreaOption func(*Area)

// WithDirection sets the main axis.
func WithDirection(d Direction) AreaOption {
	return func(a *Area) { a.direction = d }
}

// WithGutterSize sets the gutter thickness in pixels.
func WithGutterSize(px float32) AreaOption {
	return func(a *Area) { a.gutterSize = maxf(0, px) }
}

// WithGap sets the spacing between regions in pixels.
func WithGap(px float32) AreaOption {
	return func(a *Area) { a.gap = maxf(0, px) }
}

// WithResizePolicy selects how drag deltas are applied.
func WithResizePolicy(p ResizePolicy) AreaOption {
	return func(a *Area) { a.policy = p }
}

// WithMetrics sets the header and collapsed geometry.
func WithMetrics(m Metrics) AreaOption {
	return func(a *Area) { a.metrics = m }
}

// NewArea creates an empty Area. An empty id gets a random UUID.
func NewArea(id string, opts ...AreaOption) *Area {
	if id == "" {
		id = NewRegionID()
	}
	a := &Area{
		id:         id,
		direction:  Horizontal,
		gutterSize: DefaultGutterSize,
		gap:        DefaultGap,
		policy:     ResizeHardStop,
		metrics:    DefaultMetrics(),
		regions:    make([]*Region, 0, 4),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ID returns the area identity.
func (a *Area) ID() string { return a.id }

// Direction returns the main axis.
func (a *Area) Direction() Direction { return a.direction }

// GutterSize returns the gutter thickness in pixels.
func (a *Area) GutterSize() float32 { return a.gutterSize }

// Gap returns the spacing between regions in pixels.
func (a *Area) Gap() float32 { return a.gap }

// Policy returns the resize policy.
func (a *Area) Policy() ResizePolicy { return a.policy }

// Metrics returns the header and collapsed geometry.
func (a *Area) Metrics() Metrics { return a.metrics }

// SetMetrics replaces the header and collapsed geometry.
// Nested areas inherit it on the next arrange.
func (a *Area) SetMetrics(m Metrics) {
	a.metrics = m
	a.relayout()
}

// Bounds returns the rectangle from the last Resize or Arrange.
func (a *Area) Bounds() Rect { return a.bounds }

// Parent returns the region this area is nested in, or nil.
func (a *Area) Parent() *Region { return a.parent }

// Add appends regions in order and normalizes once, so a set of regions
// whose sizes already sum to 100 keeps them. It returns the number of
// regions added; see Insert for the rejection rules.
func (a *Area) Add(regions ...*Region) int {
	n := 0
	for _, r := range regions {
		if a.insert(len(a.regions), r) {
			n++
		}
	}
	if n > 0 {
		a.UpdateVisibleRegions()
	}
	return n
}

// Insert places a region at index (clamped to the valid range) and
// renormalizes. It returns false if the region is nil, already belongs to an
// area or its id is taken.
func (a *Area) Insert(index int, r *Region) bool {
	if !a.insert(index, r) {
		return false
	}
	a.UpdateVisibleRegions()
	return true
}

func (a *Area) insert(index int, r *Region) bool {
	if r == nil || r.area != nil || a.destroyed {
		return false
	}
	if a.Region(r.id) != nil {
		logger.Debug("insert: duplicate region id", "area", a.id, "region", r.id)
		return false
	}
	if index < 0 {
		index = 0
	}
	if index > len(a.regions) {
		index = len(a.regions)
	}
	a.regions = append(a.regions, nil)
	copy(a.regions[index+1:], a.regions[index:])
	a.regions[index] = r
	r.area = a
	return true
}

// Remove detaches the region with the given id and renormalizes the rest.
// A nested content area of the removed region is destroyed. A drag session
// using the region ends on its next pointer event.
func (a *Area) Remove(id string) *Region {
	for i, r := range a.regions {
		if r.id != id {
			continue
		}
		a.regions = append(a.regions[:i], a.regions[i+1:]...)
		r.area = nil
		if r.content != nil {
			r.content.Destroy()
		}
		a.UpdateVisibleRegions()
		return r
	}
	return nil
}

// Region returns the region with the given id, or nil.
func (a *Area) Region(id string) *Region {
	for _, r := range a.regions {
		if r.id == id {
			return r
		}
	}
	return nil
}

// Regions returns all regions in order, hidden ones included.
func (a *Area) Regions() []*Region {
	return append([]*Region(nil), a.regions...)
}

// Visible returns the non-hidden regions in order.
func (a *Area) Visible() []*Region {
	return append([]*Region(nil), a.visible...)
}

// Gutters returns a copy of the current gutters.
func (a *Area) Gutters() []Gutter {
	return append([]Gutter(nil), a.gutters...)
}

// Show makes the region with the given id visible again.
func (a *Area) Show(id string) bool {
	r := a.Region(id)
	if r == nil {
		return false
	}
	r.Show()
	return true
}

// Hide closes the region with the given id.
func (a *Area) Hide(id string) bool {
	r := a.Region(id)
	if r == nil {
		return false
	}
	r.Close()
	return true
}

// UpdateVisibleRegions rebuilds the visible sequence and the gutters. When
// the visible sized regions do not sum to 100 they are all reset to an equal
// share.
func (a *Area) UpdateVisibleRegions() {
	a.visible = a.visible[:0]
	a.sized = a.sized[:0]
	for _, r := range a.regions {
		if r.hidden {
			continue
		}
		a.visible = append(a.visible, r)
		if r.sized {
			a.sized = append(a.sized, r)
		}
	}

	if n := len(a.sized); n > 0 {
		var sum float64
		for _, r := range a.sized {
			sum += r.size
		}
		if math.Abs(sum-100) > sizeEpsilon {
			share := 100 / float64(n)
			logger.Debug("normalize: equal redistribution",
				"area", a.id, "sum", sum, "count", n, "share", share)
			for _, r := range a.sized {
				r.store(share)
			}
		}
	}

	a.rebuildGutters()
	a.relayout()
}

// rebuildGutters derives one gutter per consecutive pair of sized regions.
func (a *Area) rebuildGutters() {
	n := len(a.sized) - 1
	if n < 0 {
		n = 0
	}
	a.gutters = a.gutters[:0]
	for i := 0; i < n; i++ {
		a.gutters = append(a.gutters, Gutter{Index: i})
	}
	if a.session != nil && a.session.GutterIndex < n {
		g := &a.gutters[a.session.GutterIndex]
		g.Dragging = true
		g.Position = a.gutterPosition(a.session.GutterIndex)
	}
}

// Resize observes a viewport change: every visible sized region re-applies
// its size through SetSize, nested areas follow, and the geometry is
// recomputed for bounds.
func (a *Area) Resize(bounds Rect) {
	for _, r := range a.sized {
		r.SetSize(r.size)
	}
	a.arrange(bounds, true)
}

// relayout re-arranges with the current bounds once a size is known.
func (a *Area) relayout() {
	if a.bounds.Empty() {
		return
	}
	a.arrange(a.bounds, false)
}

// Attach registers the area as a pointer-down target on s. Nested areas do
// not need to be attached; they receive pointer-down through their parent and
// share its surface.
func (a *Area) Attach(s *Surface) {
	if a.detach != nil {
		a.detach()
		a.detach = nil
	}
	a.surface = s
	if s != nil {
		a.detach = s.Attach(a)
	}
}

// surfaceOf returns the surface of this area or the nearest attached
// ancestor.
func (a *Area) surfaceOf() *Surface {
	for cur := a; cur != nil; {
		if cur.surface != nil {
			return cur.surface
		}
		if cur.parent == nil {
			return nil
		}
		cur = cur.parent.area
	}
	return nil
}

// fullscreenRegion returns the first visible fullscreen region, or nil.
func (a *Area) fullscreenRegion() *Region {
	for _, r := range a.visible {
		if r.fullscreen {
			return r
		}
	}
	return nil
}

// HandlePointerDown implements PointerTarget. Gutters are hit-tested first,
// then header buttons, then nested content.
func (a *Area) HandlePointerDown(pos Vec2) bool {
	if a.destroyed || a.session != nil {
		return false
	}
	if a.fullscreenRegion() == nil {
		slop := a.metrics.GutterHitSlop
		for i, g := range a.gutters {
			if g.Rect.Empty() {
				continue
			}
			hit := a.direction.slice(g.Rect, -slop, a.direction.length(g.Rect)+2*slop)
			if hit.Contains(pos) {
				return a.StartDrag(i, pos)
			}
		}
	}

	for i := range a.layouts {
		lay := &a.layouts[i]
		if lay.Rect.Empty() || !lay.Rect.Contains(pos) {
			continue
		}
		for b := RegionButton(0); b < regionButtonCount; b++ {
			if !lay.Buttons[b].Empty() && lay.Buttons[b].Contains(pos) {
				a.pressButton(lay.Region, b)
				return true
			}
		}
		if c := lay.Region.content; c != nil && lay.Body.Contains(pos) {
			return c.HandlePointerDown(pos)
		}
		return false
	}
	return false
}

// pressButton runs the action of a header button.
func (a *Area) pressButton(r *Region, b RegionButton) {
	logger.Debug("header button pressed", "area", a.id, "region", r.id, "button", b.String())
	switch b {
	case ButtonCollapse:
		r.ToggleCollapse()
	case ButtonFullscreen:
		r.ToggleFullscreen()
	case ButtonClose:
		r.Close()
	}
}

// StartDrag begins a drag session on gutter index at pointer position pos.
// It refuses (returns false) while another drag is active, when the area has
// no surface, when either neighbour is collapsed or a region is fullscreen.
func (a *Area) StartDrag(index int, pos Vec2) bool {
	if a.destroyed || a.session != nil {
		return false
	}
	if index < 0 || index >= len(a.gutters) {
		return false
	}
	s := a.surfaceOf()
	if s == nil {
		logger.Debug("drag refused: no surface", "area", a.id)
		return false
	}
	left, right := a.sized[index], a.sized[index+1]
	if !left.pooled() || !right.pooled() || a.fullscreenRegion() != nil {
		logger.Debug("drag refused: neighbour not resizable", "area", a.id, "gutter", index)
		return false
	}

	a.session = &DragSession{
		GutterIndex:  index,
		StartPointer: a.direction.main(pos),
		StartLeft:    left.size,
		StartRight:   right.size,
		left:         left,
		right:        right,
	}
	a.session.scope.acquire(s.Listen(a.handleDragPointer, PointerMove, PointerUp, PointerCancel))

	g := &a.gutters[index]
	g.Dragging = true
	g.Position = a.gutterPosition(index)

	logger.Debug("drag start", "area", a.id, "gutter", index,
		"left", left.id, "right", right.id, "startLeft", left.size, "startRight", right.size)
	a.emit(Event{Kind: EventDragStart, Gutter: index})
	return true
}

// handleDragPointer is the session-scoped global listener.
func (a *Area) handleDragPointer(phase PointerPhase, pos Vec2) {
	if a.session == nil {
		return
	}
	if !a.sessionValid() {
		logger.Debug("drag implicitly cancelled: neighbours changed", "area", a.id)
		a.endDrag(true)
		return
	}
	switch phase {
	case PointerMove:
		a.dragMove(pos)
	case PointerUp:
		a.endDrag(false)
	case PointerCancel:
		a.endDrag(true)
	}
}

// sessionValid reports whether the session's regions are still the visible
// resizable neighbours of its gutter.
func (a *Area) sessionValid() bool {
	s := a.session
	if s.GutterIndex+1 >= len(a.sized) {
		return false
	}
	if a.sized[s.GutterIndex] != s.left || a.sized[s.GutterIndex+1] != s.right {
		return false
	}
	return s.left.pooled() && s.right.pooled() && a.fullscreenRegion() == nil
}

// dragMove applies one pointer move to the two neighbours of the gutter.
func (a *Area) dragMove(pos Vec2) {
	s := a.session
	length := a.direction.length(a.bounds)
	if length <= 0 {
		return
	}
	delta := float64(a.direction.main(pos)-s.StartPointer) / float64(length) * 100
	newLeft, newRight, ok := a.policy.transfer(s.left, s.right, s.StartLeft, s.StartRight, delta)
	if !ok {
		return
	}
	s.left.store(newLeft)
	s.right.store(newRight)

	a.gutters[s.GutterIndex].Position = a.gutterPosition(s.GutterIndex)
	a.relayout()
}

// gutterPosition returns the main-axis pixel offset of a gutter computed from
// the percentages up to and including its left region.
func (a *Area) gutterPosition(index int) float32 {
	var pct float64
	for i := 0; i <= index && i < len(a.sized); i++ {
		pct += a.sized[i].size
	}
	return float32(pct * float64(a.direction.length(a.bounds)) / 100)
}

// endDrag closes the session, releases its listeners and emits drag end.
// State on the event is true when the drag was cancelled.
func (a *Area) endDrag(cancelled bool) {
	s := a.session
	if s == nil {
		return
	}
	a.session = nil
	s.scope.release()
	for i := range a.gutters {
		a.gutters[i].Dragging = false
		a.gutters[i].Position = 0
	}
	logger.Debug("drag end", "area", a.id, "gutter", s.GutterIndex, "cancelled", cancelled)
	a.emit(Event{Kind: EventDragEnd, Gutter: s.GutterIndex, State: cancelled})
	if a.onDragEnd != nil {
		a.onDragEnd()
	}
}

// CancelDrag ends an active drag as if the pointer had been cancelled.
func (a *Area) CancelDrag() {
	a.endDrag(true)
}

// Dragging reports whether a drag session is active.
func (a *Area) Dragging() bool {
	return a.session != nil
}

// Session returns the active drag session, or nil when idle.
func (a *Area) Session() *DragSession {
	return a.session
}

// Observe registers an observer for events of this area and every area
// nested below it. It returns the function that removes the observer.
func (a *Area) Observe(fn Observer) func() {
	return a.observers.add(fn)
}

// SetOnDragEnd sets the callback for when a drag session ends.
func (a *Area) SetOnDragEnd(fn func()) {
	a.onDragEnd = fn
}

// emit delivers ev to the observers and bubbles it to the parent area.
func (a *Area) emit(ev Event) {
	if ev.AreaID == "" {
		ev.AreaID = a.id
	}
	a.observers.emit(ev)
	if a.parent != nil && a.parent.area != nil {
		a.parent.area.emit(ev)
	}
}

// Destroyed reports whether Destroy has been called.
func (a *Area) Destroyed() bool {
	return a.destroyed
}

// Destroy tears the area down: an active drag ends as cancelled, its
// listeners are released, nested areas are destroyed and the area detaches
// from its surface. Destroy is idempotent.
func (a *Area) Destroy() {
	if a.destroyed {
		return
	}
	a.endDrag(true)
	a.destroyed = true
	for _, r := range a.regions {
		if r.content != nil {
			r.content.Destroy()
		}
	}
	if a.detach != nil {
		a.detach()
		a.detach = nil
	}
	a.surface = nil
	logger.Debug("area destroyed", "area", a.id)
}
