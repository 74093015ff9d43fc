package panelarea

// Renderer draws a frame's DrawList.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// Host drives a root Area for a graphical backend: it owns the input
// Surface, arranges the root each frame and hands the frame's geometry to
// the Renderer.
type Host struct {
	renderer Renderer
	root     *Area
	surface  *Surface
	style    Style

	dl          *DrawList
	displaySize Vec2
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithStyle sets the host style. Its Metrics are applied to the root area.
func WithStyle(style Style) HostOption {
	return func(h *Host) { h.style = style }
}

// WithSurface shares an existing input surface instead of creating one.
func WithSurface(s *Surface) HostOption {
	return func(h *Host) { h.surface = s }
}

// NewHost creates a host for root and attaches root to the host surface.
func NewHost(renderer Renderer, root *Area, opts ...HostOption) *Host {
	h := &Host{
		renderer: renderer,
		root:     root,
		style:    DefaultStyle(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.surface == nil {
		h.surface = NewSurface()
	}
	root.SetMetrics(h.style.Metrics)
	root.Attach(h.surface)
	return h
}

// Root returns the root area.
func (h *Host) Root() *Area {
	return h.root
}

// Surface returns the input surface backends feed pointer events into.
func (h *Host) Surface() *Surface {
	return h.surface
}

// Dispatch forwards one pointer event to the surface.
func (h *Host) Dispatch(ev PointerEvent) {
	h.surface.Dispatch(ev)
}

// Style returns the current style.
func (h *Host) Style() Style {
	return h.style
}

// SetStyle replaces the style and re-applies its metrics.
func (h *Host) SetStyle(style Style) {
	h.style = style
	h.root.SetMetrics(style.Metrics)
}

// Begin starts a new frame. A changed display size is treated as a viewport
// resize; otherwise the root is only re-arranged.
func (h *Host) Begin(displaySize Vec2) {
	bounds := Rect{W: displaySize.X, H: displaySize.Y}
	if displaySize != h.displaySize {
		h.displaySize = displaySize
		h.root.Resize(bounds)
	} else {
		h.root.Arrange(bounds)
	}
	h.dl = AcquireDrawList()
}

// End draws the root area and renders the frame.
func (h *Host) End() error {
	if h.dl == nil {
		return nil
	}
	pointer, _ := h.surface.Position()
	h.root.Draw(h.dl, h.style, pointer)
	h.dl.Finalize()

	err := h.renderer.Render(h.dl)

	ReleaseDrawList(h.dl)
	h.dl = nil
	return err
}

// Resize notifies the renderer and the root area of a framebuffer change.
func (h *Host) Resize(width, height int) {
	h.renderer.Resize(width, height)
	h.displaySize = Vec2{X: float32(width), Y: float32(height)}
	h.root.Resize(Rect{W: h.displaySize.X, H: h.displaySize.Y})
}

// Close destroys the root area, ending any drag and releasing listeners.
func (h *Host) Close() {
	h.root.Destroy()
}
