package panelarea

// Default Region bounds, in percent of the owning Area's main axis.
const (
	DefaultMinSize = 20
	DefaultMaxSize = 100
)

// Region is one resizable slot inside an Area.
//
// The size is a percentage of the Area's main axis. A Region without a size
// (see WithAutoSize) takes its intrinsic pixel length and is not part of the
// resize pool. Collapsed and fullscreen Regions keep their stored size so the
// previous layout comes back exactly when the mode is left.
type Region struct {
	id    string
	title string

	size    float64
	sized   bool
	minSize float64
	maxSize float64

	hidden     bool
	collapsed  bool
	fullscreen bool

	// intrinsic is the pixel length used for auto-sized regions.
	intrinsic float32

	// content is an optional nested layout.
	content *Area

	// area is the owning Area, nil until added.
	area *Area

	onSizeChange func(size float64)
	onCollapse   func(collapsed bool)
	onFullscreen func(fullscreen bool)
	onClose      func()
}

// RegionOption configures a Region.
type RegionOption func(*Region)

// WithID sets a stable identity. Regions get a random UUID otherwise.
func WithID(id string) RegionOption {
	return func(r *Region) { r.id = id }
}

// WithTitle sets the title shown in the region header.
func WithTitle(title string) RegionOption {
	return func(r *Region) { r.title = title }
}

// WithSize sets the initial size percentage.
func WithSize(pct float64) RegionOption {
	return func(r *Region) {
		r.size = pct
		r.sized = true
	}
}

// WithAutoSize makes the region take its intrinsic pixel length and keeps it
// out of the resize pool.
func WithAutoSize(intrinsic float32) RegionOption {
	return func(r *Region) {
		r.size = 0
		r.sized = false
		r.intrinsic = intrinsic
	}
}

// WithMinSize sets the lower size bound.
func WithMinSize(pct float64) RegionOption {
	return func(r *Region) { r.minSize = pct }
}

// WithMaxSize sets the upper size bound.
func WithMaxSize(pct float64) RegionOption {
	return func(r *Region) { r.maxSize = pct }
}

// WithHidden starts the region hidden.
func WithHidden(hidden bool) RegionOption {
	return func(r *Region) { r.hidden = hidden }
}

// WithCollapsed starts the region collapsed.
func WithCollapsed(collapsed bool) RegionOption {
	return func(r *Region) { r.collapsed = collapsed }
}

// WithFullscreen starts the region in fullscreen mode.
func WithFullscreen(fullscreen bool) RegionOption {
	return func(r *Region) { r.fullscreen = fullscreen }
}

// WithContent nests another Area inside the region.
func WithContent(a *Area) RegionOption {
	return func(r *Region) { r.content = a }
}

// NewRegion creates a region. Without WithSize the region is sized but
// starts at 0, which the owning Area normalizes on insertion.
func NewRegion(opts ...RegionOption) *Region {
	r := &Region{
		sized:   true,
		minSize: DefaultMinSize,
		maxSize: DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.id == "" {
		r.id = NewRegionID()
	}
	if r.content != nil {
		r.content.parent = r
	}
	return r
}

// ID returns the stable identity of the region.
func (r *Region) ID() string {
	return r.id
}

// Title returns the header title.
func (r *Region) Title() string {
	return r.title
}

// SetTitle changes the header title.
func (r *Region) SetTitle(title string) {
	r.title = title
}

// Size returns the current percentage and whether the region is sized.
func (r *Region) Size() (float64, bool) {
	return r.size, r.sized
}

// MinSize returns the lower bound.
func (r *Region) MinSize() float64 {
	return r.minSize
}

// MaxSize returns the effective upper bound (never below MinSize).
func (r *Region) MaxSize() float64 {
	if r.maxSize < r.minSize {
		return r.minSize
	}
	return r.maxSize
}

// IntrinsicLength returns the pixel length of an auto-sized region.
func (r *Region) IntrinsicLength() float32 {
	return r.intrinsic
}

// Hidden reports whether the region is excluded from layout.
func (r *Region) Hidden() bool {
	return r.hidden
}

// Collapsed reports whether only the region header is shown.
func (r *Region) Collapsed() bool {
	return r.collapsed
}

// Fullscreen reports whether the region takes over its Area.
func (r *Region) Fullscreen() bool {
	return r.fullscreen
}

// Content returns the nested Area, or nil.
func (r *Region) Content() *Area {
	return r.content
}

// Area returns the owning Area, or nil if the region is detached.
func (r *Region) Area() *Area {
	return r.area
}

// pooled reports whether the region takes part in drag transfers.
func (r *Region) pooled() bool {
	return r.sized && !r.collapsed && !r.fullscreen
}

// inBounds reports whether pct respects the region's bounds.
func (r *Region) inBounds(pct float64) bool {
	return pct >= r.minSize-sizeEpsilon && pct <= r.MaxSize()+sizeEpsilon
}

// SetSize clamps candidate to [MinSize, MaxSize], stores it and returns it.
// Collapsed and fullscreen regions ignore the call and report their previous
// size; auto-sized regions ignore it and report 0.
func (r *Region) SetSize(candidate float64) float64 {
	if !r.sized {
		return 0
	}
	if r.collapsed || r.fullscreen {
		return r.size
	}
	r.store(clamp(candidate, r.minSize, r.MaxSize()))
	return r.size
}

// store writes a size without clamping and notifies on change.
func (r *Region) store(pct float64) {
	if r.size == pct {
		return
	}
	r.size = pct
	if r.onSizeChange != nil {
		r.onSizeChange(pct)
	}
	r.emit(Event{Kind: EventSizeChanged, Size: pct})
}

// ToggleCollapse flips the collapsed flag and returns the new state.
// Sibling sizes are not touched.
func (r *Region) ToggleCollapse() bool {
	r.collapsed = !r.collapsed
	if r.onCollapse != nil {
		r.onCollapse(r.collapsed)
	}
	r.emit(Event{Kind: EventCollapsed, State: r.collapsed})
	if r.area != nil {
		r.area.relayout()
	}
	return r.collapsed
}

// ToggleFullscreen flips the fullscreen flag and returns the new state.
// The stored percentages of the region and its siblings stay as they are,
// so leaving fullscreen restores the previous layout exactly.
func (r *Region) ToggleFullscreen() bool {
	r.fullscreen = !r.fullscreen
	if r.onFullscreen != nil {
		r.onFullscreen(r.fullscreen)
	}
	r.emit(Event{Kind: EventFullscreen, State: r.fullscreen})
	if r.area != nil {
		r.area.relayout()
	}
	return r.fullscreen
}

// Close hides the region. It stays in the Area's collection but leaves the
// visible pool and gutter generation.
func (r *Region) Close() {
	if r.hidden {
		return
	}
	r.hidden = true
	if r.onClose != nil {
		r.onClose()
	}
	r.emit(Event{Kind: EventClosed})
	if r.area != nil {
		r.area.UpdateVisibleRegions()
	}
}

// Show makes a closed region visible again.
func (r *Region) Show() {
	if !r.hidden {
		return
	}
	r.hidden = false
	r.emit(Event{Kind: EventOpened, State: true})
	if r.area != nil {
		r.area.UpdateVisibleRegions()
	}
}

// SetOnSizeChange sets the callback for size changes.
func (r *Region) SetOnSizeChange(fn func(size float64)) {
	r.onSizeChange = fn
}

// SetOnCollapse sets the callback for collapse toggles.
func (r *Region) SetOnCollapse(fn func(collapsed bool)) {
	r.onCollapse = fn
}

// SetOnFullscreen sets the callback for fullscreen toggles.
func (r *Region) SetOnFullscreen(fn func(fullscreen bool)) {
	r.onFullscreen = fn
}

// SetOnClose sets the callback for when the region closes.
func (r *Region) SetOnClose(fn func()) {
	r.onClose = fn
}

// emit forwards a region event to the owning Area.
func (r *Region) emit(ev Event) {
	if r.area == nil {
		return
	}
	ev.RegionID = r.id
	ev.Gutter = -1
	r.area.emit(ev)
}
