package panelarea

// RegionButton identifies a button in a region header.
type RegionButton uint8

const (
	ButtonCollapse RegionButton = iota
	ButtonFullscreen
	ButtonClose
	regionButtonCount
)

// String returns the button name.
func (b RegionButton) String() string {
	switch b {
	case ButtonCollapse:
		return "collapse"
	case ButtonFullscreen:
		return "fullscreen"
	case ButtonClose:
		return "close"
	}
	return "unknown"
}

// RegionLayout is the pixel geometry of one visible region.
type RegionLayout struct {
	Region  *Region
	Rect    Rect // Whole region
	Header  Rect // Title bar (empty without a header)
	Body    Rect // Content area below the header (empty when collapsed)
	Buttons [regionButtonCount]Rect
}

// Layout returns the region geometry from the last arrange, in visible
// order. While a region is fullscreen only that region is listed.
func (a *Area) Layout() []RegionLayout {
	return append([]RegionLayout(nil), a.layouts...)
}

// Arrange computes the pixel geometry of regions and gutters inside bounds
// without touching sizes. Nested areas are arranged inside their region body
// and inherit the metrics of this area.
func (a *Area) Arrange(bounds Rect) {
	a.arrange(bounds, false)
}

func (a *Area) arrange(bounds Rect, resize bool) {
	a.bounds = bounds
	a.layouts = a.layouts[:0]
	for i := range a.gutters {
		a.gutters[i].Rect = Rect{}
	}

	if fs := a.fullscreenRegion(); fs != nil {
		a.layouts = append(a.layouts, a.layoutRegion(fs, bounds))
		a.arrangeContent(resize)
		return
	}

	d := a.direction
	length := d.length(bounds)
	m := a.metrics

	// Fixed lengths first: gaps, collapsed strips and auto regions.
	var fixed float32
	var pool float64
	if n := len(a.visible); n > 1 {
		fixed = a.gap * float32(n-1)
	}
	for _, r := range a.visible {
		switch {
		case r.collapsed:
			fixed += m.CollapsedLength
		case !r.sized:
			fixed += r.intrinsic
		default:
			pool += r.size
		}
	}
	flex := maxf(0, length-fixed)

	ends := make(map[*Region]float32, len(a.visible))
	var offset float32
	for _, r := range a.visible {
		var l float32
		switch {
		case r.collapsed:
			l = m.CollapsedLength
		case !r.sized:
			l = r.intrinsic
		case pool > 0:
			l = float32(float64(flex) * r.size / pool)
		}
		l = clampf(l, 0, maxf(0, length-offset))
		a.layouts = append(a.layouts, a.layoutRegion(r, d.slice(bounds, offset, l)))
		ends[r] = offset + l
		offset += l + a.gap
	}

	// Each gutter is centered in the gap after its left region.
	for i := range a.gutters {
		end, ok := ends[a.sized[i]]
		if !ok {
			continue
		}
		center := end + a.gap/2
		a.gutters[i].Rect = d.slice(bounds, center-a.gutterSize/2, a.gutterSize)
	}

	a.arrangeContent(resize)
}

// arrangeContent arranges nested areas inside their region bodies.
func (a *Area) arrangeContent(resize bool) {
	for _, lay := range a.layouts {
		c := lay.Region.content
		if c == nil || c.destroyed {
			continue
		}
		c.metrics = a.metrics
		if resize {
			c.Resize(lay.Body)
		} else {
			c.Arrange(lay.Body)
		}
	}
}

// layoutRegion splits a region rectangle into header, body and buttons.
func (a *Area) layoutRegion(r *Region, rect Rect) RegionLayout {
	lay := RegionLayout{Region: r, Rect: rect}
	h := a.metrics.HeaderHeight
	if h <= 0 || rect.Empty() {
		if !r.collapsed {
			lay.Body = rect
		}
		return lay
	}
	h = clampf(h, 0, rect.H)
	lay.Header = Rect{X: rect.X, Y: rect.Y, W: rect.W, H: h}
	if !r.collapsed {
		lay.Body = Rect{X: rect.X, Y: rect.Y + h, W: rect.W, H: rect.H - h}
	}

	// Square buttons from the right edge: close, fullscreen, collapse.
	if rect.W >= h*float32(regionButtonCount)+h {
		x := rect.X + rect.W
		for b := int(regionButtonCount) - 1; b >= 0; b-- {
			x -= h
			lay.Buttons[b] = Rect{X: x, Y: rect.Y, W: h, H: h}
		}
	}
	return lay
}
