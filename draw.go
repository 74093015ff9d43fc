package panelarea

// Draw appends the area's regions, header buttons and gutters to dl using the
// geometry of the last arrange. pointer is the current pointer position, used
// for hover highlighting. Nested areas are drawn clipped to their region body.
func (a *Area) Draw(dl *DrawList, style Style, pointer Vec2) {
	if a.destroyed || a.bounds.Empty() {
		return
	}

	if a.fullscreenRegion() != nil {
		dl.AddRect(a.bounds, style.BackdropColor)
	}

	for _, lay := range a.layouts {
		a.drawRegion(dl, style, lay, pointer)
	}

	for _, g := range a.gutters {
		if g.Rect.Empty() {
			continue
		}
		color := style.GutterColor
		switch {
		case g.Dragging:
			color = style.GutterActiveColor
		case a.session == nil && g.Rect.Contains(pointer):
			color = style.GutterHoveredColor
		}
		dl.AddRect(g.Rect, color)
		a.drawGrip(dl, style, g.Rect)
	}
}

func (a *Area) drawRegion(dl *DrawList, style Style, lay RegionLayout, pointer Vec2) {
	if lay.Rect.Empty() {
		return
	}
	dl.AddRect(lay.Rect, style.RegionColor)
	if !lay.Header.Empty() {
		dl.AddRect(lay.Header, style.HeaderColor)
	}

	for b := RegionButton(0); b < regionButtonCount; b++ {
		r := lay.Buttons[b]
		if r.Empty() {
			continue
		}
		color := style.ButtonColor
		if b == ButtonClose {
			color = style.CloseButtonColor
		}
		if r.Contains(pointer) {
			color = style.ButtonHoveredColor
		}
		inner := r.Inset(r.H / 5)
		dl.AddRect(inner, color)
		drawButtonGlyph(dl, style, b, inner.Inset(inner.H/4), lay.Region)
	}

	if c := lay.Region.content; c != nil && !lay.Body.Empty() {
		dl.PushClipRect(lay.Body)
		c.Draw(dl, style, pointer)
		dl.PopClipRect()
	}

	dl.AddRectOutline(lay.Rect, style.RegionBorderColor, style.BorderSize)
}

// drawButtonGlyph marks a header button with its state.
func drawButtonGlyph(dl *DrawList, style Style, b RegionButton, r Rect, region *Region) {
	if r.Empty() {
		return
	}
	c := style.HeaderTextColor
	switch b {
	case ButtonCollapse:
		if region.collapsed {
			// Pointing right.
			dl.AddTriangle(Vec2{r.X, r.Y}, Vec2{r.X + r.W, r.Y + r.H/2}, Vec2{r.X, r.Y + r.H}, c)
		} else {
			// Pointing down.
			dl.AddTriangle(Vec2{r.X, r.Y}, Vec2{r.X + r.W, r.Y}, Vec2{r.X + r.W/2, r.Y + r.H}, c)
		}
	case ButtonFullscreen:
		if region.fullscreen {
			dl.AddRect(r.Inset(r.W/4), c)
		} else {
			dl.AddRectOutline(r, c, 1)
		}
	case ButtonClose:
		dl.AddRect(Rect{X: r.X, Y: r.Y + r.H/2 - 1, W: r.W, H: 2}, c)
	}
}

// drawGrip draws three dots across the middle of a gutter.
func (a *Area) drawGrip(dl *DrawList, style Style, g Rect) {
	const dot = 2
	const spacing = 4
	cx := g.X + g.W/2
	cy := g.Y + g.H/2
	for i := -1; i <= 1; i++ {
		off := float32(i) * (dot + spacing)
		if a.direction == Vertical {
			dl.AddRect(Rect{X: cx + off - dot/2, Y: cy - dot/2, W: dot, H: dot}, style.GripColor)
		} else {
			dl.AddRect(Rect{X: cx - dot/2, Y: cy + off - dot/2, W: dot, H: dot}, style.GripColor)
		}
	}
}
