// Package terminal runs panelarea layouts in a terminal using tcell.
//
// Regions are drawn as cell rectangles with a one-row title bar, gutters as
// box-drawing lines. Pointer input comes from terminal mouse reports, which
// only carry button state, so presses and releases are derived by edge
// detection on the primary button.
package terminal

import (
	"context"
	"log/slog"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/panelarea"
)

// Styles are the cell styles used to draw a layout.
type Styles struct {
	Base         tcell.Style
	Region       tcell.Style
	Header       tcell.Style
	Button       tcell.Style
	CloseButton  tcell.Style
	Gutter       tcell.Style
	GutterHover  tcell.Style
	GutterActive tcell.Style
}

// DefaultStyles returns the default terminal palette.
func DefaultStyles() Styles {
	base := tcell.StyleDefault
	return Styles{
		Base:         base,
		Region:       base.Background(tcell.ColorBlack).Foreground(tcell.ColorSilver),
		Header:       base.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite).Bold(true),
		Button:       base.Background(tcell.ColorNavy).Foreground(tcell.ColorAqua),
		CloseButton:  base.Background(tcell.ColorNavy).Foreground(tcell.ColorRed),
		Gutter:       base.Foreground(tcell.ColorGray),
		GutterHover:  base.Foreground(tcell.ColorTeal),
		GutterActive: base.Foreground(tcell.ColorAqua).Bold(true),
	}
}

// Screen binds a root Area to a tcell screen.
type Screen struct {
	screen  tcell.Screen
	root    *panelarea.Area
	surface *panelarea.Surface
	tracker panelarea.PointerTracker
	styles  Styles
	logger  *slog.Logger

	pointer    panelarea.Vec2
	hasPointer bool
}

// Option configures a Screen.
type Option func(*Screen)

// WithStyles sets the cell styles.
func WithStyles(s Styles) Option {
	return func(sc *Screen) { sc.styles = s }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(sc *Screen) { sc.logger = l }
}

// New binds root to an initialized tcell screen. Mouse and focus reporting
// are enabled, root switches to cell metrics and is sized to the screen.
func New(screen tcell.Screen, root *panelarea.Area, opts ...Option) *Screen {
	s := &Screen{
		screen:  screen,
		root:    root,
		surface: panelarea.NewSurface(),
		styles:  DefaultStyles(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	screen.EnableMouse(tcell.MouseDragEvents)
	screen.EnableFocus()

	root.SetMetrics(panelarea.TerminalMetrics())
	root.Attach(s.surface)

	w, h := screen.Size()
	root.Resize(panelarea.Rect{W: float32(w), H: float32(h)})
	return s
}

// Surface returns the input surface the screen dispatches into.
func (s *Screen) Surface() *panelarea.Surface {
	return s.surface
}

// Root returns the root area.
func (s *Screen) Root() *panelarea.Area {
	return s.root
}

// cellCenter maps a cell to the pointer coordinate of its center, so one
// cell wide gutters are hit exactly.
func cellCenter(x, y int) panelarea.Vec2 {
	return panelarea.Vec2{X: float32(x) + 0.5, Y: float32(y) + 0.5}
}

// HandleEvent applies one terminal event and reports whether the loop
// should stop. It does not redraw.
func (s *Screen) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		s.logger.Debug("terminal resized", "width", w, "height", h)
		s.root.Resize(panelarea.Rect{W: float32(w), H: float32(h)})
		s.screen.Sync()

	case *tcell.EventMouse:
		x, y := ev.Position()
		pos := cellCenter(x, y)
		s.pointer, s.hasPointer = pos, true
		down := ev.Buttons()&tcell.Button1 != 0
		for _, pe := range s.tracker.Sample(pos, down) {
			s.surface.Dispatch(pe)
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			for _, pe := range s.tracker.Reset() {
				s.surface.Dispatch(pe)
			}
		}

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return true
		case tcell.KeyEscape:
			if s.dragging() {
				// The button may still be held: the tracker keeps it down so
				// further reports are moves, not a new press.
				s.cancelDrags()
				return false
			}
			return true
		}
	}
	return false
}

// dragging reports whether any area of the tree holds a drag session.
// Sessions are the only global listeners on the surface.
func (s *Screen) dragging() bool {
	return s.surface.ListenerCount() > 0
}

// cancelDrags ends the drag session of whichever area owns one.
func (s *Screen) cancelDrags() {
	if s.dragging() {
		s.logger.Debug("cancelling drag")
		s.surface.Dispatch(panelarea.CancelEvent())
	}
}

// Run draws the layout and processes events until ctx is done or the user
// quits. Events are polled on a separate goroutine and applied on the
// calling goroutine only.
func (s *Screen) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	s.Draw()
	for {
		select {
		case <-ctx.Done():
			s.cancelDrags()
			return ctx.Err()
		case ev := <-events:
			if s.HandleEvent(ev) {
				s.cancelDrags()
				return nil
			}
			s.Draw()
		}
	}
}

// Draw renders the layout and shows it.
func (s *Screen) Draw() {
	s.screen.Fill(' ', s.styles.Base)
	s.drawArea(s.root)
	s.screen.Show()
}

// cells converts a rectangle to the half-open cell range it covers.
func cells(r panelarea.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(float64(r.X)))
	y0 = int(math.Floor(float64(r.Y)))
	x1 = int(math.Floor(float64(r.X + r.W)))
	y1 = int(math.Floor(float64(r.Y + r.H)))
	return x0, y0, x1, y1
}

func (s *Screen) fill(r panelarea.Rect, ch rune, style tcell.Style) {
	x0, y0, x1, y1 := cells(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (s *Screen) text(x, y, maxX int, str string, style tcell.Style) {
	for _, ch := range str {
		if x >= maxX {
			return
		}
		s.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (s *Screen) drawArea(a *panelarea.Area) {
	for _, lay := range a.Layout() {
		s.drawRegion(lay)
	}

	ch := '│'
	if a.Direction() == panelarea.Vertical {
		ch = '─'
	}
	for _, g := range a.Gutters() {
		if g.Rect.Empty() {
			continue
		}
		style := s.styles.Gutter
		switch {
		case g.Dragging:
			style = s.styles.GutterActive
		case !a.Dragging() && s.hasPointer && g.Rect.Contains(s.pointer):
			style = s.styles.GutterHover
		}
		s.fill(g.Rect, ch, style)
	}
}

func (s *Screen) drawRegion(lay panelarea.RegionLayout) {
	if lay.Rect.Empty() {
		return
	}
	r := lay.Region

	if !lay.Header.Empty() {
		s.fill(lay.Header, ' ', s.styles.Header)
		x0, y0, x1, _ := cells(lay.Header)
		if bx, _, _, _ := cells(lay.Buttons[panelarea.ButtonCollapse]); !lay.Buttons[panelarea.ButtonCollapse].Empty() {
			x1 = bx
		}
		s.text(x0+1, y0, x1, r.Title(), s.styles.Header)

		for b, glyph := range buttonGlyphs(r) {
			rect := lay.Buttons[b]
			if rect.Empty() {
				continue
			}
			style := s.styles.Button
			if panelarea.RegionButton(b) == panelarea.ButtonClose {
				style = s.styles.CloseButton
			}
			bx, by, _, _ := cells(rect)
			s.screen.SetContent(bx, by, glyph, nil, style)
		}
	}

	if lay.Body.Empty() {
		return
	}
	if c := r.Content(); c != nil {
		s.drawArea(c)
		return
	}
	s.fill(lay.Body, ' ', s.styles.Region)
}

// buttonGlyphs returns the header glyphs indexed by RegionButton.
func buttonGlyphs(r *panelarea.Region) [3]rune {
	g := [3]rune{'▾', '□', '×'}
	if r.Collapsed() {
		g[panelarea.ButtonCollapse] = '▸'
	}
	if r.Fullscreen() {
		g[panelarea.ButtonFullscreen] = '■'
	}
	return g
}
