package terminal

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/panelarea"
)

func newTestScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen, *panelarea.Area) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(w, h)

	root := panelarea.NewArea("root", panelarea.WithGutterSize(1), panelarea.WithGap(1))
	root.Add(
		panelarea.NewRegion(panelarea.WithID("left"), panelarea.WithTitle("Left"), panelarea.WithSize(50)),
		panelarea.NewRegion(panelarea.WithID("right"), panelarea.WithTitle("Right"), panelarea.WithSize(50)),
	)
	return New(sim, root), sim, root
}

func mouse(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}

func size(t *testing.T, a *panelarea.Area, id string) float64 {
	t.Helper()
	r := a.Region(id)
	if r == nil {
		t.Fatalf("region %q not found", id)
	}
	s, _ := r.Size()
	return s
}

func cellRune(sim tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := sim.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return 0
	}
	return c.Runes[0]
}

func TestNew_SizesRootToScreen(t *testing.T) {
	_, _, root := newTestScreen(t, 80, 24)

	b := root.Bounds()
	if b.W != 80 || b.H != 24 {
		t.Errorf("Expected root bounds 80x24, got %vx%v", b.W, b.H)
	}
	if root.Metrics() != panelarea.TerminalMetrics() {
		t.Errorf("Expected terminal metrics, got %+v", root.Metrics())
	}
	if len(root.Gutters()) != 1 {
		t.Fatalf("Expected 1 gutter, got %d", len(root.Gutters()))
	}
}

func TestHandleEvent_MouseDragResizes(t *testing.T) {
	s, _, root := newTestScreen(t, 80, 24)

	// Regions are 39.5 cells wide; the gutter occupies column 39.
	s.HandleEvent(mouse(39, 10, tcell.Button1))
	if !root.Dragging() {
		t.Fatal("Expected drag to start on gutter column")
	}

	s.HandleEvent(mouse(29, 10, tcell.Button1))
	// 10 cells of 80 is 12.5%.
	if got := size(t, root, "left"); math.Abs(got-37.5) > 1e-9 {
		t.Errorf("Expected left size 37.5, got %v", got)
	}
	if got := size(t, root, "right"); math.Abs(got-62.5) > 1e-9 {
		t.Errorf("Expected right size 62.5, got %v", got)
	}

	s.HandleEvent(mouse(29, 10, tcell.ButtonNone))
	if root.Dragging() {
		t.Error("Expected drag to end on button release")
	}
	if n := s.Surface().ListenerCount(); n != 0 {
		t.Errorf("Expected no listeners after release, got %d", n)
	}
}

func TestHandleEvent_FocusLossCancelsDrag(t *testing.T) {
	s, _, root := newTestScreen(t, 80, 24)

	var ended []panelarea.Event
	root.Observe(func(ev panelarea.Event) {
		if ev.Kind == panelarea.EventDragEnd {
			ended = append(ended, ev)
		}
	})

	s.HandleEvent(mouse(39, 5, tcell.Button1))
	s.HandleEvent(mouse(45, 5, tcell.Button1))
	s.HandleEvent(tcell.NewEventFocus(false))

	if root.Dragging() {
		t.Fatal("Expected focus loss to cancel the drag")
	}
	if len(ended) != 1 || !ended[0].State {
		t.Fatalf("Expected one cancelled drag end event, got %+v", ended)
	}

	before := size(t, root, "left")
	s.HandleEvent(mouse(60, 5, tcell.ButtonNone))
	if got := size(t, root, "left"); got != before {
		t.Errorf("Expected stray move to be ignored, size went from %v to %v", before, got)
	}
}

func TestHandleEvent_CloseButtonHidesRegion(t *testing.T) {
	s, _, root := newTestScreen(t, 80, 24)

	// Left region spans [0, 39.5); its close button is the last header cell.
	s.HandleEvent(mouse(38, 0, tcell.Button1))
	s.HandleEvent(mouse(38, 0, tcell.ButtonNone))

	if !root.Region("left").Hidden() {
		t.Fatal("Expected left region to be closed")
	}
	if got := size(t, root, "right"); math.Abs(got-100) > 1e-9 {
		t.Errorf("Expected right region to take 100%%, got %v", got)
	}
	if len(root.Gutters()) != 0 {
		t.Errorf("Expected no gutters, got %d", len(root.Gutters()))
	}
}

func TestHandleEvent_ResizeFollowsTerminal(t *testing.T) {
	s, sim, root := newTestScreen(t, 80, 24)

	sim.SetSize(120, 40)
	s.HandleEvent(tcell.NewEventResize(120, 40))

	b := root.Bounds()
	if b.W != 120 || b.H != 40 {
		t.Errorf("Expected root bounds 120x40, got %vx%v", b.W, b.H)
	}
}

func TestHandleEvent_Keys(t *testing.T) {
	s, _, root := newTestScreen(t, 80, 24)

	s.HandleEvent(mouse(39, 5, tcell.Button1))
	if quit := s.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); quit {
		t.Error("Expected Escape during a drag to cancel, not quit")
	}
	if root.Dragging() {
		t.Error("Expected Escape to cancel the drag")
	}
	if quit := s.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); !quit {
		t.Error("Expected Escape while idle to quit")
	}
	if quit := s.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)); !quit {
		t.Error("Expected Ctrl+C to quit")
	}
}

// newNestedScreen puts a vertical top/bottom area inside the left region.
func newNestedScreen(t *testing.T) (*Screen, *panelarea.Area) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(80, 24)

	inner := panelarea.NewArea("inner",
		panelarea.WithDirection(panelarea.Vertical),
		panelarea.WithGutterSize(1),
		panelarea.WithGap(1),
	)
	inner.Add(
		panelarea.NewRegion(panelarea.WithID("top"), panelarea.WithSize(50)),
		panelarea.NewRegion(panelarea.WithID("bottom"), panelarea.WithSize(50)),
	)
	root := panelarea.NewArea("root", panelarea.WithGutterSize(1), panelarea.WithGap(1))
	root.Add(
		panelarea.NewRegion(panelarea.WithID("left"), panelarea.WithSize(50), panelarea.WithContent(inner)),
		panelarea.NewRegion(panelarea.WithID("right"), panelarea.WithSize(50)),
	)
	return New(sim, root), inner
}

func TestHandleEvent_EscapeCancelsNestedDrag(t *testing.T) {
	s, inner := newNestedScreen(t)

	// The left body spans rows 1-23; the inner gutter is on row 12.
	s.HandleEvent(mouse(10, 12, tcell.Button1))
	if !inner.Dragging() {
		t.Fatal("Expected drag to start on the nested gutter")
	}
	s.HandleEvent(mouse(10, 14, tcell.Button1))
	if got := size(t, inner, "top"); got <= 50 {
		t.Fatalf("Expected top to grow during the drag, got %v", got)
	}

	if quit := s.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); quit {
		t.Error("Expected Escape during a nested drag to cancel, not quit")
	}
	if inner.Dragging() {
		t.Error("Expected Escape to end the nested drag")
	}
	if n := s.surface.ListenerCount(); n != 0 {
		t.Errorf("Expected no listeners after cancel, got %d", n)
	}
}

func TestHandleEvent_HeldButtonAfterEscapeDoesNotRestartDrag(t *testing.T) {
	s, _, root := newTestScreen(t, 80, 24)

	s.HandleEvent(mouse(39, 10, tcell.Button1))
	s.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	// The button is still held on the gutter.
	s.HandleEvent(mouse(39, 10, tcell.Button1))
	if root.Dragging() {
		t.Fatal("Expected held button after Escape not to start a drag")
	}
	s.HandleEvent(mouse(30, 10, tcell.Button1))
	if got := size(t, root, "left"); math.Abs(got-50) > 1e-9 {
		t.Errorf("Expected left unchanged at 50, got %v", got)
	}

	s.HandleEvent(mouse(30, 10, tcell.ButtonNone))
	s.HandleEvent(mouse(39, 10, tcell.Button1))
	if !root.Dragging() {
		t.Error("Expected a fresh press after release to start a drag")
	}
}

func TestRun_CancelReleasesNestedDrag(t *testing.T) {
	s, inner := newNestedScreen(t)
	s.HandleEvent(mouse(10, 12, tcell.Button1))
	if !inner.Dragging() {
		t.Fatal("Expected drag to start on the nested gutter")
	}

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- s.Run(ctx) }()
	cancel()

	select {
	case <-errc:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if inner.Dragging() {
		t.Error("Expected Run to cancel the nested drag on exit")
	}
	if n := s.surface.ListenerCount(); n != 0 {
		t.Errorf("Expected no listeners after Run, got %d", n)
	}
}

func TestDraw_RendersHeadersAndGutter(t *testing.T) {
	s, sim, _ := newTestScreen(t, 80, 24)
	s.Draw()

	if got := cellRune(sim, 39, 10); got != '│' {
		t.Errorf("Expected gutter glyph at column 39, got %q", got)
	}
	if got := cellRune(sim, 1, 0); got != 'L' {
		t.Errorf("Expected left title at (1,0), got %q", got)
	}
	if got := cellRune(sim, 38, 0); got != '×' {
		t.Errorf("Expected close glyph at (38,0), got %q", got)
	}
	if got := cellRune(sim, 36, 0); got != '▾' {
		t.Errorf("Expected collapse glyph at (36,0), got %q", got)
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s, _, _ := newTestScreen(t, 40, 10)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- s.Run(ctx) }()
	cancel()

	select {
	case err := <-errc:
		if err != context.Canceled {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
