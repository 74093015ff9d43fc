package panelarea

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRegion_Defaults(t *testing.T) {
	r := NewRegion()

	if r.ID() == "" {
		t.Error("Expected a generated id")
	}
	if other := NewRegion(); other.ID() == r.ID() {
		t.Errorf("Expected distinct ids, both got %q", r.ID())
	}
	size, sized := r.Size()
	if !sized || size != 0 {
		t.Errorf("Expected sized region at 0, got %v (sized=%v)", size, sized)
	}
	if r.MinSize() != DefaultMinSize || r.MaxSize() != DefaultMaxSize {
		t.Errorf("Expected bounds [%d, %d], got [%v, %v]", DefaultMinSize, DefaultMaxSize, r.MinSize(), r.MaxSize())
	}
	if r.Hidden() || r.Collapsed() || r.Fullscreen() {
		t.Error("Expected a visible, expanded, windowed region")
	}
}

func TestRegion_SetSizeClamps(t *testing.T) {
	tests := []struct {
		name      string
		min, max  float64
		candidate float64
		want      float64
	}{
		{"inside", 20, 80, 45, 45},
		{"below min", 20, 80, 5, 20},
		{"above max", 20, 80, 95, 80},
		{"max below min uses min", 30, 10, 50, 30},
		{"negative", 0, 100, -10, 0},
		{"extreme high", DefaultMinSize, DefaultMaxSize, 10000, DefaultMaxSize},
		{"extreme low", DefaultMinSize, DefaultMaxSize, -50, DefaultMinSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegion(WithSize(50), WithMinSize(tt.min), WithMaxSize(tt.max))
			got := r.SetSize(tt.candidate)
			if !approx(got, tt.want) {
				t.Errorf("Expected SetSize(%v) = %v, got %v", tt.candidate, tt.want, got)
			}
			if size, _ := r.Size(); !approx(size, tt.want) {
				t.Errorf("Expected stored size %v, got %v", tt.want, size)
			}
		})
	}
}

func TestRegion_SetSizeIgnoredWhenCollapsedOrFullscreen(t *testing.T) {
	r := NewRegion(WithSize(40))

	r.ToggleCollapse()
	if got := r.SetSize(70); got != 40 {
		t.Errorf("Expected collapsed SetSize to return previous 40, got %v", got)
	}
	r.ToggleCollapse()

	r.ToggleFullscreen()
	if got := r.SetSize(70); got != 40 {
		t.Errorf("Expected fullscreen SetSize to return previous 40, got %v", got)
	}
	r.ToggleFullscreen()

	if got := r.SetSize(70); got != 70 {
		t.Errorf("Expected SetSize to apply after leaving modes, got %v", got)
	}
}

func TestRegion_AutoSizeIgnoresSetSize(t *testing.T) {
	r := NewRegion(WithAutoSize(120))

	if got := r.SetSize(50); got != 0 {
		t.Errorf("Expected auto region SetSize to return 0, got %v", got)
	}
	if _, sized := r.Size(); sized {
		t.Error("Expected auto region to stay unsized")
	}
	if r.IntrinsicLength() != 120 {
		t.Errorf("Expected intrinsic length 120, got %v", r.IntrinsicLength())
	}
}

func TestRegion_Callbacks(t *testing.T) {
	r := NewRegion(WithSize(50))

	var sizes []float64
	var collapsed, fullscreen []bool
	closed := 0
	r.SetOnSizeChange(func(s float64) { sizes = append(sizes, s) })
	r.SetOnCollapse(func(c bool) { collapsed = append(collapsed, c) })
	r.SetOnFullscreen(func(f bool) { fullscreen = append(fullscreen, f) })
	r.SetOnClose(func() { closed++ })

	r.SetSize(60)
	r.SetSize(60) // unchanged, no callback
	if got := r.ToggleCollapse(); !got {
		t.Error("Expected ToggleCollapse to return true")
	}
	if got := r.ToggleCollapse(); got {
		t.Error("Expected second ToggleCollapse to return false")
	}
	if got := r.ToggleFullscreen(); !got {
		t.Error("Expected ToggleFullscreen to return true")
	}
	r.Close()
	r.Close()

	if len(sizes) != 1 || sizes[0] != 60 {
		t.Errorf("Expected one size callback with 60, got %v", sizes)
	}
	if len(collapsed) != 2 || !collapsed[0] || collapsed[1] {
		t.Errorf("Expected collapse callbacks [true false], got %v", collapsed)
	}
	if len(fullscreen) != 1 || !fullscreen[0] {
		t.Errorf("Expected fullscreen callbacks [true], got %v", fullscreen)
	}
	if closed != 1 {
		t.Errorf("Expected close callback once, got %d", closed)
	}
	if !r.Hidden() {
		t.Error("Expected closed region to be hidden")
	}
}

func TestRegion_TogglesKeepSiblingSizes(t *testing.T) {
	a := NewArea("a")
	r1 := NewRegion(WithSize(30))
	r2 := NewRegion(WithSize(70))
	a.Add(r1, r2)

	r1.ToggleCollapse()
	r1.ToggleFullscreen()

	if s, _ := r2.Size(); s != 70 {
		t.Errorf("Expected sibling size 70, got %v", s)
	}
	if s, _ := r1.Size(); s != 30 {
		t.Errorf("Expected own size 30, got %v", s)
	}
}
