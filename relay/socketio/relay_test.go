package socketio

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/panelarea"
)

type emitted struct {
	name    string
	payload map[string]any
}

type recorder struct {
	mu     sync.Mutex
	events []emitted
}

func (r *recorder) emit(name string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, emitted{name: name, payload: payload.(map[string]any)})
}

func (r *recorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.name)
	}
	return out
}

func TestRelay_ForwardsAreaEvents(t *testing.T) {
	rec := &recorder{}
	relay := New(rec.emit)

	area := panelarea.NewArea("main")
	left := panelarea.NewRegion(panelarea.WithID("left"), panelarea.WithSize(50))
	right := panelarea.NewRegion(panelarea.WithID("right"), panelarea.WithSize(50))
	area.Add(left, right)
	stop := relay.Attach(area)

	left.ToggleCollapse()
	right.SetSize(60)
	stop()
	left.ToggleCollapse() // not forwarded

	relay.Close()

	assert.Equal(t, []string{"panelarea:collapsed", "panelarea:size_changed"}, rec.names())

	first := rec.events[0].payload
	assert.Equal(t, "main", first["area"])
	assert.Equal(t, "left", first["region"])
	assert.Equal(t, true, first["state"])
	assert.Equal(t, -1, first["gutter"])

	second := rec.events[1].payload
	assert.Equal(t, "right", second["region"])
	assert.InDelta(t, 60.0, second["size"].(float64), 1e-9)
}

func TestRelay_DragEventsCarryGutter(t *testing.T) {
	rec := &recorder{}
	relay := New(rec.emit, WithPrefix("layout/"))

	surface := panelarea.NewSurface()
	area := panelarea.NewArea("main")
	area.Add(
		panelarea.NewRegion(panelarea.WithSize(50)),
		panelarea.NewRegion(panelarea.WithSize(50)),
	)
	area.Attach(surface)
	area.Resize(panelarea.Rect{W: 1000, H: 500})
	relay.Attach(area)

	require.True(t, area.StartDrag(0, panelarea.Vec2{X: 500, Y: 10}))
	surface.Dispatch(panelarea.MouseEvent(panelarea.PointerUp, 500, 10, panelarea.MouseButtonLeft))
	relay.Close()

	require.Equal(t, []string{"layout/drag_start", "layout/drag_end"}, rec.names())
	assert.Equal(t, 0, rec.events[0].payload["gutter"])
	assert.Equal(t, false, rec.events[1].payload["state"], "released drags are not cancelled")
}

func TestRelay_DropsWhenQueueIsFull(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	var mu sync.Mutex
	sent := 0
	relay := New(func(string, any) {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
		mu.Lock()
		sent++
		mu.Unlock()
	}, WithBuffer(2))

	ev := panelarea.Event{Kind: panelarea.EventSizeChanged, AreaID: "a"}
	relay.Observe(ev)
	<-started // the relay goroutine holds the first event

	for i := 0; i < 5; i++ {
		relay.Observe(ev)
	}
	assert.Equal(t, uint64(3), relay.Dropped())

	close(release)
	relay.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, sent)
}

func TestRelay_CloseIsIdempotent(t *testing.T) {
	rec := &recorder{}
	relay := New(rec.emit)
	relay.Close()
	relay.Close()

	relay.Observe(panelarea.Event{Kind: panelarea.EventClosed})
	assert.Empty(t, rec.names())
}

func TestDial_InvalidURL(t *testing.T) {
	_, err := Dial(context.Background(), "not a url")
	require.Error(t, err)
}

func TestDial_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	_, err := Dial(ctx, "http://127.0.0.1:1/socket.io/", WithTimeout(time.Second))
	require.Error(t, err)
}
