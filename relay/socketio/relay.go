// Package socketio forwards panelarea layout events to a socket.io server,
// so a page embedding the layout can follow resizes, collapses and closes.
//
// Every event is emitted as "panelarea:<kind>" (for example
// "panelarea:size_changed") with a map payload. Emission happens on a relay
// goroutine; the UI loop only enqueues and never blocks.
package socketio

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/go-theft-auto/panelarea"
)

const (
	// DefaultPrefix is prepended to event kind names.
	DefaultPrefix = "panelarea:"
	// DefaultBuffer is the number of events queued before new ones drop.
	DefaultBuffer = 256
	// DefaultTimeout bounds the socket.io connection handshake.
	DefaultTimeout = 15 * time.Second
)

// EmitFunc sends one event with its payload.
type EmitFunc func(event string, payload any)

// Relay queues layout events and emits them in order.
type Relay struct {
	emit       EmitFunc
	disconnect func()
	logger     *slog.Logger
	prefix     string

	events    chan panelarea.Event
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	dropped   atomic.Uint64

	// Dial settings
	namespace string
	timeout   time.Duration
	insecure  bool
	buffer    int
}

// Option configures a Relay.
type Option func(*Relay)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Relay) { r.logger = l }
}

// WithPrefix replaces DefaultPrefix.
func WithPrefix(p string) Option {
	return func(r *Relay) { r.prefix = p }
}

// WithBuffer sets the queue length.
func WithBuffer(n int) Option {
	return func(r *Relay) {
		if n > 0 {
			r.buffer = n
		}
	}
}

// WithNamespace selects the socket.io namespace used by Dial.
func WithNamespace(ns string) Option {
	return func(r *Relay) { r.namespace = ns }
}

// WithTimeout bounds the Dial handshake.
func WithTimeout(d time.Duration) Option {
	return func(r *Relay) { r.timeout = d }
}

// WithInsecureSkipVerify disables TLS certificate verification for Dial.
func WithInsecureSkipVerify(skip bool) Option {
	return func(r *Relay) { r.insecure = skip }
}

func newRelay(opts []Option) *Relay {
	r := &Relay{
		logger:  slog.Default(),
		prefix:  DefaultPrefix,
		timeout: DefaultTimeout,
		buffer:  DefaultBuffer,
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("component", "panelarea_relay")
	return r
}

// New creates a relay that sends through emit. It starts the relay
// goroutine; call Close to stop it.
func New(emit EmitFunc, opts ...Option) *Relay {
	r := newRelay(opts)
	r.emit = emit
	r.start()
	return r
}

// Dial connects to the socket.io server at rawURL and returns a relay
// emitting on that connection. It waits for the connect event, a connect
// error, ctx or the configured timeout, whichever comes first.
func Dial(ctx context.Context, rawURL string, opts ...Option) (*Relay, error) {
	r := newRelay(opts)
	logger := r.logger.With("url", rawURL)

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("failed to parse URL: %q has no scheme or host", rawURL)
	}

	sopts := socket.DefaultOptions()
	sopts.SetPath(parsedURL.Path)
	if r.insecure {
		logger.Warn("Skipping TLS certificate verification")
		sopts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	sopts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)
	report := func(err error) {
		select {
		case connectChan <- err:
		default:
		}
	}

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, sopts)
	io := manager.Socket(r.namespace, sopts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Connected", "sid", io.Id())
		report(nil)
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		var err error
		if len(errs) > 0 {
			err, _ = errs[0].(error)
		}
		if err == nil {
			err = fmt.Errorf("connect_error: %v", errs)
		}
		logger.Debug("Connect error", "error", err)
		report(err)
	})

	logger.Debug("Initiating connection...")
	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(r.timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %v waiting for socket.io connection", r.timeout)
	}

	r.emit = func(event string, payload any) {
		io.Emit(event, payload)
	}
	r.disconnect = func() {
		logger.Info("Disconnecting", "sid", io.Id())
		io.Disconnect()
	}
	r.start()
	return r, nil
}

func (r *Relay) start() {
	r.events = make(chan panelarea.Event, r.buffer)
	r.wg.Add(1)
	go r.loop()
}

func (r *Relay) loop() {
	defer r.wg.Done()
	for {
		select {
		case ev := <-r.events:
			r.send(ev)
		case <-r.done:
			// Flush what is already queued.
			for {
				select {
				case ev := <-r.events:
					r.send(ev)
				default:
					return
				}
			}
		}
	}
}

func (r *Relay) send(ev panelarea.Event) {
	name := r.EventName(ev)
	r.logger.Debug("Emitting event", "event", name, "area", ev.AreaID, "region", ev.RegionID)
	r.emit(name, Payload(ev))
}

// EventName returns the socket.io event name for ev.
func (r *Relay) EventName(ev panelarea.Event) string {
	return r.prefix + ev.Kind.String()
}

// Payload converts ev into the emitted map.
func Payload(ev panelarea.Event) map[string]any {
	return map[string]any{
		"area":   ev.AreaID,
		"region": ev.RegionID,
		"gutter": ev.Gutter,
		"size":   ev.Size,
		"state":  ev.State,
	}
}

// Observe queues ev. It never blocks: when the queue is full the event is
// dropped and counted. Events observed after Close are ignored.
func (r *Relay) Observe(ev panelarea.Event) {
	select {
	case <-r.done:
		return
	default:
	}
	select {
	case r.events <- ev:
	default:
		n := r.dropped.Add(1)
		r.logger.Warn("Relay queue full, dropping event", "event", r.EventName(ev), "dropped", n)
	}
}

// Attach forwards every event of a (and its nested areas) to the relay and
// returns the function that stops forwarding.
func (r *Relay) Attach(a *panelarea.Area) func() {
	return a.Observe(r.Observe)
}

// Dropped returns the number of events dropped on a full queue.
func (r *Relay) Dropped() uint64 {
	return r.dropped.Load()
}

// Close flushes queued events, stops the relay goroutine and disconnects.
// It is safe to call more than once.
func (r *Relay) Close() {
	r.closeOnce.Do(func() {
		close(r.done)
		r.wg.Wait()
		if r.disconnect != nil {
			r.disconnect()
		}
	})
}
