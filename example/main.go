// Example opens a window with a resizable split layout.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The layout is read from example/layout.hcl (see -layout). Drag the gutters
// between regions to resize them; the header buttons collapse, maximize and
// close a region. With -relay the layout events are forwarded to a socket.io
// server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/panelarea"
	"github.com/go-theft-auto/panelarea/backend/opengl"
	"github.com/go-theft-auto/panelarea/config"
	"github.com/go-theft-auto/panelarea/relay/socketio"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "panelarea example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	layoutPath := flag.String("layout", "example/layout.hcl", "HCL layout file")
	areaName := flag.String("area", "", "area block to show (default: first)")
	relayURL := flag.String("relay", "", "socket.io URL to forward layout events to")
	light := flag.Bool("light", false, "use the light style")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	panelarea.SetVerbose(*verbose)
	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if err := run(*layoutPath, *areaName, *relayURL, *light); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadRoot(path, name string) (*panelarea.Area, error) {
	file, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	block := file.Root()
	if name != "" {
		block = file.Area(name)
	}
	if block == nil {
		return nil, fmt.Errorf("layout %s: no area %q", path, name)
	}
	return block.Build(), nil
}

func run(layoutPath, areaName, relayURL string, light bool) error {
	root, err := loadRoot(layoutPath, areaName)
	if err != nil {
		return err
	}

	if relayURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		relay, err := socketio.Dial(ctx, relayURL)
		cancel()
		if err != nil {
			return fmt.Errorf("relay: %w", err)
		}
		defer relay.Close()
		relay.Attach(root)
	}

	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	w, h := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(w, h)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	style := panelarea.DefaultStyle()
	if light {
		style = panelarea.LightStyle()
	}
	host := panelarea.NewHost(renderer, root, panelarea.WithStyle(style))
	defer host.Close()

	opengl.NewPointerAdapter(window, host)

	root.Observe(func(ev panelarea.Event) {
		if ev.Kind == panelarea.EventDragEnd {
			slog.Debug("drag finished", "area", ev.AreaID, "gutter", ev.Gutter, "cancelled", ev.State)
		}
	})

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		host.Begin(panelarea.Vec2{X: float32(w), Y: float32(h)})
		if err := host.End(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
