/*
Package panelarea provides a resizable split-panel layout engine.

# Overview

An Area lays out an ordered list of Regions along one axis. Each visible
sized Region holds a percentage of the Area's main axis and the percentages
always add up to 100. Between two consecutive sized Regions sits a gutter;
dragging it moves size from one neighbour to the other without touching any
other Region.

# Quick Start

	root := panelarea.NewArea("main")
	root.Add(
	    panelarea.NewRegion(panelarea.WithTitle("Tree"), panelarea.WithSize(25), panelarea.WithMaxSize(40)),
	    panelarea.NewRegion(panelarea.WithTitle("Editor"), panelarea.WithSize(75)),
	)

	renderer, _ := opengl.NewRenderer(1280, 720)
	host := panelarea.NewHost(renderer, root)
	opengl.NewPointerAdapter(window, host)

	for !window.ShouldClose() {
	    glfw.PollEvents()
	    host.Begin(panelarea.Vec2{X: 1280, Y: 720})
	    host.End()
	    window.SwapBuffers()
	}

The terminal backend drives the same Area from tcell events:

	screen, _ := tcell.NewScreen()
	screen.Init()
	defer screen.Fini()
	terminal.New(screen, root).Run(ctx)

# Sizes and Normalization

Region sizes are percentages clamped to [MinSize, MaxSize] (20 and 100 by
default). Whenever the set of visible Regions changes (Add, Insert, Remove,
Close, Show) the Area checks the sum of the visible sized Regions; when it is
off 100 every one of them is reset to an equal share. A set whose sizes
already add up to 100 is kept as given.

Regions created with WithAutoSize take a fixed pixel length, are never
resized by a drag and have no gutter of their own.

Collapsed and fullscreen Regions keep their stored percentage. Leaving the
mode restores the previous layout exactly. Gutters next to a collapsed
Region, and every gutter while a Region is fullscreen, cannot be dragged.

# Drag Sessions

A primary pointer-down on a gutter starts a DragSession. The session takes
global move, up and cancel listeners on the Surface so a fast drag that
leaves the gutter is still tracked; the listeners are released exactly once
when the session ends by pointer-up, pointer-cancel, Area.CancelDrag or
Area.Destroy. Only one session runs per Area.

Each move converts the pointer offset since drag start into a percentage of
the Area's main-axis length and hands it to the ResizePolicy:

	ResizeHardStop  the gutter follows the pointer until a neighbour reaches
	                a bound, then stops there; the pair sum is exact
	ResizeSplit     both neighbours are clamped on their own and the error
	                is split between them; the sum is approximate

Moves are ignored while the Area has no length.

# Events

Area.Observe registers an Observer for EventSizeChanged, EventDragStart,
EventDragEnd, EventCollapsed, EventFullscreen, EventClosed and EventOpened.
Events from nested Areas bubble to their ancestors with the AreaID of the
Area that produced them. The relay/socketio package forwards them to a
socket.io server.

# Layout Files

The config package reads Areas from HCL:

	area "main" {
	  region "tree"   {
	    size     = 25
	    max_size = 40
	  }
	  region "editor" { size = 75 }
	}

# Logging

Drag sessions, normalization and structural changes are logged with
log/slog at debug level. Call SetVerbose(true) to see them or SetLogger to
route them elsewhere.
*/
package panelarea
