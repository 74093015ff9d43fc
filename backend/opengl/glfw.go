package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/panelarea"
)

// PointerAdapter feeds GLFW window input into a panelarea Host.
//
// Cursor and button callbacks become mouse pointer events in framebuffer
// pixels, losing window focus cancels any drag, and framebuffer size changes
// resize the host.
type PointerAdapter struct {
	window *glfw.Window
	host   *panelarea.Host

	x, y float32
	held bool // Left button pressed inside this window
}

// NewPointerAdapter installs the input callbacks on window.
func NewPointerAdapter(window *glfw.Window, host *panelarea.Host) *PointerAdapter {
	a := &PointerAdapter{
		window: window,
		host:   host,
	}

	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetFocusCallback(a.focusCallback)
	window.SetFramebufferSizeCallback(a.framebufferSizeCallback)

	return a
}

// Position returns the last cursor position in framebuffer pixels.
func (a *PointerAdapter) Position() panelarea.Vec2 {
	return panelarea.Vec2{X: a.x, Y: a.y}
}

// toFramebuffer converts window coordinates to framebuffer pixels, which
// differ on HiDPI displays.
func (a *PointerAdapter) toFramebuffer(xpos, ypos float64) (float32, float32) {
	ww, wh := a.window.GetSize()
	fw, fh := a.window.GetFramebufferSize()
	sx, sy := 1.0, 1.0
	if ww > 0 && wh > 0 {
		sx = float64(fw) / float64(ww)
		sy = float64(fh) / float64(wh)
	}
	return float32(xpos * sx), float32(ypos * sy)
}

func (a *PointerAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.x, a.y = a.toFramebuffer(xpos, ypos)
	a.host.Dispatch(panelarea.MouseEvent(panelarea.PointerMove, a.x, a.y, panelarea.MouseButtonLeft))
}

func (a *PointerAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b < 0 {
		return
	}
	switch action {
	case glfw.Press:
		if b == panelarea.MouseButtonLeft {
			a.held = true
		}
		a.host.Dispatch(panelarea.MouseEvent(panelarea.PointerDown, a.x, a.y, b))
	case glfw.Release:
		// Only the left button ends a drag.
		if b != panelarea.MouseButtonLeft || !a.held {
			return
		}
		a.held = false
		a.host.Dispatch(panelarea.MouseEvent(panelarea.PointerUp, a.x, a.y, b))
	}
}

func (a *PointerAdapter) focusCallback(w *glfw.Window, focused bool) {
	if focused {
		return
	}
	a.held = false
	a.host.Dispatch(panelarea.CancelEvent())
}

func (a *PointerAdapter) framebufferSizeCallback(w *glfw.Window, width, height int) {
	a.host.Resize(width, height)
}

// glfwMouseButton maps GLFW mouse buttons, returning -1 for unsupported ones.
func glfwMouseButton(button glfw.MouseButton) panelarea.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return panelarea.MouseButtonLeft
	case glfw.MouseButtonRight:
		return panelarea.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return panelarea.MouseButtonMiddle
	default:
		return -1
	}
}
