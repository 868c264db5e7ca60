// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/arcane-engine/arcane/bridge"
)

// Window owns a glfw window and feeds its OS input events into a
// bridge.InputSnapshot each frame (frame-loop steps 1-2). Gamepads are
// polled rather than event-driven, since glfw has no joystick callback
// for button/axis state, only a connect/disconnect one.
type Window struct {
	win *glfw.Window
}

// NewWindow creates and shows a window, installing the callbacks that
// feed snapshot. glfw must already be initialized (glfw.Init) by the
// caller — Window doesn't own the library's process-wide init/terminate
// pair, since a host embedding multiple windows would only call it once.
func NewWindow(title string, width, height int, snapshot *bridge.InputSnapshot) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("host: create window: %w", err)
	}
	win.MakeContextCurrent()

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		snapshot.SetKeyDown(keyName(key), action == glfw.Press)
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		snapshot.MouseX, snapshot.MouseY = xpos, ypos
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		idx := mouseButtonIndex(button)
		if idx < 0 {
			return
		}
		snapshot.SetMouseButtonDown(idx, action == glfw.Press)
	})

	return &Window{win: win}, nil
}

// ShouldClose reports whether the user requested the window close.
func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

// FramebufferSize returns the current drawable size in pixels, used to
// keep the render target and camera viewport in sync (frame-loop step 4).
func (w *Window) FramebufferSize() (int, int) { return w.win.GetFramebufferSize() }

// SwapBuffers presents the frame just rendered.
func (w *Window) SwapBuffers() { w.win.SwapBuffers() }

// Close destroys the underlying glfw window.
func (w *Window) Close() { w.win.Destroy() }

// Poll pumps the OS event queue (step 1) and refreshes every gamepad
// slot (step 2). Call once per frame before Host.RunFrame.
func Poll(snapshot *bridge.InputSnapshot) {
	glfw.PollEvents()
	pollGamepads(snapshot)
}

func pollGamepads(snapshot *bridge.InputSnapshot) {
	for i := 0; i < bridge.MaxGamepads; i++ {
		joy := glfw.Joystick(i)
		if !joy.Present() {
			snapshot.DisconnectGamepad(i)
			continue
		}
		axesRaw := joy.GetAxes()
		buttonsRaw := joy.GetButtons()

		var axes [6]float64
		for j := 0; j < len(axes) && j < len(axesRaw); j++ {
			axes[j] = float64(axesRaw[j])
		}
		var down [17]bool
		for j := 0; j < len(down) && j < len(buttonsRaw); j++ {
			down[j] = buttonsRaw[j] == glfw.Press
		}
		snapshot.UpdateGamepad(i, joy.GetName(), down, axes)
	}
}

func mouseButtonIndex(b glfw.MouseButton) int {
	switch b {
	case glfw.MouseButtonLeft:
		return 0
	case glfw.MouseButtonRight:
		return 1
	case glfw.MouseButtonMiddle:
		return 2
	default:
		return -1
	}
}

// keyName maps a glfw key to the lowercase canonical name ops/input.go
// consumers key off of. Unmapped keys fall back to "" — SetKeyDown("", ...)
// is harmless since it's just an unused map entry.
func keyName(k glfw.Key) string {
	if name, ok := namedKeys[k]; ok {
		return name
	}
	if k >= glfw.KeyA && k <= glfw.KeyZ {
		return string(rune('a' + (k - glfw.KeyA)))
	}
	if k >= glfw.Key0 && k <= glfw.Key9 {
		return string(rune('0' + (k - glfw.Key0)))
	}
	return ""
}

var namedKeys = map[glfw.Key]string{
	glfw.KeySpace:         "space",
	glfw.KeyEscape:        "escape",
	glfw.KeyEnter:         "enter",
	glfw.KeyTab:           "tab",
	glfw.KeyBackspace:     "backspace",
	glfw.KeyLeft:          "left",
	glfw.KeyRight:         "right",
	glfw.KeyUp:            "up",
	glfw.KeyDown:          "down",
	glfw.KeyLeftShift:     "left_shift",
	glfw.KeyRightShift:    "right_shift",
	glfw.KeyLeftControl:   "left_control",
	glfw.KeyRightControl:  "right_control",
	glfw.KeyLeftAlt:       "left_alt",
	glfw.KeyRightAlt:      "right_alt",
}
