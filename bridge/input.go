// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bridge

// GamepadButton is a canonical cross-platform gamepad button name.
type GamepadButton uint8

// Canonical gamepad buttons, in the order ops report them.
const (
	ButtonA GamepadButton = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonLeftBumper
	ButtonRightBumper
	ButtonLeftTrigger
	ButtonRightTrigger
	ButtonSelect
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
	ButtonGuide

	gamepadButtonCount
)

// GamepadAxis is a canonical analog axis.
type GamepadAxis uint8

// Canonical gamepad axes.
const (
	AxisLeftStickX GamepadAxis = iota
	AxisLeftStickY
	AxisRightStickX
	AxisRightStickY
	AxisLeftTrigger
	AxisRightTrigger

	gamepadAxisCount
)

// MaxGamepads is the number of gamepad slots the bridge tracks.
const MaxGamepads = 4

// GamepadState is one polled gamepad slot.
type GamepadState struct {
	Connected      bool
	Name           string
	ButtonsDown    [gamepadButtonCount]bool
	ButtonsPressed [gamepadButtonCount]bool // Edge-set since last poll; reset each frame.
	Axes           [gamepadAxisCount]float64
}

// update recomputes ButtonsPressed as the down-transition delta against
// the previous down-state, then stores the new down-state.
func (g *GamepadState) update(name string, down [gamepadButtonCount]bool, axes [gamepadAxisCount]float64) {
	g.Connected = true
	g.Name = name
	for i := range down {
		g.ButtonsPressed[i] = down[i] && !g.ButtonsDown[i]
	}
	g.ButtonsDown = down
	g.Axes = axes
}

// disconnect clears a slot's state when the pad is unplugged.
func (g *GamepadState) disconnect() {
	*g = GamepadState{}
}

// clearEdges resets the per-frame pressed-edge bits, called once per
// frame after the script callback returns.
func (g *GamepadState) clearEdges() {
	g.ButtonsPressed = [gamepadButtonCount]bool{}
}

// TouchPoint is one active touch contact.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// InputSnapshot is the host-filled, script-read-only view of input
// devices for the current frame. Keys/mouse-buttons track both a
// down-state and a this-frame-only pressed edge, following the same
// down/pressed split gioui's input router keeps for pointer and key
// events, generalized here to a flat per-frame snapshot instead of an
// event queue since ops poll state rather than subscribe to events.
type InputSnapshot struct {
	keysDown    map[string]bool
	keysPressed map[string]bool

	MouseX, MouseY       float64
	mouseButtonsDown     [3]bool
	mouseButtonsPressed  [3]bool

	Gamepads [MaxGamepads]GamepadState
	Touches  []TouchPoint

	DeltaTime float64
}

// NewInputSnapshot returns an empty snapshot.
func NewInputSnapshot() *InputSnapshot {
	return &InputSnapshot{
		keysDown:    make(map[string]bool),
		keysPressed: make(map[string]bool),
	}
}

// SetKeyDown records a key's current down-state, setting the pressed
// edge on a false→true transition. Called by the host's OS-event pump.
func (s *InputSnapshot) SetKeyDown(name string, down bool) {
	if down && !s.keysDown[name] {
		s.keysPressed[name] = true
	}
	if down {
		s.keysDown[name] = true
	} else {
		delete(s.keysDown, name)
	}
}

// KeyDown reports whether name is currently held.
func (s *InputSnapshot) KeyDown(name string) bool {
	return s.keysDown[name]
}

// KeyPressed reports whether name transitioned down this frame.
func (s *InputSnapshot) KeyPressed(name string) bool {
	return s.keysPressed[name]
}

// SetMouseButtonDown records a mouse button's down-state (0=L,1=R,2=M).
func (s *InputSnapshot) SetMouseButtonDown(button int, down bool) {
	if button < 0 || button >= len(s.mouseButtonsDown) {
		return
	}
	if down && !s.mouseButtonsDown[button] {
		s.mouseButtonsPressed[button] = true
	}
	s.mouseButtonsDown[button] = down
}

// MouseButtonDown reports whether button is currently held.
func (s *InputSnapshot) MouseButtonDown(button int) bool {
	if button < 0 || button >= len(s.mouseButtonsDown) {
		return false
	}
	return s.mouseButtonsDown[button]
}

// MouseButtonPressed reports whether button transitioned down this frame.
func (s *InputSnapshot) MouseButtonPressed(button int) bool {
	if button < 0 || button >= len(s.mouseButtonsPressed) {
		return false
	}
	return s.mouseButtonsPressed[button]
}

// UpdateGamepad updates slot i (0-based, < MaxGamepads) with a fresh
// poll. Out-of-range slots are ignored.
func (s *InputSnapshot) UpdateGamepad(i int, name string, down [gamepadButtonCount]bool, axes [gamepadAxisCount]float64) {
	if i < 0 || i >= MaxGamepads {
		return
	}
	s.Gamepads[i].update(name, down, axes)
}

// DisconnectGamepad marks slot i as unplugged.
func (s *InputSnapshot) DisconnectGamepad(i int) {
	if i < 0 || i >= MaxGamepads {
		return
	}
	s.Gamepads[i].disconnect()
}

// SetTouches replaces the active touch-point list.
func (s *InputSnapshot) SetTouches(touches []TouchPoint) {
	s.Touches = touches
}

// TouchCount returns the number of active touch points.
func (s *InputSnapshot) TouchCount() int {
	return len(s.Touches)
}

// TouchPosition returns touch i's position, or ok=false if out of range.
func (s *InputSnapshot) TouchPosition(i int) (x, y float64, ok bool) {
	if i < 0 || i >= len(s.Touches) {
		return 0, 0, false
	}
	return s.Touches[i].X, s.Touches[i].Y, true
}

// ClearEdges resets the per-frame pressed/delta state: keys_pressed,
// mouse_buttons_pressed, and every gamepad's buttons_pressed. Called by
// the host frame loop's final step, after render+present.
func (s *InputSnapshot) ClearEdges() {
	s.keysPressed = make(map[string]bool)
	s.mouseButtonsPressed = [3]bool{}
	for i := range s.Gamepads {
		s.Gamepads[i].clearEdges()
	}
}
