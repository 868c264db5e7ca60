// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import "github.com/arcane-engine/arcane/bridge"

// IsKeyDown reports whether name is currently held.
func IsKeyDown(b *bridge.State, name string) bool {
	return b.Input.KeyDown(name)
}

// IsKeyPressed reports whether name transitioned down this frame.
func IsKeyPressed(b *bridge.State, name string) bool {
	return b.Input.KeyPressed(name)
}

// GetMousePosition returns the cursor position in window pixels.
func GetMousePosition(b *bridge.State) (x, y float64) {
	return b.Input.MouseX, b.Input.MouseY
}

// IsMouseButtonDown reports whether button (0=left,1=right,2=middle) is held.
func IsMouseButtonDown(b *bridge.State, button int) bool {
	return b.Input.MouseButtonDown(button)
}

// IsMouseButtonPressed reports whether button transitioned down this frame.
func IsMouseButtonPressed(b *bridge.State, button int) bool {
	return b.Input.MouseButtonPressed(button)
}

// GetDeltaTime returns the elapsed seconds since the previous frame.
func GetDeltaTime(b *bridge.State) float64 {
	return b.Input.DeltaTime
}

// gamepadButtonNames maps the ops table's canonical button name to its
// enum value, in the same order bridge.GamepadState reports them.
var gamepadButtonNames = map[string]bridge.GamepadButton{
	"a":             bridge.ButtonA,
	"b":             bridge.ButtonB,
	"x":             bridge.ButtonX,
	"y":             bridge.ButtonY,
	"left_bumper":   bridge.ButtonLeftBumper,
	"right_bumper":  bridge.ButtonRightBumper,
	"left_trigger":  bridge.ButtonLeftTrigger,
	"right_trigger": bridge.ButtonRightTrigger,
	"select":        bridge.ButtonSelect,
	"start":         bridge.ButtonStart,
	"left_stick":    bridge.ButtonLeftStick,
	"right_stick":   bridge.ButtonRightStick,
	"dpad_up":       bridge.ButtonDPadUp,
	"dpad_down":     bridge.ButtonDPadDown,
	"dpad_left":     bridge.ButtonDPadLeft,
	"dpad_right":    bridge.ButtonDPadRight,
	"guide":         bridge.ButtonGuide,
}

var gamepadAxisNames = map[string]bridge.GamepadAxis{
	"left_stick_x":  bridge.AxisLeftStickX,
	"left_stick_y":  bridge.AxisLeftStickY,
	"right_stick_x": bridge.AxisRightStickX,
	"right_stick_y": bridge.AxisRightStickY,
	"left_trigger":  bridge.AxisLeftTrigger,
	"right_trigger": bridge.AxisRightTrigger,
}

// IsGamepadConnected reports whether slot pad (0..MaxGamepads-1) has a
// pad attached.
func IsGamepadConnected(b *bridge.State, pad int) bool {
	if pad < 0 || pad >= bridge.MaxGamepads {
		return false
	}
	return b.Input.Gamepads[pad].Connected
}

// IsGamepadButtonDown reports whether button is held on pad. An
// unrecognized button name or disconnected pad reports false.
func IsGamepadButtonDown(b *bridge.State, pad int, button string) bool {
	if pad < 0 || pad >= bridge.MaxGamepads {
		return false
	}
	idx, ok := gamepadButtonNames[button]
	if !ok {
		return false
	}
	return b.Input.Gamepads[pad].ButtonsDown[idx]
}

// IsGamepadButtonPressed reports whether button transitioned down on pad
// this frame.
func IsGamepadButtonPressed(b *bridge.State, pad int, button string) bool {
	if pad < 0 || pad >= bridge.MaxGamepads {
		return false
	}
	idx, ok := gamepadButtonNames[button]
	if !ok {
		return false
	}
	return b.Input.Gamepads[pad].ButtonsPressed[idx]
}

// GetGamepadAxis returns axis's current value on pad, or 0 if pad is
// disconnected or axis is unrecognized.
func GetGamepadAxis(b *bridge.State, pad int, axis string) float64 {
	if pad < 0 || pad >= bridge.MaxGamepads {
		return 0
	}
	idx, ok := gamepadAxisNames[axis]
	if !ok {
		return 0
	}
	return b.Input.Gamepads[pad].Axes[idx]
}

// GetTouchCount returns the number of active touch contacts.
func GetTouchCount(b *bridge.State) int {
	return b.Input.TouchCount()
}

// GetTouchPosition returns touch i's position, or ok=false if out of range.
func GetTouchPosition(b *bridge.State, i int) (x, y float64, ok bool) {
	return b.Input.TouchPosition(i)
}
