// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bridge

import "testing"

func TestInputSnapshotKeyPressedEdge(t *testing.T) {
	in := NewInputSnapshot()
	in.SetKeyDown("Space", true)

	if !in.KeyDown("Space") || !in.KeyPressed("Space") {
		t.Fatal("key should be down and pressed on its first frame")
	}

	in.SetKeyDown("Space", true) // still held, no new edge
	if !in.KeyDown("Space") {
		t.Error("key should still be down")
	}

	in.ClearEdges()
	if in.KeyPressed("Space") {
		t.Error("ClearEdges should clear the pressed edge")
	}
	if !in.KeyDown("Space") {
		t.Error("ClearEdges must not clear the down-state")
	}

	in.SetKeyDown("Space", false)
	if in.KeyDown("Space") {
		t.Error("key should no longer be down after release")
	}
}

func TestInputSnapshotMouseButtonEdge(t *testing.T) {
	in := NewInputSnapshot()
	in.SetMouseButtonDown(0, true)
	if !in.MouseButtonPressed(0) {
		t.Error("mouse button should report pressed on first down")
	}
	in.ClearEdges()
	if in.MouseButtonPressed(0) {
		t.Error("ClearEdges should clear mouse pressed edge")
	}
	if !in.MouseButtonDown(0) {
		t.Error("mouse button should still be down")
	}
}

func TestInputSnapshotMouseButtonOutOfRange(t *testing.T) {
	in := NewInputSnapshot()
	if in.MouseButtonDown(5) || in.MouseButtonPressed(-1) {
		t.Error("out-of-range mouse buttons should report false")
	}
}

func TestInputSnapshotGamepadUpdateAndEdges(t *testing.T) {
	in := NewInputSnapshot()
	down := [gamepadButtonCount]bool{ButtonA: true}
	axes := [gamepadAxisCount]float64{AxisLeftStickX: 0.5}

	in.UpdateGamepad(0, "Pad 1", down, axes)
	if !in.Gamepads[0].Connected || !in.Gamepads[0].ButtonsPressed[ButtonA] {
		t.Error("gamepad A should be connected and pressed on first poll")
	}

	in.UpdateGamepad(0, "Pad 1", down, axes) // still held
	in.ClearEdges()
	if in.Gamepads[0].ButtonsPressed[ButtonA] {
		t.Error("ClearEdges should clear gamepad pressed edges")
	}
	if !in.Gamepads[0].ButtonsDown[ButtonA] {
		t.Error("gamepad down-state must survive ClearEdges")
	}

	in.DisconnectGamepad(0)
	if in.Gamepads[0].Connected {
		t.Error("gamepad should report disconnected")
	}
}

func TestInputSnapshotTouches(t *testing.T) {
	in := NewInputSnapshot()
	in.SetTouches([]TouchPoint{{ID: 1, X: 10, Y: 20}})

	if in.TouchCount() != 1 {
		t.Fatalf("TouchCount() = %d, want 1", in.TouchCount())
	}
	x, y, ok := in.TouchPosition(0)
	if !ok || x != 10 || y != 20 {
		t.Errorf("TouchPosition(0) = (%v,%v,%v), want (10,20,true)", x, y, ok)
	}
	if _, _, ok := in.TouchPosition(5); ok {
		t.Error("out-of-range touch index should report ok=false")
	}
}
