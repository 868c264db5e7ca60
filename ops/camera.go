// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import "github.com/arcane-engine/arcane/bridge"

// SetCamera updates the camera's position and zoom and marks it dirty
// so the host's drain step copies it into the renderer this frame.
func SetCamera(b *bridge.State, x, y, zoom float64) {
	b.Camera.Set(x, y, zoom)
}

// GetCamera returns the camera's current (x, y, zoom).
func GetCamera(b *bridge.State) (x, y, zoom float64) {
	return b.Camera.Get()
}

// SetCameraBounds records a world-space clamp rectangle on the camera.
// The position is restricted to it only when CameraState.Clamp runs;
// SetCamera does not clamp.
func SetCameraBounds(b *bridge.State, minX, minY, maxX, maxY float64) {
	b.Camera.SetBounds(minX, minY, maxX, maxY)
}

// ClearCameraBounds removes the camera's clamp rectangle.
func ClearCameraBounds(b *bridge.State) {
	b.Camera.ClearBounds()
}

// GetCameraBounds returns the clamp rectangle, or ok=false if none is set.
func GetCameraBounds(b *bridge.State) (minX, minY, maxX, maxY float64, ok bool) {
	return b.Camera.Bounds()
}
