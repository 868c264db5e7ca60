// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bridge

// CameraState is the script-controlled 2D camera: position, zoom, and an
// optional world-space clamp region. Dirty is set by SetCamera and
// cleared by the host once it has copied the camera into the renderer,
// so a renderer-driven follow-camera between script calls is never
// stomped by a stale script value.
type CameraState struct {
	X, Y float64
	Zoom float64

	Dirty bool

	HasBounds bool
	MinX, MinY, MaxX, MaxY float64
}

// NewCameraState returns a camera centered at the origin with zoom 1.
func NewCameraState() CameraState {
	return CameraState{Zoom: 1}
}

// Set updates position and zoom and marks the camera dirty.
func (c *CameraState) Set(x, y, zoom float64) {
	if zoom <= 0 {
		zoom = 1
	}
	c.X, c.Y, c.Zoom = x, y, zoom
	c.Dirty = true
}

// Get returns the current (x, y, zoom), matching get_camera's [x,y,zoom].
func (c *CameraState) Get() (x, y, zoom float64) {
	return c.X, c.Y, c.Zoom
}

// SetBounds records the world-space rectangle that Clamp restricts the
// camera position to.
func (c *CameraState) SetBounds(minX, minY, maxX, maxY float64) {
	c.HasBounds = true
	c.MinX, c.MinY, c.MaxX, c.MaxY = minX, minY, maxX, maxY
}

// ClearBounds removes the clamp rectangle.
func (c *CameraState) ClearBounds() {
	c.HasBounds = false
}

// Bounds returns the clamp rectangle and whether one is set, matching
// get_camera_bounds' `[] | [4 floats]` result shape.
func (c *CameraState) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	if !c.HasBounds {
		return 0, 0, 0, 0, false
	}
	return c.MinX, c.MinY, c.MaxX, c.MaxY, true
}

// Clamp applies the bounds rectangle to the camera's current position,
// if one is set.
func (c *CameraState) Clamp() {
	if !c.HasBounds {
		return
	}
	if c.X < c.MinX {
		c.X = c.MinX
	}
	if c.X > c.MaxX {
		c.X = c.MaxX
	}
	if c.Y < c.MinY {
		c.Y = c.MinY
	}
	if c.Y > c.MaxY {
		c.Y = c.MaxY
	}
}

// AckSync clears the dirty flag once the host has copied the camera
// into the renderer for this frame.
func (c *CameraState) AckSync() {
	c.Dirty = false
}
