// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package geom provides the 2D vector and affine-transform types shared by
// the physics world, the render command model, and the renderer's camera.
package geom

import "math"

// Vec2 represents a 2D displacement or position. Physics bodies, render
// commands, and camera state all share this single vector type so that a
// body's pose and a sprite's world position are directly comparable without
// conversion.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience constructor for Vec2.
func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{X: v.X + w.X, Y: v.Y + w.Y} }

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{X: v.X - w.X, Y: v.Y - w.Y} }

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 { return Vec2{X: -v.X, Y: -v.Y} }

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the scalar (z-component) 2D cross product.
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }

// CrossScalar returns the vector perpendicular to v scaled by s — the 2D
// analog of crossing a scalar angular velocity with a lever arm.
func CrossScalar(s float64, v Vec2) Vec2 { return Vec2{X: -s * v.Y, Y: s * v.X} }

// Length returns the magnitude of the vector.
func (v Vec2) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// LengthSq returns the squared magnitude, cheaper when only comparing.
func (v Vec2) LengthSq() float64 { return v.X*v.X + v.Y*v.Y }

// Normalized returns a unit vector in the same direction, or the zero
// vector if v has near-zero length.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l < 1e-9 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 { return Vec2{X: -v.Y, Y: v.X} }

// Rotated returns v rotated by angle radians about the origin.
func (v Vec2) Rotated(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// Lerp linearly interpolates between v and w by t in [0,1].
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{X: v.X + (w.X-v.X)*t, Y: v.Y + (w.Y-v.Y)*t}
}
