// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import "math"

// Mat3 is a 2D affine transform in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// representing x' = a*x + b*y + c, y' = d*x + e*y + f. Used for the
// renderer's camera view-projection and the render-target pre-pass's
// per-target local camera.
type Mat3 struct {
	A, B, C float64
	D, E, F float64
}

// Identity3 returns the identity transform.
func Identity3() Mat3 { return Mat3{A: 1, E: 1} }

// Translate3 creates a translation transform.
func Translate3(x, y float64) Mat3 { return Mat3{A: 1, C: x, E: 1, F: y} }

// Scale3 creates a scaling transform.
func Scale3(x, y float64) Mat3 { return Mat3{A: x, E: y} }

// Multiply returns m composed with other (m applied after other).
func (m Mat3) Multiply(other Mat3) Mat3 {
	return Mat3{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transform to a position.
func (m Mat3) TransformPoint(p Vec2) Vec2 {
	return Vec2{X: m.A*p.X + m.B*p.Y + m.C, Y: m.D*p.X + m.E*p.Y + m.F}
}

// TransformVector applies the transform to a direction (no translation).
func (m Mat3) TransformVector(p Vec2) Vec2 {
	return Vec2{X: m.A*p.X + m.B*p.Y, Y: m.D*p.X + m.E*p.Y}
}

// OrthoCamera builds the view-projection matrix for a 2D camera: centered
// on (cx, cy), zoomed by zoom, with half-extents viewport/(2*zoom), and Y
// flipped so that +Y points down in world space as +Y points down on
// screen.
func OrthoCamera(cx, cy, zoom, viewportW, viewportH float64) Mat3 {
	if zoom <= 0 {
		zoom = 1
	}
	halfW := viewportW / (2 * zoom)
	halfH := viewportH / (2 * zoom)
	// Map world [cx-halfW, cx+halfW] -> ndc [-1, 1], and similarly for Y
	// but flipped: world cy-halfH (top, smaller Y) -> ndc +1 (screen top).
	sx := 1 / halfW
	sy := -1 / halfH
	return Mat3{
		A: sx, B: 0, C: -cx * sx,
		D: 0, E: sy, F: -cy * sy,
	}
}

// Rotation2D returns the 2x2 rotation represented by angle, used when only
// the linear part (no translation) of a pose is needed.
func Rotation2D(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{A: c, B: -s, D: s, E: c}
}
