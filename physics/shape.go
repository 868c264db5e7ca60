// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package physics

import "github.com/arcane-engine/arcane/geom"

// ShapeKind identifies the collision shape a body carries.
type ShapeKind uint8

// Shape kind constants.
const (
	ShapeCircle ShapeKind = iota
	ShapeAABB
	ShapePolygon
)

// MaxPolygonVerts bounds the vertex count a Polygon shape may carry.
const MaxPolygonVerts = 16

// Shape is the union of collision shapes a body may have: a circle of
// radius R, an axis-aligned box with half-extents (HalfW, HalfH), or a
// convex polygon given by a counter-clockwise vertex list in body-local
// space.
type Shape struct {
	Kind ShapeKind

	// Circle
	Radius float64

	// AABB
	HalfW, HalfH float64

	// Polygon, local space, counter-clockwise, at most MaxPolygonVerts.
	Verts []geom.Vec2
}

// NewCircleShape returns a circle shape of the given radius.
func NewCircleShape(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// NewAABBShape returns an axis-aligned box shape with the given half-extents.
func NewAABBShape(halfW, halfH float64) Shape {
	return Shape{Kind: ShapeAABB, HalfW: halfW, HalfH: halfH}
}

// NewPolygonShape returns a convex polygon shape. Callers must supply
// vertices in counter-clockwise order; fewer than 3 vertices makes the
// shape degenerate and narrowphase tests against it always miss.
func NewPolygonShape(verts []geom.Vec2) Shape {
	return Shape{Kind: ShapePolygon, Verts: verts}
}

// localAABB returns the shape's axis-aligned bounding box in body-local
// space (before the body's pose is applied).
func (s Shape) localAABB() (min, max geom.Vec2) {
	switch s.Kind {
	case ShapeCircle:
		r := geom.V2(s.Radius, s.Radius)
		return geom.V2(0, 0).Sub(r), geom.V2(0, 0).Add(r)
	case ShapeAABB:
		return geom.V2(-s.HalfW, -s.HalfH), geom.V2(s.HalfW, s.HalfH)
	case ShapePolygon:
		if len(s.Verts) == 0 {
			return geom.Vec2{}, geom.Vec2{}
		}
		min, max = s.Verts[0], s.Verts[0]
		for _, v := range s.Verts[1:] {
			min = geom.V2(minF(min.X, v.X), minF(min.Y, v.Y))
			max = geom.V2(maxF(max.X, v.X), maxF(max.Y, v.Y))
		}
		return min, max
	default:
		return geom.Vec2{}, geom.Vec2{}
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// momentOfInertia returns the shape's moment of inertia about its own
// centroid for unit density, scaled by mass by the caller. Static and
// kinematic bodies never call this (their inverse inertia is always 0).
func (s Shape) momentOfInertia(mass float64) float64 {
	switch s.Kind {
	case ShapeCircle:
		return mass * s.Radius * s.Radius / 2
	case ShapeAABB:
		w, h := 2*s.HalfW, 2*s.HalfH
		return mass * (w*w + h*h) / 12
	case ShapePolygon:
		return polygonInertia(s.Verts, mass)
	default:
		return 0
	}
}

// polygonInertia computes the moment of inertia of a convex polygon about
// its centroid, for a uniform-density lamina of the given total mass,
// using the standard triangle-fan decomposition.
func polygonInertia(verts []geom.Vec2, mass float64) float64 {
	if len(verts) < 3 {
		return mass
	}
	var area, inertiaNum float64
	origin := verts[0]
	for i := 1; i < len(verts)-1; i++ {
		a := verts[i].Sub(origin)
		b := verts[i+1].Sub(origin)
		cross := a.Cross(b)
		triArea := cross / 2
		area += triArea
		inertiaNum += cross * (a.Dot(a) + a.Dot(b) + b.Dot(b))
	}
	if area == 0 {
		return mass
	}
	// inertiaNum / (6*area) is inertia per unit mass about origin vertex;
	// density = mass / area converts to the requested total mass.
	density := mass / absF(area)
	return density * absF(inertiaNum) / 6
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
