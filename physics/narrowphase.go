// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package physics

import (
	"math"

	"github.com/arcane-engine/arcane/geom"
)

// Contact is the output of a single narrowphase test: bodies a and b
// overlap along Normal (pointing from a to b) by Penetration (>= 0 for an
// actual contact, < 0 for a speculative one), meeting at ContactPoint.
type Contact struct {
	A, B         BodyID
	Normal       geom.Vec2
	Penetration  float64
	ContactPoint geom.Vec2
}

// testCollision dispatches to the narrowphase routine for the shape pair
// of a and b. It returns ok=false if the pair doesn't overlap or if the
// shape combination is degenerate (e.g. a polygon with fewer than 3
// vertices).
func testCollision(a, b *Body) (Contact, bool) {
	switch {
	case a.Shape.Kind == ShapeCircle && b.Shape.Kind == ShapeCircle:
		return circleVsCircle(a, b)
	case a.Shape.Kind == ShapeCircle && b.Shape.Kind == ShapeAABB:
		return circleVsAABB(a, b, false)
	case a.Shape.Kind == ShapeAABB && b.Shape.Kind == ShapeCircle:
		return circleVsAABB(b, a, true)
	case a.Shape.Kind == ShapeAABB && b.Shape.Kind == ShapeAABB:
		return aabbVsAABB(a, b)
	case a.Shape.Kind == ShapePolygon && b.Shape.Kind == ShapePolygon:
		return polygonVsPolygon(a, b)
	case a.Shape.Kind == ShapeCircle && b.Shape.Kind == ShapePolygon:
		return circleVsPolygon(a, b, false)
	case a.Shape.Kind == ShapePolygon && b.Shape.Kind == ShapeCircle:
		return circleVsPolygon(b, a, true)
	case a.Shape.Kind == ShapeAABB && b.Shape.Kind == ShapePolygon:
		return aabbVsPolygon(a, b, false)
	case a.Shape.Kind == ShapePolygon && b.Shape.Kind == ShapeAABB:
		return aabbVsPolygon(b, a, true)
	default:
		return Contact{}, false
	}
}

const collisionEpsilon = 1e-8

func circleVsCircle(a, b *Body) (Contact, bool) {
	d := b.Pos.Sub(a.Pos)
	dist := d.Length()
	rSum := a.Shape.Radius + b.Shape.Radius
	if dist >= rSum {
		return Contact{}, false
	}
	var normal geom.Vec2
	if dist < collisionEpsilon {
		normal = geom.V2(1, 0)
	} else {
		normal = d.Mul(1 / dist)
	}
	penetration := rSum - dist
	contactPoint := a.Pos.Add(normal.Mul(a.Shape.Radius))
	return Contact{A: a.ID, B: b.ID, Normal: normal, Penetration: penetration, ContactPoint: contactPoint}, true
}

// circleVsAABB tests circle against aabb in aabb-local space. swapped
// indicates the caller passed (aabbBody, circleBody) reversed so that the
// returned normal and id order keep the A->B convention of the original
// (a,b) dispatch pair.
func circleVsAABB(circle, aabb *Body, swapped bool) (Contact, bool) {
	local := circle.Pos.Sub(aabb.Pos)
	clampedX := clampF(local.X, -aabb.Shape.HalfW, aabb.Shape.HalfW)
	clampedY := clampF(local.Y, -aabb.Shape.HalfH, aabb.Shape.HalfH)
	closest := geom.V2(clampedX, clampedY)
	diff := local.Sub(closest)
	distSq := diff.LengthSq()
	r := circle.Shape.Radius

	var normal geom.Vec2
	var penetration float64
	inside := local.X == clampedX && local.Y == clampedY
	if inside {
		// Circle center is inside the box: push out along the axis of
		// least penetration.
		penX := aabb.Shape.HalfW - absF(local.X)
		penY := aabb.Shape.HalfH - absF(local.Y)
		if penX < penY {
			if local.X < 0 {
				normal = geom.V2(-1, 0)
			} else {
				normal = geom.V2(1, 0)
			}
			penetration = penX + r
		} else {
			if local.Y < 0 {
				normal = geom.V2(0, -1)
			} else {
				normal = geom.V2(0, 1)
			}
			penetration = penY + r
		}
	} else {
		if distSq >= r*r {
			return Contact{}, false
		}
		dist := math.Sqrt(distSq)
		if dist < collisionEpsilon {
			normal = geom.V2(1, 0)
		} else {
			normal = diff.Mul(1 / dist)
		}
		penetration = r - dist
	}

	// normal here points from aabb toward circle (aabb -> circle), so the
	// circle's surface point facing the box is circle.Pos - normal*r; the
	// dispatch contract wants A->B. When not swapped, A is the circle and
	// B is the aabb, so flip.
	contactPoint := circle.Pos.Sub(normal.Mul(r))
	if !swapped {
		normal = normal.Neg()
	}
	if swapped {
		return Contact{A: aabb.ID, B: circle.ID, Normal: normal, Penetration: penetration, ContactPoint: contactPoint}, true
	}
	return Contact{A: circle.ID, B: aabb.ID, Normal: normal, Penetration: penetration, ContactPoint: contactPoint}, true
}

func aabbVsAABB(a, b *Body) (Contact, bool) {
	dx := b.Pos.X - a.Pos.X
	dy := b.Pos.Y - a.Pos.Y
	overlapX := a.Shape.HalfW + b.Shape.HalfW - absF(dx)
	overlapY := a.Shape.HalfH + b.Shape.HalfH - absF(dy)
	if overlapX <= 0 || overlapY <= 0 {
		return Contact{}, false
	}
	var normal geom.Vec2
	var penetration float64
	if overlapX < overlapY {
		if dx < 0 {
			normal = geom.V2(-1, 0)
		} else {
			normal = geom.V2(1, 0)
		}
		penetration = overlapX
	} else {
		if dy < 0 {
			normal = geom.V2(0, -1)
		} else {
			normal = geom.V2(0, 1)
		}
		penetration = overlapY
	}
	contactPoint := a.Pos.Add(b.Pos).Mul(0.5)
	return Contact{A: a.ID, B: b.ID, Normal: normal, Penetration: penetration, ContactPoint: contactPoint}, true
}

// worldVertices returns the polygon's vertices transformed into world
// space by the body's current pose.
func worldVertices(b *Body) []geom.Vec2 {
	verts := make([]geom.Vec2, len(b.Shape.Verts))
	for i, v := range b.Shape.Verts {
		verts[i] = b.localToWorld(v)
	}
	return verts
}

// edgeNormals returns the outward unit normal of each edge of a CCW
// polygon given in world space.
func edgeNormals(verts []geom.Vec2) []geom.Vec2 {
	n := len(verts)
	normals := make([]geom.Vec2, n)
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%n]
		edge := b.Sub(a)
		// CCW winding: outward normal is the edge rotated -90 degrees.
		normals[i] = geom.V2(edge.Y, -edge.X).Normalized()
	}
	return normals
}

func projectVertices(verts []geom.Vec2, axis geom.Vec2) (min, max float64) {
	min = verts[0].Dot(axis)
	max = min
	for _, v := range verts[1:] {
		d := v.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

func polygonVsPolygon(a, b *Body) (Contact, bool) {
	if len(a.Shape.Verts) < 3 || len(b.Shape.Verts) < 3 {
		return Contact{}, false
	}
	vertsA := worldVertices(a)
	vertsB := worldVertices(b)

	minOverlap := math.MaxFloat64
	var minAxis geom.Vec2
	fromA := true

	test := func(axes []geom.Vec2, owner bool) bool {
		for _, axis := range axes {
			minA, maxA := projectVertices(vertsA, axis)
			minB, maxB := projectVertices(vertsB, axis)
			overlap := math.Min(maxA, maxB) - math.Max(minA, minB)
			if overlap <= 0 {
				return false
			}
			if overlap < minOverlap {
				minOverlap = overlap
				minAxis = axis
				fromA = owner
			}
		}
		return true
	}

	if !test(edgeNormals(vertsA), true) {
		return Contact{}, false
	}
	if !test(edgeNormals(vertsB), false) {
		return Contact{}, false
	}

	centerA := polygonCentroid(vertsA)
	centerB := polygonCentroid(vertsB)
	dir := centerB.Sub(centerA)
	normal := minAxis
	// Orient normal to point from A to B regardless of which polygon's
	// edge it came from.
	if normal.Dot(dir) < 0 {
		normal = normal.Neg()
	}
	_ = fromA

	contactPoint := centerA.Add(centerB).Mul(0.5)
	return Contact{A: a.ID, B: b.ID, Normal: normal, Penetration: minOverlap, ContactPoint: contactPoint}, true
}

func polygonCentroid(verts []geom.Vec2) geom.Vec2 {
	var sum geom.Vec2
	for _, v := range verts {
		sum = sum.Add(v)
	}
	return sum.Mul(1 / float64(len(verts)))
}

func closestPointOnSegment(p, a, b geom.Vec2) geom.Vec2 {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq < collisionEpsilon {
		return a
	}
	t := clampF(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return a.Add(ab.Mul(t))
}

// pointInPolygon is an even-odd crossing test against a CCW polygon given
// in world space.
func pointInPolygon(p geom.Vec2, verts []geom.Vec2) bool {
	inside := false
	n := len(verts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := verts[i], verts[j]
		if ((vi.Y > p.Y) != (vj.Y > p.Y)) &&
			(p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X) {
			inside = !inside
		}
	}
	return inside
}

// circleVsPolygon tests circle against poly (the canonical, non-swapped
// argument order); swapped mirrors the dispatch table's calling
// convention the same way circleVsAABB does.
func circleVsPolygon(circle, poly *Body, swapped bool) (Contact, bool) {
	if len(poly.Shape.Verts) < 3 {
		return Contact{}, false
	}
	verts := worldVertices(poly)
	n := len(verts)

	inside := pointInPolygon(circle.Pos, verts)

	var bestDist = math.MaxFloat64
	var bestPoint geom.Vec2
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		cp := closestPointOnSegment(circle.Pos, a, b)
		d := circle.Pos.Sub(cp).LengthSq()
		if d < bestDist {
			bestDist = d
			bestPoint = cp
		}
	}

	r := circle.Shape.Radius
	var normal geom.Vec2
	var penetration float64
	if inside {
		diff := circle.Pos.Sub(bestPoint)
		dist := diff.Length()
		if dist < collisionEpsilon {
			normal = geom.V2(1, 0)
		} else {
			normal = diff.Mul(1 / dist)
		}
		penetration = r + dist
	} else {
		dist := math.Sqrt(bestDist)
		if dist >= r {
			return Contact{}, false
		}
		diff := circle.Pos.Sub(bestPoint)
		if dist < collisionEpsilon {
			normal = geom.V2(1, 0)
		} else {
			normal = diff.Mul(1 / dist)
		}
		penetration = r - dist
	}

	// normal currently points from poly surface toward circle; dispatch
	// wants A->B. Canonical (non-swapped) order is circle=A, poly=B.
	if !swapped {
		normal = normal.Neg()
	}
	contactPoint := bestPoint
	if swapped {
		return Contact{A: poly.ID, B: circle.ID, Normal: normal, Penetration: penetration, ContactPoint: contactPoint}, true
	}
	return Contact{A: circle.ID, B: poly.ID, Normal: normal, Penetration: penetration, ContactPoint: contactPoint}, true
}

// aabbVsPolygon converts the AABB to a 4-vertex CCW polygon and delegates
// to polygonVsPolygon.
func aabbVsPolygon(aabb, poly *Body, swapped bool) (Contact, bool) {
	if len(poly.Shape.Verts) < 3 {
		return Contact{}, false
	}
	hw, hh := aabb.Shape.HalfW, aabb.Shape.HalfH
	boxLocal := []geom.Vec2{
		{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh},
	}
	boxBody := &Body{ID: aabb.ID, Pos: aabb.Pos, Angle: 0, Shape: Shape{Kind: ShapePolygon, Verts: boxLocal}}
	if swapped {
		return polygonVsPolygon(poly, boxBody)
	}
	return polygonVsPolygon(boxBody, poly)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
