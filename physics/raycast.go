// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package physics

import (
	"math"

	"github.com/arcane-engine/arcane/geom"
)

// RaycastHit is the result of a successful raycast against a body.
type RaycastHit struct {
	Body BodyID
	Hit  geom.Vec2
	T    float64
}

// raycastBody tests a ray against a single body's shape, dispatching by
// shape kind. ok is false when the ray misses or never touches the body
// within [0, maxDist].
func raycastBody(b *Body, origin, dir geom.Vec2, maxDist float64) (RaycastHit, bool) {
	switch b.Shape.Kind {
	case ShapeCircle:
		return rayVsCircle(b, origin, dir, maxDist)
	case ShapeAABB:
		return rayVsAABB(b, origin, dir, maxDist)
	case ShapePolygon:
		return rayVsPolygon(b, origin, dir, maxDist)
	default:
		return RaycastHit{}, false
	}
}

func rayVsCircle(b *Body, origin, dir geom.Vec2, maxDist float64) (RaycastHit, bool) {
	oc := origin.Sub(b.Pos)
	a := dir.Dot(dir)
	bb := 2 * oc.Dot(dir)
	cc := oc.Dot(oc) - b.Shape.Radius*b.Shape.Radius

	disc := bb*bb - 4*a*cc
	if disc < 0 {
		return RaycastHit{}, false
	}
	sqrtDisc := math.Sqrt(disc)
	t := (-bb - sqrtDisc) / (2 * a)
	if t < 0 {
		t = (-bb + sqrtDisc) / (2 * a)
	}
	if t < 0 || t > maxDist {
		return RaycastHit{}, false
	}
	hit := origin.Add(dir.Mul(t))
	return RaycastHit{Body: b.ID, Hit: hit, T: t}, true
}

// rayVsAABB uses the slab method in the box's local (axis-aligned) space.
func rayVsAABB(b *Body, origin, dir geom.Vec2, maxDist float64) (RaycastHit, bool) {
	local := origin.Sub(b.Pos)
	hw, hh := b.Shape.HalfW, b.Shape.HalfH

	tMin, tMax := 0.0, maxDist

	for axis := 0; axis < 2; axis++ {
		var o, d, half float64
		if axis == 0 {
			o, d, half = local.X, dir.X, hw
		} else {
			o, d, half = local.Y, dir.Y, hh
		}
		if math.Abs(d) < 1e-12 {
			if o < -half || o > half {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (-half - o) / d
		t2 := (half - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return RaycastHit{}, false
		}
	}

	if tMin < 0 || tMin > maxDist {
		return RaycastHit{}, false
	}
	hit := origin.Add(dir.Mul(tMin))
	return RaycastHit{Body: b.ID, Hit: hit, T: tMin}, true
}

func rayVsPolygon(b *Body, origin, dir geom.Vec2, maxDist float64) (RaycastHit, bool) {
	if len(b.Shape.Verts) < 3 {
		return RaycastHit{}, false
	}
	verts := worldVertices(b)
	n := len(verts)

	bestT := math.Inf(1)
	found := false
	for i := 0; i < n; i++ {
		a := verts[i]
		c := verts[(i+1)%n]
		if t, hit := raySegmentIntersect(origin, dir, a, c); hit && t >= 0 && t <= maxDist && t < bestT {
			bestT = t
			found = true
		}
	}
	if !found {
		return RaycastHit{}, false
	}
	hit := origin.Add(dir.Mul(bestT))
	return RaycastHit{Body: b.ID, Hit: hit, T: bestT}, true
}

// raySegmentIntersect solves for the ray parameter t at which origin +
// t*dir crosses segment [a,c], using the standard 2D cross-product
// parametrization. Returns hit=false for parallel (zero-denominator) rays.
func raySegmentIntersect(origin, dir, a, c geom.Vec2) (t float64, hit bool) {
	seg := c.Sub(a)
	denom := dir.Cross(seg)
	if math.Abs(denom) < 1e-12 {
		return 0, false
	}
	diff := a.Sub(origin)
	tRay := diff.Cross(seg) / denom
	sSeg := diff.Cross(dir) / denom
	if sSeg < 0 || sSeg > 1 {
		return 0, false
	}
	return tRay, true
}
