// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package physics

import (
	"testing"

	"github.com/arcane-engine/arcane/geom"
)

func body(id BodyID, shape Shape, x, y float64) *Body {
	return &Body{ID: id, Shape: shape, Pos: geom.V2(x, y), Kind: Dynamic}
}

func TestCircleVsCircleDegenerateNormal(t *testing.T) {
	a := body(1, NewCircleShape(5), 0, 0)
	b := body(2, NewCircleShape(5), 0, 0)
	c, ok := testCollision(a, b)
	if !ok {
		t.Fatal("expected overlap")
	}
	if c.Normal != (geom.Vec2{X: 1, Y: 0}) {
		t.Errorf("degenerate normal = %v, want (1,0)", c.Normal)
	}
}

func TestCircleVsCircleBasic(t *testing.T) {
	a := body(1, NewCircleShape(5), 0, 0)
	b := body(2, NewCircleShape(5), 8, 0)
	c, ok := testCollision(a, b)
	if !ok {
		t.Fatal("expected overlap at distance 8 < radius sum 10")
	}
	if c.Penetration <= 0 {
		t.Errorf("penetration = %v, want > 0", c.Penetration)
	}
	if c.Normal.X <= 0 {
		t.Errorf("normal should point from A to B (+X), got %v", c.Normal)
	}
}

func TestPolygonRejectsFewerThanThreeVerts(t *testing.T) {
	a := body(1, NewPolygonShape([]geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}}), 0, 0)
	b := body(2, NewPolygonShape([]geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}), 0.5, 0)
	if _, ok := testCollision(a, b); ok {
		t.Error("polygon with < 3 verts should never produce a contact")
	}
}

func TestAABBVsAABB(t *testing.T) {
	a := body(1, NewAABBShape(10, 10), 0, 0)
	b := body(2, NewAABBShape(10, 10), 15, 0)
	c, ok := testCollision(a, b)
	if !ok {
		t.Fatal("expected overlap")
	}
	if c.Normal.X <= 0 {
		t.Errorf("normal should point +X (A to B), got %v", c.Normal)
	}
	if c.Penetration <= 0 || c.Penetration > 10 {
		t.Errorf("penetration = %v, want in (0, 10]", c.Penetration)
	}
}

func TestCircleVsAABBOutside(t *testing.T) {
	circle := body(1, NewCircleShape(5), 12, 0)
	box := body(2, NewAABBShape(10, 10), 0, 0)
	c, ok := testCollision(circle, box)
	if !ok {
		t.Fatal("expected overlap")
	}
	if c.Normal.X >= 0 {
		t.Errorf("normal should point from circle to box: -X, got %v", c.Normal)
	}
}

func square(x, y float64) []geom.Vec2 {
	return []geom.Vec2{{X: x - 5, Y: y - 5}, {X: x + 5, Y: y - 5}, {X: x + 5, Y: y + 5}, {X: x - 5, Y: y + 5}}
}

func TestPolygonVsPolygonSeparated(t *testing.T) {
	a := body(1, NewPolygonShape(square(0, 0)), 0, 0)
	b := body(2, NewPolygonShape(square(0, 0)), 100, 100)
	if _, ok := testCollision(a, b); ok {
		t.Error("far-apart polygons should not collide")
	}
}

func TestPolygonVsPolygonOverlapping(t *testing.T) {
	a := body(1, NewPolygonShape(square(0, 0)), 0, 0)
	b := body(2, NewPolygonShape(square(0, 0)), 8, 0)
	c, ok := testCollision(a, b)
	if !ok {
		t.Fatal("expected overlap")
	}
	if c.Penetration <= 0 {
		t.Errorf("penetration = %v, want > 0", c.Penetration)
	}
}

func TestRaycastVsAABB(t *testing.T) {
	b := body(1, NewAABBShape(10, 10), 100, 0)
	hit, ok := rayVsAABB(b, geom.V2(0, 0), geom.V2(1, 0), 200)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.T < 89 || hit.T > 91 {
		t.Errorf("t = %v, want ~90", hit.T)
	}
}

func TestRaycastVsCircle(t *testing.T) {
	b := body(1, NewCircleShape(5), 50, 0)
	hit, ok := rayVsCircle(b, geom.V2(0, 0), geom.V2(1, 0), 200)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.T < 44 || hit.T > 46 {
		t.Errorf("t = %v, want ~45", hit.T)
	}
}
