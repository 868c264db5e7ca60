// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package physics

import (
	"math"
	"testing"

	"github.com/arcane-engine/arcane/geom"
)

func TestDistanceConstraintHoldsRestLength(t *testing.T) {
	w := NewWorld(0, 500)
	a := w.AddBody(Static, NewCircleShape(1), 0, 0, 0, Material{}, 1, 1)
	b := w.AddBody(Dynamic, NewCircleShape(1), 0, 50, 1, Material{}, 1, 1)
	w.AddDistanceConstraint(a, b, 50, geom.Vec2{}, geom.Vec2{})

	for i := 0; i < 180; i++ {
		w.Step(1.0 / 60.0)
	}

	_, y, _, _, _, _, _ := w.GetState(b)
	dist := math.Abs(y)
	if math.Abs(dist-50) > 2 {
		t.Errorf("hanging body distance from anchor = %v, want ~50", dist)
	}
}

func TestRevoluteConstraintKeepsAnchorsTogether(t *testing.T) {
	w := NewWorld(0, 0)
	a := w.AddBody(Static, NewCircleShape(1), 0, 0, 0, Material{}, 1, 1)
	b := w.AddBody(Dynamic, NewCircleShape(1), 10, 0, 1, Material{}, 1, 1)
	id := w.AddRevoluteConstraint(a, b, 5, 0)
	if id == InvalidConstraintID {
		t.Fatal("expected a valid constraint id")
	}

	w.ApplyImpulse(b, 0, 1000)
	for i := 0; i < 60; i++ {
		w.Step(1.0 / 60.0)
	}

	ba := w.bodies[a]
	bb := w.bodies[b]
	wa := anchorWorld(ba, w.constraints[id].AnchorA)
	wb := anchorWorld(bb, w.constraints[id].AnchorB)
	if wa.Sub(wb).Length() > 1 {
		t.Errorf("revolute anchors drifted apart: %v vs %v", wa, wb)
	}
}

func TestRemoveConstraint(t *testing.T) {
	w := NewWorld(0, 0)
	a := w.AddBody(Dynamic, NewCircleShape(1), 0, 0, 1, Material{}, 1, 1)
	b := w.AddBody(Dynamic, NewCircleShape(1), 10, 0, 1, Material{}, 1, 1)
	id := w.AddDistanceConstraint(a, b, 10, geom.Vec2{}, geom.Vec2{})

	w.RemoveConstraint(id)
	if _, ok := w.constraints[id]; ok {
		t.Error("constraint should be removed")
	}
	// Removing again, or an unknown id, must not panic.
	w.RemoveConstraint(id)
	w.RemoveConstraint(InvalidConstraintID)
}
