// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"testing"

	"github.com/arcane-engine/arcane/bridge"
	"github.com/arcane-engine/arcane/physics"
)

func TestPhysicsOpsNoWorldReturnSentinels(t *testing.T) {
	b := bridge.NewState()
	if id := CreateBody(b, 0, ShapeTypeCircle, 1, 0, 0, 0, 1, 0, 0, 1, 1); id != uint32(physics.InvalidBodyID) {
		t.Errorf("CreateBody without a world = %v, want InvalidBodyID", id)
	}
	if state := GetBodyState(b, 0); state != nil {
		t.Errorf("GetBodyState without a world = %v, want nil", state)
	}
	PhysicsStep(b, 1.0/60) // must not panic
}

func TestCreateBodyAndStepMovesDynamicBody(t *testing.T) {
	b := bridge.NewState()
	CreatePhysicsWorld(b, 0, -10)
	id := CreateBody(b, 1 /* Dynamic */, ShapeTypeCircle, 1, 0, 0, 0, 1, 0, 0.5, 1, 1)

	for i := 0; i < 60; i++ {
		PhysicsStep(b, 1.0/60)
	}

	state := GetBodyState(b, id)
	if state == nil {
		t.Fatal("GetBodyState returned nil for a live body")
	}
	if state[1] >= 0 {
		t.Errorf("y = %v, want negative after falling under gravity for 1s", state[1])
	}
}

func TestRemoveBodyUnknownIDNoops(t *testing.T) {
	b := bridge.NewState()
	CreatePhysicsWorld(b, 0, 0)
	RemoveBody(b, 999) // must not panic
}

func TestDistanceAndRevoluteJointsCreateConstraints(t *testing.T) {
	b := bridge.NewState()
	CreatePhysicsWorld(b, 0, 0)
	a := CreateBody(b, 1, ShapeTypeCircle, 1, 0, 0, 0, 1, 0, 0, 1, 1)
	bb := CreateBody(b, 1, ShapeTypeCircle, 1, 0, 10, 0, 1, 0, 0, 1, 1)

	d := CreateDistanceJoint(b, a, bb, 10)
	if d == uint32(physics.InvalidConstraintID) {
		t.Error("CreateDistanceJoint should succeed for two live bodies")
	}
	r := CreateRevoluteJoint(b, a, bb, 5, 0)
	if r == uint32(physics.InvalidConstraintID) {
		t.Error("CreateRevoluteJoint should succeed for two live bodies")
	}
	RemoveConstraint(b, d)
	RemoveConstraint(b, r)
}

func TestQueryAABBFindsOverlappingBody(t *testing.T) {
	b := bridge.NewState()
	CreatePhysicsWorld(b, 0, 0)
	id := CreateBody(b, 0, ShapeTypeCircle, 1, 0, 5, 5, 1, 0, 0, 1, 1)

	hits := QueryAABB(b, 0, 0, 10, 10)
	found := false
	for _, h := range hits {
		if h == id {
			found = true
		}
	}
	if !found {
		t.Errorf("QueryAABB(0,0,10,10) = %v, want to include body %v", hits, id)
	}
}

func TestRaycastHitsBody(t *testing.T) {
	b := bridge.NewState()
	CreatePhysicsWorld(b, 0, 0)
	id := CreateBody(b, 0, ShapeTypeCircle, 1, 0, 10, 0, 1, 0, 0, 1, 1)

	hit := Raycast(b, 0, 0, 1, 0, 20)
	if hit == nil {
		t.Fatal("Raycast should hit the body on the ray's path")
	}
	if uint32(hit[0]) != id {
		t.Errorf("Raycast hit id = %v, want %v", hit[0], id)
	}
}

func TestGetContactsFlattensAfterOverlap(t *testing.T) {
	b := bridge.NewState()
	CreatePhysicsWorld(b, 0, 0)
	CreateBody(b, 1, ShapeTypeCircle, 1, 0, 0, 0, 1, 0, 0, 1, 1)
	CreateBody(b, 1, ShapeTypeCircle, 1, 0, 0.5, 0, 1, 0, 0, 1, 1)

	for i := 0; i < 5; i++ {
		PhysicsStep(b, 1.0/60)
	}
	contacts := GetContacts(b)
	if len(contacts)%7 != 0 {
		t.Errorf("len(contacts) = %d, want a multiple of 7", len(contacts))
	}
}

func TestDestroyPhysicsWorldClearsField(t *testing.T) {
	b := bridge.NewState()
	CreatePhysicsWorld(b, 0, 0)
	DestroyPhysicsWorld(b)
	if b.Physics != nil {
		t.Error("DestroyPhysicsWorld should set Physics back to nil")
	}
}
