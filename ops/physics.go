// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"github.com/arcane-engine/arcane/bridge"
	"github.com/arcane-engine/arcane/geom"
	"github.com/arcane-engine/arcane/physics"
)

// CreatePhysicsWorld replaces the bridge's physics world with a fresh
// one using the given constant gravity. Any existing world (and every
// body/constraint it held) is discarded.
func CreatePhysicsWorld(b *bridge.State, gx, gy float64) {
	b.Physics = physics.NewWorld(gx, gy)
}

// DestroyPhysicsWorld discards the bridge's physics world, if any.
func DestroyPhysicsWorld(b *bridge.State) {
	b.Physics = nil
}

// PhysicsStep advances the world by dt sub-step increments. A no-op if
// no world has been created.
func PhysicsStep(b *bridge.State, dt float64) {
	if b.Physics == nil {
		return
	}
	b.Physics.Step(dt)
}

// Body shape_type constants from the ops table.
const (
	ShapeTypeCircle = 0
	ShapeTypeAABB   = 1
)

// CreateBody adds a body and returns its id, or physics.InvalidBodyID
// (as uint32) if no world exists. shapeType selects between a circle
// (p1=radius) and an axis-aligned box (p1=halfW, p2=halfH).
func CreateBody(b *bridge.State, kind int, shapeType int, p1, p2, x, y, mass, restitution, friction float64, layer, mask uint32) uint32 {
	if b.Physics == nil {
		return uint32(physics.InvalidBodyID)
	}
	var shape physics.Shape
	switch shapeType {
	case ShapeTypeAABB:
		shape = physics.NewAABBShape(p1, p2)
	default:
		shape = physics.NewCircleShape(p1)
	}
	mat := physics.Material{Restitution: restitution, Friction: friction}
	id := b.Physics.AddBody(physics.BodyKind(kind), shape, x, y, mass, mat, layer, mask)
	return uint32(id)
}

// RemoveBody deletes a body. Unknown ids and a nil world are a silent no-op.
func RemoveBody(b *bridge.State, id uint32) {
	if b.Physics == nil {
		return
	}
	b.Physics.RemoveBody(physics.BodyID(id))
}

// GetBodyState returns [x,y,angle,vx,vy,angularVelocity], or nil for an
// unknown id or a nil world.
func GetBodyState(b *bridge.State, id uint32) []float64 {
	if b.Physics == nil {
		return nil
	}
	x, y, angle, vx, vy, angVel, ok := b.Physics.GetState(physics.BodyID(id))
	if !ok {
		return nil
	}
	return []float64{x, y, angle, vx, vy, angVel}
}

// SetBodyVelocity sets a body's linear velocity.
func SetBodyVelocity(b *bridge.State, id uint32, x, y float64) {
	if b.Physics == nil {
		return
	}
	b.Physics.SetVelocity(physics.BodyID(id), x, y)
}

// SetBodyAngularVelocity sets a body's angular velocity.
func SetBodyAngularVelocity(b *bridge.State, id uint32, av float64) {
	if b.Physics == nil {
		return
	}
	b.Physics.SetAngularVelocity(physics.BodyID(id), av)
}

// ApplyForce accumulates a force for the next integration step.
func ApplyForce(b *bridge.State, id uint32, x, y float64) {
	if b.Physics == nil {
		return
	}
	b.Physics.ApplyForce(physics.BodyID(id), x, y)
}

// ApplyImpulse immediately changes a body's velocity.
func ApplyImpulse(b *bridge.State, id uint32, x, y float64) {
	if b.Physics == nil {
		return
	}
	b.Physics.ApplyImpulse(physics.BodyID(id), x, y)
}

// SetBodyPosition teleports a body.
func SetBodyPosition(b *bridge.State, id uint32, x, y float64) {
	if b.Physics == nil {
		return
	}
	b.Physics.SetPosition(physics.BodyID(id), x, y)
}

// SetCollisionLayers updates a body's layer/mask bitmasks.
func SetCollisionLayers(b *bridge.State, id uint32, layer, mask uint32) {
	if b.Physics == nil {
		return
	}
	b.Physics.SetCollisionLayers(physics.BodyID(id), layer, mask)
}

// CreateDistanceJoint adds a Distance constraint pinned to each body's
// origin (anchorA/anchorB are both the zero vector) and returns its id.
func CreateDistanceJoint(b *bridge.State, a, bb uint32, dist float64) uint32 {
	if b.Physics == nil {
		return uint32(physics.InvalidConstraintID)
	}
	id := b.Physics.AddDistanceConstraint(physics.BodyID(a), physics.BodyID(bb), dist, geom.Vec2{}, geom.Vec2{})
	return uint32(id)
}

// CreateRevoluteJoint adds a Revolute constraint at the given world-space
// pivot. physics.World.AddRevoluteConstraint converts the pivot to each
// body's local anchor once, at creation time, because the world stores
// constraint anchors in local space only.
func CreateRevoluteJoint(b *bridge.State, a, bb uint32, px, py float64) uint32 {
	if b.Physics == nil {
		return uint32(physics.InvalidConstraintID)
	}
	id := b.Physics.AddRevoluteConstraint(physics.BodyID(a), physics.BodyID(bb), px, py)
	return uint32(id)
}

// RemoveConstraint deletes a constraint. Unknown ids and a nil world are
// a silent no-op.
func RemoveConstraint(b *bridge.State, id uint32) {
	if b.Physics == nil {
		return
	}
	b.Physics.RemoveConstraint(physics.ConstraintID(id))
}

// QueryAABB returns the ids of every body whose AABB overlaps the given box.
func QueryAABB(b *bridge.State, minX, minY, maxX, maxY float64) []uint32 {
	if b.Physics == nil {
		return nil
	}
	hits := b.Physics.QueryAABB(geom.V2(minX, minY), geom.V2(maxX, maxY))
	out := make([]uint32, len(hits))
	for i, id := range hits {
		out[i] = uint32(id)
	}
	return out
}

// Raycast casts a ray and returns (id, hitX, hitY, t), or nil if the ray
// hits nothing (or no world exists).
func Raycast(b *bridge.State, originX, originY, dirX, dirY, maxDist float64) []float64 {
	if b.Physics == nil {
		return nil
	}
	hit, ok := b.Physics.Raycast(geom.V2(originX, originY), geom.V2(dirX, dirY), maxDist)
	if !ok {
		return nil
	}
	return []float64{float64(uint32(hit.Body)), hit.Hit.X, hit.Hit.Y, hit.T}
}

// GetContacts returns every contact from the most recent sub-step,
// flattened as [a,b,nx,ny,pen,cx,cy] repeated once per contact.
func GetContacts(b *bridge.State) []float64 {
	if b.Physics == nil {
		return nil
	}
	contacts := b.Physics.GetContacts()
	out := make([]float64, 0, len(contacts)*7)
	for _, c := range contacts {
		out = append(out,
			float64(uint32(c.A)), float64(uint32(c.B)),
			c.Normal.X, c.Normal.Y, c.Penetration,
			c.ContactPoint.X, c.ContactPoint.Y,
		)
	}
	return out
}
