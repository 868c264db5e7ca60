// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package physics

import "github.com/arcane-engine/arcane/geom"

// BodyKind classifies how a body participates in simulation.
type BodyKind uint8

// Body kind constants.
const (
	// Static bodies never move; infinite mass, zero inverse mass/inertia.
	Static BodyKind = iota
	// Dynamic bodies are fully simulated: forces, impulses, and collision
	// response all apply.
	Dynamic
	// Kinematic bodies move (their pose can be set directly) but are not
	// affected by forces, impulses, or collision response.
	Kinematic
)

// Material holds the surface properties used by the contact solver.
type Material struct {
	Restitution float64
	Friction    float64
}

// BodyID is a stable handle into the world's body slots. It is recycled
// via a free-list on removal, so a stale id naturally indexes either an
// empty slot or an unrelated later body — callers must not retain an id
// across a remove without re-validating it via GetState.
type BodyID uint32

// InvalidBodyID is returned by operations that fail to resolve or create
// a body; it never indexes a live body.
const InvalidBodyID = ^BodyID(0)

// Body is one rigid body in the world.
type Body struct {
	ID   BodyID
	Kind BodyKind

	Shape Shape

	// Pose.
	Pos   geom.Vec2
	Angle float64

	// Velocities.
	Vel    geom.Vec2
	AngVel float64

	// Force and torque accumulators, cleared at the start of every
	// integrate step.
	Force  geom.Vec2
	Torque float64

	Material Material

	// Collision filtering: a pair collides iff
	// (layerA & maskB) != 0 && (layerB & maskA) != 0.
	Layer uint32
	Mask  uint32

	Mass       float64
	InvMass    float64
	Inertia    float64
	InvInertia float64

	Sleeping   bool
	SleepTimer float64

	alive bool
}

// Sleep thresholds: a Dynamic body that stays below these linear/angular
// speed thresholds for sleepDelay seconds is put to sleep and skipped by
// the broadphase pair filter (when both bodies in a pair are asleep).
const (
	sleepLinearThreshold  = 0.5
	sleepAngularThreshold = 0.1
	sleepDelay            = 0.5
)

// newBody constructs a body and derives its mass properties from kind and
// shape. Non-Dynamic bodies always get zero inverse mass/inertia,
// regardless of the mass argument, preserving the invariant that
// inv_mass == 0 iff the body is not Dynamic.
func newBody(id BodyID, kind BodyKind, shape Shape, pos geom.Vec2, mass float64, mat Material, layer, mask uint32) *Body {
	b := &Body{
		ID:       id,
		Kind:     kind,
		Shape:    shape,
		Pos:      pos,
		Material: mat,
		Layer:    layer,
		Mask:     mask,
		alive:    true,
	}
	if kind != Dynamic {
		return b
	}
	if mass <= 0 {
		mass = 1
	}
	b.Mass = mass
	b.InvMass = 1 / mass
	inertia := shape.momentOfInertia(mass)
	if inertia > 1e-9 {
		b.Inertia = inertia
		b.InvInertia = 1 / inertia
	}
	return b
}

// wake clears the sleep flag and timer. Called by every mutator per the
// public contract — a script that nudges a sleeping body expects it to
// resume simulating immediately.
func (b *Body) wake() {
	b.Sleeping = false
	b.SleepTimer = 0
}

// worldAABB returns the body's current axis-aligned bounding box in world
// space, used by the broadphase spatial hash and by QueryAABB.
func (b *Body) worldAABB() (min, max geom.Vec2) {
	lmin, lmax := b.Shape.localAABB()
	switch b.Shape.Kind {
	case ShapePolygon:
		if len(b.Shape.Verts) == 0 {
			return b.Pos, b.Pos
		}
		first := b.Pos.Add(b.Shape.Verts[0].Rotated(b.Angle))
		min, max = first, first
		for _, v := range b.Shape.Verts[1:] {
			w := b.Pos.Add(v.Rotated(b.Angle))
			min = geom.V2(minF(min.X, w.X), minF(min.Y, w.Y))
			max = geom.V2(maxF(max.X, w.X), maxF(max.Y, w.Y))
		}
		return min, max
	default:
		// Circle and AABB local bounds are already axis-aligned and
		// rotation-invariant enough for broadphase purposes; offset by
		// body position only.
		return b.Pos.Add(lmin), b.Pos.Add(lmax)
	}
}

// localToWorld transforms a body-local point into world space using the
// body's current pose.
func (b *Body) localToWorld(local geom.Vec2) geom.Vec2 {
	return b.Pos.Add(local.Rotated(b.Angle))
}

// worldToLocal transforms a world point into the body's local frame —
// the inverse of localToWorld, used to derive manifold anchor points
// from a world contact point.
func (b *Body) worldToLocal(world geom.Vec2) geom.Vec2 {
	return world.Sub(b.Pos).Rotated(-b.Angle)
}

// velocityAt returns the linear velocity of the material point currently
// at world-space offset r from the body's center (linear + angular
// contribution: v + ω × r).
func (b *Body) velocityAt(r geom.Vec2) geom.Vec2 {
	return geom.V2(b.Vel.X-b.AngVel*r.Y, b.Vel.Y+b.AngVel*r.X)
}
