// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package physics implements a fixed-timestep 2D rigid-body world:
// spatial-hash broadphase, shape-pair narrowphase, a sequential-impulse
// contact solver with warm-starting and friction anchors, and Distance
// and Revolute joint constraints.
package physics

import (
	"math"

	"github.com/arcane-engine/arcane/geom"
)

// FixedDT is the fixed sub-step duration the world's accumulator steps
// by, regardless of the caller's frame dt.
const FixedDT = 1.0 / 60.0

// World owns every body, constraint, and the per-pair contact cache for
// one simulation. It performs no I/O; all state is plain data, stepped
// synchronously by the caller (typically the host frame loop, once per
// frame with the frame's delta time).
type World struct {
	gravity geom.Vec2

	bodies   map[BodyID]*Body
	nextBody BodyID
	freeBody []BodyID

	constraints      map[ConstraintID]*Constraint
	nextConstr       ConstraintID
	freeConstr       []ConstraintID
	constraintsOrder []ConstraintID

	broadphase *spatialHash

	manifolds    map[manifoldKey]*ContactManifold
	lastContacts []Contact

	accumulator float64
}

// NewWorld creates an empty world with the given constant gravity.
func NewWorld(gravityX, gravityY float64) *World {
	return &World{
		gravity:    geom.V2(gravityX, gravityY),
		bodies:     make(map[BodyID]*Body),
		constraints: make(map[ConstraintID]*Constraint),
		broadphase: newSpatialHash(defaultCellSize),
		manifolds:  make(map[manifoldKey]*ContactManifold),
	}
}

// AddBody creates a body and returns its id.
func (w *World) AddBody(kind BodyKind, shape Shape, x, y, mass float64, mat Material, layer, mask uint32) BodyID {
	var id BodyID
	if n := len(w.freeBody); n > 0 {
		id = w.freeBody[n-1]
		w.freeBody = w.freeBody[:n-1]
	} else {
		id = w.nextBody
		w.nextBody++
	}
	w.bodies[id] = newBody(id, kind, shape, geom.V2(x, y), mass, mat, layer, mask)
	return id
}

// RemoveBody deletes a body and any constraints referencing it. Unknown
// ids are a silent no-op.
func (w *World) RemoveBody(id BodyID) {
	if _, ok := w.bodies[id]; !ok {
		return
	}
	delete(w.bodies, id)
	w.freeBody = append(w.freeBody, id)

	for cid, c := range w.constraints {
		if c.A == id || c.B == id {
			w.removeConstraintID(cid)
		}
	}
}

// GetState returns (x, y, angle, vx, vy, angularVelocity) for a body.
// ok is false for an unknown id.
func (w *World) GetState(id BodyID) (x, y, angle, vx, vy, angVel float64, ok bool) {
	b, found := w.bodies[id]
	if !found {
		return 0, 0, 0, 0, 0, 0, false
	}
	return b.Pos.X, b.Pos.Y, b.Angle, b.Vel.X, b.Vel.Y, b.AngVel, true
}

// SetVelocity sets a body's linear velocity and wakes it.
func (w *World) SetVelocity(id BodyID, x, y float64) {
	if b, ok := w.bodies[id]; ok {
		b.Vel = geom.V2(x, y)
		b.wake()
	}
}

// SetAngularVelocity sets a body's angular velocity and wakes it.
func (w *World) SetAngularVelocity(id BodyID, av float64) {
	if b, ok := w.bodies[id]; ok {
		b.AngVel = av
		b.wake()
	}
}

// ApplyForce accumulates a force for the next Integrate step and wakes
// the body. No-op for non-Dynamic bodies.
func (w *World) ApplyForce(id BodyID, x, y float64) {
	if b, ok := w.bodies[id]; ok && b.Kind == Dynamic {
		b.Force = b.Force.Add(geom.V2(x, y))
		b.wake()
	}
}

// ApplyImpulse immediately changes a body's velocity by impulse/mass and
// wakes it. No-op for non-Dynamic bodies.
func (w *World) ApplyImpulse(id BodyID, x, y float64) {
	b, ok := w.bodies[id]
	if !ok || b.Kind != Dynamic {
		return
	}
	b.Vel = b.Vel.Add(geom.V2(x, y).Mul(b.InvMass))
	b.wake()
}

// SetPosition teleports a body and wakes it.
func (w *World) SetPosition(id BodyID, x, y float64) {
	if b, ok := w.bodies[id]; ok {
		b.Pos = geom.V2(x, y)
		b.wake()
	}
}

// SetCollisionLayers updates a body's layer/mask bitmasks. This does not
// wake the body — changing filtering is not itself a physical event.
func (w *World) SetCollisionLayers(id BodyID, layer, mask uint32) {
	if b, ok := w.bodies[id]; ok {
		b.Layer = layer
		b.Mask = mask
	}
}

// AddDistanceConstraint registers a Distance joint and returns its id.
func (w *World) AddDistanceConstraint(a, b BodyID, restLength float64, anchorA, anchorB geom.Vec2) ConstraintID {
	id := w.allocConstraintID()
	w.constraints[id] = newDistanceConstraint(id, a, b, restLength, anchorA, anchorB)
	w.constraintsOrder = append(w.constraintsOrder, id)
	return id
}

// AddRevoluteConstraint registers a Revolute joint from a world-space
// pivot, converting it to each body's local anchor immediately. Returns
// InvalidConstraintID if either body is unknown.
func (w *World) AddRevoluteConstraint(a, b BodyID, pivotX, pivotY float64) ConstraintID {
	ba, ok := w.bodies[a]
	if !ok {
		return InvalidConstraintID
	}
	bb, ok := w.bodies[b]
	if !ok {
		return InvalidConstraintID
	}
	id := w.allocConstraintID()
	w.constraints[id] = newRevoluteConstraintFromPivot(id, ba, bb, geom.V2(pivotX, pivotY))
	w.constraintsOrder = append(w.constraintsOrder, id)
	return id
}

func (w *World) allocConstraintID() ConstraintID {
	if n := len(w.freeConstr); n > 0 {
		id := w.freeConstr[n-1]
		w.freeConstr = w.freeConstr[:n-1]
		return id
	}
	id := w.nextConstr
	w.nextConstr++
	return id
}

// RemoveConstraint deletes a constraint. Unknown ids are a silent no-op.
func (w *World) RemoveConstraint(id ConstraintID) {
	w.removeConstraintID(id)
}

func (w *World) removeConstraintID(id ConstraintID) {
	if _, ok := w.constraints[id]; !ok {
		return
	}
	delete(w.constraints, id)
	w.freeConstr = append(w.freeConstr, id)
	for i, cid := range w.constraintsOrder {
		if cid == id {
			w.constraintsOrder = append(w.constraintsOrder[:i], w.constraintsOrder[i+1:]...)
			break
		}
	}
}

// QueryAABB returns the ids of every body whose world AABB overlaps
// [min, max].
func (w *World) QueryAABB(min, max geom.Vec2) []BodyID {
	var out []BodyID
	for id, b := range w.bodies {
		bmin, bmax := b.worldAABB()
		if bmin.X <= max.X && bmax.X >= min.X && bmin.Y <= max.Y && bmax.Y >= min.Y {
			out = append(out, id)
		}
	}
	return out
}

// Raycast casts a ray from origin in direction dir (need not be
// normalized; |dir| < ε returns no hit) up to maxDist, returning the
// nearest body hit across all shapes.
func (w *World) Raycast(origin, dir geom.Vec2, maxDist float64) (RaycastHit, bool) {
	if dir.Length() < 1e-9 {
		return RaycastHit{}, false
	}
	dir = dir.Normalized()

	var best RaycastHit
	bestT := math.Inf(1)
	found := false
	for _, b := range w.bodies {
		if hit, ok := raycastBody(b, origin, dir, maxDist); ok && hit.T < bestT {
			best = hit
			bestT = hit.T
			found = true
		}
	}
	return best, found
}

// GetContacts returns the contacts produced by the most recent sub-step.
func (w *World) GetContacts() []Contact {
	return w.lastContacts
}

// Step advances the world by dt using the fixed sub-step accumulator:
// any leftover time below FixedDT is retained for the next call, so the
// simulation always advances in FixedDT increments regardless of the
// caller's frame time.
func (w *World) Step(dt float64) {
	w.accumulator += dt
	for w.accumulator >= FixedDT {
		w.subStep(FixedDT)
		w.accumulator -= FixedDT
	}
}

func (w *World) subStep(dt float64) {
	w.integrate(dt)

	pairs := w.broadphasePairs()
	contacts := w.narrowphase(pairs)
	w.lastContacts = contacts

	manifolds := w.buildManifolds(contacts)

	initializeManifolds(w.bodies, manifolds)
	warmStartManifolds(w.bodies, manifolds)

	for i := 0; i < solverIterations; i++ {
		reverse := i%2 == 1
		solveVelocityIteration(w.bodies, manifolds, reverse, dt)
		solveConstraints(w.bodies, w.orderedConstraints())
	}

	resolveManifoldsPosition(w.bodies, manifolds, false)
	solveConstraintsPosition(w.bodies, w.orderedConstraints())

	w.updateSleep(dt)
}

func (w *World) orderedConstraints() []*Constraint {
	out := make([]*Constraint, 0, len(w.constraintsOrder))
	for _, id := range w.constraintsOrder {
		if c, ok := w.constraints[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

func (w *World) integrate(dt float64) {
	for _, b := range w.bodies {
		if b.Kind != Dynamic {
			continue
		}
		if b.Sleeping {
			continue
		}
		accel := w.gravity.Add(b.Force.Mul(b.InvMass))
		b.Vel = b.Vel.Add(accel.Mul(dt))
		b.Pos = b.Pos.Add(b.Vel.Mul(dt))
		b.AngVel += b.Torque * b.InvInertia * dt
		b.Angle += b.AngVel * dt
		b.Force = geom.Vec2{}
		b.Torque = 0
	}
}

func (w *World) broadphasePairs() []pair {
	w.broadphase.clear()
	for id, b := range w.bodies {
		min, max := b.worldAABB()
		w.broadphase.insert(id, min, max)
	}
	return w.broadphase.candidatePairs()
}

func (w *World) narrowphase(pairs []pair) []Contact {
	var contacts []Contact
	for _, p := range pairs {
		a, b := w.bodies[p.a], w.bodies[p.b]
		if a == nil || b == nil {
			continue
		}
		if (a.Layer&b.Mask) == 0 || (b.Layer&a.Mask) == 0 {
			continue
		}
		if a.Sleeping && b.Sleeping {
			continue
		}
		if c, ok := testCollision(a, b); ok {
			contacts = append(contacts, c)
		}
	}
	return contacts
}

func (w *World) buildManifolds(contacts []Contact) []*ContactManifold {
	seen := make(map[manifoldKey]struct{}, len(contacts))
	out := make([]*ContactManifold, 0, len(contacts))
	for _, c := range contacts {
		key := manifoldKey{a: c.A, b: c.B}
		prev := w.manifolds[key]
		m := buildManifold(w.bodies, c, prev)
		w.manifolds[key] = m
		seen[key] = struct{}{}
		out = append(out, m)
	}
	// Drop manifolds for pairs no longer in contact so stale warm-start
	// impulses don't leak into an unrelated future pair collision.
	for key := range w.manifolds {
		if _, ok := seen[key]; !ok {
			delete(w.manifolds, key)
		}
	}
	return out
}

func (w *World) updateSleep(dt float64) {
	for _, b := range w.bodies {
		if b.Kind != Dynamic {
			continue
		}
		slow := b.Vel.Length() < sleepLinearThreshold &&
			math.Abs(b.AngVel) < sleepAngularThreshold &&
			b.Force.Length() < 1e-6
		if slow {
			b.SleepTimer += dt
			if b.SleepTimer >= sleepDelay {
				b.Sleeping = true
				b.Vel = geom.Vec2{}
				b.AngVel = 0
			}
		} else {
			b.SleepTimer = 0
		}
	}
}
