// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package physics

import "github.com/arcane-engine/arcane/geom"

// ConstraintKind identifies a joint's solving rule.
type ConstraintKind uint8

// Constraint kind constants.
const (
	ConstraintDistance ConstraintKind = iota
	ConstraintRevolute
)

// ConstraintID is a stable handle into the world's constraint slots,
// recycled the same way BodyID is.
type ConstraintID uint32

// InvalidConstraintID never indexes a live constraint.
const InvalidConstraintID = ^ConstraintID(0)

// Constraint is a two-body joint. AnchorA and AnchorB are always stored
// in each body's local frame; the public API accepts a world-space pivot
// for Revolute joints and converts it to local anchors at creation time
// (World.AddRevoluteConstraint performs this conversion once, rather
// than every solve).
type Constraint struct {
	ID   ConstraintID
	Kind ConstraintKind
	A, B BodyID

	// Distance only.
	RestLength float64

	AnchorA, AnchorB geom.Vec2

	alive bool
}

// newDistanceConstraint creates a Distance joint holding A and B's anchor
// points (in local space) at a fixed rest length.
func newDistanceConstraint(id ConstraintID, a, b BodyID, restLength float64, anchorA, anchorB geom.Vec2) *Constraint {
	return &Constraint{ID: id, Kind: ConstraintDistance, A: a, B: b, RestLength: restLength, AnchorA: anchorA, AnchorB: anchorB, alive: true}
}

// newRevoluteConstraintFromPivot creates a Revolute joint from a
// world-space pivot point, converting it to each body's local anchor at
// creation — the one-time conversion the joint model assumes.
func newRevoluteConstraintFromPivot(id ConstraintID, a, b *Body, pivot geom.Vec2) *Constraint {
	return &Constraint{
		ID:      id,
		Kind:    ConstraintRevolute,
		A:       a.ID,
		B:       b.ID,
		AnchorA: a.worldToLocal(pivot),
		AnchorB: b.worldToLocal(pivot),
		alive:   true,
	}
}

// solveConstraints runs one velocity-level pass over all constraints,
// applying impulses so that relative velocity along each joint's
// constrained axes goes to zero.
func solveConstraints(bodies map[BodyID]*Body, constraints []*Constraint) {
	for _, c := range constraints {
		switch c.Kind {
		case ConstraintDistance:
			solveDistanceVelocity(bodies, c)
		case ConstraintRevolute:
			solveRevoluteVelocity(bodies, c)
		}
	}
}

// solveConstraintsPosition runs the Baumgarte position-correction pass
// for all constraints, after the velocity solve.
func solveConstraintsPosition(bodies map[BodyID]*Body, constraints []*Constraint) {
	for _, c := range constraints {
		switch c.Kind {
		case ConstraintDistance:
			solveDistancePosition(bodies, c)
		case ConstraintRevolute:
			solveRevolutePosition(bodies, c)
		}
	}
}

func anchorWorld(b *Body, local geom.Vec2) geom.Vec2 {
	return b.localToWorld(local)
}

func solveDistanceVelocity(bodies map[BodyID]*Body, c *Constraint) {
	a, b := bodies[c.A], bodies[c.B]
	if a == nil || b == nil {
		return
	}
	if a.Kind != Dynamic && b.Kind != Dynamic {
		return
	}

	wa := anchorWorld(a, c.AnchorA)
	wb := anchorWorld(b, c.AnchorB)
	d := wb.Sub(wa)
	dist := d.Length()
	if dist < 1e-8 {
		return
	}
	n := d.Mul(1 / dist)

	ra := wa.Sub(a.Pos)
	rb := wb.Sub(b.Pos)

	relVel := b.velocityAt(rb).Sub(a.velocityAt(ra))
	relVn := relVel.Dot(n)

	raCrossN := ra.Cross(n)
	rbCrossN := rb.Cross(n)
	invMassSum := a.InvMass + b.InvMass + raCrossN*raCrossN*a.InvInertia + rbCrossN*rbCrossN*b.InvInertia
	if invMassSum < 1e-8 {
		return
	}

	j := -relVn / invMassSum * constraintRelaxation
	impulse := n.Mul(j)

	if a.Kind == Dynamic {
		a.Vel = a.Vel.Sub(impulse.Mul(a.InvMass))
		a.AngVel -= raCrossN * j * a.InvInertia
	}
	if b.Kind == Dynamic {
		b.Vel = b.Vel.Add(impulse.Mul(b.InvMass))
		b.AngVel += rbCrossN * j * b.InvInertia
	}
}

func solveDistancePosition(bodies map[BodyID]*Body, c *Constraint) {
	a, b := bodies[c.A], bodies[c.B]
	if a == nil || b == nil {
		return
	}
	if a.Kind != Dynamic && b.Kind != Dynamic {
		return
	}

	wa := anchorWorld(a, c.AnchorA)
	wb := anchorWorld(b, c.AnchorB)
	d := wb.Sub(wa)
	dist := d.Length()
	if dist < 1e-8 {
		return
	}
	n := d.Mul(1 / dist)
	errDist := dist - c.RestLength

	var pen float64
	if errDist > 0 {
		pen = maxF(errDist-positionSlop, 0)
	} else {
		pen = minF(errDist+positionSlop, 0)
	}

	invTotal := a.InvMass + b.InvMass
	if invTotal == 0 {
		return
	}
	correction := clampF(pen*positionBaumgarte, -maxCorrection, maxCorrection) / invTotal

	if a.Kind == Dynamic {
		a.Pos = a.Pos.Add(n.Mul(correction * a.InvMass))
	}
	if b.Kind == Dynamic {
		b.Pos = b.Pos.Sub(n.Mul(correction * b.InvMass))
	}
}

func solveRevoluteVelocity(bodies map[BodyID]*Body, c *Constraint) {
	a, b := bodies[c.A], bodies[c.B]
	if a == nil || b == nil {
		return
	}
	if a.Kind != Dynamic && b.Kind != Dynamic {
		return
	}

	wa := anchorWorld(a, c.AnchorA)
	wb := anchorWorld(b, c.AnchorB)
	ra := wa.Sub(a.Pos)
	rb := wb.Sub(b.Pos)

	va := a.velocityAt(ra)
	vb := b.velocityAt(rb)
	relV := vb.Sub(va)

	k11 := a.InvMass + b.InvMass + ra.Y*ra.Y*a.InvInertia + rb.Y*rb.Y*b.InvInertia
	k22 := a.InvMass + b.InvMass + ra.X*ra.X*a.InvInertia + rb.X*rb.X*b.InvInertia
	k12 := -ra.X*ra.Y*a.InvInertia - rb.X*rb.Y*b.InvInertia
	k21 := k12

	det := k11*k22 - k12*k21
	if absF(det) < 1e-8 {
		return
	}
	invDet := 1 / det

	jx := invDet*(k22*(-relV.X)-k12*(-relV.Y)) * constraintRelaxation
	jy := invDet*(-k21*(-relV.X)+k11*(-relV.Y)) * constraintRelaxation

	if a.Kind == Dynamic {
		a.Vel.X -= jx * a.InvMass
		a.Vel.Y -= jy * a.InvMass
		raCrossJ := ra.X*jy - ra.Y*jx
		a.AngVel -= raCrossJ * a.InvInertia
	}
	if b.Kind == Dynamic {
		b.Vel.X += jx * b.InvMass
		b.Vel.Y += jy * b.InvMass
		rbCrossJ := rb.X*jy - rb.Y*jx
		b.AngVel += rbCrossJ * b.InvInertia
	}
}

func solveRevolutePosition(bodies map[BodyID]*Body, c *Constraint) {
	a, b := bodies[c.A], bodies[c.B]
	if a == nil || b == nil {
		return
	}
	if a.Kind != Dynamic && b.Kind != Dynamic {
		return
	}

	wa := anchorWorld(a, c.AnchorA)
	wb := anchorWorld(b, c.AnchorB)
	d := wb.Sub(wa)
	if d.LengthSq() < 1e-8 {
		return
	}

	invTotal := a.InvMass + b.InvMass
	if invTotal == 0 {
		return
	}

	cx := clampF(d.X*positionBaumgarte, -maxCorrection, maxCorrection) / invTotal
	cy := clampF(d.Y*positionBaumgarte, -maxCorrection, maxCorrection) / invTotal

	if a.Kind == Dynamic {
		a.Pos.X += cx * a.InvMass
		a.Pos.Y += cy * a.InvMass
	}
	if b.Kind == Dynamic {
		b.Pos.X -= cx * b.InvMass
		b.Pos.Y -= cy * b.InvMass
	}
}
