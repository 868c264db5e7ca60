// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package physics

import (
	"math"

	"github.com/arcane-engine/arcane/geom"
)

// solverIterations is the number of velocity-solve sweeps run per
// sub-step, alternating forward and reverse across manifolds to reduce
// order bias.
const solverIterations = 6

// restitutionThreshold below this approach speed, restitution bias is
// zeroed — a resting contact should not keep re-bouncing from numerical
// noise.
const restitutionThreshold = 1.0

// frictionBaumgarte is the correction factor applied to tangential drift
// from a contact point's friction anchor.
const frictionBaumgarte = 0.1

// constraintRelaxation damps joint and contact impulses before they're
// accumulated, same role Box2D-style solvers use iteration count for
// rather than over-correcting in one step.
const constraintRelaxation = 0.8

const (
	positionSlop      = 0.005
	maxCorrection     = 0.2
	positionBaumgarte = 0.2
)

// initializeManifolds precomputes each manifold's tangent direction and
// velocity bias (the restitution term) before any impulses are applied
// this sub-step.
func initializeManifolds(bodies map[BodyID]*Body, manifolds []*ContactManifold) {
	for _, m := range manifolds {
		a, b := bodies[m.BodyA], bodies[m.BodyB]
		if a == nil || b == nil {
			continue
		}
		n := m.Normal
		m.Tangent = geom.V2(-n.Y, n.X)

		var totalVn float64
		for _, p := range m.Points {
			wa := a.localToWorld(p.LocalA)
			wb := b.localToWorld(p.LocalB)
			ra := wa.Sub(a.Pos)
			rb := wb.Sub(b.Pos)
			relVel := b.velocityAt(rb).Sub(a.velocityAt(ra))
			totalVn += relVel.Dot(n)
		}
		var avgVn float64
		if len(m.Points) > 0 {
			avgVn = totalVn / float64(len(m.Points))
		}

		var e float64
		if -avgVn >= restitutionThreshold {
			e = maxF(a.Material.Restitution, b.Material.Restitution)
		}
		m.VelocityBias = e * maxF(-avgVn, 0)
	}
}

// warmStartManifolds applies each contact point's carried-over
// accumulated impulses before the iterative solve begins, giving the
// solver a head start that converges faster (and prevents resting stacks
// from sinking between sub-steps).
func warmStartManifolds(bodies map[BodyID]*Body, manifolds []*ContactManifold) {
	for _, m := range manifolds {
		a, b := bodies[m.BodyA], bodies[m.BodyB]
		if a == nil || b == nil {
			continue
		}
		n, t := m.Normal, m.Tangent
		for _, p := range m.Points {
			if p.AccumulatedJN == 0 && p.AccumulatedJT == 0 {
				continue
			}
			impulse := n.Mul(p.AccumulatedJN).Add(t.Mul(p.AccumulatedJT))

			wa := a.localToWorld(p.LocalA)
			wb := b.localToWorld(p.LocalB)
			ra := wa.Sub(a.Pos)
			rb := wb.Sub(b.Pos)

			if a.Kind == Dynamic {
				a.Vel = a.Vel.Sub(impulse.Mul(a.InvMass))
				a.AngVel -= ra.Cross(impulse) * a.InvInertia
			}
			if b.Kind == Dynamic {
				b.Vel = b.Vel.Add(impulse.Mul(b.InvMass))
				b.AngVel += rb.Cross(impulse) * b.InvInertia
			}
		}
	}
}

// solveVelocityIteration runs one forward (or, if reverse, backward)
// sweep of the sequential-impulse velocity solver over all manifolds.
// subDt is the sub-step duration, used for the speculative-contact bias.
func solveVelocityIteration(bodies map[BodyID]*Body, manifolds []*ContactManifold, reverse bool, subDt float64) {
	n := len(manifolds)
	if reverse {
		for i := n - 1; i >= 0; i-- {
			solveManifoldVelocity(bodies, manifolds[i], subDt)
		}
	} else {
		for i := 0; i < n; i++ {
			solveManifoldVelocity(bodies, manifolds[i], subDt)
		}
	}
}

func solveManifoldVelocity(bodies map[BodyID]*Body, m *ContactManifold, subDt float64) {
	a, b := bodies[m.BodyA], bodies[m.BodyB]
	if a == nil || b == nil {
		return
	}
	if a.Kind != Dynamic && b.Kind != Dynamic {
		return
	}

	n, t := m.Normal, m.Tangent
	mu := math.Sqrt(a.Material.Friction * b.Material.Friction)
	numPoints := float64(len(m.Points))

	for i := range m.Points {
		p := &m.Points[i]

		wa := a.localToWorld(p.LocalA)
		wb := b.localToWorld(p.LocalB)
		ra := wa.Sub(a.Pos)
		rb := wb.Sub(b.Pos)

		relVel := b.velocityAt(rb).Sub(a.velocityAt(ra))
		vn := relVel.Dot(n)

		raCrossN := ra.Cross(n)
		rbCrossN := rb.Cross(n)
		invMassSum := a.InvMass + b.InvMass + raCrossN*raCrossN*a.InvInertia + rbCrossN*rbCrossN*b.InvInertia
		if invMassSum == 0 {
			continue
		}

		var perPointBias float64
		if p.Penetration < 0 && subDt > 0 {
			perPointBias = p.Penetration / subDt
		} else {
			perPointBias = m.VelocityBias / numPoints
		}
		jNew := -(vn - perPointBias) / invMassSum * constraintRelaxation

		old := p.AccumulatedJN
		p.AccumulatedJN = maxF(old+jNew, 0)
		j := p.AccumulatedJN - old

		if absF(j) > 1e-8 {
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

		solveFriction(a, b, p, ra, rb, wa, wb, t, mu, subDt)
	}
}

func solveFriction(a, b *Body, p *ManifoldPoint, ra, rb, wa, wb, t geom.Vec2, mu, subDt float64) {
	raCrossT := ra.Cross(t)
	rbCrossT := rb.Cross(t)
	invMassSumT := a.InvMass + b.InvMass + raCrossT*raCrossT*a.InvInertia + rbCrossT*rbCrossT*b.InvInertia
	if invMassSumT <= 0 {
		return
	}

	relVel := b.velocityAt(rb).Sub(a.velocityAt(ra))
	vt := relVel.Dot(t)

	currentPos := wa.Add(wb).Mul(0.5)
	if !p.HasFrictionAnchor {
		p.FrictionAnchor = currentPos
		p.HasFrictionAnchor = true
	}

	drift := currentPos.Sub(p.FrictionAnchor)
	tangentDrift := drift.Dot(t)

	var correctionVelocity float64
	if subDt > 0 {
		correctionVelocity = tangentDrift * frictionBaumgarte / subDt
	}

	vtCorrected := vt + correctionVelocity
	jtNew := -vtCorrected / invMassSumT

	maxFriction := p.AccumulatedJN * mu
	oldJt := p.AccumulatedJT
	requested := oldJt + jtNew
	newJt := clampF(requested, -maxFriction, maxFriction)

	isSliding := absF(newJt-requested) > 1e-8
	if isSliding {
		p.FrictionAnchor = currentPos
	}

	p.AccumulatedJT = newJt
	jt := p.AccumulatedJT - oldJt

	if absF(jt) > 1e-8 {
		impulse := t.Mul(jt)
		if a.Kind == Dynamic {
			a.Vel = a.Vel.Sub(impulse.Mul(a.InvMass))
			a.AngVel -= raCrossT * jt * a.InvInertia
		}
		if b.Kind == Dynamic {
			b.Vel = b.Vel.Add(impulse.Mul(b.InvMass))
			b.AngVel += rbCrossT * jt * b.InvInertia
		}
	}
}

// resolveManifoldsPosition runs the split-impulse position correction
// pass: bodies are nudged apart along each contact normal by a fraction
// of their penetration past the allowed slop, never more than
// maxCorrection in one pass.
func resolveManifoldsPosition(bodies map[BodyID]*Body, manifolds []*ContactManifold, reverse bool) {
	n := len(manifolds)
	apply := func(m *ContactManifold) {
		for _, p := range m.Points {
			positionCorrectManifoldPoint(bodies, m, p)
		}
	}
	if reverse {
		for i := n - 1; i >= 0; i-- {
			apply(manifolds[i])
		}
	} else {
		for i := 0; i < n; i++ {
			apply(manifolds[i])
		}
	}
}

func positionCorrectManifoldPoint(bodies map[BodyID]*Body, m *ContactManifold, p ManifoldPoint) {
	a, b := bodies[m.BodyA], bodies[m.BodyB]
	if a == nil || b == nil {
		return
	}
	if a.Kind != Dynamic && b.Kind != Dynamic {
		return
	}

	pen := maxF(p.Penetration-positionSlop, 0)
	invTotal := a.InvMass + b.InvMass
	if invTotal == 0 {
		return
	}
	correction := minF(pen*positionBaumgarte, maxCorrection) / invTotal

	n2 := m.Normal
	if a.Kind == Dynamic {
		a.Pos = a.Pos.Sub(n2.Mul(correction * a.InvMass))
	}
	if b.Kind == Dynamic {
		b.Pos = b.Pos.Add(n2.Mul(correction * b.InvMass))
	}
}

