// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package physics

import "github.com/arcane-engine/arcane/geom"

// ManifoldPoint is one contact point within a manifold. LocalA and LocalB
// are the contact point expressed in each body's local frame at the
// moment the manifold was built, so that the world position can be
// recomputed every solver iteration as the bodies move.
type ManifoldPoint struct {
	LocalA, LocalB geom.Vec2
	Penetration    float64

	AccumulatedJN float64
	AccumulatedJT float64

	FrictionAnchor    geom.Vec2
	HasFrictionAnchor bool
}

// manifoldKey identifies a persistent manifold slot by its ordered
// body-id pair. Manifolds persist across sub-steps (keyed this way) so
// that warm-starting has accumulated impulses to carry forward — the
// contact caching scheme that makes the default 6-iteration solver
// converge.
type manifoldKey struct{ a, b BodyID }

// ContactManifold is the persistent per-pair contact state the solver
// iterates over: the shared normal/tangent for the pair plus its contact
// points (buildManifold produces exactly one).
type ContactManifold struct {
	BodyA, BodyB BodyID
	Normal       geom.Vec2
	Tangent      geom.Vec2
	VelocityBias float64
	Points       []ManifoldPoint
}

// buildManifold derives a manifold from a fresh narrowphase Contact,
// reusing the previous manifold's accumulated impulses when the new
// contact point is close to an old one (nearest-point matching), which
// is the warm-start carry-over the sequential-impulse solver relies on.
func buildManifold(bodies map[BodyID]*Body, c Contact, prev *ContactManifold) *ContactManifold {
	a := bodies[c.A]
	b := bodies[c.B]

	point := ManifoldPoint{
		LocalA:      a.worldToLocal(c.ContactPoint),
		LocalB:      b.worldToLocal(c.ContactPoint),
		Penetration: c.Penetration,
	}

	if prev != nil {
		for _, pp := range prev.Points {
			// Nearest-point matching in A's local frame: if the previous
			// point is close to the new one, carry its impulses forward.
			if pp.LocalA.Sub(point.LocalA).LengthSq() < nearestPointEpsilon {
				point.AccumulatedJN = pp.AccumulatedJN
				point.AccumulatedJT = pp.AccumulatedJT
				point.FrictionAnchor = pp.FrictionAnchor
				point.HasFrictionAnchor = pp.HasFrictionAnchor
				break
			}
		}
	}

	return &ContactManifold{
		BodyA:  c.A,
		BodyB:  c.B,
		Normal: c.Normal,
		Points: []ManifoldPoint{point},
	}
}

// nearestPointEpsilon bounds how far (squared, in local-space units) a
// new contact point may be from an old one to still be treated as "the
// same" point for warm-start impulse carry-over.
const nearestPointEpsilon = 0.25
