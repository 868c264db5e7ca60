// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import "github.com/arcane-engine/arcane/bridge"

// CreateEmitter registers a particle emitter's opaque configuration and
// returns its handle. The emitter DSL that interprets configJSON and
// simulates particles is an external collaborator; this op only records
// the command interface into it.
func CreateEmitter(b *bridge.State, configJSON string) uint32 {
	id := b.Emitters.Next()
	b.EmitterConfigs[id] = configJSON
	return id
}

// UpdateEmitter advances an emitter's simulation by dt around center
// (cx, cy). A no-op for an unknown id; the simulation step itself is
// performed by the external emitter DSL, not recorded here.
func UpdateEmitter(b *bridge.State, id uint32, dt, cx, cy float64) {
	if _, ok := b.EmitterConfigs[id]; !ok {
		return
	}
}

// DestroyEmitter removes an emitter. Unknown ids are a silent no-op.
func DestroyEmitter(b *bridge.State, id uint32) {
	delete(b.EmitterConfigs, id)
}

// GetEmitterParticleCount returns an emitter's live particle count, or 0
// for an unknown id.
func GetEmitterParticleCount(b *bridge.State, id uint32) int {
	if _, ok := b.EmitterConfigs[id]; !ok {
		return 0
	}
	return 0
}

// GetEmitterSpriteData returns an emitter's particles packed as
// consecutive f32 (x, y, angle, scale, alpha, texture_id_as_f32) tuples,
// or nil for an unknown id.
func GetEmitterSpriteData(b *bridge.State, id uint32) []byte {
	if _, ok := b.EmitterConfigs[id]; !ok {
		return nil
	}
	return nil
}
