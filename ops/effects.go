// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"github.com/arcane-engine/arcane/bridge"
	"github.com/arcane-engine/arcane/render"
)

// effectKindOf maps the ops table's string effect name to its Effect
// enum value. An unrecognized name falls back to EffectBlur, the
// cheapest no-surprise default.
func effectKindOf(kind string) render.Effect {
	switch kind {
	case "bloom":
		return render.EffectBloom
	case "vignette":
		return render.EffectVignette
	case "crt":
		return render.EffectCRT
	default:
		return render.EffectBlur
	}
}

// AddEffect reserves a handle for a post-process effect instance and
// queues its deferred creation, keyed by one of "bloom"/"blur"/
// "vignette"/"crt".
func AddEffect(b *bridge.State, kind string) bridge.EffectID {
	id := bridge.EffectID(b.Effects.Next())
	b.QueueEffectCreate(id, effectKindOf(kind))
	return id
}

// SetEffectParam queues a write of one effect parameter slot. The host
// applies v[0] of index 0 (intensity), 1 (radius) or 2 (threshold) and
// ignores any other index.
func SetEffectParam(b *bridge.State, id bridge.EffectID, index int, v [4]float64) {
	b.QueueEffectParam(id, index, v)
}

// RemoveEffect queues the removal of one effect instance.
func RemoveEffect(b *bridge.State, id bridge.EffectID) {
	b.QueueEffectRemove(id)
}

// ClearEffects queues the removal of every effect instance.
func ClearEffects(b *bridge.State) {
	b.EffectClear = true
}
