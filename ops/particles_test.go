// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"testing"

	"github.com/arcane-engine/arcane/bridge"
)

func TestEmitterLifecycle(t *testing.T) {
	b := bridge.NewState()
	id := CreateEmitter(b, `{"rate":10}`)
	if GetEmitterParticleCount(b, id) != 0 {
		t.Errorf("GetEmitterParticleCount(fresh emitter) = %d, want 0", GetEmitterParticleCount(b, id))
	}
	UpdateEmitter(b, id, 1.0/60, 0, 0) // must not panic
	if data := GetEmitterSpriteData(b, id); data != nil {
		t.Errorf("GetEmitterSpriteData(empty emitter) = %v, want nil", data)
	}
	DestroyEmitter(b, id)
	if GetEmitterParticleCount(b, id) != 0 {
		t.Error("GetEmitterParticleCount should be 0 for a destroyed id")
	}
}

func TestEmitterUnknownIDNoops(t *testing.T) {
	b := bridge.NewState()
	UpdateEmitter(b, 999, 0, 0, 0) // must not panic
	DestroyEmitter(b, 999)         // must not panic
	if GetEmitterParticleCount(b, 999) != 0 {
		t.Error("GetEmitterParticleCount(unknown id) should be 0")
	}
	if GetEmitterSpriteData(b, 999) != nil {
		t.Error("GetEmitterSpriteData(unknown id) should be nil")
	}
}
