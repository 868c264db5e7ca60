// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"testing"

	"github.com/arcane-engine/arcane/bridge"
	"github.com/arcane-engine/arcane/render"
)

func TestEffectKindOfMapsKnownNames(t *testing.T) {
	cases := map[string]render.Effect{
		"bloom":    render.EffectBloom,
		"vignette": render.EffectVignette,
		"crt":      render.EffectCRT,
		"blur":     render.EffectBlur,
		"unknown":  render.EffectBlur,
	}
	for name, want := range cases {
		if got := effectKindOf(name); got != want {
			t.Errorf("effectKindOf(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestAddEffectQueuesCreate(t *testing.T) {
	b := bridge.NewState()
	id := AddEffect(b, "bloom")
	if len(b.EffectCreates) != 1 || b.EffectCreates[0].ID != id {
		t.Fatalf("EffectCreates = %+v, want one entry for id %v", b.EffectCreates, id)
	}
}

func TestSetEffectParamAndRemoveEffectQueue(t *testing.T) {
	b := bridge.NewState()
	id := AddEffect(b, "blur")
	SetEffectParam(b, id, 1, [4]float64{1, 2, 3, 4})
	RemoveEffect(b, id)
	if len(b.EffectParams) != 1 {
		t.Errorf("len(EffectParams) = %d, want 1", len(b.EffectParams))
	}
	if len(b.EffectRemoves) != 1 {
		t.Errorf("len(EffectRemoves) = %d, want 1", len(b.EffectRemoves))
	}
}

func TestClearEffectsSetsFlag(t *testing.T) {
	b := bridge.NewState()
	ClearEffects(b)
	if !b.EffectClear {
		t.Error("ClearEffects should set EffectClear")
	}
}
