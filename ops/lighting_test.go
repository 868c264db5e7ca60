// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"testing"

	"github.com/arcane-engine/arcane/bridge"
)

func TestSetAmbientLight(t *testing.T) {
	b := bridge.NewState()
	SetAmbientLight(b, 0.2, 0.3, 0.4)
	if b.Lighting.Ambient.R != 0.2 || b.Lighting.Ambient.G != 0.3 || b.Lighting.Ambient.B != 0.4 {
		t.Errorf("Ambient = %+v, want (0.2,0.3,0.4)", b.Lighting.Ambient)
	}
}

func TestAddPointLightAndClearLights(t *testing.T) {
	b := bridge.NewState()
	AddPointLight(b, 0, 0, 10, 1, 1, 1, 1)
	if len(b.Lighting.Points) != 1 {
		t.Fatalf("len(Points) = %d, want 1", len(b.Lighting.Points))
	}
	ClearLights(b)
	if len(b.Lighting.Points) != 0 {
		t.Errorf("len(Points) = %d, want 0 after ClearLights", len(b.Lighting.Points))
	}
}
