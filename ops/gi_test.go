// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"testing"

	"github.com/arcane-engine/arcane/bridge"
)

func TestEnableDisableGI(t *testing.T) {
	b := bridge.NewState()
	if b.GI.Enabled {
		t.Fatal("GI should start disabled")
	}
	EnableGI(b)
	if !b.GI.Enabled {
		t.Error("EnableGI should set Enabled")
	}
	DisableGI(b)
	if b.GI.Enabled {
		t.Error("DisableGI should clear Enabled")
	}
}

func TestSetGIIntensity(t *testing.T) {
	b := bridge.NewState()
	SetGIIntensity(b, 2.5)
	if b.GI.Intensity != 2.5 {
		t.Errorf("Intensity = %v, want 2.5", b.GI.Intensity)
	}
}

func TestSetGIQualityZeroPreservesCurrent(t *testing.T) {
	b := bridge.NewState()
	before := b.GI.ProbeSpacing
	SetGIQuality(b, 0, 2, 0)
	if b.GI.ProbeSpacing != before {
		t.Errorf("ProbeSpacing = %v, want unchanged %v", b.GI.ProbeSpacing, before)
	}
	if b.GI.Interval != 2 {
		t.Errorf("Interval = %v, want 2", b.GI.Interval)
	}
}

func TestGIEmissiveOccluderDirectionalSpotAccumulate(t *testing.T) {
	b := bridge.NewState()
	AddEmissive(b, 0, 0, 10, 10, 1, 0, 0, 1)
	AddOccluder(b, 0, 0, 10, 10)
	AddDirectionalLight(b, 0, 1, 1, 1, 1)
	AddSpotLight(b, 0, 0, 0, 1, 10, 1, 1, 1, 1)

	if b.GI.Empty() {
		t.Fatal("GI should not report Empty after adding all four kinds")
	}
	if len(b.GI.Emissives) != 1 || len(b.GI.Occluders) != 1 || len(b.GI.Directionals) != 1 || len(b.GI.Spots) != 1 {
		t.Fatalf("unexpected list lengths: %+v", b.GI)
	}

	ClearEmissives(b)
	ClearOccluders(b)
	if len(b.GI.Emissives) != 0 || len(b.GI.Occluders) != 0 {
		t.Error("ClearEmissives/ClearOccluders should empty their lists")
	}
}
