// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"github.com/arcane-engine/arcane/bridge"
	arcolor "github.com/arcane-engine/arcane/color"
	"github.com/arcane-engine/arcane/scene"
)

// EnableGI turns on the radiance-cascade global-illumination pass.
func EnableGI(b *bridge.State) { b.GI.Enabled = true }

// DisableGI turns off the radiance-cascade pass; while GI is disabled
// render.ApplyRadianceCascade returns without doing any work.
func DisableGI(b *bridge.State) { b.GI.Enabled = false }

// SetGIIntensity scales the cascade's contribution to the final image.
func SetGIIntensity(b *bridge.State, intensity float64) {
	b.GI.Intensity = intensity
}

// SetGIQuality overrides probe spacing, interval, and cascade count; a 0
// argument preserves that field's current value.
// render.ApplyRadianceCascade reads probe spacing and cascade count; it
// marches at a fixed step and does not read interval.
func SetGIQuality(b *bridge.State, probeSpacing, interval float64, cascadeCount int) {
	b.GI.SetQuality(probeSpacing, interval, cascadeCount)
}

// AddEmissive queues a light-emitting rectangle for this frame's cascade.
func AddEmissive(b *bridge.State, x, y, w, h float64, r, g, bComp, intensity float64) {
	b.GI.Emissives = append(b.GI.Emissives, scene.EmissiveRect{
		X: x, Y: y, W: w, H: h, Color: arcolor.RGBA{R: r, G: g, B: bComp, A: 1}, Intensity: intensity,
	})
}

// ClearEmissives drops every emissive rect queued so far this frame.
func ClearEmissives(b *bridge.State) {
	b.GI.Emissives = b.GI.Emissives[:0]
}

// AddOccluder queues a light-blocking rectangle for this frame's cascade.
func AddOccluder(b *bridge.State, x, y, w, h float64) {
	b.GI.Occluders = append(b.GI.Occluders, scene.OccluderRect{X: x, Y: y, W: w, H: h})
}

// ClearOccluders drops every occluder rect queued so far this frame.
func ClearOccluders(b *bridge.State) {
	b.GI.Occluders = b.GI.Occluders[:0]
}

// AddDirectionalLight queues a uniform-direction light for this frame's cascade.
func AddDirectionalLight(b *bridge.State, angleRadians float64, r, g, bComp, intensity float64) {
	b.GI.Directionals = append(b.GI.Directionals, scene.DirectionalLight{
		AngleRadians: angleRadians, Color: arcolor.RGBA{R: r, G: g, B: bComp, A: 1}, Intensity: intensity,
	})
}

// AddSpotLight queues a cone light for this frame's cascade.
func AddSpotLight(b *bridge.State, x, y, angleRadians, coneRadians, radius float64, r, g, bComp, intensity float64) {
	b.GI.Spots = append(b.GI.Spots, scene.SpotLight{
		X: x, Y: y, AngleRadians: angleRadians, ConeRadians: coneRadians, Radius: radius,
		Color: arcolor.RGBA{R: r, G: g, B: bComp, A: 1}, Intensity: intensity,
	})
}
