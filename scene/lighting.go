// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import "github.com/arcane-engine/arcane/color"

// PointLight is a 2D point light a script submits per frame. No render
// pass in this module reads LightingState; the radiance-cascade GI pass
// reads GIState instead.
type PointLight struct {
	X, Y      float64
	Radius    float64
	Color     color.RGBA
	Intensity float64
}

// LightingState is the per-frame scratch list of point lights a script
// has submitted; the bridge drains and clears it every frame.
type LightingState struct {
	Ambient color.RGBA
	Points  []PointLight
}

// Reset clears the per-frame light list, keeping the backing array.
func (l *LightingState) Reset() {
	l.Points = l.Points[:0]
}

// AddPoint appends a point light for this frame.
func (l *LightingState) AddPoint(p PointLight) {
	l.Points = append(l.Points, p)
}

// EmissiveRect is an axis-aligned rectangle that emits light into the
// radiance cascade, e.g. a glowing sprite or SDF shape's bounding box.
type EmissiveRect struct {
	X, Y, W, H float64
	Color      color.RGBA
	Intensity  float64
}

// OccluderRect is an axis-aligned rectangle that blocks light rays
// during the cascade ray-march pass.
type OccluderRect struct {
	X, Y, W, H float64
}

// DirectionalLight approximates sunlight: a uniform-direction light
// with no falloff, contributing to the cascade's ray-march pass.
type DirectionalLight struct {
	AngleRadians float64
	Color        color.RGBA
	Intensity    float64
}

// SpotLight is a cone light: it reaches probes within ConeRadians (the
// full cone width) around AngleRadians and within Radius, with linear
// falloff over distance, contributing to the cascade's ray-march pass.
type SpotLight struct {
	X, Y         float64
	AngleRadians float64
	ConeRadians  float64
	Radius       float64
	Color        color.RGBA
	Intensity    float64
}

// GIState is the per-frame scratch input to the radiance-cascade global
// illumination pass: every emitter and occluder a script has submitted
// this frame. The bridge drains and clears it every frame, same as
// LightingState.
type GIState struct {
	// Persistent quality settings, surviving frame resets; only a
	// reload clears these back to defaults.
	Enabled      bool
	Intensity    float64
	ProbeSpacing float64
	Interval     float64
	CascadeCount int

	Emissives    []EmissiveRect
	Occluders    []OccluderRect
	Directionals []DirectionalLight
	Spots        []SpotLight
}

// NewGIState returns a GIState with the default radiance-cascade
// quality settings, disabled until a script calls EnableGI.
func NewGIState() GIState {
	return GIState{Intensity: 1, ProbeSpacing: 8, Interval: 4, CascadeCount: 5}
}

// SetQuality overrides probe spacing, interval, and cascade count; a
// zero argument preserves the current value for that field, matching
// set_gi_quality's "0 preserves current" rule.
func (g *GIState) SetQuality(probeSpacing, interval float64, cascadeCount int) {
	if probeSpacing != 0 {
		g.ProbeSpacing = probeSpacing
	}
	if interval != 0 {
		g.Interval = interval
	}
	if cascadeCount != 0 {
		g.CascadeCount = cascadeCount
	}
}

// Reset clears all four per-frame lists, keeping their backing arrays.
func (g *GIState) Reset() {
	g.Emissives = g.Emissives[:0]
	g.Occluders = g.Occluders[:0]
	g.Directionals = g.Directionals[:0]
	g.Spots = g.Spots[:0]
}

// Empty reports whether the GI pass has nothing to render this frame,
// letting the renderer skip the cascade pass entirely.
func (g *GIState) Empty() bool {
	return len(g.Emissives) == 0 && len(g.Occluders) == 0 && len(g.Directionals) == 0 && len(g.Spots) == 0
}
