// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"github.com/arcane-engine/arcane/bridge"
	arcolor "github.com/arcane-engine/arcane/color"
	"github.com/arcane-engine/arcane/scene"
)

// SetAmbientLight sets the forward-lighting pass's ambient color.
func SetAmbientLight(b *bridge.State, r, g, bComp float64) {
	b.Lighting.Ambient = arcolor.RGBA{R: r, G: g, B: bComp, A: 1}
}

// AddPointLight appends a point light for this frame.
func AddPointLight(b *bridge.State, x, y, radius float64, r, g, bComp, intensity float64) {
	b.Lighting.AddPoint(scene.PointLight{
		X: x, Y: y, Radius: radius,
		Color:     arcolor.RGBA{R: r, G: g, B: bComp, A: 1},
		Intensity: intensity,
	})
}

// ClearLights drops every point light queued so far this frame.
func ClearLights(b *bridge.State) {
	b.Lighting.Reset()
}
