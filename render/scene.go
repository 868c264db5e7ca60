// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image/color"

	"github.com/arcane-engine/arcane/scene"
)

// Scene is one frame's worth of draw commands, handed to a Renderer.
//
// Unlike a retained scene graph, Scene is rebuilt every frame by the
// bridge package from the script's per-frame command queues: the host
// runtime redraws the whole frame each tick rather than tracking partial
// invalidation, so Scene carries no dirty-region state — it is a flat,
// disposable command batch.
type Scene struct {
	// Background is the color the target is cleared to before any
	// command in this frame is drawn.
	Background color.Color

	Sprites  []scene.SpriteCommand
	Geometry []scene.GeometryCommand
	SDF      []scene.SDFCommand

	// GI is this frame's radiance-cascade input, copied in by the host
	// from its bridge state. Nil or disabled skips the cascade passes
	// entirely.
	GI *scene.GIState

	schedule []scene.DrawOp
	batches  []scene.SpriteBatch
	built    bool
}

// NewScene creates an empty frame scene.
func NewScene() *Scene {
	return &Scene{Background: color.Black}
}

// Reset clears the scene for reuse on the next frame, keeping the
// underlying slice capacity.
func (s *Scene) Reset() {
	s.Sprites = s.Sprites[:0]
	s.Geometry = s.Geometry[:0]
	s.SDF = s.SDF[:0]
	s.GI = nil
	s.schedule = nil
	s.batches = nil
	s.built = false
}

// Clear sets the frame's background clear color.
func (s *Scene) Clear(c color.Color) {
	s.Background = c
}

// AddSprite appends a sprite draw command.
func (s *Scene) AddSprite(cmd scene.SpriteCommand) {
	s.Sprites = append(s.Sprites, cmd)
	s.built = false
}

// AddGeometry appends a triangle or line draw command.
func (s *Scene) AddGeometry(cmd scene.GeometryCommand) {
	s.Geometry = append(s.Geometry, cmd)
	s.built = false
}

// AddSDF appends a signed-distance-field draw command.
func (s *Scene) AddSDF(cmd scene.SDFCommand) {
	s.SDF = append(s.SDF, cmd)
	s.built = false
}

// IsEmpty returns true if the scene has no commands of any kind.
func (s *Scene) IsEmpty() bool {
	return len(s.Sprites) == 0 && len(s.Geometry) == 0 && len(s.SDF) == 0
}

// CommandCount returns the total number of commands across all streams.
func (s *Scene) CommandCount() int {
	return len(s.Sprites) + len(s.Geometry) + len(s.SDF)
}

// build computes the layer-interleaved draw schedule and sprite batches,
// memoized until the next mutation.
func (s *Scene) build() {
	if s.built {
		return
	}
	s.schedule = scene.BuildSchedule(s.Sprites, s.Geometry, s.SDF)
	s.batches = scene.BuildSpriteBatches(s.Sprites)
	s.built = true
}

// Schedule returns the ascending-layer, Sprites-then-Geometry-then-SDF
// draw op list for this frame.
func (s *Scene) Schedule() []scene.DrawOp {
	s.build()
	return s.schedule
}

// SpriteBatches returns the sprite commands partitioned into contiguous
// (layer, shader, blend, texture) runs.
func (s *Scene) SpriteBatches() []scene.SpriteBatch {
	s.build()
	return s.batches
}
