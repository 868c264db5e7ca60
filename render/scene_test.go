// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"
	"testing"

	"github.com/arcane-engine/arcane/scene"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s == nil {
		t.Fatal("NewScene() returned nil")
	}
	if !s.IsEmpty() {
		t.Error("new scene should be empty")
	}
	if s.CommandCount() != 0 {
		t.Errorf("CommandCount() = %d, want 0", s.CommandCount())
	}
}

func TestSceneAddCommands(t *testing.T) {
	s := NewScene()
	s.AddSprite(scene.SpriteCommand{X: 1, Y: 1, W: 10, H: 10, Layer: 0})
	s.AddGeometry(scene.GeometryCommand{Kind: scene.GeometryTriangle, Layer: 1})
	s.AddSDF(scene.SDFCommand{Expr: "sdCircle(p, 5.0)", Layer: 2})

	if s.IsEmpty() {
		t.Error("scene should not be empty after adding commands")
	}
	if s.CommandCount() != 3 {
		t.Errorf("CommandCount() = %d, want 3", s.CommandCount())
	}
}

func TestSceneReset(t *testing.T) {
	s := NewScene()
	s.AddSprite(scene.SpriteCommand{W: 1, H: 1})
	s.Reset()

	if !s.IsEmpty() {
		t.Error("scene should be empty after Reset")
	}
}

func TestSceneClearSetsBackground(t *testing.T) {
	s := NewScene()
	s.Clear(color.White)
	if s.Background != color.White {
		t.Errorf("Background = %v, want white", s.Background)
	}
}

func TestSceneScheduleOrdersStreams(t *testing.T) {
	s := NewScene()
	s.AddSprite(scene.SpriteCommand{Layer: 0})
	s.AddGeometry(scene.GeometryCommand{Layer: 0})
	s.AddSDF(scene.SDFCommand{Expr: "x", Layer: 0})

	ops := s.Schedule()
	if len(ops) != 3 {
		t.Fatalf("len(Schedule()) = %d, want 3", len(ops))
	}
	if ops[0].Kind != scene.OpSprites || ops[1].Kind != scene.OpGeometry || ops[2].Kind != scene.OpSDF {
		t.Errorf("schedule order = %v, want Sprites, Geometry, SDF", ops)
	}
}

func TestSceneScheduleMemoized(t *testing.T) {
	s := NewScene()
	s.AddSprite(scene.SpriteCommand{Layer: 0})

	first := s.Schedule()
	second := s.Schedule()
	if len(first) != len(second) {
		t.Error("Schedule() should be stable across calls without mutation")
	}

	s.AddSprite(scene.SpriteCommand{Layer: 1})
	third := s.Schedule()
	if len(third) == len(first) {
		t.Error("Schedule() should recompute after a mutation")
	}
}

func TestSceneSpriteBatches(t *testing.T) {
	s := NewScene()
	s.AddSprite(scene.SpriteCommand{Texture: 1, Layer: 0})
	s.AddSprite(scene.SpriteCommand{Texture: 1, Layer: 0})
	s.AddSprite(scene.SpriteCommand{Texture: 2, Layer: 0})

	batches := s.SpriteBatches()
	if len(batches) != 2 {
		t.Fatalf("len(SpriteBatches()) = %d, want 2", len(batches))
	}
}
