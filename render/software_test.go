// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"
	"testing"

	arcolor "github.com/arcane-engine/arcane/color"
	"github.com/arcane-engine/arcane/scene"
)

func TestSoftwareRendererRejectsNilTarget(t *testing.T) {
	r := NewSoftwareRenderer()
	if err := r.Render(nil, NewScene()); err == nil {
		t.Error("expected an error for a nil target")
	}
}

func TestSoftwareRendererRejectsNonPixelTarget(t *testing.T) {
	r := NewSoftwareRenderer()
	target := NewSurfaceTarget(10, 10, 0, nil)
	if err := r.Render(target, NewScene()); err == nil {
		t.Error("expected an error for a target without CPU pixel access")
	}
}

func TestSoftwareRendererClearsBackground(t *testing.T) {
	r := NewSoftwareRenderer()
	target := NewPixmapTarget(4, 4)
	s := NewScene()
	s.Clear(color.RGBA{R: 10, G: 20, B: 30, A: 255})

	if err := r.Render(target, s); err != nil {
		t.Fatalf("Render: %v", err)
	}
	px := target.GetPixel(2, 2).(color.RGBA)
	if px.R != 10 || px.G != 20 || px.B != 30 {
		t.Errorf("background pixel = %v, want {10,20,30,255}", px)
	}
}

func TestSoftwareRendererRendersTriangle(t *testing.T) {
	r := NewSoftwareRenderer()
	target := NewPixmapTarget(20, 20)
	s := NewScene()
	s.AddGeometry(scene.GeometryCommand{
		Kind: scene.GeometryTriangle,
		Verts: [3]scene.Point2{
			{X: 2, Y: 2}, {X: 18, Y: 2}, {X: 10, Y: 18},
		},
		RGBA: arcolor.RGBA{R: 1, G: 0, B: 0, A: 1},
	})

	if err := r.Render(target, s); err != nil {
		t.Fatalf("Render: %v", err)
	}
	px := target.GetPixel(10, 4).(color.RGBA)
	if px.R == 0 {
		t.Error("expected triangle interior pixel to be colored")
	}
}

func TestSoftwareRendererSkipsSDF(t *testing.T) {
	r := NewSoftwareRenderer()
	target := NewPixmapTarget(8, 8)
	s := NewScene()
	s.AddSDF(scene.SDFCommand{Expr: "sdCircle(p, 2.0)", Fill: scene.FillSolid})

	if err := r.Render(target, s); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestSoftwareRendererCapabilities(t *testing.T) {
	r := NewSoftwareRenderer()
	caps := r.Capabilities()
	if caps.IsGPU {
		t.Error("software renderer must report IsGPU = false")
	}
}
