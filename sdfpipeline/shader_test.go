// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sdfpipeline

import (
	"strings"
	"testing"

	"github.com/arcane-engine/arcane/color"
	"github.com/arcane-engine/arcane/scene"
)

func TestBuildShaderSourceIncludesExpression(t *testing.T) {
	cmd := scene.SDFCommand{Expr: "sdCircle(p, 10.0)", Fill: scene.FillSolid, Color1: color.Red}
	src, err := BuildShaderSource(cmd)
	if err != nil {
		t.Fatalf("BuildShaderSource: %v", err)
	}
	if !strings.Contains(src, "sdCircle(p, 10.0)") {
		t.Error("generated source must contain the command's expression")
	}
	if !strings.Contains(src, "fn vs_main") || !strings.Contains(src, "fn fs_main") {
		t.Error("generated source must define both vs_main and fs_main")
	}
}

func TestBuildShaderSourceRejectsEmptyExpr(t *testing.T) {
	_, err := BuildShaderSource(scene.SDFCommand{Fill: scene.FillSolid})
	if err == nil {
		t.Error("expected an error for an empty SDF expression")
	}
}

func TestBuildShaderSourceDiffersByColor(t *testing.T) {
	red, err := BuildShaderSource(scene.SDFCommand{Expr: "sdCircle(p, 10.0)", Fill: scene.FillSolid, Color1: color.Red})
	if err != nil {
		t.Fatal(err)
	}
	blue, err := BuildShaderSource(scene.SDFCommand{Expr: "sdCircle(p, 10.0)", Fill: scene.FillSolid, Color1: color.Blue})
	if err != nil {
		t.Fatal(err)
	}
	if red == blue {
		t.Error("different colors must produce different generated shader source")
	}
}

func TestFillBodyAllVariantsProduceOutput(t *testing.T) {
	variants := []scene.FillVariant{
		scene.FillSolid, scene.FillOutline, scene.FillSolidWithOutline,
		scene.FillGradient, scene.FillGlow, scene.FillCosinePalette,
	}
	for _, v := range variants {
		cmd := scene.SDFCommand{Expr: "sdCircle(p, 10.0)", Fill: v, Color1: color.Red, Color2: color.Blue, FillParam: 2, GradientScale: 10}
		body, err := fillBody(cmd)
		if err != nil {
			t.Errorf("fillBody(%v): %v", v, err)
		}
		if !strings.Contains(body, "u.opacity") {
			t.Errorf("fillBody(%v) must apply u.opacity", v)
		}
	}
}

func TestFillBodyUnknownVariantErrors(t *testing.T) {
	_, err := fillBody(scene.SDFCommand{Expr: "x", Fill: scene.FillVariant(99)})
	if err == nil {
		t.Error("expected an error for an unknown fill variant")
	}
}
