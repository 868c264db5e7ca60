// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"testing"

	"github.com/arcane-engine/arcane/color"
)

func TestPipelineKeyDeterministicAcrossCalls(t *testing.T) {
	cmd := SDFCommand{Expr: "sdCircle(p, 10.0)", Fill: FillSolid, Color1: color.Red}
	a := cmd.PipelineKeyOf()
	b := cmd.PipelineKeyOf()
	if a != b {
		t.Errorf("PipelineKeyOf not deterministic: %v != %v", a, b)
	}
}

func TestPipelineKeyDiffersByColor(t *testing.T) {
	red := SDFCommand{Expr: "sdCircle(p, 10.0)", Fill: FillSolid, Color1: color.Red}
	blue := SDFCommand{Expr: "sdCircle(p, 10.0)", Fill: FillSolid, Color1: color.Blue}
	if red.PipelineKeyOf() == blue.PipelineKeyOf() {
		t.Error("same expr+fill with different colors must hash to distinct pipeline keys")
	}
}

func TestPipelineKeyCacheSizeScenario(t *testing.T) {
	// Two Solid-red draws then two Solid-blue draws of the same
	// expression must populate exactly 2 distinct cache entries.
	cache := map[PipelineKey]bool{}
	exprs := []SDFCommand{
		{Expr: "sdCircle(p, 10.0)", Fill: FillSolid, Color1: color.Red},
		{Expr: "sdCircle(p, 10.0)", Fill: FillSolid, Color1: color.Red},
		{Expr: "sdCircle(p, 10.0)", Fill: FillSolid, Color1: color.Blue},
		{Expr: "sdCircle(p, 10.0)", Fill: FillSolid, Color1: color.Blue},
	}
	for _, c := range exprs {
		cache[c.PipelineKeyOf()] = true
	}
	if len(cache) != 2 {
		t.Errorf("cache size = %d, want 2", len(cache))
	}
}

func TestPipelineKeyDiffersByExpr(t *testing.T) {
	a := SDFCommand{Expr: "sdCircle(p, 10.0)", Fill: FillSolid, Color1: color.Red}
	b := SDFCommand{Expr: "sdBox(p, vec2(10.0, 5.0))", Fill: FillSolid, Color1: color.Red}
	if a.PipelineKeyOf() == b.PipelineKeyOf() {
		t.Error("distinct expressions must hash to distinct pipeline keys")
	}
}

func TestPipelineKeyDiffersByFillVariant(t *testing.T) {
	solid := SDFCommand{Expr: "sdCircle(p, 10.0)", Fill: FillSolid, Color1: color.Red}
	outline := SDFCommand{Expr: "sdCircle(p, 10.0)", Fill: FillOutline, Color1: color.Red, FillParam: 2}
	if solid.PipelineKeyOf() == outline.PipelineKeyOf() {
		t.Error("distinct fill variants must hash to distinct pipeline keys")
	}
}
