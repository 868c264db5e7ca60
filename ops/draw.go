// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"math"

	"github.com/arcane-engine/arcane/bridge"
	arcolor "github.com/arcane-engine/arcane/color"
	"github.com/arcane-engine/arcane/scene"
)

// DrawSprite appends a textured quad to this frame's sprite stream.
func DrawSprite(b *bridge.State, tex scene.TextureID, x, y, w, h float64, layer int32,
	uvX, uvY, uvW, uvH float64, tint arcolor.RGBA, rotation, originX, originY float64,
	flipX, flipY bool, opacity float64, blend scene.BlendMode, shader scene.ShaderID) {
	b.Scene.AddSprite(scene.SpriteCommand{
		Texture: tex, X: x, Y: y, W: w, H: h, Layer: layer,
		UVX: uvX, UVY: uvY, UVW: uvW, UVH: uvH,
		Tint: tint, Rotation: rotation, OriginX: originX, OriginY: originY,
		FlipX: flipX, FlipY: flipY, Opacity: opacity, Blend: blend, Shader: shader,
	})
}

// ClearSprites drops every sprite command queued so far this frame.
func ClearSprites(b *bridge.State) {
	b.Scene.Sprites = b.Scene.Sprites[:0]
}

// DrawTilemap bakes a tilemap's non-empty tiles into sprite commands at
// a world offset. Unknown tilemap ids are a silent no-op. The op
// signature carries no viewport/AABB, so unlike Tilemap.BakeVisible's
// culled form, every non-zero tile bakes unconditionally — an unbounded
// AABB is passed through. A host wanting culling should call
// BakeVisible directly with its camera's viewport instead of routing
// through this op.
func DrawTilemap(b *bridge.State, tilemap uint32, worldX, worldY float64, layer int32) {
	tm, ok := b.Tilemaps[tilemap]
	if !ok {
		return
	}
	unbounded := math.MaxFloat64 / 4
	cmds := tm.BakeVisible(worldX, worldY,
		scene.Point2{X: -unbounded, Y: -unbounded}, scene.Point2{X: unbounded, Y: unbounded}, layer)
	for _, cmd := range cmds {
		b.Scene.AddSprite(cmd)
	}
}

// DrawSDF appends a signed-distance-field shape to this frame's SDF stream.
func DrawSDF(b *bridge.State, expr string, fill scene.FillVariant, color1, color2 arcolor.RGBA,
	fillParam float64, paletteParams [12]float64, gradientAngle, gradientScale float64,
	x, y, bounds float64, layer int32, rotation, scaleFactor, opacity float64) {
	b.Scene.AddSDF(scene.SDFCommand{
		Expr: expr, Fill: fill, Color1: color1, Color2: color2, FillParam: fillParam,
		GradientAngle: gradientAngle, GradientScale: gradientScale, PaletteParams: paletteParams,
		X: x, Y: y, Bounds: bounds, Layer: layer, Rotation: rotation, Scale: scaleFactor, Opacity: opacity,
	})
}

// AddTriangle appends a flat-shaded triangle to this frame's geometry stream.
func AddTriangle(b *bridge.State, x1, y1, x2, y2, x3, y3 float64, rgba arcolor.RGBA, layer int32) {
	b.Scene.AddGeometry(scene.GeometryCommand{
		Kind: scene.GeometryTriangle,
		Verts: [3]scene.Point2{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}},
		RGBA: rgba, Layer: layer,
	})
}

// AddLine appends a thick line segment to this frame's geometry stream.
func AddLine(b *bridge.State, x1, y1, x2, y2, thickness float64, rgba arcolor.RGBA, layer int32) {
	b.Scene.AddGeometry(scene.GeometryCommand{
		Kind:  scene.GeometryLine,
		Verts: [3]scene.Point2{{X: x1, Y: y1}, {X: x2, Y: y2}, {}},
		Thickness: thickness, RGBA: rgba, Layer: layer,
	})
}
