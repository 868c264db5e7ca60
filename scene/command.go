// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scene holds the render command model: the data types a script
// populates per frame (sprite, geometry, and SDF draws, plus lighting
// and GI requests), the SDF pipeline cache key, the sprite batching
// sort, and the layer-interleaved draw schedule the renderer consumes.
package scene

import "github.com/arcane-engine/arcane/color"

// BlendMode selects the fragment blend function a sprite or SDF draw
// uses when compositing onto its target.
type BlendMode uint8

// Blend mode constants, matching the ops table's blend_mode∈{0..3}.
const (
	BlendAlpha BlendMode = iota
	BlendAdditive
	BlendMultiply
	BlendScreen
)

// TextureID is an opaque, process-lifetime-stable texture handle.
// TextureNone (0) means "no texture".
type TextureID uint32

// TextureNone is the reserved "none" handle.
const TextureNone TextureID = 0

// ShaderID selects a custom sprite fragment shader; ShaderDefault (0)
// uses the built-in sprite shader.
type ShaderID uint32

// ShaderDefault is the built-in sprite shader.
const ShaderDefault ShaderID = 0

// SpriteCommand draws one textured quad.
type SpriteCommand struct {
	Texture  TextureID
	X, Y     float64
	W, H     float64
	Layer    int32
	UVX, UVY, UVW, UVH float64
	Tint     color.RGBA
	Rotation float64
	OriginX, OriginY float64
	FlipX, FlipY     bool
	Opacity  float64
	Blend    BlendMode
	Shader   ShaderID
}

// GeometryKind distinguishes the two geometry command variants.
type GeometryKind uint8

// Geometry command kinds.
const (
	GeometryTriangle GeometryKind = iota
	GeometryLine
)

// GeometryCommand is a tagged union of a flat-shaded triangle or a
// thick line segment.
type GeometryCommand struct {
	Kind  GeometryKind
	Verts [3]Point2 // Triangle uses all 3; Line uses Verts[0], Verts[1].
	Thickness float64 // Line only.
	RGBA  color.RGBA
	Layer int32
}

// Point2 is a plain 2D point, kept distinct from geom.Vec2 so the
// command model has no dependency on the physics/renderer vector math —
// it is pure data consumed across a bridge boundary.
type Point2 struct{ X, Y float64 }

// FillVariant selects the SDF fragment fill algorithm.
type FillVariant uint8

// Fill variant constants, matching the ops table's fill_type∈{0..5}.
const (
	FillSolid FillVariant = iota
	FillOutline
	FillSolidWithOutline
	FillGradient
	FillGlow
	FillCosinePalette
)

// SDFCommand draws one signed-distance-field shape.
type SDFCommand struct {
	Expr string // WGSL-compatible signed-distance expression in local coordinates.

	Fill       FillVariant
	Color1     color.RGBA
	Color2     color.RGBA // Gradient "to" color and SolidWithOutline outline color; unused by other fills.
	FillParam  float64    // Outline half-thickness, glow intensity, smoothing k, etc.
	GradientAngle float64
	GradientScale float64
	PaletteParams [12]float64 // CosinePalette a,b,c,d (RGB triples) packed flat.

	X, Y     float64
	Bounds   float64
	Layer    int32
	Rotation float64
	Scale    float64
	Opacity  float64
}
