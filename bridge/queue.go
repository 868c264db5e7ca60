// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bridge

import (
	"github.com/arcane-engine/arcane/render"
	"github.com/arcane-engine/arcane/scene"
)

// TextureLoadRequest asks the host to load and upload an image file for
// an already-reserved handle.
type TextureLoadRequest struct {
	ID   scene.TextureID
	Path string
}

// RawTextureUpload asks the host to upload caller-supplied RGBA8 pixels
// for an already-reserved handle.
type RawTextureUpload struct {
	ID            scene.TextureID
	Width, Height int
	Pixels        []byte
	Name          string // Cache key for create_solid_texture-style idempotence; empty if none.
}

// FontTextureRequest asks the host to rasterize and upload a font atlas
// texture for an already-reserved handle. The glyph rasterization
// itself is an external collaborator (MSDF/bitmap font generation); the
// bridge only carries the handle and is-msdf flag through to it.
type FontTextureRequest struct {
	ID     scene.TextureID
	Source string // Font path, or a built-in font name.
	IsMSDF bool
}

// ShaderCreateRequest asks the host to compile a user fragment shader
// into a pipeline for an already-reserved handle.
type ShaderCreateRequest struct {
	ID     scene.ShaderID
	Name   string
	Source string // WGSL fragment body, wrapped in the fixed sprite-shader preamble.
}

// ShaderParamUpdate writes one of a shader's 14 user vec4 slots.
type ShaderParamUpdate struct {
	Shader scene.ShaderID
	Index  int
	X, Y, Z, W float64
}

// EffectID is a stable handle for one post-process effect instance
// within a PostProcessChain, independent of its current slice position.
type EffectID uint32

// EffectCreateRequest asks the host to append a new effect instance.
type EffectCreateRequest struct {
	ID   EffectID
	Kind render.Effect
}

// EffectParamUpdate writes one of an effect's 4 parameter slots.
type EffectParamUpdate struct {
	Effect EffectID
	Index  int
	Value  [4]float64
}

// EffectRemoveRequest removes one effect instance by id.
type EffectRemoveRequest struct {
	Effect EffectID
}

// SoundLoadRequest asks the audio worker to decode and cache a sound
// file for an already-reserved handle, mirroring TextureLoadRequest.
type SoundLoadRequest struct {
	ID   SoundID
	Path string
}
