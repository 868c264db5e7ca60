// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/arcane-engine/arcane/scene"

// UserShader is one script-defined sprite fragment shader: its WGSL
// fragment body (wrapped in spriteVertexPreamble's fixed vertex stage at
// pipeline-build time) and its 14 user vec4 uniform slots.
type UserShader struct {
	Name   string
	Source string
	Params [14][4]float64
}

// ShaderStore owns every user sprite shader a script has created, keyed
// by its reserved scene.ShaderID. GPURenderer compiles each lazily into
// a pipeline on first use through spritePipelineCache; it follows the
// bridge's own single-owner discipline (only the host's drain step
// writes to it, only the renderer's Render reads from it), so it carries
// no locking of its own.
type ShaderStore struct {
	shaders map[scene.ShaderID]*UserShader
}

// NewShaderStore creates an empty shader store.
func NewShaderStore() *ShaderStore {
	return &ShaderStore{shaders: make(map[scene.ShaderID]*UserShader)}
}

// Create records a new user shader's source, replacing any prior shader
// registered under the same id (a reload recompiling a changed source).
func (s *ShaderStore) Create(id scene.ShaderID, name, source string) {
	s.shaders[id] = &UserShader{Name: name, Source: source}
}

// SetParam writes one of a shader's 14 vec4 uniform slots. A request for
// an unknown id or out-of-range index is dropped.
func (s *ShaderStore) SetParam(id scene.ShaderID, index int, x, y, z, w float64) {
	sh, ok := s.shaders[id]
	if !ok || index < 0 || index >= len(sh.Params) {
		return
	}
	sh.Params[index] = [4]float64{x, y, z, w}
}

// Get returns the shader registered under id, if any.
func (s *ShaderStore) Get(id scene.ShaderID) (*UserShader, bool) {
	sh, ok := s.shaders[id]
	return sh, ok
}

// Clear drops every registered shader, for hot-reload.
func (s *ShaderStore) Clear() {
	s.shaders = make(map[scene.ShaderID]*UserShader)
}
