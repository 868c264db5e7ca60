// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"github.com/arcane-engine/arcane/bridge"
	"github.com/arcane-engine/arcane/scene"
)

// CreateShader reserves a handle for a custom sprite fragment shader
// and queues the deferred compile.
func CreateShader(b *bridge.State, name, wgslSource string) scene.ShaderID {
	id := scene.ShaderID(b.Shaders.Next())
	b.QueueShaderCreate(id, name, wgslSource)
	return id
}

// SetShaderParam writes one of a shader's 14 user vec4 slots
// (index 0..13). Out-of-range indices are dropped by the host drain,
// not here, so a script error surfaces the same way any host-side
// invalid-id case does.
func SetShaderParam(b *bridge.State, id scene.ShaderID, index int, x, y, z, w float64) {
	b.QueueShaderParam(id, index, x, y, z, w)
}
