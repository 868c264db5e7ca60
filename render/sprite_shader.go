// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/types"

	"github.com/arcane-engine/arcane/scene"
)

// spriteVertexPreamble is the fixed vertex stage every sprite/geometry
// pipeline shares, the same full-screen-quad-in-clip-space trick
// sdfpipeline's shaderPreamble uses: a hardcoded clip-space quad driven
// by @builtin(vertex_index), so a pipeline needs no vertex buffer.
//
// Unlike the SDF preamble, sprite draws don't yet thread a per-instance
// uniform buffer through for position/rotation/tint — CreateBuffer and
// CreateBindGroup wiring for that is the natural next step once a sprite
// batch's per-instance data needs to vary the quad per draw. Until then
// every draw through one of these pipelines covers the same clip-space
// quad; what this cache buys is a real compiled pipeline and a real
// draw call per command, not per-sprite placement.
const spriteVertexPreamble = `
struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
}

@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> VertexOutput {
    var quad = array<vec2<f32>, 6>(
        vec2<f32>(-1.0, -1.0), vec2<f32>(1.0, -1.0), vec2<f32>(-1.0, 1.0),
        vec2<f32>(-1.0, 1.0), vec2<f32>(1.0, -1.0), vec2<f32>(1.0, 1.0),
    );
    var out: VertexOutput;
    out.clip_position = vec4<f32>(quad[idx], 0.0, 1.0);
    return out;
}
`

const defaultSpriteFragment = `
@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 1.0, 1.0, 1.0);
}
`

// spritePipelineKey identifies one compiled sprite/geometry pipeline by
// the user shader it runs (ShaderDefault for the built-in flat fill) and
// the blend mode it's built for.
type spritePipelineKey struct {
	shader scene.ShaderID
	blend  scene.BlendMode
}

// spritePipelineCache compiles and caches the pipelines GPURenderer
// issues for sprite batches and geometry commands, mirroring
// sdfpipeline.Cache's compile-once-per-key shape for the non-SDF draw
// streams.
type spritePipelineCache struct {
	pipelines map[spritePipelineKey]hal.RenderPipeline
	shaders   *ShaderStore
}

func newSpritePipelineCache(shaders *ShaderStore) *spritePipelineCache {
	return &spritePipelineCache{pipelines: make(map[spritePipelineKey]hal.RenderPipeline), shaders: shaders}
}

func (c *spritePipelineCache) getOrCreate(device hal.Device, colorFormat types.TextureFormat, shader scene.ShaderID, blend scene.BlendMode) (hal.RenderPipeline, error) {
	key := spritePipelineKey{shader: shader, blend: blend}
	if p, ok := c.pipelines[key]; ok {
		return p, nil
	}

	fragment, label := defaultSpriteFragment, "sprite_flat"
	if shader != scene.ShaderDefault && c.shaders != nil {
		if sh, ok := c.shaders.Get(shader); ok {
			fragment = wrapSpriteFragment(sh.Source)
			label = "sprite_user_" + sh.Name
		}
	}

	pipeline, err := compileFixedQuadPipeline(device, spriteVertexPreamble+"\n"+fragment, label, colorFormat, blend)
	if err != nil {
		return nil, err
	}
	c.pipelines[key] = pipeline
	return pipeline, nil
}

func wrapSpriteFragment(body string) string {
	return "@fragment\nfn fs_main() -> @location(0) vec4<f32> {\n" + body + "\n}\n"
}

func (c *spritePipelineCache) clear() {
	c.pipelines = make(map[spritePipelineKey]hal.RenderPipeline)
}

// compileFixedQuadPipeline validates source with naga, uploads it as a
// shader module, and builds a render pipeline targeting colorFormat with
// blend's blend state — the same three-step compile sdfpipeline.Cache
// runs for an SDF command, generalized to any complete WGSL source.
func compileFixedQuadPipeline(device hal.Device, source, label string, colorFormat types.TextureFormat, blend scene.BlendMode) (hal.RenderPipeline, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("render: compile %s: %w", label, err)
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{SPIRV: bytesToSPIRVWords(spirvBytes)},
	})
	if err != nil {
		return nil, fmt.Errorf("render: create shader module %s: %w", label, err)
	}

	pipeline, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  label,
		Vertex: hal.VertexState{Module: module, EntryPoint: "vs_main"},
		Fragment: &hal.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []hal.ColorTargetState{{
				Format:    colorFormat,
				Blend:     spriteBlendState(blend),
				WriteMask: types.ColorWriteMaskAll,
			}},
		},
		Primitive: hal.PrimitiveState{
			Topology:  types.PrimitiveTopologyTriangleList,
			FrontFace: types.FrontFaceCCW,
			CullMode:  types.CullModeNone,
		},
		Multisample: hal.MultisampleState{Count: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("render: create pipeline %s: %w", label, err)
	}
	return pipeline, nil
}

func spriteBlendState(mode scene.BlendMode) *hal.BlendState {
	component := func(src, dst types.BlendFactor) hal.BlendComponent {
		return hal.BlendComponent{SrcFactor: src, DstFactor: dst, Operation: types.BlendOperationAdd}
	}
	switch mode {
	case scene.BlendAdditive:
		c := component(types.BlendFactorSrcAlpha, types.BlendFactorOne)
		return &hal.BlendState{Color: c, Alpha: c}
	case scene.BlendMultiply:
		c := component(types.BlendFactorDst, types.BlendFactorZero)
		return &hal.BlendState{Color: c, Alpha: c}
	case scene.BlendScreen:
		c := component(types.BlendFactorOne, types.BlendFactorOneMinusSrc)
		return &hal.BlendState{Color: c, Alpha: c}
	default: // BlendAlpha
		c := component(types.BlendFactorSrcAlpha, types.BlendFactorOneMinusSrcAlpha)
		return &hal.BlendState{Color: c, Alpha: c}
	}
}

// bytesToSPIRVWords reinterprets naga's little-endian SPIR-V byte output
// as a uint32 word stream, the form hal.ShaderSource expects — the same
// conversion sdfpipeline.Cache applies to its own naga output.
func bytesToSPIRVWords(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) | uint32(b[i*4+1])<<8 | uint32(b[i*4+2])<<16 | uint32(b[i*4+3])<<24
	}
	return words
}
