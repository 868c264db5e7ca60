// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sdfpipeline

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/types"

	"github.com/arcane-engine/arcane/scene"
)

// CompiledPipeline is one compiled GPU render pipeline for a single
// (expression, fill) pair, plus the shader module it was built from.
type CompiledPipeline struct {
	Key      scene.PipelineKey
	Module   hal.ShaderModule
	Pipeline hal.RenderPipeline
}

// Cache owns one compiled pipeline per PipelineKey for the lifetime of a
// session. It never evicts — SDF draws are assumed to reuse a bounded set
// of (expression, fill) combinations across a game's lifetime, unlike the
// unbounded asset working-set a texture or layer cache has to bound. The
// only way entries leave the cache is Clear; the host's hot reload does
// not call it, so compiled SDF pipelines survive a reload.
type Cache struct {
	mu       sync.RWMutex
	pipelines map[scene.PipelineKey]*CompiledPipeline

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache creates an empty pipeline cache.
func NewCache() *Cache {
	return &Cache{pipelines: make(map[scene.PipelineKey]*CompiledPipeline)}
}

// GetOrCreate returns the cached pipeline for cmd's (expression, fill,
// payload) key, compiling and validating a new WGSL module and creating a
// GPU pipeline on a cache miss.
func (c *Cache) GetOrCreate(device hal.Device, cmd scene.SDFCommand, colorFormat types.TextureFormat, blend scene.BlendMode) (*CompiledPipeline, error) {
	key := cmd.PipelineKeyOf()

	c.mu.RLock()
	if p, ok := c.pipelines[key]; ok {
		c.mu.RUnlock()
		c.hits.Add(1)
		return p, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.pipelines[key]; ok {
		c.hits.Add(1)
		return p, nil
	}

	p, err := c.compile(device, cmd, colorFormat, blend)
	if err != nil {
		return nil, err
	}
	c.pipelines[key] = p
	c.misses.Add(1)
	return p, nil
}

func (c *Cache) compile(device hal.Device, cmd scene.SDFCommand, colorFormat types.TextureFormat, blend scene.BlendMode) (*CompiledPipeline, error) {
	source, err := BuildShaderSource(cmd)
	if err != nil {
		return nil, fmt.Errorf("sdfpipeline: build shader source: %w", err)
	}

	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("sdfpipeline: wgsl validation failed: %w", err)
	}
	spirvCode := bytesToSPIRV(spirvBytes)

	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "sdf_pipeline",
		Source: hal.ShaderSource{
			SPIRV: spirvCode,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("sdfpipeline: create shader module: %w", err)
	}

	desc := &hal.RenderPipelineDescriptor{
		Label: "sdf_pipeline",
		Vertex: hal.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
		},
		Fragment: &hal.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []hal.ColorTargetState{{
				Format:    colorFormat,
				Blend:     blendState(blend),
				WriteMask: types.ColorWriteMaskAll,
			}},
		},
		Primitive: hal.PrimitiveState{
			Topology:  types.PrimitiveTopologyTriangleList,
			FrontFace: types.FrontFaceCCW,
			CullMode:  types.CullModeNone,
		},
		Multisample: hal.MultisampleState{Count: 1},
	}

	pipeline, err := device.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("sdfpipeline: create render pipeline: %w", err)
	}

	return &CompiledPipeline{Key: cmd.PipelineKeyOf(), Module: module, Pipeline: pipeline}, nil
}

// blendState maps a scene.BlendMode to the GPU blend-factor pair that
// implements it.
func blendState(mode scene.BlendMode) *hal.BlendState {
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

// bytesToSPIRV reinterprets naga's little-endian SPIR-V byte output as a
// uint32 word stream, the form hal.ShaderSource expects.
func bytesToSPIRV(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) | uint32(b[i*4+1])<<8 | uint32(b[i*4+2])<<16 | uint32(b[i*4+3])<<24
	}
	return words
}

// Clear removes every cached pipeline and resets statistics, for a
// hot-reload where shader source may have changed underfoot.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pipelines = make(map[scene.PipelineKey]*CompiledPipeline)
	c.hits.Store(0)
	c.misses.Store(0)
}

// Size returns the number of distinct pipelines currently cached.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pipelines)
}

// Stats returns the cache's lifetime hit/miss counts.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
