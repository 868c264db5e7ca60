// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	stdcolor "image/color"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	wgputypes "github.com/gogpu/wgpu/types"

	"github.com/arcane-engine/arcane/scene"
	"github.com/arcane-engine/arcane/sdfpipeline"
)

// pipelineColorFormat bridges RenderTarget.Format (gputypes.TextureFormat,
// the device-injection layer's format type) to the wgpu/types.TextureFormat
// the pipeline cache's hal.Device expects. The two packages describe the
// same WebGPU formats with distinct Go types; this maps the subset the
// render targets in this package actually produce.
func pipelineColorFormat(f gputypes.TextureFormat) wgputypes.TextureFormat {
	switch f {
	case gputypes.TextureFormatBGRA8Unorm:
		return wgputypes.TextureFormatBGRA8Unorm
	case gputypes.TextureFormatRGBA8Unorm:
		return wgputypes.TextureFormatRGBA8Unorm
	default:
		return wgputypes.TextureFormatRGBA8Unorm
	}
}

// GPURenderer is a GPU-accelerated renderer driven by a host-provided
// DeviceHandle.
//
// Sprites, geometry and SDF commands are drawn in the scene's schedule
// order with one draw call per command; the scene's SpriteBatches are
// not used, so sprites sharing a batch key are not merged into one draw.
// SDF shapes are compiled and cached with sdfpipeline.Cache, keyed by
// scene.PipelineKey so repeated (expression, fill) combinations reuse
// one pipeline for the session.
//
// Targets with CPU pixel access are rendered by SoftwareRenderer. For
// any other target, the handle's device and queue and the target's
// texture view must be hal types; when one is not — for example with a
// NullDeviceHandle, as in headless tests — Render returns an error and
// draws nothing.
type GPURenderer struct {
	handle    DeviceHandle
	pipelines *sdfpipeline.Cache
	sprites   *spritePipelineCache
	shaders   *ShaderStore

	softwareFallback *SoftwareRenderer
}

// NewGPURenderer creates a new GPU-accelerated renderer.
//
// The DeviceHandle must be provided by the host application. The
// renderer does not create its own GPU device or adapter.
func NewGPURenderer(handle DeviceHandle) (*GPURenderer, error) {
	if handle == nil {
		return nil, errors.New("render: nil device handle")
	}
	shaders := NewShaderStore()
	return &GPURenderer{
		handle:           handle,
		pipelines:        sdfpipeline.NewCache(),
		sprites:          newSpritePipelineCache(shaders),
		shaders:          shaders,
		softwareFallback: NewSoftwareRenderer(),
	}, nil
}

// CreateShader registers a user sprite shader, implementing
// host.ShaderUploader. Compiled sprite pipelines for id are dropped, so a
// shader created again under the same id (after a reload) is recompiled.
func (r *GPURenderer) CreateShader(id scene.ShaderID, name, source string) {
	r.shaders.Create(id, name, source)
	for key := range r.sprites.pipelines {
		if key.shader == id {
			delete(r.sprites.pipelines, key)
		}
	}
}

// SetShaderParam writes one of a user shader's uniform slots,
// implementing host.ShaderUploader.
func (r *GPURenderer) SetShaderParam(id scene.ShaderID, index int, x, y, z, w float64) {
	r.shaders.SetParam(id, index, x, y, z, w)
}

// Render draws the scene to the target: it compiles and caches every
// pipeline the frame's schedule touches, records one render pass that
// interleaves sprite, geometry, and SDF draws in schedule order, and
// submits it to the device's queue. Targets with CPU pixel access
// (PixmapTarget) render through SoftwareRenderer instead — GI and
// post-process both operate on that CPU pixel buffer, so a headless run
// never loses them to the GPU path. A target without CPU pixel access
// and without a usable hal.Device behind the handle is an error.
func (r *GPURenderer) Render(target RenderTarget, sc *Scene) error {
	if target == nil {
		return errors.New("render: nil target")
	}
	if sc == nil {
		return nil
	}
	if target.Pixels() != nil {
		return r.softwareFallback.Render(target, sc)
	}

	halDevice, ok := r.handle.Device().(hal.Device)
	if !ok {
		return errors.New("render: no usable GPU device and target has no CPU pixel access")
	}
	halQueue, ok := r.handle.Queue().(hal.Queue)
	if !ok {
		return errors.New("render: device handle has no usable GPU queue")
	}
	halView, ok := target.TextureView().(hal.TextureView)
	if !ok {
		return errors.New("render: target has no usable GPU texture view")
	}

	colorFormat := pipelineColorFormat(target.Format())
	for _, cmd := range sc.SDF {
		if _, err := r.pipelines.GetOrCreate(halDevice, cmd, colorFormat, scene.BlendAlpha); err != nil {
			return err
		}
	}

	encoder, err := halDevice.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "arcane_frame"})
	if err != nil {
		return fmt.Errorf("render: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("arcane_frame"); err != nil {
		return fmt.Errorf("render: begin encoding: %w", err)
	}

	pass := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       halView,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: clearValueOf(sc.Background),
		}},
	})
	if pass == nil {
		return errors.New("render: encoder refused to begin a render pass")
	}

	if err := r.recordSchedule(pass, halDevice, colorFormat, sc); err != nil {
		pass.End()
		return err
	}
	pass.End()

	cmdBuffer, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("render: end encoding: %w", err)
	}
	if err := halQueue.Submit([]hal.CommandBuffer{cmdBuffer}, nil, 0); err != nil {
		return fmt.Errorf("render: submit: %w", err)
	}
	return nil
}

// recordSchedule walks the scene's layer-interleaved draw schedule,
// binding the pipeline each op needs and issuing one draw call per
// command so draw order matches the schedule's layer ordering.
func (r *GPURenderer) recordSchedule(pass hal.RenderPassEncoder, device hal.Device, colorFormat wgputypes.TextureFormat, sc *Scene) error {
	for _, op := range sc.Schedule() {
		switch op.Kind {
		case scene.OpGeometry:
			pipeline, err := r.sprites.getOrCreate(device, colorFormat, scene.ShaderDefault, scene.BlendAlpha)
			if err != nil {
				return err
			}
			pass.SetPipeline(pipeline)
			for range sc.Geometry[op.Start:op.End] {
				pass.Draw(6, 1, 0, 0)
			}
		case scene.OpSprites:
			for _, cmd := range sc.Sprites[op.Start:op.End] {
				pipeline, err := r.sprites.getOrCreate(device, colorFormat, cmd.Shader, cmd.Blend)
				if err != nil {
					return err
				}
				pass.SetPipeline(pipeline)
				pass.Draw(6, 1, 0, 0)
			}
		case scene.OpSDF:
			for _, cmd := range sc.SDF[op.Start:op.End] {
				compiled, err := r.pipelines.GetOrCreate(device, cmd, colorFormat, scene.BlendAlpha)
				if err != nil {
					return err
				}
				pass.SetPipeline(compiled.Pipeline)
				pass.Draw(6, 1, 0, 0)
			}
		}
	}
	return nil
}

// clearValueOf converts the scene's background clear color to the
// normalized-float form hal.RenderPassColorAttachment expects.
func clearValueOf(c stdcolor.Color) gputypes.Color {
	if c == nil {
		return gputypes.Color{A: 1}
	}
	r, g, b, a := c.RGBA()
	return gputypes.Color{R: float64(r) / 0xFFFF, G: float64(g) / 0xFFFF, B: float64(b) / 0xFFFF, A: float64(a) / 0xFFFF}
}

// Flush submits any pending GPU command buffers. Render already submits
// synchronously to the queue, so there is nothing left to flush.
func (r *GPURenderer) Flush() error {
	return nil
}

// Capabilities returns the renderer's capabilities.
func (r *GPURenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{
		IsGPU:                true,
		SupportsAntialiasing: true,
		SupportsBlendModes:   true,
		SupportsGradients:    true,
		SupportsTextures:     true,
		MaxTextureSize:       8192,
	}
}

// DeviceHandle returns the underlying device handle.
func (r *GPURenderer) DeviceHandle() DeviceHandle {
	return r.handle
}

// PipelineCache exposes the SDF pipeline cache for stats/hot-reload.
func (r *GPURenderer) PipelineCache() *sdfpipeline.Cache {
	return r.pipelines
}

// CreateTextureTarget creates a GPU texture render target.
func (r *GPURenderer) CreateTextureTarget(width, height int, format gputypes.TextureFormat) (*TextureTarget, error) {
	return NewTextureTarget(r.handle, width, height, format)
}

// Ensure GPURenderer implements Renderer and CapableRenderer.
var (
	_ Renderer        = (*GPURenderer)(nil)
	_ CapableRenderer = (*GPURenderer)(nil)
)
