// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render turns one frame's worth of scene commands into pixels.
//
// It consumes the sprite, geometry, and SDF command streams built by the
// scene package (scene.BuildSchedule) and the compiled pipeline cache
// built by sdfpipeline, and draws them to a RenderTarget.
//
// # Key Principle
//
// render RECEIVES a GPU device from the host application, it does NOT
// create its own. This follows the Vello/femtovg/Skia pattern where the
// rendering library is injected with GPU resources rather than managing
// them itself — the host package owns adapter/device bring-up and window
// surface acquisition; render only ever consumes what it is handed.
//
// # Core Interfaces
//
//   - DeviceHandle: GPU device access handed down by the host
//   - RenderTarget: where output goes (Pixmap, Texture, window Surface)
//   - Renderer: executes one frame's command schedule against a target
//
// # Renderer Implementations
//
//   - SoftwareRenderer: CPU rasterization of geometry commands, and a
//     flat tinted-quad approximation of sprites, for headless runs and
//     tests. SDF commands require a compiled GPU pipeline and are not
//     evaluated on the CPU path.
//   - GPURenderer: compiles and caches SDF pipelines via sdfpipeline,
//     issues one draw call per command in schedule order (sprite batches
//     are not used), and falls back to SoftwareRenderer for targets that
//     expose CPU pixel access.
//
// # RenderTarget Implementations
//
//   - PixmapTarget: CPU-backed *image.RGBA target
//   - TextureTarget: GPU texture target; NewTextureTarget creates no GPU
//     texture, so its TextureView is nil
//   - SurfaceTarget: the host's window surface
//
// # Post-processing
//
// PostProcessChain ping-pongs a frame between two CPU pixmap targets
// through an ordered list of effects (bloom, blur, vignette, CRT); the
// host copies the result back into the target's pixel buffer. Targets
// without CPU pixel access are not post-processed.
//
// # Architecture
//
//	                   host package
//	                       │
//	      ┌────────────────┼────────────────┐
//	      │                │                │
//	      ▼                ▼                ▼
//	 window/input      DeviceHandle     bridge.State
//	 (glfw)            (GPU access)     (per-frame commands)
//	      │                │                │
//	      └────────────────┼────────────────┘
//	                       │
//	                       ▼
//	                render package
//	      ┌────────────────┼────────────────┐
//	      │                │                │
//	      ▼                ▼                ▼
//	 RenderTarget       Renderer      PostProcessChain
//	 (output)          (execution)    (bloom/blur/vignette/crt)
//	                       │
//	                       ▼
//	              scene / sdfpipeline
//	        (commands, batches, compiled pipelines)
//
// # Thread Safety
//
// Renderers are NOT thread-safe. Each renderer is driven from the host's
// single frame-loop goroutine.
//
// # References
//
//   - Vello DeviceProvider pattern
//   - femtovg Renderer trait
//   - Skia GrDirectContext
package render
