// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sdfpipeline

import (
	"fmt"

	"github.com/arcane-engine/arcane/scene"
)

// shaderPreamble is the fixed vertex stage and group bindings shared by
// every SDF draw: a full-screen-quad-in-local-space vertex shader that
// hands the fragment stage the local-space position to evaluate the
// signed distance expression at.
const shaderPreamble = `
struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) local_pos: vec2<f32>,
}

struct SDFUniforms {
    center: vec2<f32>,
    scale: f32,
    rotation: f32,
    bounds: f32,
    opacity: f32,
    viewport: vec2<f32>,
}

@group(0) @binding(0) var<uniform> u: SDFUniforms;

@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> VertexOutput {
    var quad = array<vec2<f32>, 6>(
        vec2<f32>(-1.0, -1.0), vec2<f32>(1.0, -1.0), vec2<f32>(-1.0, 1.0),
        vec2<f32>(-1.0, 1.0), vec2<f32>(1.0, -1.0), vec2<f32>(1.0, 1.0),
    );
    let corner = quad[idx];
    let local = corner * u.bounds;
    let s = sin(u.rotation);
    let c = cos(u.rotation);
    let rotated = vec2<f32>(c * local.x - s * local.y, s * local.x + c * local.y) * u.scale;
    let world = u.center + rotated;
    let clip = (world / u.viewport) * 2.0 - vec2<f32>(1.0, 1.0);

    var out: VertexOutput;
    out.clip_position = vec4<f32>(clip.x, -clip.y, 0.0, 1.0);
    out.local_pos = local;
    return out;
}
`

// BuildShaderSource assembles the complete WGSL module for one SDF command:
// the fixed vertex preamble, the primitive and composition function
// libraries, the command's own distance expression wired into `sd_eval`,
// and the fill-variant fragment body. The expression and the fill's baked
// parameters are interpolated directly into the source (not passed as
// uniforms beyond transform/viewport), so distinct expressions or fill
// parameters — including color — produce textually distinct shaders and,
// in turn, distinct pipeline-cache entries.
func BuildShaderSource(cmd scene.SDFCommand) (string, error) {
	if cmd.Expr == "" {
		return "", fmt.Errorf("sdfpipeline: empty SDF expression")
	}
	body, err := fillBody(cmd)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`
%s
%s
%s

fn sd_eval(p: vec2<f32>) -> f32 {
    return %s;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let p = in.local_pos;
    let d = sd_eval(p);
%s
}
`, shaderPreamble, primitiveLibrary, compositionLibrary, cmd.Expr, body), nil
}
