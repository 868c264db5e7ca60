// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sdfpipeline

import (
	"fmt"

	"github.com/arcane-engine/arcane/scene"
)

// fillBody generates the WGSL fragment-body statements that turn a signed
// distance `d` into an output color, for the given fill variant. It returns
// the statements only — the caller wraps them in the `fs_main` function and
// supplies `d`, `p`, and the fill's baked-in parameters as WGSL literals so
// that distinct parameter values (including colors) produce distinct shader
// source and therefore distinct pipeline-cache entries.
func fillBody(cmd scene.SDFCommand) (string, error) {
	switch cmd.Fill {
	case scene.FillSolid:
		return fmt.Sprintf(`
    let aa = fwidth(d) * 0.5 + 1e-4;
    let alpha = clamp(0.5 - d / aa, 0.0, 1.0);
    return vec4<f32>(%s, 1.0) * alpha * u.opacity;
`, wgslColorRGB(cmd.Color1)), nil

	case scene.FillOutline:
		return fmt.Sprintf(`
    let aa = fwidth(d) * 0.5 + 1e-4;
    let ring = abs(d) - %s;
    let alpha = clamp(0.5 - ring / aa, 0.0, 1.0);
    return vec4<f32>(%s, 1.0) * alpha * u.opacity;
`, wgslFloat(cmd.FillParam), wgslColorRGB(cmd.Color1)), nil

	case scene.FillSolidWithOutline:
		return fmt.Sprintf(`
    let aa = fwidth(d) * 0.5 + 1e-4;
    let fillAlpha = clamp(0.5 - d / aa, 0.0, 1.0);
    let ring = abs(d) - %s;
    let outlineAlpha = clamp(0.5 - ring / aa, 0.0, 1.0);
    let base = vec4<f32>(%s, 1.0) * fillAlpha;
    let outline = vec4<f32>(%s, 1.0) * outlineAlpha;
    return mix(base, outline, outlineAlpha) * u.opacity;
`, wgslFloat(cmd.FillParam), wgslColorRGB(cmd.Color1), wgslColorRGB(cmd.Color2)), nil

	case scene.FillGradient:
		return fmt.Sprintf(`
    let aa = fwidth(d) * 0.5 + 1e-4;
    let alpha = clamp(0.5 - d / aa, 0.0, 1.0);
    let dir = vec2<f32>(cos(%s), sin(%s));
    let t = clamp(dot(p, dir) / %s + 0.5, 0.0, 1.0);
    let col = mix(%s, %s, t);
    return vec4<f32>(col, 1.0) * alpha * u.opacity;
`, wgslFloat(cmd.GradientAngle), wgslFloat(cmd.GradientAngle), wgslFloat(cmd.GradientScale),
			wgslColorRGB(cmd.Color1), wgslColorRGB(cmd.Color2)), nil

	case scene.FillGlow:
		return fmt.Sprintf(`
    let intensity = %s;
    let glow = exp(-max(d, 0.0) * intensity);
    let core = clamp(0.5 - d / (fwidth(d) * 0.5 + 1e-4), 0.0, 1.0);
    let alpha = clamp(core + glow * (1.0 - core), 0.0, 1.0);
    return vec4<f32>(%s, 1.0) * alpha * u.opacity;
`, wgslFloat(cmd.FillParam), wgslColorRGB(cmd.Color1)), nil

	case scene.FillCosinePalette:
		a, b, c, dd := cmd.PaletteParams, cmd.PaletteParams, cmd.PaletteParams, cmd.PaletteParams
		return fmt.Sprintf(`
    let aa = fwidth(d) * 0.5 + 1e-4;
    let alpha = clamp(0.5 - d / aa, 0.0, 1.0);
    let a = vec3<f32>(%g, %g, %g);
    let b = vec3<f32>(%g, %g, %g);
    let c = vec3<f32>(%g, %g, %g);
    let dPhase = vec3<f32>(%g, %g, %g);
    let t = d * 0.1;
    let col = a + b * cos(6.28318530718 * (c * t + dPhase));
    return vec4<f32>(col, 1.0) * alpha * u.opacity;
`, a[0], a[1], a[2], b[3], b[4], b[5], c[6], c[7], c[8], dd[9], dd[10], dd[11]), nil

	default:
		return "", fmt.Errorf("sdfpipeline: unknown fill variant %d", cmd.Fill)
	}
}

func wgslFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}

func wgslColorRGB(c interface{ Bytes() [4]byte }) string {
	b := c.Bytes()
	return fmt.Sprintf("vec3<f32>(%g, %g, %g)", float64(b[0])/255, float64(b[1])/255, float64(b[2])/255)
}
