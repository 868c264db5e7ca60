// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Effect identifies a post-process pass in a PostProcessChain.
type Effect uint8

// Effect kinds, matching the ops table's effect_create(kind, params...).
const (
	EffectBloom Effect = iota
	EffectBlur
	EffectVignette
	EffectCRT
)

// EffectParams holds the tunable parameters for one effect instance.
// Unused fields for a given Effect kind are ignored.
type EffectParams struct {
	Kind      Effect
	Intensity float64 // Bloom/CRT strength, vignette darkness.
	Radius    float64 // Blur/bloom sample radius in pixels.
	Threshold float64 // Bloom brightness threshold (0-1).
}

// PostProcessChain ping-pongs a rendered frame between two offscreen
// targets through an ordered list of effects before a final composite
// onto the presentation target.
//
// This generalizes the z-ordered layer compositing this package's
// teacher code used for UI overlays (draw.Over blending onto a base
// image) to a two-target ping-pong: each effect reads the current
// "front" target and writes the "back" target, then the two are
// swapped, so effects compose without each needing its own scratch
// buffer.
type PostProcessChain struct {
	effects []EffectParams

	a, b *PixmapTarget
}

// NewPostProcessChain creates a chain with two same-sized ping-pong
// targets. Effects are added with AddEffect and applied in the order
// added.
func NewPostProcessChain(width, height int) *PostProcessChain {
	return &PostProcessChain{
		a: NewPixmapTarget(width, height),
		b: NewPixmapTarget(width, height),
	}
}

// AddEffect appends an effect to the chain.
func (c *PostProcessChain) AddEffect(p EffectParams) {
	c.effects = append(c.effects, p)
}

// RemoveEffect removes the effect at the given index, if present.
func (c *PostProcessChain) RemoveEffect(index int) {
	if index < 0 || index >= len(c.effects) {
		return
	}
	c.effects = append(c.effects[:index], c.effects[index+1:]...)
}

// Effects returns the chain's current effect list.
func (c *PostProcessChain) Effects() []EffectParams {
	return c.effects
}

// Resize recreates the ping-pong targets for a new output size.
func (c *PostProcessChain) Resize(width, height int) {
	c.a = NewPixmapTarget(width, height)
	c.b = NewPixmapTarget(width, height)
}

// Apply copies src onto the chain's front target, runs every effect in
// order, and returns the target holding the final result.
func (c *PostProcessChain) Apply(src *image.RGBA) *PixmapTarget {
	draw.Draw(c.a.img, c.a.img.Bounds(), src, image.Point{}, draw.Src)

	front, back := c.a, c.b
	for _, effect := range c.effects {
		applyEffect(effect, front.img, back.img)
		front, back = back, front
	}
	return front
}

func applyEffect(p EffectParams, src, dst *image.RGBA) {
	switch p.Kind {
	case EffectBloom:
		applyBloom(p, src, dst)
	case EffectBlur:
		applyBoxBlur(src, dst, radiusOrDefault(p.Radius, 2))
	case EffectVignette:
		applyVignette(p, src, dst)
	case EffectCRT:
		applyCRT(p, src, dst)
	default:
		copyImage(src, dst)
	}
}

func radiusOrDefault(r, d float64) int {
	if r <= 0 {
		return int(d)
	}
	return int(r)
}

func copyImage(src, dst *image.RGBA) {
	draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)
}

// applyBoxBlur runs a separable box blur of the given pixel radius.
func applyBoxBlur(src, dst *image.RGBA, radius int) {
	if radius < 1 {
		copyImage(src, dst)
		return
	}
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	tmp := image.NewRGBA(bounds)
	boxBlurPass(src, tmp, w, h, radius, true)
	boxBlurPass(tmp, dst, w, h, radius, false)
}

func boxBlurPass(src, dst *image.RGBA, w, h, radius int, horizontal bool) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sr, sg, sb, sa, n int
			for o := -radius; o <= radius; o++ {
				sx, sy := x, y
				if horizontal {
					sx += o
				} else {
					sy += o
				}
				if sx < 0 || sx >= w || sy < 0 || sy >= h {
					continue
				}
				c := src.RGBAAt(sx, sy)
				sr += int(c.R)
				sg += int(c.G)
				sb += int(c.B)
				sa += int(c.A)
				n++
			}
			if n == 0 {
				n = 1
			}
			dst.SetRGBA(x, y, rgba8(sr/n, sg/n, sb/n, sa/n))
		}
	}
}

// applyBloom blurs the bright pixels (above Threshold) and additively
// composites them back over the source, scaled by Intensity.
func applyBloom(p EffectParams, src, dst *image.RGBA) {
	bounds := src.Bounds()
	threshold := p.Threshold
	if threshold <= 0 {
		threshold = 0.7
	}
	intensity := p.Intensity
	if intensity <= 0 {
		intensity = 1
	}

	bright := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := src.RGBAAt(x, y)
			lum := (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
			if lum >= threshold {
				bright.SetRGBA(x, y, c)
			}
		}
	}

	blurred := image.NewRGBA(bounds)
	applyBoxBlur(bright, blurred, radiusOrDefault(p.Radius, 6))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			base := src.RGBAAt(x, y)
			glow := blurred.RGBAAt(x, y)
			r := int(base.R) + int(float64(glow.R)*intensity)
			g := int(base.G) + int(float64(glow.G)*intensity)
			b := int(base.B) + int(float64(glow.B)*intensity)
			dst.SetRGBA(x, y, rgba8(r, g, b, int(base.A)))
		}
	}
}

// applyVignette darkens pixels toward the frame edges, proportional to
// distance from center and Intensity.
func applyVignette(p EffectParams, src, dst *image.RGBA) {
	bounds := src.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	cx, cy := w/2, h/2
	maxDist := distance(0, 0, cx, cy)
	intensity := p.Intensity
	if intensity <= 0 {
		intensity = 0.5
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := src.RGBAAt(x, y)
			d := distance(float64(x)-cx, float64(y)-cy, 0, 0) / maxDist
			falloff := 1 - intensity*d*d
			if falloff < 0 {
				falloff = 0
			}
			dst.SetRGBA(x, y, rgba8(
				int(float64(c.R)*falloff),
				int(float64(c.G)*falloff),
				int(float64(c.B)*falloff),
				int(c.A),
			))
		}
	}
}

// applyCRT darkens alternating scanlines, approximating a CRT mask.
func applyCRT(p EffectParams, src, dst *image.RGBA) {
	bounds := src.Bounds()
	intensity := p.Intensity
	if intensity <= 0 {
		intensity = 0.25
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		falloff := 1.0
		if y%2 == 1 {
			falloff = 1 - intensity
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := src.RGBAAt(x, y)
			dst.SetRGBA(x, y, rgba8(
				int(float64(c.R)*falloff),
				int(float64(c.G)*falloff),
				int(float64(c.B)*falloff),
				int(c.A),
			))
		}
	}
}

func distance(x0, y0, x1, y1 float64) float64 {
	dx, dy := x1-x0, y1-y0
	return sqrtApprox(dx*dx + dy*dy)
}

func sqrtApprox(v float64) float64 {
	if v <= 0 {
		return 0
	}
	z := v / 2
	for i := 0; i < 12; i++ {
		z = (z + v/z) / 2
	}
	return z
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func rgba8(r, g, b, a int) color.RGBA {
	return color.RGBA{R: clampByte(r), G: clampByte(g), B: clampByte(b), A: clampByte(a)}
}
