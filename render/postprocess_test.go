// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestPostProcessChainNoEffectsCopiesSource(t *testing.T) {
	c := NewPostProcessChain(8, 8)
	src := solidImage(8, 8, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	out := c.Apply(src)
	px := out.GetPixel(4, 4).(color.RGBA)
	if px.R != 200 || px.G != 100 || px.B != 50 {
		t.Errorf("pixel = %v, want {200,100,50,255}", px)
	}
}

func TestPostProcessChainAddRemoveEffect(t *testing.T) {
	c := NewPostProcessChain(4, 4)
	c.AddEffect(EffectParams{Kind: EffectBlur, Radius: 1})
	c.AddEffect(EffectParams{Kind: EffectVignette, Intensity: 0.5})

	if len(c.Effects()) != 2 {
		t.Fatalf("len(Effects()) = %d, want 2", len(c.Effects()))
	}
	c.RemoveEffect(0)
	if len(c.Effects()) != 1 {
		t.Fatalf("len(Effects()) = %d, want 1", len(c.Effects()))
	}
	if c.Effects()[0].Kind != EffectVignette {
		t.Error("RemoveEffect removed the wrong effect")
	}
}

func TestPostProcessChainBlurSoftensSharpEdge(t *testing.T) {
	c := NewPostProcessChain(16, 16)
	c.AddEffect(EffectParams{Kind: EffectBlur, Radius: 3})

	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if x < 8 {
				src.SetRGBA(x, y, color.RGBA{A: 255})
			} else {
				src.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}
	}

	out := c.Apply(src)
	edge := out.GetPixel(8, 8).(color.RGBA)
	if edge.R == 0 || edge.R == 255 {
		t.Errorf("blurred edge pixel R = %d, want a value between 0 and 255", edge.R)
	}
}

func TestPostProcessChainVignetteDarkensCorners(t *testing.T) {
	c := NewPostProcessChain(32, 32)
	c.AddEffect(EffectParams{Kind: EffectVignette, Intensity: 0.9})

	src := solidImage(32, 32, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	out := c.Apply(src)

	center := out.GetPixel(16, 16).(color.RGBA)
	corner := out.GetPixel(0, 0).(color.RGBA)
	if corner.R >= center.R {
		t.Errorf("corner R = %d should be darker than center R = %d", corner.R, center.R)
	}
}

func TestPostProcessChainCRTDarkensOddScanlines(t *testing.T) {
	c := NewPostProcessChain(4, 4)
	c.AddEffect(EffectParams{Kind: EffectCRT, Intensity: 0.5})

	src := solidImage(4, 4, color.RGBA{R: 200, G: 200, B: 200, A: 255})
	out := c.Apply(src)

	even := out.GetPixel(1, 0).(color.RGBA)
	odd := out.GetPixel(1, 1).(color.RGBA)
	if odd.R >= even.R {
		t.Errorf("odd scanline R = %d should be darker than even scanline R = %d", odd.R, even.R)
	}
}

func TestPostProcessChainBloomBrightensHighlights(t *testing.T) {
	c := NewPostProcessChain(16, 16)
	c.AddEffect(EffectParams{Kind: EffectBloom, Threshold: 0.5, Intensity: 1.5, Radius: 4})

	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			src.SetRGBA(x, y, color.RGBA{A: 255})
		}
	}
	src.SetRGBA(8, 8, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	out := c.Apply(src)
	near := out.GetPixel(9, 8).(color.RGBA)
	if near.R == 0 {
		t.Error("expected bloom to brighten a pixel adjacent to the highlight")
	}
}

func TestPostProcessChainResize(t *testing.T) {
	c := NewPostProcessChain(4, 4)
	c.Resize(10, 12)

	src := solidImage(10, 12, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	out := c.Apply(src)
	if out.Width() != 10 || out.Height() != 12 {
		t.Errorf("target size = %dx%d, want 10x12", out.Width(), out.Height())
	}
}
