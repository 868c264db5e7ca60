// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image/color"
	"math"

	"github.com/arcane-engine/arcane/internal/raster"
	"github.com/arcane-engine/arcane/scene"
)

// SoftwareRenderer is a CPU-based renderer for headless runs and tests.
//
// It rasterizes geometry commands (triangles and thick lines) with
// analytic scanline fill, and approximates sprites as tinted, rotated
// quads since it has no decoded texture pixels to sample — the host's
// real asset pipeline only uploads texture data to the GPU. SDF commands
// are skipped: evaluating a WGSL signed-distance expression on the CPU
// would require a small shader interpreter, which the GPU renderer's
// compiled pipeline makes unnecessary in practice.
type SoftwareRenderer struct {
	rasterizer         *raster.Rasterizer
	lastWidth, lastHeight int
}

// NewSoftwareRenderer creates a new CPU-based software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

// pixmapAdapter adapts a RenderTarget's raw byte buffer to raster.Pixmap.
type pixmapAdapter struct {
	pixels []byte
	width  int
	height int
	stride int
}

func (p *pixmapAdapter) Width() int  { return p.width }
func (p *pixmapAdapter) Height() int { return p.height }

func (p *pixmapAdapter) SetPixel(x, y int, c raster.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	offset := y*p.stride + x*4
	srcA := c.A
	if srcA <= 0 {
		return
	}
	if srcA >= 1 {
		p.pixels[offset] = byteClamp(c.R)
		p.pixels[offset+1] = byteClamp(c.G)
		p.pixels[offset+2] = byteClamp(c.B)
		p.pixels[offset+3] = byteClamp(c.A)
		return
	}
	invA := 1 - srcA
	dstR := float64(p.pixels[offset]) / 255
	dstG := float64(p.pixels[offset+1]) / 255
	dstB := float64(p.pixels[offset+2]) / 255
	dstA := float64(p.pixels[offset+3]) / 255
	p.pixels[offset] = byteClamp(c.R*srcA + dstR*invA)
	p.pixels[offset+1] = byteClamp(c.G*srcA + dstG*invA)
	p.pixels[offset+2] = byteClamp(c.B*srcA + dstB*invA)
	p.pixels[offset+3] = byteClamp(c.A*srcA + dstA*invA)
}

func byteClamp(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}

// Render draws the scene's geometry and sprite streams to the target.
func (r *SoftwareRenderer) Render(target RenderTarget, sc *Scene) error {
	if target == nil {
		return errors.New("render: nil target")
	}
	pixels := target.Pixels()
	if pixels == nil {
		return errors.New("render: target does not support CPU rendering")
	}
	if sc == nil {
		return nil
	}

	width := target.Width()
	height := target.Height()
	stride := target.Stride()
	r.ensureRasterizer(width, height)

	pm := &pixmapAdapter{pixels: pixels, width: width, height: height, stride: stride}

	if sc.Background != nil {
		r.clear(pm, sc.Background)
	}

	for _, op := range sc.Schedule() {
		switch op.Kind {
		case scene.OpGeometry:
			for _, cmd := range sc.Geometry[op.Start:op.End] {
				r.renderGeometry(pm, cmd)
			}
		case scene.OpSprites:
			for _, cmd := range sc.Sprites[op.Start:op.End] {
				r.renderSprite(pm, cmd)
			}
		case scene.OpSDF:
			// CPU fallback does not evaluate SDF expressions; see the
			// package doc comment.
		}
	}

	ApplyRadianceCascade(pixels, width, height, stride, sc.GI)

	return nil
}

// Flush is a no-op: software rendering is synchronous.
func (r *SoftwareRenderer) Flush() error {
	return nil
}

// Capabilities returns the renderer's capabilities.
func (r *SoftwareRenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{
		IsGPU:                false,
		SupportsAntialiasing: false,
		SupportsBlendModes:   false,
		SupportsGradients:    false,
		SupportsTextures:     false,
		MaxTextureSize:       0,
	}
}

func (r *SoftwareRenderer) ensureRasterizer(width, height int) {
	if r.rasterizer == nil || r.lastWidth != width || r.lastHeight != height {
		r.rasterizer = raster.NewRasterizer(width, height)
		r.lastWidth, r.lastHeight = width, height
	}
}

func (r *SoftwareRenderer) clear(pm *pixmapAdapter, c color.Color) {
	cr, cg, cb, ca := c.RGBA()
	rc := raster.RGBA{R: float64(cr) / 0xFFFF, G: float64(cg) / 0xFFFF, B: float64(cb) / 0xFFFF, A: float64(ca) / 0xFFFF}
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			pm.SetPixel(x, y, raster.RGBA{R: rc.R, G: rc.G, B: rc.B, A: 1})
		}
	}
}

func (r *SoftwareRenderer) renderGeometry(pm *pixmapAdapter, cmd scene.GeometryCommand) {
	c := raster.RGBA{R: cmd.RGBA.R, G: cmd.RGBA.G, B: cmd.RGBA.B, A: cmd.RGBA.A}
	switch cmd.Kind {
	case scene.GeometryTriangle:
		pts := []raster.Point{
			{X: cmd.Verts[0].X, Y: cmd.Verts[0].Y},
			{X: cmd.Verts[1].X, Y: cmd.Verts[1].Y},
			{X: cmd.Verts[2].X, Y: cmd.Verts[2].Y},
			{X: cmd.Verts[0].X, Y: cmd.Verts[0].Y},
		}
		r.rasterizer.Fill(pm, pts, raster.FillRuleNonZero, c)
	case scene.GeometryLine:
		pts := []raster.Point{
			{X: cmd.Verts[0].X, Y: cmd.Verts[0].Y},
			{X: cmd.Verts[1].X, Y: cmd.Verts[1].Y},
		}
		r.rasterizer.Stroke(pm, pts, cmd.Thickness, c)
	}
}

// renderSprite approximates a sprite as a tinted, rotated quad — the CPU
// path has no decoded texture to sample, only the tint and shape.
func (r *SoftwareRenderer) renderSprite(pm *pixmapAdapter, cmd scene.SpriteCommand) {
	cx := cmd.X + cmd.OriginX*cmd.W
	cy := cmd.Y + cmd.OriginY*cmd.H
	hw, hh := cmd.W/2, cmd.H/2
	corners := [4][2]float64{
		{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh},
	}
	sin, cos := math.Sincos(cmd.Rotation)
	pts := make([]raster.Point, 0, 5)
	for _, corner := range corners {
		x := corner[0]*cos - corner[1]*sin
		y := corner[0]*sin + corner[1]*cos
		pts = append(pts, raster.Point{X: cx + x, Y: cy + y})
	}
	pts = append(pts, pts[0])

	alpha := cmd.Tint.A * cmd.Opacity
	c := raster.RGBA{R: cmd.Tint.R, G: cmd.Tint.G, B: cmd.Tint.B, A: alpha}
	r.rasterizer.Fill(pm, pts, raster.FillRuleNonZero, c)
}

// Ensure SoftwareRenderer implements Renderer and CapableRenderer.
var (
	_ Renderer        = (*SoftwareRenderer)(nil)
	_ CapableRenderer = (*SoftwareRenderer)(nil)
)
