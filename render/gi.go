// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/arcane-engine/arcane/scene"
)

// RadianceCascade is a sparse grid of light probes covering a render
// target, built by ray-marching scene.GIState's emitters/occluders at
// several nested angular resolutions ("cascades") and merging them
// before the result is upsampled back onto the frame.
//
// Each cascade level n covers the same probe grid but marches 4<<n rays
// per probe and only visits every (1<<n)th probe — coarser levels are
// cheap per-probe (sparse probes) but wide-angle (many rays), so they
// capture the far field a finer level would need far more probes to
// reach, the core radiance-cascades trick.
type RadianceCascade struct {
	cols, rows int
	spacing    float64
	probes     []cascadeProbe
}

type cascadeProbe struct {
	x, y    float64
	r, g, b float64
}

const (
	maxMarchDistance = 512.0
	marchStepSize    = 8.0
)

// ApplyRadianceCascade ray-marches, merges, and finalizes one frame of
// GI for gi, additively compositing the result onto an RGBA8 pixel
// buffer of the given dimensions. A disabled or empty GIState is a
// no-op, letting the caller skip the cascade passes entirely.
func ApplyRadianceCascade(pixels []byte, width, height, stride int, gi *scene.GIState) {
	if gi == nil || !gi.Enabled || gi.Empty() {
		return
	}
	rc := newRadianceCascade(width, height, gi.ProbeSpacing)
	rc.rayMarchAndMerge(gi)
	rc.finalize(pixels, width, height, stride, gi.Intensity)
}

func newRadianceCascade(width, height int, spacing float64) *RadianceCascade {
	if spacing < 1 {
		spacing = 1
	}
	cols := int(float64(width)/spacing) + 2
	rows := int(float64(height)/spacing) + 2
	return &RadianceCascade{
		cols:    cols,
		rows:    rows,
		spacing: spacing,
		probes:  make([]cascadeProbe, cols*rows),
	}
}

// rayMarchAndMerge runs every cascade level, coarsest first, and merges
// each level's contribution directly into the shared probe grid: a
// coarse level visits fewer probes but still writes into the same
// array, so a later finer level's additions sit on top of the coarse
// far-field estimate already there, rather than needing a separate
// upsample-and-blend merge step.
func (rc *RadianceCascade) rayMarchAndMerge(gi *scene.GIState) {
	levels := gi.CascadeCount
	if levels < 1 {
		levels = 1
	}
	for level := levels - 1; level >= 0; level-- {
		rays := 4 << uint(level)
		stride := 1 << uint(level)
		rc.rayMarchLevel(gi, rays, stride)
	}
}

func (rc *RadianceCascade) rayMarchLevel(gi *scene.GIState, rays, stride int) {
	for row := 0; row < rc.rows; row += stride {
		for col := 0; col < rc.cols; col += stride {
			idx := row*rc.cols + col
			px, py := float64(col)*rc.spacing, float64(row)*rc.spacing
			r, g, b := gatherProbe(gi, px, py, rays)
			rc.probes[idx].x, rc.probes[idx].y = px, py
			rc.probes[idx].r += r
			rc.probes[idx].g += g
			rc.probes[idx].b += b
		}
	}
}

// gatherProbe marches rays evenly spaced directions from (px,py),
// stopping each ray at the first occluder it crosses and accumulating
// light from any emissive rect it reaches first, plus the ambient
// directional and spot contribution that ray direction happens to align
// with.
func gatherProbe(gi *scene.GIState, px, py float64, rays int) (r, g, b float64) {
	for i := 0; i < rays; i++ {
		angle := 2 * math.Pi * float64(i) / float64(rays)
		dx, dy := math.Cos(angle), math.Sin(angle)

		for t := marchStepSize; t < maxMarchDistance; t += marchStepSize {
			x, y := px+dx*t, py+dy*t
			if occluded(gi.Occluders, x, y) {
				break
			}
			if er, eg, eb, hit := emittedAt(gi.Emissives, x, y); hit {
				falloff := 1 - t/maxMarchDistance
				r += er * falloff
				g += eg * falloff
				b += eb * falloff
				break
			}
		}

		dr, dg, db := directionalContribution(gi.Directionals, angle)
		r += dr
		g += dg
		b += db

		sr, sg, sb := spotContribution(gi.Spots, px, py, angle)
		r += sr
		g += sg
		b += sb
	}

	n := float64(rays)
	return r / n, g / n, b / n
}

func occluded(occluders []scene.OccluderRect, x, y float64) bool {
	for _, o := range occluders {
		if x >= o.X && x <= o.X+o.W && y >= o.Y && y <= o.Y+o.H {
			return true
		}
	}
	return false
}

func emittedAt(emissives []scene.EmissiveRect, x, y float64) (r, g, b float64, hit bool) {
	for _, e := range emissives {
		if x >= e.X && x <= e.X+e.W && y >= e.Y && y <= e.Y+e.H {
			return e.Color.R * e.Intensity, e.Color.G * e.Intensity, e.Color.B * e.Intensity, true
		}
	}
	return 0, 0, 0, false
}

// directionalContribution adds a uniform sky-like term for each
// directional light whose angle the ray direction is within a narrow
// cone of, approximating sunlight with no occlusion test (it has no
// finite position to march toward).
func directionalContribution(lights []scene.DirectionalLight, rayAngle float64) (r, g, b float64) {
	const coneHalfWidth = math.Pi / 16
	for _, l := range lights {
		if angleDelta(rayAngle, l.AngleRadians) <= coneHalfWidth {
			r += l.Color.R * l.Intensity
			g += l.Color.G * l.Intensity
			b += l.Color.B * l.Intensity
		}
	}
	return r, g, b
}

// spotContribution adds a falloff-weighted term for each spot light
// whose cone the probe-to-ray direction falls within.
func spotContribution(spots []scene.SpotLight, px, py, rayAngle float64) (r, g, b float64) {
	for _, s := range spots {
		toProbe := math.Atan2(py-s.Y, px-s.X)
		if angleDelta(rayAngle, toProbe) > s.ConeRadians/2 {
			continue
		}
		if angleDelta(toProbe, s.AngleRadians) > s.ConeRadians/2 {
			continue
		}
		dist := math.Hypot(px-s.X, py-s.Y)
		if dist > s.Radius {
			continue
		}
		falloff := 1 - dist/s.Radius
		r += s.Color.R * s.Intensity * falloff
		g += s.Color.G * s.Intensity * falloff
		b += s.Color.B * s.Intensity * falloff
	}
	return r, g, b
}

func angleDelta(a, b float64) float64 {
	d := math.Mod(a-b+math.Pi, 2*math.Pi) - math.Pi
	if d < 0 {
		d = -d
	}
	return d
}

// finalize bilinearly samples the probe grid at every pixel and
// additively composites the result onto an RGBA8 buffer, scaled by
// intensity.
func (rc *RadianceCascade) finalize(pixels []byte, width, height, stride int, intensity float64) {
	for y := 0; y < height; y++ {
		py := float64(y) / rc.spacing
		row0 := int(py)
		rowT := py - float64(row0)

		for x := 0; x < width; x++ {
			px := float64(x) / rc.spacing
			col0 := int(px)
			colT := px - float64(col0)

			r, g, b := rc.bilinear(col0, row0, colT, rowT)
			offset := y*stride + x*4
			pixels[offset] = addByte(pixels[offset], r*intensity)
			pixels[offset+1] = addByte(pixels[offset+1], g*intensity)
			pixels[offset+2] = addByte(pixels[offset+2], b*intensity)
		}
	}
}

func (rc *RadianceCascade) bilinear(col0, row0 int, colT, rowT float64) (r, g, b float64) {
	p00 := rc.probeAt(col0, row0)
	p10 := rc.probeAt(col0+1, row0)
	p01 := rc.probeAt(col0, row0+1)
	p11 := rc.probeAt(col0+1, row0+1)

	top := lerp3(p00, p10, colT)
	bottom := lerp3(p01, p11, colT)
	return lerp(top[0], bottom[0], rowT), lerp(top[1], bottom[1], rowT), lerp(top[2], bottom[2], rowT)
}

func (rc *RadianceCascade) probeAt(col, row int) cascadeProbe {
	if col < 0 || col >= rc.cols || row < 0 || row >= rc.rows {
		return cascadeProbe{}
	}
	return rc.probes[row*rc.cols+col]
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func lerp3(p0, p1 cascadeProbe, t float64) [3]float64 {
	return [3]float64{lerp(p0.r, p1.r, t), lerp(p0.g, p1.g, t), lerp(p0.b, p1.b, t)}
}

func addByte(v byte, delta float64) byte {
	sum := float64(v) + delta*255
	if sum >= 255 {
		return 255
	}
	if sum <= 0 {
		return v
	}
	return byte(sum)
}
