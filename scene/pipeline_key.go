// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"hash/maphash"
	"math"
)

// PipelineKey is the 64-bit hash identifying a unique compiled GPU
// pipeline in the SDF pipeline cache: a function of (sdf expression,
// fill discriminant, fill payload bit-pattern). Two distinct (expr,
// fill) pairs hash to distinct keys up to the hash's collision
// probability; the same pair always hashes to the same key, so
// ComputePipelineKey is deterministic across runs within one process.
//
// Fill colors are baked directly into the generated fragment shader
// (not passed as a uniform), so they are part of the payload: two Solid
// draws with different colors compile to, and cache, two distinct
// pipelines.
type PipelineKey uint64

// pipelineKeySeed comes from maphash.MakeSeed, which picks a random seed
// once per process: keys are stable within one process run and differ
// between runs.
var pipelineKeySeed = maphash.MakeSeed()

// ComputePipelineKey hashes an SDF expression, its fill discriminant,
// and its fill payload (color1, color2, fill parameter, gradient
// angle/scale, and palette parameters — all of them for every fill
// variant, including fields that variant's codegen does not emit).
func ComputePipelineKey(expr string, fill FillVariant, color1, color2 [4]byte, fillParam, gradientAngle, gradientScale float64, palette [12]float64) PipelineKey {
	var h maphash.Hash
	h.SetSeed(pipelineKeySeed)
	h.WriteString(expr)
	h.WriteByte(byte(fill))
	h.Write(color1[:])
	h.Write(color2[:])
	writeFloat64(&h, fillParam)
	writeFloat64(&h, gradientAngle)
	writeFloat64(&h, gradientScale)
	for _, v := range palette {
		writeFloat64(&h, v)
	}
	return PipelineKey(h.Sum64())
}

func writeFloat64(h *maphash.Hash, v float64) {
	bits := math.Float64bits(v)
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(bits >> (8 * i))
	}
	h.Write(buf[:])
}

// PipelineKeyOf returns the pipeline cache key for this command, per
// ComputePipelineKey.
func (c SDFCommand) PipelineKeyOf() PipelineKey {
	return ComputePipelineKey(c.Expr, c.Fill, c.Color1.Bytes(), c.Color2.Bytes(), c.FillParam, c.GradientAngle, c.GradientScale, c.PaletteParams)
}
