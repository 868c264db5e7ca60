// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import "sort"

// SpriteBatch is a contiguous run of sprites sharing (Layer, Shader,
// Blend, Texture), drawable with a single GPU draw call.
type SpriteBatch struct {
	Layer   int32
	Shader  ShaderID
	Blend   BlendMode
	Texture TextureID
	Start   int // Index range into the sorted sprite slice, [Start, End).
	End    int
}

// SortSprites stably sorts sprites by (layer, shader, blend, texture) —
// stable so that two sprites tied on the full key keep their submission
// order, preserving intra-batch paint order. It sorts in place and
// returns the same slice for convenience.
func SortSprites(sprites []SpriteCommand) []SpriteCommand {
	sort.SliceStable(sprites, func(i, j int) bool {
		a, b := sprites[i], sprites[j]
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		if a.Shader != b.Shader {
			return a.Shader < b.Shader
		}
		if a.Blend != b.Blend {
			return a.Blend < b.Blend
		}
		return a.Texture < b.Texture
	})
	return sprites
}

// BuildSpriteBatches sorts sprites in place and partitions them into
// contiguous runs sharing the same (layer, shader, blend, texture) key.
func BuildSpriteBatches(sprites []SpriteCommand) []SpriteBatch {
	SortSprites(sprites)
	if len(sprites) == 0 {
		return nil
	}

	var batches []SpriteBatch
	start := 0
	for i := 1; i <= len(sprites); i++ {
		if i < len(sprites) && sameBatchKey(sprites[i-1], sprites[i]) {
			continue
		}
		s := sprites[start]
		batches = append(batches, SpriteBatch{
			Layer: s.Layer, Shader: s.Shader, Blend: s.Blend, Texture: s.Texture,
			Start: start, End: i,
		})
		start = i
	}
	return batches
}

func sameBatchKey(a, b SpriteCommand) bool {
	return a.Layer == b.Layer && a.Shader == b.Shader && a.Blend == b.Blend && a.Texture == b.Texture
}

// OpKind discriminates the three interleaved draw streams.
type OpKind uint8

// Op kinds, in within-layer draw order.
const (
	OpSprites OpKind = iota
	OpGeometry
	OpSDF
)

// DrawOp is one contiguous range within one of the three command
// slices, scheduled in ascending-layer order with Sprites, then
// Geometry, then SDF drawn within each layer.
type DrawOp struct {
	Kind  OpKind
	Layer int32
	Start, End int
}

// BuildSchedule sorts sprites, geometry, and SDF commands independently
// by layer (stably, preserving submission order within a layer) and
// merges them into a single ascending-layer schedule. Within a layer,
// all Sprite ops precede all Geometry ops, which precede all SDF ops —
// each stream still contributes only the layers it actually has
// commands for.
func BuildSchedule(sprites []SpriteCommand, geometry []GeometryCommand, sdf []SDFCommand) []DrawOp {
	SortSprites(sprites)
	sort.SliceStable(geometry, func(i, j int) bool { return geometry[i].Layer < geometry[j].Layer })
	sort.SliceStable(sdf, func(i, j int) bool { return sdf[i].Layer < sdf[j].Layer })

	layers := make(map[int32]struct{})
	for _, s := range sprites {
		layers[s.Layer] = struct{}{}
	}
	for _, g := range geometry {
		layers[g.Layer] = struct{}{}
	}
	for _, c := range sdf {
		layers[c.Layer] = struct{}{}
	}
	ordered := make([]int32, 0, len(layers))
	for l := range layers {
		ordered = append(ordered, l)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	var ops []DrawOp
	si, gi, di := 0, 0, 0
	for _, layer := range ordered {
		start := si
		for si < len(sprites) && sprites[si].Layer == layer {
			si++
		}
		if si > start {
			ops = append(ops, DrawOp{Kind: OpSprites, Layer: layer, Start: start, End: si})
		}

		start = gi
		for gi < len(geometry) && geometry[gi].Layer == layer {
			gi++
		}
		if gi > start {
			ops = append(ops, DrawOp{Kind: OpGeometry, Layer: layer, Start: start, End: gi})
		}

		start = di
		for di < len(sdf) && sdf[di].Layer == layer {
			di++
		}
		if di > start {
			ops = append(ops, DrawOp{Kind: OpSDF, Layer: layer, Start: start, End: di})
		}
	}
	return ops
}
