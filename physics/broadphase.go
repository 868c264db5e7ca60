// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package physics

import "github.com/arcane-engine/arcane/geom"

// defaultCellSize is the spatial hash's cell edge length in world units.
const defaultCellSize = 64.0

type cellKey struct{ cx, cy int32 }

// spatialHash is a uniform-grid broadphase. Each body's world AABB is
// inserted into every cell it overlaps; candidate pairs are the unique
// (a<b) body-id pairs that share at least one cell.
type spatialHash struct {
	cellSize float64
	cells    map[cellKey][]BodyID
}

func newSpatialHash(cellSize float64) *spatialHash {
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}
	return &spatialHash{cellSize: cellSize, cells: make(map[cellKey][]BodyID)}
}

func (h *spatialHash) clear() {
	for k := range h.cells {
		delete(h.cells, k)
	}
}

func (h *spatialHash) cellCoord(p geom.Vec2) (int32, int32) {
	return int32(floorDiv(p.X, h.cellSize)), int32(floorDiv(p.Y, h.cellSize))
}

func floorDiv(v, cell float64) float64 {
	q := v / cell
	if q < 0 {
		return q - 1
	}
	return q
}

func (h *spatialHash) insert(id BodyID, min, max geom.Vec2) {
	minX, minY := h.cellCoord(min)
	maxX, maxY := h.cellCoord(max)
	for cx := minX; cx <= maxX; cx++ {
		for cy := minY; cy <= maxY; cy++ {
			k := cellKey{cx, cy}
			h.cells[k] = append(h.cells[k], id)
		}
	}
}

// pair is an ordered (a<b) candidate pair.
type pair struct{ a, b BodyID }

// candidatePairs returns the unique (a<b) body-id pairs sharing any cell.
func (h *spatialHash) candidatePairs() []pair {
	seen := make(map[pair]struct{})
	var out []pair
	for _, ids := range h.cells {
		n := len(ids)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				a, b := ids[i], ids[j]
				if a == b {
					continue
				}
				if a > b {
					a, b = b, a
				}
				p := pair{a, b}
				if _, ok := seen[p]; ok {
					continue
				}
				seen[p] = struct{}{}
				out = append(out, p)
			}
		}
	}
	return out
}
