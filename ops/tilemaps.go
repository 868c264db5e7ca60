// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"github.com/arcane-engine/arcane/bridge"
	"github.com/arcane-engine/arcane/scene"
)

// CreateTilemap allocates an empty tilemap backed by a texture atlas.
func CreateTilemap(b *bridge.State, tex scene.TextureID, w, h int, tileSize float64, atlasCols, atlasRows int) uint32 {
	id := b.TilemapIDs.Next()
	b.Tilemaps[id] = scene.NewTilemap(w, h, tileSize, tex, atlasCols, atlasRows)
	return id
}

// SetTile writes one cell of a tilemap. Unknown tilemap ids and
// out-of-range coordinates are silent no-ops.
func SetTile(b *bridge.State, tilemap uint32, x, y int, tile uint32) {
	tm, ok := b.Tilemaps[tilemap]
	if !ok {
		return
	}
	tm.SetTile(x, y, tile)
}

// GetTile reads one cell of a tilemap. Unknown tilemap ids and
// out-of-range coordinates return 0.
func GetTile(b *bridge.State, tilemap uint32, x, y int) uint32 {
	tm, ok := b.Tilemaps[tilemap]
	if !ok {
		return 0
	}
	return tm.GetTile(x, y)
}
