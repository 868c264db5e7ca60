// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"testing"

	"github.com/arcane-engine/arcane/bridge"
)

func TestTileSetGetRoundTrip(t *testing.T) {
	b := bridge.NewState()
	tex := LoadTexture(b, "atlas.png")
	tm := CreateTilemap(b, tex, 4, 4, 16, 4, 4)

	SetTile(b, tm, 1, 2, 7)
	if got := GetTile(b, tm, 1, 2); got != 7 {
		t.Errorf("GetTile() = %v, want 7", got)
	}
}

func TestTileUnknownTilemapNoopsAndReturnsZero(t *testing.T) {
	b := bridge.NewState()
	SetTile(b, 999, 0, 0, 5) // must not panic
	if got := GetTile(b, 999, 0, 0); got != 0 {
		t.Errorf("GetTile(unknown id) = %v, want 0", got)
	}
}
