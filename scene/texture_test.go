// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import "testing"

func TestTextureStoreLoadByPathIdempotent(t *testing.T) {
	s := NewTextureStore()
	id1, already1 := s.LoadByPath("sprites/hero.png")
	if already1 {
		t.Error("first load should not be already-loaded")
	}
	id2, already2 := s.LoadByPath("sprites/hero.png")
	if !already2 {
		t.Error("second load of same path should report already-loaded")
	}
	if id1 != id2 {
		t.Errorf("same path returned different handles: %v vs %v", id1, id2)
	}
}

func TestTextureStoreSolidByNameIdempotent(t *testing.T) {
	s := NewTextureStore()
	id1, _ := s.SolidByName("flash-white")
	id2, already := s.SolidByName("flash-white")
	if !already || id1 != id2 {
		t.Error("SolidByName must return the same handle for the same name")
	}
}

func TestTextureStoreMarkUploaded(t *testing.T) {
	s := NewTextureStore()
	id := s.Reserve(false)
	s.MarkUploaded(id, 64, 64, true, FilterNearest)
	info, ok := s.Info(id)
	if !ok || !info.Loaded || info.Width != 64 || info.Filter != FilterNearest {
		t.Errorf("unexpected info after upload: %+v", info)
	}
}

func TestTilemapAtlasCellFormula(t *testing.T) {
	tm := NewTilemap(1, 1, 16, 1, 4, 4)
	cases := []struct {
		id        uint32
		col, row  int
	}{
		{1, 0, 0},
		{4, 3, 0},
		{5, 0, 1},
		{16, 3, 3},
	}
	for _, c := range cases {
		col, row := tm.AtlasCell(c.id)
		if col != c.col || row != c.row {
			t.Errorf("AtlasCell(%d) = (%d,%d), want (%d,%d)", c.id, col, row, c.col, c.row)
		}
	}
}

func TestTilemapSetGetTileOutOfRange(t *testing.T) {
	tm := NewTilemap(2, 2, 16, 1, 1, 1)
	tm.SetTile(5, 5, 9) // no-op, out of range
	if got := tm.GetTile(5, 5); got != 0 {
		t.Errorf("out-of-range GetTile = %d, want 0", got)
	}
	tm.SetTile(1, 1, 3)
	if got := tm.GetTile(1, 1); got != 3 {
		t.Errorf("GetTile(1,1) = %d, want 3", got)
	}
}

func TestTilemapBakeVisibleSkipsEmptyTiles(t *testing.T) {
	tm := NewTilemap(2, 1, 16, 1, 2, 1)
	tm.SetTile(1, 0, 1) // tile (0,0) left as empty

	cmds := tm.BakeVisible(0, 0, Point2{0, 0}, Point2{100, 100}, 0)
	if len(cmds) != 1 {
		t.Fatalf("got %d sprite commands, want 1", len(cmds))
	}
	if cmds[0].X != 16 {
		t.Errorf("baked tile X = %v, want 16", cmds[0].X)
	}
}
