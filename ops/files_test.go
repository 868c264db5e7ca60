// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"testing"

	"github.com/arcane-engine/arcane/bridge"
)

func TestSaveLoadDeleteRoundTrip(t *testing.T) {
	b := bridge.NewState()
	b.GameDir = t.TempDir()

	if !SaveFile(b, "slot1", `{"level":3}`) {
		t.Fatal("SaveFile should succeed for a valid key")
	}
	if got := LoadFile(b, "slot1"); got != `{"level":3}` {
		t.Errorf("LoadFile() = %q, want the saved value", got)
	}

	DeleteFile(b, "slot1")
	if got := LoadFile(b, "slot1"); got != "" {
		t.Errorf("LoadFile(deleted key) = %q, want \"\"", got)
	}
}

func TestSaveFileRejectsInvalidKey(t *testing.T) {
	b := bridge.NewState()
	b.GameDir = t.TempDir()

	if SaveFile(b, "bad key!", "x") {
		t.Error("SaveFile should reject a key with spaces/punctuation")
	}
	if LoadFile(b, "bad key!") != "" {
		t.Error("LoadFile should return \"\" for an invalid key")
	}
}

func TestListSaveFilesSortedKeys(t *testing.T) {
	b := bridge.NewState()
	b.GameDir = t.TempDir()

	SaveFile(b, "bravo", "2")
	SaveFile(b, "alpha", "1")

	keys := ListSaveFiles(b)
	if len(keys) != 2 || keys[0] != "alpha" || keys[1] != "bravo" {
		t.Errorf("ListSaveFiles() = %v, want [alpha bravo]", keys)
	}
}

func TestListSaveFilesEmptyDirReturnsNil(t *testing.T) {
	b := bridge.NewState()
	b.GameDir = t.TempDir()
	if keys := ListSaveFiles(b); len(keys) != 0 {
		t.Errorf("ListSaveFiles(empty) = %v, want empty", keys)
	}
}
