// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/arcane-engine/arcane/bridge"
)

// saveKeyPattern is the allowed key grammar for save_file/load_file/delete_file.
var saveKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// savesDir returns <GameDir>/.arcane/saves.
func savesDir(b *bridge.State) string {
	return filepath.Join(b.GameDir, ".arcane", "saves")
}

// SaveFile writes value to <GameDir>/.arcane/saves/<key>.json, creating
// the directory if needed. Returns false without writing if key fails
// the [A-Za-z0-9_-]+ grammar or the write fails.
func SaveFile(b *bridge.State, key, value string) bool {
	if !saveKeyPattern.MatchString(key) {
		return false
	}
	dir := savesDir(b)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false
	}
	path := filepath.Join(dir, key+".json")
	if err := os.WriteFile(path, []byte(value), 0o644); err != nil {
		return false
	}
	return true
}

// LoadFile returns a saved value, or "" if key is invalid or unset.
func LoadFile(b *bridge.State, key string) string {
	if !saveKeyPattern.MatchString(key) {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(savesDir(b), key+".json"))
	if err != nil {
		return ""
	}
	return string(data)
}

// DeleteFile removes a saved value. A missing file or invalid key is a
// silent no-op.
func DeleteFile(b *bridge.State, key string) {
	if !saveKeyPattern.MatchString(key) {
		return
	}
	os.Remove(filepath.Join(savesDir(b), key+".json"))
}

// ListSaveFiles returns every saved key, sorted, with no .json suffix.
func ListSaveFiles(b *bridge.State) []string {
	entries, err := os.ReadDir(savesDir(b))
	if err != nil {
		return nil
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(keys)
	return keys
}
