// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// errorSnapshot is the JSON shape written to
// <GameDir>/.arcane/snapshots/<ms>.json when a script callback returns
// an error.
type errorSnapshot struct {
	Error    string `json:"error"`
	Snapshot any    `json:"snapshot"`
}

// writeErrorSnapshot records a script failure to disk so a crash can be
// diagnosed after the fact without interrupting the frame loop — the
// frame that failed simply continues with empty command buffers.
func writeErrorSnapshot(gameDir string, scriptErr error, snapshot any) error {
	dir := filepath.Join(gameDir, ".arcane", "snapshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(errorSnapshot{Error: scriptErr.Error(), Snapshot: snapshot})
	if err != nil {
		return err
	}
	name := filepath.Join(dir, strconv.FormatInt(time.Now().UnixMilli(), 10)+".json")
	return os.WriteFile(name, data, 0o644)
}
