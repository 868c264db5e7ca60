// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"testing"

	"github.com/arcane-engine/arcane/bridge"
)

func TestCameraOpsRoundTrip(t *testing.T) {
	b := bridge.NewState()
	SetCamera(b, 5, 6, 2)
	x, y, zoom := GetCamera(b)
	if x != 5 || y != 6 || zoom != 2 {
		t.Fatalf("GetCamera() = (%v,%v,%v), want (5,6,2)", x, y, zoom)
	}

	SetCameraBounds(b, 0, 0, 100, 100)
	if _, _, _, _, ok := GetCameraBounds(b); !ok {
		t.Fatal("GetCameraBounds should report ok after SetCameraBounds")
	}

	ClearCameraBounds(b)
	if _, _, _, _, ok := GetCameraBounds(b); ok {
		t.Error("GetCameraBounds should report !ok after ClearCameraBounds")
	}
}
