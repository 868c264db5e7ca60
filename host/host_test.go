// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

import (
	"errors"
	"os"
	"testing"

	"github.com/arcane-engine/arcane/bridge"
	arcolor "github.com/arcane-engine/arcane/color"
	"github.com/arcane-engine/arcane/ops"
	"github.com/arcane-engine/arcane/render"
	"github.com/arcane-engine/arcane/scene"
)

// fakeIsolate lets a test control what the "script" does each frame.
type fakeIsolate struct {
	onRun    func(*bridge.State) error
	closed   bool
	closeErr error
}

func (f *fakeIsolate) Run(s *bridge.State) error {
	if f.onRun == nil {
		return nil
	}
	return f.onRun(s)
}

func (f *fakeIsolate) Close() error {
	f.closed = true
	return f.closeErr
}

func newTestHost(t *testing.T, iso Isolate) *Host {
	t.Helper()
	h, err := New(Config{GameDir: t.TempDir(), Width: 64, Height: 64}, iso,
		render.NewSoftwareRenderer(), render.NewPixmapTarget(64, 64))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return h
}

func TestRunFrameDrawsAndClearsTransientState(t *testing.T) {
	iso := &fakeIsolate{onRun: func(s *bridge.State) error {
		ops.DrawSprite(s, scene.TextureID(1), 10, 10, 8, 8, 0,
			0, 0, 1, 1, arcolor.RGB(1, 1, 1), 0, 0, 0,
			false, false, 1, scene.BlendAlpha, scene.ShaderID(0))
		return nil
	}}
	h := newTestHost(t, iso)

	if err := h.RunFrame(1.0 / 60); err != nil {
		t.Fatalf("RunFrame: %v", err)
	}
	if !h.state.Scene.IsEmpty() {
		t.Fatalf("expected scene cleared after frame, got %d sprites", len(h.state.Scene.Sprites))
	}
	if h.state.DeltaTime != 1.0/60 {
		t.Fatalf("delta_time = %v", h.state.DeltaTime)
	}
}

func TestRunFrameScriptErrorWritesSnapshotAndContinues(t *testing.T) {
	wantErr := errors.New("boom")
	iso := &fakeIsolate{onRun: func(s *bridge.State) error { return wantErr }}
	h := newTestHost(t, iso)

	if err := h.RunFrame(0.016); err != nil {
		t.Fatalf("RunFrame should swallow script errors, got: %v", err)
	}

	entries, err := os.ReadDir(h.cfg.GameDir + "/.arcane/snapshots")
	if err != nil {
		t.Fatalf("reading snapshot dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one error snapshot, got %d", len(entries))
	}
}

func TestForceReloadSwapsIsolateInLIFOOrder(t *testing.T) {
	old := &fakeIsolate{}
	h := newTestHost(t, old)

	newIso := &fakeIsolate{}
	h.RequestReload(func() (Isolate, error) { return newIso, nil })
	h.ForceReload()

	if err := h.RunFrame(0.016); err != nil {
		t.Fatalf("RunFrame: %v", err)
	}
	if !old.closed {
		t.Fatal("expected old isolate closed before replacement ran")
	}
	if h.isolate != newIso {
		t.Fatal("expected isolate swapped to the reload factory's result")
	}
}

func TestRunFrameDrainsAudioCommandsToWorker(t *testing.T) {
	id := bridge.SoundID(1)
	iso := &fakeIsolate{onRun: func(s *bridge.State) error {
		ops.PlaySound(s, id, 1.0, false)
		return nil
	}}
	h := newTestHost(t, iso)

	if err := h.RunFrame(0.016); err != nil {
		t.Fatalf("RunFrame: %v", err)
	}
	if len(h.state.AudioCommands) != 0 {
		t.Fatalf("expected audio commands drained from bridge, got %d left", len(h.state.AudioCommands))
	}
}
