// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"testing"

	"github.com/arcane-engine/arcane/bridge"
)

func TestLoadSoundIsIdempotentByPath(t *testing.T) {
	b := bridge.NewState()
	a := LoadSound(b, "jump.wav")
	again := LoadSound(b, "jump.wav")
	if a != again {
		t.Errorf("LoadSound(same path) = %v, %v, want equal ids", a, again)
	}
}

func TestPlayAndStopSoundQueueCommands(t *testing.T) {
	b := bridge.NewState()
	id := LoadSound(b, "jump.wav")
	PlaySound(b, id, 0.8, false)
	StopSound(b, id)
	StopAllSounds(b)
	SetMasterVolume(b, 0.5)
	if len(b.AudioCommands) != 4 {
		t.Fatalf("len(AudioCommands) = %d, want 4", len(b.AudioCommands))
	}
	if _, ok := b.AudioCommands[0].(bridge.PlaySoundCommand); !ok {
		t.Errorf("AudioCommands[0] = %T, want PlaySoundCommand", b.AudioCommands[0])
	}
}

func TestPlaySoundExAndSpatialQueuePlayInstanceCommand(t *testing.T) {
	b := bridge.NewState()
	id := LoadSound(b, "engine.wav")
	PlaySoundEx(b, id, 42, 1, true, bridge.BusSFX, 0, 1, 0, 0, 0)
	PlaySoundSpatial(b, id, 43, 1, false, bridge.BusSFX, 1, 0, 0, 0, 10, 10, 0, 0)

	cmd, ok := b.AudioCommands[1].(bridge.PlayInstanceCommand)
	if !ok {
		t.Fatalf("AudioCommands[1] = %T, want PlayInstanceCommand", b.AudioCommands[1])
	}
	if !cmd.Spatial || cmd.SourceX != 10 {
		t.Errorf("PlaySoundSpatial command = %+v, want Spatial with SourceX=10", cmd)
	}
}

func TestStopInstanceVolumePitchQueueCommands(t *testing.T) {
	b := bridge.NewState()
	StopInstance(b, 1)
	SetInstanceVolume(b, 1, 0.5)
	SetInstancePitch(b, 1, 1.2)
	SetBusVolume(b, bridge.BusMusic, 0.3)
	if len(b.AudioCommands) != 4 {
		t.Fatalf("len(AudioCommands) = %d, want 4", len(b.AudioCommands))
	}
}

func TestUpdateSpatialPositionsDecodesJSONBatch(t *testing.T) {
	b := bridge.NewState()
	UpdateSpatialPositions(b, `[{"instance":1,"x":5,"y":6},{"instance":2,"x":7,"y":8}]`, 0, 0)
	cmd, ok := b.AudioCommands[0].(bridge.UpdateSpatialPositionsCommand)
	if !ok {
		t.Fatalf("AudioCommands[0] = %T, want UpdateSpatialPositionsCommand", b.AudioCommands[0])
	}
	if len(cmd.Updates) != 2 || cmd.Updates[0].SourceX != 5 {
		t.Errorf("Updates = %+v, unexpected", cmd.Updates)
	}
}

func TestUpdateSpatialPositionsMalformedBatchDropped(t *testing.T) {
	b := bridge.NewState()
	UpdateSpatialPositions(b, `not json`, 0, 0)
	if len(b.AudioCommands) != 0 {
		t.Errorf("len(AudioCommands) = %d, want 0 for a malformed batch", len(b.AudioCommands))
	}
}

func TestEffectiveVolumeMixesBuses(t *testing.T) {
	if got := bridge.EffectiveVolume(0.5, 0.5, 0.8); got != 0.2 {
		t.Errorf("EffectiveVolume(0.5,0.5,0.8) = %v, want 0.2", got)
	}
}
