// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"encoding/json"

	"github.com/arcane-engine/arcane/bridge"
)

// LoadSound reserves (or reuses) a handle for a sound file. Idempotent
// by resolved path.
func LoadSound(b *bridge.State, path string) bridge.SoundID {
	id, alreadyLoaded := b.Sounds.LoadByPath(path)
	if !alreadyLoaded {
		b.QueueSoundLoad(id, path)
	}
	return id
}

// PlaySound queues a one-shot or looping playback on the default bus
// with no caller-chosen instance id (fire-and-forget).
func PlaySound(b *bridge.State, id bridge.SoundID, volume float64, looping bool) {
	b.QueueAudio(bridge.PlaySoundCommand{Sound: id, Volume: volume, Looping: looping})
}

// StopSound stops every playing instance of a sound.
func StopSound(b *bridge.State, id bridge.SoundID) {
	b.QueueAudio(bridge.StopSoundCommand{Sound: id})
}

// StopAllSounds stops every instance on every bus.
func StopAllSounds(b *bridge.State) {
	b.QueueAudio(bridge.StopAllSoundsCommand{})
}

// SetMasterVolume scales every bus's output.
func SetMasterVolume(b *bridge.State, v float64) {
	b.QueueAudio(bridge.SetMasterVolumeCommand{Volume: v})
}

// PlaySoundEx starts a caller-identified voice with full mixer/DSP parameters.
func PlaySoundEx(b *bridge.State, sound bridge.SoundID, instance bridge.InstanceID, volume float64,
	looping bool, bus bridge.AudioBus, pan, pitch, lowPassFreq, reverbMix, reverbDelayMS float64) {
	b.QueueAudio(bridge.PlayInstanceCommand{
		Sound: sound, Instance: instance, Volume: volume, Looping: looping, Bus: bus,
		Pan: pan, Pitch: pitch, LowPassFreq: lowPassFreq, ReverbMix: reverbMix, ReverbDelayMS: reverbDelayMS,
	})
}

// PlaySoundSpatial starts a caller-identified voice whose volume/pan the
// worker derives from the source/listener positions instead of the
// explicit Pan field.
func PlaySoundSpatial(b *bridge.State, sound bridge.SoundID, instance bridge.InstanceID, volume float64,
	looping bool, bus bridge.AudioBus, pitch, lowPassFreq, reverbMix, reverbDelayMS float64,
	sourceX, sourceY, listenerX, listenerY float64) {
	b.QueueAudio(bridge.PlayInstanceCommand{
		Sound: sound, Instance: instance, Volume: volume, Looping: looping, Bus: bus,
		Pitch: pitch, LowPassFreq: lowPassFreq, ReverbMix: reverbMix, ReverbDelayMS: reverbDelayMS,
		Spatial: true, SourceX: sourceX, SourceY: sourceY, ListenerX: listenerX, ListenerY: listenerY,
	})
}

// StopInstance stops one caller-identified voice.
func StopInstance(b *bridge.State, instance bridge.InstanceID) {
	b.QueueAudio(bridge.StopInstanceCommand{Instance: instance})
}

// SetInstanceVolume updates one voice's volume without restarting it.
func SetInstanceVolume(b *bridge.State, instance bridge.InstanceID, volume float64) {
	b.QueueAudio(bridge.SetInstanceVolumeCommand{Instance: instance, Volume: volume})
}

// SetInstancePitch updates one voice's pitch without restarting it.
func SetInstancePitch(b *bridge.State, instance bridge.InstanceID, pitch float64) {
	b.QueueAudio(bridge.SetInstancePitchCommand{Instance: instance, Pitch: pitch})
}

// spatialUpdateJSON is the wire shape of one entry in
// UpdateSpatialPositions' JSON batch argument.
type spatialUpdateJSON struct {
	Instance bridge.InstanceID `json:"instance"`
	X        float64           `json:"x"`
	Y        float64           `json:"y"`
}

// UpdateSpatialPositions refreshes source positions for a batch of
// already-playing spatial instances, decoding the variable-length batch
// from a JSON array argument per the typed-RPC-surface design note.
// A malformed batch is dropped silently, the same invalid-input
// recovery policy as an unknown id.
func UpdateSpatialPositions(b *bridge.State, jsonBatch string, listenerX, listenerY float64) {
	var entries []spatialUpdateJSON
	if err := json.Unmarshal([]byte(jsonBatch), &entries); err != nil {
		return
	}
	updates := make([]bridge.SpatialUpdate, len(entries))
	for i, e := range entries {
		updates[i] = bridge.SpatialUpdate{Instance: e.Instance, SourceX: e.X, SourceY: e.Y}
	}
	b.QueueAudio(bridge.UpdateSpatialPositionsCommand{Updates: updates, ListenerX: listenerX, ListenerY: listenerY})
}

// SetBusVolume scales every instance currently assigned to bus.
func SetBusVolume(b *bridge.State, bus bridge.AudioBus, v float64) {
	b.QueueAudio(bridge.SetBusVolumeCommand{Bus: bus, Volume: v})
}
