// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

import (
	"math"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/arcane-engine/arcane/bridge"
)

// apply executes one audio intent against the worker's live voice/bus
// state. Unknown sound/instance ids are a silent no-op, the same
// invalid-id recovery policy the ops table uses.
func (w *worker) apply(cmd bridge.AudioCommand) {
	switch c := cmd.(type) {
	case bridge.PlaySoundCommand:
		w.play(c.Sound, 0, c.Volume, c.Looping, bridge.BusSFX, false, 0, 0)
	case bridge.StopSoundCommand:
		w.stopSound(c.Sound)
	case bridge.StopAllSoundsCommand:
		w.stopAll()
	case bridge.SetMasterVolumeCommand:
		w.setMaster(c.Volume)
	case bridge.PlayInstanceCommand:
		w.play(c.Sound, c.Instance, c.Volume, c.Looping, c.Bus, c.Spatial, c.SourceX, c.SourceY)
	case bridge.StopInstanceCommand:
		w.stopInstance(c.Instance)
	case bridge.SetInstanceVolumeCommand:
		w.setInstanceVolume(c.Instance, c.Volume)
	case bridge.SetInstancePitchCommand:
		// Pitch shifting requires resampling the live stream, which
		// beep.Ctrl/effects.Volume don't expose; tracked as a gap until
		// a resampling voice wrapper is added.
	case bridge.UpdateSpatialPositionsCommand:
		for _, u := range c.Updates {
			w.updateSpatial(u.Instance, u.SourceX, u.SourceY, c.ListenerX, c.ListenerY)
		}
	case bridge.SetBusVolumeCommand:
		w.setBusVolume(c.Bus, c.Volume)
	}
}

func (w *worker) play(sound bridge.SoundID, instance bridge.InstanceID, volume float64, looping bool,
	bus bridge.AudioBus, spatial bool, sourceX, sourceY float64) {
	w.mu.Lock()
	buf, ok := w.buffers[sound]
	w.mu.Unlock()
	if !ok {
		return
	}

	var streamer beep.Streamer = buf.Streamer(0, buf.Len())
	if looping {
		streamer = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	ctrl := &beep.Ctrl{Streamer: streamer}
	gain := &effects.Volume{Streamer: ctrl, Base: 2}

	v := &voice{sound: sound, ctrl: ctrl, gain: gain, bus: bus, base: volume}
	w.mu.Lock()
	setVolume(gain, w.effectiveGain(v))
	if instance == 0 {
		// PlaySoundCommand carries no caller-chosen instance id; key it
		// under a synthetic id outside the script-addressable range so
		// stop_sound(sound) can still find and stop it.
		instance = w.nextAnon
		w.nextAnon++
	}
	w.voices[instance] = v
	w.mu.Unlock()

	speaker.Play(gain)
}

// stopSound stops every live voice playing id, whether it was started
// by play_sound (anonymous instance) or play_sound_ex/play_sound_spatial
// (caller-chosen instance).
func (w *worker) stopSound(id bridge.SoundID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	speaker.Lock()
	defer speaker.Unlock()
	for inst, v := range w.voices {
		if v.sound == id {
			v.ctrl.Paused = true
			delete(w.voices, inst)
		}
	}
}

func (w *worker) stopAll() {
	w.mu.Lock()
	defer w.mu.Unlock()
	speaker.Lock()
	for _, v := range w.voices {
		v.ctrl.Paused = true
	}
	speaker.Unlock()
	w.voices = make(map[bridge.InstanceID]*voice)
}

func (w *worker) stopInstance(id bridge.InstanceID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	v, ok := w.voices[id]
	if !ok {
		return
	}
	speaker.Lock()
	v.ctrl.Paused = true
	speaker.Unlock()
	delete(w.voices, id)
}

func (w *worker) setInstanceVolume(id bridge.InstanceID, volume float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	v, ok := w.voices[id]
	if !ok {
		return
	}
	v.base = volume
	speaker.Lock()
	setVolume(v.gain, w.effectiveGain(v))
	speaker.Unlock()
}

func (w *worker) setMaster(volume float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.master = volume
	speaker.Lock()
	for _, v := range w.voices {
		setVolume(v.gain, w.effectiveGain(v))
	}
	speaker.Unlock()
}

func (w *worker) setBusVolume(bus bridge.AudioBus, volume float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.busVols[bus] = volume
	speaker.Lock()
	for _, v := range w.voices {
		if v.bus == bus {
			setVolume(v.gain, w.effectiveGain(v))
		}
	}
	speaker.Unlock()
}

// updateSpatial recomputes a spatial voice's gain from the distance
// between source and listener: linear falloff to silence at
// spatialMaxDistance, clamped to [0,1]. Panning between ears is left to
// a future stereo-pan wrapper; only distance attenuation is implemented.
func (w *worker) updateSpatial(id bridge.InstanceID, sourceX, sourceY, listenerX, listenerY float64) {
	const spatialMaxDistance = 1000.0

	w.mu.Lock()
	defer w.mu.Unlock()
	v, ok := w.voices[id]
	if !ok {
		return
	}
	dx, dy := sourceX-listenerX, sourceY-listenerY
	dist := dx*dx + dy*dy
	attenuation := 1.0
	if dist > 0 {
		d := math.Sqrt(dist)
		attenuation = 1 - d/spatialMaxDistance
		if attenuation < 0 {
			attenuation = 0
		}
	}
	v.base = attenuation
	speaker.Lock()
	setVolume(v.gain, w.effectiveGain(v))
	speaker.Unlock()
}
