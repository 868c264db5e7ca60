// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/arcane-engine/arcane"
	"github.com/arcane-engine/arcane/bridge"
)

// sampleRate is the mixer's fixed output rate; every decoded buffer is
// resampled to it at load time.
const sampleRate = beep.SampleRate(44100)

// voice is one live sound instance: the gain control the worker tunes
// on set_instance_volume/set_bus_volume/spatial updates, and the bus it
// mixes into.
type voice struct {
	sound bridge.SoundID
	ctrl  *beep.Ctrl
	gain  *effects.Volume
	bus   bridge.AudioBus
	base  float64 // the instance's own volume, before bus/master scaling
}

// worker owns the speaker, the decoded-sound cache, and every live
// voice. It runs on its own goroutine, consuming bridge.AudioCommand
// off cmds until closed — the same blocking-receive-over-a-channel
// shape as a file-watcher debouncer, generalized from "wake on an
// event" to "wake on a command".
type worker struct {
	cmds  chan bridge.AudioCommand
	loads chan bridge.SoundLoadRequest
	done  chan struct{}

	mu       sync.Mutex
	master   float64
	busVols  map[bridge.AudioBus]float64
	buffers  map[bridge.SoundID]*beep.Buffer
	voices   map[bridge.InstanceID]*voice
	nextAnon bridge.InstanceID // synthetic keys for fire-and-forget plays, beyond the script-addressable id range
}

func newWorker() *worker {
	return &worker{
		cmds:     make(chan bridge.AudioCommand, 256),
		loads:    make(chan bridge.SoundLoadRequest, 64),
		done:     make(chan struct{}),
		master:   1,
		busVols:  map[bridge.AudioBus]float64{bridge.BusSFX: 1, bridge.BusMusic: 1, bridge.BusAmbient: 1, bridge.BusVoice: 1},
		buffers:  make(map[bridge.SoundID]*beep.Buffer),
		voices:   make(map[bridge.InstanceID]*voice),
		nextAnon: bridge.MaxExactInstanceID + 1,
	}
}

// start initializes the speaker and launches the worker goroutine. It
// must be called at most once per process — speaker.Init panics on a
// second call.
func (w *worker) start() error {
	if err := speaker.Init(sampleRate, sampleRate.N(1e9/60*2)); err != nil {
		return fmt.Errorf("host: audio speaker init: %w", err)
	}
	go w.run()
	return nil
}

// submit enqueues cmd for the worker, preserving submission order.
func (w *worker) submit(cmd bridge.AudioCommand) {
	select {
	case w.cmds <- cmd:
	case <-w.done:
	}
}

// queueLoad asks the worker to decode req off the main thread. Decoding
// happens on the worker goroutine so a large file doesn't stall a frame.
func (w *worker) queueLoad(req bridge.SoundLoadRequest) {
	select {
	case w.loads <- req:
	case <-w.done:
	}
}

// stop signals the worker goroutine to exit by closing done. It returns
// at once: it does not wait for the goroutine to finish, and commands
// still buffered in cmds are not applied.
func (w *worker) stop() {
	close(w.done)
}

func (w *worker) run() {
	for {
		select {
		case <-w.done:
			return
		case cmd := <-w.cmds:
			w.apply(cmd)
		case req := <-w.loads:
			if _, err := w.loadBuffer(req.ID, req.Path); err != nil {
				arcane.Logger().Warn("host: sound decode failed", "path", req.Path, "err", err)
			}
		}
	}
}

// decode loads and decodes a sound file by extension (.wav or .mp3),
// resampling it to sampleRate and buffering the whole thing in memory —
// sound effects and short music loops are expected to be small enough
// that streaming from disk per-play isn't worth the complexity.
func decode(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: format.NumChannels, Precision: format.Precision})
	resampled := beep.Resample(4, format.SampleRate, sampleRate, streamer)
	buf.Append(resampled)
	return buf, nil
}

func (w *worker) loadBuffer(id bridge.SoundID, path string) (*beep.Buffer, error) {
	w.mu.Lock()
	if buf, ok := w.buffers[id]; ok {
		w.mu.Unlock()
		return buf, nil
	}
	w.mu.Unlock()

	buf, err := decode(path)
	if err != nil {
		return nil, err
	}
	w.mu.Lock()
	w.buffers[id] = buf
	w.mu.Unlock()
	return buf, nil
}

// effectiveGain recomputes a voice's speaker-facing gain from master,
// bus, and instance volume, matching EffectiveVolume's product rule.
func (w *worker) effectiveGain(v *voice) float64 {
	return bridge.EffectiveVolume(w.master, w.busVols[v.bus], v.base)
}

// setVolume converts a linear [0,1] gain to beep's base-2 log-volume
// units; 0 maps to silence rather than -Inf.
func setVolume(g *effects.Volume, linear float64) {
	if linear <= 0 {
		g.Silent = true
		return
	}
	g.Silent = false
	g.Volume = math.Log2(linear)
}
