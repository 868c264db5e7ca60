// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package host implements the single-threaded cooperative frame loop
// that owns the GPU device, the scripting isolate, an audio worker, a
// file-watcher, and input devices, and drives them through the bridge
// each frame: input snapshot → script invocation → bridge drain →
// render → present → edge-state reset.
//
// Two background threads run alongside the main loop: an audio worker
// consuming bridge.AudioCommand over a channel, and a debounced
// file-watcher that sets an atomic reload flag. Both communicate with
// the main loop only through a channel or an atomic, never a shared
// mutable structure, so the main loop never blocks on either.
package host
