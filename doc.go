// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package arcane is the root of a 2D game engine built around three cores:
//
//   - physics: a fixed-timestep 2D rigid-body world (broadphase, narrowphase,
//     a sequential-impulse contact solver with warm-starting and friction
//     anchors, and joint constraints).
//   - render: a layered GPU renderer that interleaves sprite, vector, and
//     signed-distance-field draws by layer, with per-shape pipeline
//     specialization, off-screen targets, post-process ping-pong, and an
//     optional radiance-cascade global-illumination pass.
//   - host: a frame-driven runtime owning the GPU device, a scripting
//     isolate, an audio worker, input devices, and a file watcher, threaded
//     through a single-threaded event loop with cooperative hot-reload.
//
// The bridge and ops packages form the thin command layer that lets an
// embedded script program the three cores: bridge holds the per-frame
// scratch state a script fills and the host drains; ops is the flat,
// typed function table a script runtime dispatches by name.
//
// This root package itself holds only the engine-wide logger, which the
// host package logs through without an import cycle back here.
package arcane
