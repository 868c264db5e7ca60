// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ops implements the flat script-callable function table: draw,
// camera, texture, tilemap, lighting, GI, shader, effect, audio, input,
// save-file, physics, and particle operations. Each function takes the
// *bridge.State it reads or mutates (the physics world and the save
// directory are reached through it) plus scalar/string arguments and
// returns the stated
// result — a typed RPC surface with no reflection, matching the design
// note that an embedded script runtime need only call these by name.
//
// Handle allocation for textures/sounds/shaders/effects/tilemaps is
// always host-side and immediate: an op reserves an id and returns it
// before any deferred GPU/file work completes, which the caller's
// frame-end drain (package host) performs from the queues these ops
// populate on *bridge.State.
package ops
