// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package bridge holds the per-frame scratch structure that sits
// between a script callback and the host's drain step: draw command
// buffers, queued asset/shader/effect creation requests, the audio
// command stream, the input snapshot, and the camera.
//
// Ownership follows a single-owner discipline with no locking: the
// script mutates State exclusively during its frame callback, then the
// host drains it exclusively during the frame's drain step (§4.5).
// Only one party ever holds a mutable reference at a time, the same
// RefCell-style borrow discipline the design notes describe, enforced
// here simply by the host never calling into the script concurrently
// with its own drain.
//
// Rather than double-buffering sprite/geometry/SDF/lighting/GI
// commands through a separate bridge-side queue before copying them
// into the renderer's own buffers, ops write directly into the
// embedded render.Scene, scene.LightingState, and scene.GIState — those
// types already implement the reserve/accumulate/clear semantics the
// drain step would otherwise re-implement. The "drain" of those four
// streams is therefore the host simply reading State.Scene/Lighting/GI
// after the callback returns, not a copy.
package bridge

import (
	"github.com/arcane-engine/arcane/physics"
	"github.com/arcane-engine/arcane/render"
	"github.com/arcane-engine/arcane/scene"
)

// State is the per-frame/per-isolate bridge. One State is created per
// scripting isolate and reused across frames; HotReloadReset clears the
// parts that must not survive a reload while preserving id caches.
type State struct {
	// Draw buffers, written directly by ops, read by the renderer after
	// the callback returns.
	Scene    *render.Scene
	Lighting scene.LightingState
	GI       scene.GIState

	// Camera.
	Camera CameraState

	// Asset/shader/effect creation, drained by the host in §4.5 step 6
	// order: textures, fonts, shaders, effects.
	TextureLoads  []TextureLoadRequest
	RawUploads    []RawTextureUpload
	FontRequests  []FontTextureRequest
	SoundLoads    []SoundLoadRequest
	ShaderCreates []ShaderCreateRequest
	ShaderParams  []ShaderParamUpdate
	EffectCreates []EffectCreateRequest
	EffectParams  []EffectParamUpdate
	EffectRemoves []EffectRemoveRequest
	EffectClear   bool

	// Audio, forwarded to the audio worker each frame.
	AudioCommands []AudioCommand

	// Input, filled by the host before the callback; read-only to the script.
	Input *InputSnapshot

	// Process-lifetime, reload-surviving caches and allocators.
	Textures *scene.TextureStore
	Sounds   *SoundStore
	Tilemaps   map[uint32]*scene.Tilemap
	TilemapIDs *IDAllocator
	Shaders  *IDAllocator
	Effects  *IDAllocator
	Emitters *IDAllocator

	// EmitterConfigs holds each live emitter's opaque config_json, keyed
	// by its Emitters-allocated id. The emitter DSL itself is an external
	// collaborator; only this command interface into it lives here.
	EmitterConfigs map[uint32]string

	// Physics is nil until the script creates one; destroy_physics_world
	// sets it back to nil rather than leaving an empty World around.
	Physics *physics.World

	// GameDir is the project root save_file/load_file/delete_file resolve
	// against (<GameDir>/.arcane/saves/<key>.json). Set once by the host
	// at startup and untouched by ClearTransient/HotReloadReset, matching
	// the hot-reload invariant that the save-file directory survives a
	// reload.
	GameDir string

	DeltaTime float64
}

// NewState creates a fresh bridge with all process-lifetime stores
// initialized.
func NewState() *State {
	return &State{
		Scene:    render.NewScene(),
		GI:       scene.NewGIState(),
		Input:    NewInputSnapshot(),
		Camera:   NewCameraState(),
		Textures: scene.NewTextureStore(),
		Sounds:   NewSoundStore(),
		Tilemaps:   make(map[uint32]*scene.Tilemap),
		TilemapIDs: NewIDAllocator(),
		Shaders:  NewIDAllocator(),
		Effects:  NewIDAllocator(),
		Emitters: NewIDAllocator(),
		EmitterConfigs: make(map[uint32]string),
	}
}

// ClearTransient clears every per-frame queue and draw buffer without
// touching process-lifetime caches (id allocators, path caches,
// tilemaps). Called after the host has fully drained a frame, and
// again as part of HotReloadReset.
func (s *State) ClearTransient() {
	s.Scene.Reset()
	s.Lighting.Reset()
	s.GI.Reset()

	s.TextureLoads = nil
	s.RawUploads = nil
	s.FontRequests = nil
	s.SoundLoads = nil
	s.ShaderCreates = nil
	s.ShaderParams = nil
	s.EffectCreates = nil
	s.EffectParams = nil
	s.EffectRemoves = nil
	s.EffectClear = false

	s.AudioCommands = nil
}

// HotReloadReset applies the hot-reload invariant from §4.5: texture id
// allocations, sound id allocations, tilemap contents, and the save-file
// directory survive; the solid-color texture name cache, sound path
// cache, the shader id allocator, all post-process effects, GI scene
// lists, and sprite/geometry/SDF command buffers are cleared.
func (s *State) HotReloadReset() {
	s.ClearTransient()
	s.Textures.ClearSolidCache()
	s.Sounds.byPath = make(map[string]SoundID)
	s.Shaders = NewIDAllocator()
	s.Effects = NewIDAllocator()
}

// QueueTextureLoad records a deferred file-backed texture upload.
func (s *State) QueueTextureLoad(id scene.TextureID, path string) {
	s.TextureLoads = append(s.TextureLoads, TextureLoadRequest{ID: id, Path: path})
}

// QueueRawUpload records a deferred caller-supplied pixel upload.
func (s *State) QueueRawUpload(id scene.TextureID, w, h int, pixels []byte, name string) {
	s.RawUploads = append(s.RawUploads, RawTextureUpload{ID: id, Width: w, Height: h, Pixels: pixels, Name: name})
}

// QueueFontTexture records a deferred font atlas build+upload.
func (s *State) QueueFontTexture(id scene.TextureID, source string, isMSDF bool) {
	s.FontRequests = append(s.FontRequests, FontTextureRequest{ID: id, Source: source, IsMSDF: isMSDF})
}

// QueueSoundLoad records a deferred sound file decode+cache.
func (s *State) QueueSoundLoad(id SoundID, path string) {
	s.SoundLoads = append(s.SoundLoads, SoundLoadRequest{ID: id, Path: path})
}

// QueueShaderCreate records a deferred user shader compile.
func (s *State) QueueShaderCreate(id scene.ShaderID, name, source string) {
	s.ShaderCreates = append(s.ShaderCreates, ShaderCreateRequest{ID: id, Name: name, Source: source})
}

// QueueShaderParam records a deferred shader uniform-slot write.
func (s *State) QueueShaderParam(id scene.ShaderID, index int, x, y, z, w float64) {
	s.ShaderParams = append(s.ShaderParams, ShaderParamUpdate{Shader: id, Index: index, X: x, Y: y, Z: z, W: w})
}

// QueueEffectCreate records a deferred post-process effect append.
func (s *State) QueueEffectCreate(id EffectID, kind render.Effect) {
	s.EffectCreates = append(s.EffectCreates, EffectCreateRequest{ID: id, Kind: kind})
}

// QueueEffectParam records a deferred effect parameter-slot write.
func (s *State) QueueEffectParam(id EffectID, index int, v [4]float64) {
	s.EffectParams = append(s.EffectParams, EffectParamUpdate{Effect: id, Index: index, Value: v})
}

// QueueEffectRemove records a deferred effect removal.
func (s *State) QueueEffectRemove(id EffectID) {
	s.EffectRemoves = append(s.EffectRemoves, EffectRemoveRequest{Effect: id})
}

// QueueAudio appends an audio intent, preserving submission order for
// the worker's FIFO drain.
func (s *State) QueueAudio(cmd AudioCommand) {
	s.AudioCommands = append(s.AudioCommands, cmd)
}
