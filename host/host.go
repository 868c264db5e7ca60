// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

import (
	"image"
	"sync/atomic"

	"github.com/arcane-engine/arcane"
	"github.com/arcane-engine/arcane/bridge"
	"github.com/arcane-engine/arcane/render"
	"github.com/arcane-engine/arcane/scene"
)

// Isolate is one live instance of the embedded script runtime. The
// engine treats the script engine itself as an external collaborator —
// only the interface a host needs to drive it each frame is specified
// here, the same way the MSDF font generator and particle DSL are
// external collaborators the bridge only carries commands to.
type Isolate interface {
	// Run invokes the script's per-frame callback, writing into state.
	// A returned error is caught by the host: it writes an error
	// snapshot, discards everything the bridge accumulated this frame,
	// and skips that frame's render; the next frame runs normally.
	Run(state *bridge.State) error
	// Close tears the isolate down. Called before a replacement isolate
	// is created during hot-reload, enforcing the strict LIFO discipline
	// isolates that keep an enter/exit stack require.
	Close() error
}

// AssetUploader is the optional capability a Renderer implements to
// consume the bridge's deferred texture-load and raw-upload queues,
// mirroring the CapableRenderer pattern the renderer package already
// uses for its own optional Capabilities method — a renderer that
// doesn't implement it (e.g. a headless test double) simply has its
// queues logged and skipped rather than the host assuming every
// renderer can upload a texture.
type AssetUploader interface {
	UploadTexture(id scene.TextureID, path string) error
	UploadRawTexture(id scene.TextureID, width, height int, pixels []byte) error
}

// ShaderUploader is the optional capability a Renderer implements to
// consume the bridge's deferred user-shader creation and parameter
// queues, mirroring AssetUploader — a renderer without a shader concept
// (e.g. SoftwareRenderer) simply has its queued requests logged and
// skipped.
type ShaderUploader interface {
	CreateShader(id scene.ShaderID, name, source string)
	SetShaderParam(id scene.ShaderID, index int, x, y, z, w float64)
}

// Config configures a Host.
type Config struct {
	// GameDir is the project root save_file/load_file/delete_file and
	// the script source live under; also anchors error snapshots.
	GameDir string
	// Width, Height are the initial render target size in pixels.
	Width, Height int
}

// Host owns the bridge, the live isolate, the renderer/target pair, the
// post-process chain, and the audio worker, and drives them through one
// frame at a time via RunFrame. It performs no windowing of its own —
// see Window for the glfw-backed input/present loop that normally
// drives RunFrame once per vsync tick.
type Host struct {
	cfg Config

	state    *bridge.State
	isolate  Isolate
	renderer render.Renderer
	target   render.RenderTarget
	postFX   *render.PostProcessChain

	// effectIndex maps the stable EffectID a script holds to postFX's
	// current slice index for that instance, since PostProcessChain
	// itself is purely index-based and has no notion of a stable handle.
	effectIndex map[bridge.EffectID]int

	audio   *worker
	watcher *watcher

	pendingIsolate func() (Isolate, error)
	reloadPending  atomic.Bool
}

// New creates a Host with an initial isolate already running, a
// renderer/target pair to draw into, and the audio worker and
// file-watcher started.
func New(cfg Config, initial Isolate, renderer render.Renderer, target render.RenderTarget) (*Host, error) {
	h := &Host{
		cfg:      cfg,
		state:    bridge.NewState(),
		isolate:  initial,
		renderer:    renderer,
		target:      target,
		postFX:      render.NewPostProcessChain(target.Width(), target.Height()),
		effectIndex: make(map[bridge.EffectID]int),
		audio:       newWorker(),
	}
	h.state.GameDir = cfg.GameDir

	if err := h.audio.start(); err != nil {
		return nil, err
	}
	w, err := newWatcher(cfg.GameDir)
	if err != nil {
		arcane.Logger().Warn("host: file watcher disabled", "err", err)
	} else {
		h.watcher = w
	}
	return h, nil
}

// RequestReload installs factory and marks a reload as pending: the next
// RunFrame drops the current isolate and replaces it with one built by
// factory. Later file-watcher triggers and ForceReload calls reuse the
// same factory.
func (h *Host) RequestReload(factory func() (Isolate, error)) {
	h.pendingIsolate = factory
	h.reloadPending.Store(true)
}

// ForceReload marks a reload as needed for the next frame regardless of
// the file-watcher's state, used by a test harness or a manual
// reload keybinding.
func (h *Host) ForceReload() {
	h.reloadPending.Store(true)
}

// State exposes the bridge for a Window/input pump to fill before
// RunFrame, and for tests to inspect after it.
func (h *Host) State() *bridge.State { return h.state }

// Target returns the render target RunFrame draws into, for a caller
// that needs to present or save it (e.g. swapping a window's buffers,
// or encoding a headless run's last frame to disk).
func (h *Host) Target() render.RenderTarget { return h.target }

// Close tears down the audio worker and file watcher and closes the
// live isolate.
func (h *Host) Close() error {
	h.audio.stop()
	if h.watcher != nil {
		h.watcher.stop()
	}
	return h.isolate.Close()
}

// RunFrame executes one full frame: hot-reload check, script callback,
// bridge drain, render, present, edge-state reset. dt is the elapsed
// seconds since the previous frame (step 4's delta_time).
//
// Input (steps 1-2) is the caller's responsibility — populate
// h.State().Input before calling RunFrame, e.g. via Window.Poll.
func (h *Host) RunFrame(dt float64) error {
	h.maybeReload()

	h.state.DeltaTime = dt
	h.state.Input.DeltaTime = dt

	if err := h.isolate.Run(h.state); err != nil {
		arcane.Logger().Warn("host: script callback failed", "err", err)
		if snapErr := writeErrorSnapshot(h.cfg.GameDir, err, nil); snapErr != nil {
			arcane.Logger().Warn("host: failed writing error snapshot", "err", snapErr)
		}
		h.state.ClearTransient()
		h.state.Input.ClearEdges()
		return nil
	}

	h.drain()

	h.state.Scene.GI = &h.state.GI

	if err := h.renderer.Render(h.target, h.state.Scene); err != nil {
		return err
	}
	if err := h.renderer.Flush(); err != nil {
		return err
	}
	if len(h.postFX.Effects()) > 0 {
		if err := h.applyPostProcess(); err != nil {
			return err
		}
	}

	h.state.ClearTransient()
	h.state.Input.ClearEdges()
	return nil
}

// maybeReload implements step 3: if a reload is pending, drop the old
// isolate first, then create the new one (strict LIFO), preserving the
// bridge's process-lifetime caches via HotReloadReset rather than
// replacing the bridge wholesale.
func (h *Host) maybeReload() {
	watcherFired := h.watcher != nil && h.watcher.reloadNeeded()
	if !watcherFired && !h.reloadPending.Load() {
		return
	}
	h.reloadPending.Store(false)
	if h.pendingIsolate == nil {
		return
	}

	if err := h.isolate.Close(); err != nil {
		arcane.Logger().Warn("host: error closing isolate before reload", "err", err)
	}
	next, err := h.pendingIsolate()
	if err != nil {
		arcane.Logger().Warn("host: reload failed, isolate left unset", "err", err)
		return
	}
	h.isolate = next
	h.state.HotReloadReset()
	h.postFX = render.NewPostProcessChain(h.target.Width(), h.target.Height())
	h.effectIndex = make(map[bridge.EffectID]int)
	arcane.Logger().Info("host: script isolate reloaded")
}

// drain implements step 6: queued asset/shader/effect creation, audio
// commands, and the camera sync. Sprite/geometry/SDF/lighting/GI
// commands need no explicit drain step — ops write them directly into
// h.state.Scene/Lighting/GI, so "drain" is reading those fields during
// Render, not copying them first.
func (h *Host) drain() {
	h.drainAssets()
	h.drainShaders()

	for _, cmd := range h.state.AudioCommands {
		h.audio.submit(cmd)
	}
	for _, req := range h.state.SoundLoads {
		h.audio.queueLoad(req)
	}

	if h.state.Camera.Dirty {
		h.state.Camera.AckSync()
	}

	if h.state.EffectClear {
		h.postFX = render.NewPostProcessChain(h.target.Width(), h.target.Height())
		h.effectIndex = make(map[bridge.EffectID]int)
	}

	for _, req := range h.state.EffectCreates {
		h.postFX.AddEffect(render.EffectParams{Kind: req.Kind})
		h.effectIndex[req.ID] = len(h.postFX.Effects()) - 1
	}
	for _, upd := range h.state.EffectParams {
		idx, ok := h.effectIndex[upd.Effect]
		if !ok {
			continue
		}
		effects := h.postFX.Effects()
		if idx < 0 || idx >= len(effects) {
			continue
		}
		applyEffectParamSlot(&effects[idx], upd.Index, upd.Value)
	}
	for _, rm := range h.state.EffectRemoves {
		idx, ok := h.effectIndex[rm.Effect]
		if !ok {
			continue
		}
		h.postFX.RemoveEffect(idx)
		delete(h.effectIndex, rm.Effect)
		for id, i := range h.effectIndex {
			if i > idx {
				h.effectIndex[id] = i - 1
			}
		}
	}
}

// applyEffectParamSlot writes one of an effect's three tunable fields.
// EffectParamUpdate carries a vec4 per slot to match the shader-param
// wire shape set_effect_param shares with set_shader_param, but
// EffectParams itself only has three scalar knobs, so only Value[0] of
// the selected slot is meaningful.
func applyEffectParamSlot(p *render.EffectParams, index int, v [4]float64) {
	switch index {
	case 0:
		p.Intensity = v[0]
	case 1:
		p.Radius = v[0]
	case 2:
		p.Threshold = v[0]
	}
}

// drainShaders applies user shader creation/parameter requests if the
// active renderer implements the matching optional capability.
func (h *Host) drainShaders() {
	if len(h.state.ShaderCreates) == 0 && len(h.state.ShaderParams) == 0 {
		return
	}
	uploader, ok := h.renderer.(ShaderUploader)
	if !ok {
		arcane.Logger().Debug("host: renderer has no shader uploader, dropping queued shader requests",
			"creates", len(h.state.ShaderCreates), "params", len(h.state.ShaderParams))
		return
	}
	for _, req := range h.state.ShaderCreates {
		uploader.CreateShader(req.ID, req.Name, req.Source)
	}
	for _, upd := range h.state.ShaderParams {
		uploader.SetShaderParam(upd.Shader, upd.Index, upd.X, upd.Y, upd.Z, upd.W)
	}
}

// applyPostProcess runs the post-process chain over the target's pixel
// buffer in place. GPU-only targets have no CPU pixel access and are
// left untouched — the GPU renderer's own presentation path is where
// their post-processing will eventually be composited as a render pass,
// not here.
func (h *Host) applyPostProcess() error {
	pixels := h.target.Pixels()
	if pixels == nil {
		return nil
	}
	width, height, stride := h.target.Width(), h.target.Height(), h.target.Stride()
	src := &image.RGBA{Pix: pixels, Stride: stride, Rect: image.Rect(0, 0, width, height)}
	result := h.postFX.Apply(src)
	copy(pixels, result.Pixels())
	return nil
}

// drainAssets applies texture-load and raw-upload requests if the
// active renderer implements AssetUploader. Font texture requests are
// not drained here.
// Renderers that don't are logged and skipped rather than the host
// guessing at a backend-specific upload path.
func (h *Host) drainAssets() {
	if len(h.state.TextureLoads) == 0 && len(h.state.RawUploads) == 0 {
		return
	}
	uploader, ok := h.renderer.(AssetUploader)
	if !ok {
		arcane.Logger().Debug("host: renderer has no asset uploader, dropping queued asset requests",
			"textures", len(h.state.TextureLoads), "raw", len(h.state.RawUploads))
		return
	}
	for _, req := range h.state.TextureLoads {
		if err := uploader.UploadTexture(req.ID, req.Path); err != nil {
			arcane.Logger().Warn("host: texture upload failed", "path", req.Path, "err", err)
			continue
		}
	}
	for _, req := range h.state.RawUploads {
		if err := uploader.UploadRawTexture(req.ID, req.Width, req.Height, req.Pixels); err != nil {
			arcane.Logger().Warn("host: raw texture upload failed", "name", req.Name, "err", err)
		}
	}
}
