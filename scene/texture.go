// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

// TextureFilter selects the sampling filter used for a texture.
type TextureFilter uint8

// Filter constants.
const (
	FilterLinear TextureFilter = iota
	FilterNearest
)

// TextureInfo describes a registered texture handle. The handle itself
// (TextureID) is allocated host-side the instant a script calls a
// texture-creating op; GPU upload is deferred to the frame-end drain, so
// Loaded is false until the host has actually uploaded pixel data.
type TextureInfo struct {
	ID       TextureID
	Width    int
	Height   int
	SRGB     bool
	Filter   TextureFilter
	Loaded   bool
	IsTarget bool // True for a render-target texture (RENDER_ATTACHMENT | TEXTURE_BINDING).
}

// TextureStore is the process-lifetime registry of texture handles,
// plus the path→id cache that makes load_texture idempotent by
// resolved path and create_solid_texture idempotent by name.
type TextureStore struct {
	next     TextureID
	textures map[TextureID]*TextureInfo
	byPath   map[string]TextureID
	byName   map[string]TextureID
}

// NewTextureStore creates an empty store. Handle 0 (TextureNone) is
// reserved and never allocated.
func NewTextureStore() *TextureStore {
	return &TextureStore{
		next:     1,
		textures: make(map[TextureID]*TextureInfo),
		byPath:   make(map[string]TextureID),
		byName:   make(map[string]TextureID),
	}
}

// Reserve allocates a new handle without uploading pixel data; the
// caller (the host's frame-end drain) is responsible for uploading and
// marking it Loaded.
func (s *TextureStore) Reserve(isTarget bool) TextureID {
	id := s.next
	s.next++
	s.textures[id] = &TextureInfo{ID: id, IsTarget: isTarget}
	return id
}

// LoadByPath returns the existing handle for path if one was already
// reserved, or reserves and returns a new one — making load_texture
// idempotent by resolved path.
func (s *TextureStore) LoadByPath(path string) (id TextureID, alreadyLoaded bool) {
	if id, ok := s.byPath[path]; ok {
		return id, true
	}
	id = s.Reserve(false)
	s.byPath[path] = id
	return id, false
}

// SolidByName returns the existing handle for a cached solid-color
// texture name, or reserves a new one — making create_solid_texture
// idempotent by name (the color is fixed at first creation; later calls
// with the same name and a different color still return the original).
func (s *TextureStore) SolidByName(name string) (id TextureID, alreadyCreated bool) {
	if id, ok := s.byName[name]; ok {
		return id, true
	}
	id = s.Reserve(false)
	s.byName[name] = id
	return id, false
}

// MarkUploaded records that the host has completed GPU upload for id,
// with the resolved dimensions, color space, and filter.
func (s *TextureStore) MarkUploaded(id TextureID, w, h int, srgb bool, filter TextureFilter) {
	info, ok := s.textures[id]
	if !ok {
		return
	}
	info.Width, info.Height = w, h
	info.SRGB = srgb
	info.Filter = filter
	info.Loaded = true
}

// Info returns the texture's registered metadata, or ok=false for an
// unknown handle.
func (s *TextureStore) Info(id TextureID) (TextureInfo, bool) {
	info, ok := s.textures[id]
	if !ok {
		return TextureInfo{}, false
	}
	return *info, true
}

// ClearSolidCache drops the name→id cache so a hot-reloaded script can
// re-tint solid-color textures under the same name; the underlying GPU
// texture handles and path cache are preserved.
func (s *TextureStore) ClearSolidCache() {
	s.byName = make(map[string]TextureID)
}

// Tilemap is a grid of tile ids into a texture atlas. Tile id 0 means
// "empty"; id k>=1 maps to atlas cell ((k-1) mod cols, (k-1) / cols).
type Tilemap struct {
	Width, Height     int
	TileSize          float64
	Texture           TextureID
	AtlasCols, AtlasRows int
	tiles             []uint32 // row-major, length Width*Height
}

// NewTilemap creates an empty (all-zero) tilemap.
func NewTilemap(width, height int, tileSize float64, texture TextureID, atlasCols, atlasRows int) *Tilemap {
	return &Tilemap{
		Width: width, Height: height, TileSize: tileSize,
		Texture: texture, AtlasCols: atlasCols, AtlasRows: atlasRows,
		tiles: make([]uint32, width*height),
	}
}

// SetTile sets the tile id at (x, y). Out-of-range coordinates are a
// no-op.
func (t *Tilemap) SetTile(x, y int, id uint32) {
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return
	}
	t.tiles[y*t.Width+x] = id
}

// GetTile returns the tile id at (x, y), or 0 for out-of-range
// coordinates.
func (t *Tilemap) GetTile(x, y int) uint32 {
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return 0
	}
	return t.tiles[y*t.Width+x]
}

// AtlasCell returns the (col, row) atlas cell for a non-empty tile id.
func (t *Tilemap) AtlasCell(id uint32) (col, row int) {
	if id == 0 || t.AtlasCols == 0 {
		return 0, 0
	}
	idx := int(id - 1)
	return idx % t.AtlasCols, idx / t.AtlasCols
}

// BakeVisible emits one SpriteCommand per non-zero tile whose world-space
// bounds lie entirely inside [aabbMin, aabbMax], at the given layer and
// world offset. It emits nothing if the tilemap's own bounds don't
// intersect the AABB at all.
func (t *Tilemap) BakeVisible(worldX, worldY float64, aabbMin, aabbMax Point2, layer int32) []SpriteCommand {
	mapW := float64(t.Width) * t.TileSize
	mapH := float64(t.Height) * t.TileSize
	if worldX+mapW < aabbMin.X || worldX > aabbMax.X || worldY+mapH < aabbMin.Y || worldY > aabbMax.Y {
		return nil
	}

	var cmds []SpriteCommand
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			id := t.GetTile(x, y)
			if id == 0 {
				continue
			}
			tx := worldX + float64(x)*t.TileSize
			ty := worldY + float64(y)*t.TileSize
			if tx < aabbMin.X || ty < aabbMin.Y || tx+t.TileSize > aabbMax.X || ty+t.TileSize > aabbMax.Y {
				continue
			}
			col, row := t.AtlasCell(id)
			cmds = append(cmds, SpriteCommand{
				Texture: t.Texture,
				X:       tx,
				Y:       ty,
				W:       t.TileSize,
				H:       t.TileSize,
				Layer:   layer,
				UVX:     float64(col) / float64(t.AtlasCols),
				UVY:     float64(row) / float64(t.AtlasRows),
				UVW:     1 / float64(t.AtlasCols),
				UVH:     1 / float64(t.AtlasRows),
				Opacity: 1,
			})
		}
	}
	return cmds
}
