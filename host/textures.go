// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/arcane-engine/arcane/scene"
)

// CPUTextureCache is a default AssetUploader for the SoftwareRenderer
// path: it decodes an image file into memory and marks the handle
// uploaded, rather than pushing pixels to a GPU. Registering the x/image
// bmp and tiff decoders alongside the stdlib ones widens load_texture's
// accepted formats past png/jpeg/gif, the same "support more container
// formats than the stdlib alone" role x/image plays for decoding
// generally.
type CPUTextureCache struct {
	store *scene.TextureStore

	mu     sync.Mutex
	images map[scene.TextureID]*image.RGBA
}

// NewCPUTextureCache creates an uploader that marks handles in store as
// they're decoded.
func NewCPUTextureCache(store *scene.TextureStore) *CPUTextureCache {
	return &CPUTextureCache{store: store, images: make(map[scene.TextureID]*image.RGBA)}
}

// UploadTexture decodes the image file at path and registers it.
func (c *CPUTextureCache) UploadTexture(id scene.TextureID, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("host: open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("host: decode texture %q: %w", path, err)
	}
	rgba := toRGBA(img)

	c.mu.Lock()
	c.images[id] = rgba
	c.mu.Unlock()

	b := rgba.Bounds()
	c.store.MarkUploaded(id, b.Dx(), b.Dy(), true, scene.FilterLinear)
	return nil
}

// UploadRawTexture registers caller-supplied RGBA8 pixels directly,
// bypassing file decode (create_solid_texture / raw sprite uploads).
func (c *CPUTextureCache) UploadRawTexture(id scene.TextureID, width, height int, pixels []byte) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)

	c.mu.Lock()
	c.images[id] = img
	c.mu.Unlock()

	c.store.MarkUploaded(id, width, height, false, scene.FilterNearest)
	return nil
}

// Image returns the decoded pixels for id, or nil if unknown.
func (c *CPUTextureCache) Image(id scene.TextureID) *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.images[id]
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

var _ AssetUploader = (*CPUTextureCache)(nil)
