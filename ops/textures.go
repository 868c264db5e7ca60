// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"github.com/arcane-engine/arcane/bridge"
	"github.com/arcane-engine/arcane/scene"
)

// LoadTexture reserves (or reuses) a handle for an image file, queuing
// the deferred upload. Idempotent by resolved path.
func LoadTexture(b *bridge.State, path string) scene.TextureID {
	id, alreadyLoaded := b.Textures.LoadByPath(path)
	if !alreadyLoaded {
		b.QueueTextureLoad(id, path)
	}
	return id
}

// CreateSolidTexture reserves (or reuses) a 1x1 solid-color texture
// cached by name. Idempotent by name: later calls with the same name
// and a different color still return the original handle and color.
func CreateSolidTexture(b *bridge.State, name string, r, g, bComp, a float64) scene.TextureID {
	id, alreadyCreated := b.Textures.SolidByName(name)
	if !alreadyCreated {
		pixels := []byte{byteOf(r), byteOf(g), byteOf(bComp), byteOf(a)}
		b.QueueRawUpload(id, 1, 1, pixels, name)
	}
	return id
}

// UploadRGBATexture reserves a handle for caller-supplied pixel data
// and queues the deferred upload.
func UploadRGBATexture(b *bridge.State, name string, w, h int, pixels []byte) scene.TextureID {
	id := b.Textures.Reserve(false)
	b.QueueRawUpload(id, w, h, pixels, name)
	return id
}

// CreateFontTexture reserves a handle for the host's default font atlas.
func CreateFontTexture(b *bridge.State) scene.TextureID {
	id := b.Textures.Reserve(false)
	b.QueueFontTexture(id, "", false)
	return id
}

func byteOf(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}
