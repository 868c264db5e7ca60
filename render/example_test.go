// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render_test

import (
	"fmt"
	"image/color"

	arcolor "github.com/arcane-engine/arcane/color"
	"github.com/arcane-engine/arcane/render"
	"github.com/arcane-engine/arcane/scene"
)

// ExampleNewSoftwareRenderer demonstrates CPU-based rendering of a frame
// scene built from geometry commands.
func ExampleNewSoftwareRenderer() {
	renderer := render.NewSoftwareRenderer()
	target := render.NewPixmapTarget(200, 200)

	s := render.NewScene()
	s.Clear(color.White)
	s.AddGeometry(scene.GeometryCommand{
		Kind: scene.GeometryTriangle,
		Verts: [3]scene.Point2{
			{X: 100, Y: 50}, {X: 150, Y: 150}, {X: 50, Y: 150},
		},
		RGBA: arcolor.RGBA{R: 1, G: 0, B: 0, A: 1},
	})

	if err := renderer.Render(target, s); err != nil {
		fmt.Println("render failed:", err)
		return
	}

	img := target.Image()
	fmt.Printf("rendered %dx%d image\n", img.Bounds().Dx(), img.Bounds().Dy())
	// Output: rendered 200x200 image
}

// ExampleScene demonstrates building one frame's worth of commands.
func ExampleScene() {
	s := render.NewScene()
	s.Clear(color.White)
	s.AddSprite(scene.SpriteCommand{Texture: 1, X: 10, Y: 10, W: 16, H: 16, Opacity: 1})
	s.AddGeometry(scene.GeometryCommand{Kind: scene.GeometryTriangle})
	s.AddSDF(scene.SDFCommand{Expr: "sdCircle(p, 10.0)", Fill: scene.FillSolid})

	fmt.Printf("scene has %d commands\n", s.CommandCount())
	// Output: scene has 3 commands
}

// ExampleNewPixmapTarget demonstrates creating and using a CPU render target.
func ExampleNewPixmapTarget() {
	target := render.NewPixmapTarget(400, 300)

	fmt.Printf("target size: %dx%d\n", target.Width(), target.Height())
	fmt.Printf("stride: %d bytes per row\n", target.Stride())
	fmt.Printf("pixels: %d bytes total\n", len(target.Pixels()))
	// Output:
	// target size: 400x300
	// stride: 1600 bytes per row
	// pixels: 480000 bytes total
}

// ExamplePixmapTarget_Clear demonstrates clearing a target with a color.
func ExamplePixmapTarget_Clear() {
	target := render.NewPixmapTarget(100, 100)
	target.Clear(color.RGBA{R: 255, G: 0, B: 0, A: 255})

	pixel := target.GetPixel(50, 50).(color.RGBA)
	fmt.Printf("pixel at (50,50): R=%d, G=%d, B=%d, A=%d\n",
		pixel.R, pixel.G, pixel.B, pixel.A)
	// Output: pixel at (50,50): R=255, G=0, B=0, A=255
}

// ExampleNullDeviceHandle demonstrates the null device used for headless
// runs and tests.
func ExampleNullDeviceHandle() {
	handle := render.NullDeviceHandle{}

	fmt.Printf("device: %v\n", handle.Device())
	fmt.Printf("queue: %v\n", handle.Queue())
	fmt.Printf("adapter: %v\n", handle.Adapter())
	// Output:
	// device: <nil>
	// queue: <nil>
	// adapter: <nil>
}

// ExampleGPURenderer_Capabilities demonstrates querying renderer
// capabilities.
func ExampleGPURenderer_Capabilities() {
	renderer, err := render.NewGPURenderer(render.NullDeviceHandle{})
	if err != nil {
		fmt.Println("failed:", err)
		return
	}

	caps := renderer.Capabilities()
	fmt.Printf("GPU renderer: %v\n", caps.IsGPU)
	fmt.Printf("supports antialiasing: %v\n", caps.SupportsAntialiasing)
	// Output:
	// GPU renderer: true
	// supports antialiasing: true
}

// ExampleSoftwareRenderer_Capabilities demonstrates querying software
// renderer capabilities.
func ExampleSoftwareRenderer_Capabilities() {
	renderer := render.NewSoftwareRenderer()

	caps := renderer.Capabilities()
	fmt.Printf("GPU renderer: %v\n", caps.IsGPU)
	// Output: GPU renderer: false
}
