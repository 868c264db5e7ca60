// Command arcanehost runs the engine's host runtime: frame loop, audio
// worker, file-watcher, and a demo script in lieu of a real embedded
// scripting engine. Headless by default, it renders a fixed number of
// frames with the software rasterizer and saves the last frame to a
// PNG, the same "run it and look at the output" shape a graphics demo
// takes when there is no interactive window to drive it.
package main

import (
	"flag"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/arcane-engine/arcane/bridge"
	arcolor "github.com/arcane-engine/arcane/color"
	"github.com/arcane-engine/arcane/host"
	"github.com/arcane-engine/arcane/ops"
	"github.com/arcane-engine/arcane/render"
	"github.com/arcane-engine/arcane/scene"
)

func main() {
	var (
		width   = flag.Int("width", 800, "render target width")
		height  = flag.Int("height", 600, "render target height")
		frames  = flag.Int("frames", 120, "number of frames to run")
		output  = flag.String("output", "arcanehost.png", "output PNG path")
		gameDir = flag.String("gamedir", ".", "project root for saves and error snapshots")
	)
	flag.Parse()

	textures := scene.NewTextureStore()
	renderer := &softwareWithUploads{
		SoftwareRenderer: render.NewSoftwareRenderer(),
		CPUTextureCache:  host.NewCPUTextureCache(textures),
	}

	h, err := host.New(
		host.Config{GameDir: *gameDir, Width: *width, Height: *height},
		&demoIsolate{},
		renderer,
		render.NewPixmapTarget(*width, *height),
	)
	if err != nil {
		log.Fatalf("arcanehost: %v", err)
	}
	defer h.Close()
	h.State().Textures = textures

	const dt = 1.0 / 60
	for i := 0; i < *frames; i++ {
		if err := h.RunFrame(dt); err != nil {
			log.Fatalf("arcanehost: frame %d: %v", i, err)
		}
	}

	target, ok := h.Target().(*render.PixmapTarget)
	if !ok {
		log.Fatal("arcanehost: expected a PixmapTarget from the headless renderer")
	}
	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("arcanehost: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, target.Image()); err != nil {
		log.Fatalf("arcanehost: encode png: %v", err)
	}

	log.Printf("arcanehost: ran %d frames, wrote %s (%dx%d)\n", *frames, *output, *width, *height)
}

// softwareWithUploads pairs the headless software rasterizer with a
// CPU-side texture cache so load_texture/create_solid_texture have
// somewhere to land without a GPU backend. render.SoftwareRenderer
// supplies render.Renderer; host.CPUTextureCache supplies
// host.AssetUploader.
type softwareWithUploads struct {
	*render.SoftwareRenderer
	*host.CPUTextureCache
}

// demoIsolate stands in for a real scripting isolate, driving the
// engine's draw/physics/audio ops the way an embedded script's frame
// callback would. It exists because the scripting engine itself is an
// external collaborator not present in the dependency pack — see
// host.Isolate's doc comment.
type demoIsolate struct {
	tex     scene.TextureID
	body    uint32
	elapsed float64
	loaded  bool
}

func (d *demoIsolate) Run(b *bridge.State) error {
	if !d.loaded {
		d.tex = ops.LoadTexture(b, "demo/sprite.png")
		ops.CreatePhysicsWorld(b, 0, -9.8)
		d.body = ops.CreateBody(b, 1, ops.ShapeTypeCircle, 20, 0, 400, 300, 1, 0.6, 0.1, 1, 1)
		d.loaded = true
	}

	d.elapsed += b.DeltaTime
	ops.PhysicsStep(b, b.DeltaTime)

	state := ops.GetBodyState(b, d.body)
	x, y := 400.0, 300.0
	if len(state) >= 2 {
		x, y = state[0], state[1]
	}

	ops.SetCamera(b, 0, 0, 1)
	ops.DrawSprite(b, d.tex, x, y, 40, 40, 0,
		0, 0, 1, 1, arcolor.RGB(1, 1, 1), 0, 20, 20,
		false, false, 1, scene.BlendAlpha, scene.ShaderID(0))

	wobble := math.Sin(d.elapsed) * 30
	ops.DrawSprite(b, scene.TextureID(0), 600+wobble, 150, 16, 16, 1,
		0, 0, 1, 1, arcolor.RGB(1, 0.6, 0.2), 0, 8, 8,
		false, false, 1, scene.BlendAdditive, scene.ShaderID(0))

	return nil
}

func (d *demoIsolate) Close() error { return nil }
