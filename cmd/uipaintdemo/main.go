// Command uipaintdemo renders a small UI scene through the software
// painter, once per framebuffer format, and writes the results as PNG.
// The two outputs must be byte-identical for the opaque parts of the
// scene.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/uipaint"
)

func main() {
	var (
		width   = flag.Int("width", 800, "framebuffer width in pixels")
		height  = flag.Int("height", 600, "framebuffer height in pixels")
		scale   = flag.Float64("scale", 1, "display scale (physical pixels per point)")
		output  = flag.String("output", "uipaint", "output file prefix")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		uipaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	scene := buildScene(float32(*width), float32(*height))
	atlas := buildAtlas()

	for _, format := range []uipaint.FramebufferFormat{uipaint.FormatSRGB, uipaint.FormatUnorm} {
		target := uipaint.NewPixmap(*width, *height, format)
		p := uipaint.NewPainter(target)
		p.CreateTexture(1, atlas)

		if err := p.Paint(scene, float32(*scale)); err != nil {
			log.Fatalf("paint (%v): %v", format, err)
		}
		p.EndFrame()

		name := *output + "_" + format.String() + ".png"
		if err := savePNG(name, target.Image()); err != nil {
			log.Fatalf("save %s: %v", name, err)
		}
		log.Printf("wrote %s (%dx%d)", name, *width, *height)
	}
}

// buildScene lays out a few tinted quads plus one rotated triangle
// fan, with a clip rect cutting the last quad in half.
func buildScene(w, h float32) []uipaint.ClippedMesh {
	full := uipaint.Rect{Min: uipaint.V2(0, 0), Max: uipaint.V2(w, h)}

	tiles := uipaint.Mesh{Texture: 1}
	addQuad(&tiles, 40, 40, 200, 200, uipaint.White)
	addQuad(&tiles, 280, 40, 200, 200, uipaint.Color{R: 1, G: 0.5, B: 0.5, A: 1})
	addQuad(&tiles, 520, 40, 200, 200, uipaint.Color{R: 0.5, G: 0.5, B: 1, A: 0.5}.Premultiply())

	gradient := uipaint.Mesh{
		Texture: 1,
		Vertices: []uipaint.Vertex{
			{Pos: uipaint.V2(40, 300), UV: uipaint.V2(0, 0), Color: uipaint.Color{R: 1, A: 1}},
			{Pos: uipaint.V2(400, 300), UV: uipaint.V2(1, 0), Color: uipaint.Color{G: 1, A: 1}},
			{Pos: uipaint.V2(220, 560), UV: uipaint.V2(0.5, 1), Color: uipaint.Color{B: 1, A: 1}},
		},
		Indices: []uint32{0, 1, 2},
	}

	clipped := uipaint.Mesh{Texture: 1}
	addQuad(&clipped, 460, 300, 260, 260, uipaint.White)

	return []uipaint.ClippedMesh{
		{ClipRect: full, Mesh: tiles},
		{ClipRect: full, Mesh: gradient},
		{ClipRect: uipaint.Rect{Min: uipaint.V2(460, 300), Max: uipaint.V2(590, 560)}, Mesh: clipped},
	}
}

func addQuad(m *uipaint.Mesh, x, y, w, h float32, tint uipaint.Color) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices,
		uipaint.Vertex{Pos: uipaint.V2(x, y), UV: uipaint.V2(0, 0), Color: tint},
		uipaint.Vertex{Pos: uipaint.V2(x+w, y), UV: uipaint.V2(1, 0), Color: tint},
		uipaint.Vertex{Pos: uipaint.V2(x, y+h), UV: uipaint.V2(0, 1), Color: tint},
		uipaint.Vertex{Pos: uipaint.V2(x+w, y+h), UV: uipaint.V2(1, 1), Color: tint},
	)
	m.Indices = append(m.Indices, base, base+1, base+2, base+2, base+1, base+3)
}

// buildAtlas draws a checkerboard so sampling and tinting are visible.
func buildAtlas() *image.RGBA {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := uint8(255)
			if (x/8+y/8)%2 == 0 {
				v = 180
			}
			i := img.PixOffset(x, y)
			img.Pix[i+0] = v
			img.Pix[i+1] = v
			img.Pix[i+2] = v
			img.Pix[i+3] = 255
		}
	}
	return img
}

func savePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
