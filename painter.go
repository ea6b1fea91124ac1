package uipaint

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
	"github.com/gogpu/uipaint/internal/raster"
)

// Painter renders UI meshes into a Pixmap with the same per-pixel
// contract as the GPU pipeline: clip transform, scissor, texture
// sampling, gamma-correct compositing, premultiplied blending.
//
// It is the executable reference for the wgpu backend; the two must
// stay byte-compatible on opaque content.
//
// Painter is not safe for concurrent use; one painter per target.
type Painter struct {
	target *Pixmap

	textures map[TextureID]*Texture

	// Two-frame deferred deletion: textures freed this frame stay
	// alive until the next EndFrame, so draws recorded before the
	// free never sample a missing texture.
	freeNext  []TextureID
	freeQueue []TextureID

	opts options
}

// NewPainter creates a painter for the given target.
func NewPainter(target *Pixmap, opts ...Option) *Painter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Painter{
		target:   target,
		textures: make(map[TextureID]*Texture),
		opts:     o,
	}
}

// Target returns the pixmap the painter renders into.
func (p *Painter) Target() *Pixmap { return p.target }

// SetTexture registers or replaces a texture.
func (p *Painter) SetTexture(id TextureID, t *Texture) {
	p.textures[id] = t
}

// CreateTexture builds a texture from src using the painter's default
// sampler and mipmap settings, registers it, and returns it.
func (p *Painter) CreateTexture(id TextureID, src image.Image) *Texture {
	t := NewTexture(src, p.opts.defaultSampler, p.opts.mipmaps)
	p.textures[id] = t
	return t
}

// UpdateTexture applies a sub-image update at origin to a registered
// texture.
func (p *Painter) UpdateTexture(id TextureID, src image.Image, origin image.Point) error {
	t, ok := p.textures[id]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrTextureNotFound, id)
	}
	return t.Update(src, origin)
}

// FreeTexture schedules textures for deletion at the end of the next
// frame. Draws already recorded against them remain valid until then.
func (p *Painter) FreeTexture(ids ...TextureID) {
	p.freeNext = append(p.freeNext, ids...)
}

// EndFrame applies deletions scheduled before the previous EndFrame.
func (p *Painter) EndFrame() {
	for _, id := range p.freePrev() {
		delete(p.textures, id)
	}
}

// freePrev swaps the deferred-free queue forward one frame.
func (p *Painter) freePrev() []TextureID {
	prev := p.freeQueue
	p.freeQueue = p.freeNext
	p.freeNext = nil
	return prev
}

// Paint renders clipped meshes back to front. scale is physical pixels
// per logical point for the clip rectangles; vertex positions are
// already in physical pixels.
//
// Painting stops at the first missing texture and reports it; pixels
// already written stay written, matching a GPU pass that errors
// mid-encode.
func (p *Painter) Paint(meshes []ClippedMesh, scale float32) error {
	fbW := uint32(p.target.Width())
	fbH := uint32(p.target.Height())
	target := p.target.format.TargetEncoding()

	painted := 0
	for _, m := range meshes {
		scissor, ok := ScissorFromClipRect(m.ClipRect, scale, fbW, fbH)
		if !ok {
			continue
		}
		tex, ok := p.textures[m.Mesh.Texture]
		if !ok {
			return fmt.Errorf("%w: id %d", ErrTextureNotFound, m.Mesh.Texture)
		}
		p.paintMesh(&m.Mesh, tex, scissor, target)
		painted++
	}

	Logger().Debug("painted frame",
		"meshes", painted, "skipped", len(meshes)-painted, "format", p.target.format.String())
	return nil
}

func (p *Painter) paintMesh(mesh *Mesh, tex *Texture, scissor ScissorRect, target TargetEncoding) {
	sampler := tex.Sampler()

	clip := raster.Clip{
		MinX: int(scissor.X),
		MinY: int(scissor.Y),
		MaxX: int(scissor.X + scissor.Width),
		MaxY: int(scissor.Y + scissor.Height),
	}

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		v0 := mesh.Vertices[mesh.Indices[i]]
		v1 := mesh.Vertices[mesh.Indices[i+1]]
		v2 := mesh.Vertices[mesh.Indices[i+2]]

		lod := tex.lodFor(texelDensity(v0, v1, v2, tex))

		raster.FillTriangle(clip, toRasterVertex(v0), toRasterVertex(v1), toRasterVertex(v2),
			func(x, y int, u, v float32, tint raster.RGBA) {
				sample := sampler.Sample(tex, u, v, lod)
				out := CompositeTexel(sample, Color(tint), target)
				p.target.BlendPixel(x, y, out)
			})
	}
}

func toRasterVertex(v Vertex) raster.Vertex {
	return raster.Vertex{
		X: v.Pos.X, Y: v.Pos.Y,
		U: v.UV.X, V: v.UV.Y,
		Color: raster.RGBA(v.Color),
	}
}

// texelDensity estimates texels per pixel over a triangle, the ratio
// that drives mip selection.
func texelDensity(v0, v1, v2 Vertex, tex *Texture) float32 {
	pixelArea := math32.Abs(v1.Pos.Sub(v0.Pos).Cross(v2.Pos.Sub(v0.Pos)))
	if pixelArea == 0 {
		return 1
	}
	du1 := v1.UV.Sub(v0.UV)
	du2 := v2.UV.Sub(v0.UV)
	texelArea := math32.Abs(du1.Cross(du2)) * float32(tex.Width()) * float32(tex.Height())
	return math32.Sqrt(texelArea / pixelArea)
}
