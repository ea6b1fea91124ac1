package uipaint

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/chewxy/math32"
	xdraw "golang.org/x/image/draw"
)

// Texture errors.
var (
	// ErrTextureNotFound is returned when a draw call references an
	// unregistered or already-freed texture.
	ErrTextureNotFound = errors.New("uipaint: texture not found")

	// ErrUpdateOutOfBounds is returned when a sub-rect update does not
	// fit inside the existing texture.
	ErrUpdateOutOfBounds = errors.New("uipaint: texture update out of bounds")
)

// TextureID identifies a texture registered with a Painter. IDs are
// assigned by the external UI layer, which also owns their lifetime.
type TextureID uint64

// Texture is a CPU-resident image with optional mipmaps.
//
// Pixel data is 8-bit RGBA, sRGB-encoded, premultiplied — the same
// convention as vertex colors. Whether a GPU backend allocates it as an
// sRGB or plain format is that backend's configuration; this package
// always hands back the stored values when sampling.
type Texture struct {
	mips    []*image.RGBA
	sampler Sampler
}

// NewTexture copies src into a texture using the given sampler.
// When withMips is true a full mip chain is generated by successive
// halving; font atlases should pass false, they are never minified.
func NewTexture(src image.Image, sampler Sampler, withMips bool) *Texture {
	b := src.Bounds()
	base := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(base, base.Bounds(), src, b.Min, draw.Src)

	t := &Texture{mips: []*image.RGBA{base}, sampler: sampler}
	if withMips {
		t.buildMips()
	}
	return t
}

// Width returns the base level width in pixels.
func (t *Texture) Width() int { return t.mips[0].Rect.Dx() }

// Height returns the base level height in pixels.
func (t *Texture) Height() int { return t.mips[0].Rect.Dy() }

// Levels returns the number of mip levels (at least 1).
func (t *Texture) Levels() int { return len(t.mips) }

// Sampler returns the sampler the texture was created with.
func (t *Texture) Sampler() Sampler { return t.sampler }

// Update overwrites the rectangle of the base level starting at origin
// with src, then regenerates mips if the texture has them. This is the
// sub-image ("delta") update path font atlases use as glyphs rasterize.
func (t *Texture) Update(src image.Image, origin image.Point) error {
	b := src.Bounds()
	dst := image.Rect(origin.X, origin.Y, origin.X+b.Dx(), origin.Y+b.Dy())
	if !dst.In(t.mips[0].Bounds()) {
		return fmt.Errorf("%w: %v into %dx%d", ErrUpdateOutOfBounds, dst, t.Width(), t.Height())
	}
	draw.Draw(t.mips[0], dst, src, b.Min, draw.Src)
	if len(t.mips) > 1 {
		t.mips = t.mips[:1]
		t.buildMips()
	}
	return nil
}

// level returns the mip image for lod, clamped to the available chain.
func (t *Texture) level(lod int) *image.RGBA {
	if lod < 0 {
		lod = 0
	}
	if lod >= len(t.mips) {
		lod = len(t.mips) - 1
	}
	return t.mips[lod]
}

// lodFor picks the mip level for a given texel-per-pixel density.
// density 1 or less means magnification (level 0).
func (t *Texture) lodFor(density float32) int {
	if density <= 1 || len(t.mips) == 1 {
		return 0
	}
	lod := int(math32.Round(math32.Log2(density)))
	if lod >= len(t.mips) {
		lod = len(t.mips) - 1
	}
	return lod
}

// buildMips extends the chain by halving until 1x1, scaling each level
// from the previous with a bilinear kernel.
func (t *Texture) buildMips() {
	for {
		prev := t.mips[len(t.mips)-1]
		w := prev.Rect.Dx()
		h := prev.Rect.Dy()
		if w <= 1 && h <= 1 {
			return
		}
		nw := max(w/2, 1)
		nh := max(h/2, 1)
		next := image.NewRGBA(image.Rect(0, 0, nw, nh))
		xdraw.ApproxBiLinear.Scale(next, next.Bounds(), prev, prev.Bounds(), xdraw.Src, nil)
		t.mips = append(t.mips, next)
	}
}

// texel reads one pixel of an RGBA image as a float color.
func texel(img *image.RGBA, x, y int) Color {
	i := img.PixOffset(x, y)
	p := img.Pix[i : i+4 : i+4]
	return Color{
		R: float32(p[0]) / 255,
		G: float32(p[1]) / 255,
		B: float32(p[2]) / 255,
		A: float32(p[3]) / 255,
	}
}
