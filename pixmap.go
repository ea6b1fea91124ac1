package uipaint

import (
	"image"

	"github.com/gogpu/uipaint/internal/gamma"
)

// FramebufferFormat declares how a render target's 8-bit storage is
// interpreted, mirroring the two families of GPU color formats.
//
// The format decides which fragment variant a pipeline must be built
// with; the variant is never chosen at draw time.
type FramebufferFormat uint8

const (
	// FormatSRGB models an sRGB-typed attachment: the hardware encodes
	// written linear values to sRGB bytes on store and decodes back to
	// linear for blending. Shaders targeting it emit linear light.
	FormatSRGB FramebufferFormat = iota

	// FormatUnorm models a plain 8-bit attachment: bytes are stored
	// and blended verbatim. Shaders targeting it emit sRGB directly.
	FormatUnorm
)

// TargetEncoding returns the fragment variant the format requires.
func (f FramebufferFormat) TargetEncoding() TargetEncoding {
	if f == FormatSRGB {
		return TargetLinear
	}
	return TargetSRGB
}

// String returns the format name.
func (f FramebufferFormat) String() string {
	switch f {
	case FormatSRGB:
		return "rgba8-srgb"
	case FormatUnorm:
		return "rgba8-unorm"
	default:
		return "unknown"
	}
}

// Pixmap is a CPU framebuffer the software painter renders into.
//
// The backing bytes model attachment memory: for both formats the RGB
// bytes of painted UI content end up sRGB-encoded, so pixmaps rendered
// through either fragment variant are directly comparable. Alpha is
// stored linearly in both.
type Pixmap struct {
	img    *image.RGBA
	format FramebufferFormat
}

// NewPixmap creates a transparent pixmap of the given size and format.
func NewPixmap(width, height int, format FramebufferFormat) *Pixmap {
	return &Pixmap{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		format: format,
	}
}

// Width returns the pixmap width in pixels.
func (p *Pixmap) Width() int { return p.img.Rect.Dx() }

// Height returns the pixmap height in pixels.
func (p *Pixmap) Height() int { return p.img.Rect.Dy() }

// Format returns the declared framebuffer format.
func (p *Pixmap) Format() FramebufferFormat { return p.format }

// Image returns the backing image. The bytes are shared, not copied.
func (p *Pixmap) Image() *image.RGBA { return p.img }

// Clear fills the pixmap with the zero byte pattern (transparent black).
func (p *Pixmap) Clear() {
	clear(p.img.Pix)
}

// BlendPixel composites a fragment output over the stored pixel using
// the pipeline's premultiplied blend state, in the space the format
// blends in: FormatSRGB decodes the destination to linear first (as sRGB
// attachments do in hardware) and re-encodes the result; FormatUnorm
// blends the stored bytes as-is.
//
// src must be in the emit encoding matching the format's variant:
// linear for FormatSRGB, sRGB for FormatUnorm.
func (p *Pixmap) BlendPixel(x, y int, src Color) {
	i := p.img.PixOffset(x, y)
	px := p.img.Pix[i : i+4 : i+4]

	dstA := float32(px[3]) / 255
	outA := src.A*(1-dstA) + dstA

	if p.format == FormatSRGB {
		dst := Color{
			R: gamma.DecodeByte(px[0]),
			G: gamma.DecodeByte(px[1]),
			B: gamma.DecodeByte(px[2]),
			A: dstA,
		}
		out := BlendOver(src, dst)
		px[0] = gamma.EncodeByte(out.R)
		px[1] = gamma.EncodeByte(out.G)
		px[2] = gamma.EncodeByte(out.B)
		px[3] = quantize8(outA)
		return
	}

	dst := Color{
		R: float32(px[0]) / 255,
		G: float32(px[1]) / 255,
		B: float32(px[2]) / 255,
		A: dstA,
	}
	out := BlendOver(src, dst)
	px[0] = quantize8(out.R)
	px[1] = quantize8(out.G)
	px[2] = quantize8(out.B)
	px[3] = quantize8(outA)
}
