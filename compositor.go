package uipaint

import "github.com/gogpu/uipaint/internal/gamma"

// TargetEncoding selects which fragment variant a framebuffer needs.
//
// The variant is a pipeline-construction choice, never a per-pixel
// branch: the two variants exist only to cancel out the GPU's automatic
// sRGB conversion on certain framebuffer formats, and both must place
// identical bytes in framebuffer memory for identical inputs. Binding
// the wrong variant double-corrects or skips gamma and is the principal
// correctness risk in this subsystem.
type TargetEncoding uint8

const (
	// TargetLinear is for framebuffers whose format makes the GPU
	// encode written values to sRGB automatically. The fragment stage
	// must emit linear light so the hardware encode lands on the
	// intended sRGB bytes.
	TargetLinear TargetEncoding = iota

	// TargetSRGB is for framebuffers stored verbatim. The fragment
	// stage emits sRGB-encoded values directly.
	TargetSRGB
)

// String returns the encoding name.
func (e TargetEncoding) String() string {
	switch e {
	case TargetLinear:
		return "linear"
	case TargetSRGB:
		return "srgb"
	default:
		return "unknown"
	}
}

// CompositeTexel combines a texture sample with the interpolated vertex
// color and returns the value the fragment stage emits for the selected
// target.
//
// Both inputs are sRGB-encoded and premultiplied. The product is formed
// in sRGB space (matching the GPU pipeline, whose shader re-encodes the
// implicitly decoded sample before tinting); the linear-target variant
// then decodes the product to linear light so the hardware's automatic
// encode reproduces the same bytes the sRGB-target variant stores
// directly. Alpha is never gamma-converted.
func CompositeTexel(sample, tint Color, target TargetEncoding) Color {
	srgb := sample.Mul(tint)
	if target == TargetSRGB {
		return srgb
	}
	r, g, b := gamma.DecodeVec(srgb.R, srgb.G, srgb.B)
	return Color{R: r, G: g, B: b, A: srgb.A}
}

// BlendOver composites a premultiplied source fragment over a
// destination in the same color space, using the pipeline's blend state:
//
//	color: src*1 + dst*(1 - src.A)
//	alpha: src.A*(1 - dst.A) + dst.A
//
// The alpha component accumulates coverage without over-counting, which
// keeps transparent overlay windows compositing correctly under a
// desktop compositor.
func BlendOver(src, dst Color) Color {
	inv := 1 - src.A
	return Color{
		R: src.R + dst.R*inv,
		G: src.G + dst.G*inv,
		B: src.B + dst.B*inv,
		A: src.A*(1-dst.A) + dst.A,
	}
}
