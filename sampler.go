package uipaint

import "github.com/chewxy/math32"

// Filter selects how a sampler interpolates between texels.
type Filter uint8

const (
	// FilterNearest picks the closest texel. Right for pixel art and
	// other textures that must not be smoothed.
	FilterNearest Filter = iota

	// FilterLinear blends the four closest texels bilinearly.
	FilterLinear
)

// AddressMode selects how texture coordinates outside [0,1] resolve.
type AddressMode uint8

const (
	// AddressRepeat wraps coordinates, tiling the texture.
	AddressRepeat AddressMode = iota

	// AddressClampToEdge clamps coordinates to the texture border.
	AddressClampToEdge
)

// Sampler describes how a texture is read. It mirrors a GPU sampler
// object; the software painter interprets the same description.
type Sampler struct {
	MagFilter, MinFilter Filter
	AddressU, AddressV   AddressMode
}

// LinearSampler is the default for user textures: bilinear, tiling.
func LinearSampler() Sampler {
	return Sampler{
		MagFilter: FilterLinear,
		MinFilter: FilterLinear,
		AddressU:  AddressRepeat,
		AddressV:  AddressRepeat,
	}
}

// NearestSampler picks texels exactly, with no smoothing or tiling
// guarantees beyond wrapping.
func NearestSampler() Sampler {
	return Sampler{
		MagFilter: FilterNearest,
		MinFilter: FilterNearest,
		AddressU:  AddressRepeat,
		AddressV:  AddressRepeat,
	}
}

// FontSampler is for glyph atlases: bilinear, clamped so that glyphs at
// the atlas edge do not bleed across.
func FontSampler() Sampler {
	return Sampler{
		MagFilter: FilterLinear,
		MinFilter: FilterLinear,
		AddressU:  AddressClampToEdge,
		AddressV:  AddressClampToEdge,
	}
}

// resolve maps a texture coordinate to a texel coordinate in [0, n).
func (m AddressMode) resolve(coord float32, n int) float32 {
	switch m {
	case AddressClampToEdge:
		if coord < 0 {
			return 0
		}
		limit := float32(n) - 1
		if coord > limit {
			return limit
		}
		return coord
	default: // AddressRepeat
		fn := float32(n)
		coord = math32.Mod(coord, fn)
		if coord < 0 {
			coord += fn
		}
		return coord
	}
}

// Sample reads the texture at normalized coordinates (u, v) from the
// given mip level, honoring the sampler's filter and address modes.
// lod selects the mip level (nearest-mip, matching the GPU sampler's
// nearest mipmap filter); pass 0 for unminified sampling.
func (s Sampler) Sample(t *Texture, u, v float32, lod int) Color {
	img := t.level(lod)
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	// Texel space, sampling at texel centers.
	x := u*float32(w) - 0.5
	y := v*float32(h) - 0.5

	filter := s.MagFilter
	if lod > 0 {
		filter = s.MinFilter
	}
	if filter == FilterNearest {
		tx := int(s.AddressU.resolve(math32.Round(x), w))
		ty := int(s.AddressV.resolve(math32.Round(y), h))
		return texel(img, tx, ty)
	}

	x0 := math32.Floor(x)
	y0 := math32.Floor(y)
	fx := x - x0
	fy := y - y0

	tx0 := int(s.AddressU.resolve(x0, w))
	tx1 := int(s.AddressU.resolve(x0+1, w))
	ty0 := int(s.AddressV.resolve(y0, h))
	ty1 := int(s.AddressV.resolve(y0+1, h))

	c00 := texel(img, tx0, ty0)
	c10 := texel(img, tx1, ty0)
	c01 := texel(img, tx0, ty1)
	c11 := texel(img, tx1, ty1)

	top := c00.Lerp(c10, fx)
	bottom := c01.Lerp(c11, fx)
	return top.Lerp(bottom, fy)
}
