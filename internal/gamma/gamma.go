// Package gamma implements the piecewise sRGB transfer function and its
// inverse, the numeric heart of color-correct UI compositing.
//
// sRGB is the gamma-compressed encoding used for storage and display;
// linear light is proportional to physical intensity and is required for
// correct blending arithmetic. Both directions are evaluated per RGB
// channel; alpha is never gamma-encoded.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
//   - GPU Gems 3, Chapter 24: https://developer.nvidia.com/gpugems/gpugems3/part-iv-image-effects/chapter-24-importance-being-linear
package gamma

import "github.com/chewxy/math32"

// Transfer function constants. The cutoffs are the points where the
// linear segment meets the power segment; both functions are continuous
// there.
const (
	// DecodeCutoff is the sRGB-side seam of the piecewise function.
	DecodeCutoff = 0.04045

	// EncodeCutoff is the linear-side seam, DecodeCutoff/12.92.
	EncodeCutoff = 0.0031308
)

// Decode converts an sRGB-encoded component to linear light.
//
//	s < 0.04045: s / 12.92
//	else:        ((s + 0.055) / 1.055) ^ 2.4
//
// Inputs outside [0,1] are not clamped; garbage in, garbage out.
func Decode(s float32) float32 {
	if s < DecodeCutoff {
		return s / 12.92
	}
	return math32.Pow((s+0.055)/1.055, 2.4)
}

// Encode converts a linear-light component to sRGB encoding.
//
//	l < 0.0031308: l * 12.92
//	else:          1.055 * l^(1/2.4) - 0.055
//
// Encode is the inverse of Decode up to float32 rounding.
func Encode(l float32) float32 {
	if l < EncodeCutoff {
		return l * 12.92
	}
	return 1.055*math32.Pow(l, 1.0/2.4) - 0.055
}

// DecodeVec applies Decode to three channels at once.
// This is the elementwise-select form the GPU shaders use; the per-channel
// branch is data selection, not control flow.
func DecodeVec(r, g, b float32) (float32, float32, float32) {
	return Decode(r), Decode(g), Decode(b)
}

// EncodeVec applies Encode to three channels at once.
func EncodeVec(r, g, b float32) (float32, float32, float32) {
	return Encode(r), Encode(g), Encode(b)
}
