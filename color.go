package uipaint

import (
	"image/color"
)

// Color is a 4-channel color with float32 components in [0,1].
//
// RGB components are sRGB-encoded and premultiplied by alpha, matching
// the values a UI layout engine emits per vertex and the storage format
// of UI textures. Alpha is always linear, never gamma-encoded.
type Color struct {
	R, G, B, A float32
}

// RGB creates an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Mul returns the componentwise product of two colors.
// This is the tint operation the fragment compositor applies between a
// texture sample and the interpolated vertex color.
func (c Color) Mul(d Color) Color {
	return Color{
		R: c.R * d.R,
		G: c.G * d.G,
		B: c.B * d.B,
		A: c.A * d.A,
	}
}

// Scale returns the color with all four channels multiplied by s.
func (c Color) Scale(s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// Lerp linearly interpolates between two colors.
func (c Color) Lerp(d Color, t float32) Color {
	return Color{
		R: c.R + (d.R-c.R)*t,
		G: c.G + (d.G-c.G)*t,
		B: c.B + (d.B-c.B)*t,
		A: c.A + (d.A-c.A)*t,
	}
}

// Premultiply multiplies the RGB channels by alpha. Use it when
// converting from straight-alpha sources.
func (c Color) Premultiply() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// RGBA8 quantizes all four channels to 8 bits with rounding.
// Channels are clamped to [0,1] first.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return quantize8(c.R), quantize8(c.G), quantize8(c.B), quantize8(c.A)
}

// Color converts to the standard library color.Color.
// The result is alpha-premultiplied, like the receiver.
func (c Color) Color() color.Color {
	r, g, b, a := c.RGBA8()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard library color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: float32(r) / 65535,
		G: float32(g) / 65535,
		B: float32(b) / 65535,
		A: float32(a) / 65535,
	}
}

func quantize8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = Color{}
)
