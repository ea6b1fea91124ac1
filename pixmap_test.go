package uipaint

import (
	"testing"

	"github.com/gogpu/uipaint/internal/gamma"
)

func TestPixmap_ClearTransparent(t *testing.T) {
	p := NewPixmap(4, 4, FormatSRGB)
	p.BlendPixel(1, 1, Color{R: 0.5, G: 0.5, B: 0.5, A: 1})
	p.Clear()
	for _, b := range p.Image().Pix {
		if b != 0 {
			t.Fatal("Clear left nonzero bytes")
		}
	}
}

// TestPixmap_BlendPixel_UnormStoresVerbatim: on a plain unorm target an
// opaque fragment's bytes are quantized straight in.
func TestPixmap_BlendPixel_UnormStoresVerbatim(t *testing.T) {
	p := NewPixmap(1, 1, FormatUnorm)
	p.BlendPixel(0, 0, Color{R: 0.5, G: 0.25, B: 1, A: 1})

	px := p.Image().Pix
	want := []uint8{quantize8(0.5), quantize8(0.25), 255, 255}
	for i := range want {
		if px[i] != want[i] {
			t.Errorf("byte %d = %d, want %d", i, px[i], want[i])
		}
	}
}

// TestPixmap_BlendPixel_SRGBEncodesOnStore: an sRGB target receives
// linear values and encodes them to the same bytes the unorm target
// stores for the equivalent sRGB input.
func TestPixmap_BlendPixel_SRGBEncodesOnStore(t *testing.T) {
	srgbVal := float32(0.5)

	p := NewPixmap(1, 1, FormatSRGB)
	p.BlendPixel(0, 0, Color{
		R: gamma.Decode(srgbVal),
		G: gamma.Decode(srgbVal),
		B: gamma.Decode(srgbVal),
		A: 1,
	})

	want := quantize8(srgbVal)
	px := p.Image().Pix
	if px[0] != want || px[1] != want || px[2] != want {
		t.Errorf("stored bytes (%d,%d,%d), want all %d", px[0], px[1], px[2], want)
	}
	if px[3] != 255 {
		t.Errorf("alpha byte = %d, want 255", px[3])
	}
}

// TestPixmap_BlendPixel_SRGBBlendsInLinear: blending on an sRGB target
// happens in linear space, so compositing 50% gray coverage over white
// gives the linear midpoint, not the byte midpoint.
func TestPixmap_BlendPixel_SRGBBlendsInLinear(t *testing.T) {
	p := NewPixmap(1, 1, FormatSRGB)
	p.BlendPixel(0, 0, Color{R: 1, G: 1, B: 1, A: 1}) // opaque white
	p.BlendPixel(0, 0, Color{A: 0.5})                 // half-coverage black

	// Linear 0.5 encodes to sRGB ~0.735.
	want := gamma.EncodeByte(0.5)
	if got := p.Image().Pix[0]; got != want {
		t.Errorf("blended byte = %d, want %d (linear-space blend)", got, want)
	}

	q := NewPixmap(1, 1, FormatUnorm)
	q.BlendPixel(0, 0, Color{R: 1, G: 1, B: 1, A: 1})
	q.BlendPixel(0, 0, Color{A: 0.5})

	// The unorm target blends stored bytes directly: 255 * 0.5.
	if got := q.Image().Pix[0]; got != quantize8(0.5) {
		t.Errorf("unorm blended byte = %d, want %d (byte-space blend)", got, quantize8(0.5))
	}
}

// TestPixmap_BlendPixel_AlphaAccumulates checks destination coverage
// accumulation for overlay-style transparent framebuffers.
func TestPixmap_BlendPixel_AlphaAccumulates(t *testing.T) {
	for _, format := range []FramebufferFormat{FormatSRGB, FormatUnorm} {
		p := NewPixmap(1, 1, format)
		p.BlendPixel(0, 0, Color{A: 0.5})
		p.BlendPixel(0, 0, Color{A: 0.5})
		got := p.Image().Pix[3]
		want := quantize8(0.75)
		if delta8(got, want) > 1 {
			t.Errorf("%v: alpha byte = %d, want ~%d", format, got, want)
		}
	}
}

func delta8(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}
