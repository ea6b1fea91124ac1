package uipaint

import (
	"bytes"
	"errors"
	"image"
	"testing"
)

func fullClipMesh(m Mesh) ClippedMesh {
	return ClippedMesh{
		ClipRect: Rect{Min: V2(-10000, -10000), Max: V2(10000, 10000)},
		Mesh:     m,
	}
}

// gradientImage has distinct byte values across pixels and channels.
func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, rgba8(
				uint8((x*255)/(w-1)),
				uint8((y*255)/(h-1)),
				uint8(((x+y)*255)/(w+h-2)),
				255))
		}
	}
	return img
}

func newTestPainter(t *testing.T, format FramebufferFormat, w, h int) *Painter {
	t.Helper()
	return NewPainter(NewPixmap(w, h, format),
		WithDefaultSampler(NearestSampler()), WithMipmaps(false))
}

// TestPainter_CrossFormatIdenticalBytes renders the same opaque scene
// into an sRGB-typed and a plain unorm target and requires identical
// framebuffer bytes, the core guarantee tying the two fragment
// variants together.
func TestPainter_CrossFormatIdenticalBytes(t *testing.T) {
	const w, h = 16, 16
	scene := []ClippedMesh{fullClipMesh(quadMesh(1, 0, 0, w, h))}
	img := gradientImage(w, h)

	var pix [2][]byte
	for i, format := range []FramebufferFormat{FormatSRGB, FormatUnorm} {
		p := newTestPainter(t, format, w, h)
		p.CreateTexture(1, img)
		if err := p.Paint(scene, 1); err != nil {
			t.Fatalf("%v: Paint: %v", format, err)
		}
		pix[i] = p.Target().Image().Pix
	}

	if !bytes.Equal(pix[0], pix[1]) {
		for i := range pix[0] {
			if pix[0][i] != pix[1][i] {
				t.Fatalf("formats diverge at byte %d: srgb=%d unorm=%d",
					i, pix[0][i], pix[1][i])
			}
		}
	}
}

// TestPainter_CrossFormatIdenticalBytesTinted covers the same guarantee
// for vertex tints that place the product between byte values. The dark
// tints matter most: there the encode curve is steep enough that an
// inexact encode flips the stored byte relative to the unorm path.
func TestPainter_CrossFormatIdenticalBytesTinted(t *testing.T) {
	const w, h = 8, 8
	tints := []Color{
		{R: 1.49 / 255, G: 1.49 / 255, B: 1.49 / 255, A: 1},
		{R: 2.51 / 255, G: 77.49 / 255, B: 200.49 / 255, A: 1},
		{R: 0.51 / 255, G: 10.25 / 255, B: 254.49 / 255, A: 1},
	}
	img := solidImage(w, h, 255, 255, 255, 255)

	for _, tint := range tints {
		m := quadMesh(1, 0, 0, w, h)
		for i := range m.Vertices {
			m.Vertices[i].Color = tint
		}
		scene := []ClippedMesh{fullClipMesh(m)}

		var pix [2][]byte
		for i, format := range []FramebufferFormat{FormatSRGB, FormatUnorm} {
			p := newTestPainter(t, format, w, h)
			p.CreateTexture(1, img)
			if err := p.Paint(scene, 1); err != nil {
				t.Fatalf("%v: Paint: %v", format, err)
			}
			pix[i] = p.Target().Image().Pix
		}

		for i := range pix[0] {
			if pix[0][i] != pix[1][i] {
				t.Fatalf("tint %v: formats diverge at byte %d: srgb=%d unorm=%d",
					tint, i, pix[0][i], pix[1][i])
			}
		}
	}
}

// TestPainter_WhiteQuadStaysWhite: a white texture with a white tint
// must store pure 255s regardless of format.
func TestPainter_WhiteQuadStaysWhite(t *testing.T) {
	const w, h = 8, 8
	for _, format := range []FramebufferFormat{FormatSRGB, FormatUnorm} {
		p := newTestPainter(t, format, w, h)
		p.CreateTexture(1, solidImage(w, h, 255, 255, 255, 255))
		if err := p.Paint([]ClippedMesh{fullClipMesh(quadMesh(1, 0, 0, w, h))}, 1); err != nil {
			t.Fatalf("%v: Paint: %v", format, err)
		}
		for i, b := range p.Target().Image().Pix {
			if b != 255 {
				t.Fatalf("%v: byte %d = %d, want 255", format, i, b)
			}
		}
	}
}

// TestPainter_TintModulates draws a white texture with a mid-gray tint
// and expects the tint bytes in the framebuffer.
func TestPainter_TintModulates(t *testing.T) {
	const w, h = 4, 4
	p := newTestPainter(t, FormatUnorm, w, h)
	p.CreateTexture(1, solidImage(w, h, 255, 255, 255, 255))

	m := quadMesh(1, 0, 0, w, h)
	for i := range m.Vertices {
		m.Vertices[i].Color = Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	}
	if err := p.Paint([]ClippedMesh{fullClipMesh(m)}, 1); err != nil {
		t.Fatalf("Paint: %v", err)
	}
	if got := p.Target().Image().Pix[0]; got != quantize8(0.5) {
		t.Errorf("tinted byte = %d, want %d", got, quantize8(0.5))
	}
}

// TestPainter_ScissorLimitsPainting clips a full-target quad to a
// sub-rectangle and checks nothing lands outside it.
func TestPainter_ScissorLimitsPainting(t *testing.T) {
	const w, h = 16, 16
	p := newTestPainter(t, FormatUnorm, w, h)
	p.CreateTexture(1, solidImage(w, h, 255, 255, 255, 255))

	scene := []ClippedMesh{{
		ClipRect: Rect{Min: V2(4, 4), Max: V2(12, 12)},
		Mesh:     quadMesh(1, 0, 0, w, h),
	}}
	if err := p.Paint(scene, 1); err != nil {
		t.Fatalf("Paint: %v", err)
	}

	img := p.Target().Image()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			inside := x >= 4 && x < 12 && y >= 4 && y < 12
			painted := img.Pix[img.PixOffset(x, y)+3] != 0
			if painted != inside {
				t.Fatalf("pixel (%d,%d): painted=%v, inside scissor=%v", x, y, painted, inside)
			}
		}
	}
}

// TestPainter_ScissorScale: clip rects are in logical points and get
// scaled; geometry is already physical.
func TestPainter_ScissorScale(t *testing.T) {
	const w, h = 16, 16
	p := newTestPainter(t, FormatUnorm, w, h)
	p.CreateTexture(1, solidImage(w, h, 255, 255, 255, 255))

	scene := []ClippedMesh{{
		ClipRect: Rect{Min: V2(0, 0), Max: V2(4, 4)},
		Mesh:     quadMesh(1, 0, 0, w, h),
	}}
	if err := p.Paint(scene, 2); err != nil {
		t.Fatalf("Paint: %v", err)
	}

	img := p.Target().Image()
	if img.Pix[img.PixOffset(7, 7)+3] == 0 {
		t.Error("pixel (7,7) inside scaled scissor not painted")
	}
	if img.Pix[img.PixOffset(8, 8)+3] != 0 {
		t.Error("pixel (8,8) outside scaled scissor painted")
	}
}

// TestPainter_EmptyClipSkipsMesh: a mesh clipped fully off screen
// paints nothing and reports no error, even with a missing texture.
func TestPainter_EmptyClipSkipsMesh(t *testing.T) {
	p := newTestPainter(t, FormatUnorm, 8, 8)
	scene := []ClippedMesh{{
		ClipRect: Rect{Min: V2(100, 100), Max: V2(200, 200)},
		Mesh:     quadMesh(99, 0, 0, 8, 8),
	}}
	if err := p.Paint(scene, 1); err != nil {
		t.Errorf("Paint: %v, want nil for fully clipped mesh", err)
	}
}

// TestPainter_MissingTexture reports ErrTextureNotFound.
func TestPainter_MissingTexture(t *testing.T) {
	p := newTestPainter(t, FormatSRGB, 8, 8)
	err := p.Paint([]ClippedMesh{fullClipMesh(quadMesh(42, 0, 0, 8, 8))}, 1)
	if !errors.Is(err, ErrTextureNotFound) {
		t.Errorf("err = %v, want ErrTextureNotFound", err)
	}
}

// TestPainter_DeferredFree: a freed texture survives until the end of
// the next frame.
func TestPainter_DeferredFree(t *testing.T) {
	p := newTestPainter(t, FormatUnorm, 8, 8)
	p.CreateTexture(1, solidImage(8, 8, 255, 0, 0, 255))
	scene := []ClippedMesh{fullClipMesh(quadMesh(1, 0, 0, 8, 8))}

	// Frame 1: free requested, draws still valid.
	p.FreeTexture(1)
	if err := p.Paint(scene, 1); err != nil {
		t.Fatalf("frame 1 Paint: %v", err)
	}
	p.EndFrame()

	// Frame 2: still alive, deletion lands at this frame's end.
	if err := p.Paint(scene, 1); err != nil {
		t.Fatalf("frame 2 Paint: %v", err)
	}
	p.EndFrame()

	// Frame 3: gone.
	if err := p.Paint(scene, 1); !errors.Is(err, ErrTextureNotFound) {
		t.Errorf("frame 3 Paint err = %v, want ErrTextureNotFound", err)
	}
}

// TestPainter_UpdateTexture patches a registered texture in place.
func TestPainter_UpdateTexture(t *testing.T) {
	p := newTestPainter(t, FormatUnorm, 8, 8)
	p.CreateTexture(1, solidImage(8, 8, 0, 0, 0, 255))

	if err := p.UpdateTexture(1, solidImage(8, 8, 0, 255, 0, 255), image.Pt(0, 0)); err != nil {
		t.Fatalf("UpdateTexture: %v", err)
	}
	if err := p.Paint([]ClippedMesh{fullClipMesh(quadMesh(1, 0, 0, 8, 8))}, 1); err != nil {
		t.Fatalf("Paint: %v", err)
	}
	px := p.Target().Image().Pix
	if px[0] != 0 || px[1] != 255 {
		t.Errorf("pixel = (%d,%d,...), want green after update", px[0], px[1])
	}

	if err := p.UpdateTexture(99, solidImage(1, 1, 0, 0, 0, 0), image.Pt(0, 0)); !errors.Is(err, ErrTextureNotFound) {
		t.Errorf("UpdateTexture(99) err = %v, want ErrTextureNotFound", err)
	}
}
