package raster

import "testing"

func vtx(x, y, u, v float32) Vertex {
	return Vertex{X: x, Y: y, U: u, V: v, Color: RGBA{R: 1, G: 1, B: 1, A: 1}}
}

func fullClip(w, h int) Clip {
	return Clip{MinX: 0, MinY: 0, MaxX: w, MaxY: h}
}

// TestFillTriangle_Coverage checks a right triangle covers the
// expected half of its bounding square.
func TestFillTriangle_Coverage(t *testing.T) {
	covered := map[[2]int]bool{}
	FillTriangle(fullClip(8, 8),
		vtx(0, 0, 0, 0), vtx(8, 0, 1, 0), vtx(0, 8, 0, 1),
		func(x, y int, u, v float32, c RGBA) {
			covered[[2]int{x, y}] = true
		})

	if !covered[[2]int{0, 0}] {
		t.Error("corner pixel (0,0) not covered")
	}
	if covered[[2]int{7, 7}] {
		t.Error("pixel (7,7) outside hypotenuse was covered")
	}
	// Pixel centers strictly below the diagonal x+y=8 are inside.
	want := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if float32(x)+0.5+float32(y)+0.5 < 8 {
				want++
			}
		}
	}
	if len(covered) != want {
		t.Errorf("covered %d pixels, want %d", len(covered), want)
	}
}

// TestFillTriangle_WindingIndependent verifies both windings fill the
// same pixels.
func TestFillTriangle_WindingIndependent(t *testing.T) {
	fill := func(v0, v1, v2 Vertex) map[[2]int]bool {
		got := map[[2]int]bool{}
		FillTriangle(fullClip(16, 16), v0, v1, v2, func(x, y int, u, v float32, c RGBA) {
			got[[2]int{x, y}] = true
		})
		return got
	}
	a := vtx(2, 2, 0, 0)
	b := vtx(14, 3, 1, 0)
	c := vtx(5, 13, 0, 1)

	cw := fill(a, b, c)
	ccw := fill(a, c, b)
	if len(cw) != len(ccw) {
		t.Fatalf("winding changed coverage: %d vs %d pixels", len(cw), len(ccw))
	}
	for px := range cw {
		if !ccw[px] {
			t.Fatalf("pixel %v covered in one winding only", px)
		}
	}
}

// TestFillTriangle_SharedEdgeNoOverlap splits a quad along its
// diagonal and checks every interior pixel is shaded exactly once.
func TestFillTriangle_SharedEdgeNoOverlap(t *testing.T) {
	counts := map[[2]int]int{}
	shade := func(x, y int, u, v float32, c RGBA) {
		counts[[2]int{x, y}]++
	}
	tl := vtx(0, 0, 0, 0)
	tr := vtx(8, 0, 1, 0)
	bl := vtx(0, 8, 0, 1)
	br := vtx(8, 8, 1, 1)

	FillTriangle(fullClip(8, 8), tl, tr, bl, shade)
	FillTriangle(fullClip(8, 8), tr, br, bl, shade)

	if len(counts) != 64 {
		t.Errorf("quad covered %d pixels, want 64", len(counts))
	}
	for px, n := range counts {
		if n != 1 {
			t.Errorf("pixel %v shaded %d times", px, n)
		}
	}
}

// TestFillTriangle_Clip verifies no shading outside the clip bounds.
func TestFillTriangle_Clip(t *testing.T) {
	clip := Clip{MinX: 2, MinY: 2, MaxX: 6, MaxY: 6}
	FillTriangle(clip,
		vtx(0, 0, 0, 0), vtx(10, 0, 1, 0), vtx(0, 10, 0, 1),
		func(x, y int, u, v float32, c RGBA) {
			if x < 2 || x >= 6 || y < 2 || y >= 6 {
				t.Errorf("pixel (%d,%d) shaded outside clip", x, y)
			}
		})
}

// TestFillTriangle_Interpolation samples UVs at a known pixel.
func TestFillTriangle_Interpolation(t *testing.T) {
	var gotU, gotV float32
	found := false
	FillTriangle(fullClip(10, 10),
		vtx(0, 0, 0, 0), vtx(10, 0, 1, 0), vtx(0, 10, 0, 1),
		func(x, y int, u, v float32, c RGBA) {
			if x == 4 && y == 4 {
				gotU, gotV = u, v
				found = true
			}
		})
	if !found {
		t.Fatal("pixel (4,4) not covered")
	}
	// Pixel center (4.5, 4.5) in a 10x10 triangle maps to uv (0.45, 0.45).
	if abs(gotU-0.45) > 1e-6 || abs(gotV-0.45) > 1e-6 {
		t.Errorf("uv at (4,4) = (%v, %v), want (0.45, 0.45)", gotU, gotV)
	}
}

// TestFillTriangle_ColorInterpolation checks the color gradient
// midpoint between two vertex colors.
func TestFillTriangle_ColorInterpolation(t *testing.T) {
	red := Vertex{X: 0, Y: 0, Color: RGBA{R: 1, A: 1}}
	green := Vertex{X: 8, Y: 0, Color: RGBA{G: 1, A: 1}}
	blue := Vertex{X: 0, Y: 8, Color: RGBA{B: 1, A: 1}}

	var got RGBA
	found := false
	FillTriangle(fullClip(8, 8), red, green, blue, func(x, y int, u, v float32, c RGBA) {
		if x == 0 && y == 0 {
			got = c
			found = true
		}
	})
	if !found {
		t.Fatal("pixel (0,0) not covered")
	}
	if got.R < 0.8 {
		t.Errorf("pixel nearest the red vertex has R = %v", got.R)
	}
	if got.A != 1 {
		t.Errorf("alpha = %v, want 1", got.A)
	}
}

// TestFillTriangle_Degenerate must not shade anything.
func TestFillTriangle_Degenerate(t *testing.T) {
	FillTriangle(fullClip(8, 8),
		vtx(1, 1, 0, 0), vtx(5, 5, 1, 0), vtx(3, 3, 0, 1),
		func(x, y int, u, v float32, c RGBA) {
			t.Errorf("degenerate triangle shaded pixel (%d,%d)", x, y)
		})
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
