// Package raster fills triangles with interpolated vertex attributes.
package raster

// RGBA is a premultiplied color with float channels (internal copy to
// avoid an import cycle with the root package).
type RGBA struct {
	R, G, B, A float32
}

// Vertex carries a screen-space position in pixels, texture
// coordinates, and a color.
type Vertex struct {
	X, Y  float32
	U, V  float32
	Color RGBA
}

// Clip bounds rasterization to [MinX,MaxX) x [MinY,MaxY) in pixels.
type Clip struct {
	MinX, MinY int
	MaxX, MaxY int
}

// ShadeFunc receives each covered pixel with attributes interpolated
// at the pixel center.
type ShadeFunc func(x, y int, u, v float32, color RGBA)

// edge evaluates the signed area of triangle (a, b, p), twice. The
// sign tells which side of edge a->b the point p lies on.
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// FillTriangle rasterizes the triangle v0 v1 v2, calling shade for
// every pixel whose center lies inside it and inside clip. Both
// windings are accepted. Attributes are interpolated with barycentric
// weights; no perspective correction, UI meshes are affine.
func FillTriangle(clip Clip, v0, v1, v2 Vertex, shade ShadeFunc) {
	area := edge(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y)
	if area == 0 {
		return
	}
	// Normalize to counter-clockwise so the inside test is a sign
	// check regardless of input winding.
	if area < 0 {
		v1, v2 = v2, v1
		area = -area
	}

	minX, minY, maxX, maxY := bounds(clip, v0, v1, v2)
	if minX >= maxX || minY >= maxY {
		return
	}

	invArea := 1 / area

	// Top-left fill rule: pixels exactly on a shared edge belong to
	// one triangle only, so adjacent translucent triangles never
	// double-blend along their seam.
	tl0 := topLeft(v1, v2)
	tl1 := topLeft(v2, v0)
	tl2 := topLeft(v0, v1)

	for y := minY; y < maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x < maxX; x++ {
			px := float32(x) + 0.5

			w0 := edge(v1.X, v1.Y, v2.X, v2.Y, px, py)
			w1 := edge(v2.X, v2.Y, v0.X, v0.Y, px, py)
			w2 := edge(v0.X, v0.Y, v1.X, v1.Y, px, py)
			if !covered(w0, tl0) || !covered(w1, tl1) || !covered(w2, tl2) {
				continue
			}

			b0 := w0 * invArea
			b1 := w1 * invArea
			b2 := w2 * invArea

			u := b0*v0.U + b1*v1.U + b2*v2.U
			v := b0*v0.V + b1*v1.V + b2*v2.V
			c := RGBA{
				R: b0*v0.Color.R + b1*v1.Color.R + b2*v2.Color.R,
				G: b0*v0.Color.G + b1*v1.Color.G + b2*v2.Color.G,
				B: b0*v0.Color.B + b1*v1.Color.B + b2*v2.Color.B,
				A: b0*v0.Color.A + b1*v1.Color.A + b2*v2.Color.A,
			}

			shade(x, y, u, v, c)
		}
	}
}

func covered(w float32, topLeft bool) bool {
	if w > 0 {
		return true
	}
	return w == 0 && topLeft
}

// topLeft reports whether edge a->b of a positive-area triangle
// (clockwise in y-down screen space) is a top or left edge.
func topLeft(a, b Vertex) bool {
	if a.Y == b.Y {
		return b.X > a.X
	}
	return b.Y < a.Y
}

// bounds intersects the triangle's pixel bounding box with clip.
func bounds(clip Clip, v0, v1, v2 Vertex) (minX, minY, maxX, maxY int) {
	minXf := min(v0.X, min(v1.X, v2.X))
	minYf := min(v0.Y, min(v1.Y, v2.Y))
	maxXf := max(v0.X, max(v1.X, v2.X))
	maxYf := max(v0.Y, max(v1.Y, v2.Y))

	minX = max(int(minXf), clip.MinX)
	minY = max(int(minYf), clip.MinY)
	maxX = min(int(maxXf)+1, clip.MaxX)
	maxY = min(int(maxYf)+1, clip.MaxY)
	return minX, minY, maxX, maxY
}
