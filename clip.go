package uipaint

import "github.com/chewxy/math32"

// Rect is an axis-aligned rectangle in logical points, with Min at the
// top left and Max at the bottom right.
type Rect struct {
	Min, Max Vec2
}

// ScissorRect is a clamped clip rectangle in physical framebuffer
// pixels, in the form the scissor test consumes.
type ScissorRect struct {
	X, Y          uint32
	Width, Height uint32
}

// ScissorFromClipRect converts a clip rectangle in logical points into a
// scissor rectangle in physical pixels.
//
// scale is physical pixels per logical point. The rectangle is scaled,
// rounded to integers, and clamped: the top-left corner to the
// framebuffer bounds, then the bottom-right corner to [top-left,
// framebuffer]. Returns ok=false when the clamped rectangle is empty,
// in which case the draw should be skipped entirely.
func ScissorFromClipRect(clip Rect, scale float32, fbWidth, fbHeight uint32) (ScissorRect, bool) {
	// Round before clamping; clip rectangles may extend past the
	// framebuffer or into negative coordinates when a window scrolls,
	// and unclipped layers arrive as an infinite rectangle.
	minX := roundClamp(clip.Min.X*scale, int32(fbWidth))
	minY := roundClamp(clip.Min.Y*scale, int32(fbHeight))
	maxX := roundClamp(clip.Max.X*scale, int32(fbWidth))
	maxY := roundClamp(clip.Max.Y*scale, int32(fbHeight))

	if maxX < minX {
		maxX = minX
	}
	if maxY < minY {
		maxY = minY
	}

	w := uint32(maxX - minX)
	h := uint32(maxY - minY)
	if w == 0 || h == 0 {
		return ScissorRect{}, false
	}
	return ScissorRect{
		X:      uint32(minX),
		Y:      uint32(minY),
		Width:  w,
		Height: h,
	}, true
}

// roundClamp rounds v and saturates it into [0, hi]. Converting an
// out-of-range float to int32 is implementation-defined in Go, so the
// clamp happens in float space; NaN maps to 0.
func roundClamp(v float32, hi int32) int32 {
	r := math32.Round(v)
	if !(r > 0) {
		return 0
	}
	if r >= float32(hi) {
		return hi
	}
	return int32(r)
}
