package uipaint

// ClipFromScreen maps a vertex position in physical pixels to clip space.
//
// The screen rectangle [0,w]×[0,h] maps to [-1,1]×[-1,1] with the Y axis
// flipped (screen space is Y-down, clip space is Y-up):
//
//	clip = (2x/w - 1, 1 - 2y/h, 0, 1)
//
// Texture coordinates and vertex color are not part of the transform;
// they pass through to the fragment stage unmodified.
//
// screen must have positive dimensions; a zero width or height divides
// by zero.
func ClipFromScreen(pos, screen Vec2) Vec4 {
	return Vec4{
		X: 2*pos.X/screen.X - 1,
		Y: 1 - 2*pos.Y/screen.Y,
		Z: 0,
		W: 1,
	}
}
