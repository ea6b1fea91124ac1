package uipaint

import "github.com/chewxy/math32"

// Vec2 is a 2D float32 vector. It is used both for positions in physical
// pixels and for normalized texture coordinates; float32 is the native
// width of the GPU pipeline this package mirrors.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience constructor for Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Cross returns the 2D cross product (the z component of the 3D cross
// product with z=0). Its sign gives the winding of a triangle.
func (v Vec2) Cross(w Vec2) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Vec4 is a 4D float32 vector, used for clip-space positions.
type Vec4 struct {
	X, Y, Z, W float32
}
