package uipaint

import (
	"encoding/binary"
	"math"
)

// Vertex is one element of a UI mesh, produced by an external layout
// engine and immutable once submitted.
type Vertex struct {
	// Pos is the position in physical pixels.
	Pos Vec2

	// UV is the normalized texture coordinate.
	UV Vec2

	// Color is the sRGB-encoded, premultiplied vertex color.
	Color Color
}

// Wire layout of one vertex in an upload buffer:
// float32x2 position at offset 0, float32x2 uv at offset 8,
// float32x4 color at offset 16. Little-endian.
const (
	// VertexStride is the byte size of one encoded vertex.
	VertexStride = 32

	// VertexPosOffset is the byte offset of the position attribute.
	VertexPosOffset = 0

	// VertexUVOffset is the byte offset of the texture coordinate.
	VertexUVOffset = 8

	// VertexColorOffset is the byte offset of the color attribute.
	VertexColorOffset = 16

	// IndexSize is the byte size of one encoded index.
	IndexSize = 4
)

// Mesh is a textured triangle list. Indices refer into Vertices in
// groups of three; the winding is not significant (no face culling).
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Texture  TextureID
}

// ClippedMesh pairs a mesh with the clip rectangle (in logical points)
// it must be scissored to.
type ClippedMesh struct {
	ClipRect Rect
	Mesh     Mesh
}

// DrawCall describes one scissored, textured draw into a shared vertex
// and index buffer.
type DrawCall struct {
	Scissor    ScissorRect
	Texture    TextureID
	BaseVertex int32
	IndexStart uint32
	IndexEnd   uint32
}

// EncodeVertices appends the wire form of vertices to dst and returns
// the extended slice.
func EncodeVertices(dst []byte, vertices []Vertex) []byte {
	for _, v := range vertices {
		var buf [VertexStride]byte
		binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(v.Pos.X))
		binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(v.Pos.Y))
		binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(v.UV.X))
		binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(v.UV.Y))
		binary.LittleEndian.PutUint32(buf[16:], math.Float32bits(v.Color.R))
		binary.LittleEndian.PutUint32(buf[20:], math.Float32bits(v.Color.G))
		binary.LittleEndian.PutUint32(buf[24:], math.Float32bits(v.Color.B))
		binary.LittleEndian.PutUint32(buf[28:], math.Float32bits(v.Color.A))
		dst = append(dst, buf[:]...)
	}
	return dst
}

// EncodeIndices appends the wire form of indices to dst and returns the
// extended slice.
func EncodeIndices(dst []byte, indices []uint32) []byte {
	for _, i := range indices {
		var buf [IndexSize]byte
		binary.LittleEndian.PutUint32(buf[:], i)
		dst = append(dst, buf[:]...)
	}
	return dst
}

// Batch flattens clipped meshes into one vertex buffer, one index
// buffer, and the draw calls that index into them.
//
// Meshes whose scissor rectangle clamps to empty are dropped. scale is
// physical pixels per logical point; fbWidth and fbHeight are the
// physical framebuffer size. The order of draw calls preserves the
// submission order, which is the painter's back-to-front order.
func Batch(meshes []ClippedMesh, scale float32, fbWidth, fbHeight uint32) (vertexBuf, indexBuf []byte, calls []DrawCall) {
	var vertexCount, indexCount int
	for _, m := range meshes {
		vertexCount += len(m.Mesh.Vertices)
		indexCount += len(m.Mesh.Indices)
	}
	vertexBuf = make([]byte, 0, vertexCount*VertexStride)
	indexBuf = make([]byte, 0, indexCount*IndexSize)

	var baseVertex int32
	var indexOffset uint32
	for _, m := range meshes {
		scissor, ok := ScissorFromClipRect(m.ClipRect, scale, fbWidth, fbHeight)
		if !ok {
			continue
		}
		vertexBuf = EncodeVertices(vertexBuf, m.Mesh.Vertices)
		indexBuf = EncodeIndices(indexBuf, m.Mesh.Indices)
		calls = append(calls, DrawCall{
			Scissor:    scissor,
			Texture:    m.Mesh.Texture,
			BaseVertex: baseVertex,
			IndexStart: indexOffset,
			IndexEnd:   indexOffset + uint32(len(m.Mesh.Indices)),
		})
		baseVertex += int32(len(m.Mesh.Vertices))
		indexOffset += uint32(len(m.Mesh.Indices))
	}
	return vertexBuf, indexBuf, calls
}
