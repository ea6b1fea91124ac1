// Package uipaint renders UI meshes with gamma-correct compositing.
//
// # Overview
//
// uipaint draws textured, vertex-tinted triangle meshes the way
// immediate-mode UI toolkits emit them: positions in physical pixels,
// sRGB-encoded premultiplied vertex colors, and per-mesh clip
// rectangles. It defines the exact color pipeline from vertex input to
// framebuffer byte, and ships two renderers that honor it:
//
//   - a software painter ([Painter]) targeting a [Pixmap]
//   - a GPU backend (backend/wgpu) built on gogpu/wgpu
//
// The two produce identical 8-bit output for opaque content, whether
// the target stores sRGB-encoded or raw unorm bytes.
//
// # Quick Start
//
//	import "github.com/gogpu/uipaint"
//
//	target := uipaint.NewPixmap(800, 600, uipaint.FormatSRGB)
//	p := uipaint.NewPainter(target)
//	p.CreateTexture(1, atlasImage)
//
//	err := p.Paint(meshes, 2.0) // 2x display scale
//	p.EndFrame()
//
// # Color Pipeline
//
// Vertex colors and texel values are sRGB-encoded. For an sRGB-encoded
// target the tinted sample is stored verbatim; for a raw unorm target
// it is first converted to linear light with the piecewise sRGB
// transfer function. Blending always happens in the target's storage
// space, matching GPU fixed-function behavior.
//
// # Architecture
//
//   - Public API: Painter, Pixmap, Mesh, Texture, Sampler, Color
//   - Internal: gamma (sRGB transfer), raster (triangle fill)
//   - Backends: wgpu (pipelines, WGSL shaders, SPIR-V compilation)
package uipaint
