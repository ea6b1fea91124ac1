// Package wgpu provides the GPU pipeline for uipaint meshes on top of
// gogpu/wgpu.
//
// It owns the WGSL shader, the bind group and pipeline layouts, the
// three standard samplers, and a pipeline cache keyed by target format
// and encoding. The caller supplies the hal device and drives command
// encoding; this package only builds the state objects.
//
// The fragment entry point is chosen per target: sRGB-encoded targets
// get fs_main_linear_target, plain unorm targets get
// fs_main_gamma_target. Either way the stored bytes match the software
// painter in the root package.
package wgpu
