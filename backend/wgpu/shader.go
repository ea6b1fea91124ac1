package wgpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"

	"github.com/gogpu/uipaint"
)

//go:embed shaders/ui.wgsl
var uiShaderWGSL string

// Fragment entry points in shaders/ui.wgsl.
const (
	vertexEntryPoint       = "vs_main"
	fragmentEntryLinearOut = "fs_main_linear_target"
	fragmentEntryGammaOut  = "fs_main_gamma_target"
)

// FragmentEntryPoint returns the shader entry point matching the
// target encoding.
func FragmentEntryPoint(enc uipaint.TargetEncoding) string {
	if enc == uipaint.TargetSRGB {
		return fragmentEntryGammaOut
	}
	return fragmentEntryLinearOut
}

// CompileShaderToSPIRV compiles the embedded WGSL source to SPIR-V
// words, for backends that reject WGSL directly.
func CompileShaderToSPIRV() ([]uint32, error) {
	spirvBytes, err := naga.Compile(uiShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("wgpu: compile ui shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}
