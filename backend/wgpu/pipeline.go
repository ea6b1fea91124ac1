package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/uipaint"
)

// Errors returned when building GPU state.
var (
	// ErrNilDevice is returned when creating pipelines without a device.
	ErrNilDevice = errors.New("wgpu: device is nil")
)

// screenUniformSize is the byte size of the screen uniform buffer.
// Layout: screen_size (vec2<f32>) + padding (vec2<f32>) = 16 bytes.
const screenUniformSize = 16

// Buffer layout constants, kept in sync with uipaint.EncodeVertices.
const (
	vertexStride = uipaint.VertexStride
	indexSize    = uipaint.IndexSize
)

// Pipelines owns the shader module, layouts, and samplers shared by
// every UI render pipeline, plus a cache of compiled pipelines keyed
// by target format and encoding.
type Pipelines struct {
	device hal.Device

	shader        hal.ShaderModule
	screenLayout  hal.BindGroupLayout
	textureLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout

	linearSampler  hal.Sampler
	nearestSampler hal.Sampler
	fontSampler    hal.Sampler

	cache *pipelineCache
}

// NewPipelines compiles the UI shader and creates the shared GPU
// state. Pipelines themselves are built lazily per target format.
func NewPipelines(device hal.Device) (*Pipelines, error) {
	if device == nil {
		return nil, ErrNilDevice
	}

	p := &Pipelines{device: device}
	if err := p.init(); err != nil {
		p.Destroy()
		return nil, err
	}
	p.cache = newPipelineCache(p.create)
	return p, nil
}

func (p *Pipelines) init() error {
	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "ui_shader",
		Source: hal.ShaderSource{WGSL: uiShaderWGSL},
	})
	if err != nil {
		return fmt.Errorf("wgpu: compile ui shader: %w", err)
	}
	p.shader = shader

	// Group 0: screen uniform, vertex stage only.
	screenLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "ui_screen_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create screen layout: %w", err)
	}
	p.screenLayout = screenLayout

	// Group 1: texture + sampler, fragment stage. Rebound per draw
	// call as the texture changes.
	textureLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "ui_texture_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create texture layout: %w", err)
	}
	p.textureLayout = textureLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "ui_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.screenLayout, p.textureLayout},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	return p.createSamplers()
}

// createSamplers builds the three standard samplers: bilinear repeat
// for images, nearest for pixel art, bilinear clamp for font atlases.
func (p *Pipelines) createSamplers() error {
	linearSampler, err := p.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "ui_linear_sampler",
		AddressModeU: gputypes.AddressModeRepeat,
		AddressModeV: gputypes.AddressModeRepeat,
		AddressModeW: gputypes.AddressModeRepeat,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create linear sampler: %w", err)
	}
	p.linearSampler = linearSampler

	nearestSampler, err := p.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "ui_nearest_sampler",
		AddressModeU: gputypes.AddressModeRepeat,
		AddressModeV: gputypes.AddressModeRepeat,
		AddressModeW: gputypes.AddressModeRepeat,
		MagFilter:    gputypes.FilterModeNearest,
		MinFilter:    gputypes.FilterModeNearest,
		MipmapFilter: gputypes.FilterModeNearest,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create nearest sampler: %w", err)
	}
	p.nearestSampler = nearestSampler

	fontSampler, err := p.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "ui_font_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create font sampler: %w", err)
	}
	p.fontSampler = fontSampler

	return nil
}

// SamplerFor maps a painter sampler preset to its GPU counterpart.
func (p *Pipelines) SamplerFor(s uipaint.Sampler) hal.Sampler {
	switch s {
	case uipaint.NearestSampler():
		return p.nearestSampler
	case uipaint.FontSampler():
		return p.fontSampler
	default:
		return p.linearSampler
	}
}

// ScreenLayout returns the bind group layout for the screen uniform
// (group 0).
func (p *Pipelines) ScreenLayout() hal.BindGroupLayout { return p.screenLayout }

// TextureLayout returns the bind group layout for the texture and
// sampler pair (group 1).
func (p *Pipelines) TextureLayout() hal.BindGroupLayout { return p.textureLayout }

// Get returns the render pipeline for a target format and encoding,
// building and caching it on first use. Safe for concurrent use.
func (p *Pipelines) Get(format gputypes.TextureFormat, enc uipaint.TargetEncoding) (hal.RenderPipeline, error) {
	return p.cache.get(pipelineKey{Format: format, Encoding: enc})
}

// CacheStats reports pipeline cache hits and misses.
func (p *Pipelines) CacheStats() (hits, misses uint64) {
	return p.cache.stats()
}

// create builds one render pipeline. Called by the cache on miss.
func (p *Pipelines) create(key pipelineKey) (hal.RenderPipeline, error) {
	vertexBufferLayout := []gputypes.VertexBufferLayout{
		{
			ArrayStride: vertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{
					Format:         gputypes.VertexFormatFloat32x2,
					Offset:         uipaint.VertexPosOffset,
					ShaderLocation: 0,
				},
				{
					Format:         gputypes.VertexFormatFloat32x2,
					Offset:         uipaint.VertexUVOffset,
					ShaderLocation: 1,
				},
				{
					Format:         gputypes.VertexFormatFloat32x4,
					Offset:         uipaint.VertexColorOffset,
					ShaderLocation: 2,
				},
			},
		},
	}

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "ui_pipeline_" + key.Encoding.String(),
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: vertexEntryPoint,
			Buffers:    vertexBufferLayout,
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: FragmentEntryPoint(key.Encoding),
			Targets: []gputypes.ColorTargetState{
				{
					Format:    key.Format,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create ui pipeline (%s): %w", key.Encoding, err)
	}

	uipaint.Logger().Debug("created ui pipeline",
		"format", key.Format, "encoding", key.Encoding.String())
	return pipeline, nil
}

// Destroy releases all GPU resources in reverse creation order. Safe
// to call on partially initialized state.
func (p *Pipelines) Destroy() {
	if p.device == nil {
		return
	}
	if p.cache != nil {
		for _, pipeline := range p.cache.drain() {
			p.device.DestroyRenderPipeline(pipeline)
		}
	}
	if p.fontSampler != nil {
		p.device.DestroySampler(p.fontSampler)
		p.fontSampler = nil
	}
	if p.nearestSampler != nil {
		p.device.DestroySampler(p.nearestSampler)
		p.nearestSampler = nil
	}
	if p.linearSampler != nil {
		p.device.DestroySampler(p.linearSampler)
		p.linearSampler = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.textureLayout != nil {
		p.device.DestroyBindGroupLayout(p.textureLayout)
		p.textureLayout = nil
	}
	if p.screenLayout != nil {
		p.device.DestroyBindGroupLayout(p.screenLayout)
		p.screenLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}
