package uipaint

// Option configures a Painter during creation.
//
// Example:
//
//	// Default: bilinear sampling, mipmaps enabled
//	p := uipaint.NewPainter(target)
//
//	// Pixel-art content: nearest sampling, no mip chain
//	p := uipaint.NewPainter(target,
//		uipaint.WithDefaultSampler(uipaint.NearestSampler()),
//		uipaint.WithMipmaps(false))
type Option func(*options)

// options holds optional painter configuration.
type options struct {
	defaultSampler Sampler
	mipmaps        bool
}

func defaultOptions() options {
	return options{
		defaultSampler: LinearSampler(),
		mipmaps:        true,
	}
}

// WithDefaultSampler sets the sampler used by [Painter.CreateTexture]
// when registering textures. Textures built with [NewTexture] keep the
// sampler they were created with.
func WithDefaultSampler(s Sampler) Option {
	return func(o *options) {
		o.defaultSampler = s
	}
}

// WithMipmaps controls whether [Painter.CreateTexture] builds a mip
// chain. Disable for content always drawn at native scale, such as
// font atlases.
func WithMipmaps(enabled bool) Option {
	return func(o *options) {
		o.mipmaps = enabled
	}
}
