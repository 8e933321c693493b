package graphics

// Interpolation selects the sampler filter. The zero value is Nearest, which
// is what attribute buffers read back by lighting passes require (filtered
// G-buffer texels would mix unrelated surface attributes).
type Interpolation int

const (
	InterpolationNearest Interpolation = iota
	InterpolationLinear
)

// Wrapping selects sampler behavior outside the [0, 1] coordinate range. The
// zero value is ClampToEdge.
type Wrapping int

const (
	WrappingClampToEdge Wrapping = iota
	WrappingRepeat
	WrappingMirroredRepeat
)

// ColorFormat is the texel storage format of a color texture.
type ColorFormat int

const (
	FormatRGBA8 ColorFormat = iota
	FormatRGB8
	FormatR8
)

// BytesPerPixel returns the tightly packed size of one texel.
func (f ColorFormat) BytesPerPixel() int {
	switch f {
	case FormatRGB8:
		return 3
	case FormatR8:
		return 1
	default:
		return 4
	}
}

// DepthFormat is the texel storage format of a depth texture.
type DepthFormat int

const (
	DepthFormat32F DepthFormat = iota
	DepthFormat24
	DepthFormat16
)

// TextureOptions bundles sampler and mipmap parameters for texture creation.
// The zero value (Nearest filtering, ClampToEdge wrapping, no mipmaps) is the
// exact configuration attribute and depth buffers need; material textures
// usually want MaterialTextureOptions instead.
type TextureOptions struct {
	MinFilter       Interpolation
	MagFilter       Interpolation
	WrapS           Wrapping
	WrapT           Wrapping
	GenerateMipmaps bool
}

// MaterialTextureOptions returns the surface-texture defaults: linear
// filtering, repeat wrapping, mipmaps generated after upload.
func MaterialTextureOptions() TextureOptions {
	return TextureOptions{
		MinFilter:       InterpolationLinear,
		MagFilter:       InterpolationLinear,
		WrapS:           WrappingRepeat,
		WrapT:           WrappingRepeat,
		GenerateMipmaps: true,
	}
}

// Texture is any GPU texture a program can sample.
type Texture interface {
	Width() int
	Height() int
	// Destroy releases the GPU texture. Safe to call more than once.
	Destroy()
}

// Texture2D is a single-layer color texture.
type Texture2D interface {
	Texture
}

// Texture2DArray is a layered color texture. The deferred attribute buffer
// stores its per-pixel surface terms across the layers of one of these.
type Texture2DArray interface {
	Texture
	Layers() int
}

// DepthTexture2D is a single-layer depth texture, renderable as a depth
// attachment and sampleable as a plain float texture.
type DepthTexture2D interface {
	Texture
}

// DepthTexture2DArray is a layered depth texture.
type DepthTexture2DArray interface {
	Texture
	Layers() int
}
