package graphics

import (
	"fmt"
	"unsafe"

	"github.com/UmbraEngine/umbra-go/common"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// glContext implements Context on an OpenGL 4.1 core profile context. It
// assumes the GL context is current on the calling thread for every call.
type glContext struct {
	// window is non-nil when the context owns an offscreen GLFW surface.
	window glSurface
	screen *glScreenTarget
}

var _ Context = (*glContext)(nil)

// glSurface is the slice of the GLFW window the context needs for teardown.
type glSurface interface {
	Destroy()
}

// NewGLContext wraps the OpenGL context current on the calling thread. The
// caller keeps ownership of the surface the context renders to; Destroy only
// releases this wrapper. Use NewOffscreenGLContext when no context exists yet.
//
// Returns:
//   - Context: the wrapped context
//   - error: when OpenGL function loading fails
func NewGLContext() (Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to load OpenGL functions: %w", err)
	}
	c := &glContext{}
	c.screen = &glScreenTarget{}
	common.Logger().Info("OpenGL context acquired",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
	)
	return c, nil
}

func (c *glContext) NewProgram(vertexSource, fragmentSource string) (Program, error) {
	return newGLProgram(vertexSource, fragmentSource)
}

func (c *glContext) NewVertexBuffer(data []float32) (VertexBuffer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("vertex buffer needs at least one component")
	}
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(gl.ARRAY_BUFFER, id)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return &glVertexBuffer{id: id, count: len(data)}, nil
}

func (c *glContext) NewElementBuffer(data []uint32) (ElementBuffer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("element buffer needs at least one index")
	}
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, id)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return &glElementBuffer{id: id, count: len(data)}, nil
}

func (c *glContext) NewUniformBuffer() (UniformBuffer, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	return &glUniformBuffer{id: id}, nil
}

func (c *glContext) NewColorTexture2D(width, height int, format ColorFormat, pixels []byte, opts TextureOptions) (Texture2D, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid texture size %dx%d", width, height)
	}
	if pixels != nil && len(pixels) != width*height*format.BytesPerPixel() {
		return nil, fmt.Errorf("pixel data is %d bytes, want %d for %dx%d",
			len(pixels), width*height*format.BytesPerPixel(), width, height)
	}
	t := &glTexture2D{width: width, height: height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	applyTextureOptions(gl.TEXTURE_2D, opts)
	internal, external := glColorFormat(format)
	var ptr unsafe.Pointer
	if pixels != nil {
		ptr = gl.Ptr(pixels)
	}
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(width), int32(height), 0, external, gl.UNSIGNED_BYTE, ptr)
	if opts.GenerateMipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

func (c *glContext) NewColorTexture2DArray(width, height, layers int, format ColorFormat, opts TextureOptions) (Texture2DArray, error) {
	if width <= 0 || height <= 0 || layers <= 0 {
		return nil, fmt.Errorf("invalid texture array size %dx%dx%d", width, height, layers)
	}
	t := &glTexture2DArray{width: width, height: height, layers: layers}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, t.id)
	applyTextureOptions(gl.TEXTURE_2D_ARRAY, opts)
	internal, external := glColorFormat(format)
	gl.TexImage3D(gl.TEXTURE_2D_ARRAY, 0, internal, int32(width), int32(height), int32(layers), 0, external, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, 0)
	return t, nil
}

func (c *glContext) NewDepthTexture2D(width, height int, format DepthFormat, opts TextureOptions) (DepthTexture2D, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid texture size %dx%d", width, height)
	}
	t := &glDepthTexture2D{width: width, height: height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	applyTextureOptions(gl.TEXTURE_2D, opts)
	internal, xtype := glDepthFormat(format)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(width), int32(height), 0, gl.DEPTH_COMPONENT, xtype, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

func (c *glContext) NewDepthTexture2DArray(width, height, layers int, format DepthFormat, opts TextureOptions) (DepthTexture2DArray, error) {
	if width <= 0 || height <= 0 || layers <= 0 {
		return nil, fmt.Errorf("invalid texture array size %dx%dx%d", width, height, layers)
	}
	t := &glDepthTexture2DArray{width: width, height: height, layers: layers}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, t.id)
	applyTextureOptions(gl.TEXTURE_2D_ARRAY, opts)
	internal, xtype := glDepthFormat(format)
	gl.TexImage3D(gl.TEXTURE_2D_ARRAY, 0, internal, int32(width), int32(height), int32(layers), 0, gl.DEPTH_COMPONENT, xtype, nil)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, 0)
	return t, nil
}

func (c *glContext) NewRenderTarget(color Texture2DArray, colorLayers []int, depth DepthTexture2DArray, depthLayer int) (RenderTarget, error) {
	return newGLRenderTarget(color, colorLayers, depth, depthLayer)
}

func (c *glContext) NewDepthTarget(depth DepthTexture2D) (RenderTarget, error) {
	return newGLDepthTarget(depth)
}

func (c *glContext) Screen() ScreenTarget {
	return c.screen
}

func (c *glContext) CopyDepth(src DepthTexture2DArray, srcLayer int, dst DepthTexture2D) error {
	return glCopyDepth(src, srcLayer, dst)
}

func (c *glContext) Destroy() {
	if c.window != nil {
		destroyOffscreenSurface(c.window)
		c.window = nil
	}
}

// applyTextureOptions sets sampler state on the currently bound texture.
func applyTextureOptions(target uint32, opts TextureOptions) {
	gl.TexParameteri(target, gl.TEXTURE_MIN_FILTER, glMinFilter(opts.MinFilter, opts.GenerateMipmaps))
	gl.TexParameteri(target, gl.TEXTURE_MAG_FILTER, glInterpolation(opts.MagFilter))
	gl.TexParameteri(target, gl.TEXTURE_WRAP_S, glWrapping(opts.WrapS))
	gl.TexParameteri(target, gl.TEXTURE_WRAP_T, glWrapping(opts.WrapT))
}

func glInterpolation(i Interpolation) int32 {
	if i == InterpolationLinear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func glMinFilter(i Interpolation, mipmaps bool) int32 {
	if !mipmaps {
		return glInterpolation(i)
	}
	if i == InterpolationLinear {
		return gl.LINEAR_MIPMAP_LINEAR
	}
	return gl.NEAREST_MIPMAP_NEAREST
}

func glWrapping(w Wrapping) int32 {
	switch w {
	case WrappingRepeat:
		return gl.REPEAT
	case WrappingMirroredRepeat:
		return gl.MIRRORED_REPEAT
	default:
		return gl.CLAMP_TO_EDGE
	}
}

func glColorFormat(f ColorFormat) (internal int32, external uint32) {
	switch f {
	case FormatRGB8:
		return gl.RGB8, gl.RGB
	case FormatR8:
		return gl.R8, gl.RED
	default:
		return gl.RGBA8, gl.RGBA
	}
}

func glDepthFormat(f DepthFormat) (internal int32, xtype uint32) {
	switch f {
	case DepthFormat24:
		return gl.DEPTH_COMPONENT24, gl.UNSIGNED_INT
	case DepthFormat16:
		return gl.DEPTH_COMPONENT16, gl.UNSIGNED_SHORT
	default:
		return gl.DEPTH_COMPONENT32F, gl.FLOAT
	}
}
