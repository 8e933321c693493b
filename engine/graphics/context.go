// package graphics defines the low-level graphics contract the engine renders
// through: program compilation from source text, buffer and texture allocation,
// render targets over texture layers, and draw submission under an explicit
// render state. The package also provides the OpenGL 4.1 core implementation
// of that contract; every other engine package depends only on the interfaces,
// so tests substitute their own Context.
package graphics

// Context is the graphics device collaborator. One Context owns every GPU
// object it creates; objects from different Contexts must not be mixed.
//
// A Context is not safe for concurrent use. All calls, including calls on the
// objects a Context creates, must happen on the single rendering thread (for
// the OpenGL implementation, the thread holding the GL context).
type Context interface {
	// NewProgram compiles and links a shader program from plain vertex and
	// fragment source text. Sources carry no version directive; the backend
	// prepends the dialect header it targets.
	//
	// Parameters:
	//   - vertexSource: vertex stage source text
	//   - fragmentSource: fragment stage source text
	//
	// Returns:
	//   - Program: the compiled program
	//   - error: a *ShaderError on compile or link failure
	NewProgram(vertexSource, fragmentSource string) (Program, error)

	// NewVertexBuffer uploads a flat float32 attribute slice to the GPU.
	//
	// Parameters:
	//   - data: tightly packed attribute components
	//
	// Returns:
	//   - VertexBuffer: the GPU buffer
	//   - error: allocation failure
	NewVertexBuffer(data []float32) (VertexBuffer, error)

	// NewElementBuffer uploads triangle indices to the GPU.
	//
	// Parameters:
	//   - data: triangle corner indices, three per triangle
	//
	// Returns:
	//   - ElementBuffer: the GPU buffer
	//   - error: allocation failure
	NewElementBuffer(data []uint32) (ElementBuffer, error)

	// NewUniformBuffer allocates an empty uniform block buffer. Contents are
	// supplied through UniformBuffer.Update before first use.
	NewUniformBuffer() (UniformBuffer, error)

	// NewColorTexture2D allocates a 2D color texture, optionally uploading
	// initial texels.
	//
	// Parameters:
	//   - width, height: texture size in texels
	//   - format: texel storage format
	//   - pixels: initial data matching width*height*format size, or nil
	//   - opts: sampler and mipmap parameters
	NewColorTexture2D(width, height int, format ColorFormat, pixels []byte, opts TextureOptions) (Texture2D, error)

	// NewColorTexture2DArray allocates a layered 2D color texture, the
	// storage shape of the deferred attribute buffer.
	NewColorTexture2DArray(width, height, layers int, format ColorFormat, opts TextureOptions) (Texture2DArray, error)

	// NewDepthTexture2D allocates a 2D depth texture renderable as a depth
	// attachment and sampleable as a plain texture.
	NewDepthTexture2D(width, height int, format DepthFormat, opts TextureOptions) (DepthTexture2D, error)

	// NewDepthTexture2DArray allocates a layered 2D depth texture.
	NewDepthTexture2DArray(width, height, layers int, format DepthFormat, opts TextureOptions) (DepthTexture2DArray, error)

	// NewRenderTarget opens a framebuffer over the given color layers and one
	// depth layer. Either side may be nil for color-only or depth-only
	// targets. The target stays valid until destroyed or until one of the
	// attached textures is destroyed, whichever comes first.
	//
	// Parameters:
	//   - color: layered color texture, or nil
	//   - colorLayers: which layers of color to attach, in attachment order
	//   - depth: layered depth texture, or nil
	//   - depthLayer: which layer of depth to attach
	//
	// Returns:
	//   - RenderTarget: the framebuffer wrapper
	//   - error: incomplete framebuffer configuration
	NewRenderTarget(color Texture2DArray, colorLayers []int, depth DepthTexture2DArray, depthLayer int) (RenderTarget, error)

	// NewDepthTarget opens a depth-only framebuffer over a single 2D depth
	// texture. Shadow map passes render through it.
	//
	// Parameters:
	//   - depth: the depth texture to render into
	//
	// Returns:
	//   - RenderTarget: the framebuffer wrapper
	//   - error: incomplete framebuffer configuration
	NewDepthTarget(depth DepthTexture2D) (RenderTarget, error)

	// Screen returns the default framebuffer as a render target.
	Screen() ScreenTarget

	// CopyDepth copies one layer of a depth array into a 2D depth texture of
	// the same size. The destination is a point-in-time snapshot, unaffected
	// by later writes to the source.
	CopyDepth(src DepthTexture2DArray, srcLayer int, dst DepthTexture2D) error

	// Destroy releases context-owned bookkeeping. Objects created by the
	// context carry their own Destroy and are not released here.
	Destroy()
}

// VertexBuffer is a GPU-resident attribute buffer.
type VertexBuffer interface {
	// Count returns the number of float32 components in the buffer.
	Count() int
	// Destroy releases the GPU buffer. Safe to call more than once.
	Destroy()
}

// ElementBuffer is a GPU-resident triangle index buffer.
type ElementBuffer interface {
	// Count returns the number of indices in the buffer.
	Count() int
	// Destroy releases the GPU buffer. Safe to call more than once.
	Destroy()
}

// UniformBuffer is a GPU-resident uniform block buffer.
type UniformBuffer interface {
	// Update replaces the full buffer contents. The byte layout must match
	// the std140 rules of the block the buffer will be bound to.
	Update(data []byte) error
	// Destroy releases the GPU buffer. Safe to call more than once.
	Destroy()
}

// RenderTarget runs a render callback against a framebuffer configuration.
type RenderTarget interface {
	// Write binds the target, applies the clear state, invokes render, and
	// unbinds. The callback's draws land in the attached layers. Render state
	// changes made inside the callback do not outlive the call.
	//
	// Parameters:
	//   - clear: which channels to clear before rendering and to what values
	//   - render: draw callback; its error aborts the write and is returned
	//
	// Returns:
	//   - error: the callback's error, or a target binding failure
	Write(clear ClearState, render func() error) error

	// Destroy releases the framebuffer wrapper, not the attached textures.
	Destroy()
}

// ScreenTarget is the default framebuffer. In addition to rendering, the
// final image can be read back for presentation or encoding.
type ScreenTarget interface {
	RenderTarget

	// ReadColor reads back RGBA8 pixels from the given viewport rectangle.
	// Rows are returned bottom-to-top, matching the GL origin convention.
	ReadColor(viewport Viewport) ([]byte, error)
}
