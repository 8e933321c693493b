package camera_test

import (
	"github.com/UmbraEngine/umbra-go/engine/graphics"
)

// mockContext implements graphics.Context in memory. The camera only ever
// asks it for uniform buffers; everything else returns zero values.
type mockContext struct {
	buffers []*mockUniformBuffer
}

var _ graphics.Context = (*mockContext)(nil)

func (c *mockContext) NewProgram(vertexSource, fragmentSource string) (graphics.Program, error) {
	return nil, nil
}

func (c *mockContext) NewVertexBuffer(data []float32) (graphics.VertexBuffer, error) {
	return nil, nil
}

func (c *mockContext) NewElementBuffer(data []uint32) (graphics.ElementBuffer, error) {
	return nil, nil
}

func (c *mockContext) NewUniformBuffer() (graphics.UniformBuffer, error) {
	b := &mockUniformBuffer{}
	c.buffers = append(c.buffers, b)
	return b, nil
}

func (c *mockContext) NewColorTexture2D(width, height int, format graphics.ColorFormat, pixels []byte, opts graphics.TextureOptions) (graphics.Texture2D, error) {
	return nil, nil
}

func (c *mockContext) NewColorTexture2DArray(width, height, layers int, format graphics.ColorFormat, opts graphics.TextureOptions) (graphics.Texture2DArray, error) {
	return nil, nil
}

func (c *mockContext) NewDepthTexture2D(width, height int, format graphics.DepthFormat, opts graphics.TextureOptions) (graphics.DepthTexture2D, error) {
	return nil, nil
}

func (c *mockContext) NewDepthTexture2DArray(width, height, layers int, format graphics.DepthFormat, opts graphics.TextureOptions) (graphics.DepthTexture2DArray, error) {
	return nil, nil
}

func (c *mockContext) NewRenderTarget(color graphics.Texture2DArray, colorLayers []int, depth graphics.DepthTexture2DArray, depthLayer int) (graphics.RenderTarget, error) {
	return nil, nil
}

func (c *mockContext) NewDepthTarget(depth graphics.DepthTexture2D) (graphics.RenderTarget, error) {
	return nil, nil
}

func (c *mockContext) Screen() graphics.ScreenTarget { return nil }

func (c *mockContext) CopyDepth(src graphics.DepthTexture2DArray, srcLayer int, dst graphics.DepthTexture2D) error {
	return nil
}

func (c *mockContext) Destroy() {}

type mockUniformBuffer struct {
	data      []byte
	updates   int
	destroyed bool
}

func (b *mockUniformBuffer) Update(data []byte) error {
	b.data = append(b.data[:0], data...)
	b.updates++
	return nil
}

func (b *mockUniformBuffer) Destroy() { b.destroyed = true }
