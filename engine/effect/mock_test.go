package effect_test

import (
	"github.com/UmbraEngine/umbra-go/engine/graphics"
)

// mockContext implements the slice of graphics.Context that screen space
// effects touch: program compilation and vertex buffer upload.
type mockContext struct {
	programs []*mockProgram
	buffers  []*mockVertexBuffer
}

var _ graphics.Context = (*mockContext)(nil)

func (c *mockContext) NewProgram(vertexSource, fragmentSource string) (graphics.Program, error) {
	p := &mockProgram{vertex: vertexSource, fragment: fragmentSource}
	c.programs = append(c.programs, p)
	return p, nil
}

func (c *mockContext) NewVertexBuffer(data []float32) (graphics.VertexBuffer, error) {
	b := &mockVertexBuffer{data: append([]float32(nil), data...)}
	c.buffers = append(c.buffers, b)
	return b, nil
}

func (c *mockContext) NewElementBuffer(data []uint32) (graphics.ElementBuffer, error) {
	return nil, nil
}

func (c *mockContext) NewUniformBuffer() (graphics.UniformBuffer, error) {
	return nil, nil
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

func (c *mockContext) Screen() graphics.ScreenTarget {
	return nil
}

func (c *mockContext) CopyDepth(src graphics.DepthTexture2DArray, srcLayer int, dst graphics.DepthTexture2D) error {
	return nil
}

func (c *mockContext) Destroy() {}

// recordedDraw is one DrawArrays call.
type recordedDraw struct {
	states   graphics.RenderStates
	viewport graphics.Viewport
	count    int
}

type mockProgram struct {
	vertex     string
	fragment   string
	attributes map[string]graphics.VertexBuffer
	draws      []recordedDraw
	destroyed  bool
}

var _ graphics.Program = (*mockProgram)(nil)

func (p *mockProgram) UseUniformInt(name string, value int32) error         { return nil }
func (p *mockProgram) UseUniformFloat(name string, value float32) error     { return nil }
func (p *mockProgram) UseUniformVec2(name string, x, y float32) error       { return nil }
func (p *mockProgram) UseUniformVec3(name string, x, y, z float32) error    { return nil }
func (p *mockProgram) UseUniformVec4(name string, x, y, z, w float32) error { return nil }
func (p *mockProgram) UseUniformMat4(name string, matrix []float32) error   { return nil }

func (p *mockProgram) UseTexture(texture graphics.Texture, name string) error { return nil }

func (p *mockProgram) UseUniformBlock(buffer graphics.UniformBuffer, name string) error { return nil }

func (p *mockProgram) UseAttributeVec2(buffer graphics.VertexBuffer, name string) error {
	return p.useAttribute(buffer, name)
}

func (p *mockProgram) UseAttributeVec3(buffer graphics.VertexBuffer, name string) error {
	return p.useAttribute(buffer, name)
}

func (p *mockProgram) UseAttributeVec4(buffer graphics.VertexBuffer, name string) error {
	return p.useAttribute(buffer, name)
}

func (p *mockProgram) useAttribute(buffer graphics.VertexBuffer, name string) error {
	if p.attributes == nil {
		p.attributes = map[string]graphics.VertexBuffer{}
	}
	p.attributes[name] = buffer
	return nil
}

func (p *mockProgram) DrawArrays(states graphics.RenderStates, viewport graphics.Viewport, count int) {
	p.draws = append(p.draws, recordedDraw{states: states, viewport: viewport, count: count})
}

func (p *mockProgram) DrawElements(states graphics.RenderStates, viewport graphics.Viewport, elements graphics.ElementBuffer) {
}

func (p *mockProgram) Destroy() {
	p.destroyed = true
}

type mockVertexBuffer struct {
	data      []float32
	destroyed bool
}

func (b *mockVertexBuffer) Count() int { return len(b.data) }
func (b *mockVertexBuffer) Destroy()   { b.destroyed = true }
