package phong_test

import (
	"github.com/UmbraEngine/umbra-go/engine/graphics"
)

// mockContext implements graphics.Context in memory. Beyond the per-program
// bind records it keeps a context-wide draw log, so tests can assert the
// order of light passes across different programs.
type mockContext struct {
	programs      []*mockProgram
	draws         []recordedDraw
	colorArrays   []*mockTexture
	depthArrays   []*mockTexture
	depthTextures []*mockTexture
	targets       []*mockRenderTarget
	copies        []depthCopy
}

var _ graphics.Context = (*mockContext)(nil)

// recordedDraw is one entry of the context-wide draw log.
type recordedDraw struct {
	program *mockProgram
	states  graphics.RenderStates
	indexed bool
	count   int
}

// depthCopy records one CopyDepth call.
type depthCopy struct {
	src      graphics.DepthTexture2DArray
	srcLayer int
	dst      graphics.DepthTexture2D
}

func (c *mockContext) NewProgram(vertexSource, fragmentSource string) (graphics.Program, error) {
	p := &mockProgram{ctx: c, vertex: vertexSource, fragment: fragmentSource}
	c.programs = append(c.programs, p)
	return p, nil
}

func (c *mockContext) NewVertexBuffer(data []float32) (graphics.VertexBuffer, error) {
	return &mockVertexBuffer{count: len(data)}, nil
}

func (c *mockContext) NewElementBuffer(data []uint32) (graphics.ElementBuffer, error) {
	return &mockElementBuffer{count: len(data)}, nil
}

func (c *mockContext) NewUniformBuffer() (graphics.UniformBuffer, error) {
	return &mockUniformBuffer{}, nil
}

func (c *mockContext) NewColorTexture2D(width, height int, format graphics.ColorFormat, pixels []byte, opts graphics.TextureOptions) (graphics.Texture2D, error) {
	return &mockTexture{width: width, height: height}, nil
}

func (c *mockContext) NewColorTexture2DArray(width, height, layers int, format graphics.ColorFormat, opts graphics.TextureOptions) (graphics.Texture2DArray, error) {
	t := &mockTexture{width: width, height: height, layers: layers}
	c.colorArrays = append(c.colorArrays, t)
	return t, nil
}

func (c *mockContext) NewDepthTexture2D(width, height int, format graphics.DepthFormat, opts graphics.TextureOptions) (graphics.DepthTexture2D, error) {
	t := &mockTexture{width: width, height: height}
	c.depthTextures = append(c.depthTextures, t)
	return t, nil
}

func (c *mockContext) NewDepthTexture2DArray(width, height, layers int, format graphics.DepthFormat, opts graphics.TextureOptions) (graphics.DepthTexture2DArray, error) {
	t := &mockTexture{width: width, height: height, layers: layers}
	c.depthArrays = append(c.depthArrays, t)
	return t, nil
}

func (c *mockContext) NewRenderTarget(color graphics.Texture2DArray, colorLayers []int, depth graphics.DepthTexture2DArray, depthLayer int) (graphics.RenderTarget, error) {
	t := &mockRenderTarget{color: color, depth: depth}
	c.targets = append(c.targets, t)
	return t, nil
}

func (c *mockContext) NewDepthTarget(depth graphics.DepthTexture2D) (graphics.RenderTarget, error) {
	t := &mockRenderTarget{}
	c.targets = append(c.targets, t)
	return t, nil
}

func (c *mockContext) Screen() graphics.ScreenTarget {
	return &mockScreenTarget{}
}

func (c *mockContext) CopyDepth(src graphics.DepthTexture2DArray, srcLayer int, dst graphics.DepthTexture2D) error {
	c.copies = append(c.copies, depthCopy{src: src, srcLayer: srcLayer, dst: dst})
	return nil
}

func (c *mockContext) Destroy() {}

// compileCount returns how many programs the context has compiled.
func (c *mockContext) compileCount() int {
	return len(c.programs)
}

// mockProgram records every bind issued against it and forwards draws to the
// context log.
type mockProgram struct {
	ctx      *mockContext
	vertex   string
	fragment string

	mat4s      map[string][]float32
	vec3s      map[string][3]float32
	vec4s      map[string][4]float32
	floats     map[string]float32
	ints       map[string]int32
	blocks     map[string]graphics.UniformBuffer
	textures   map[string]graphics.Texture
	attributes map[string]graphics.VertexBuffer

	draws     int
	destroyed bool
}

var _ graphics.Program = (*mockProgram)(nil)

func (p *mockProgram) UseUniformInt(name string, value int32) error {
	if p.ints == nil {
		p.ints = map[string]int32{}
	}
	p.ints[name] = value
	return nil
}

func (p *mockProgram) UseUniformFloat(name string, value float32) error {
	if p.floats == nil {
		p.floats = map[string]float32{}
	}
	p.floats[name] = value
	return nil
}

func (p *mockProgram) UseUniformVec2(name string, x, y float32) error {
	return nil
}

func (p *mockProgram) UseUniformVec3(name string, x, y, z float32) error {
	if p.vec3s == nil {
		p.vec3s = map[string][3]float32{}
	}
	p.vec3s[name] = [3]float32{x, y, z}
	return nil
}

func (p *mockProgram) UseUniformVec4(name string, x, y, z, w float32) error {
	if p.vec4s == nil {
		p.vec4s = map[string][4]float32{}
	}
	p.vec4s[name] = [4]float32{x, y, z, w}
	return nil
}

func (p *mockProgram) UseUniformMat4(name string, matrix []float32) error {
	if p.mat4s == nil {
		p.mat4s = map[string][]float32{}
	}
	stored := make([]float32, len(matrix))
	copy(stored, matrix)
	p.mat4s[name] = stored
	return nil
}

func (p *mockProgram) UseTexture(texture graphics.Texture, name string) error {
	if p.textures == nil {
		p.textures = map[string]graphics.Texture{}
	}
	p.textures[name] = texture
	return nil
}

func (p *mockProgram) UseUniformBlock(buffer graphics.UniformBuffer, name string) error {
	if p.blocks == nil {
		p.blocks = map[string]graphics.UniformBuffer{}
	}
	p.blocks[name] = buffer
	return nil
}

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
	p.draws++
	p.ctx.draws = append(p.ctx.draws, recordedDraw{program: p, states: states, count: count})
}

func (p *mockProgram) DrawElements(states graphics.RenderStates, viewport graphics.Viewport, elements graphics.ElementBuffer) {
	p.draws++
	p.ctx.draws = append(p.ctx.draws, recordedDraw{program: p, states: states, indexed: true, count: elements.Count()})
}

func (p *mockProgram) Destroy() {
	p.destroyed = true
}

type mockVertexBuffer struct {
	count     int
	destroyed bool
}

func (b *mockVertexBuffer) Count() int { return b.count }
func (b *mockVertexBuffer) Destroy()   { b.destroyed = true }

type mockElementBuffer struct {
	count     int
	destroyed bool
}

func (b *mockElementBuffer) Count() int { return b.count }
func (b *mockElementBuffer) Destroy()   { b.destroyed = true }

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

type mockTexture struct {
	width     int
	height    int
	layers    int
	destroyed bool
}

func (t *mockTexture) Width() int  { return t.width }
func (t *mockTexture) Height() int { return t.height }
func (t *mockTexture) Layers() int { return t.layers }
func (t *mockTexture) Destroy()    { t.destroyed = true }

type mockRenderTarget struct {
	color     graphics.Texture2DArray
	depth     graphics.DepthTexture2DArray
	clear     graphics.ClearState
	writes    int
	destroyed bool
}

func (t *mockRenderTarget) Write(clear graphics.ClearState, render func() error) error {
	t.clear = clear
	t.writes++
	return render()
}

func (t *mockRenderTarget) Destroy() { t.destroyed = true }

type mockScreenTarget struct {
	mockRenderTarget
}

func (t *mockScreenTarget) ReadColor(viewport graphics.Viewport) ([]byte, error) {
	return make([]byte, viewport.Width*viewport.Height*4), nil
}
