package graphics

import (
	"fmt"
	"strings"

	"github.com/UmbraEngine/umbra-go/common"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// glHeader is prepended to every shader source; callers hand over bare GLSL.
const glHeader = "#version 410 core\n"

// glProgram implements Program on a linked GL program object. Uniform and
// attribute locations are resolved once and memoized; texture units and
// uniform block binding points are assigned per name in first-use order and
// rebound before every draw, which makes bindings survive other programs
// touching the shared GL state in between.
type glProgram struct {
	id  uint32
	vao uint32

	uniforms   map[string]int32
	attributes map[string]int32

	textures      map[string]int32 // sampler name -> texture unit
	boundTextures []glBoundTexture

	blocks      map[string]uint32 // block name -> binding point
	boundBlocks []glBoundBlock
}

type glBoundTexture struct {
	unit   int32
	id     uint32
	target uint32
}

type glBoundBlock struct {
	binding uint32
	buffer  *glUniformBuffer
}

var _ Program = (*glProgram)(nil)

func newGLProgram(vertexSource, fragmentSource string) (Program, error) {
	vertex, err := compileGLShader(glHeader+vertexSource, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compileGLShader(glHeader+fragmentSource, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragment)

	id := gl.CreateProgram()
	gl.AttachShader(id, vertex)
	gl.AttachShader(id, fragment)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(logText))
		gl.DeleteProgram(id)
		return nil, &ShaderError{Stage: "link", Log: strings.Trim(logText, "\x00")}
	}

	p := &glProgram{
		id:         id,
		uniforms:   make(map[string]int32),
		attributes: make(map[string]int32),
		textures:   make(map[string]int32),
		blocks:     make(map[string]uint32),
	}
	gl.GenVertexArrays(1, &p.vao)
	common.Logger().Debug("shader program linked", "program", id)
	return p, nil
}

func compileGLShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, &ShaderError{Stage: stage, Log: strings.Trim(logText, "\x00")}
	}
	return shader, nil
}

// uniformLocation memoizes glGetUniformLocation. Returns -1 for names the
// linker discarded; callers treat that as "nothing to bind".
func (p *glProgram) uniformLocation(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

func (p *glProgram) attributeLocation(name string) int32 {
	if loc, ok := p.attributes[name]; ok {
		return loc
	}
	loc := gl.GetAttribLocation(p.id, gl.Str(name+"\x00"))
	p.attributes[name] = loc
	return loc
}

func (p *glProgram) UseUniformInt(name string, value int32) error {
	if loc := p.uniformLocation(name); loc != -1 {
		gl.UseProgram(p.id)
		gl.Uniform1i(loc, value)
	}
	return nil
}

func (p *glProgram) UseUniformFloat(name string, value float32) error {
	if loc := p.uniformLocation(name); loc != -1 {
		gl.UseProgram(p.id)
		gl.Uniform1f(loc, value)
	}
	return nil
}

func (p *glProgram) UseUniformVec2(name string, x, y float32) error {
	if loc := p.uniformLocation(name); loc != -1 {
		gl.UseProgram(p.id)
		gl.Uniform2f(loc, x, y)
	}
	return nil
}

func (p *glProgram) UseUniformVec3(name string, x, y, z float32) error {
	if loc := p.uniformLocation(name); loc != -1 {
		gl.UseProgram(p.id)
		gl.Uniform3f(loc, x, y, z)
	}
	return nil
}

func (p *glProgram) UseUniformVec4(name string, x, y, z, w float32) error {
	if loc := p.uniformLocation(name); loc != -1 {
		gl.UseProgram(p.id)
		gl.Uniform4f(loc, x, y, z, w)
	}
	return nil
}

func (p *glProgram) UseUniformMat4(name string, matrix []float32) error {
	if len(matrix) < 16 {
		return fmt.Errorf("mat4 uniform %q needs 16 values, got %d", name, len(matrix))
	}
	if loc := p.uniformLocation(name); loc != -1 {
		gl.UseProgram(p.id)
		gl.UniformMatrix4fv(loc, 1, false, &matrix[0])
	}
	return nil
}

func (p *glProgram) UseTexture(texture Texture, name string) error {
	t, ok := texture.(glTexture)
	if !ok {
		return fmt.Errorf("texture for sampler %q was not created by this context", name)
	}
	id, target := t.glHandle()

	unit, ok := p.textures[name]
	if !ok {
		unit = int32(len(p.textures))
		p.textures[name] = unit
		p.boundTextures = append(p.boundTextures, glBoundTexture{unit: unit})
	}
	p.boundTextures[unit] = glBoundTexture{unit: unit, id: id, target: target}

	if loc := p.uniformLocation(name); loc != -1 {
		gl.UseProgram(p.id)
		gl.Uniform1i(loc, unit)
	}
	return nil
}

func (p *glProgram) UseUniformBlock(buffer UniformBuffer, name string) error {
	buf, ok := buffer.(*glUniformBuffer)
	if !ok {
		return fmt.Errorf("uniform buffer for block %q was not created by this context", name)
	}

	binding, ok := p.blocks[name]
	if !ok {
		index := gl.GetUniformBlockIndex(p.id, gl.Str(name+"\x00"))
		if index == gl.INVALID_INDEX {
			// Block absent from the linked program; nothing to bind.
			return nil
		}
		binding = uint32(len(p.blocks))
		p.blocks[name] = binding
		gl.UniformBlockBinding(p.id, index, binding)
		p.boundBlocks = append(p.boundBlocks, glBoundBlock{binding: binding})
	}
	p.boundBlocks[binding] = glBoundBlock{binding: binding, buffer: buf}
	return nil
}

func (p *glProgram) useAttribute(buffer VertexBuffer, name string, size int32) error {
	buf, ok := buffer.(*glVertexBuffer)
	if !ok {
		return fmt.Errorf("buffer for attribute %q was not created by this context", name)
	}
	loc := p.attributeLocation(name)
	if loc == -1 {
		// Input absent from the linked program; nothing to bind.
		return nil
	}
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.id)
	gl.EnableVertexAttribArray(uint32(loc))
	gl.VertexAttribPointerWithOffset(uint32(loc), size, gl.FLOAT, false, 0, 0)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

func (p *glProgram) UseAttributeVec2(buffer VertexBuffer, name string) error {
	return p.useAttribute(buffer, name, 2)
}

func (p *glProgram) UseAttributeVec3(buffer VertexBuffer, name string) error {
	return p.useAttribute(buffer, name, 3)
}

func (p *glProgram) UseAttributeVec4(buffer VertexBuffer, name string) error {
	return p.useAttribute(buffer, name, 4)
}

// prepareDraw re-establishes everything a draw needs from the shared GL
// state: the program, its texture units, and its uniform block bindings.
func (p *glProgram) prepareDraw(states RenderStates, viewport Viewport) {
	gl.UseProgram(p.id)
	for _, t := range p.boundTextures {
		if t.id == 0 {
			continue
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(t.unit))
		gl.BindTexture(t.target, t.id)
	}
	for _, b := range p.boundBlocks {
		if b.buffer == nil {
			continue
		}
		gl.BindBufferBase(gl.UNIFORM_BUFFER, b.binding, b.buffer.id)
	}
	applyRenderStates(states)
	gl.Viewport(int32(viewport.X), int32(viewport.Y), int32(viewport.Width), int32(viewport.Height))
	gl.BindVertexArray(p.vao)
}

func (p *glProgram) DrawArrays(states RenderStates, viewport Viewport, count int) {
	p.prepareDraw(states, viewport)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))
	gl.BindVertexArray(0)
}

func (p *glProgram) DrawElements(states RenderStates, viewport Viewport, elements ElementBuffer) {
	buf, ok := elements.(*glElementBuffer)
	if !ok {
		return
	}
	p.prepareDraw(states, viewport)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.id)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(buf.count), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (p *glProgram) Destroy() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
}

func applyRenderStates(s RenderStates) {
	switch s.Cull {
	case CullBack:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	case CullFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	case CullFrontAndBack:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT_AND_BACK)
	default:
		gl.Disable(gl.CULL_FACE)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(glDepthFunc(s.DepthTest))
	gl.DepthMask(true)

	if s.Blend != nil {
		gl.Enable(gl.BLEND)
		gl.BlendFuncSeparate(
			glBlendMultiplier(s.Blend.SourceRGB),
			glBlendMultiplier(s.Blend.DestinationRGB),
			glBlendMultiplier(s.Blend.SourceAlpha),
			glBlendMultiplier(s.Blend.DestinationAlpha),
		)
		gl.BlendEquationSeparate(
			glBlendEquation(s.Blend.RGBEquation),
			glBlendEquation(s.Blend.AlphaEquation),
		)
	} else {
		gl.Disable(gl.BLEND)
	}
}

func glDepthFunc(d DepthTestType) uint32 {
	switch d {
	case DepthTestLessOrEqual:
		return gl.LEQUAL
	case DepthTestEqual:
		return gl.EQUAL
	case DepthTestGreaterOrEqual:
		return gl.GEQUAL
	case DepthTestGreater:
		return gl.GREATER
	case DepthTestNotEqual:
		return gl.NOTEQUAL
	case DepthTestAlways:
		return gl.ALWAYS
	case DepthTestNever:
		return gl.NEVER
	default:
		return gl.LESS
	}
}

func glBlendMultiplier(m BlendMultiplier) uint32 {
	switch m {
	case BlendOne:
		return gl.ONE
	case BlendSrcAlpha:
		return gl.SRC_ALPHA
	case BlendOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case BlendDstAlpha:
		return gl.DST_ALPHA
	case BlendOneMinusDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	default:
		return gl.ZERO
	}
}

func glBlendEquation(e BlendEquation) uint32 {
	switch e {
	case BlendEquationSubtract:
		return gl.FUNC_SUBTRACT
	case BlendEquationReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	case BlendEquationMin:
		return gl.MIN
	case BlendEquationMax:
		return gl.MAX
	default:
		return gl.FUNC_ADD
	}
}
