// package effect runs fragment shaders over the whole viewport. A screen
// space effect owns a single oversized triangle whose clip-space corners
// cover the viewport with one primitive, so full-screen passes pay no
// diagonal seam and no second triangle.
package effect

import (
	"github.com/UmbraEngine/umbra-go/engine/graphics"
)

const vertexSource = `
in vec3 position;
in vec2 uv_coordinate;
out vec2 uv;

void main()
{
    uv = uv_coordinate;
    gl_Position = vec4(position, 1.0);
}
`

// Fullscreen triangle corners in clip space, with uv values arranged so the
// visible [0,1]x[0,1] region maps exactly onto the viewport.
var (
	fullscreenPositions = []float32{
		-3, -1, 0,
		3, -1, 0,
		0, 2, 0,
	}
	fullscreenUVs = []float32{
		-1, 0,
		2, 0,
		0.5, 1.5,
	}
)

// ScreenSpaceEffect applies a fragment shader to every pixel of a viewport.
// The fragment stage reads the interpolated "uv" varying and whatever
// uniforms and textures the caller bound through Program before Apply.
type ScreenSpaceEffect struct {
	program   graphics.Program
	positions graphics.VertexBuffer
	uvs       graphics.VertexBuffer
}

// NewScreenSpaceEffect compiles the effect around the given fragment stage
// and uploads the fullscreen triangle.
//
// Parameters:
//   - ctx: graphics context that owns the program and buffers
//   - fragmentSource: fragment stage source text
//
// Returns:
//   - *ScreenSpaceEffect: the ready effect
//   - error: compilation or buffer allocation failure
func NewScreenSpaceEffect(ctx graphics.Context, fragmentSource string) (*ScreenSpaceEffect, error) {
	program, err := ctx.NewProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}
	positions, err := ctx.NewVertexBuffer(fullscreenPositions)
	if err != nil {
		program.Destroy()
		return nil, err
	}
	uvs, err := ctx.NewVertexBuffer(fullscreenUVs)
	if err != nil {
		program.Destroy()
		positions.Destroy()
		return nil, err
	}
	return &ScreenSpaceEffect{program: program, positions: positions, uvs: uvs}, nil
}

// Program returns the effect's shader program for binding uniforms and
// textures before Apply.
//
// Returns:
//   - graphics.Program: the compiled program
func (e *ScreenSpaceEffect) Program() graphics.Program {
	return e.program
}

// Apply binds the fullscreen triangle and draws it once, running the
// fragment stage over the whole viewport.
//
// Parameters:
//   - states: fixed-function state for the draw
//   - viewport: render area in physical pixels
//
// Returns:
//   - error: attribute binding failure
func (e *ScreenSpaceEffect) Apply(states graphics.RenderStates, viewport graphics.Viewport) error {
	if err := e.program.UseAttributeVec3(e.positions, "position"); err != nil {
		return err
	}
	if err := e.program.UseAttributeVec2(e.uvs, "uv_coordinate"); err != nil {
		return err
	}
	e.program.DrawArrays(states, viewport, 3)
	return nil
}

// Destroy releases the program and the triangle buffers. Safe to call more
// than once.
func (e *ScreenSpaceEffect) Destroy() {
	if e.program != nil {
		e.program.Destroy()
		e.program = nil
	}
	if e.positions != nil {
		e.positions.Destroy()
		e.positions = nil
	}
	if e.uvs != nil {
		e.uvs.Destroy()
		e.uvs = nil
	}
}
