package mesh

import (
	"fmt"

	"github.com/UmbraEngine/umbra-go/common"
	"github.com/UmbraEngine/umbra-go/engine/camera"
	"github.com/UmbraEngine/umbra-go/engine/graphics"
)

// Fragment stages for the built-in render variants. Each belongs to exactly
// one cache slot.
const (
	depthFragmentSource = "void main() {}"

	colorFragmentSource = `
uniform vec4 color;
layout (location = 0) out vec4 outColor;

void main()
{
    outColor = color;
}
`

	textureFragmentSource = `
uniform sampler2D tex;
in vec2 uvs;
layout (location = 0) out vec4 outColor;

void main()
{
    outColor = texture(tex, vec2(uvs.x, 1.0 - uvs.y));
}
`

	vertexColorFragmentSource = `
in vec4 col;
layout (location = 0) out vec4 outColor;

void main()
{
    outColor = col;
}
`
)

// Mesh is GPU-resident triangle geometry: a required position buffer plus
// whichever optional attribute buffers the source CPUMesh carried. A mesh
// registers with its ProgramCache for its whole lifetime; Destroy
// deregisters it and may release the shared programs.
type Mesh struct {
	ctx   graphics.Context
	cache *ProgramCache

	name           string
	positionBuffer graphics.VertexBuffer
	normalBuffer   graphics.VertexBuffer
	uvBuffer       graphics.VertexBuffer
	colorBuffer    graphics.VertexBuffer
	indexBuffer    graphics.ElementBuffer

	destroyed bool
}

// NewMesh copies the per-vertex data of the given CPUMesh to the GPU and
// registers the mesh with the program cache.
//
// Parameters:
//   - ctx: graphics context that owns the buffers
//   - cache: shared program cache the mesh renders through
//   - cpuMesh: source geometry; Positions must be non-empty
//
// Returns:
//   - *Mesh: the uploaded mesh
//   - error: empty positions or buffer allocation failure
func NewMesh(ctx graphics.Context, cache *ProgramCache, cpuMesh *CPUMesh) (*Mesh, error) {
	if len(cpuMesh.Positions) == 0 {
		return nil, fmt.Errorf("mesh %q has no positions", cpuMesh.Name)
	}

	m := &Mesh{ctx: ctx, cache: cache, name: cpuMesh.Name}
	var err error
	if m.positionBuffer, err = ctx.NewVertexBuffer(cpuMesh.Positions); err != nil {
		return nil, err
	}
	if len(cpuMesh.Normals) > 0 {
		m.normalBuffer, err = ctx.NewVertexBuffer(cpuMesh.Normals)
	}
	if err == nil && len(cpuMesh.UVs) > 0 {
		m.uvBuffer, err = ctx.NewVertexBuffer(cpuMesh.UVs)
	}
	if err == nil && len(cpuMesh.Colors) > 0 {
		m.colorBuffer, err = ctx.NewVertexBuffer(cpuMesh.Colors)
	}
	if err == nil && len(cpuMesh.Indices) > 0 {
		m.indexBuffer, err = ctx.NewElementBuffer(cpuMesh.Indices)
	}
	if err != nil {
		m.destroyBuffers()
		return nil, err
	}

	cache.retain()
	return m, nil
}

// Name returns the mesh identifier carried over from the CPUMesh.
func (m *Mesh) Name() string {
	return m.name
}

// Render draws the mesh with the given program. The model matrix, the
// camera's uniform block and the position attribute are always bound; each
// attribute the program's fragment stage declared must be owned by the mesh,
// and the whole call fails before any draw when one is missing.
//
// Parameters:
//   - program: mesh program to draw with
//   - states: fixed-function state for the draw
//   - viewport: render area in physical pixels
//   - transform: model matrix, 16 floats column-major
//   - cam: camera supplying the view and projection
//
// Returns:
//   - error: a *graphics.MissingAttributeError when the program needs an
//     attribute the mesh does not own, or a binding failure
func (m *Mesh) Render(program *MeshProgram, states graphics.RenderStates, viewport graphics.Viewport, transform []float32, cam camera.Camera) error {
	p := program.program

	if err := p.UseUniformMat4("modelMatrix", transform); err != nil {
		return err
	}
	cameraBuffer, err := cam.UniformBuffer(m.ctx)
	if err != nil {
		return err
	}
	if err := p.UseUniformBlock(cameraBuffer, "Camera"); err != nil {
		return err
	}

	if err := p.UseAttributeVec3(m.positionBuffer, "position"); err != nil {
		return err
	}
	if program.useUVs {
		if m.uvBuffer == nil {
			return &graphics.MissingAttributeError{
				Attribute: "uv coordinates",
				Remedy:    "the shader program needs them but the mesh has none",
			}
		}
		if err := p.UseAttributeVec2(m.uvBuffer, "uv_coordinates"); err != nil {
			return err
		}
	}
	if program.useNormals {
		if m.normalBuffer == nil {
			return &graphics.MissingAttributeError{
				Attribute: "normals",
				Remedy:    "call ComputeNormals on the CPU mesh first",
			}
		}
		var normalMatrix [16]float32
		common.NormalMatrix(normalMatrix[:], transform)
		if err := p.UseUniformMat4("normalMatrix", normalMatrix[:]); err != nil {
			return err
		}
		if err := p.UseAttributeVec3(m.normalBuffer, "normal"); err != nil {
			return err
		}
	}
	if program.useColors {
		if m.colorBuffer == nil {
			return &graphics.MissingAttributeError{
				Attribute: "per-vertex colors",
				Remedy:    "the shader program needs them but the mesh has none",
			}
		}
		if err := p.UseAttributeVec4(m.colorBuffer, "color"); err != nil {
			return err
		}
	}

	if m.indexBuffer != nil {
		p.DrawElements(states, viewport, m.indexBuffer)
	} else {
		p.DrawArrays(states, viewport, m.positionBuffer.Count()/3)
	}
	return nil
}

// RenderDepth draws only the mesh's depth, with an empty fragment stage.
// Useful for shadow maps and depth pre-passes.
//
// Parameters:
//   - states, viewport, transform, cam: as in Render
//
// Returns:
//   - error: program compilation or binding failure
func (m *Mesh) RenderDepth(states graphics.RenderStates, viewport graphics.Viewport, transform []float32, cam camera.Camera) error {
	program, err := m.cache.GetOrCreate(SlotDepth, depthFragmentSource)
	if err != nil {
		return err
	}
	return m.Render(program, states, viewport, transform, cam)
}

// RenderColor draws the whole mesh in one uniform color.
//
// Parameters:
//   - red, green, blue, alpha: the color, each component in [0, 1]
//   - states, viewport, transform, cam: as in Render
//
// Returns:
//   - error: program compilation or binding failure
func (m *Mesh) RenderColor(red, green, blue, alpha float32, states graphics.RenderStates, viewport graphics.Viewport, transform []float32, cam camera.Camera) error {
	program, err := m.cache.GetOrCreate(SlotColor, colorFragmentSource)
	if err != nil {
		return err
	}
	if err := program.program.UseUniformVec4("color", red, green, blue, alpha); err != nil {
		return err
	}
	return m.Render(program, states, viewport, transform, cam)
}

// RenderWithTexture draws the mesh with the given texture sampled over its
// uv coordinates.
//
// Parameters:
//   - texture: color texture to sample
//   - states, viewport, transform, cam: as in Render
//
// Returns:
//   - error: a *graphics.MissingAttributeError when the mesh has no uv
//     coordinates, or a compilation or binding failure
func (m *Mesh) RenderWithTexture(texture graphics.Texture, states graphics.RenderStates, viewport graphics.Viewport, transform []float32, cam camera.Camera) error {
	program, err := m.cache.GetOrCreate(SlotTexture, textureFragmentSource)
	if err != nil {
		return err
	}
	if err := program.program.UseTexture(texture, "tex"); err != nil {
		return err
	}
	return m.Render(program, states, viewport, transform, cam)
}

// RenderWithVertexColors draws the mesh with its interpolated per-vertex
// colors.
//
// Parameters:
//   - states, viewport, transform, cam: as in Render
//
// Returns:
//   - error: a *graphics.MissingAttributeError when the mesh has no
//     per-vertex colors, or a compilation or binding failure
func (m *Mesh) RenderWithVertexColors(states graphics.RenderStates, viewport graphics.Viewport, transform []float32, cam camera.Camera) error {
	program, err := m.cache.GetOrCreate(SlotPerVertexColor, vertexColorFragmentSource)
	if err != nil {
		return err
	}
	return m.Render(program, states, viewport, transform, cam)
}

// Destroy releases the mesh's GPU buffers and deregisters it from the
// program cache; destroying the last registered mesh releases the cached
// programs too. Safe to call more than once.
func (m *Mesh) Destroy() {
	if m.destroyed {
		return
	}
	m.destroyed = true
	m.destroyBuffers()
	m.cache.release()
}

func (m *Mesh) destroyBuffers() {
	if m.positionBuffer != nil {
		m.positionBuffer.Destroy()
		m.positionBuffer = nil
	}
	if m.normalBuffer != nil {
		m.normalBuffer.Destroy()
		m.normalBuffer = nil
	}
	if m.uvBuffer != nil {
		m.uvBuffer.Destroy()
		m.uvBuffer = nil
	}
	if m.colorBuffer != nil {
		m.colorBuffer.Destroy()
		m.colorBuffer = nil
	}
	if m.indexBuffer != nil {
		m.indexBuffer.Destroy()
		m.indexBuffer = nil
	}
}
