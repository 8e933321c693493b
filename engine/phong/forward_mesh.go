package phong

import (
	"fmt"

	"github.com/UmbraEngine/umbra-go/engine/camera"
	"github.com/UmbraEngine/umbra-go/engine/graphics"
	"github.com/UmbraEngine/umbra-go/engine/light"
	"github.com/UmbraEngine/umbra-go/engine/mesh"
)

// ForwardMesh is a mesh shaded with the Phong reflection model while it
// rasterizes. It supports ambient light alone or ambient plus one
// directional light; scenes that need more lights use the deferred pipeline.
type ForwardMesh struct {
	mesh  *mesh.Mesh
	cache *mesh.ProgramCache

	// Material drives the shading. May be modified between draws.
	Material Material
}

// NewForwardMesh uploads a CPU mesh for forward Phong shading. The mesh must
// carry normals, and a texture material additionally requires uv
// coordinates; the latter is validated on the first textured draw.
//
// Parameters:
//   - ctx: graphics context the mesh lives on
//   - cache: shared program cache for the shading variants
//   - cpuMesh: mesh data to upload
//   - material: initial surface material, copied into the mesh
//
// Returns:
//   - *ForwardMesh: the renderable mesh
//   - error: missing normals, or buffer upload failure
func NewForwardMesh(ctx graphics.Context, cache *mesh.ProgramCache, cpuMesh *mesh.CPUMesh, material *Material) (*ForwardMesh, error) {
	if len(cpuMesh.Normals) == 0 {
		return nil, fmt.Errorf("cannot create a phong mesh %q without normals: call ComputeNormals on the CPU mesh first", cpuMesh.Name)
	}
	m, err := mesh.NewMesh(ctx, cache, cpuMesh)
	if err != nil {
		return nil, err
	}
	return &ForwardMesh{
		mesh:     m,
		cache:    cache,
		Material: *material,
	}, nil
}

// Name returns the mesh name.
//
// Returns:
//   - string: the name carried over from the CPU mesh
func (f *ForwardMesh) Name() string {
	return f.mesh.Name()
}

// RenderWithAmbient draws the mesh lit by ambient light only. The surface
// color is scaled by the ambient color times intensity.
//
// Parameters:
//   - states: render states for the draw
//   - viewport: target viewport
//   - transform: 4x4 column-major model matrix
//   - cam: camera providing the view
//   - ambient: ambient light term
//
// Returns:
//   - error: shader compilation, missing attribute, or draw failure
func (f *ForwardMesh) RenderWithAmbient(states graphics.RenderStates, viewport graphics.Viewport, transform []float32, cam camera.Camera, ambient *light.Ambient) error {
	slot, source := mesh.SlotForwardColorAmbient, coloredForwardAmbientSource
	if f.Material.Textured() {
		slot, source = mesh.SlotForwardTextureAmbient, texturedForwardAmbientSource
	}
	program, err := f.cache.GetOrCreate(slot, source)
	if err != nil {
		return err
	}
	r, g, b := ambient.ScaledColor()
	if err := program.Program().UseUniformVec3("ambientColor", r, g, b); err != nil {
		return err
	}
	if err := f.Material.bindColor(program.Program()); err != nil {
		return err
	}
	return f.mesh.Render(program, states, viewport, transform, cam)
}

// RenderWithAmbientAndDirectional draws the mesh lit by ambient light plus
// one directional light, with specular highlights and the light's shadow map
// applied.
//
// Parameters:
//   - states: render states for the draw
//   - viewport: target viewport
//   - transform: 4x4 column-major model matrix
//   - cam: camera providing the view and eye position
//   - ambient: ambient light term
//   - directional: directional light, shadowed or not
//
// Returns:
//   - error: shader compilation, missing attribute, or draw failure
func (f *ForwardMesh) RenderWithAmbientAndDirectional(states graphics.RenderStates, viewport graphics.Viewport, transform []float32, cam camera.Camera, ambient *light.Ambient, directional light.Directional) error {
	slot, source := mesh.SlotForwardColorAmbientDirectional, coloredForwardAmbientDirectionalSource
	if f.Material.Textured() {
		slot, source = mesh.SlotForwardTextureAmbientDirectional, texturedForwardAmbientDirectionalSource
	}
	program, err := f.cache.GetOrCreate(slot, source)
	if err != nil {
		return err
	}
	p := program.Program()
	r, g, b := ambient.ScaledColor()
	if err := p.UseUniformVec3("ambientColor", r, g, b); err != nil {
		return err
	}
	ex, ey, ez := cam.Position()
	if err := p.UseUniformVec3("eyePosition", ex, ey, ez); err != nil {
		return err
	}
	if err := p.UseTexture(directional.ShadowMap(), "shadowMap"); err != nil {
		return err
	}
	buffer, err := directional.UniformBuffer()
	if err != nil {
		return err
	}
	if err := p.UseUniformBlock(buffer, "DirectionalLightUniform"); err != nil {
		return err
	}
	if err := f.Material.bind(p); err != nil {
		return err
	}
	return f.mesh.Render(program, states, viewport, transform, cam)
}

// RenderDepth draws only depth, without shading. Shadow map passes render
// the scene through this from the light's point of view.
//
// Parameters:
//   - states: render states for the draw
//   - viewport: target viewport
//   - transform: 4x4 column-major model matrix
//   - cam: camera providing the view
//
// Returns:
//   - error: shader compilation or draw failure
func (f *ForwardMesh) RenderDepth(states graphics.RenderStates, viewport graphics.Viewport, transform []float32, cam camera.Camera) error {
	return f.mesh.RenderDepth(states, viewport, transform, cam)
}

// Destroy releases the mesh buffers and the cache retain. The shared program
// cache itself stays alive for other meshes.
func (f *ForwardMesh) Destroy() {
	f.mesh.Destroy()
}
