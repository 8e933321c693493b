package phong

import (
	"fmt"

	"github.com/UmbraEngine/umbra-go/engine/camera"
	"github.com/UmbraEngine/umbra-go/engine/graphics"
	"github.com/UmbraEngine/umbra-go/engine/mesh"
)

// DeferredMesh is a mesh that renders its surface attributes into the
// deferred pipeline's geometry buffer instead of shading directly. Lighting
// happens later in the pipeline's light pass.
type DeferredMesh struct {
	mesh  *mesh.Mesh
	cache *mesh.ProgramCache

	// Material drives the geometry buffer contents. May be modified between
	// draws.
	Material Material
}

// NewDeferredMesh uploads a CPU mesh for deferred Phong shading. The mesh
// must carry normals.
//
// Parameters:
//   - ctx: graphics context the mesh lives on
//   - cache: shared program cache for the geometry variants
//   - cpuMesh: mesh data to upload
//   - material: initial surface material, copied into the mesh
//
// Returns:
//   - *DeferredMesh: the renderable mesh
//   - error: missing normals, or buffer upload failure
func NewDeferredMesh(ctx graphics.Context, cache *mesh.ProgramCache, cpuMesh *mesh.CPUMesh, material *Material) (*DeferredMesh, error) {
	if len(cpuMesh.Normals) == 0 {
		return nil, fmt.Errorf("cannot create a phong mesh %q without normals: call ComputeNormals on the CPU mesh first", cpuMesh.Name)
	}
	m, err := mesh.NewMesh(ctx, cache, cpuMesh)
	if err != nil {
		return nil, err
	}
	return &DeferredMesh{
		mesh:     m,
		cache:    cache,
		Material: *material,
	}, nil
}

// Name returns the mesh name.
//
// Returns:
//   - string: the name carried over from the CPU mesh
func (d *DeferredMesh) Name() string {
	return d.mesh.Name()
}

// RenderGeometry writes the mesh surface attributes into the geometry
// buffer. Call it from the render callback of DeferredPipeline.GeometryPass.
//
// Parameters:
//   - states: render states for the draw
//   - viewport: geometry buffer viewport
//   - transform: 4x4 column-major model matrix
//   - cam: camera providing the view
//
// Returns:
//   - error: shader compilation, missing attribute, or draw failure
func (d *DeferredMesh) RenderGeometry(states graphics.RenderStates, viewport graphics.Viewport, transform []float32, cam camera.Camera) error {
	slot, source := mesh.SlotDeferredColor, deferredColoredSource
	if d.Material.Textured() {
		slot, source = mesh.SlotDeferredTexture, deferredTexturedSource
	}
	program, err := d.cache.GetOrCreate(slot, source)
	if err != nil {
		return err
	}
	if err := d.Material.bind(program.Program()); err != nil {
		return err
	}
	return d.mesh.Render(program, states, viewport, transform, cam)
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
func (d *DeferredMesh) RenderDepth(states graphics.RenderStates, viewport graphics.Viewport, transform []float32, cam camera.Camera) error {
	return d.mesh.RenderDepth(states, viewport, transform, cam)
}

// Destroy releases the mesh buffers and the cache retain.
func (d *DeferredMesh) Destroy() {
	d.mesh.Destroy()
}
