package mesh

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/UmbraEngine/umbra-go/common"
)

// CPUMesh holds per-vertex geometry in CPU memory, ready for upload through
// NewMesh. Positions are required; every other attribute is optional and
// considered present when its slice is non-empty.
type CPUMesh struct {
	// Name is the mesh identifier, used in log output.
	Name string

	// Positions are the vertex positions, three floats per vertex.
	Positions []float32

	// Normals are the per-vertex normals, three floats per vertex. Optional;
	// ComputeNormals fills them from the triangle geometry.
	Normals []float32

	// UVs are the texture coordinates, two floats per vertex. Optional.
	UVs []float32

	// Colors are the per-vertex colors, four floats per vertex in [0, 1].
	// Optional.
	Colors []float32

	// Indices are the triangle corner indices, three per triangle. Optional;
	// when empty the positions are drawn as a triangle soup.
	Indices []uint32
}

// VertexCount returns the number of vertices in the mesh.
//
// Returns:
//   - int: the vertex count
func (m *CPUMesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles the mesh describes, indexed
// or not.
//
// Returns:
//   - int: the triangle count
func (m *CPUMesh) TriangleCount() int {
	if len(m.Indices) > 0 {
		return len(m.Indices) / 3
	}
	return len(m.Positions) / 9
}

// triangle returns the three vertex indices of triangle t.
func (m *CPUMesh) triangle(t int) (int, int, int) {
	if len(m.Indices) > 0 {
		return int(m.Indices[t*3]), int(m.Indices[t*3+1]), int(m.Indices[t*3+2])
	}
	return t * 3, t*3 + 1, t*3 + 2
}

// parallelNormalThreshold is the triangle count above which ComputeNormals
// fans accumulation out across the worker pool. Below it the serial loop wins.
const parallelNormalThreshold = 4096

// normalPool runs the parallel accumulation phase of ComputeNormals. Workers
// are spawned on demand and idle-exit after a second, so the pool costs
// nothing between mesh builds.
var normalPool = worker.NewDynamicWorkerPool(max(runtime.NumCPU()-1, 1), 256, 1*time.Second)

// ComputeNormals replaces the mesh normals with smooth per-vertex normals
// accumulated from the triangle geometry. Each triangle adds its
// area-weighted face normal to its three corners; the sums are normalized at
// the end, so larger triangles influence their shared vertices more.
//
// Large meshes are accumulated in parallel: each worker owns a private
// partial buffer over a contiguous triangle range, and the partials are
// merged afterwards, which keeps the accumulation free of write races on
// shared vertices.
func (m *CPUMesh) ComputeNormals() {
	normals := make([]float32, len(m.Positions))
	triangleCount := m.TriangleCount()
	if triangleCount == 0 {
		m.Normals = normals
		return
	}

	workers := max(runtime.NumCPU()-1, 1)
	if triangleCount < parallelNormalThreshold || workers == 1 {
		m.accumulateFaceNormals(normals, 0, triangleCount)
	} else {
		partials := make([][]float32, workers)
		chunk := (triangleCount + workers - 1) / workers
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			start := i * chunk
			end := min(start+chunk, triangleCount)
			if start >= end {
				break
			}
			partial := make([]float32, len(m.Positions))
			partials[i] = partial
			wg.Add(1)
			normalPool.SubmitTask(worker.Task{
				ID: i,
				Do: func() (any, error) {
					defer wg.Done()
					m.accumulateFaceNormals(partial, start, end)
					return nil, nil
				},
			})
		}
		wg.Wait()
		for _, partial := range partials {
			if partial == nil {
				continue
			}
			for j, v := range partial {
				normals[j] += v
			}
		}
	}

	for i := 0; i < len(normals); i += 3 {
		normals[i], normals[i+1], normals[i+2] = common.Normalize3(normals[i], normals[i+1], normals[i+2])
	}
	m.Normals = normals
}

// accumulateFaceNormals adds the area-weighted face normal of every triangle
// in [start, end) to the three corner entries of dst.
func (m *CPUMesh) accumulateFaceNormals(dst []float32, start, end int) {
	for t := start; t < end; t++ {
		i0, i1, i2 := m.triangle(t)
		p0x, p0y, p0z := m.Positions[i0*3], m.Positions[i0*3+1], m.Positions[i0*3+2]
		p1x, p1y, p1z := m.Positions[i1*3], m.Positions[i1*3+1], m.Positions[i1*3+2]
		p2x, p2y, p2z := m.Positions[i2*3], m.Positions[i2*3+1], m.Positions[i2*3+2]
		nx, ny, nz := common.Cross3(p1x-p0x, p1y-p0y, p1z-p0z, p2x-p0x, p2y-p0y, p2z-p0z)
		for _, i := range [3]int{i0, i1, i2} {
			dst[i*3] += nx
			dst[i*3+1] += ny
			dst[i*3+2] += nz
		}
	}
}

// NewTriangle creates a single triangle in the XY plane with per-vertex
// colors (red, green, blue corners) and texture coordinates.
//
// Returns:
//   - *CPUMesh: the triangle mesh
func NewTriangle() *CPUMesh {
	return &CPUMesh{
		Name: "triangle",
		Positions: []float32{
			-1, -1, 0,
			1, -1, 0,
			0, 1, 0,
		},
		Colors: []float32{
			1, 0, 0, 1,
			0, 1, 0, 1,
			0, 0, 1, 1,
		},
		UVs: []float32{
			0, 0,
			1, 0,
			0.5, 1,
		},
	}
}

// NewSquare creates an indexed two-triangle quad in the XY plane, facing +Z,
// spanning [-1, 1] on both axes.
//
// Returns:
//   - *CPUMesh: the square mesh
func NewSquare() *CPUMesh {
	return &CPUMesh{
		Name: "square",
		Positions: []float32{
			-1, -1, 0,
			1, -1, 0,
			1, 1, 0,
			-1, 1, 0,
		},
		UVs: []float32{
			0, 0,
			1, 0,
			1, 1,
			0, 1,
		},
		Indices: []uint32{
			0, 1, 2,
			0, 2, 3,
		},
	}
}

// NewCube creates an indexed axis-aligned cube spanning [-1, 1] on all axes.
// Each face owns its four vertices, so ComputeNormals produces flat
// per-face shading and every face maps the full texture.
//
// Returns:
//   - *CPUMesh: the cube mesh
func NewCube() *CPUMesh {
	positions := []float32{
		// +Z
		-1, -1, 1,
		1, -1, 1,
		1, 1, 1,
		-1, 1, 1,
		// -Z
		1, -1, -1,
		-1, -1, -1,
		-1, 1, -1,
		1, 1, -1,
		// +X
		1, -1, 1,
		1, -1, -1,
		1, 1, -1,
		1, 1, 1,
		// -X
		-1, -1, -1,
		-1, -1, 1,
		-1, 1, 1,
		-1, 1, -1,
		// +Y
		-1, 1, 1,
		1, 1, 1,
		1, 1, -1,
		-1, 1, -1,
		// -Y
		-1, -1, -1,
		1, -1, -1,
		1, -1, 1,
		-1, -1, 1,
	}

	uvs := make([]float32, 0, 6*4*2)
	indices := make([]uint32, 0, 6*6)
	for face := uint32(0); face < 6; face++ {
		uvs = append(uvs,
			0, 0,
			1, 0,
			1, 1,
			0, 1,
		)
		base := face * 4
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	return &CPUMesh{
		Name:      "cube",
		Positions: positions,
		UVs:       uvs,
		Indices:   indices,
	}
}
