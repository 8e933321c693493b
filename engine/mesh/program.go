// package mesh renders GPU-resident triangle geometry through shared shader
// program variants. A MeshProgram pairs a caller-supplied fragment stage with
// a generated vertex stage; the ProgramCache keeps one instance of each
// variant alive for as long as any mesh exists.
package mesh

import (
	"strings"

	"github.com/UmbraEngine/umbra-go/common"
	"github.com/UmbraEngine/umbra-go/engine/camera"
	"github.com/UmbraEngine/umbra-go/engine/graphics"
)

// Fragment capability markers. A fragment stage opts into a varying by
// declaring it verbatim; the probe is textual and runs once per program.
const (
	markerPosition = "in vec3 pos;"
	markerNormal   = "in vec3 nor;"
	markerUV       = "in vec2 uvs;"
	markerColor    = "in vec4 col;"
)

// MeshProgram is a shader program for rendering meshes. The vertex stage is
// fixed and generated from what the fragment stage declares; the capability
// flags recorded at construction drive the attribute binding contract in
// Mesh.Render and never change afterwards.
type MeshProgram struct {
	program graphics.Program

	usePositions bool
	useNormals   bool
	useUVs       bool
	useColors    bool
}

// NewProgram compiles a mesh program around the given fragment stage. The
// fragment source reaches the fragment's world position by declaring
// "in vec3 pos;", its normal by "in vec3 nor;", its uv coordinates by
// "in vec2 uvs;" and its per-vertex color by "in vec4 col;".
//
// Parameters:
//   - ctx: graphics context used for compilation
//   - fragmentSource: fragment stage source text
//
// Returns:
//   - *MeshProgram: the compiled program with its capability flags
//   - error: compilation or link failure
func NewProgram(ctx graphics.Context, fragmentSource string) (*MeshProgram, error) {
	usePositions := strings.Contains(fragmentSource, markerPosition)
	useNormals := strings.Contains(fragmentSource, markerNormal)
	useUVs := strings.Contains(fragmentSource, markerUV)
	useColors := strings.Contains(fragmentSource, markerColor)

	program, err := ctx.NewProgram(
		vertexSource(usePositions, useNormals, useUVs, useColors),
		fragmentSource,
	)
	if err != nil {
		return nil, err
	}

	common.Logger().Debug("mesh program compiled",
		"positions", usePositions,
		"normals", useNormals,
		"uvs", useUVs,
		"colors", useColors,
	)

	return &MeshProgram{
		program:      program,
		usePositions: usePositions,
		useNormals:   useNormals,
		useUVs:       useUVs,
		useColors:    useColors,
	}, nil
}

// Program returns the underlying shader program so callers can bind their
// own uniforms and textures before handing the program to Mesh.Render.
//
// Returns:
//   - graphics.Program: the compiled program
func (p *MeshProgram) Program() graphics.Program {
	return p.program
}

// Destroy releases the underlying program. Safe to call more than once.
func (p *MeshProgram) Destroy() {
	if p.program != nil {
		p.program.Destroy()
		p.program = nil
	}
}

// vertexSource generates the fixed vertex stage of a mesh program. The
// Camera block, modelMatrix and position input are always present; each
// varying the fragment stage asked for adds its input, its output and the
// forwarding assignment in main.
func vertexSource(usePositions, useNormals, useUVs, useColors bool) string {
	var b strings.Builder
	b.WriteString(camera.CameraUniformBlockSource)
	b.WriteString("\nuniform mat4 modelMatrix;\nin vec3 position;\n")
	if usePositions {
		b.WriteString("out vec3 pos;\n")
	}
	if useNormals {
		b.WriteString("uniform mat4 normalMatrix;\nin vec3 normal;\nout vec3 nor;\n")
	}
	if useUVs {
		b.WriteString("in vec2 uv_coordinates;\nout vec2 uvs;\n")
	}
	if useColors {
		b.WriteString("in vec4 color;\nout vec4 col;\n")
	}
	b.WriteString("\nvoid main()\n{\n")
	b.WriteString("    vec4 worldPosition = modelMatrix * vec4(position, 1.);\n")
	b.WriteString("    gl_Position = camera.viewProjection * worldPosition;\n")
	if usePositions {
		b.WriteString("    pos = worldPosition.xyz;\n")
	}
	if useNormals {
		b.WriteString("    nor = mat3(normalMatrix) * normal;\n")
	}
	if useUVs {
		b.WriteString("    uvs = uv_coordinates;\n")
	}
	if useColors {
		b.WriteString("    col = color;\n")
	}
	b.WriteString("}\n")
	return b.String()
}
