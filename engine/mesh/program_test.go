package mesh_test

import (
	"strings"
	"testing"

	"github.com/UmbraEngine/umbra-go/engine/mesh"
)

func TestNewProgramCapabilityProbe(t *testing.T) {
	tests := []struct {
		name       string
		fragment   string
		wantPos    bool
		wantNormal bool
		wantUV     bool
		wantColor  bool
	}{
		{
			name:     "no markers",
			fragment: "out vec4 outColor;\nvoid main() { outColor = vec4(1.0); }",
		},
		{
			name:    "position only",
			wantPos: true,
			fragment: "in vec3 pos;\nout vec4 outColor;\n" +
				"void main() { outColor = vec4(pos, 1.0); }",
		},
		{
			name:       "normal only",
			wantNormal: true,
			fragment: "in vec3 nor;\nout vec4 outColor;\n" +
				"void main() { outColor = vec4(nor, 1.0); }",
		},
		{
			name:   "uv only",
			wantUV: true,
			fragment: "in vec2 uvs;\nout vec4 outColor;\n" +
				"void main() { outColor = vec4(uvs, 0.0, 1.0); }",
		},
		{
			name:      "color only",
			wantColor: true,
			fragment: "in vec4 col;\nout vec4 outColor;\n" +
				"void main() { outColor = col; }",
		},
		{
			name:       "all markers",
			wantPos:    true,
			wantNormal: true,
			wantUV:     true,
			wantColor:  true,
			fragment: "in vec3 pos;\nin vec3 nor;\nin vec2 uvs;\nin vec4 col;\n" +
				"out vec4 outColor;\nvoid main() { outColor = col; }",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := &mockContext{}
			if _, err := mesh.NewProgram(ctx, tt.fragment); err != nil {
				t.Fatalf("NewProgram: %v", err)
			}
			if got := ctx.compileCount(); got != 1 {
				t.Fatalf("compiled %d programs, want 1", got)
			}
			vertex := ctx.programs[0].vertex

			// The fixed part is present in every variant.
			for _, required := range []string{
				"uniform mat4 modelMatrix;",
				"in vec3 position;",
				"camera.viewProjection",
			} {
				if !strings.Contains(vertex, required) {
					t.Errorf("vertex source missing %q", required)
				}
			}

			checks := []struct {
				want     bool
				fragment string
			}{
				{tt.wantPos, "pos = worldPosition.xyz;"},
				{tt.wantNormal, "nor = mat3(normalMatrix) * normal;"},
				{tt.wantUV, "uvs = uv_coordinates;"},
				{tt.wantColor, "col = color;"},
			}
			for _, check := range checks {
				if got := strings.Contains(vertex, check.fragment); got != check.want {
					t.Errorf("vertex source contains %q = %v, want %v", check.fragment, got, check.want)
				}
			}

			// A skipped capability must not leave its input declaration
			// behind, or the driver would report a dangling attribute.
			if !tt.wantNormal && strings.Contains(vertex, "in vec3 normal;") {
				t.Error("vertex source declares a normal input the fragment never asked for")
			}
			if !tt.wantUV && strings.Contains(vertex, "in vec2 uv_coordinates;") {
				t.Error("vertex source declares a uv input the fragment never asked for")
			}
			if !tt.wantColor && strings.Contains(vertex, "in vec4 color;") {
				t.Error("vertex source declares a color input the fragment never asked for")
			}
		})
	}
}

func TestProgramCacheReturnsSameInstance(t *testing.T) {
	ctx := &mockContext{}
	cache := mesh.NewProgramCache(ctx)

	fragment := "out vec4 outColor;\nvoid main() { outColor = vec4(1.0); }"
	first, err := cache.GetOrCreate(mesh.SlotColor, fragment)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	second, err := cache.GetOrCreate(mesh.SlotColor, "ignored on a warm slot")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if first != second {
		t.Error("second request returned a different program instance")
	}
	if got := ctx.compileCount(); got != 1 {
		t.Errorf("compiled %d programs, want 1", got)
	}

	if _, err := cache.GetOrCreate(mesh.SlotTexture, "in vec2 uvs;\nout vec4 outColor;\nvoid main() { outColor = vec4(uvs, 0.0, 1.0); }"); err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if got := ctx.compileCount(); got != 2 {
		t.Errorf("compiled %d programs after a second slot, want 2", got)
	}
}

func TestProgramCacheClearsWhenLastMeshDies(t *testing.T) {
	ctx := &mockContext{}
	cache := mesh.NewProgramCache(ctx)

	first, err := mesh.NewMesh(ctx, cache, mesh.NewTriangle())
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	second, err := mesh.NewMesh(ctx, cache, mesh.NewTriangle())
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}

	fragment := "out vec4 outColor;\nvoid main() { outColor = vec4(1.0); }"
	if _, err := cache.GetOrCreate(mesh.SlotColor, fragment); err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	compiles := ctx.compileCount()

	// Destroying one of two meshes keeps the slots warm, and destroying the
	// same mesh again must not release its registration twice.
	first.Destroy()
	first.Destroy()
	if _, err := cache.GetOrCreate(mesh.SlotColor, fragment); err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if got := ctx.compileCount(); got != compiles {
		t.Fatalf("slots were cleared while a mesh was still alive (compiles %d -> %d)", compiles, got)
	}

	// The last registration clears every slot; the next request recompiles.
	second.Destroy()
	if _, err := mesh.NewMesh(ctx, cache, mesh.NewTriangle()); err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	if _, err := cache.GetOrCreate(mesh.SlotColor, fragment); err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if got := ctx.compileCount(); got != compiles+1 {
		t.Errorf("compiled %d programs, want %d (one recompile after the cache emptied)", got, compiles+1)
	}
}
