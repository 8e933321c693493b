package phong_test

import (
	"testing"

	"github.com/UmbraEngine/umbra-go/engine/camera"
	"github.com/UmbraEngine/umbra-go/engine/graphics"
	"github.com/UmbraEngine/umbra-go/engine/light"
	"github.com/UmbraEngine/umbra-go/engine/mesh"
	"github.com/UmbraEngine/umbra-go/engine/phong"
)

func identity() []float32 {
	return []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// litTriangle returns a CPU triangle carrying everything the lit shading
// variants can ask for: normals and uv coordinates.
func litTriangle() *mesh.CPUMesh {
	return &mesh.CPUMesh{
		Name: "tri",
		Positions: []float32{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
		},
		Normals: []float32{
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
		},
		UVs: []float32{
			0, 0,
			1, 0,
			0, 1,
		},
	}
}

func TestForwardMeshAmbientVariants(t *testing.T) {
	ctx := &mockContext{}
	cache := mesh.NewProgramCache(ctx)
	defer cache.Destroy()

	material := phong.NewMaterial(phong.WithColor(0.2, 0.4, 0.6, 1))
	fm, err := phong.NewForwardMesh(ctx, cache, litTriangle(), material)
	if err != nil {
		t.Fatalf("NewForwardMesh: %v", err)
	}
	defer fm.Destroy()

	cam := camera.NewCamera()
	defer cam.Destroy()
	ambient := light.NewAmbient(light.WithColor(1, 0.5, 0.25), light.WithIntensity(0.5))
	viewport := graphics.NewViewport(64, 64)

	if err := fm.RenderWithAmbient(graphics.RenderStates{}, viewport, identity(), cam, ambient); err != nil {
		t.Fatalf("RenderWithAmbient: %v", err)
	}
	if ctx.compileCount() != 1 {
		t.Fatalf("%d programs compiled, want 1", ctx.compileCount())
	}
	prog := ctx.programs[0]
	if got := prog.vec3s["ambientColor"]; got != [3]float32{0.5, 0.25, 0.125} {
		t.Errorf("ambientColor = %v, want the scaled light color", got)
	}
	if got := prog.vec4s["surfaceColor"]; got != [4]float32{0.2, 0.4, 0.6, 1} {
		t.Errorf("surfaceColor = %v, want the material color", got)
	}
	if _, ok := prog.textures["tex"]; ok {
		t.Error("solid variant bound a color texture")
	}
	if len(ctx.draws) != 1 || ctx.draws[0].indexed || ctx.draws[0].count != 3 {
		t.Fatalf("draw log = %+v, want one non-indexed draw of 3 vertices", ctx.draws)
	}

	// A second draw reuses the cached variant.
	if err := fm.RenderWithAmbient(graphics.RenderStates{}, viewport, identity(), cam, ambient); err != nil {
		t.Fatalf("RenderWithAmbient: %v", err)
	}
	if ctx.compileCount() != 1 {
		t.Errorf("%d programs compiled after a repeat draw, want 1", ctx.compileCount())
	}

	// Assigning a texture switches to the textured variant.
	texture := &mockTexture{width: 8, height: 8}
	fm.Material.Texture = texture
	if err := fm.RenderWithAmbient(graphics.RenderStates{}, viewport, identity(), cam, ambient); err != nil {
		t.Fatalf("RenderWithAmbient textured: %v", err)
	}
	if ctx.compileCount() != 2 {
		t.Fatalf("%d programs compiled after the texture switch, want 2", ctx.compileCount())
	}
	if got := ctx.programs[1].textures["tex"]; got != graphics.Texture(texture) {
		t.Error("textured variant did not bind the material texture")
	}
	if _, ok := ctx.programs[1].vec4s["surfaceColor"]; ok {
		t.Error("textured variant bound a solid surface color")
	}
}

func TestForwardMeshAmbientDirectionalBinds(t *testing.T) {
	ctx := &mockContext{}
	cache := mesh.NewProgramCache(ctx)
	defer cache.Destroy()

	material := phong.NewMaterial(
		phong.WithDiffuseIntensity(0.8),
		phong.WithSpecularIntensity(0.3),
		phong.WithSpecularPower(32),
	)
	fm, err := phong.NewForwardMesh(ctx, cache, litTriangle(), material)
	if err != nil {
		t.Fatalf("NewForwardMesh: %v", err)
	}
	defer fm.Destroy()

	cam := camera.NewCamera(camera.WithPosition(1, 2, 3))
	defer cam.Destroy()
	directional, err := light.NewDirectional(ctx, light.WithDirection(-1, -1, 0))
	if err != nil {
		t.Fatalf("NewDirectional: %v", err)
	}
	defer directional.Destroy()
	ambient := light.NewAmbient(light.WithIntensity(0.25))

	err = fm.RenderWithAmbientAndDirectional(graphics.RenderStates{}, graphics.NewViewport(64, 64), identity(), cam, ambient, directional)
	if err != nil {
		t.Fatalf("RenderWithAmbientAndDirectional: %v", err)
	}

	if ctx.compileCount() != 1 {
		t.Fatalf("%d programs compiled, want 1", ctx.compileCount())
	}
	prog := ctx.programs[0]
	if got := prog.vec3s["ambientColor"]; got != [3]float32{0.25, 0.25, 0.25} {
		t.Errorf("ambientColor = %v, want the scaled light color", got)
	}
	if got := prog.vec3s["eyePosition"]; got != [3]float32{1, 2, 3} {
		t.Errorf("eyePosition = %v, want the camera position", got)
	}
	if got := prog.textures["shadowMap"]; got != graphics.Texture(directional.ShadowMap()) {
		t.Error("shadowMap is not the light's shadow map")
	}
	block, ok := prog.blocks["DirectionalLightUniform"].(*mockUniformBuffer)
	if !ok {
		t.Fatal("DirectionalLightUniform block was not bound")
	}
	if len(block.data) != 96 {
		t.Errorf("light block holds %d bytes, want 96", len(block.data))
	}
	if _, ok := prog.blocks["Camera"]; !ok {
		t.Error("Camera block was not bound")
	}
	if _, ok := prog.mat4s["modelMatrix"]; !ok {
		t.Error("modelMatrix was not bound")
	}
	if _, ok := prog.mat4s["normalMatrix"]; !ok {
		t.Error("normalMatrix was not bound for a lit variant")
	}
	if got := prog.floats["diffuseIntensity"]; got != 0.8 {
		t.Errorf("diffuseIntensity = %v, want 0.8", got)
	}
	if got := prog.floats["specularIntensity"]; got != 0.3 {
		t.Errorf("specularIntensity = %v, want 0.3", got)
	}
	if got := prog.floats["specularPower"]; got != 32 {
		t.Errorf("specularPower = %v, want 32", got)
	}
	if len(ctx.draws) != 1 {
		t.Fatalf("%d draws issued, want 1", len(ctx.draws))
	}
}

func TestForwardMeshesShareVariantPrograms(t *testing.T) {
	ctx := &mockContext{}
	cache := mesh.NewProgramCache(ctx)
	defer cache.Destroy()

	first, err := phong.NewForwardMesh(ctx, cache, litTriangle(), phong.NewMaterial())
	if err != nil {
		t.Fatalf("NewForwardMesh: %v", err)
	}
	defer first.Destroy()
	second, err := phong.NewForwardMesh(ctx, cache, litTriangle(), phong.NewMaterial())
	if err != nil {
		t.Fatalf("NewForwardMesh: %v", err)
	}
	defer second.Destroy()

	cam := camera.NewCamera()
	defer cam.Destroy()
	ambient := light.NewAmbient()
	viewport := graphics.NewViewport(32, 32)

	if err := first.RenderWithAmbient(graphics.RenderStates{}, viewport, identity(), cam, ambient); err != nil {
		t.Fatalf("RenderWithAmbient: %v", err)
	}
	if err := second.RenderWithAmbient(graphics.RenderStates{}, viewport, identity(), cam, ambient); err != nil {
		t.Fatalf("RenderWithAmbient: %v", err)
	}
	if ctx.compileCount() != 1 {
		t.Errorf("%d programs compiled for two meshes of one variant, want 1", ctx.compileCount())
	}
}
