// Package phong implements Phong reflection model shading on top of the mesh
// and effect packages, in two flavors: forward meshes shaded directly while
// they rasterize, and a deferred pipeline that first writes surface
// attributes into a geometry buffer and then accumulates any number of
// lights over it.
package phong

import (
	"github.com/UmbraEngine/umbra-go/engine/graphics"
)

// Material describes a Phong surface: where its color comes from and how
// strongly it reflects diffuse and specular light.
type Material struct {
	// Name identifies the material in logs and asset pipelines.
	Name string
	// Color is the surface color when Texture is nil.
	Color [4]float32
	// Texture supplies the surface color when non-nil, sampled over the mesh
	// uv coordinates. Takes precedence over Color.
	Texture graphics.Texture2D
	// DiffuseIntensity scales the diffuse reflection term.
	DiffuseIntensity float32
	// SpecularIntensity scales the specular reflection term.
	SpecularIntensity float32
	// SpecularPower controls how tight specular highlights are. The deferred
	// geometry buffer stores it as power/128, so keep it in [0, 128].
	SpecularPower float32
}

// NewMaterial creates a material from the default white surface.
//
// Parameters:
//   - options: functional options to configure the material
//
// Returns:
//   - *Material: the new material
func NewMaterial(options ...MaterialBuilderOption) *Material {
	m := &Material{
		Name:              "default",
		Color:             [4]float32{1, 1, 1, 1},
		DiffuseIntensity:  0.5,
		SpecularIntensity: 0.2,
		SpecularPower:     6,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Textured reports whether the surface color comes from a texture.
//
// Returns:
//   - bool: true when a texture is set
func (m *Material) Textured() bool {
	return m.Texture != nil
}

// bindColor binds the surface color source: the texture when present, the
// solid color otherwise.
func (m *Material) bindColor(p graphics.Program) error {
	if m.Texture != nil {
		return p.UseTexture(m.Texture, "tex")
	}
	return p.UseUniformVec4("surfaceColor", m.Color[0], m.Color[1], m.Color[2], m.Color[3])
}

// bind binds the reflection intensities plus the color source.
func (m *Material) bind(p graphics.Program) error {
	if err := p.UseUniformFloat("diffuseIntensity", m.DiffuseIntensity); err != nil {
		return err
	}
	if err := p.UseUniformFloat("specularIntensity", m.SpecularIntensity); err != nil {
		return err
	}
	if err := p.UseUniformFloat("specularPower", m.SpecularPower); err != nil {
		return err
	}
	return m.bindColor(p)
}
