package phong

import "github.com/UmbraEngine/umbra-go/engine/graphics"

// MaterialBuilderOption configures a material during construction.
type MaterialBuilderOption func(*Material)

// WithName sets the material name.
//
// Parameters:
//   - name: material identifier
//
// Returns:
//   - MaterialBuilderOption: a function that sets the material's name
func WithName(name string) MaterialBuilderOption {
	return func(m *Material) {
		m.Name = name
	}
}

// WithColor sets a solid surface color and clears any texture.
//
// Parameters:
//   - r, g, b, a: color components
//
// Returns:
//   - MaterialBuilderOption: a function that sets the material's color
func WithColor(r, g, b, a float32) MaterialBuilderOption {
	return func(m *Material) {
		m.Color = [4]float32{r, g, b, a}
		m.Texture = nil
	}
}

// WithTexture sets a texture as the surface color source. The material does
// not take ownership; the caller destroys the texture after the last mesh
// using this material.
//
// Parameters:
//   - texture: color texture sampled over the mesh uv coordinates
//
// Returns:
//   - MaterialBuilderOption: a function that sets the material's texture
func WithTexture(texture graphics.Texture2D) MaterialBuilderOption {
	return func(m *Material) {
		m.Texture = texture
	}
}

// WithDiffuseIntensity sets the diffuse reflection scale.
//
// Parameters:
//   - intensity: diffuse term scale
//
// Returns:
//   - MaterialBuilderOption: a function that sets the diffuse intensity
func WithDiffuseIntensity(intensity float32) MaterialBuilderOption {
	return func(m *Material) {
		m.DiffuseIntensity = intensity
	}
}

// WithSpecularIntensity sets the specular reflection scale.
//
// Parameters:
//   - intensity: specular term scale
//
// Returns:
//   - MaterialBuilderOption: a function that sets the specular intensity
func WithSpecularIntensity(intensity float32) MaterialBuilderOption {
	return func(m *Material) {
		m.SpecularIntensity = intensity
	}
}

// WithSpecularPower sets the specular highlight tightness, in [0, 128].
//
// Parameters:
//   - power: specular exponent
//
// Returns:
//   - MaterialBuilderOption: a function that sets the specular power
func WithSpecularPower(power float32) MaterialBuilderOption {
	return func(m *Material) {
		m.SpecularPower = power
	}
}
