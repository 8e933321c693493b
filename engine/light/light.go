// Package light provides the light sources the shading passes consume:
// ambient, directional, spot, and point lights. Directional, spot, and point
// lights own a GPU uniform block whose std140 layout lives in gpu_types.go;
// directional and spot lights additionally render a shadow map through an
// internal shadow camera.
//
// Lights are not safe for concurrent use. All calls must happen on the
// rendering thread that owns the graphics context.
package light

// Ambient is uniform background lighting applied equally to every surface.
// It has no position or direction and owns no GPU state; shading passes fold
// it into a single color uniform.
type Ambient struct {
	// Color is the light color.
	Color [3]float32
	// Intensity scales Color. The effective contribution is Color * Intensity.
	Intensity float32
}

// NewAmbient creates an ambient light. Only WithColor and WithIntensity are
// meaningful here; other options are ignored.
//
// Parameters:
//   - options: functional options to configure the light
//
// Returns:
//   - *Ambient: the newly created light
func NewAmbient(options ...LightBuilderOption) *Ambient {
	cfg := defaultLightConfig()
	for _, option := range options {
		option(&cfg)
	}
	return &Ambient{Color: cfg.color, Intensity: cfg.intensity}
}

// ScaledColor returns the light's effective contribution, color scaled by
// intensity.
//
// Returns:
//   - r, g, b: color components
func (a *Ambient) ScaledColor() (r, g, b float32) {
	return a.Color[0] * a.Intensity, a.Color[1] * a.Intensity, a.Color[2] * a.Intensity
}
