package light

import "math"

// lightConfig collects the construction parameters shared by every light
// kind. Constructors read the fields relevant to their kind and ignore the
// rest.
type lightConfig struct {
	color            [3]float32
	intensity        float32
	direction        [3]float32
	position         [3]float32
	attConstant      float32
	attLinear        float32
	attExponential   float32
	cutoff           float32
	shadowResolution int
}

// defaultLightConfig returns the defaults every constructor starts from:
// white light at full intensity shining straight down with no distance
// falloff, a 25 degree cone, and the package shadow map resolution.
func defaultLightConfig() lightConfig {
	return lightConfig{
		color:            [3]float32{1, 1, 1},
		intensity:        1,
		direction:        [3]float32{0, -1, 0},
		attConstant:      1,
		cutoff:           25 * (math.Pi / 180),
		shadowResolution: ShadowMapResolution,
	}
}

// LightBuilderOption configures a light during construction.
type LightBuilderOption func(*lightConfig)

// WithColor sets the light color.
//
// Parameters:
//   - r, g, b: color components
//
// Returns:
//   - LightBuilderOption: a function that sets the light's color
func WithColor(r, g, b float32) LightBuilderOption {
	return func(cfg *lightConfig) {
		cfg.color = [3]float32{r, g, b}
	}
}

// WithIntensity sets the scale applied to the light color.
//
// Parameters:
//   - intensity: color scale
//
// Returns:
//   - LightBuilderOption: a function that sets the light's intensity
func WithIntensity(intensity float32) LightBuilderOption {
	return func(cfg *lightConfig) {
		cfg.intensity = intensity
	}
}

// WithDirection sets the direction the light shines in. Applies to
// directional and spot lights; the vector is normalized at construction.
//
// Parameters:
//   - x, y, z: direction components
//
// Returns:
//   - LightBuilderOption: a function that sets the light's direction
func WithDirection(x, y, z float32) LightBuilderOption {
	return func(cfg *lightConfig) {
		cfg.direction = [3]float32{x, y, z}
	}
}

// WithPosition sets the light's world-space position. Applies to spot and
// point lights.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - LightBuilderOption: a function that sets the light's position
func WithPosition(x, y, z float32) LightBuilderOption {
	return func(cfg *lightConfig) {
		cfg.position = [3]float32{x, y, z}
	}
}

// WithAttenuation sets the distance falloff coefficients for spot and point
// lights. The contribution at distance d is divided by
// constant + linear*d + exponential*d*d.
//
// Parameters:
//   - constant: distance-independent term
//   - linear: term proportional to distance
//   - exponential: term proportional to squared distance
//
// Returns:
//   - LightBuilderOption: a function that sets the light's attenuation
func WithAttenuation(constant, linear, exponential float32) LightBuilderOption {
	return func(cfg *lightConfig) {
		cfg.attConstant = constant
		cfg.attLinear = linear
		cfg.attExponential = exponential
	}
}

// WithCutoff sets a spot light's cone half-angle in radians.
//
// Parameters:
//   - cutoff: half-angle between the cone axis and its edge, in radians
//
// Returns:
//   - LightBuilderOption: a function that sets the spot cone angle
func WithCutoff(cutoff float32) LightBuilderOption {
	return func(cfg *lightConfig) {
		cfg.cutoff = cutoff
	}
}

// WithShadowResolution sets the square shadow map size in texels for
// directional and spot lights. Defaults to ShadowMapResolution.
//
// Parameters:
//   - texels: shadow map width and height
//
// Returns:
//   - LightBuilderOption: a function that sets the shadow map resolution
func WithShadowResolution(texels int) LightBuilderOption {
	return func(cfg *lightConfig) {
		if texels > 0 {
			cfg.shadowResolution = texels
		}
	}
}
