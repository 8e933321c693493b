package light

import (
	"github.com/UmbraEngine/umbra-go/engine/graphics"
)

type pointImpl struct {
	ctx graphics.Context

	uniform GPUPointLightUniform
	buffer  graphics.UniformBuffer
	dirty   bool
}

// Point defines the interface for a light emitting in all directions from a
// position, attenuating with distance. Bulbs and flames. The light owns a
// PointLightUniform block; point lights cast no shadows.
type Point interface {
	// Color returns the light color.
	//
	// Returns:
	//   - r, g, b: color components
	Color() (r, g, b float32)

	// Intensity returns the scale applied to the light color.
	//
	// Returns:
	//   - float32: the intensity
	Intensity() float32

	// Position returns the light's world-space position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Attenuation returns the distance falloff coefficients.
	//
	// Returns:
	//   - constant, linear, exponential: falloff terms
	Attenuation() (constant, linear, exponential float32)

	// SetColor sets the light color.
	//
	// Parameters:
	//   - r, g, b: color components
	SetColor(r, g, b float32)

	// SetIntensity sets the scale applied to the light color.
	//
	// Parameters:
	//   - intensity: color scale
	SetIntensity(intensity float32)

	// SetPosition sets the light's world-space position.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetAttenuation sets the distance falloff coefficients.
	//
	// Parameters:
	//   - constant: distance-independent term
	//   - linear: term proportional to distance
	//   - exponential: term proportional to squared distance
	SetAttenuation(constant, linear, exponential float32)

	// UniformBuffer returns the light's PointLightUniform block buffer,
	// creating it on first use and refreshing its contents whenever the light
	// changed since the last call.
	//
	// Returns:
	//   - graphics.UniformBuffer: the light block, ready to bind
	//   - error: buffer allocation or upload failure
	UniformBuffer() (graphics.UniformBuffer, error)

	// Destroy releases the light's GPU resources. Safe to call more than once.
	Destroy()
}

var _ Point = (*pointImpl)(nil)

// NewPoint creates a point light. WithColor, WithIntensity, WithPosition, and
// WithAttenuation apply; other options are ignored.
//
// Parameters:
//   - ctx: graphics context that owns the light's GPU resources
//   - options: functional options to configure the light
//
// Returns:
//   - Point: the newly created light
func NewPoint(ctx graphics.Context, options ...LightBuilderOption) Point {
	cfg := defaultLightConfig()
	for _, option := range options {
		option(&cfg)
	}
	return &pointImpl{
		ctx: ctx,
		uniform: GPUPointLightUniform{
			Color:                  cfg.color,
			Intensity:              cfg.intensity,
			Position:               cfg.position,
			AttenuationConstant:    cfg.attConstant,
			AttenuationLinear:      cfg.attLinear,
			AttenuationExponential: cfg.attExponential,
		},
		dirty: true,
	}
}

func (l *pointImpl) Color() (r, g, b float32) {
	return l.uniform.Color[0], l.uniform.Color[1], l.uniform.Color[2]
}

func (l *pointImpl) Intensity() float32 {
	return l.uniform.Intensity
}

func (l *pointImpl) Position() (x, y, z float32) {
	return l.uniform.Position[0], l.uniform.Position[1], l.uniform.Position[2]
}

func (l *pointImpl) Attenuation() (constant, linear, exponential float32) {
	return l.uniform.AttenuationConstant, l.uniform.AttenuationLinear, l.uniform.AttenuationExponential
}

func (l *pointImpl) SetColor(r, g, b float32) {
	l.uniform.Color = [3]float32{r, g, b}
	l.dirty = true
}

func (l *pointImpl) SetIntensity(intensity float32) {
	l.uniform.Intensity = intensity
	l.dirty = true
}

func (l *pointImpl) SetPosition(x, y, z float32) {
	l.uniform.Position = [3]float32{x, y, z}
	l.dirty = true
}

func (l *pointImpl) SetAttenuation(constant, linear, exponential float32) {
	l.uniform.AttenuationConstant = constant
	l.uniform.AttenuationLinear = linear
	l.uniform.AttenuationExponential = exponential
	l.dirty = true
}

func (l *pointImpl) UniformBuffer() (graphics.UniformBuffer, error) {
	if l.buffer == nil {
		buffer, err := l.ctx.NewUniformBuffer()
		if err != nil {
			return nil, err
		}
		l.buffer = buffer
		l.dirty = true
	}
	if l.dirty {
		if err := l.buffer.Update(l.uniform.Marshal()); err != nil {
			return nil, err
		}
		l.dirty = false
	}
	return l.buffer, nil
}

func (l *pointImpl) Destroy() {
	if l.buffer != nil {
		l.buffer.Destroy()
		l.buffer = nil
	}
}
