package light

import (
	"github.com/UmbraEngine/umbra-go/common"
	"github.com/UmbraEngine/umbra-go/engine/camera"
	"github.com/UmbraEngine/umbra-go/engine/graphics"
)

type spotImpl struct {
	ctx graphics.Context

	uniform GPUSpotLightUniform
	buffer  graphics.UniformBuffer
	dirty   bool

	shadowResolution int
	placeholder      graphics.DepthTexture2D
	shadowTexture    graphics.DepthTexture2D
	shadowCamera     camera.Camera
}

// Spot defines the interface for a light shining in a cone from a position
// along a direction, attenuating with distance. Flashlights and lamps. The
// light owns a SpotLightUniform block and optionally a shadow map rendered
// through an internal perspective camera spanning the cone.
type Spot interface {
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

	// Direction returns the normalized cone axis.
	//
	// Returns:
	//   - x, y, z: direction components
	Direction() (x, y, z float32)

	// Attenuation returns the distance falloff coefficients.
	//
	// Returns:
	//   - constant, linear, exponential: falloff terms
	Attenuation() (constant, linear, exponential float32)

	// Cutoff returns the cone half-angle in radians.
	//
	// Returns:
	//   - float32: the half-angle
	Cutoff() float32

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

	// SetPosition sets the light's world-space position. Does not refresh an
	// existing shadow map; call GenerateShadowMap again to re-render it.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetDirection sets the cone axis. The vector is normalized before use.
	// Does not refresh an existing shadow map.
	//
	// Parameters:
	//   - x, y, z: direction components
	SetDirection(x, y, z float32)

	// SetAttenuation sets the distance falloff coefficients.
	//
	// Parameters:
	//   - constant: distance-independent term
	//   - linear: term proportional to distance
	//   - exponential: term proportional to squared distance
	SetAttenuation(constant, linear, exponential float32)

	// SetCutoff sets the cone half-angle in radians. Does not refresh an
	// existing shadow map.
	//
	// Parameters:
	//   - cutoff: half-angle between the cone axis and its edge, in radians
	SetCutoff(cutoff float32)

	// UniformBuffer returns the light's SpotLightUniform block buffer,
	// creating it on first use and refreshing its contents whenever the light
	// changed since the last call.
	//
	// Returns:
	//   - graphics.UniformBuffer: the light block, ready to bind
	//   - error: buffer allocation or upload failure
	UniformBuffer() (graphics.UniformBuffer, error)

	// GenerateShadowMap renders a shadow map for the geometry drawn by the
	// render callback, seen through a perspective camera at the light's
	// position spanning its cone. Subsequent shading binds the map and the
	// matching texture-space matrix automatically. Replaces any previous
	// shadow map.
	//
	// Parameters:
	//   - frustumDepth: how far from the light shadows reach, in world units
	//   - render: callback that draws the occluding geometry with a depth-only
	//     material, using the supplied viewport and shadow camera
	//
	// Returns:
	//   - error: texture or framebuffer allocation failure, or the callback's error
	GenerateShadowMap(frustumDepth float32, render func(graphics.Viewport, camera.Camera) error) error

	// ShadowMap returns the light's current shadow map. Before the first
	// GenerateShadowMap call, and after ClearShadowMap, it returns a 1x1
	// placeholder so samplers always have a texture to bind; the uniform
	// block's shadowEnabled flag tells shaders whether the contents are
	// meaningful.
	//
	// Returns:
	//   - graphics.DepthTexture2D: the shadow map or the placeholder
	ShadowMap() graphics.DepthTexture2D

	// ClearShadowMap discards the shadow map and disables shadowing for this
	// light until the next GenerateShadowMap call.
	ClearShadowMap()

	// Destroy releases the light's GPU resources. Safe to call more than once.
	Destroy()
}

var _ Spot = (*spotImpl)(nil)

// NewSpot creates a spot light. Every builder option applies.
//
// Parameters:
//   - ctx: graphics context that owns the light's GPU resources
//   - options: functional options to configure the light
//
// Returns:
//   - Spot: the newly created light
//   - error: placeholder texture allocation failure
func NewSpot(ctx graphics.Context, options ...LightBuilderOption) (Spot, error) {
	cfg := defaultLightConfig()
	for _, option := range options {
		option(&cfg)
	}

	placeholder, err := newShadowPlaceholder(ctx)
	if err != nil {
		return nil, err
	}

	dx, dy, dz := common.Normalize3(cfg.direction[0], cfg.direction[1], cfg.direction[2])
	return &spotImpl{
		ctx: ctx,
		uniform: GPUSpotLightUniform{
			Color:                  cfg.color,
			Intensity:              cfg.intensity,
			Position:               cfg.position,
			AttenuationConstant:    cfg.attConstant,
			Direction:              [3]float32{dx, dy, dz},
			AttenuationLinear:      cfg.attLinear,
			AttenuationExponential: cfg.attExponential,
			Cutoff:                 cfg.cutoff,
		},
		dirty:            true,
		shadowResolution: cfg.shadowResolution,
		placeholder:      placeholder,
	}, nil
}

func (l *spotImpl) Color() (r, g, b float32) {
	return l.uniform.Color[0], l.uniform.Color[1], l.uniform.Color[2]
}

func (l *spotImpl) Intensity() float32 {
	return l.uniform.Intensity
}

func (l *spotImpl) Position() (x, y, z float32) {
	return l.uniform.Position[0], l.uniform.Position[1], l.uniform.Position[2]
}

func (l *spotImpl) Direction() (x, y, z float32) {
	return l.uniform.Direction[0], l.uniform.Direction[1], l.uniform.Direction[2]
}

func (l *spotImpl) Attenuation() (constant, linear, exponential float32) {
	return l.uniform.AttenuationConstant, l.uniform.AttenuationLinear, l.uniform.AttenuationExponential
}

func (l *spotImpl) Cutoff() float32 {
	return l.uniform.Cutoff
}

func (l *spotImpl) SetColor(r, g, b float32) {
	l.uniform.Color = [3]float32{r, g, b}
	l.dirty = true
}

func (l *spotImpl) SetIntensity(intensity float32) {
	l.uniform.Intensity = intensity
	l.dirty = true
}

func (l *spotImpl) SetPosition(x, y, z float32) {
	l.uniform.Position = [3]float32{x, y, z}
	l.dirty = true
}

func (l *spotImpl) SetDirection(x, y, z float32) {
	x, y, z = common.Normalize3(x, y, z)
	l.uniform.Direction = [3]float32{x, y, z}
	l.dirty = true
}

func (l *spotImpl) SetAttenuation(constant, linear, exponential float32) {
	l.uniform.AttenuationConstant = constant
	l.uniform.AttenuationLinear = linear
	l.uniform.AttenuationExponential = exponential
	l.dirty = true
}

func (l *spotImpl) SetCutoff(cutoff float32) {
	l.uniform.Cutoff = cutoff
	l.dirty = true
}

func (l *spotImpl) UniformBuffer() (graphics.UniformBuffer, error) {
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

func (l *spotImpl) GenerateShadowMap(frustumDepth float32, render func(graphics.Viewport, camera.Camera) error) error {
	// Drop the previous map first so a failure below leaves the light in a
	// valid shadowless state.
	l.ClearShadowMap()

	px, py, pz := l.uniform.Position[0], l.uniform.Position[1], l.uniform.Position[2]
	dx, dy, dz := l.uniform.Direction[0], l.uniform.Direction[1], l.uniform.Direction[2]
	upX, upY, upZ := shadowUp(dx, dy, dz)
	l.shadowCamera = camera.NewCamera(
		camera.WithPosition(px, py, pz),
		camera.WithTarget(px+dx, py+dy, pz+dz),
		camera.WithUp(upX, upY, upZ),
		// The camera frustum spans the full cone angle.
		camera.WithFov(2*l.uniform.Cutoff),
		camera.WithAspect(1),
		camera.WithNearFar(shadowNear, frustumDepth),
	)

	texture, err := renderShadowMap(l.ctx, l.shadowResolution, l.shadowCamera, render)
	if err != nil {
		return err
	}
	l.shadowTexture = texture
	l.uniform.ShadowMVP = shadowMatrix(l.shadowCamera)
	l.uniform.ShadowEnabled = 1
	l.dirty = true
	return nil
}

func (l *spotImpl) ShadowMap() graphics.DepthTexture2D {
	if l.shadowTexture != nil {
		return l.shadowTexture
	}
	return l.placeholder
}

func (l *spotImpl) ClearShadowMap() {
	if l.shadowCamera != nil {
		l.shadowCamera.Destroy()
		l.shadowCamera = nil
	}
	if l.shadowTexture != nil {
		l.shadowTexture.Destroy()
		l.shadowTexture = nil
	}
	if l.uniform.ShadowEnabled != 0 {
		l.uniform.ShadowEnabled = 0
		l.dirty = true
	}
}

func (l *spotImpl) Destroy() {
	l.ClearShadowMap()
	if l.buffer != nil {
		l.buffer.Destroy()
		l.buffer = nil
	}
	if l.placeholder != nil {
		l.placeholder.Destroy()
		l.placeholder = nil
	}
}
