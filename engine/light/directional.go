package light

import (
	"github.com/UmbraEngine/umbra-go/common"
	"github.com/UmbraEngine/umbra-go/engine/camera"
	"github.com/UmbraEngine/umbra-go/engine/graphics"
)

type directionalImpl struct {
	ctx graphics.Context

	uniform GPUDirectionalLightUniform
	buffer  graphics.UniformBuffer
	dirty   bool

	shadowResolution int
	placeholder      graphics.DepthTexture2D
	shadowTexture    graphics.DepthTexture2D
	shadowCamera     camera.Camera
}

// Directional defines the interface for a light infinitely far away, shining
// uniformly along one direction with no distance falloff. Sun and moon
// lighting. The light owns a DirectionalLightUniform block and optionally a
// shadow map rendered through an internal orthographic camera.
type Directional interface {
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

	// Direction returns the normalized direction the light shines in.
	//
	// Returns:
	//   - x, y, z: direction components
	Direction() (x, y, z float32)

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

	// SetDirection sets the direction the light shines in. The vector is
	// normalized before use. Does not refresh an existing shadow map; call
	// GenerateShadowMap again to re-render it for the new direction.
	//
	// Parameters:
	//   - x, y, z: direction components
	SetDirection(x, y, z float32)

	// UniformBuffer returns the light's DirectionalLightUniform block buffer,
	// creating it on first use and refreshing its contents whenever the light
	// changed since the last call.
	//
	// Returns:
	//   - graphics.UniformBuffer: the light block, ready to bind
	//   - error: buffer allocation or upload failure
	UniformBuffer() (graphics.UniformBuffer, error)

	// GenerateShadowMap renders a shadow map for the geometry drawn by the
	// render callback, seen through an orthographic camera looking along the
	// light direction at the given target. Subsequent shading binds the map
	// and the matching texture-space matrix automatically. Replaces any
	// previous shadow map.
	//
	// Parameters:
	//   - targetX, targetY, targetZ: world-space point the shadow volume centers on
	//   - frustumWidth: horizontal extent of the shadow volume in world units
	//   - frustumHeight: vertical extent of the shadow volume in world units
	//   - frustumDepth: depth extent of the shadow volume in world units
	//   - render: callback that draws the occluding geometry with a depth-only
	//     material, using the supplied viewport and shadow camera
	//
	// Returns:
	//   - error: texture or framebuffer allocation failure, or the callback's error
	GenerateShadowMap(targetX, targetY, targetZ, frustumWidth, frustumHeight, frustumDepth float32, render func(graphics.Viewport, camera.Camera) error) error

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

var _ Directional = (*directionalImpl)(nil)

// NewDirectional creates a directional light. WithColor, WithIntensity,
// WithDirection, and WithShadowResolution apply; other options are ignored.
//
// Parameters:
//   - ctx: graphics context that owns the light's GPU resources
//   - options: functional options to configure the light
//
// Returns:
//   - Directional: the newly created light
//   - error: placeholder texture allocation failure
func NewDirectional(ctx graphics.Context, options ...LightBuilderOption) (Directional, error) {
	cfg := defaultLightConfig()
	for _, option := range options {
		option(&cfg)
	}

	placeholder, err := newShadowPlaceholder(ctx)
	if err != nil {
		return nil, err
	}

	dx, dy, dz := common.Normalize3(cfg.direction[0], cfg.direction[1], cfg.direction[2])
	return &directionalImpl{
		ctx: ctx,
		uniform: GPUDirectionalLightUniform{
			Color:     cfg.color,
			Intensity: cfg.intensity,
			Direction: [3]float32{dx, dy, dz},
		},
		dirty:            true,
		shadowResolution: cfg.shadowResolution,
		placeholder:      placeholder,
	}, nil
}

func (l *directionalImpl) Color() (r, g, b float32) {
	return l.uniform.Color[0], l.uniform.Color[1], l.uniform.Color[2]
}

func (l *directionalImpl) Intensity() float32 {
	return l.uniform.Intensity
}

func (l *directionalImpl) Direction() (x, y, z float32) {
	return l.uniform.Direction[0], l.uniform.Direction[1], l.uniform.Direction[2]
}

func (l *directionalImpl) SetColor(r, g, b float32) {
	l.uniform.Color = [3]float32{r, g, b}
	l.dirty = true
}

func (l *directionalImpl) SetIntensity(intensity float32) {
	l.uniform.Intensity = intensity
	l.dirty = true
}

func (l *directionalImpl) SetDirection(x, y, z float32) {
	x, y, z = common.Normalize3(x, y, z)
	l.uniform.Direction = [3]float32{x, y, z}
	l.dirty = true
}

func (l *directionalImpl) UniformBuffer() (graphics.UniformBuffer, error) {
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

func (l *directionalImpl) GenerateShadowMap(targetX, targetY, targetZ, frustumWidth, frustumHeight, frustumDepth float32, render func(graphics.Viewport, camera.Camera) error) error {
	// Drop the previous map first so a failure below leaves the light in a
	// valid shadowless state.
	l.ClearShadowMap()

	dx, dy, dz := l.uniform.Direction[0], l.uniform.Direction[1], l.uniform.Direction[2]
	upX, upY, upZ := shadowUp(dx, dy, dz)
	l.shadowCamera = camera.NewCamera(
		camera.WithPosition(
			targetX-dx*frustumDepth*0.5,
			targetY-dy*frustumDepth*0.5,
			targetZ-dz*frustumDepth*0.5,
		),
		camera.WithTarget(targetX, targetY, targetZ),
		camera.WithUp(upX, upY, upZ),
		camera.WithOrthographic(frustumWidth, frustumHeight),
		camera.WithNearFar(0, frustumDepth),
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

func (l *directionalImpl) ShadowMap() graphics.DepthTexture2D {
	if l.shadowTexture != nil {
		return l.shadowTexture
	}
	return l.placeholder
}

func (l *directionalImpl) ClearShadowMap() {
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

func (l *directionalImpl) Destroy() {
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

// newShadowPlaceholder allocates the 1x1 depth texture a light exposes while
// it has no real shadow map.
func newShadowPlaceholder(ctx graphics.Context) (graphics.DepthTexture2D, error) {
	return ctx.NewDepthTexture2D(1, 1, graphics.DepthFormat32F, graphics.TextureOptions{})
}

// renderShadowMap allocates a square depth texture and runs the render
// callback against a depth-only target over it.
func renderShadowMap(ctx graphics.Context, resolution int, cam camera.Camera, render func(graphics.Viewport, camera.Camera) error) (graphics.DepthTexture2D, error) {
	texture, err := ctx.NewDepthTexture2D(resolution, resolution, graphics.DepthFormat32F, graphics.TextureOptions{})
	if err != nil {
		return nil, err
	}
	target, err := ctx.NewDepthTarget(texture)
	if err != nil {
		texture.Destroy()
		return nil, err
	}
	err = target.Write(graphics.ClearDepthOnly(1), func() error {
		return render(graphics.NewViewport(resolution, resolution), cam)
	})
	target.Destroy()
	if err != nil {
		texture.Destroy()
		return nil, err
	}
	return texture, nil
}
