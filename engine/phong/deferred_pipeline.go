package phong

import (
	"errors"

	"github.com/UmbraEngine/umbra-go/common"
	"github.com/UmbraEngine/umbra-go/engine/camera"
	"github.com/UmbraEngine/umbra-go/engine/effect"
	"github.com/UmbraEngine/umbra-go/engine/graphics"
	"github.com/UmbraEngine/umbra-go/engine/light"
)

// DebugType selects what the light pass visualizes instead of shading.
type DebugType int

const (
	// DebugNone disables debug output; the light pass shades normally.
	DebugNone DebugType = iota
	// DebugPosition shows reconstructed world positions.
	DebugPosition
	// DebugNormal shows decoded surface normals.
	DebugNormal
	// DebugColor shows the surface color stored in the geometry buffer.
	DebugColor
	// DebugDepth shows the raw depth buffer.
	DebugDepth
	// DebugDiffuse shows the diffuse intensity channel.
	DebugDiffuse
	// DebugSpecular shows the specular intensity channel.
	DebugSpecular
	// DebugPower shows the specular power channel.
	DebugPower
)

// ErrNoGeometryPass is returned by operations that read the geometry buffer
// before GeometryPass has filled it.
var ErrNoGeometryPass = errors.New("no geometry pass has been rendered yet")

// DeferredPipeline shades a scene in two passes. GeometryPass rasterizes
// meshes into a geometry buffer holding surface attributes, then LightPass
// accumulates the contribution of every light over that buffer with one
// screen-space draw per light. Shading cost scales with lights times pixels
// instead of lights times meshes.
//
// The pipeline is not safe for concurrent use; drive it from the render
// thread.
type DeferredPipeline struct {
	ctx graphics.Context

	ambientEffect     *effect.ScreenSpaceEffect
	directionalEffect *effect.ScreenSpaceEffect
	spotEffect        *effect.ScreenSpaceEffect
	pointEffect       *effect.ScreenSpaceEffect
	debugEffect       *effect.ScreenSpaceEffect

	debugType DebugType

	gbuffer      graphics.Texture2DArray
	gbufferDepth graphics.DepthTexture2DArray

	geometryWritten bool
	destroyed       bool
}

// NewDeferredPipeline compiles the light pass effects and allocates a
// placeholder geometry buffer. The buffer is resized by the first
// GeometryPass call.
//
// Parameters:
//   - ctx: graphics context the pipeline lives on
//
// Returns:
//   - *DeferredPipeline: the new pipeline
//   - error: shader compilation or allocation failure
func NewDeferredPipeline(ctx graphics.Context) (*DeferredPipeline, error) {
	p := &DeferredPipeline{ctx: ctx}
	var err error
	if p.ambientEffect, err = effect.NewScreenSpaceEffect(ctx, ambientLightSource); err != nil {
		p.Destroy()
		return nil, err
	}
	if p.directionalEffect, err = effect.NewScreenSpaceEffect(ctx, directionalLightSource); err != nil {
		p.Destroy()
		return nil, err
	}
	if p.spotEffect, err = effect.NewScreenSpaceEffect(ctx, spotLightSource); err != nil {
		p.Destroy()
		return nil, err
	}
	if p.pointEffect, err = effect.NewScreenSpaceEffect(ctx, pointLightSource); err != nil {
		p.Destroy()
		return nil, err
	}
	if p.gbuffer, err = ctx.NewColorTexture2DArray(1, 1, 2, graphics.FormatRGBA8, graphics.TextureOptions{}); err != nil {
		p.Destroy()
		return nil, err
	}
	if p.gbufferDepth, err = ctx.NewDepthTexture2DArray(1, 1, 1, graphics.DepthFormat32F, graphics.TextureOptions{}); err != nil {
		p.Destroy()
		return nil, err
	}
	common.Logger().Debug("deferred pipeline created")
	return p, nil
}

// GeometryPass reallocates the geometry buffer at the given size, clears it,
// and runs the render callback into it. Meshes drawn inside the callback via
// DeferredMesh.RenderGeometry fill the buffer; LightPass reads it afterwards.
//
// On failure the previous geometry buffer and pipeline state are kept.
//
// Parameters:
//   - width: buffer width in pixels
//   - height: buffer height in pixels
//   - render: callback that draws the scene geometry
//
// Returns:
//   - error: allocation failure, or an error returned by the callback
func (p *DeferredPipeline) GeometryPass(width, height int, render func() error) error {
	color, err := p.ctx.NewColorTexture2DArray(width, height, 2, graphics.FormatRGBA8, graphics.TextureOptions{})
	if err != nil {
		return err
	}
	depth, err := p.ctx.NewDepthTexture2DArray(width, height, 1, graphics.DepthFormat32F, graphics.TextureOptions{})
	if err != nil {
		color.Destroy()
		return err
	}
	target, err := p.ctx.NewRenderTarget(color, []int{0, 1}, depth, 0)
	if err != nil {
		color.Destroy()
		depth.Destroy()
		return err
	}
	err = target.Write(graphics.DefaultClearState(), render)
	target.Destroy()
	if err != nil {
		color.Destroy()
		depth.Destroy()
		return err
	}
	p.dropGBuffer()
	p.gbuffer = color
	p.gbufferDepth = depth
	p.geometryWritten = true
	return nil
}

// LightPass accumulates lighting over the geometry buffer into the current
// write target. The ambient term renders first with the caller-visible blend
// disabled, then every directional, spot and point light adds its
// contribution with additive blending. When a debug type is set, the pass
// renders the selected visualization instead.
//
// Parameters:
//   - viewport: region of the write target to shade
//   - cam: camera whose view produced the geometry pass
//   - ambient: ambient term, nil for none
//   - directionals: directional lights to accumulate
//   - spots: spot lights to accumulate
//   - points: point lights to accumulate
//
// Returns:
//   - error: ErrNoGeometryPass before the first geometry pass, or a bind or
//     draw failure
func (p *DeferredPipeline) LightPass(viewport graphics.Viewport, cam camera.Camera, ambient *light.Ambient, directionals []light.Directional, spots []light.Spot, points []light.Point) error {
	if !p.geometryWritten {
		return ErrNoGeometryPass
	}
	states := graphics.RenderStates{
		Cull:      graphics.CullBack,
		DepthTest: graphics.DepthTestLessOrEqual,
	}

	if p.debugType != DebugNone {
		return p.renderDebug(states, viewport, cam)
	}

	if ambient != nil {
		prog := p.ambientEffect.Program()
		if err := p.bindGBuffer(prog); err != nil {
			return err
		}
		r, g, b := ambient.ScaledColor()
		if err := prog.UseUniformVec3("ambientColor", r, g, b); err != nil {
			return err
		}
		if err := p.ambientEffect.Apply(states, viewport); err != nil {
			return err
		}
		states.Blend = graphics.BlendAdd()
	}

	for _, directional := range directionals {
		prog := p.directionalEffect.Program()
		if err := p.bindLightPass(prog, cam); err != nil {
			return err
		}
		if err := prog.UseTexture(directional.ShadowMap(), "shadowMap"); err != nil {
			return err
		}
		buffer, err := directional.UniformBuffer()
		if err != nil {
			return err
		}
		if err := prog.UseUniformBlock(buffer, "DirectionalLightUniform"); err != nil {
			return err
		}
		if err := p.directionalEffect.Apply(states, viewport); err != nil {
			return err
		}
		states.Blend = graphics.BlendAdd()
	}

	for _, spot := range spots {
		prog := p.spotEffect.Program()
		if err := p.bindLightPass(prog, cam); err != nil {
			return err
		}
		if err := prog.UseTexture(spot.ShadowMap(), "shadowMap"); err != nil {
			return err
		}
		buffer, err := spot.UniformBuffer()
		if err != nil {
			return err
		}
		if err := prog.UseUniformBlock(buffer, "SpotLightUniform"); err != nil {
			return err
		}
		if err := p.spotEffect.Apply(states, viewport); err != nil {
			return err
		}
		states.Blend = graphics.BlendAdd()
	}

	for _, point := range points {
		prog := p.pointEffect.Program()
		if err := p.bindLightPass(prog, cam); err != nil {
			return err
		}
		buffer, err := point.UniformBuffer()
		if err != nil {
			return err
		}
		if err := prog.UseUniformBlock(buffer, "PointLightUniform"); err != nil {
			return err
		}
		if err := p.pointEffect.Apply(states, viewport); err != nil {
			return err
		}
		states.Blend = graphics.BlendAdd()
	}

	return nil
}

// renderDebug draws the selected geometry buffer visualization. The debug
// effect compiles on first use so regular scenes never pay for it.
func (p *DeferredPipeline) renderDebug(states graphics.RenderStates, viewport graphics.Viewport, cam camera.Camera) error {
	if p.debugEffect == nil {
		e, err := effect.NewScreenSpaceEffect(p.ctx, debugSource)
		if err != nil {
			return err
		}
		p.debugEffect = e
	}
	prog := p.debugEffect.Program()
	if err := p.bindGBuffer(prog); err != nil {
		return err
	}
	inverse := cam.ViewProjectionInverse()
	if err := prog.UseUniformMat4("viewProjectionInverse", inverse[:]); err != nil {
		return err
	}
	if err := prog.UseUniformInt("type", int32(p.debugType)); err != nil {
		return err
	}
	return p.debugEffect.Apply(states, viewport)
}

// bindGBuffer binds the geometry buffer samplers. Re-bound before every
// pass because GeometryPass replaces the textures.
func (p *DeferredPipeline) bindGBuffer(prog graphics.Program) error {
	if err := prog.UseTexture(p.gbuffer, "gbuffer"); err != nil {
		return err
	}
	return prog.UseTexture(p.gbufferDepth, "depthMap")
}

// bindLightPass binds the uniforms every positional light pass shares.
func (p *DeferredPipeline) bindLightPass(prog graphics.Program, cam camera.Camera) error {
	if err := p.bindGBuffer(prog); err != nil {
		return err
	}
	ex, ey, ez := cam.Position()
	if err := prog.UseUniformVec3("eyePosition", ex, ey, ez); err != nil {
		return err
	}
	inverse := cam.ViewProjectionInverse()
	return prog.UseUniformMat4("viewProjectionInverse", inverse[:])
}

// SetDebugType selects a geometry buffer visualization for the next light
// pass. Set DebugNone to shade normally again.
//
// Parameters:
//   - debugType: the visualization to render
func (p *DeferredPipeline) SetDebugType(debugType DebugType) {
	p.debugType = debugType
}

// DebugType returns the active visualization.
//
// Returns:
//   - DebugType: the current debug type, DebugNone when shading normally
func (p *DeferredPipeline) DebugType() DebugType {
	return p.debugType
}

// GBuffer exposes the geometry buffer color layers, for custom effects that
// read surface attributes.
//
// Returns:
//   - graphics.Texture2DArray: two layers of packed surface attributes
func (p *DeferredPipeline) GBuffer() graphics.Texture2DArray {
	return p.gbuffer
}

// DepthBuffer exposes the geometry pass depth.
//
// Returns:
//   - graphics.DepthTexture2DArray: single-layer depth from the last
//     geometry pass
func (p *DeferredPipeline) DepthBuffer() graphics.DepthTexture2DArray {
	return p.gbufferDepth
}

// DepthSnapshot copies the geometry pass depth into a standalone texture the
// caller owns. Useful for forward passes that want to depth-test against
// deferred geometry after the buffer has been reused.
//
// Returns:
//   - graphics.DepthTexture2D: the copy, destroyed by the caller
//   - error: ErrNoGeometryPass before the first geometry pass, or a copy
//     failure
func (p *DeferredPipeline) DepthSnapshot() (graphics.DepthTexture2D, error) {
	if !p.geometryWritten {
		return nil, ErrNoGeometryPass
	}
	snapshot, err := p.ctx.NewDepthTexture2D(p.gbufferDepth.Width(), p.gbufferDepth.Height(), graphics.DepthFormat32F, graphics.TextureOptions{})
	if err != nil {
		return nil, err
	}
	if err := p.ctx.CopyDepth(p.gbufferDepth, 0, snapshot); err != nil {
		snapshot.Destroy()
		return nil, err
	}
	return snapshot, nil
}

// dropGBuffer destroys the current geometry buffer textures.
func (p *DeferredPipeline) dropGBuffer() {
	if p.gbuffer != nil {
		p.gbuffer.Destroy()
		p.gbuffer = nil
	}
	if p.gbufferDepth != nil {
		p.gbufferDepth.Destroy()
		p.gbufferDepth = nil
	}
}

// Destroy releases the light pass effects and the geometry buffer. Safe to
// call more than once.
func (p *DeferredPipeline) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	for _, e := range []*effect.ScreenSpaceEffect{p.ambientEffect, p.directionalEffect, p.spotEffect, p.pointEffect, p.debugEffect} {
		if e != nil {
			e.Destroy()
		}
	}
	p.ambientEffect = nil
	p.directionalEffect = nil
	p.spotEffect = nil
	p.pointEffect = nil
	p.debugEffect = nil
	p.dropGBuffer()
	p.geometryWritten = false
}
