package graphics

// CullType determines which triangle faces are discarded before rasterization.
type CullType int

const (
	// CullNone rasterizes both faces.
	CullNone CullType = iota
	// CullBack discards faces wound away from the viewer.
	CullBack
	// CullFront discards faces wound toward the viewer.
	CullFront
	// CullFrontAndBack discards all faces; only lines and points rasterize.
	CullFrontAndBack
)

// DepthTestType selects the comparison between a fragment's depth and the
// depth buffer. The zero value is DepthTestLess, the common opaque-pass test.
type DepthTestType int

const (
	DepthTestLess DepthTestType = iota
	DepthTestLessOrEqual
	DepthTestEqual
	DepthTestGreaterOrEqual
	DepthTestGreater
	DepthTestNotEqual
	DepthTestAlways
	DepthTestNever
)

// BlendMultiplier scales a blend operand.
type BlendMultiplier int

const (
	BlendZero BlendMultiplier = iota
	BlendOne
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
)

// BlendEquation combines the scaled source and destination operands.
type BlendEquation int

const (
	BlendEquationAdd BlendEquation = iota
	BlendEquationSubtract
	BlendEquationReverseSubtract
	BlendEquationMin
	BlendEquationMax
)

// BlendParameters describes how fragment output combines with what the render
// target already holds. A nil *BlendParameters in RenderStates disables
// blending entirely (opaque overwrite).
type BlendParameters struct {
	SourceRGB        BlendMultiplier
	SourceAlpha      BlendMultiplier
	DestinationRGB   BlendMultiplier
	DestinationAlpha BlendMultiplier
	RGBEquation      BlendEquation
	AlphaEquation    BlendEquation
}

// BlendAdd returns the additive accumulation blend: output = source + target.
// The light pass switches to this after its first contribution so that later
// lights sum instead of overwrite.
func BlendAdd() *BlendParameters {
	return &BlendParameters{
		SourceRGB:        BlendOne,
		SourceAlpha:      BlendOne,
		DestinationRGB:   BlendOne,
		DestinationAlpha: BlendOne,
		RGBEquation:      BlendEquationAdd,
		AlphaEquation:    BlendEquationAdd,
	}
}

// BlendTransparency returns the standard source-over alpha blend.
func BlendTransparency() *BlendParameters {
	return &BlendParameters{
		SourceRGB:        BlendSrcAlpha,
		SourceAlpha:      BlendZero,
		DestinationRGB:   BlendOneMinusSrcAlpha,
		DestinationAlpha: BlendOne,
		RGBEquation:      BlendEquationAdd,
		AlphaEquation:    BlendEquationAdd,
	}
}

// RenderStates is the fixed-function state one draw call runs under. The zero
// value renders both faces, depth-tests with Less, and blends nothing.
type RenderStates struct {
	// Cull selects which triangle faces are discarded.
	Cull CullType
	// DepthTest selects the depth comparison.
	DepthTest DepthTestType
	// Blend enables blending when non-nil. The draw restores nothing; each
	// draw call carries its complete state.
	Blend *BlendParameters
}

// Viewport defines the render area in physical pixels.
type Viewport struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewViewport returns a viewport of the given size anchored at the origin.
//
// Parameters:
//   - width, height: viewport size in physical pixels
//
// Returns:
//   - Viewport: the origin-anchored viewport
func NewViewport(width, height int) Viewport {
	return Viewport{Width: width, Height: height}
}

// AspectRatio returns width over height, or 1 when the viewport is degenerate.
func (v Viewport) AspectRatio() float32 {
	if v.Height == 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// ClearState selects which channels a render-target write clears first.
type ClearState struct {
	ClearColor bool
	Red        float32
	Green      float32
	Blue       float32
	Alpha      float32
	ClearDepth bool
	Depth      float32
}

// DefaultClearState clears color to transparent black and depth to the far
// plane, the state every geometry pass opens with.
func DefaultClearState() ClearState {
	return ClearState{ClearColor: true, ClearDepth: true, Depth: 1}
}

// ClearColorAndDepth clears both channels to explicit values.
func ClearColorAndDepth(red, green, blue, alpha, depth float32) ClearState {
	return ClearState{
		ClearColor: true,
		Red:        red,
		Green:      green,
		Blue:       blue,
		Alpha:      alpha,
		ClearDepth: true,
		Depth:      depth,
	}
}

// ClearDepthOnly clears the depth channel, leaving color intact. Shadow-map
// passes open with this.
func ClearDepthOnly(depth float32) ClearState {
	return ClearState{ClearDepth: true, Depth: depth}
}

// ClearNone preserves existing target contents, the state every accumulation
// pass after the first opens with.
func ClearNone() ClearState {
	return ClearState{}
}
