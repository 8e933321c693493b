package phong

import _ "embed"

// Fragment stage building blocks. Complete sources are compiled as is; body
// files are concatenated after the shared headers they depend on.
var (
	//go:embed shaders/light_shared.frag
	lightSharedSource string

	//go:embed shaders/deferred_light_shared.frag
	deferredLightSharedSource string

	//go:embed shaders/ambient_light.frag
	ambientLightBody string

	//go:embed shaders/directional_light.frag
	directionalLightBody string

	//go:embed shaders/spot_light.frag
	spotLightBody string

	//go:embed shaders/point_light.frag
	pointLightBody string

	//go:embed shaders/debug.frag
	debugBody string

	//go:embed shaders/deferred_geometry_shared.frag
	deferredGeometrySharedSource string

	//go:embed shaders/deferred_colored.frag
	deferredColoredBody string

	//go:embed shaders/deferred_textured.frag
	deferredTexturedBody string

	//go:embed shaders/colored_forward_ambient.frag
	coloredForwardAmbientSource string

	//go:embed shaders/textured_forward_ambient.frag
	texturedForwardAmbientSource string

	//go:embed shaders/colored_forward_ambient_directional.frag
	coloredForwardAmbientDirectionalBody string

	//go:embed shaders/textured_forward_ambient_directional.frag
	texturedForwardAmbientDirectionalBody string
)

// Assembled fragment sources for the deferred light pass effects, the
// deferred geometry writers, and the lit forward variants.
var (
	ambientLightSource     = lightSharedSource + "\n" + deferredLightSharedSource + "\n" + ambientLightBody
	directionalLightSource = lightSharedSource + "\n" + deferredLightSharedSource + "\n" + directionalLightBody
	spotLightSource        = lightSharedSource + "\n" + deferredLightSharedSource + "\n" + spotLightBody
	pointLightSource       = lightSharedSource + "\n" + deferredLightSharedSource + "\n" + pointLightBody
	debugSource            = deferredLightSharedSource + "\n" + debugBody

	deferredColoredSource  = deferredGeometrySharedSource + "\n" + deferredColoredBody
	deferredTexturedSource = deferredGeometrySharedSource + "\n" + deferredTexturedBody

	coloredForwardAmbientDirectionalSource  = lightSharedSource + "\n" + coloredForwardAmbientDirectionalBody
	texturedForwardAmbientDirectionalSource = lightSharedSource + "\n" + texturedForwardAmbientDirectionalBody
)
