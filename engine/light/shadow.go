package light

import (
	"math"

	"github.com/UmbraEngine/umbra-go/common"
	"github.com/UmbraEngine/umbra-go/engine/camera"
)

// ShadowMapResolution is the default square shadow map size in texels.
// WithShadowResolution overrides it per light.
const ShadowMapResolution = 1024

// shadowNear is the near plane distance for spot light shadow cameras.
const shadowNear = 0.1

// shadowBias remaps clip space coordinates in [-1, 1] to shadow map texture
// space in [0, 1]. Column-major.
var shadowBias = [16]float32{
	0.5, 0.0, 0.0, 0.0,
	0.0, 0.5, 0.0, 0.0,
	0.0, 0.0, 0.5, 0.0,
	0.5, 0.5, 0.5, 1.0,
}

// shadowMatrix builds the matrix the light pass shaders use to project a
// world-space position into shadow map texture space.
func shadowMatrix(cam camera.Camera) [16]float32 {
	vp := cam.ViewProjectionMatrix()
	var out [16]float32
	common.Mul4(out[:], shadowBias[:], vp[:])
	return out
}

// shadowUp picks an up vector for a shadow camera looking along direction.
// Any vector not parallel to the direction works; the world X axis seeds the
// cross product unless the direction runs close to it.
func shadowUp(dirX, dirY, dirZ float32) (x, y, z float32) {
	axisX, axisY, axisZ := float32(1), float32(0), float32(0)
	if absF32(dirX) > 0.9 {
		axisX, axisY, axisZ = 0, 1, 0
	}
	x, y, z = common.Cross3(axisX, axisY, axisZ, dirX, dirY, dirZ)
	return common.Normalize3(x, y, z)
}

func absF32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
