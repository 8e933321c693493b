package light

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUDirectionalLightUniform is the GPU-aligned representation of the
// DirectionalLightUniform block declared by the light pass shaders. Size: 96
// bytes (std140 aligned).
type GPUDirectionalLightUniform struct {
	Color         [3]float32  // offset  0: light color (vec3)
	Intensity     float32     // offset 12: color scale
	Direction     [3]float32  // offset 16: normalized world-space direction (vec3)
	ShadowEnabled float32     // offset 28: 1 when the shadow map and ShadowMVP are valid
	ShadowMVP     [16]float32 // offset 32: world space to shadow map texture space (mat4)
}

// Size returns the size of the GPUDirectionalLightUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (96)
func (g *GPUDirectionalLightUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUDirectionalLightUniform struct into a byte
// buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUDirectionalLightUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Color[i]))
	}
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(g.Intensity))
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.Direction[i]))
	}
	binary.LittleEndian.PutUint32(buf[28:], math.Float32bits(g.ShadowEnabled))
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[32+i*4:], math.Float32bits(g.ShadowMVP[i]))
	}
	return buf
}

// GPUSpotLightUniform is the GPU-aligned representation of the
// SpotLightUniform block declared by the light pass shaders. Size: 128 bytes
// (std140 aligned).
type GPUSpotLightUniform struct {
	Color                  [3]float32  // offset   0: light color (vec3)
	Intensity              float32     // offset  12: color scale
	Position               [3]float32  // offset  16: world-space position (vec3)
	AttenuationConstant    float32     // offset  28: distance-independent falloff term
	Direction              [3]float32  // offset  32: normalized cone axis (vec3)
	AttenuationLinear      float32     // offset  44: falloff term proportional to distance
	AttenuationExponential float32     // offset  48: falloff term proportional to squared distance
	Cutoff                 float32     // offset  52: cone half-angle in radians
	ShadowEnabled          float32     // offset  56: 1 when the shadow map and ShadowMVP are valid
	_pad                   float32     // offset  60: padding to align ShadowMVP
	ShadowMVP              [16]float32 // offset  64: world space to shadow map texture space (mat4)
}

// Size returns the size of the GPUSpotLightUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (128)
func (g *GPUSpotLightUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUSpotLightUniform struct into a byte buffer
// suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUSpotLightUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Color[i]))
	}
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(g.Intensity))
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.Position[i]))
	}
	binary.LittleEndian.PutUint32(buf[28:], math.Float32bits(g.AttenuationConstant))
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(buf[32+i*4:], math.Float32bits(g.Direction[i]))
	}
	binary.LittleEndian.PutUint32(buf[44:], math.Float32bits(g.AttenuationLinear))
	binary.LittleEndian.PutUint32(buf[48:], math.Float32bits(g.AttenuationExponential))
	binary.LittleEndian.PutUint32(buf[52:], math.Float32bits(g.Cutoff))
	binary.LittleEndian.PutUint32(buf[56:], math.Float32bits(g.ShadowEnabled))
	binary.LittleEndian.PutUint32(buf[60:], 0) // _pad
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.ShadowMVP[i]))
	}
	return buf
}

// GPUPointLightUniform is the GPU-aligned representation of the
// PointLightUniform block declared by the light pass shaders. Size: 48 bytes
// (std140 aligned).
type GPUPointLightUniform struct {
	Color                  [3]float32 // offset  0: light color (vec3)
	Intensity              float32    // offset 12: color scale
	Position               [3]float32 // offset 16: world-space position (vec3)
	AttenuationConstant    float32    // offset 28: distance-independent falloff term
	AttenuationLinear      float32    // offset 32: falloff term proportional to distance
	AttenuationExponential float32    // offset 36: falloff term proportional to squared distance
	_pad                   [2]float32 // offset 40: padding to 48 bytes
}

// Size returns the size of the GPUPointLightUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (48)
func (g *GPUPointLightUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUPointLightUniform struct into a byte buffer
// suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUPointLightUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Color[i]))
	}
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(g.Intensity))
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.Position[i]))
	}
	binary.LittleEndian.PutUint32(buf[28:], math.Float32bits(g.AttenuationConstant))
	binary.LittleEndian.PutUint32(buf[32:], math.Float32bits(g.AttenuationLinear))
	binary.LittleEndian.PutUint32(buf[36:], math.Float32bits(g.AttenuationExponential))
	binary.LittleEndian.PutUint32(buf[40:], 0) // _pad
	binary.LittleEndian.PutUint32(buf[44:], 0)
	return buf
}
