package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// CameraUniformBlockSource is the canonical GLSL definition of the Camera
// uniform block. Shader generators splice this text into any stage that
// reads camera state; GPUCameraUniform matches its layout exactly
// (208 bytes, std140 aligned).
//
//go:embed assets/camera_uniform.glsl
var CameraUniformBlockSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform
// block. Matches the GLSL Camera block layout exactly (see
// CameraUniformBlockSource). Size: 208 bytes (std140 aligned).
type GPUCameraUniform struct {
	ViewProjection [16]float32 // offset   0: combined view-projection matrix (mat4)
	View           [16]float32 // offset  64: view matrix (mat4)
	Projection     [16]float32 // offset 128: projection matrix (mat4)
	CameraPosition [3]float32  // offset 192: world-space camera position (vec3)
	_pad           float32     // offset 204: padding to 208 bytes
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (208)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable
// for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProjection[i]))
	}
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.View[i]))
	}
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[128+i*4:], math.Float32bits(g.Projection[i]))
	}
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(buf[192+i*4:], math.Float32bits(g.CameraPosition[i]))
	}
	binary.LittleEndian.PutUint32(buf[204:], 0) // _pad
	return buf
}
