package camera

import (
	"math"
	"sync"

	"github.com/UmbraEngine/umbra-go/common"
	"github.com/UmbraEngine/umbra-go/engine/graphics"
)

// projectionKind selects how the projection matrix is built.
type projectionKind int

const (
	projectionPerspective projectionKind = iota
	projectionOrthographic
)

type cameraImpl struct {
	mu *sync.Mutex

	position [3]float32
	target   [3]float32
	up       [3]float32

	kind        projectionKind
	fov         float32
	aspect      float32
	orthoWidth  float32
	orthoHeight float32
	near        float32
	far         float32

	viewMatrix            [16]float32
	projectionMatrix      [16]float32
	viewProjectionMatrix  [16]float32
	viewProjectionInverse [16]float32

	buffer graphics.UniformBuffer
	dirty  bool
}

// Camera defines the interface for the scene camera. The camera holds view
// and projection settings and recomputes its matrices whenever one of them
// changes; renderers read the matrices and the shared uniform block through
// the accessors below. Cameras are perspective by default; WithOrthographic
// switches to an orthographic projection, which shadow passes for directional
// lights rely on.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Target returns the world-space point the camera looks at.
	//
	// Returns:
	//   - x, y, z: target components
	Target() (x, y, z float32)

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - x, y, z: up vector components
	Up() (x, y, z float32)

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the combined view-projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjectionMatrix() [16]float32

	// ViewProjectionInverse returns the inverse of the combined view-projection
	// matrix as 16 floats (column-major). Screen-space passes use it to
	// reconstruct world positions from depth.
	//
	// Returns:
	//   - [16]float32: the inverse view-projection matrix
	ViewProjectionInverse() [16]float32

	// Frustum extracts the camera's view frustum for visibility culling.
	//
	// Returns:
	//   - common.Frustum: the six-plane frustum in world space
	Frustum() common.Frustum

	// UniformBuffer returns the camera's uniform block buffer, creating it on
	// first use and refreshing its contents whenever the matrices changed since
	// the last call. The layout matches CameraUniformBlockSource.
	//
	// Parameters:
	//   - ctx: graphics context that owns the buffer
	//
	// Returns:
	//   - graphics.UniformBuffer: the camera block, ready to bind
	//   - error: buffer allocation or upload failure
	UniformBuffer(ctx graphics.Context) (graphics.UniformBuffer, error)

	// SetPosition sets the camera's world-space position and recomputes matrices.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetTarget sets the look-at target and recomputes matrices.
	//
	// Parameters:
	//   - x, y, z: target components
	SetTarget(x, y, z float32)

	// SetUp sets the camera's up vector and recomputes matrices.
	//
	// Parameters:
	//   - x, y, z: up vector components
	SetUp(x, y, z float32)

	// SetFov sets the vertical field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNearFar sets both clipping plane distances and recomputes matrices.
	//
	// Parameters:
	//   - near: near plane distance
	//   - far: far plane distance
	SetNearFar(near, far float32)

	// Destroy releases the camera's uniform buffer. Safe to call more than
	// once; accessors remain usable afterwards but UniformBuffer will allocate
	// a fresh buffer.
	Destroy()
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings: placed at
// (0, 0, 5) looking at the origin with a 45 degree field of view.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:       &sync.Mutex{},
		position: [3]float32{0, 0, 5},
		target:   [3]float32{0, 0, 0},
		up:       [3]float32{0, 1, 0},
		fov:      45.0 * (math.Pi / 180.0), // radians
		aspect:   1.0,
		near:     0.1,
		far:      100.0,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position[0], c.position[1], c.position[2]
}

func (c *cameraImpl) Target() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target[0], c.target[1], c.target[2]
}

func (c *cameraImpl) Up() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up[0], c.up[1], c.up[2]
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) ViewProjectionInverse() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionInverse
}

func (c *cameraImpl) Frustum() common.Frustum {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.ExtractFrustumFromMatrix(c.viewProjectionMatrix[:])
}

func (c *cameraImpl) UniformBuffer(ctx graphics.Context) (graphics.UniformBuffer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.buffer == nil {
		buffer, err := ctx.NewUniformBuffer()
		if err != nil {
			return nil, err
		}
		c.buffer = buffer
		c.dirty = true
	}
	if c.dirty {
		uniform := GPUCameraUniform{
			ViewProjection: c.viewProjectionMatrix,
			View:           c.viewMatrix,
			Projection:     c.projectionMatrix,
			CameraPosition: c.position,
		}
		if err := c.buffer.Update(uniform.Marshal()); err != nil {
			return nil, err
		}
		c.dirty = false
	}
	return c.buffer, nil
}

func (c *cameraImpl) SetPosition(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = [3]float32{x, y, z}
	c.updateMatrices()
}

func (c *cameraImpl) SetTarget(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = [3]float32{x, y, z}
	c.updateMatrices()
}

func (c *cameraImpl) SetUp(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = [3]float32{x, y, z}
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNearFar(near, far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.buffer != nil {
		c.buffer.Destroy()
		c.buffer = nil
	}
}

// updateMatrices recalculates the view, projection, view-projection, and
// inverse view-projection matrices and marks the uniform block stale.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	common.LookAt(c.viewMatrix[:],
		c.position[0], c.position[1], c.position[2],
		c.target[0], c.target[1], c.target[2],
		c.up[0], c.up[1], c.up[2],
	)

	switch c.kind {
	case projectionOrthographic:
		common.Orthographic(c.projectionMatrix[:],
			-c.orthoWidth/2, c.orthoWidth/2,
			-c.orthoHeight/2, c.orthoHeight/2,
			c.near, c.far,
		)
	default:
		common.Perspective(c.projectionMatrix[:],
			c.fov, c.aspect, c.near, c.far,
		)
	}

	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
	common.Invert4(c.viewProjectionInverse[:], c.viewProjectionMatrix[:])
	c.dirty = true
}
