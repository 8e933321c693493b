package common

import (
	"math"
)

// Plane represents a plane in 3D space using the equation: ax + by + cz + d = 0
// where (a, b, c) is the normal and d is the distance from origin.
type Plane struct {
	Normal   [3]float32
	Distance float32
}

// Frustum represents the six planes of a view frustum for culling.
// Planes are oriented so that positive half-space is inside the frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumPlane indices for clarity
const (
	FrustumLeft   = 0
	FrustumRight  = 1
	FrustumBottom = 2
	FrustumTop    = 3
	FrustumNear   = 4
	FrustumFar    = 5
)

// ExtractFrustumFromMatrix extracts frustum planes from a view-projection matrix.
// The matrix should be the combined Projection * View matrix.
// Uses the Gribb/Hartmann method for plane extraction.
//
// Parameters:
//   - viewProj: 16 float32 values representing the view-projection matrix (column-major)
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func ExtractFrustumFromMatrix(viewProj []float32) Frustum {
	var f Frustum

	// For a column-major matrix, row r is (m[r], m[4+r], m[8+r], m[12+r]).
	// Each clip plane is row 3 plus or minus one of rows 0..2.
	row := func(r int) (float32, float32, float32, float32) {
		return viewProj[r], viewProj[4+r], viewProj[8+r], viewProj[12+r]
	}
	w0, w1, w2, w3 := row(3)

	set := func(index, r int, sign float32) {
		a, b, c, d := row(r)
		f.Planes[index] = Plane{
			Normal:   [3]float32{w0 + sign*a, w1 + sign*b, w2 + sign*c},
			Distance: w3 + sign*d,
		}
	}

	set(FrustumLeft, 0, 1)
	set(FrustumRight, 0, -1)
	set(FrustumBottom, 1, 1)
	set(FrustumTop, 1, -1)
	set(FrustumNear, 2, 1)
	set(FrustumFar, 2, -1)

	for i := range f.Planes {
		f.normalizePlane(i)
	}

	return f
}

// normalizePlane normalizes a frustum plane so that the normal has unit length.
func (f *Frustum) normalizePlane(index int) {
	p := &f.Planes[index]
	length := float32(math.Sqrt(float64(
		p.Normal[0]*p.Normal[0] +
			p.Normal[1]*p.Normal[1] +
			p.Normal[2]*p.Normal[2],
	)))

	if length > 0 {
		invLen := 1.0 / length
		p.Normal[0] *= invLen
		p.Normal[1] *= invLen
		p.Normal[2] *= invLen
		p.Distance *= invLen
	}
}

// ContainsPoint reports whether a world-space point lies inside the frustum.
//
// Parameters:
//   - x, y, z: point coordinates in world space
//
// Returns:
//   - bool: true if the point is inside or on every plane
func (f *Frustum) ContainsPoint(x, y, z float32) bool {
	return f.ContainsSphere(x, y, z, 0)
}

// ContainsSphere reports whether a world-space sphere intersects the frustum.
// Spheres partially inside count as contained, which is the conservative
// answer a culling pass needs.
//
// Parameters:
//   - x, y, z: sphere center in world space
//   - radius: sphere radius
//
// Returns:
//   - bool: true if any part of the sphere may be visible
func (f *Frustum) ContainsSphere(x, y, z, radius float32) bool {
	for i := range f.Planes {
		p := &f.Planes[i]
		dist := p.Normal[0]*x + p.Normal[1]*y + p.Normal[2]*z + p.Distance
		if dist < -radius {
			return false
		}
	}
	return true
}
