package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type plane struct {
	a, b, c, d float32
}

// Frustum is the six clip planes of a projection*view matrix, in the order
// left, right, bottom, top, near, far. Normals point inwards.
type Frustum [6]plane

// NewFrustum extracts the planes from a combined projection*view matrix.
func NewFrustum(clip mgl32.Mat4) Frustum {
	// Matrix is in column-major order in mgl32
	m00, m01, m02, m03 := clip[0], clip[4], clip[8], clip[12]
	m10, m11, m12, m13 := clip[1], clip[5], clip[9], clip[13]
	m20, m21, m22, m23 := clip[2], clip[6], clip[10], clip[14]
	m30, m31, m32, m33 := clip[3], clip[7], clip[11], clip[15]

	return Frustum{
		normalizePlane(plane{m30 + m00, m31 + m01, m32 + m02, m33 + m03}), // left
		normalizePlane(plane{m30 - m00, m31 - m01, m32 - m02, m33 - m03}), // right
		normalizePlane(plane{m30 + m10, m31 + m11, m32 + m12, m33 + m13}), // bottom
		normalizePlane(plane{m30 - m10, m31 - m11, m32 - m12, m33 - m13}), // top
		normalizePlane(plane{m30 + m20, m31 + m21, m32 + m22, m33 + m23}), // near
		normalizePlane(plane{m30 - m20, m31 - m21, m32 - m22, m33 - m23}), // far
	}
}

func normalizePlane(p plane) plane {
	l := float32(math.Sqrt(float64(p.a*p.a + p.b*p.b + p.c*p.c)))
	if l == 0 {
		return p
	}
	return plane{p.a / l, p.b / l, p.c / l, p.d / l}
}

// IntersectsAABB reports whether the box may be visible. It is conservative:
// boxes near a frustum corner can pass without being on screen.
func (f *Frustum) IntersectsAABB(min, max mgl32.Vec3) bool {
	for _, p := range f {
		// Select the positive vertex for this plane normal
		px := max.X()
		if p.a < 0 {
			px = min.X()
		}
		py := max.Y()
		if p.b < 0 {
			py = min.Y()
		}
		pz := max.Z()
		if p.c < 0 {
			pz = min.Z()
		}
		// If positive vertex is outside, AABB is outside
		if p.a*px+p.b*py+p.c*pz+p.d < 0 {
			return false
		}
	}
	return true
}
