package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testFrustum() Frustum {
	proj := mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	return NewFrustum(proj.Mul4(view))
}

func box(center mgl32.Vec3, half float32) (mgl32.Vec3, mgl32.Vec3) {
	h := mgl32.Vec3{half, half, half}
	return center.Sub(h), center.Add(h)
}

func TestFrustumAABB(t *testing.T) {
	f := testFrustum()
	tests := []struct {
		name   string
		center mgl32.Vec3
		want   bool
	}{
		{"ahead", mgl32.Vec3{0, 0, -10}, true},
		{"behind", mgl32.Vec3{0, 0, 10}, false},
		{"far left", mgl32.Vec3{-50, 0, -10}, false},
		{"far above", mgl32.Vec3{0, 50, -10}, false},
		{"beyond far plane", mgl32.Vec3{0, 0, -200}, false},
		{"straddles near plane", mgl32.Vec3{0, 0, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := box(tt.center, 1)
			if got := f.IntersectsAABB(lo, hi); got != tt.want {
				t.Errorf("IntersectsAABB(%v) = %v, want %v", tt.center, got, tt.want)
			}
		})
	}
}

func TestFrustumPlanesNormalized(t *testing.T) {
	f := testFrustum()
	for i, p := range f {
		l := p.a*p.a + p.b*p.b + p.c*p.c
		if l < 0.999 || l > 1.001 {
			t.Errorf("plane %d normal length^2 = %v, want 1", i, l)
		}
	}
}
