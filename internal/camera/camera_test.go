package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func TestDefaultLooksDownNegativeZ(t *testing.T) {
	c := New(mgl32.Vec3{}, 60)
	if f := c.Front(); !f.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, eps) {
		t.Errorf("Front() = %v, want (0,0,-1)", f)
	}
	if r := c.Right(); !r.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, eps) {
		t.Errorf("Right() = %v, want (1,0,0)", r)
	}
}

func TestViewMapsFrontToNegativeZ(t *testing.T) {
	c := New(mgl32.Vec3{3, 4, 5}, 60)
	c.Pan(30)
	c.Tilt(-20)

	target := c.Position.Add(c.Front().Mul(10))
	got := c.View().Mul4x1(target.Vec4(1)).Vec3()
	if !got.ApproxEqualThreshold(mgl32.Vec3{0, 0, -10}, 1e-4) {
		t.Errorf("point ahead of the camera maps to %v, want (0,0,-10)", got)
	}

	eye := c.View().Mul4x1(c.Position.Vec4(1)).Vec3()
	if !eye.ApproxEqualThreshold(mgl32.Vec3{}, 1e-4) {
		t.Errorf("camera position maps to %v, want origin", eye)
	}
}

func TestProjectionMatchesPerspective(t *testing.T) {
	c := New(mgl32.Vec3{}, 70)
	want := mgl32.Perspective(mgl32.DegToRad(70), 1.5, c.NearPlane, c.FarPlane)
	if got := c.Projection(1.5); !got.ApproxEqual(want) {
		t.Errorf("Projection(1.5) = %v, want %v", got, want)
	}
}

func TestMovement(t *testing.T) {
	c := New(mgl32.Vec3{}, 60)
	c.Tilt(45)

	c.MoveForward(2)
	if !c.Position.ApproxEqualThreshold(mgl32.Vec3{0, 0, -2}, eps) {
		t.Errorf("after MoveForward(2) position = %v, want (0,0,-2)", c.Position)
	}
	c.MoveRight(1)
	if !c.Position.ApproxEqualThreshold(mgl32.Vec3{1, 0, -2}, eps) {
		t.Errorf("after MoveRight(1) position = %v, want (1,0,-2)", c.Position)
	}
	c.MoveUp(-3)
	if !c.Position.ApproxEqualThreshold(mgl32.Vec3{1, -3, -2}, eps) {
		t.Errorf("after MoveUp(-3) position = %v, want (1,-3,-2)", c.Position)
	}
}

func TestTiltClamps(t *testing.T) {
	c := New(mgl32.Vec3{}, 60)
	c.Tilt(200)
	if c.Pitch != MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, MaxPitch)
	}
	c.Tilt(-500)
	if c.Pitch != -MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, -MaxPitch)
	}
}

func TestPanWraps(t *testing.T) {
	c := New(mgl32.Vec3{}, 60)
	for i := 0; i < 10; i++ {
		c.Pan(90)
	}
	if c.Yaw <= -360 || c.Yaw >= 360 {
		t.Errorf("Yaw = %v, want within (-360, 360)", c.Yaw)
	}
	// 10 quarter turns from -90 is a half turn: now facing +Z.
	if f := c.Front(); !f.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, eps) {
		t.Errorf("Front() = %v, want (0,0,1)", f)
	}
}
