// Package camera is a free-flying perspective camera.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch keeps the camera from flipping over the poles, in degrees.
const MaxPitch = 89.0

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera handles the view and projection matrices.
type Camera struct {
	Position mgl32.Vec3
	// Yaw and Pitch are in degrees. Yaw 0 looks down +X, -90 looks down -Z.
	Yaw   float32
	Pitch float32

	FOV       float32 // vertical, degrees
	NearPlane float32
	FarPlane  float32
}

// New places a camera at pos looking down -Z.
func New(pos mgl32.Vec3, fov float32) *Camera {
	return &Camera{
		Position:  pos,
		Yaw:       -90,
		FOV:       fov,
		NearPlane: 0.1,
		FarPlane:  1000.0,
	}
}

// Front is the unit view direction.
func (c *Camera) Front() mgl32.Vec3 {
	y := float64(mgl32.DegToRad(c.Yaw))
	p := float64(mgl32.DegToRad(c.Pitch))
	fx := float32(math.Cos(y) * math.Cos(p))
	fy := float32(math.Sin(p))
	fz := float32(math.Sin(y) * math.Cos(p))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

// Right is the unit vector to the camera's right, parallel to the ground.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Front().Cross(worldUp).Normalize()
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), worldUp)
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.NearPlane, c.FarPlane)
}

// MoveForward moves along the view direction flattened onto the ground plane,
// so looking down does not slow horizontal flight.
func (c *Camera) MoveForward(d float32) {
	f := c.Front()
	flat := mgl32.Vec3{f.X(), 0, f.Z()}
	if flat.Len() == 0 {
		return
	}
	c.Position = c.Position.Add(flat.Normalize().Mul(d))
}

// MoveRight strafes sideways.
func (c *Camera) MoveRight(d float32) {
	c.Position = c.Position.Add(c.Right().Mul(d))
}

// MoveUp moves along world Y.
func (c *Camera) MoveUp(d float32) {
	c.Position = c.Position.Add(worldUp.Mul(d))
}

// Pan turns the camera around world Y by deg degrees.
func (c *Camera) Pan(deg float32) {
	c.Yaw = float32(math.Mod(float64(c.Yaw+deg), 360))
}

// Tilt pitches the camera by deg degrees, clamped to ±MaxPitch.
func (c *Camera) Tilt(deg float32) {
	c.Pitch = mgl32.Clamp(c.Pitch+deg, -MaxPitch, MaxPitch)
}
