package main

import (
	"github.com/deltasampler/block-world/internal/input"
	"github.com/deltasampler/block-world/internal/physics"
	"github.com/deltasampler/block-world/internal/world"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

const (
	flySpeed         = 12.0 // voxels per second
	sprintMultiplier = 4.0
	mouseSensitivity = 0.1 // degrees per pixel
)

// handleInputActions applies this frame's input to the camera and the world.
func (a *App) handleInputActions(dt float64) {
	im := a.input

	if im.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionToggleCursor) {
		a.setCursorCaptured(!a.cursorCaptured)
	}
	if im.JustPressed(input.ActionToggleWireframe) {
		a.wireframe = !a.wireframe
		mode := uint32(gl.FILL)
		if a.wireframe {
			mode = gl.LINE
		}
		gl.PolygonMode(gl.FRONT_AND_BACK, mode)
	}

	speed := float32(flySpeed*dt) * a.voxelSize
	if im.IsActive(input.ActionSprint) {
		speed *= sprintMultiplier
	}
	cam := a.camera
	if im.IsActive(input.ActionMoveForward) {
		cam.MoveForward(speed)
	}
	if im.IsActive(input.ActionMoveBackward) {
		cam.MoveForward(-speed)
	}
	if im.IsActive(input.ActionMoveRight) {
		cam.MoveRight(speed)
	}
	if im.IsActive(input.ActionMoveLeft) {
		cam.MoveRight(-speed)
	}
	if im.IsActive(input.ActionMoveUp) {
		cam.MoveUp(speed)
	}
	if im.IsActive(input.ActionMoveDown) {
		cam.MoveUp(-speed)
	}

	if !a.cursorCaptured {
		return
	}
	dx, dy := im.CursorDelta()
	cam.Pan(float32(dx) * mouseSensitivity)
	cam.Tilt(float32(-dy) * mouseSensitivity)

	if im.JustPressed(input.ActionBreakBlock) {
		a.editBlock(false)
	}
	if im.JustPressed(input.ActionPlaceBlock) {
		a.editBlock(true)
	}
}

func (a *App) setCursorCaptured(captured bool) {
	a.cursorCaptured = captured
	if captured {
		a.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		a.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
	a.input.ResetCursor()
}

// editBlock breaks the voxel under the crosshair, or places a.placeBlock in
// front of it.
func (a *App) editBlock(place bool) {
	hit := physics.Raycast(a.camera.Position, a.camera.Front(),
		physics.MinReachDistance, physics.MaxReachDistance, a.voxelSize, a.session.World())
	if !hit.Hit {
		return
	}

	v, b := hit.HitPosition, world.BlockAir
	if place {
		v, b = hit.AdjacentPosition, a.placeBlock
	}
	if !a.session.SetBlock(v[0], v[1], v[2], b) {
		a.log.Debug("edit outside loaded chunks", zap.Ints("voxel", v[:]))
	}
}
