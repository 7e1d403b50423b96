package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyEdges(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !im.IsActive(ActionMoveForward) || !im.JustPressed(ActionMoveForward) {
		t.Fatal("W press should activate and just-press MoveForward")
	}

	im.PostUpdate()
	if !im.IsActive(ActionMoveForward) {
		t.Error("held key should stay active across frames")
	}
	if im.JustPressed(ActionMoveForward) {
		t.Error("JustPressed should clear after PostUpdate")
	}

	im.HandleKeyEvent(glfw.KeyW, glfw.Repeat)
	if im.JustPressed(ActionMoveForward) {
		t.Error("key repeat is not a new press")
	}

	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if im.IsActive(ActionMoveForward) || !im.JustReleased(ActionMoveForward) {
		t.Error("release should deactivate and just-release MoveForward")
	}
}

func TestAlternateBindings(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	if !im.IsActive(ActionMoveForward) {
		t.Error("arrow up should map to MoveForward")
	}
	im.HandleKeyEvent(glfw.KeyGraveAccent, glfw.Press)
	if !im.JustPressed(ActionToggleCursor) {
		t.Error("backquote should toggle the cursor")
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	im := NewInputManager()
	im.UnbindKey(glfw.KeyW)
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if im.IsActive(ActionMoveForward) {
		t.Error("unbound key should not activate an action")
	}
}

func TestMouseButtons(t *testing.T) {
	im := NewInputManager()
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	if !im.JustPressed(ActionBreakBlock) {
		t.Error("left click should just-press BreakBlock")
	}
	if im.IsActive(ActionPlaceBlock) {
		t.Error("right button was not pressed")
	}
}

func TestCursorDelta(t *testing.T) {
	im := NewInputManager()

	im.HandleCursorEvent(100, 100)
	if dx, dy := im.CursorDelta(); dx != 0 || dy != 0 {
		t.Errorf("first event should only set the reference, got (%v, %v)", dx, dy)
	}

	im.HandleCursorEvent(110, 95)
	im.HandleCursorEvent(115, 90)
	if dx, dy := im.CursorDelta(); dx != 15 || dy != -10 {
		t.Errorf("CursorDelta() = (%v, %v), want (15, -10)", dx, dy)
	}

	im.PostUpdate()
	if dx, dy := im.CursorDelta(); dx != 0 || dy != 0 {
		t.Errorf("delta should reset after PostUpdate, got (%v, %v)", dx, dy)
	}

	im.ResetCursor()
	im.HandleCursorEvent(500, 500)
	if dx, dy := im.CursorDelta(); dx != 0 || dy != 0 {
		t.Errorf("event after ResetCursor should not move, got (%v, %v)", dx, dy)
	}
}

func TestOutOfRangeAction(t *testing.T) {
	im := NewInputManager()
	if im.IsActive(ActionCount) || im.JustPressed(-1) || im.JustReleased(ActionCount + 3) {
		t.Error("out of range actions should report false")
	}
}
