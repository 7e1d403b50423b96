package main

import (
	"fmt"
	"image"

	"github.com/deltasampler/block-world/internal/atlasimg"
	"github.com/deltasampler/block-world/internal/config"
	"github.com/deltasampler/block-world/internal/meshing"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow(g config.GraphicsConfig) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(g.Width, g.Height, "block-world", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	// Without vsync the FPS limiter paces frames.
	if g.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.ClearColor(0.53, 0.81, 0.92, 1.0)

	return window, nil
}

// loadAtlasImage reads the configured atlas PNG, or draws placeholder cells
// when none is set.
func loadAtlasImage(cfg config.AtlasConfig, atlas meshing.Atlas) (*image.RGBA, error) {
	if cfg.Image == "" {
		return atlasimg.Placeholder(atlas), nil
	}
	img, err := atlasimg.Load(cfg.Image, atlas)
	if err != nil {
		return nil, fmt.Errorf("atlas image: %w", err)
	}
	return img, nil
}
