package main

import (
	"fmt"
	"time"

	"github.com/deltasampler/block-world/internal/camera"
	"github.com/deltasampler/block-world/internal/config"
	"github.com/deltasampler/block-world/internal/game"
	"github.com/deltasampler/block-world/internal/graphics"
	"github.com/deltasampler/block-world/internal/input"
	"github.com/deltasampler/block-world/internal/profiling"
	"github.com/deltasampler/block-world/internal/world"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// slowFrame is the frame time above which the profiling breakdown is logged.
const slowFrame = 33 * time.Millisecond

// App manages the main loop state
type App struct {
	window     *glfw.Window
	renderer   *graphics.ChunkRenderer
	session    *game.Session
	camera     *camera.Camera
	input      *input.InputManager
	fpsLimiter *game.FPSLimiter
	log        *zap.Logger

	voxelSize      float32
	width, height  int
	cursorCaptured bool
	wireframe      bool
	placeBlock     world.Block

	// Timing
	frames           int
	lastFPSCheckTime time.Time
	lastTime         time.Time
}

// runWindowed opens the window and runs the fly camera loop until it closes.
func runWindowed(cfg *config.Config, log *zap.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Graphics)
	if err != nil {
		return err
	}
	defer window.Destroy()

	atlas, err := cfg.NewAtlas()
	if err != nil {
		return err
	}
	img, err := loadAtlasImage(cfg.Atlas, atlas)
	if err != nil {
		return err
	}
	atlasTexture := graphics.UploadAtlas(img)
	defer graphics.DeleteTexture(atlasTexture)

	renderer, err := graphics.NewChunkRenderer(atlasTexture, cfg.World.VoxelSize)
	if err != nil {
		return fmt.Errorf("chunk renderer: %w", err)
	}
	defer renderer.Delete()

	session, err := game.NewSessionFromConfig(cfg, renderer, log.Named("session"))
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	defer session.Close()

	cam := camera.New(spawnPosition(cfg), cfg.Graphics.FOV)
	cam.Tilt(-30)

	im := input.NewInputManager()
	im.Attach(window)

	limit := cfg.Graphics.FPSLimit
	if cfg.Graphics.VSync {
		limit = 0
	}

	app := &App{
		window:           window,
		renderer:         renderer,
		session:          session,
		camera:           cam,
		input:            im,
		fpsLimiter:       game.NewFPSLimiter(limit),
		log:              log,
		voxelSize:        cfg.World.VoxelSize,
		cursorCaptured:   true,
		placeBlock:       world.BlockPlanks,
		lastFPSCheckTime: time.Now(),
		lastTime:         time.Now(),
	}
	app.width, app.height = window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(app.width), int32(app.height))
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		app.width, app.height = width, height
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	app.Run()
	return nil
}

// Run ticks until the window is asked to close.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	// Poll events at start
	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	a.handleInputActions(dt)

	stats := a.session.Tick(a.camera.Position)

	drawn := a.renderFrame()

	// Present
	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	// Clear edge flags at end of frame
	a.input.PostUpdate()

	a.updateProfiling(now, stats, drawn)

	a.fpsLimiter.Wait()
}

func (a *App) renderFrame() int {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if a.width == 0 || a.height == 0 {
		// minimised
		return 0
	}
	aspect := float32(a.width) / float32(a.height)
	return a.renderer.Draw(a.camera.Projection(aspect), a.camera.View(), mgl32.Ident4())
}

func (a *App) updateProfiling(frameStart time.Time, stats game.TickStats, drawn int) {
	a.frames++

	if total := time.Since(frameStart); total > slowFrame {
		a.log.Debug("slow frame",
			zap.Duration("took", total),
			zap.Int("generated", stats.Generated),
			zap.Int("remeshed", stats.Remeshed),
			zap.String("top", profiling.TopN(5)))
	}

	if time.Since(a.lastFPSCheckTime) >= time.Second {
		st := a.session.Stats()
		a.log.Info("frame stats",
			zap.Int("fps", a.frames),
			zap.Int("chunks", st.Chunks),
			zap.Int("meshed", st.Meshed),
			zap.Int("drawn", drawn),
			zap.Int("quads", st.Quads),
			zap.Stringer("center", stats.Center))
		a.frames = 0
		a.lastFPSCheckTime = time.Now()
	}
}
