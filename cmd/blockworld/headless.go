package main

import (
	"fmt"
	"time"

	"github.com/deltasampler/block-world/internal/config"
	"github.com/deltasampler/block-world/internal/game"
	"github.com/deltasampler/block-world/internal/meshing"
	"github.com/deltasampler/block-world/internal/profiling"
	"github.com/deltasampler/block-world/internal/world"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// countingSink stands in for the GPU when there is no window.
type countingSink struct {
	uploads  int
	releases int
	vertices int
}

func (s *countingSink) Upload(_ world.ChunkCoord, mesh *meshing.Mesh) {
	s.uploads++
	s.vertices += mesh.VertexCount()
}

func (s *countingSink) Release(world.ChunkCoord) {
	s.releases++
}

// spawnPosition puts the camera over the origin at the top of the streamed layers.
func spawnPosition(cfg *config.Config) mgl32.Vec3 {
	y := float32(cfg.World.MaxChunkY*world.ChunkSize) * cfg.World.VoxelSize
	return mgl32.Vec3{0, y, 0}
}

// runHeadless flies along +X for the configured number of ticks and logs what
// was streamed and meshed.
func runHeadless(cfg *config.Config, log *zap.Logger) error {
	sink := &countingSink{}
	session, err := game.NewSessionFromConfig(cfg, sink, log.Named("session"))
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	defer session.Close()

	pos := spawnPosition(cfg)
	step := world.ChunkScale(cfg.World.VoxelSize) / 4

	start := time.Now()
	var slowest time.Duration
	for i := range cfg.Graphics.Ticks {
		profiling.ResetFrame()
		stats := session.Tick(pos)
		if stats.Duration > slowest {
			slowest = stats.Duration
		}
		log.Debug("tick",
			zap.Int("tick", i),
			zap.Stringer("center", stats.Center),
			zap.Int("generated", stats.Generated),
			zap.Int("evicted", stats.Evicted),
			zap.Int("remeshed", stats.Remeshed),
			zap.Int("pending", stats.Pending),
			zap.String("top", profiling.TopN(3)))
		pos[0] += step
	}

	st := session.Stats()
	log.Info("headless run finished",
		zap.Int("ticks", cfg.Graphics.Ticks),
		zap.Duration("took", time.Since(start)),
		zap.Duration("slowest_tick", slowest),
		zap.Int("chunks", st.Chunks),
		zap.Int("meshed", st.Meshed),
		zap.Int("quads", st.Quads),
		zap.Int("uploads", sink.uploads),
		zap.Int("releases", sink.releases),
		zap.Int("vertices_uploaded", sink.vertices))
	return nil
}
