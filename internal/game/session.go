package game

import (
	"time"

	"github.com/deltasampler/block-world/internal/config"
	"github.com/deltasampler/block-world/internal/meshing"
	"github.com/deltasampler/block-world/internal/profiling"
	"github.com/deltasampler/block-world/internal/world"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// MeshSink receives chunk meshes as they are built and dropped. The renderer
// implements it; tests use an in-memory fake.
type MeshSink interface {
	Upload(coord world.ChunkCoord, mesh *meshing.Mesh)
	Release(coord world.ChunkCoord)
}

// Options configure a Session.
type Options struct {
	Stream world.StreamSettings
	Atlas  meshing.Atlas
	// CullChunkSeams hides faces against solid voxels in neighbouring chunks
	// and remeshes neighbours when a chunk arrives or a border block changes.
	CullChunkSeams bool
	// SlowTick is the duration above which a tick logs its slowest sections.
	SlowTick time.Duration
}

// DefaultOptions returns the stock session options.
func DefaultOptions() Options {
	return Options{
		Stream:   world.DefaultStreamSettings(),
		Atlas:    meshing.DefaultAtlas(),
		SlowTick: 16 * time.Millisecond,
	}
}

// TickStats reports what one Tick did.
type TickStats struct {
	Center    world.ChunkCoord
	Generated int
	Evicted   int
	Remeshed  int
	Pending   int
	Duration  time.Duration
}

// Stats summarises the session's current state.
type Stats struct {
	Chunks int // chunks held by the world
	Meshed int // chunks with a non-empty mesh in the sink
	Quads  int // faces across all live meshes
}

// Session owns the world and keeps the sink's meshes in step with it while a
// reference point moves. It is not safe for concurrent use.
type Session struct {
	world    *world.World
	streamer *world.Streamer
	sink     MeshSink
	meshOpts meshing.Options
	opts     Options
	log      *zap.Logger

	// quads per chunk whose mesh is live in the sink
	meshed map[world.ChunkCoord]int
}

// NewSession creates a session that generates chunks with gen and publishes
// their meshes to sink.
func NewSession(gen world.Generator, sink MeshSink, opts Options, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	w := world.New()
	s := &Session{
		world:    w,
		streamer: world.NewStreamer(w, gen, opts.Stream, log.Named("streamer")),
		sink:     sink,
		opts:     opts,
		log:      log,
		meshed:   make(map[world.ChunkCoord]int),
	}
	s.meshOpts = meshing.Options{Atlas: opts.Atlas, VoxelSize: s.streamer.Settings().VoxelSize}
	if opts.CullChunkSeams {
		s.meshOpts.Occluder = w.IsSolid
	}
	return s
}

// NewSessionFromConfig builds the generator, atlas and streaming settings from cfg.
func NewSessionFromConfig(cfg *config.Config, sink MeshSink, log *zap.Logger) (*Session, error) {
	gen, err := cfg.NewGenerator()
	if err != nil {
		return nil, err
	}
	atlas, err := cfg.NewAtlas()
	if err != nil {
		return nil, err
	}
	opts := DefaultOptions()
	opts.Stream = cfg.StreamSettings()
	opts.Atlas = atlas
	opts.CullChunkSeams = cfg.Meshing.CullChunkSeams
	return NewSession(gen, sink, opts, log), nil
}

// World returns the session's world.
func (s *Session) World() *world.World {
	return s.world
}

// Tick streams chunks around pos, meshes the new ones and drops the evicted.
func (s *Session) Tick(pos mgl32.Vec3) TickStats {
	start := time.Now()
	defer profiling.Track("game.Session.Tick")()

	res := s.streamer.Update(pos)
	stats := TickStats{
		Center:    res.Center,
		Generated: len(res.Generated),
		Evicted:   len(res.Evicted),
		Pending:   res.Pending,
	}

	for _, coord := range res.Evicted {
		s.release(coord)
	}

	dirty := make([]world.ChunkCoord, 0, len(res.Generated))
	seen := make(map[world.ChunkCoord]bool, len(res.Generated))
	mark := func(c world.ChunkCoord) {
		if !seen[c] {
			seen[c] = true
			dirty = append(dirty, c)
		}
	}
	for _, coord := range res.Generated {
		mark(coord)
	}
	if s.opts.CullChunkSeams {
		// Arriving and leaving neighbours change which border faces are hidden.
		// Fully occluded chunks hold no mesh but still need a rebuild.
		changed := append(append([]world.ChunkCoord(nil), res.Generated...), res.Evicted...)
		for _, coord := range changed {
			for _, n := range neighbours(coord) {
				if c, ok := s.world.Get(n); ok && c.Loaded {
					mark(n)
				}
			}
		}
	}
	for _, coord := range dirty {
		if s.remesh(coord) {
			stats.Remeshed++
		}
	}

	stats.Duration = time.Since(start)
	if s.opts.SlowTick > 0 && stats.Duration > s.opts.SlowTick {
		s.log.Warn("slow tick",
			zap.Duration("took", stats.Duration),
			zap.Int("generated", stats.Generated),
			zap.String("top", profiling.TopN(5)))
	}
	return stats
}

// SetBlock edits one voxel and remeshes what it touches. It reports false when
// the voxel's chunk is not held.
func (s *Session) SetBlock(vx, vy, vz int, b world.Block) bool {
	c, ok := s.world.SetBlock(vx, vy, vz, b)
	if !ok {
		return false
	}
	s.remesh(c.Coord)

	if s.opts.CullChunkSeams {
		_, x, y, z := world.VoxelToChunk(vx, vy, vz)
		for _, d := range borderSides(x, y, z) {
			n := c.Coord.Add(d[0], d[1], d[2])
			if nc, ok := s.world.Get(n); ok && nc.Loaded {
				s.remesh(n)
			}
		}
	}
	s.log.Debug("block set",
		zap.Int("x", vx), zap.Int("y", vy), zap.Int("z", vz),
		zap.Uint16("block", uint16(b)))
	return true
}

// Remesh rebuilds the mesh of coord if its chunk is loaded.
func (s *Session) Remesh(coord world.ChunkCoord) bool {
	return s.remesh(coord)
}

func (s *Session) remesh(coord world.ChunkCoord) bool {
	c, ok := s.world.Get(coord)
	if !ok || !c.Loaded {
		return false
	}
	mesh := meshing.BuildChunkMesh(c, s.meshOpts)
	if mesh.Empty() {
		s.release(coord)
		return true
	}
	s.sink.Upload(coord, mesh)
	s.meshed[coord] = mesh.Quads()
	return true
}

func (s *Session) release(coord world.ChunkCoord) {
	if _, ok := s.meshed[coord]; !ok {
		return
	}
	s.sink.Release(coord)
	delete(s.meshed, coord)
}

// Stats reports the session's current totals.
func (s *Session) Stats() Stats {
	st := Stats{Chunks: s.world.Len(), Meshed: len(s.meshed)}
	for _, q := range s.meshed {
		st.Quads += q
	}
	return st
}

// Close releases every live mesh from the sink.
func (s *Session) Close() {
	for coord := range s.meshed {
		s.sink.Release(coord)
	}
	clear(s.meshed)
}

var sides = [6][3]int{{-1, 0, 0}, {1, 0, 0}, {0, -1, 0}, {0, 1, 0}, {0, 0, -1}, {0, 0, 1}}

func neighbours(c world.ChunkCoord) [6]world.ChunkCoord {
	var out [6]world.ChunkCoord
	for i, d := range sides {
		out[i] = c.Add(d[0], d[1], d[2])
	}
	return out
}

// borderSides lists the directions in which local (x, y, z) touches the chunk border.
func borderSides(x, y, z int) [][3]int {
	var out [][3]int
	for i, v := range [3]int{x, y, z} {
		if v == 0 {
			out = append(out, sides[2*i])
		}
		if v == world.ChunkSize-1 {
			out = append(out, sides[2*i+1])
		}
	}
	return out
}
