package world

import (
	"cmp"
	"slices"

	"github.com/deltasampler/block-world/internal/profiling"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// StreamSettings controls which chunks are kept around a reference point.
type StreamSettings struct {
	// Radius is the horizontal load radius in chunks (disc in XZ).
	Radius int
	// EvictMargin is added to Radius before chunks are dropped, so a camera
	// wobbling on a border does not reload the same chunks every tick.
	EvictMargin int
	// MinY and MaxY bound the chunk layers that are streamed.
	MinY, MaxY int
	// MaxLoadsPerTick caps how many chunks are generated per Update; 0 means no cap.
	MaxLoadsPerTick int
	VoxelSize       float32
}

// DefaultStreamSettings returns the stock streaming parameters.
func DefaultStreamSettings() StreamSettings {
	return StreamSettings{
		Radius:          4,
		EvictMargin:     2,
		MinY:            0,
		MaxY:            3,
		MaxLoadsPerTick: 8,
		VoxelSize:       1,
	}
}

// StreamResult reports what one Update changed.
type StreamResult struct {
	Center    ChunkCoord
	Generated []ChunkCoord
	Evicted   []ChunkCoord
	// Pending counts required chunks left for later ticks because of the budget.
	Pending int
}

// Streamer loads, generates and evicts chunks around a moving point. It runs
// on the goroutine that owns the World.
type Streamer struct {
	world    *World
	gen      Generator
	settings StreamSettings
	log      *zap.Logger
}

// NewStreamer creates a streamer over w that fills new chunks with gen.
func NewStreamer(w *World, gen Generator, settings StreamSettings, log *zap.Logger) *Streamer {
	if log == nil {
		log = zap.NewNop()
	}
	if settings.VoxelSize <= 0 {
		settings.VoxelSize = 1
	}
	return &Streamer{world: w, gen: gen, settings: settings, log: log}
}

// Settings returns the streamer's parameters.
func (s *Streamer) Settings() StreamSettings {
	return s.settings
}

// Required lists the chunk coordinates wanted around center, nearest first.
func (s *Streamer) Required(center ChunkCoord) []ChunkCoord {
	r := s.settings.Radius
	if r < 0 {
		return nil
	}
	layers := max(s.settings.MaxY-s.settings.MinY+1, 0)
	out := make([]ChunkCoord, 0, (2*r+1)*(2*r+1)*layers)
	for dz := -r; dz <= r; dz++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dz*dz > r*r {
				continue
			}
			for y := s.settings.MinY; y <= s.settings.MaxY; y++ {
				out = append(out, ChunkCoord{X: center.X + dx, Y: y, Z: center.Z + dz})
			}
		}
	}
	slices.SortStableFunc(out, func(a, b ChunkCoord) int {
		return cmp.Compare(a.DistSqXZ(center), b.DistSqXZ(center))
	})
	return out
}

// Update evicts far chunks and generates missing ones around pos.
func (s *Streamer) Update(pos mgl32.Vec3) StreamResult {
	defer profiling.Track("world.Streamer.Update")()

	center := WorldToChunk(pos, s.settings.VoxelSize)
	center.Y = 0
	res := StreamResult{Center: center}

	keep := s.settings.Radius + s.settings.EvictMargin
	for _, coord := range s.world.Coords() {
		if coord.DistSqXZ(center) > keep*keep || coord.Y < s.settings.MinY || coord.Y > s.settings.MaxY {
			s.world.Unload(coord)
			res.Evicted = append(res.Evicted, coord)
		}
	}

	for _, coord := range s.Required(center) {
		if c, ok := s.world.Get(coord); ok && c.Loaded {
			continue
		}
		if s.settings.MaxLoadsPerTick > 0 && len(res.Generated) >= s.settings.MaxLoadsPerTick {
			res.Pending++
			continue
		}
		Generate(s.gen, s.world.Load(coord))
		res.Generated = append(res.Generated, coord)
	}

	if len(res.Generated) > 0 || len(res.Evicted) > 0 {
		s.log.Debug("chunks streamed",
			zap.Stringer("center", center),
			zap.Int("generated", len(res.Generated)),
			zap.Int("evicted", len(res.Evicted)),
			zap.Int("pending", res.Pending),
			zap.Int("held", s.world.Len()))
	}
	return res
}
