package config

import (
	"errors"
	"fmt"

	"github.com/deltasampler/block-world/internal/world"
)

// Radius bounds, in chunks.
const (
	MinRadius = 1
	MaxRadius = 32
)

// Validate reports every invalid setting in one joined error.
func (c *Config) Validate() error {
	var errs []error

	if c.World.Radius < MinRadius || c.World.Radius > MaxRadius {
		errs = append(errs, fmt.Errorf("world.radius %d out of range [%d, %d]", c.World.Radius, MinRadius, MaxRadius))
	}
	if c.World.EvictMargin < 0 {
		errs = append(errs, fmt.Errorf("world.evict_margin %d must not be negative", c.World.EvictMargin))
	}
	if c.World.MinChunkY > c.World.MaxChunkY {
		errs = append(errs, fmt.Errorf("world.min_chunk_y %d above max_chunk_y %d", c.World.MinChunkY, c.World.MaxChunkY))
	}
	if c.World.MaxLoadsPerTick < 0 {
		errs = append(errs, fmt.Errorf("world.max_loads_per_tick %d must not be negative", c.World.MaxLoadsPerTick))
	}
	if c.World.VoxelSize <= 0 {
		errs = append(errs, fmt.Errorf("world.voxel_size %v must be positive", c.World.VoxelSize))
	}
	if _, err := c.NewGenerator(); err != nil {
		errs = append(errs, fmt.Errorf("world.preset: %w", err))
	}

	if c.Terrain.Octaves < 1 {
		errs = append(errs, fmt.Errorf("terrain.octaves %d must be at least 1", c.Terrain.Octaves))
	}
	if c.Terrain.Scale <= 0 {
		errs = append(errs, fmt.Errorf("terrain.scale %v must be positive", c.Terrain.Scale))
	}
	if c.Terrain.DirtDepth < 0 {
		errs = append(errs, fmt.Errorf("terrain.dirt_depth %d must not be negative", c.Terrain.DirtDepth))
	}
	switch world.Basis(c.Terrain.Basis) {
	case world.BasisSimplex, world.BasisValue:
	default:
		errs = append(errs, fmt.Errorf("terrain.basis %q is not simplex or value", c.Terrain.Basis))
	}

	if _, err := c.NewAtlas(); err != nil {
		errs = append(errs, err)
	}

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("graphics.fps_limit %d must not be negative", c.Graphics.FPSLimit))
	}
	if c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180 {
		errs = append(errs, fmt.Errorf("graphics.fov %v out of range (0, 180)", c.Graphics.FOV))
	}

	return errors.Join(errs...)
}
