package world

import (
	"math"

	"github.com/deltasampler/block-world/internal/noise"
)

// Generator fills a chunk's voxel array.
type Generator interface {
	Populate(c *Chunk)
}

// Generate runs g on c unless c has already been generated, then marks it
// loaded. It reports whether generation ran.
func Generate(g Generator, c *Chunk) bool {
	if c.Loaded {
		return false
	}
	g.Populate(c)
	c.Loaded = true
	return true
}

// Basis selects the noise function the terrain height field is built from.
type Basis string

const (
	BasisSimplex Basis = "simplex"
	BasisValue   Basis = "value"
)

// TerrainSettings shapes the fbm height field.
type TerrainSettings struct {
	Scale           float64
	Octaves         int
	Persistence     float64
	Lacunarity      float64
	BaseHeight      int
	HeightVariation float64
	WaterLevel      int
	DirtDepth       int
	Basis           Basis
}

// DefaultTerrainSettings returns the stock height field parameters.
func DefaultTerrainSettings() TerrainSettings {
	return TerrainSettings{
		Scale:           0.01,
		Octaves:         5,
		Persistence:     0.5,
		Lacunarity:      2.0,
		BaseHeight:      16,
		HeightVariation: 32,
		WaterLevel:      0,
		DirtDepth:       4,
		Basis:           BasisSimplex,
	}
}

// TerrainGenerator is the primary generator: an fbm height field with
// bedrock, stone, dirt, grass and water layers.
type TerrainGenerator struct {
	noise    *noise.Engine
	settings TerrainSettings
}

// NewTerrainGenerator creates a terrain generator that samples n.
func NewTerrainGenerator(n *noise.Engine, settings TerrainSettings) *TerrainGenerator {
	return &TerrainGenerator{noise: n, settings: settings}
}

// Settings returns the generator's parameters.
func (g *TerrainGenerator) Settings() TerrainSettings {
	return g.settings
}

// HeightAt computes the terrain surface voxel Y at world voxel column (vx, vz).
// The fbm is sampled on the XZ plane with Y fixed at 0. Heights never go below 0.
func (g *TerrainGenerator) HeightAt(vx, vz int) int {
	s := g.settings
	x := float64(vx) * s.Scale
	z := float64(vz) * s.Scale

	var n float64
	if s.Basis == BasisValue {
		n = g.noise.FBMValue3(x, 0, z, s.Octaves, s.Persistence, s.Lacunarity)
	} else {
		n = g.noise.FBM3(x, 0, z, s.Octaves, s.Persistence, s.Lacunarity)
	}

	height := n*s.HeightVariation + float64(s.BaseHeight)
	if height < 0 {
		height = 0
	}
	return int(math.Floor(height))
}

// Classify picks the block for voxel height y in a column whose surface is at
// height. Rules are evaluated in order; the first match wins.
func Classify(y, height, waterLevel, dirtDepth int) Block {
	switch {
	case y > height:
		if y <= waterLevel {
			return BlockWater
		}
		return BlockAir
	case y == 0:
		return BlockBedrock
	case y < height-dirtDepth:
		return BlockStone
	case y < height:
		return BlockDirt
	case height <= waterLevel+1:
		return BlockShore
	default:
		return BlockGrass
	}
}

// Populate writes terrain into every cell of c.
func (g *TerrainGenerator) Populate(c *Chunk) {
	s := g.settings
	// One height sample per column.
	for z := range ChunkSize {
		for x := range ChunkSize {
			vx, _, vz := VoxelWorld(c.Coord, x, 0, z)
			height := g.HeightAt(vx, vz)
			for y := range ChunkSize {
				_, vy, _ := VoxelWorld(c.Coord, x, y, z)
				c.Blocks[BlockIndex(x, y, z)] = Classify(vy, height, s.WaterLevel, s.DirtDepth)
			}
		}
	}
}
