package world

import (
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/deltasampler/block-world/internal/noise"
)

// Preset names accepted by NewPreset.
const (
	PresetTerrain = "terrain"
	PresetSolid   = "solid"
	PresetRandom  = "random"
	PresetFrame   = "frame"
	PresetSphere  = "sphere"
	PresetHills   = "hills"
)

var presetNames = []string{PresetTerrain, PresetSolid, PresetRandom, PresetFrame, PresetSphere, PresetHills}

// PresetNames lists the selectable generators.
func PresetNames() []string {
	out := slices.Clone(presetNames)
	slices.Sort(out)
	return out
}

// NewPreset builds the named generator. Every preset is a pure function of
// (seed, chunk coordinate).
func NewPreset(name string, seed int64, settings TerrainSettings) (Generator, error) {
	switch name {
	case PresetTerrain, "":
		return NewTerrainGenerator(noise.New(seed), settings), nil
	case PresetSolid:
		return SolidGenerator{Block: BlockBedrock}, nil
	case PresetRandom:
		return RandomGenerator{Seed: seed, Block: BlockBedrock}, nil
	case PresetFrame:
		return FrameGenerator{Block: BlockFrame, Thickness: 2}, nil
	case PresetSphere:
		return SphereGenerator{}, nil
	case PresetHills:
		return NewHillsGenerator(seed), nil
	default:
		return nil, fmt.Errorf("unknown preset %q", name)
	}
}

// BlockFrame is the block used by the frame preset.
const BlockFrame = BlockBedrock

// SolidGenerator fills the whole chunk with one block.
type SolidGenerator struct {
	Block Block
}

func (g SolidGenerator) Populate(c *Chunk) {
	c.Fill(g.Block)
}

// chunkSeed mixes a world seed with a chunk coordinate (SplitMix64 finaliser).
func chunkSeed(seed int64, c ChunkCoord) int64 {
	v := uint64(seed) + uint64(int64(c.X))*0x9E3779B97F4A7C15 +
		uint64(int64(c.Y))*0x517CC1B727220A95 + uint64(int64(c.Z))*0x6C62272E07BB0142
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v ^= v >> 31
	return int64(v)
}

// RandomGenerator sets each cell to Block with probability one half.
type RandomGenerator struct {
	Seed  int64
	Block Block
}

func (g RandomGenerator) Populate(c *Chunk) {
	FillRandom(c, rand.New(rand.NewSource(chunkSeed(g.Seed, c.Coord))), g.Block)
}

// FillRandom fills c from rng. The caller owns the randomness, so the result is
// reproducible for a given rng state.
func FillRandom(c *Chunk, rng *rand.Rand, b Block) {
	for i := range c.Blocks {
		if rng.Float64() < 0.5 {
			c.Blocks[i] = BlockAir
		} else {
			c.Blocks[i] = b
		}
	}
}

// FrameGenerator draws the twelve edges of the chunk cube, Thickness cells wide.
type FrameGenerator struct {
	Block     Block
	Thickness int
}

func (g FrameGenerator) Populate(c *Chunk) {
	outer := func(v int) int {
		if v < g.Thickness || v >= ChunkSize-g.Thickness {
			return 1
		}
		return 0
	}
	for i := range c.Blocks {
		x, y, z := BlockPosition(i)
		if outer(x)+outer(y)+outer(z) >= 2 {
			c.Blocks[i] = g.Block
		} else {
			c.Blocks[i] = BlockAir
		}
	}
}

// SphereGenerator is a test pattern: a ball of radius S/2 centred on the chunk,
// bedrock below the centre plane and planks in the layer just above it.
type SphereGenerator struct{}

func (SphereGenerator) Populate(c *Chunk) {
	r := float64(ChunkHalf)
	for i := range c.Blocks {
		x, y, z := BlockPosition(i)
		px := float64(x) + 0.5 - r
		py := float64(y) + 0.5 - r
		pz := float64(z) + 0.5 - r

		b := BlockAir
		if math.Sqrt(px*px+py*py+pz*pz) < r {
			switch {
			case py < 0:
				b = BlockBedrock
			case py < 1:
				b = BlockPlanks
			}
		}
		c.Blocks[i] = b
	}
}

// HillsGenerator is a sine height field with trees scattered per column.
type HillsGenerator struct {
	Seed       int64
	BaseHeight int
	Amplitude  float64
	Frequency  float64
	// TreeChance is the probability that a grass column grows a tree.
	TreeChance float64
}

// NewHillsGenerator returns a hills generator with stock parameters.
func NewHillsGenerator(seed int64) HillsGenerator {
	return HillsGenerator{
		Seed:       seed,
		BaseHeight: 4,
		Amplitude:  4,
		Frequency:  0.15,
		TreeChance: 0.02,
	}
}

// HeightAt returns the surface voxel Y of column (vx, vz).
func (g HillsGenerator) HeightAt(vx, vz int) int {
	h := float64(g.BaseHeight) + g.Amplitude*math.Sin(float64(vx)*g.Frequency)*math.Cos(float64(vz)*g.Frequency)
	return int(math.Floor(h))
}

// treeAt decides whether column (vx, vz) holds a tree and how tall its trunk is.
// The rng is seeded from the column, so trees straddling chunk borders agree.
func (g HillsGenerator) treeAt(vx, vz int) (int, bool) {
	rng := rand.New(rand.NewSource(chunkSeed(g.Seed, ChunkCoord{X: vx, Z: vz})))
	if rng.Float64() >= g.TreeChance {
		return 0, false
	}
	return 4 + rng.Intn(3), true
}

const leafRadius = 2

func (g HillsGenerator) Populate(c *Chunk) {
	for z := range ChunkSize {
		for x := range ChunkSize {
			vx, _, vz := VoxelWorld(c.Coord, x, 0, z)
			height := g.HeightAt(vx, vz)
			for y := range ChunkSize {
				_, vy, _ := VoxelWorld(c.Coord, x, y, z)
				b := BlockAir
				switch {
				case vy > height:
				case vy == height:
					b = BlockGrass
				default:
					b = BlockDirt
				}
				c.Blocks[BlockIndex(x, y, z)] = b
			}
		}
	}

	// Trees whose canopy can reach this chunk may be rooted in a neighbour.
	x0, y0, z0 := VoxelWorld(c.Coord, 0, 0, 0)
	for vz := z0 - leafRadius; vz < z0+ChunkSize+leafRadius; vz++ {
		for vx := x0 - leafRadius; vx < x0+ChunkSize+leafRadius; vx++ {
			trunk, ok := g.treeAt(vx, vz)
			if !ok {
				continue
			}
			g.placeTree(c, vx, g.HeightAt(vx, vz)+1, vz, trunk, y0)
		}
	}
}

// placeTree writes the part of a tree rooted at (vx, vy, vz) that falls inside c.
func (g HillsGenerator) placeTree(c *Chunk, vx, vy, vz, trunk, y0 int) {
	x0, _, z0 := VoxelWorld(c.Coord, 0, 0, 0)
	top := vy + trunk - 1

	put := func(wx, wy, wz int, b Block, overwrite bool) {
		x, y, z := wx-x0, wy-y0, wz-z0
		if !InBounds(x, y, z) {
			return
		}
		i := BlockIndex(x, y, z)
		if overwrite || c.Blocks[i] == BlockAir {
			c.Blocks[i] = b
		}
	}

	for dy := -1; dy <= 1; dy++ {
		r := leafRadius
		if dy == 1 {
			r = 1
		}
		for dz := -r; dz <= r; dz++ {
			for dx := -r; dx <= r; dx++ {
				put(vx+dx, top+dy, vz+dz, BlockLeaves, false)
			}
		}
	}
	for y := vy; y <= top; y++ {
		put(vx, y, vz, BlockLog, true)
	}
}
