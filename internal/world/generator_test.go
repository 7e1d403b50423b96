package world

import (
	"crypto/sha256"
	"testing"

	"github.com/deltasampler/block-world/internal/noise"
)

// hashChunkBlocks computes a SHA-256 hash of all blocks in a chunk
func hashChunkBlocks(c *Chunk) [32]byte {
	h := sha256.New()
	for _, b := range c.Blocks {
		h.Write([]byte{byte(b), byte(b >> 8)})
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func newTestTerrain(seed int64) *TerrainGenerator {
	return NewTerrainGenerator(noise.New(seed), DefaultTerrainSettings())
}

func TestTerrainGeneratorImplementsInterface(t *testing.T) {
	var _ Generator = newTestTerrain(1)
}

func TestClassify(t *testing.T) {
	const water, dirt = 0, 4
	tests := []struct {
		name      string
		y, height int
		want      Block
	}{
		{"air above surface", 20, 10, BlockAir},
		{"water above surface below sea", -2, -5, BlockWater},
		{"water at sea level", 0, -1, BlockWater},
		{"bedrock at zero", 0, 10, BlockBedrock},
		{"bedrock at zero on flat floor", 0, 0, BlockBedrock},
		{"stone deep", 3, 10, BlockStone},
		{"stone below zero", -20, 10, BlockStone},
		{"dirt just under surface", 9, 10, BlockDirt},
		{"dirt at depth boundary", 6, 10, BlockDirt},
		{"shore at waterline", 1, 1, BlockShore},
		{"grass above waterline", 10, 10, BlockGrass},
		{"grass just above shore height", 2, 2, BlockGrass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.y, tt.height, water, dirt); got != tt.want {
				t.Errorf("Classify(%d, %d) = %d, want %d", tt.y, tt.height, got, tt.want)
			}
		})
	}
}

type countingGenerator struct{ calls int }

func (g *countingGenerator) Populate(c *Chunk) {
	g.calls++
	c.Fill(BlockStone)
}

func TestGenerateRunsOnce(t *testing.T) {
	g := &countingGenerator{}
	c := NewChunk(ChunkCoord{})
	if !Generate(g, c) {
		t.Fatal("first Generate should run")
	}
	if !c.Loaded {
		t.Fatal("Generate should mark the chunk loaded")
	}
	c.Set(0, 0, 0, BlockAir)
	if Generate(g, c) {
		t.Error("second Generate should be skipped")
	}
	if g.calls != 1 {
		t.Errorf("Populate called %d times, want 1", g.calls)
	}
	if c.Get(0, 0, 0) != BlockAir {
		t.Error("skipped Generate must not touch content")
	}
}

func TestTerrainBedrockAtZero(t *testing.T) {
	for _, seed := range []int64{1, 1337, 99991} {
		g := newTestTerrain(seed)
		c := NewChunk(ChunkCoord{})
		Generate(g, c)

		// world y = 0 is local y = ChunkHalf in chunk (0,0,0)
		for z := range ChunkSize {
			for x := range ChunkSize {
				if b := c.Get(x, ChunkHalf, z); b != BlockBedrock {
					t.Fatalf("seed %d: voxel (%d,0,%d) = %d, want bedrock", seed, x, z, b)
				}
			}
		}
	}
}

func TestTerrainAirAboveSurfaceAndWater(t *testing.T) {
	g := newTestTerrain(1337)
	s := g.Settings()
	for _, coord := range []ChunkCoord{{0, 0, 0}, {0, 1, 0}, {2, 2, -3}, {0, 4, 0}} {
		c := NewChunk(coord)
		Generate(g, c)
		for i, b := range c.Blocks {
			vx, vy, vz := c.VoxelAt(i)
			h := g.HeightAt(vx, vz)
			if vy > h && vy > s.WaterLevel && b != BlockAir {
				t.Fatalf("chunk %v voxel (%d,%d,%d) above height %d = %d, want air", coord, vx, vy, vz, h, b)
			}
			if vy <= h && b == BlockAir {
				t.Fatalf("chunk %v voxel (%d,%d,%d) at or below height %d is air", coord, vx, vy, vz, h)
			}
		}
	}
}

func TestTerrainDeterminism(t *testing.T) {
	coord := ChunkCoord{X: -3, Y: 1, Z: 7}
	a := NewChunk(coord)
	b := NewChunk(coord)
	Generate(newTestTerrain(12345), a)
	Generate(newTestTerrain(12345), b)
	if hashChunkBlocks(a) != hashChunkBlocks(b) {
		t.Fatal("same seed and coord produced different content")
	}
}

func TestTerrainSeedsDiffer(t *testing.T) {
	g1 := newTestTerrain(1)
	g2 := newTestTerrain(2)
	differ := false
	for vx := -500; vx <= 500 && !differ; vx += 50 {
		for vz := -500; vz <= 500; vz += 50 {
			if g1.HeightAt(vx, vz) != g2.HeightAt(vx, vz) {
				differ = true
				break
			}
		}
	}
	if !differ {
		t.Error("seeds 1 and 2 produced identical height fields")
	}
}

func TestHeightAtRange(t *testing.T) {
	for _, basis := range []Basis{BasisSimplex, BasisValue} {
		s := DefaultTerrainSettings()
		s.Basis = basis
		g := NewTerrainGenerator(noise.New(7), s)
		maxH := s.BaseHeight + int(s.HeightVariation)
		for vx := -300; vx <= 300; vx += 7 {
			for vz := -300; vz <= 300; vz += 11 {
				h := g.HeightAt(vx, vz)
				if h < 0 || h > maxH {
					t.Fatalf("%s: HeightAt(%d,%d) = %d outside [0,%d]", basis, vx, vz, h, maxH)
				}
			}
		}
	}
}

func TestHeightAtClampsToZero(t *testing.T) {
	s := DefaultTerrainSettings()
	s.BaseHeight = -1000
	g := NewTerrainGenerator(noise.New(3), s)
	if h := g.HeightAt(12, -40); h != 0 {
		t.Errorf("HeightAt with a deep base = %d, want 0", h)
	}
}

func BenchmarkGenerateTerrain(b *testing.B) {
	g := newTestTerrain(1337)
	c := NewChunk(ChunkCoord{Y: 1})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Populate(c)
	}
}
