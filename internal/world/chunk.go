package world

const (
	// ChunkSize is the side length of a cubic chunk in voxels.
	ChunkSize = 16
	// ChunkArea is the number of voxels in one horizontal layer.
	ChunkArea = ChunkSize * ChunkSize
	// ChunkVolume is the number of voxels in a chunk.
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
	// ChunkHalf recentres local coordinates so a chunk spans symmetric about its anchor.
	ChunkHalf = ChunkSize / 2
)

// Chunk is a dense SxSxS block grid stored as one flat array.
type Chunk struct {
	Coord ChunkCoord
	// Loaded is set once terrain generation has run for this chunk.
	Loaded bool
	Blocks [ChunkVolume]Block
}

// NewChunk creates an empty, unloaded chunk at coord.
func NewChunk(coord ChunkCoord) *Chunk {
	return &Chunk{Coord: coord}
}

// BlockIndex converts local coordinates to a flat index: x + y*S*S + z*S.
func BlockIndex(x, y, z int) int {
	return x + y*ChunkArea + z*ChunkSize
}

// BlockPosition is the inverse of BlockIndex.
func BlockPosition(index int) (x, y, z int) {
	return index % ChunkSize, index / ChunkArea, (index / ChunkSize) % ChunkSize
}

// InBounds reports whether local coordinates address a cell of the chunk.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSize && y >= 0 && y < ChunkSize && z >= 0 && z < ChunkSize
}

// Get returns the block at local coordinates, air when out of bounds.
func (c *Chunk) Get(x, y, z int) Block {
	if !InBounds(x, y, z) {
		return BlockAir
	}
	return c.Blocks[BlockIndex(x, y, z)]
}

// Set writes the block at local coordinates. Out of bounds writes are dropped.
func (c *Chunk) Set(x, y, z int, b Block) {
	if !InBounds(x, y, z) {
		return
	}
	c.Blocks[BlockIndex(x, y, z)] = b
}

// Fill sets every block to b.
func (c *Chunk) Fill(b Block) {
	for i := range c.Blocks {
		c.Blocks[i] = b
	}
}

// Reset clears the chunk back to air and marks it unloaded.
func (c *Chunk) Reset() {
	c.Blocks = [ChunkVolume]Block{}
	c.Loaded = false
}

// IsEmpty reports whether every block is air.
func (c *Chunk) IsEmpty() bool {
	for _, b := range c.Blocks {
		if b != BlockAir {
			return false
		}
	}
	return true
}

// CountSolid returns the number of non-air blocks.
func (c *Chunk) CountSolid() int {
	n := 0
	for _, b := range c.Blocks {
		if b != BlockAir {
			n++
		}
	}
	return n
}

// VoxelAt returns the world voxel coordinates of the flat index i.
func (c *Chunk) VoxelAt(i int) (vx, vy, vz int) {
	x, y, z := BlockPosition(i)
	return VoxelWorld(c.Coord, x, y, z)
}
