package world

// Block is a voxel id. Zero is air; id-1 selects a texture atlas cell.
type Block uint16

const (
	BlockAir     Block = 0
	BlockBedrock Block = 1
	BlockPlanks  Block = 2
	BlockStone   Block = 3
	BlockGravel  Block = 4
	BlockSand    Block = 5
	BlockShore   Block = 6 // muddy dirt at the waterline
	BlockGrass   Block = 7 // dirt with grass
	BlockDirt    Block = 8
	BlockLog     Block = 9
	BlockLeaves  Block = 10
	BlockWater   Block = 14
)

// IsAir reports whether b is empty space.
func (b Block) IsAir() bool {
	return b == BlockAir
}

// AtlasCell returns the zero-based texture atlas cell for b. Air has none.
func (b Block) AtlasCell() (int, bool) {
	if b == BlockAir {
		return 0, false
	}
	return int(b) - 1, true
}
