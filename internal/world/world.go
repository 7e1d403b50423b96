package world

import (
	"cmp"
	"slices"
)

// World is a sparse index from chunk coordinate to chunk.
//
// A World is owned by a single goroutine; it does no locking.
type World struct {
	chunks map[ChunkCoord]*Chunk
}

// New creates an empty world.
func New() *World {
	return &World{chunks: make(map[ChunkCoord]*Chunk)}
}

// Load returns the chunk at coord, allocating an empty unloaded chunk if none
// exists yet. Content of an existing chunk is left untouched.
func (w *World) Load(coord ChunkCoord) *Chunk {
	if c, ok := w.chunks[coord]; ok {
		return c
	}
	c := NewChunk(coord)
	w.chunks[coord] = c
	return c
}

// Get looks up coord without allocating. The bool is false on a miss.
func (w *World) Get(coord ChunkCoord) (*Chunk, bool) {
	c, ok := w.chunks[coord]
	return c, ok
}

// Unload drops the chunk at coord and its content. Missing coords are ignored.
func (w *World) Unload(coord ChunkCoord) {
	delete(w.chunks, coord)
}

// Len returns the number of chunks held.
func (w *World) Len() int {
	return len(w.chunks)
}

// Coords returns every held coordinate in (Y, Z, X) order.
func (w *World) Coords() []ChunkCoord {
	out := make([]ChunkCoord, 0, len(w.chunks))
	for c := range w.chunks {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b ChunkCoord) int {
		if d := cmp.Compare(a.Y, b.Y); d != 0 {
			return d
		}
		if d := cmp.Compare(a.Z, b.Z); d != 0 {
			return d
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}

// BlockAt returns the block at world voxel coordinates, air if the chunk is
// not held.
func (w *World) BlockAt(vx, vy, vz int) Block {
	coord, x, y, z := VoxelToChunk(vx, vy, vz)
	c, ok := w.chunks[coord]
	if !ok {
		return BlockAir
	}
	return c.Blocks[BlockIndex(x, y, z)]
}

// IsSolid reports whether the voxel holds a non-air block.
func (w *World) IsSolid(vx, vy, vz int) bool {
	return w.BlockAt(vx, vy, vz) != BlockAir
}

// SetBlock writes a block at world voxel coordinates if its chunk is held and
// returns the chunk that changed.
func (w *World) SetBlock(vx, vy, vz int, b Block) (*Chunk, bool) {
	coord, x, y, z := VoxelToChunk(vx, vy, vz)
	c, ok := w.chunks[coord]
	if !ok {
		return nil, false
	}
	c.Blocks[BlockIndex(x, y, z)] = b
	return c, true
}
