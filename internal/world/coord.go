package world

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ChunkCoord addresses a chunk in chunk-grid units. It is comparable and is
// used directly as the World's map key, so distinct triples never collide.
type ChunkCoord struct {
	X, Y, Z int
}

func (c ChunkCoord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Add offsets c by (dx, dy, dz) chunks.
func (c ChunkCoord) Add(dx, dy, dz int) ChunkCoord {
	return ChunkCoord{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
}

// DistSqXZ is the squared horizontal distance between two coords in chunks.
func (c ChunkCoord) DistSqXZ(o ChunkCoord) int {
	dx := c.X - o.X
	dz := c.Z - o.Z
	return dx*dx + dz*dz
}

// floorDiv performs floor division for possibly negative a
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod returns a non-negative modulus
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// ChunkScale is the world-space edge length of a chunk.
func ChunkScale(voxelSize float32) float32 {
	return ChunkSize * voxelSize
}

// WorldToChunk returns floor(pos / chunkScale) per axis, the chunk coordinate
// the streaming loop centres on.
func WorldToChunk(pos mgl32.Vec3, voxelSize float32) ChunkCoord {
	s := float64(ChunkScale(voxelSize))
	return ChunkCoord{
		X: int(math.Floor(float64(pos.X()) / s)),
		Y: int(math.Floor(float64(pos.Y()) / s)),
		Z: int(math.Floor(float64(pos.Z()) / s)),
	}
}

// ChunkAnchor returns the chunk's world anchor, coord times the chunk scale.
func ChunkAnchor(c ChunkCoord, voxelSize float32) mgl32.Vec3 {
	s := ChunkScale(voxelSize)
	return mgl32.Vec3{float32(c.X) * s, float32(c.Y) * s, float32(c.Z) * s}
}

// VoxelWorld converts local coordinates in chunk c to integer world voxel
// coordinates. The chunk covers [anchor-S/2, anchor+S/2) on each axis.
func VoxelWorld(c ChunkCoord, x, y, z int) (vx, vy, vz int) {
	return c.X*ChunkSize + x - ChunkHalf,
		c.Y*ChunkSize + y - ChunkHalf,
		c.Z*ChunkSize + z - ChunkHalf
}

// VoxelToChunk is the inverse of VoxelWorld: it returns the chunk holding the
// world voxel and the voxel's local coordinates inside it.
func VoxelToChunk(vx, vy, vz int) (c ChunkCoord, x, y, z int) {
	ox, oy, oz := vx+ChunkHalf, vy+ChunkHalf, vz+ChunkHalf
	c = ChunkCoord{
		X: floorDiv(ox, ChunkSize),
		Y: floorDiv(oy, ChunkSize),
		Z: floorDiv(oz, ChunkSize),
	}
	return c, mod(ox, ChunkSize), mod(oy, ChunkSize), mod(oz, ChunkSize)
}

// VoxelCenter returns the world-space centre of the block at flat index i.
func VoxelCenter(c ChunkCoord, i int, voxelSize float32) mgl32.Vec3 {
	x, y, z := BlockPosition(i)
	vx, vy, vz := VoxelWorld(c, x, y, z)
	return mgl32.Vec3{
		(float32(vx) + 0.5) * voxelSize,
		(float32(vy) + 0.5) * voxelSize,
		(float32(vz) + 0.5) * voxelSize,
	}
}
