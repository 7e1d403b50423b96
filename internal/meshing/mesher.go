package meshing

import (
	"github.com/deltasampler/block-world/internal/profiling"
	"github.com/deltasampler/block-world/internal/world"
	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is number of float32 per vertex (pos.xyz + normal.xyz + uv)
const VertexStride = 8

// quadIndices is the two-triangle fan over a face's four corners.
var quadIndices = [6]uint32{0, 1, 2, 0, 2, 3}

// Occluder reports whether the world voxel at (vx, vy, vz) is solid. It is
// consulted only for neighbours outside the chunk being meshed.
type Occluder func(vx, vy, vz int) bool

// Options control a mesh build.
type Options struct {
	Atlas     Atlas
	VoxelSize float32
	// Occluder hides boundary faces against neighbouring chunks. With a nil
	// Occluder every face on the chunk boundary is emitted.
	Occluder Occluder
}

// DefaultOptions uses the stock atlas, unit voxels and no seam culling.
func DefaultOptions() Options {
	return Options{Atlas: DefaultAtlas(), VoxelSize: 1}
}

// Mesh is an indexed triangle list with interleaved pos/normal/uv vertices.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / VertexStride
}

// Quads returns the number of emitted faces.
func (m *Mesh) Quads() int {
	return len(m.Indices) / len(quadIndices)
}

// Empty reports whether the mesh has nothing to draw.
func (m *Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// face is one of the six cube directions: the neighbour offset, the outward
// normal and the corner signs in counter-clockwise order seen from outside.
type face struct {
	dx, dy, dz int
	normal     mgl32.Vec3
	corners    [4][3]float32
}

// Corner i of every face takes atlas coordinates (s, t) = faceST[i].
var faceST = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

var faces = [6]face{
	// -X (west)
	{-1, 0, 0, mgl32.Vec3{-1, 0, 0}, [4][3]float32{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}},
	// +X (east)
	{1, 0, 0, mgl32.Vec3{1, 0, 0}, [4][3]float32{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}}},
	// -Y (bottom)
	{0, -1, 0, mgl32.Vec3{0, -1, 0}, [4][3]float32{{-1, -1, 1}, {-1, -1, -1}, {1, -1, -1}, {1, -1, 1}}},
	// +Y (top)
	{0, 1, 0, mgl32.Vec3{0, 1, 0}, [4][3]float32{{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1}}},
	// +Z (north)
	{0, 0, 1, mgl32.Vec3{0, 0, 1}, [4][3]float32{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},
	// -Z (south)
	{0, 0, -1, mgl32.Vec3{0, 0, -1}, [4][3]float32{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}},
}

// BuildChunkMesh emits one textured quad for every voxel face of c that
// borders air. Neighbours inside the chunk are read from c; neighbours outside
// it are visible unless opts.Occluder reports them solid. The mesh is rebuilt
// from scratch on every call.
func BuildChunkMesh(c *world.Chunk, opts Options) *Mesh {
	defer profiling.Track("meshing.BuildChunkMesh")()

	m := &Mesh{}
	if c == nil {
		return m
	}
	if opts.VoxelSize <= 0 {
		opts.VoxelSize = 1
	}
	if opts.Atlas.size == 0 {
		opts.Atlas = DefaultAtlas()
	}
	half := opts.VoxelSize / 2

	for i, b := range c.Blocks {
		cell, ok := b.AtlasCell()
		if !ok {
			continue
		}
		x, y, z := world.BlockPosition(i)
		var center mgl32.Vec3
		var uv UVRect
		centered := false

		for fi := range faces {
			f := &faces[fi]
			if !faceVisible(c, x+f.dx, y+f.dy, z+f.dz, opts.Occluder) {
				continue
			}
			if !centered {
				center = world.VoxelCenter(c.Coord, i, opts.VoxelSize)
				uv = opts.Atlas.UV(cell)
				centered = true
			}
			m.appendFace(f, center, half, uv)
		}
	}
	return m
}

// faceVisible reports whether the neighbour at local (x, y, z) leaves the
// shared face exposed.
func faceVisible(c *world.Chunk, x, y, z int, occ Occluder) bool {
	if world.InBounds(x, y, z) {
		return c.Blocks[world.BlockIndex(x, y, z)].IsAir()
	}
	if occ == nil {
		return true
	}
	vx, vy, vz := world.VoxelWorld(c.Coord, x, y, z)
	return !occ(vx, vy, vz)
}

func (m *Mesh) appendFace(f *face, center mgl32.Vec3, half float32, uv UVRect) {
	base := uint32(len(m.Vertices) / VertexStride)
	for k, corner := range f.corners {
		s, t := faceST[k][0], faceST[k][1]
		m.Vertices = append(m.Vertices,
			center[0]+corner[0]*half, center[1]+corner[1]*half, center[2]+corner[2]*half,
			f.normal[0], f.normal[1], f.normal[2],
			uv.U0+s*(uv.U1-uv.U0), uv.V1-t*(uv.V1-uv.V0),
		)
	}
	for _, idx := range quadIndices {
		m.Indices = append(m.Indices, base+idx)
	}
}
