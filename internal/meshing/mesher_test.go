package meshing

import (
	"testing"

	"github.com/deltasampler/block-world/internal/world"
	"github.com/go-gl/mathgl/mgl32"
)

func TestEmptyChunkMesh(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{})
	m := BuildChunkMesh(c, DefaultOptions())
	if len(m.Vertices) != 0 || len(m.Indices) != 0 {
		t.Fatalf("all-air chunk: got %d floats, %d indices, want 0", len(m.Vertices), len(m.Indices))
	}
	if !m.Empty() {
		t.Error("Empty() = false for all-air chunk")
	}
}

func TestNilChunkMesh(t *testing.T) {
	if m := BuildChunkMesh(nil, DefaultOptions()); !m.Empty() {
		t.Fatalf("nil chunk: got %d quads, want 0", m.Quads())
	}
}

func TestSingleBlockMesh(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{})
	c.Set(3, 4, 5, world.BlockStone)
	m := BuildChunkMesh(c, DefaultOptions())
	if m.Quads() != 6 {
		t.Fatalf("single block: got %d quads, want 6", m.Quads())
	}
	if m.VertexCount() != 24 {
		t.Fatalf("single block: got %d vertices, want 24", m.VertexCount())
	}
	if len(m.Indices) != 36 {
		t.Fatalf("single block: got %d indices, want 36", len(m.Indices))
	}
}

func TestSolidChunkMesh(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{X: 2, Y: -1, Z: 7})
	c.Fill(world.BlockBedrock)
	m := BuildChunkMesh(c, DefaultOptions())
	want := 6 * world.ChunkArea
	if m.Quads() != want {
		t.Fatalf("solid chunk: got %d quads, want %d", m.Quads(), want)
	}
}

func TestTwoBlocksTouching(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{})
	c.Set(0, 0, 0, world.BlockGrass)
	c.Set(1, 0, 0, world.BlockGrass)
	m := BuildChunkMesh(c, DefaultOptions())
	// The shared face is hidden on both sides.
	if m.Quads() != 10 {
		t.Fatalf("two touching blocks: got %d quads, want 10", m.Quads())
	}
}

func TestIndicesAreQuadFans(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{})
	c.Set(0, 0, 0, world.BlockDirt)
	c.Set(5, 5, 5, world.BlockDirt)
	m := BuildChunkMesh(c, DefaultOptions())
	for q := 0; q < m.Quads(); q++ {
		base := uint32(q * 4)
		got := m.Indices[q*6 : q*6+6]
		want := []uint32{base, base + 1, base + 2, base, base + 2, base + 3}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("quad %d indices = %v, want %v", q, got, want)
			}
		}
	}
}

func vertexPos(m *Mesh, v int) mgl32.Vec3 {
	o := v * VertexStride
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

func vertexNormal(m *Mesh, v int) mgl32.Vec3 {
	o := v*VertexStride + 3
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

func TestFaceWindingMatchesNormal(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{})
	c.Set(8, 8, 8, world.BlockSand)
	m := BuildChunkMesh(c, DefaultOptions())

	seen := map[mgl32.Vec3]bool{}
	for q := 0; q < m.Quads(); q++ {
		a := vertexPos(m, q*4)
		b := vertexPos(m, q*4+1)
		d := vertexPos(m, q*4+2)
		n := vertexNormal(m, q*4)
		if n.Len() < 0.999 || n.Len() > 1.001 {
			t.Errorf("quad %d normal %v is not unit length", q, n)
		}
		cross := b.Sub(a).Cross(d.Sub(a))
		if cross.Dot(n) <= 0 {
			t.Errorf("quad %d with normal %v is wound clockwise from outside", q, n)
		}
		seen[n] = true
	}
	if len(seen) != 6 {
		t.Errorf("got %d distinct normals, want 6", len(seen))
	}
	if !seen[mgl32.Vec3{0, 0, -1}] {
		t.Error("missing (0,0,-1) normal for the -z face")
	}
}

func TestVertexPositionsSurroundVoxelCenter(t *testing.T) {
	coord := world.ChunkCoord{X: -1, Y: 0, Z: 2}
	c := world.NewChunk(coord)
	c.Set(0, 0, 0, world.BlockStone)
	const size = 0.5
	m := BuildChunkMesh(c, Options{Atlas: DefaultAtlas(), VoxelSize: size})

	center := world.VoxelCenter(coord, world.BlockIndex(0, 0, 0), size)
	for v := 0; v < m.VertexCount(); v++ {
		d := vertexPos(m, v).Sub(center)
		for axis := 0; axis < 3; axis++ {
			if d[axis] != size/2 && d[axis] != -size/2 {
				t.Fatalf("vertex %d offset %v is not half a voxel from the centre", v, d)
			}
		}
	}
}

func TestFaceUVsUseBlockCell(t *testing.T) {
	atlas := DefaultAtlas()
	c := world.NewChunk(world.ChunkCoord{})
	c.Set(0, 0, 0, world.BlockGrass)
	m := BuildChunkMesh(c, Options{Atlas: atlas, VoxelSize: 1})

	rect := atlas.UV(int(world.BlockGrass) - 1)
	for v := 0; v < m.VertexCount(); v++ {
		o := v*VertexStride + 6
		u, tv := m.Vertices[o], m.Vertices[o+1]
		if (!approx(u, rect.U0) && !approx(u, rect.U1)) || (!approx(tv, rect.V0) && !approx(tv, rect.V1)) {
			t.Fatalf("vertex %d uv (%v, %v) is not a corner of %+v", v, u, tv, rect)
		}
	}
	// Corner 0 of each face is the bottom-left of the cell, flipped to V1.
	if m.Vertices[6] != rect.U0 || m.Vertices[7] != rect.V1 {
		t.Errorf("first corner uv = (%v, %v), want (%v, %v)", m.Vertices[6], m.Vertices[7], rect.U0, rect.V1)
	}
}

func TestOccluderCullsSeams(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{})
	c.Fill(world.BlockStone)

	all := func(int, int, int) bool { return true }
	m := BuildChunkMesh(c, Options{Atlas: DefaultAtlas(), VoxelSize: 1, Occluder: all})
	if !m.Empty() {
		t.Fatalf("solid chunk enclosed by solid neighbours: got %d quads, want 0", m.Quads())
	}

	// Only the +X neighbour column is solid.
	eastX, _, _ := world.VoxelWorld(c.Coord, world.ChunkSize, 0, 0)
	east := func(vx, _, _ int) bool { return vx == eastX }
	m = BuildChunkMesh(c, Options{Atlas: DefaultAtlas(), VoxelSize: 1, Occluder: east})
	if want := 5 * world.ChunkArea; m.Quads() != want {
		t.Fatalf("solid chunk with solid east neighbour: got %d quads, want %d", m.Quads(), want)
	}
}

func TestOccluderWithWorld(t *testing.T) {
	w := world.New()
	a := w.Load(world.ChunkCoord{})
	b := w.Load(world.ChunkCoord{X: 1})
	a.Set(world.ChunkSize-1, 0, 0, world.BlockGrass)
	b.Set(0, 0, 0, world.BlockGrass)

	m := BuildChunkMesh(a, Options{Atlas: DefaultAtlas(), VoxelSize: 1, Occluder: w.IsSolid})
	if m.Quads() != 5 {
		t.Fatalf("cross-chunk culling: got %d quads, want 5", m.Quads())
	}
	m = BuildChunkMesh(a, DefaultOptions())
	if m.Quads() != 6 {
		t.Fatalf("without occluder: got %d quads, want 6", m.Quads())
	}
}

func BenchmarkBuildChunkMesh(b *testing.B) {
	c := world.NewChunk(world.ChunkCoord{})
	world.Generate(world.NewHillsGenerator(1), c)
	opts := DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BuildChunkMesh(c, opts)
	}
}
