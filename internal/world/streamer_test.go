package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testStreamSettings(radius, budget int) StreamSettings {
	return StreamSettings{
		Radius:          radius,
		EvictMargin:     0,
		MinY:            0,
		MaxY:            0,
		MaxLoadsPerTick: budget,
		VoxelSize:       1,
	}
}

func TestRequiredNearestFirst(t *testing.T) {
	s := NewStreamer(New(), SolidGenerator{Block: BlockStone}, testStreamSettings(1, 0), nil)
	req := s.Required(ChunkCoord{X: 5, Z: -2})
	if len(req) != 5 {
		t.Fatalf("radius 1 disc has %d coords, want 5", len(req))
	}
	if req[0] != (ChunkCoord{X: 5, Z: -2}) {
		t.Errorf("first required = %v, want centre", req[0])
	}
}

func TestRequiredLayers(t *testing.T) {
	settings := testStreamSettings(2, 0)
	settings.MinY, settings.MaxY = -1, 2
	s := NewStreamer(New(), SolidGenerator{}, settings, nil)
	// 13 columns in a radius 2 disc, 4 layers each
	if n := len(s.Required(ChunkCoord{})); n != 13*4 {
		t.Errorf("Required = %d coords, want %d", n, 13*4)
	}
}

func TestRequiredInvertedLayers(t *testing.T) {
	settings := testStreamSettings(1, 0)
	settings.MinY, settings.MaxY = 3, 0
	s := NewStreamer(New(), SolidGenerator{}, settings, nil)
	if n := len(s.Required(ChunkCoord{})); n != 0 {
		t.Errorf("Required with no layers = %d coords, want 0", n)
	}
	if res := s.Update(mgl32.Vec3{}); len(res.Generated) != 0 {
		t.Errorf("Update with no layers generated %d chunks", len(res.Generated))
	}
}

func TestUpdateGeneratesAll(t *testing.T) {
	w := New()
	s := NewStreamer(w, SolidGenerator{Block: BlockStone}, testStreamSettings(2, 0), nil)

	res := s.Update(mgl32.Vec3{0, 0, 0})
	if len(res.Generated) != 13 || res.Pending != 0 {
		t.Fatalf("generated %d pending %d, want 13 and 0", len(res.Generated), res.Pending)
	}
	for _, coord := range res.Generated {
		c, ok := w.Get(coord)
		if !ok || !c.Loaded || c.CountSolid() != ChunkVolume {
			t.Fatalf("chunk %v not generated", coord)
		}
	}

	res = s.Update(mgl32.Vec3{1, 0, 1})
	if len(res.Generated) != 0 || len(res.Evicted) != 0 {
		t.Errorf("second update changed %d/%d chunks, want none", len(res.Generated), len(res.Evicted))
	}
}

func TestUpdateBudget(t *testing.T) {
	w := New()
	s := NewStreamer(w, SolidGenerator{Block: BlockStone}, testStreamSettings(1, 2), nil)

	res := s.Update(mgl32.Vec3{})
	if len(res.Generated) != 2 || res.Pending != 3 {
		t.Fatalf("first tick generated %d pending %d, want 2 and 3", len(res.Generated), res.Pending)
	}
	if res.Generated[0] != (ChunkCoord{}) {
		t.Errorf("centre chunk should be generated first, got %v", res.Generated[0])
	}
	s.Update(mgl32.Vec3{})
	res = s.Update(mgl32.Vec3{})
	if res.Pending != 0 || w.Len() != 5 {
		t.Errorf("after three ticks pending %d held %d, want 0 and 5", res.Pending, w.Len())
	}
}

func TestUpdateEvicts(t *testing.T) {
	w := New()
	s := NewStreamer(w, SolidGenerator{Block: BlockStone}, testStreamSettings(1, 0), nil)
	s.Update(mgl32.Vec3{})

	res := s.Update(mgl32.Vec3{10 * ChunkSize, 0, 0})
	if res.Center != (ChunkCoord{X: 10}) {
		t.Fatalf("centre = %v, want (10,0,0)", res.Center)
	}
	if len(res.Evicted) != 5 {
		t.Errorf("evicted %d, want 5", len(res.Evicted))
	}
	if _, ok := w.Get(ChunkCoord{}); ok {
		t.Error("origin chunk should be evicted")
	}
	if w.Len() != 5 {
		t.Errorf("held %d chunks, want 5", w.Len())
	}
}

func TestEvictMarginKeepsNearChunks(t *testing.T) {
	w := New()
	settings := testStreamSettings(1, 0)
	settings.EvictMargin = 1
	s := NewStreamer(w, SolidGenerator{Block: BlockStone}, settings, nil)
	s.Update(mgl32.Vec3{})

	res := s.Update(mgl32.Vec3{ChunkSize, 0, 0})
	if len(res.Evicted) != 0 {
		t.Errorf("moving one chunk evicted %v, want none inside the margin", res.Evicted)
	}
}

func TestRestreamReproducesTerrain(t *testing.T) {
	w := New()
	gen := newTestTerrain(1337)
	s := NewStreamer(w, gen, testStreamSettings(1, 0), nil)

	s.Update(mgl32.Vec3{})
	c, _ := w.Get(ChunkCoord{})
	before := hashChunkBlocks(c)

	s.Update(mgl32.Vec3{20 * ChunkSize, 0, 0})
	if _, ok := w.Get(ChunkCoord{}); ok {
		t.Fatal("origin chunk should have been unloaded")
	}

	s.Update(mgl32.Vec3{})
	c, ok := w.Get(ChunkCoord{})
	if !ok {
		t.Fatal("origin chunk not streamed back in")
	}
	if hashChunkBlocks(c) != before {
		t.Error("re-streamed chunk differs from its first generation")
	}
}
