// Package physics answers spatial queries against the voxel world.
package physics

import (
	"math"

	"github.com/deltasampler/block-world/internal/profiling"
	"github.com/go-gl/mathgl/mgl32"
)

// Reach limits for block editing, in voxels.
const (
	MinReachDistance = 0.1
	MaxReachDistance = 8.0
)

// stepSize is the march increment in voxels.
const stepSize = 0.02

// Solid reports whether a world voxel is occupied. *world.World satisfies it.
type Solid interface {
	IsSolid(vx, vy, vz int) bool
}

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	HitPosition      [3]int
	AdjacentPosition [3]int
	Distance         float32 // in voxels
	Hit              bool
}

// Raycast marches from start along direction and returns the first solid
// voxel between minDist and maxDist. The limits are in voxels, so reach does
// not change with voxelSize. Voxel v spans [v*voxelSize, (v+1)*voxelSize) on
// each axis. AdjacentPosition is the last empty voxel before the hit, where a
// placed block would go.
func Raycast(start, direction mgl32.Vec3, minDist, maxDist, voxelSize float32, w Solid) RaycastResult {
	defer profiling.Track("physics.Raycast")()

	result := RaycastResult{}
	if direction.Len() == 0 || voxelSize <= 0 {
		return result
	}
	direction = direction.Normalize()
	steps := int(maxDist / stepSize)

	voxel := func(p mgl32.Vec3) [3]int {
		return [3]int{
			int(math.Floor(float64(p.X() / voxelSize))),
			int(math.Floor(float64(p.Y() / voxelSize))),
			int(math.Floor(float64(p.Z() / voxelSize))),
		}
	}

	lastEmpty := voxel(start)
	for i := 0; i <= steps; i++ {
		dist := float32(i) * stepSize
		if dist < minDist {
			continue
		}

		v := voxel(start.Add(direction.Mul(dist * voxelSize)))
		if w.IsSolid(v[0], v[1], v[2]) {
			result.HitPosition = v
			result.AdjacentPosition = lastEmpty
			result.Distance = dist
			result.Hit = true
			return result
		}
		lastEmpty = v
	}
	return result
}
