// Package noise implements seeded, deterministic coherent noise: a shuffled
// permutation table, 3D simplex and value noise, and fractal Brownian motion
// built on top of them.
//
// Nothing here keeps global state. Every field is derived from an Engine (or a
// bare *Perm), so two engines with the same seed produce bit-identical output
// and engines with different seeds can be used side by side.
package noise

import "math/rand"

// PermSize is the number of distinct values in the permutation table.
const PermSize = 256

// Perm is a shuffled [0, 256) sequence stored twice so lookups of the form
// perm[i + perm[j]] never need to wrap.
type Perm [2 * PermSize]uint8

// NewPermutation shuffles the identity sequence with a Fisher-Yates pass driven
// by a math/rand source seeded with seed, then duplicates it.
// The result depends only on seed.
func NewPermutation(seed int64) *Perm {
	var base [PermSize]uint8
	for i := range base {
		base[i] = uint8(i)
	}

	rng := rand.New(rand.NewSource(seed))
	for i := PermSize - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		base[i], base[j] = base[j], base[i]
	}

	p := &Perm{}
	for i := range p {
		p[i] = base[i&(PermSize-1)]
	}
	return p
}

// Engine owns one permutation table. It is immutable after New and safe to
// share.
type Engine struct {
	seed int64
	perm *Perm
}

// New creates an engine for seed.
func New(seed int64) *Engine {
	return &Engine{seed: seed, perm: NewPermutation(seed)}
}

// Seed returns the seed the engine was built from.
func (e *Engine) Seed() int64 { return e.seed }

// Perm returns the engine's permutation table.
func (e *Engine) Perm() *Perm { return e.perm }

func (e *Engine) Simplex3(x, y, z float64) float64 {
	return Simplex3(x, y, z, e.perm)
}

func (e *Engine) Value3(x, y, z float64) float64 {
	return Value3(x, y, z, e.perm)
}

// FBM3 is fractal simplex noise, see FBM3.
func (e *Engine) FBM3(x, y, z float64, octaves int, persistence, lacunarity float64) float64 {
	return FBM3(x, y, z, e.perm, octaves, persistence, lacunarity)
}

// FBMValue3 is fractal value noise, see FBMValue3.
func (e *Engine) FBMValue3(x, y, z float64, octaves int, persistence, lacunarity float64) float64 {
	return FBMValue3(x, y, z, e.perm, octaves, persistence, lacunarity)
}

// FBM3 sums octaves layers of simplex noise. Each layer multiplies frequency by
// lacunarity and amplitude by persistence; the total is divided by the summed
// amplitudes so the result stays in [-1, 1] for any octave count.
func FBM3(x, y, z float64, p *Perm, octaves int, persistence, lacunarity float64) float64 {
	return fractal(Simplex3, x, y, z, p, octaves, persistence, lacunarity)
}

// FBMValue3 is FBM3 over value noise.
func FBMValue3(x, y, z float64, p *Perm, octaves int, persistence, lacunarity float64) float64 {
	return fractal(Value3, x, y, z, p, octaves, persistence, lacunarity)
}

type basis func(x, y, z float64, p *Perm) float64

func fractal(fn basis, x, y, z float64, p *Perm, octaves int, persistence, lacunarity float64) float64 {
	total := 0.0
	frequency := 1.0
	amplitude := 1.0
	norm := 0.0
	for range octaves {
		total += fn(x*frequency, y*frequency, z*frequency, p) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return clamp(total/norm, -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
