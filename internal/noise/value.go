package noise

import "math"

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// lattice maps an integer lattice point to [0, 1] through the permutation table.
func lattice(x, y, z int64, p *Perm) float64 {
	h := p[int(x&255)+int(p[int(y&255)+int(p[z&255])])]
	return float64(h) / 255
}

// Value3 returns trilinearly interpolated value noise at (x, y, z) in [-1, 1].
func Value3(x, y, z float64, p *Perm) float64 {
	fx0 := math.Floor(x)
	fy0 := math.Floor(y)
	fz0 := math.Floor(z)

	u := fade(x - fx0)
	v := fade(y - fy0)
	w := fade(z - fz0)

	x0, y0, z0 := int64(fx0), int64(fy0), int64(fz0)
	x1, y1, z1 := x0+1, y0+1, z0+1

	c000 := lattice(x0, y0, z0, p)
	c100 := lattice(x1, y0, z0, p)
	c010 := lattice(x0, y1, z0, p)
	c110 := lattice(x1, y1, z0, p)
	c001 := lattice(x0, y0, z1, p)
	c101 := lattice(x1, y0, z1, p)
	c011 := lattice(x0, y1, z1, p)
	c111 := lattice(x1, y1, z1, p)

	// x, then y, then z
	i00 := lerp(c000, c100, u)
	i10 := lerp(c010, c110, u)
	i01 := lerp(c001, c101, u)
	i11 := lerp(c011, c111, u)

	i0 := lerp(i00, i10, v)
	i1 := lerp(i01, i11, v)

	return lerp(i0, i1, w)*2 - 1
}
