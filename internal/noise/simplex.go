package noise

import "math"

const (
	f3 = 1.0 / 3.0 // skew factor
	g3 = 1.0 / 6.0 // unskew factor
)

// Edge midpoints of a cube, the classic 12 simplex gradients.
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// Simplex3 returns 3D simplex noise at (x, y, z) in [-1, 1].
func Simplex3(x, y, z float64, p *Perm) float64 {
	// Skew into simplex space to find the containing cell.
	s := (x + y + z) * f3
	i := math.Floor(x + s)
	j := math.Floor(y + s)
	k := math.Floor(z + s)

	t := (i + j + k) * g3
	x0 := x - (i - t)
	y0 := y - (j - t)
	z0 := z - (k - t)

	// Rank the offsets to pick the two middle corners.
	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
		case x0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
		case x0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
		}
	}

	x1 := x0 - float64(i1) + g3
	y1 := y0 - float64(j1) + g3
	z1 := z0 - float64(k1) + g3

	x2 := x0 - float64(i2) + 2*g3
	y2 := y0 - float64(j2) + 2*g3
	z2 := z0 - float64(k2) + 2*g3

	x3 := x0 - 1 + 3*g3
	y3 := y0 - 1 + 3*g3
	z3 := z0 - 1 + 3*g3

	ii := int(int64(i) & 255)
	jj := int(int64(j) & 255)
	kk := int(int64(k) & 255)

	gi0 := int(p[ii+int(p[jj+int(p[kk])])]) % 12
	gi1 := int(p[ii+i1+int(p[jj+j1+int(p[kk+k1])])]) % 12
	gi2 := int(p[ii+i2+int(p[jj+j2+int(p[kk+k2])])]) % 12
	gi3 := int(p[ii+1+int(p[jj+1+int(p[kk+1])])]) % 12

	n := corner(x0, y0, z0, gi0) +
		corner(x1, y1, z1, gi1) +
		corner(x2, y2, z2, gi2) +
		corner(x3, y3, z3, gi3)

	return clamp(32*n, -1, 1)
}

func corner(x, y, z float64, gi int) float64 {
	t := 0.6 - x*x - y*y - z*z
	if t < 0 {
		return 0
	}
	t *= t
	g := grad3[gi]
	return t * t * (g[0]*x + g[1]*y + g[2]*z)
}
