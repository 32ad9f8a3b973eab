package noise

import "math"

var (
	skew2   = 0.5 * (math.Sqrt(3) - 1)
	unskew2 = (3 - math.Sqrt(3)) / 6
)

const (
	skew3   = 1.0 / 3
	unskew3 = 1.0 / 6
)

// simplex is Ken Perlin's simplex noise, following Stefan Gustavson's
// reference layout.
type simplex struct {
	p *permutation
}

func (s simplex) Eval2(x, y float64) float64 {
	t := (x + y) * skew2
	i, j := floor(x+t), floor(y+t)
	u := float64(i+j) * unskew2
	x0, y0 := x-(float64(i)-u), y-(float64(j)-u)

	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}
	x1, y1 := x0-float64(i1)+unskew2, y0-float64(j1)+unskew2
	x2, y2 := x0-1+2*unskew2, y0-1+2*unskew2

	n := s.corner2(0.5, x0, y0, s.p.hash2(i, j)) +
		s.corner2(0.5, x1, y1, s.p.hash2(i+i1, j+j1)) +
		s.corner2(0.5, x2, y2, s.p.hash2(i+1, j+1))
	return 70 * n
}

func (s simplex) corner2(r2, x, y float64, h int) float64 {
	t := r2 - x*x - y*y
	if t <= 0 {
		return 0
	}
	t *= t
	return t * t * dot2(h, x, y)
}

func (s simplex) Eval3(x, y, z float64) float64 {
	t := (x + y + z) * skew3
	i, j, k := floor(x+t), floor(y+t), floor(z+t)
	u := float64(i+j+k) * unskew3
	x0, y0, z0 := x-(float64(i)-u), y-(float64(j)-u), z-(float64(k)-u)

	var i1, j1, k1, i2, j2, k2 int
	switch {
	case x0 >= y0 && y0 >= z0:
		i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
	case x0 >= y0 && x0 >= z0:
		i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
	case x0 >= y0:
		i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
	case y0 < z0:
		i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
	case x0 < z0:
		i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
	default:
		i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
	}

	x1, y1, z1 := x0-float64(i1)+unskew3, y0-float64(j1)+unskew3, z0-float64(k1)+unskew3
	x2, y2, z2 := x0-float64(i2)+2*unskew3, y0-float64(j2)+2*unskew3, z0-float64(k2)+2*unskew3
	x3, y3, z3 := x0-1+3*unskew3, y0-1+3*unskew3, z0-1+3*unskew3

	n := s.corner3(0.6, x0, y0, z0, s.p.hash3(i, j, k)) +
		s.corner3(0.6, x1, y1, z1, s.p.hash3(i+i1, j+j1, k+k1)) +
		s.corner3(0.6, x2, y2, z2, s.p.hash3(i+i2, j+j2, k+k2)) +
		s.corner3(0.6, x3, y3, z3, s.p.hash3(i+1, j+1, k+1))
	return 32 * n
}

func (s simplex) corner3(r2, x, y, z float64, h int) float64 {
	t := r2 - x*x - y*y - z*z
	if t <= 0 {
		return 0
	}
	t *= t
	return t * t * dot3(h, x, y, z)
}

// superSimplex evaluates the simplex lattice with a wider kernel, so each
// point gathers contributions from every lattice vertex within reach rather
// than only the corners of its own simplex. The result is smoother and less
// directional than simplex.
type superSimplex struct {
	p *permutation
}

const (
	superRadius2 = 2.0 / 3
	superRadius3 = 3.0 / 4
)

func (s superSimplex) Eval2(x, y float64) float64 {
	t := (x + y) * skew2
	bi, bj := floor(x+t), floor(y+t)

	var n float64
	for dj := -1; dj <= 2; dj++ {
		for di := -1; di <= 2; di++ {
			i, j := bi+di, bj+dj
			u := float64(i+j) * unskew2
			dx, dy := x-(float64(i)-u), y-(float64(j)-u)
			a := superRadius2 - dx*dx - dy*dy
			if a <= 0 {
				continue
			}
			a *= a
			n += a * a * dot2(s.p.hash2(i, j), dx, dy)
		}
	}
	return 18 * n
}

func (s superSimplex) Eval3(x, y, z float64) float64 {
	t := (x + y + z) * skew3
	bi, bj, bk := floor(x+t), floor(y+t), floor(z+t)

	var n float64
	for dk := -1; dk <= 2; dk++ {
		for dj := -1; dj <= 2; dj++ {
			for di := -1; di <= 2; di++ {
				i, j, k := bi+di, bj+dj, bk+dk
				u := float64(i+j+k) * unskew3
				dx, dy, dz := x-(float64(i)-u), y-(float64(j)-u), z-(float64(k)-u)
				a := superRadius3 - dx*dx - dy*dy - dz*dz
				if a <= 0 {
					continue
				}
				a *= a
				n += a * a * dot3(s.p.hash3(i, j, k), dx, dy, dz)
			}
		}
	}
	return 9 * n
}
