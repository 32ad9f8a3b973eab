package noise

import "math"

// value interpolates pseudo-random values pinned to the integer lattice.
type value struct {
	p *permutation
}

func (v value) at2(i, j int) float64 {
	return float64(v.p.hash2(i, j))/127.5 - 1
}

func (v value) at3(i, j, k int) float64 {
	return float64(v.p.hash3(i, j, k))/127.5 - 1
}

func (v value) Eval2(x, y float64) float64 {
	i, j := floor(x), floor(y)
	sx, sy := fade(x-float64(i)), fade(y-float64(j))
	a := lerp(v.at2(i, j), v.at2(i+1, j), sx)
	b := lerp(v.at2(i, j+1), v.at2(i+1, j+1), sx)
	return lerp(a, b, sy)
}

func (v value) Eval3(x, y, z float64) float64 {
	i, j, k := floor(x), floor(y), floor(z)
	sx, sy, sz := fade(x-float64(i)), fade(y-float64(j)), fade(z-float64(k))
	a := lerp(
		lerp(v.at3(i, j, k), v.at3(i+1, j, k), sx),
		lerp(v.at3(i, j+1, k), v.at3(i+1, j+1, k), sx),
		sy)
	b := lerp(
		lerp(v.at3(i, j, k+1), v.at3(i+1, j, k+1), sx),
		lerp(v.at3(i, j+1, k+1), v.at3(i+1, j+1, k+1), sx),
		sy)
	return lerp(a, b, sz)
}

// surflet sums radially attenuated gradient contributions from the corners of
// the enclosing lattice cell. A corner farther than one unit contributes
// nothing, so no interpolation across cells is needed.
type surflet struct {
	p *permutation
}

func (s surflet) Eval2(x, y float64) float64 {
	i, j := floor(x), floor(y)
	var n float64
	for dj := 0; dj <= 1; dj++ {
		for di := 0; di <= 1; di++ {
			dx, dy := x-float64(i+di), y-float64(j+dj)
			a := 1 - dx*dx - dy*dy
			if a <= 0 {
				continue
			}
			a *= a
			n += a * a * dot2(s.p.hash2(i+di, j+dj), dx, dy)
		}
	}
	return 2.2 * n
}

func (s surflet) Eval3(x, y, z float64) float64 {
	i, j, k := floor(x), floor(y), floor(z)
	var n float64
	for dk := 0; dk <= 1; dk++ {
		for dj := 0; dj <= 1; dj++ {
			for di := 0; di <= 1; di++ {
				dx, dy, dz := x-float64(i+di), y-float64(j+dj), z-float64(k+dk)
				a := 1 - dx*dx - dy*dy - dz*dz
				if a <= 0 {
					continue
				}
				a *= a
				n += a * a * dot3(s.p.hash3(i+di, j+dj, k+dk), dx, dy, dz)
			}
		}
	}
	return 2.2 * n
}

// worley is cellular noise: every lattice cell holds one feature point, and
// the field takes the value assigned to the nearest feature point, giving flat
// voronoi cells.
type worley struct {
	p *permutation
}

func (w worley) Eval2(x, y float64) float64 {
	ci, cj := floor(x), floor(y)
	best, nearest := math.Inf(1), 0
	for dj := -1; dj <= 1; dj++ {
		for di := -1; di <= 1; di++ {
			i, j := ci+di, cj+dj
			h := w.p.hash2(i, j)
			fx := float64(i) + float64(w.p[h])/256
			fy := float64(j) + float64(w.p[h+1])/256
			if d := (fx-x)*(fx-x) + (fy-y)*(fy-y); d < best {
				best, nearest = d, h
			}
		}
	}
	return float64(w.p[nearest+2])/127.5 - 1
}

func (w worley) Eval3(x, y, z float64) float64 {
	ci, cj, ck := floor(x), floor(y), floor(z)
	best, nearest := math.Inf(1), 0
	for dk := -1; dk <= 1; dk++ {
		for dj := -1; dj <= 1; dj++ {
			for di := -1; di <= 1; di++ {
				i, j, k := ci+di, cj+dj, ck+dk
				h := w.p.hash3(i, j, k)
				fx := float64(i) + float64(w.p[h])/256
				fy := float64(j) + float64(w.p[h+1])/256
				fz := float64(k) + float64(w.p[h+2])/256
				if d := (fx-x)*(fx-x) + (fy-y)*(fy-y) + (fz-z)*(fz-z); d < best {
					best, nearest = d, h
				}
			}
		}
	}
	return float64(w.p[nearest+3])/127.5 - 1
}
