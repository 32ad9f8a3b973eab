package noise

import "math"

// permutation is a seeded shuffle of 0-255, doubled so that chained lookups
// never need to wrap.
type permutation [512]uint8

func newPermutation(seed int64) *permutation {
	var p permutation
	for i := 0; i < 256; i++ {
		p[i] = uint8(i)
	}
	rng := newXorshiftstar(seed)
	for i := 255; i > 0; i-- {
		j := int(rng.next() % uint64(i+1))
		p[i], p[j] = p[j], p[i]
	}
	copy(p[256:], p[:256])
	return &p
}

func (p *permutation) hash2(i, j int) int {
	return int(p[int(p[i&0xff])+j&0xff])
}

func (p *permutation) hash3(i, j, k int) int {
	return int(p[int(p[int(p[i&0xff])+j&0xff])+k&0xff])
}

// xorshiftstar is the xorshift* generator; it only shuffles lattice tables
// so that they depend on nothing but the seed.
type xorshiftstar struct {
	state uint64
}

func newXorshiftstar(seed int64) *xorshiftstar {
	state := uint64(seed)*0x9e3779b97f4a7c15 + 1442695040888963407
	if state == 0 {
		state = 1
	}
	return &xorshiftstar{state: state}
}

func (r *xorshiftstar) next() uint64 {
	state := r.state
	state ^= state >> 12
	state ^= state << 25
	state ^= state >> 27
	r.state = state
	return state * 2685821657736338717
}

// grad3 are the edge midpoints of a cube; the first two components double as
// 2-D gradients.
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

func dot2(h int, x, y float64) float64 {
	g := &grad3[h%12]
	return g[0]*x + g[1]*y
}

func dot3(h int, x, y, z float64) float64 {
	g := &grad3[h%12]
	return g[0]*x + g[1]*y + g[2]*z
}

func floor(x float64) int {
	return int(math.Floor(x))
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3 easing curve.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
