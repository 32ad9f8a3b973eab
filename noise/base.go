package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// newBase constructs the base function for a seed. Unknown bases fall back to
// Perlin.
func newBase(b Base, seed int64) Field3 {
	switch b {
	case PerlinSurflet:
		return surflet{newPermutation(seed)}
	case Value:
		return value{newPermutation(seed)}
	case OpenSimplex:
		return opensimplex.New(seed)
	case SuperSimplex:
		return superSimplex{newPermutation(seed)}
	case Worley:
		return worley{newPermutation(seed)}
	case Simplex:
		return simplex{newPermutation(seed)}
	default:
		return newPerlin(seed)
	}
}

// perlinField adapts a single octave of go-perlin.
type perlinField struct {
	p *perlin.Perlin
}

func newPerlin(seed int64) perlinField {
	// alpha and beta only matter past the first octave; octaves are the
	// business of the fractal combinators here.
	return perlinField{perlin.NewPerlin(2, 2, 1, seed)}
}

func (f perlinField) Eval2(x, y float64) float64 {
	return f.p.Noise2D(x, y)
}

func (f perlinField) Eval3(x, y, z float64) float64 {
	return f.p.Noise3D(x, y, z)
}
