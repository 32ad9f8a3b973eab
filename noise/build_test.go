package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var samplePoints = [][2]float64{
	{0.5, 0.5},
	{1.25, -3.75},
	{-17.3, 42.1},
	{99.9, -0.01},
	{-64.5, -64.5},
}

func TestBuildDeterministic(t *testing.T) {
	for _, a := range All() {
		t.Run(a.String(), func(t *testing.T) {
			e1 := Build(a, 7, 4, 0.5)
			e2 := Build(a, 7, 4, 0.5)
			for _, pt := range samplePoints {
				v := e1.Sample(0.3, pt[0], pt[1])
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "finite at %v", pt)
				assert.Equal(t, v, e1.Sample(0.3, pt[0], pt[1]), "repeat call at %v", pt)
				assert.Equal(t, v, e2.Sample(0.3, pt[0], pt[1]), "rebuilt at %v", pt)

				v3 := e1.Sample3(0.3, pt[0], 2.5, pt[1])
				assert.False(t, math.IsNaN(v3) || math.IsInf(v3, 0), "finite 3d at %v", pt)
				assert.Equal(t, v3, e2.Sample3(0.3, pt[0], 2.5, pt[1]))
			}
		})
	}
}

func TestBuildSeedsDiffer(t *testing.T) {
	for _, b := range Bases() {
		t.Run(b.String(), func(t *testing.T) {
			a := Algorithm{Base: b}
			e1, e2 := Build(a, 1, 0, 0), Build(a, 2, 0, 0)
			differ := false
			for _, pt := range samplePoints {
				if e1.Sample(1, pt[0], pt[1]) != e2.Sample(1, pt[0], pt[1]) {
					differ = true
				}
			}
			assert.True(t, differ)
		})
	}
}

func TestBuildFallbacks(t *testing.T) {
	fbmPerlin := Algorithm{Base: Perlin, Fractal: Fbm}
	want := Build(fbmPerlin, 3, DefaultOctaves, DefaultFrequency)

	for _, tt := range []struct {
		name      string
		octaves   int
		frequency float64
	}{
		{"zero octaves", 0, DefaultFrequency},
		{"negative octaves", -4, DefaultFrequency},
		{"zero frequency", DefaultOctaves, 0},
		{"negative frequency", DefaultOctaves, -2},
		{"nan frequency", DefaultOctaves, math.NaN()},
		{"inf frequency", DefaultOctaves, math.Inf(1)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(fbmPerlin, 3, tt.octaves, tt.frequency)
			for _, pt := range samplePoints {
				assert.Equal(t, want.Sample(1, pt[0], pt[1]), got.Sample(1, pt[0], pt[1]))
			}
		})
	}

	t.Run("octave ceiling", func(t *testing.T) {
		capped := Build(fbmPerlin, 3, MaxOctaves, 1)
		over := Build(fbmPerlin, 3, 1000, 1)
		assert.Equal(t, capped.Sample(1, 0.3, 0.7), over.Sample(1, 0.3, 0.7))
	})

	t.Run("plain ignores octaves", func(t *testing.T) {
		perlin := Algorithm{Base: Perlin}
		a, b := Build(perlin, 3, 1, 0.1), Build(perlin, 3, 12, 9)
		for _, pt := range samplePoints {
			assert.Equal(t, a.Sample(1, pt[0], pt[1]), b.Sample(1, pt[0], pt[1]))
		}
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		e := Build(Algorithm{Base: 200, Fractal: 200}, 3, 0, 0)
		assert.Equal(t, Algorithm{Base: Perlin}, e.Algorithm())
		assert.Equal(t, Build(Algorithm{}, 3, 0, 0).Sample(1, 0.3, 0.7), e.Sample(1, 0.3, 0.7))
	})
}

func TestSampleScale(t *testing.T) {
	e := Build(Algorithm{Base: Simplex}, 5, 0, 0)
	assert.Equal(t, e.Field().Eval2(2.5, -1), e.Sample(0.5, 5, -2))
	assert.Equal(t, e.Field().Eval3(2.5, 1, -1), e.Sample3(0.5, 5, 2, -2))
	assert.Equal(t, 0.0, Evaluator{}.Sample(1, 3, 4))
}

func TestRidgedRange(t *testing.T) {
	e := Build(Algorithm{Base: Value, Fractal: RidgedMulti}, 9, 5, 0.25)
	for x := -20.0; x < 20; x += 0.7 {
		v := e.Sample(1, x, x*0.5)
		assert.True(t, v >= -1 && v <= 1, "ridged value %v at %v", v, x)
	}
}
