package noise

import "math"

// Evaluator samples a built noise field. It holds no mutable state, so one
// Evaluator may be shared freely, including across goroutines.
type Evaluator struct {
	alg   Algorithm
	field Field3
}

// Build constructs the field for an algorithm.
//
// Octave count and frequency only apply to fractal combinators. An octave
// count below one falls back to DefaultOctaves and one above MaxOctaves is
// clamped; a frequency that is not a positive finite number falls back to
// DefaultFrequency. An unknown base is built as Perlin, an unknown fractal as
// Plain.
func Build(alg Algorithm, seed int64, octaveCount int, frequency float64) Evaluator {
	if alg.Base >= numBases {
		alg.Base = Perlin
	}
	if alg.Fractal >= numFractals {
		alg.Fractal = Plain
	}
	if alg.Fractal == Plain {
		return Evaluator{alg: alg, field: newBase(alg.Base, seed)}
	}

	switch {
	case octaveCount < 1:
		octaveCount = DefaultOctaves
	case octaveCount > MaxOctaves:
		octaveCount = MaxOctaves
	}
	if !(frequency > 0) || math.IsInf(frequency, 0) {
		frequency = DefaultFrequency
	}

	sources := make([]Field3, octaveCount)
	for i := range sources {
		sources[i] = newBase(alg.Base, seed+int64(i))
	}
	oct := newOctaves(sources, frequency)

	var field Field3
	switch alg.Fractal {
	case BasicMulti:
		field = basicMulti{oct}
	case Billow:
		field = billow{oct}
	case RidgedMulti:
		field = ridgedMulti{oct}
	case HybridMulti:
		field = hybridMulti{oct}
	default:
		field = fbm{oct}
	}
	return Evaluator{alg: alg, field: field}
}

// Algorithm returns the algorithm the evaluator was built for, after any
// fallback.
func (e Evaluator) Algorithm() Algorithm { return e.alg }

// Field exposes the underlying field, e.g. for composing with Scale or Sum.
func (e Evaluator) Field() Field3 { return e.field }

// Sample evaluates the field at (x*scale, z*scale). The zero Evaluator
// samples as zero everywhere.
func (e Evaluator) Sample(scale, x, z float64) float64 {
	if e.field == nil {
		return 0
	}
	return e.field.Eval2(x*scale, z*scale)
}

// Sample3 evaluates the field at (x*scale, y*scale, z*scale).
func (e Evaluator) Sample3(scale, x, y, z float64) float64 {
	if e.field == nil {
		return 0
	}
	return e.field.Eval3(x*scale, y*scale, z*scale)
}
