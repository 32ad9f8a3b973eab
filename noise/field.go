// Package noise synthesizes deterministic scalar fields for terrain brushes.
//
// A field is built from one base function (Perlin, OpenSimplex, Worley...)
// optionally combined over several octaves by a fractal combinator (Fbm,
// Billow, RidgedMulti...). An Algorithm names such a pairing; Build turns an
// Algorithm plus seed, octave count and frequency into an Evaluator.
package noise

// Field is a two dimensional field of values, using 64 bit floats.
type Field interface {
	Eval2(x, y float64) float64
}

// Field3 is a field that can also be evaluated in three dimensions.
type Field3 interface {
	Field
	Eval3(x, y, z float64) float64
}

// NewScale scales a field along every axis, stretching or shrinking it.
func NewScale(source Field3, scale float64) Scale {
	return Scale{source: source, scale: scale}
}

// Scale is a field whose input coordinates have been multiplied.
type Scale struct {
	source Field3
	scale  float64
}

// Eval2 gives the value at a coordinate.
func (s Scale) Eval2(x, y float64) float64 {
	return s.source.Eval2(x*s.scale, y*s.scale)
}

// Eval3 gives the value at a coordinate.
func (s Scale) Eval3(x, y, z float64) float64 {
	return s.source.Eval3(x*s.scale, y*s.scale, z*s.scale)
}

// NewAmplify returns a field where every value is multiplied by a value.
func NewAmplify(source Field3, value float64) Amplify {
	return Amplify{source: source, value: value}
}

// Amplify multiplies the magnitude of the value at every coordinate.
type Amplify struct {
	source Field3
	value  float64
}

// Eval2 gives the value at a coordinate.
func (a Amplify) Eval2(x, y float64) float64 {
	return a.value * a.source.Eval2(x, y)
}

// Eval3 gives the value at a coordinate.
func (a Amplify) Eval3(x, y, z float64) float64 {
	return a.value * a.source.Eval3(x, y, z)
}

// Sum is a field where each value is the sum of the values of other fields.
type Sum []Field3

// Eval2 gives the value at a coordinate.
func (s Sum) Eval2(x, y float64) float64 {
	var z float64
	for i := 0; i < len(s); i++ {
		z += s[i].Eval2(x, y)
	}
	return z
}

// Eval3 gives the value at a coordinate.
func (s Sum) Eval3(x, y, z float64) float64 {
	var w float64
	for i := 0; i < len(s); i++ {
		w += s[i].Eval3(x, y, z)
	}
	return w
}
