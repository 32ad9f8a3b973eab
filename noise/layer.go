package noise

// Layer describes one noise field contributing to a brush. It fully
// determines a deterministic field.
type Layer struct {
	Algorithm Algorithm
	Seed      int64

	// Scale multiplies input coordinates before sampling.
	Scale float64

	// Octaves and Frequency only apply to fractal algorithms.
	Octaves   int
	Frequency float64
}

// DefaultLayer is a six octave Perlin layer at unit scale and frequency.
func DefaultLayer() Layer {
	return Layer{
		Algorithm: Algorithm{Base: Perlin},
		Seed:      1,
		Scale:     1,
		Octaves:   DefaultOctaves,
		Frequency: DefaultFrequency,
	}
}

// Evaluator builds the layer's field.
func (l Layer) Evaluator() Evaluator {
	return Build(l.Algorithm, l.Seed, l.Octaves, l.Frequency)
}

// Sample builds the layer's field and evaluates it at a ground plane
// coordinate. Use Layers.Compile when sampling many points.
func (l Layer) Sample(x, z float64) float64 {
	return l.Evaluator().Sample(l.Scale, x, z)
}

// Layers combine by summation.
type Layers []Layer

// Sum samples every layer at a ground plane coordinate and adds the results.
func (ls Layers) Sum(x, z float64) float64 {
	return ls.Compile().Sum(x, z)
}

// Compile builds every layer's field once for repeated sampling.
func (ls Layers) Compile() Stack {
	sum := make(Sum, len(ls))
	for i, l := range ls {
		sum[i] = NewScale(l.Evaluator().Field(), l.Scale)
	}
	return Stack{sum: sum}
}

// Stack is a compiled set of layers.
type Stack struct {
	sum Sum
}

// Len returns the number of layers.
func (st Stack) Len() int { return len(st.sum) }

// Field returns the summed layers as one field. An empty stack is zero
// everywhere.
func (st Stack) Field() Field3 { return st.sum }

// Weighted returns the summed layers multiplied by weight.
func (st Stack) Weighted(weight float64) Field3 {
	return NewAmplify(st.sum, weight)
}

// Sum samples every layer at a ground plane coordinate and adds the results.
// An empty stack sums to zero.
func (st Stack) Sum(x, z float64) float64 {
	return st.sum.Eval2(x, z)
}

// Sum3 is Sum over three dimensional coordinates.
func (st Stack) Sum3(x, y, z float64) float64 {
	return st.sum.Eval3(x, y, z)
}
