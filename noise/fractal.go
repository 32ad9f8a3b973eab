package noise

import "math"

const (
	// DefaultOctaves is used whenever a non-positive octave count is given.
	DefaultOctaves = 6
	// MaxOctaves bounds the octave count.
	MaxOctaves = 32
	// DefaultFrequency is used whenever a non-positive or non-finite
	// frequency is given.
	DefaultFrequency = 1.0

	lacunarity  = 2.0
	persistence = 0.5
	attenuation = 2.0
)

// octaves is the state shared by every fractal combinator: one source per
// octave, each seeded differently so that octaves do not correlate.
type octaves struct {
	sources   []Field3
	frequency float64
	// norm rescales the persistence weighted sum back into about [-1, 1].
	norm float64
}

func newOctaves(sources []Field3, frequency float64) octaves {
	var total float64
	amp := 1.0
	for range sources {
		total += amp
		amp *= persistence
	}
	return octaves{sources: sources, frequency: frequency, norm: 1 / total}
}

// fbm is fractal brownian motion.
type fbm struct{ octaves }

func (f fbm) Eval2(x, y float64) float64 {
	x, y = x*f.frequency, y*f.frequency
	var result float64
	amp := 1.0
	for _, src := range f.sources {
		result += src.Eval2(x, y) * amp
		amp *= persistence
		x, y = x*lacunarity, y*lacunarity
	}
	return result * f.norm
}

func (f fbm) Eval3(x, y, z float64) float64 {
	x, y, z = x*f.frequency, y*f.frequency, z*f.frequency
	var result float64
	amp := 1.0
	for _, src := range f.sources {
		result += src.Eval3(x, y, z) * amp
		amp *= persistence
		x, y, z = x*lacunarity, y*lacunarity, z*lacunarity
	}
	return result * f.norm
}

// billow folds every octave about zero before summing.
type billow struct{ octaves }

func (b billow) Eval2(x, y float64) float64 {
	x, y = x*b.frequency, y*b.frequency
	var result float64
	amp := 1.0
	for _, src := range b.sources {
		result += (2*math.Abs(src.Eval2(x, y)) - 1) * amp
		amp *= persistence
		x, y = x*lacunarity, y*lacunarity
	}
	return result * b.norm
}

func (b billow) Eval3(x, y, z float64) float64 {
	x, y, z = x*b.frequency, y*b.frequency, z*b.frequency
	var result float64
	amp := 1.0
	for _, src := range b.sources {
		result += (2*math.Abs(src.Eval3(x, y, z)) - 1) * amp
		amp *= persistence
		x, y, z = x*lacunarity, y*lacunarity, z*lacunarity
	}
	return result * b.norm
}

// basicMulti scales each octave past the first by the running result, so
// detail gathers where the field is already high.
type basicMulti struct{ octaves }

func (m basicMulti) Eval2(x, y float64) float64 {
	x, y = x*m.frequency, y*m.frequency
	result := m.sources[0].Eval2(x, y)
	amp := 1.0
	for _, src := range m.sources[1:] {
		x, y = x*lacunarity, y*lacunarity
		amp *= persistence
		result += src.Eval2(x, y) * amp * result
	}
	return clamp(result, -1, 1)
}

func (m basicMulti) Eval3(x, y, z float64) float64 {
	x, y, z = x*m.frequency, y*m.frequency, z*m.frequency
	result := m.sources[0].Eval3(x, y, z)
	amp := 1.0
	for _, src := range m.sources[1:] {
		x, y, z = x*lacunarity, y*lacunarity, z*lacunarity
		amp *= persistence
		result += src.Eval3(x, y, z) * amp * result
	}
	return clamp(result, -1, 1)
}

// hybridMulti weights each octave by the clamped product of the previous
// octaves, smoothing valleys while keeping peaks rough.
type hybridMulti struct{ octaves }

func (m hybridMulti) Eval2(x, y float64) float64 {
	x, y = x*m.frequency, y*m.frequency
	result := m.sources[0].Eval2(x, y)
	weight := result
	amp := 1.0
	for _, src := range m.sources[1:] {
		x, y = x*lacunarity, y*lacunarity
		amp *= persistence
		weight = clamp(weight, 0, 1)
		signal := src.Eval2(x, y) * amp
		result += weight * signal
		weight *= signal
	}
	return result * m.norm * 2
}

func (m hybridMulti) Eval3(x, y, z float64) float64 {
	x, y, z = x*m.frequency, y*m.frequency, z*m.frequency
	result := m.sources[0].Eval3(x, y, z)
	weight := result
	amp := 1.0
	for _, src := range m.sources[1:] {
		x, y, z = x*lacunarity, y*lacunarity, z*lacunarity
		amp *= persistence
		weight = clamp(weight, 0, 1)
		signal := src.Eval3(x, y, z) * amp
		result += weight * signal
		weight *= signal
	}
	return result * m.norm * 2
}

// ridgedMulti inverts folded octaves into ridges; each octave is weighted by
// the one before it so ridges sharpen rather than blur.
type ridgedMulti struct{ octaves }

func (m ridgedMulti) Eval2(x, y float64) float64 {
	x, y = x*m.frequency, y*m.frequency
	var result float64
	weight, amp := 1.0, 1.0
	for _, src := range m.sources {
		signal := 1 - math.Abs(src.Eval2(x, y))
		signal *= signal * weight
		weight = clamp(signal*attenuation, 0, 1)
		result += signal * amp
		amp *= persistence
		x, y = x*lacunarity, y*lacunarity
	}
	return result*m.norm*2 - 1
}

func (m ridgedMulti) Eval3(x, y, z float64) float64 {
	x, y, z = x*m.frequency, y*m.frequency, z*m.frequency
	var result float64
	weight, amp := 1.0, 1.0
	for _, src := range m.sources {
		signal := 1 - math.Abs(src.Eval3(x, y, z))
		signal *= signal * weight
		weight = clamp(signal*attenuation, 0, 1)
		result += signal * amp
		amp *= persistence
		x, y, z = x*lacunarity, y*lacunarity, z*lacunarity
	}
	return result*m.norm*2 - 1
}
