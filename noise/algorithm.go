package noise

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned when parsing a name that matches no
// Algorithm.
var ErrUnknownAlgorithm = errors.New("unknown noise algorithm")

// Base identifies a base noise function.
type Base uint8

const (
	// Perlin is classic gradient noise.
	Perlin Base = iota
	// PerlinSurflet is gradient noise summed from radially attenuated
	// surflets instead of interpolated corners.
	PerlinSurflet
	// Value interpolates random values assigned to lattice points.
	Value
	// OpenSimplex is Kurt Spencer's patent-free simplex variant.
	OpenSimplex
	// SuperSimplex is simplex lattice noise with a wider kernel.
	SuperSimplex
	// Worley is cellular noise, taking the value of the nearest feature
	// point.
	Worley
	// Simplex is Ken Perlin's simplex noise.
	Simplex

	numBases
)

var baseNames = [numBases]string{
	Perlin:        "Perlin",
	PerlinSurflet: "PerlinSurflet",
	Value:         "Value",
	OpenSimplex:   "OpenSimplex",
	SuperSimplex:  "SuperSimplex",
	Worley:        "Worley",
	Simplex:       "Simplex",
}

// older configurations abbreviate some bases
var baseAbbrevs = [numBases]string{
	SuperSimplex: "SS",
}

func (b Base) String() string {
	if b < numBases {
		return baseNames[b]
	}
	return fmt.Sprintf("Base(%d)", uint8(b))
}

// Bases returns every base function.
func Bases() []Base {
	bs := make([]Base, numBases)
	for i := range bs {
		bs[i] = Base(i)
	}
	return bs
}

// Fractal identifies a fractal combinator applied over octaves of a base.
type Fractal uint8

const (
	// Plain evaluates the base function directly, with no octaves.
	Plain Fractal = iota
	// BasicMulti is a multifractal whose octaves are weighted by the running
	// result.
	BasicMulti
	// Fbm is fractal brownian motion, a plain persistence weighted sum.
	Fbm
	// Billow sums folded octaves, giving puffy rounded features.
	Billow
	// RidgedMulti sums inverted folded octaves, giving sharp ridges.
	RidgedMulti
	// HybridMulti weights octaves by the product of the previous ones.
	HybridMulti

	numFractals
)

var fractalNames = [numFractals]string{
	Plain:       "",
	BasicMulti:  "BasicMulti",
	Fbm:         "Fbm",
	Billow:      "Billow",
	RidgedMulti: "RidgedMulti",
	HybridMulti: "HybridMulti",
}

var fractalAbbrevs = [numFractals]string{
	BasicMulti:  "BM",
	Fbm:         "FBM",
	Billow:      "B",
	RidgedMulti: "RM",
	HybridMulti: "HM",
}

func (f Fractal) String() string {
	switch {
	case f == Plain:
		return "Plain"
	case f < numFractals:
		return fractalNames[f]
	}
	return fmt.Sprintf("Fractal(%d)", uint8(f))
}

// Fractals returns every fractal combinator, excluding Plain.
func Fractals() []Fractal {
	fs := make([]Fractal, 0, numFractals-1)
	for f := Plain + 1; f < numFractals; f++ {
		fs = append(fs, f)
	}
	return fs
}

// Algorithm is a base function paired with a fractal combinator.
type Algorithm struct {
	Base    Base
	Fractal Fractal
}

// Valid returns true if both halves of the algorithm are known.
func (a Algorithm) Valid() bool {
	return a.Base < numBases && a.Fractal < numFractals
}

// String gives the canonical name, e.g. "Perlin" or "RidgedMultiWorley".
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%v, %v)", a.Base, a.Fractal)
	}
	return fractalNames[a.Fractal] + baseNames[a.Base]
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

var (
	all     []Algorithm
	byNames = make(map[string]Algorithm)
)

func init() {
	for _, b := range Bases() {
		all = append(all, Algorithm{Base: b})
	}
	for _, b := range Bases() {
		for _, f := range Fractals() {
			all = append(all, Algorithm{Base: b, Fractal: f})
		}
	}
	for _, a := range all {
		byNames[strings.ToLower(a.String())] = a
		base := baseNames[a.Base]
		if abbrev := baseAbbrevs[a.Base]; abbrev != "" && a.Fractal != Plain {
			base = abbrev
		}
		if a.Fractal != Plain {
			alias := strings.ToLower(fractalAbbrevs[a.Fractal] + base)
			if _, taken := byNames[alias]; !taken {
				byNames[alias] = a
			}
		}
	}
}

// All enumerates every supported algorithm: the plain bases first, then every
// base under every fractal combinator. The order is stable.
func All() []Algorithm {
	out := make([]Algorithm, len(all))
	copy(out, all)
	return out
}

// ParseAlgorithm resolves a name, ignoring case. Besides canonical names it
// accepts the abbreviated forms such as "FBMPerlin" or "RMSS".
func ParseAlgorithm(name string) (Algorithm, error) {
	a, ok := byNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return a, nil
}
