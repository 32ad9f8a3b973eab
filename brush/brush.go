// Package brush implements terrain brushes: a stroke life cycle of Started,
// Apply per frame and Done, over a vertex store and a selection tracker.
package brush

import (
	"errors"
	"fmt"
	"strings"

	"github.com/borkshop/terrabrush/noise"
	"github.com/borkshop/terrabrush/terrain"
)

// Brush is one of HeightValue, HeightTerraces, HeightNoise, ColorValue,
// ColorRange or ColorNoise. The set is closed.
type Brush interface {
	isBrush()
}

// HeightValue raises (or lowers) vertices by Delta.
type HeightValue struct {
	Delta float32
}

// Terrace flattens heights within [Min, Max] to Value.
type Terrace struct {
	Min, Max, Value float32
}

// DefaultTerrace flattens the unit band to half height.
func DefaultTerrace() Terrace {
	return Terrace{Min: 0, Max: 1, Value: 0.5}
}

// HeightTerraces snaps heights to the first band containing them.
type HeightTerraces struct {
	Bands []Terrace
}

// HeightNoise replaces heights with the sum of noise layers times Scale.
type HeightNoise struct {
	Layers noise.Layers
	Scale  float32
}

// ColorValue paints a flat color.
type ColorValue struct {
	Color terrain.Color
}

// ColorRange paints a gradient by height: AtMin at Min up to AtMax at Max.
// Vertices outside [Min, Max] keep their color.
type ColorRange struct {
	Min, Max     float32
	AtMin, AtMax terrain.Color
}

// ColorNoise paints Base's RGB with alpha from the sum of noise layers times
// Weight, clamped into [0, 1].
type ColorNoise struct {
	Layers noise.Layers
	Weight float32
	Base   terrain.Color
}

func (HeightValue) isBrush()    {}
func (HeightTerraces) isBrush() {}
func (HeightNoise) isBrush()    {}
func (ColorValue) isBrush()     {}
func (ColorRange) isBrush()     {}
func (ColorNoise) isBrush()     {}

// clone copies slices so that later edits by the caller cannot reach a
// stroke in progress.
func clone(b Brush) Brush {
	switch b := b.(type) {
	case HeightTerraces:
		b.Bands = append([]Terrace(nil), b.Bands...)
		return b
	case HeightNoise:
		b.Layers = append(noise.Layers(nil), b.Layers...)
		return b
	case ColorNoise:
		b.Layers = append(noise.Layers(nil), b.Layers...)
		return b
	}
	return b
}

// ErrUnknownPolicy is returned when parsing an unrecognized policy name.
var ErrUnknownPolicy = errors.New("unknown reselection policy")

// Policy decides what happens to a touched vertex once the brush moves off
// it.
type Policy uint8

const (
	// StrokeScoped keeps vertices marked until the stroke is done, so each
	// vertex changes at most once per stroke.
	StrokeScoped Policy = iota
	// ImmediateRelease unmarks vertices as soon as they fall outside the
	// brush, so sweeping back over them applies the brush again.
	ImmediateRelease
)

var policyNames = [...]string{
	StrokeScoped:     "stroke-scoped",
	ImmediateRelease: "immediate-release",
}

func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// ParsePolicy resolves a policy name, ignoring case.
func ParsePolicy(name string) (Policy, error) {
	for p, n := range policyNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Policy(p), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// DefaultPolicy is StrokeScoped for height brushes and ImmediateRelease for
// color brushes.
func DefaultPolicy(b Brush) Policy {
	switch b.(type) {
	case ColorValue, ColorRange, ColorNoise:
		return ImmediateRelease
	}
	return StrokeScoped
}
