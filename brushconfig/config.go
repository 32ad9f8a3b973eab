// Package brushconfig loads brush presets from YAML documents such as:
//
//	policy: immediate-release
//	radius: 2.5
//	color:
//	  noise:
//	    weight: 0.8
//	    base: {hsluv: [120, 80, 40]}
//	    layers:
//	      - algorithm: RidgedMultiSimplex
//	        scale: 0.05
//
// A preset holds exactly one brush, under either "height" (value, terraces
// or noise) or "color" (value, range or noise).
package brushconfig

import (
	"errors"
	"fmt"
	"io"

	"github.com/jinzhu/copier"
	"go.uber.org/multierr"
	"gopkg.in/src-d/go-billy.v4"
	"gopkg.in/yaml.v3"

	"github.com/borkshop/terrabrush/brush"
	"github.com/borkshop/terrabrush/noise"
)

// DefaultRadius is the stroke radius of presets that don't give one.
const DefaultRadius = 1.0

var (
	// ErrNoBrush is reported when a preset has no brush.
	ErrNoBrush = errors.New("preset has no brush")
	// ErrAmbiguousBrush is reported when a preset has more than one brush,
	// or a brush has more than one variant.
	ErrAmbiguousBrush = errors.New("preset has more than one brush")
	// ErrInvalid wraps any other validation problem.
	ErrInvalid = errors.New("invalid preset")
)

// invalidError marks a cause as ErrInvalid while unwrapping only to the
// cause, so multierr still counts it as one problem.
type invalidError struct{ err error }

func invalid(err error) error { return invalidError{err} }

func (e invalidError) Error() string        { return ErrInvalid.Error() + ": " + e.err.Error() }
func (e invalidError) Unwrap() error        { return e.err }
func (e invalidError) Is(target error) bool { return target == ErrInvalid }

// Document is the YAML form of a preset.
type Document struct {
	Policy string   `yaml:"policy"`
	Radius *float32 `yaml:"radius"`
	Height *Height  `yaml:"height"`
	Color  *Color   `yaml:"color"`
}

// Height brushes; exactly one field must be set.
type Height struct {
	Value    *float32     `yaml:"value"`
	Terraces []Terrace    `yaml:"terraces"`
	Noise    *HeightNoise `yaml:"noise"`
}

// Terrace is one band of a terrace brush.
type Terrace struct {
	Min   float32 `yaml:"min"`
	Max   float32 `yaml:"max"`
	Value float32 `yaml:"value"`
}

// HeightNoise scales summed noise layers into heights; Scale defaults to 1.
type HeightNoise struct {
	Layers []Layer  `yaml:"layers"`
	Scale  *float32 `yaml:"scale"`
}

// Color brushes; exactly one field must be set.
type Color struct {
	Value *ColorDef   `yaml:"value"`
	Range *ColorRange `yaml:"range"`
	Noise *ColorNoise `yaml:"noise"`
}

// ColorRange grades from AtMin to AtMax over heights Min to Max.
type ColorRange struct {
	Min   float32  `yaml:"min"`
	Max   float32  `yaml:"max"`
	AtMin ColorDef `yaml:"at_min"`
	AtMax ColorDef `yaml:"at_max"`
}

// ColorNoise paints Base with noise driven alpha; Weight defaults to 1.
type ColorNoise struct {
	Layers []Layer  `yaml:"layers"`
	Weight *float32 `yaml:"weight"`
	Base   ColorDef `yaml:"base"`
}

// Layer is a noise layer; zero fields take their value from
// noise.DefaultLayer, so a seed of 0 means the default seed.
type Layer struct {
	Algorithm string  `yaml:"algorithm" copier:"-"`
	Seed      int64   `yaml:"seed"`
	Scale     float64 `yaml:"scale"`
	Octaves   int     `yaml:"octaves"`
	Frequency float64 `yaml:"frequency"`
}

// Preset is a validated brush configuration.
type Preset struct {
	Name   string
	Radius float32

	brush     brush.Brush
	policy    brush.Policy
	hasPolicy bool
}

// Brush returns the preset's brush.
func (p Preset) Brush() brush.Brush { return p.brush }

// Policy returns the preset's policy, or the brush default if it names none.
func (p Preset) Policy() brush.Policy {
	if p.hasPolicy {
		return p.policy
	}
	return brush.DefaultPolicy(p.brush)
}

// Options returns engine options realizing the preset's policy.
func (p Preset) Options() []brush.Option {
	return []brush.Option{brush.WithPolicy(p.Policy())}
}

// Load reads and parses a preset file; the preset is named by its path.
func Load(fs billy.Filesystem, path string) (Preset, error) {
	f, err := fs.Open(path)
	if err != nil {
		return Preset{}, fmt.Errorf("loading preset %q: %w", path, err)
	}
	buf, err := io.ReadAll(f)
	err = multierr.Append(err, f.Close())
	if err != nil {
		return Preset{}, fmt.Errorf("reading preset %q: %w", path, err)
	}
	p, err := Parse(buf)
	if err != nil {
		return Preset{}, fmt.Errorf("preset %q: %w", path, err)
	}
	p.Name = path
	return p, nil
}

// Parse decodes and validates a YAML preset. Every validation problem is
// reported; use multierr.Errors to list them.
func Parse(buf []byte) (Preset, error) {
	var doc Document
	if err := yaml.Unmarshal(buf, &doc); err != nil {
		return Preset{}, invalid(err)
	}
	return doc.Preset()
}

// Preset validates the document.
func (doc Document) Preset() (Preset, error) {
	var err error
	p := Preset{Radius: DefaultRadius}

	if doc.Policy != "" {
		pol, perr := brush.ParsePolicy(doc.Policy)
		if perr != nil {
			err = multierr.Append(err, invalid(perr))
		}
		p.policy, p.hasPolicy = pol, perr == nil
	}

	if doc.Radius != nil {
		if !(*doc.Radius >= 0) {
			err = multierr.Append(err, fmt.Errorf("%w: negative radius %v", ErrInvalid, *doc.Radius))
		} else {
			p.Radius = *doc.Radius
		}
	}

	switch {
	case doc.Height != nil && doc.Color != nil:
		err = multierr.Append(err, fmt.Errorf("%w: both height and color given", ErrAmbiguousBrush))
	case doc.Height != nil:
		b, berr := doc.Height.brush()
		err = multierr.Append(err, berr)
		p.brush = b
	case doc.Color != nil:
		b, berr := doc.Color.brush()
		err = multierr.Append(err, berr)
		p.brush = b
	default:
		err = multierr.Append(err, ErrNoBrush)
	}

	if err != nil {
		return Preset{}, err
	}
	return p, nil
}

func variants(kind string, set ...bool) error {
	n := 0
	for _, s := range set {
		if s {
			n++
		}
	}
	switch n {
	case 0:
		return fmt.Errorf("%w: %s brush has no variant", ErrNoBrush, kind)
	case 1:
		return nil
	}
	return fmt.Errorf("%w: %s brush has %d variants", ErrAmbiguousBrush, kind, n)
}

func (h Height) brush() (brush.Brush, error) {
	if err := variants("height", h.Value != nil, h.Terraces != nil, h.Noise != nil); err != nil {
		return nil, err
	}
	switch {
	case h.Value != nil:
		return brush.HeightValue{Delta: *h.Value}, nil

	case h.Terraces != nil:
		var err error
		bands := make([]brush.Terrace, len(h.Terraces))
		for i, t := range h.Terraces {
			if t.Min > t.Max {
				err = multierr.Append(err, fmt.Errorf("%w: terrace %d min %v above max %v", ErrInvalid, i, t.Min, t.Max))
			}
			bands[i] = brush.Terrace{Min: t.Min, Max: t.Max, Value: t.Value}
		}
		return brush.HeightTerraces{Bands: bands}, err

	default:
		layers, err := compileLayers(h.Noise.Layers)
		b := brush.HeightNoise{Layers: layers, Scale: 1}
		if h.Noise.Scale != nil {
			b.Scale = *h.Noise.Scale
		}
		return b, err
	}
}

func (c Color) brush() (brush.Brush, error) {
	if err := variants("color", c.Value != nil, c.Range != nil, c.Noise != nil); err != nil {
		return nil, err
	}
	switch {
	case c.Value != nil:
		col, err := c.Value.Color("value")
		return brush.ColorValue{Color: col}, err

	case c.Range != nil:
		var err error
		if c.Range.Min > c.Range.Max {
			err = fmt.Errorf("%w: range min %v above max %v", ErrInvalid, c.Range.Min, c.Range.Max)
		}
		atMin, minErr := c.Range.AtMin.Color("at_min")
		atMax, maxErr := c.Range.AtMax.Color("at_max")
		return brush.ColorRange{
			Min: c.Range.Min, Max: c.Range.Max,
			AtMin: atMin, AtMax: atMax,
		}, multierr.Combine(err, minErr, maxErr)

	default:
		layers, err := compileLayers(c.Noise.Layers)
		base, baseErr := c.Noise.Base.Color("base")
		b := brush.ColorNoise{Layers: layers, Weight: 1, Base: base}
		if c.Noise.Weight != nil {
			b.Weight = *c.Noise.Weight
		}
		return b, multierr.Append(err, baseErr)
	}
}

func compileLayers(ls []Layer) (noise.Layers, error) {
	var err error
	out := make(noise.Layers, len(ls))
	for i, l := range ls {
		nl, lerr := l.Layer()
		if lerr != nil {
			err = multierr.Append(err, fmt.Errorf("layer %d: %w", i, lerr))
		}
		out[i] = nl
	}
	return out, err
}

// Layer resolves the layer over noise.DefaultLayer.
func (l Layer) Layer() (noise.Layer, error) {
	nl := noise.DefaultLayer()
	if err := copier.CopyWithOption(&nl, &l, copier.Option{IgnoreEmpty: true}); err != nil {
		return nl, err
	}
	if l.Algorithm != "" {
		alg, err := noise.ParseAlgorithm(l.Algorithm)
		if err != nil {
			return nl, invalid(err)
		}
		nl.Algorithm = alg
	}
	if nl.Octaves < 0 || nl.Octaves > noise.MaxOctaves {
		return nl, fmt.Errorf("%w: octaves %d out of range [1, %d]", ErrInvalid, nl.Octaves, noise.MaxOctaves)
	}
	return nl, nil
}
