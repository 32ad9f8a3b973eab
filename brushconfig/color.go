package brushconfig

import (
	"fmt"

	"github.com/hsluv/hsluv-go"
	"go.uber.org/multierr"

	"github.com/borkshop/terrabrush/terrain"
)

// ColorDef gives a color either as RGBA channels in [0, 1], with alpha
// optional, or as HSLuv hue [0, 360], saturation and lightness [0, 100].
// Alpha defaults to 1.
type ColorDef struct {
	RGBA  []float32 `yaml:"rgba"`
	HSLuv []float64 `yaml:"hsluv"`
	Alpha *float32  `yaml:"alpha"`
}

// Color resolves the definition. Channels outside [0, 1] are reported but
// still returned as given.
func (cs ColorDef) Color(name string) (terrain.Color, error) {
	c := terrain.Color{0, 0, 0, 1}
	switch {
	case cs.RGBA != nil && cs.HSLuv != nil:
		return c, fmt.Errorf("%w: %s has both rgba and hsluv", ErrInvalid, name)

	case cs.RGBA != nil:
		if n := len(cs.RGBA); n != 3 && n != 4 {
			return c, fmt.Errorf("%w: %s rgba needs 3 or 4 channels, got %d", ErrInvalid, name, n)
		}
		copy(c[:], cs.RGBA)

	case cs.HSLuv != nil:
		if len(cs.HSLuv) != 3 {
			return c, fmt.Errorf("%w: %s hsluv needs 3 components, got %d", ErrInvalid, name, len(cs.HSLuv))
		}
		h, s, l := cs.HSLuv[0], cs.HSLuv[1], cs.HSLuv[2]
		if h < 0 || h > 360 || s < 0 || s > 100 || l < 0 || l > 100 {
			return c, fmt.Errorf("%w: %s hsluv %v out of range", ErrInvalid, name, cs.HSLuv)
		}
		r, g, b := hsluv.HsluvToRGB(h, s, l)
		c[0], c[1], c[2] = float32(r), float32(g), float32(b)
		c = c.Clamp()

	default:
		return c, fmt.Errorf("%w: %s has no color", ErrInvalid, name)
	}

	if cs.Alpha != nil {
		if len(cs.RGBA) == 4 {
			return c, fmt.Errorf("%w: %s gives alpha twice", ErrInvalid, name)
		}
		c[3] = *cs.Alpha
	}

	var err error
	for i, v := range c {
		if !(v >= 0 && v <= 1) {
			err = multierr.Append(err, fmt.Errorf("%w: %s channel %d is %v, outside [0, 1]", ErrInvalid, name, i, v))
		}
	}
	return c, err
}
