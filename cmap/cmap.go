// Package cmap turns diffcolors palette and gradient specs into colormaps
// usable with gonum/plot, and keeps a registry of them by name. It fills the
// renderer role the root package's gradient specs are written against.
package cmap

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/differential-bio/diffcolors"
	"gonum.org/v1/plot/palette"
)

// Gradient is a continuous colormap that linearly interpolates between the
// evenly spaced stops of a gradient spec. It implements palette.ColorMap.
type Gradient struct {
	name   string
	stops  []color.RGBA
	levels int
	min    float64
	max    float64
	alpha  float64
}

var _ palette.ColorMap = (*Gradient)(nil)

// FromSpec builds the colormap described by spec. The returned map spans
// [0, 1] until SetMin and SetMax say otherwise.
func FromSpec(spec diffcolors.GradientSpec) (*Gradient, error) {
	if len(spec.Stops) < 2 {
		return nil, fmt.Errorf("gradient %q needs at least two stops, got %d", spec.Name, len(spec.Stops))
	}
	stops := make([]color.RGBA, len(spec.Stops))
	for i, hex := range spec.Stops {
		c, err := ParseHex(hex)
		if err != nil {
			return nil, err
		}
		stops[i] = c
	}
	levels := spec.Levels
	if levels <= 0 {
		levels = diffcolors.DefaultLevels
	}
	return &Gradient{
		name:   spec.Name,
		stops:  stops,
		levels: levels,
		min:    0,
		max:    1,
		alpha:  1,
	}, nil
}

// Name returns the name the map registers under.
func (g *Gradient) Name() string { return g.name }

// Levels returns the discrete level count a renderer materializing this map
// should use, as carried over from the spec.
func (g *Gradient) Levels() int { return g.levels }

// At returns the interpolated color for v, which must lie in [Min, Max].
func (g *Gradient) At(v float64) (color.Color, error) {
	if math.IsNaN(v) {
		return nil, palette.ErrNaN
	}
	if g.max <= g.min {
		return nil, fmt.Errorf("gradient %q has max <= min", g.name)
	}
	t := (v - g.min) / (g.max - g.min)
	if t < 0 {
		return nil, palette.ErrUnderflow
	}
	if t > 1 {
		return nil, palette.ErrOverflow
	}

	n := t * float64(len(g.stops)-1)
	ip, fr := math.Modf(n)
	i := int(ip)
	if i >= len(g.stops)-1 {
		return g.shade(g.stops[len(g.stops)-1]), nil
	}
	return g.shade(blendRGBA(g.stops[i], g.stops[i+1], fr)), nil
}

// Max returns the maximum value of the mapped range.
func (g *Gradient) Max() float64 { return g.max }

// SetMax sets the maximum value of the mapped range.
func (g *Gradient) SetMax(v float64) { g.max = v }

// Min returns the minimum value of the mapped range.
func (g *Gradient) Min() float64 { return g.min }

// SetMin sets the minimum value of the mapped range.
func (g *Gradient) SetMin(v float64) { g.min = v }

// Alpha returns the opacity applied to returned colors.
func (g *Gradient) Alpha() float64 { return g.alpha }

// SetAlpha sets the opacity applied to returned colors. It panics outside
// [0, 1].
func (g *Gradient) SetAlpha(a float64) {
	if a < 0 || a > 1 {
		panic("cmap: alpha out of range [0, 1]")
	}
	g.alpha = a
}

// Palette returns n colors sampled evenly across the mapped range. It panics
// if n < 1.
func (g *Gradient) Palette(n int) palette.Palette {
	if n < 1 {
		panic("cmap: a palette needs at least one color")
	}
	colors := make([]color.Color, n)
	if n == 1 {
		c, err := g.At(g.min + (g.max-g.min)/2)
		if err != nil {
			panic(err)
		}
		colors[0] = c
		return colorList(colors)
	}
	for i := range colors {
		v := g.min + (g.max-g.min)*float64(i)/float64(n-1)
		if v > g.max {
			// float error at the top of the range
			v = g.max
		}
		c, err := g.At(v)
		if err != nil {
			panic(err)
		}
		colors[i] = c
	}
	return colorList(colors)
}

// shade applies the map's alpha to an interpolated stop color.
func (g *Gradient) shade(c color.RGBA) color.Color {
	if g.alpha == 1 {
		return c
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(g.alpha*255 + 0.5)}
}

// blendRGBA linearly interpolates a and b in sRGB space, x being the
// fraction of b.
func blendRGBA(a, b color.RGBA, x float64) color.RGBA {
	blend8 := func(a, b uint8) uint8 {
		c := float64(a)*(1-x) + float64(b)*x
		if c <= 0 {
			return 0
		}
		if c >= 255 {
			return 255
		}
		return uint8(c)
	}
	return color.RGBA{
		R: blend8(a.R, b.R),
		G: blend8(a.G, b.G),
		B: blend8(a.B, b.B),
		A: 255,
	}
}

// colorList implements palette.Palette over a fixed slice.
type colorList []color.Color

func (l colorList) Colors() []color.Color { return l }

// Listed is a discrete colormap over an explicit color sequence, for
// categorical heatmaps and legends. It implements palette.Palette.
type Listed struct {
	name   string
	colors []color.Color
}

var _ palette.Palette = (*Listed)(nil)

// DefaultListedName names listed palettes built without an explicit name.
const DefaultListedName = "differential_listed"

// NewListed resolves brand color names into a listed palette, in the given
// order. No names means the default categorical ordering, an empty name
// means DefaultListedName.
func NewListed(name string, names ...string) (*Listed, error) {
	hexes, err := diffcolors.DiscretePalette(names...)
	if err != nil {
		return nil, err
	}
	colors := make([]color.Color, len(hexes))
	for i, hex := range hexes {
		c, err := ParseHex(hex)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	if name == "" {
		name = DefaultListedName
	}
	return &Listed{name: name, colors: colors}, nil
}

// Name returns the palette's name.
func (l *Listed) Name() string { return l.name }

// Colors implements palette.Palette.
func (l *Listed) Colors() []color.Color { return l.colors }

// Len returns the number of colors in the palette.
func (l *Listed) Len() int { return len(l.colors) }

// ParseHex parses a "#RRGGBB" code into an opaque color.
func ParseHex(hex string) (color.RGBA, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{}, fmt.Errorf("malformed hex code %q", hex)
	}
	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("malformed hex code %q", hex)
		}
		channels[i] = uint8(v)
	}
	return color.RGBA{R: channels[0], G: channels[1], B: channels[2], A: 0xFF}, nil
}
