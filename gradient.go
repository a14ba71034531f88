package diffcolors

import (
	"fmt"
	"slices"
)

// Variant selects the stop composition of a gradient built from one base
// color.
type Variant string

const (
	// VariantLight runs white to base.
	VariantLight Variant = "light"
	// VariantDark runs base to Almost Black.
	VariantDark Variant = "dark"
	// VariantFull runs white to base to Almost Black.
	VariantFull Variant = "full"
)

// Variants returns the accepted gradient variants.
func Variants() []Variant {
	return []Variant{VariantLight, VariantDark, VariantFull}
}

// DefaultLevels is the number of discrete levels a renderer materializes
// from a gradient spec when the caller does not choose one.
const DefaultLevels = 256

// GradientSpec describes a continuous colormap as plain data: ordered hex
// stops to interpolate between, a level count and the registry name. A
// renderer such as cmap.FromSpec turns it into an actual colormap.
type GradientSpec struct {
	Name     string
	Base     string
	Variant  Variant
	Stops    []string
	Levels   int
	Reversed bool
}

// Gradient assembles the gradient spec for a single brand color.
//
// levels <= 0 selects DefaultLevels. An empty name generates
// "diff_<Base>_<variant>", with "_r" appended when reversed. Reversal flips
// the assembled stops, so a reversed full gradient runs Almost Black to base
// to white.
func Gradient(base string, variant Variant, levels int, name string, reverse bool) (GradientSpec, error) {
	baseHex, ok := brandColors[base]
	if !ok {
		return GradientSpec{}, &UnknownColorNameError{Name: base, Valid: Names()}
	}

	white := brandColors[lightAnchor]
	almostBlack := brandColors[darkAnchor]

	var stops []string
	switch variant {
	case VariantLight:
		stops = []string{white, baseHex}
	case VariantDark:
		stops = []string{baseHex, almostBlack}
	case VariantFull:
		stops = []string{white, baseHex, almostBlack}
	default:
		return GradientSpec{}, &InvalidVariantError{Variant: variant}
	}

	if reverse {
		slices.Reverse(stops)
	}
	if levels <= 0 {
		levels = DefaultLevels
	}
	if name == "" {
		name = fmt.Sprintf("diff_%s_%s", base, variant)
		if reverse {
			name += "_r"
		}
	}

	return GradientSpec{
		Name:     name,
		Base:     base,
		Variant:  variant,
		Stops:    stops,
		Levels:   levels,
		Reversed: reverse,
	}, nil
}
