// Package diffcolors provides the Differential Bio brand color palette for
// data visualization: ordered categorical palettes for lines, bars and
// markers, and two- or three-stop gradient specs that a renderer (see the
// cmap subpackage) interpolates into continuous colormaps.
//
// The name to hex mapping and the default ordering are fixed at compile time
// and never mutated, so every function here is safe for concurrent use
// without locking.
package diffcolors

import "sort"

// brandColors is the fixed name to hex mapping. Nothing in this package or
// outside it may write to this map after init.
var brandColors = map[string]string{
	// core neutrals
	"White":        "#FFFFFF",
	"Grey":         "#727272",
	"Almost Black": "#1E1E1E",

	// accent trio
	"Orange": "#FA693A",
	"Red":    "#891D1A",
	"Lime":   "#70F676",

	// extended palette
	"Blush":        "#EAD6CF",
	"Cream":        "#EADFCD",
	"Forest Green": "#304937",
	"Mint":         "#D9EAD3",
	"Cloud":        "#FCFCF8",
	"Peach":        "#FBD2AE",
	"Soft Serve":   "#FFFAF6",
	"Midnight":     "#011F2E",
	"Blue":         "#ABC9DB",
	"Baby Blue":    "#EEF9FF",
	"Plum":         "#362B40",
	"Haze":         "#5B5776",
	"Lavendar":     "#D6D4E1",
}

// defaultOrder is the built-in categorical ordering, a mix of contrast and
// brand feel chosen by the design team. Every brand color appears exactly
// once.
var defaultOrder = []string{
	"Orange",
	"Forest Green",
	"Blue",
	"Red",
	"Peach",
	"Plum",
	"Mint",
	"Haze",
	"Cream",
	"Baby Blue",
	"Blush",
	"Lime",
	"Midnight",
	"Cloud",
	"Soft Serve",
	"Lavendar",
	"Grey",
	"Almost Black",
	"White",
}

// Anchor names used when assembling gradients.
const (
	lightAnchor = "White"
	darkAnchor  = "Almost Black"
)

// Names returns all brand color names in sorted order.
func Names() []string {
	names := make([]string, 0, len(brandColors))
	for name := range brandColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultOrder returns a copy of the default categorical ordering.
func DefaultOrder() []string {
	order := make([]string, len(defaultOrder))
	copy(order, defaultOrder)
	return order
}

// Hex resolves a brand color name to its "#RRGGBB" code. Unknown names
// return an *UnknownColorNameError.
func Hex(name string) (string, error) {
	hex, ok := brandColors[name]
	if !ok {
		return "", &UnknownColorNameError{Name: name, Valid: Names()}
	}
	return hex, nil
}
