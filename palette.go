package diffcolors

// Palette resolves brand color names into their hex codes, preserving the
// input order and any duplicates. Called with no names it returns the
// default categorical ordering. The first unknown name aborts the whole
// resolution with an *UnknownColorNameError.
func Palette(names ...string) ([]string, error) {
	if len(names) == 0 {
		names = defaultOrder
	}
	hexes := make([]string, 0, len(names))
	for _, name := range names {
		hex, ok := brandColors[name]
		if !ok {
			return nil, &UnknownColorNameError{Name: name, Valid: Names()}
		}
		hexes = append(hexes, hex)
	}
	return hexes, nil
}

// DiscretePalette resolves names exactly like Palette. It exists so call
// sites that feed a listed (discrete) colormap constructor, such as
// cmap.NewListed, read differently from ones that color lines or markers
// directly.
func DiscretePalette(names ...string) ([]string, error) {
	return Palette(names...)
}
