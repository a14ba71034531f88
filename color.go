package diffcolors

import "image/color"

// Color pairs a brand color name with its hex code. It satisfies
// image/color.Color so brand colors can be handed directly to drawing code.
type Color struct {
	Name string
	Hex  string
}

// Lookup returns the Color for a brand color name.
func Lookup(name string) (Color, error) {
	hex, err := Hex(name)
	if err != nil {
		return Color{}, err
	}
	return Color{Name: name, Hex: hex}, nil
}

// RGBA implements color.Color. The hex code is expanded to 16-bit
// alpha-premultiplied channels with full opacity. A malformed hex code
// yields opaque black.
func (c Color) RGBA() (r, g, b, a uint32) {
	s := c.Hex
	if len(s) == 7 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return 0, 0, 0, 0xFFFF
	}
	nibble := func(b byte) (uint32, bool) {
		switch {
		case b >= '0' && b <= '9':
			return uint32(b - '0'), true
		case b >= 'a' && b <= 'f':
			return uint32(b-'a') + 10, true
		case b >= 'A' && b <= 'F':
			return uint32(b-'A') + 10, true
		}
		return 0, false
	}
	channel := func(hi, lo byte) (uint32, bool) {
		h, ok1 := nibble(hi)
		l, ok2 := nibble(lo)
		if !ok1 || !ok2 {
			return 0, false
		}
		// expand 8-bit to 16-bit, 0xFF -> 0xFFFF
		return (h<<4 | l) * 0x101, true
	}
	var ok [3]bool
	r, ok[0] = channel(s[0], s[1])
	g, ok[1] = channel(s[2], s[3])
	b, ok[2] = channel(s[4], s[5])
	if !ok[0] || !ok[1] || !ok[2] {
		return 0, 0, 0, 0xFFFF
	}
	return r, g, b, 0xFFFF
}

var _ color.Color = Color{}
