package internal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/plot/palette"
)

const swatchWidth = 3

// swatch returns one colored terminal block for a hex code.
func swatch(hex string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render(strings.Repeat(" ", swatchWidth))
}

// SwatchStrip renders the hex codes as a single line of colored terminal
// blocks. With NO_COLOR set it returns "".
func SwatchStrip(hexes []string) string {
	if NO_COLOR || len(hexes) == 0 {
		return ""
	}
	return strings.Join(MapFunc[[]string, []string](swatch, hexes), "")
}

// GradientBar renders a colormap as a width-cell terminal bar by sampling it
// evenly across its range. With NO_COLOR set it returns "".
func GradientBar(cm palette.ColorMap, width int) string {
	if NO_COLOR || width < 2 {
		return ""
	}
	var bar strings.Builder
	for i := 0; i < width; i++ {
		v := cm.Min() + (cm.Max()-cm.Min())*float64(i)/float64(width-1)
		if v > cm.Max() {
			v = cm.Max()
		}
		c, err := cm.At(v)
		if err != nil {
			return ""
		}
		r, g, b, _ := c.RGBA()
		hex := fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8)
		bar.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(" "))
	}
	return bar.String()
}
