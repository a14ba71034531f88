package internal

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// swatchGrid adapts a color count to plotter.GridXYZ: a single row with one
// cell per color, each cell carrying its column index as the value.
type swatchGrid struct {
	cols int
}

func (g swatchGrid) Dims() (c, r int)   { return g.cols, 1 }
func (g swatchGrid) Z(c, r int) float64 { return float64(c) }
func (g swatchGrid) X(c int) float64    { return float64(c) }
func (g swatchGrid) Y(r int) float64    { return 0 }

// SavePaletteStrip renders one swatch per palette color into an image file.
func SavePaletteStrip(pal palette.Palette, title, file string) error {
	colors := pal.Colors()
	if len(colors) == 1 {
		// a one-cell grid has no value range for the heat map to bucket
		colors = append(colors, colors[0])
		pal = colorSlice(colors)
	}

	p := plot.New()
	p.Title.Text = title
	p.Add(plotter.NewHeatMap(swatchGrid{cols: len(colors)}, pal))
	p.HideAxes()

	width := font.Length(len(colors)) * vg.Inch / 2
	return p.Save(width, vg.Inch/2, file)
}

// SaveColorBar renders a colormap as a horizontal color bar with its value
// axis, the usual way to proof a continuous map.
func SaveColorBar(cm palette.ColorMap, title, file string) error {
	cm.SetMin(0)
	cm.SetMax(1)

	p := plot.New()
	p.Title.Text = title
	p.Add(&plotter.ColorBar{ColorMap: cm})
	p.HideY()
	p.X.Padding = 0

	return p.Save(6*vg.Inch, vg.Inch, file)
}

type colorSlice []color.Color

func (s colorSlice) Colors() []color.Color { return s }
