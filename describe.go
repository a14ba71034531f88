package diffcolors

import (
	"fmt"
	"strings"
)

// Entry is one name/hex pair from the brand table.
type Entry struct {
	Name string
	Hex  string
}

// Describe returns every brand color sorted by name.
func Describe() []Entry {
	names := Names()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name, Hex: brandColors[name]})
	}
	return entries
}

// Tooltip returns a brief usage guide listing the available color names and
// hex codes, meant to be printed to a console as-is.
func Tooltip() string {
	var table strings.Builder
	for _, e := range Describe() {
		fmt.Fprintf(&table, "  %-12s %s\n", e.Name, e.Hex)
	}

	var b strings.Builder
	b.WriteString("Differential Bio color helper\n")
	b.WriteString("\n")
	b.WriteString("Color names and hex codes\n")
	b.WriteString("-------------------------\n")
	b.WriteString("\n")
	b.WriteString(table.String())
	b.WriteString("\n")
	b.WriteString(`Usage patterns
--------------

1. Categorical plots (lines, bars, scatter)
   hexes, err := diffcolors.Palette()                  // default order
   hexes, err := diffcolors.Palette("Orange", "Blue", "Forest Green")

2. Sequential / continuous maps
   spec, err := diffcolors.Gradient("Orange", diffcolors.VariantLight, 0, "", false)
   cm, err := cmap.FromSpec(spec)                      // white to orange

   Variants:
     - light : white to base
     - dark  : base to Almost Black
     - full  : white to base to Almost Black

3. Registered colormaps (optional)
   cmap.RegisterAll()
   cm, ok := cmap.Lookup("diff_Orange_full")

Tip: spelling matters - use the names exactly as listed above.
`)
	return b.String()
}
