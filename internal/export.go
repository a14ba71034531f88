package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// ListingEntry is one color row of a palette listing.
type ListingEntry struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Listing is the palette summary shown on the console and written by the
// export formats.
type Listing struct {
	Title   string         `json:"title"`
	Entries []ListingEntry `json:"colors"`
}

// NewListing pairs color names with their resolved hex codes.
func NewListing(title string, names, hexes []string) *Listing {
	if len(names) != len(hexes) {
		// both slices come from the same resolution, ok to panic
		panic(fmt.Sprintf("listing with %d names but %d hex codes", len(names), len(hexes)))
	}
	entries := make([]ListingEntry, len(names))
	for i := range names {
		entries[i] = ListingEntry{Name: names[i], Hex: hexes[i]}
	}
	return &Listing{Title: title, Entries: entries}
}

// Underline returns a dashed rule as long as the title, for the text views.
func (listing *Listing) Underline() string {
	return strings.Repeat("-", len(listing.Title))
}

var listingNoColor = `
{{ .Title }}
{{ .Underline }}

{{ range .Entries }}{{ printf "%-12s" .Name }} {{ .Hex }}
{{ end }}`

var listingColor = `
${cyan}{{ .Title }} ${reset}
${cyan}{{ .Underline }} ${reset}

{{ range .Entries }}${yellow}{{ printf "%-12s" .Name }} ${green}{{ .Hex }} ${reset}
{{ end }}`

// Consolify prints the palette listing to the console, with color codes.
func (listing *Listing) Consolify() {
	// * listing text
	text := format(listingColor,
		map[string]string{"cyan": CYAN, "yellow": YELLOW, "green": GREEN, "reset": RESET})

	if NO_COLOR {
		text = listingNoColor
	}

	// * parsing the template
	tmpl, err := template.New("listing").Parse(text)
	if err != nil {
		panic(err)
	}
	if err = tmpl.Execute(os.Stdout, listing); err != nil {
		panic(err)
	}
}

// textify writes the palette listing to a text file.
func textify(listing *Listing) {
	tmpl, err := template.New("listing").Parse(listingNoColor)
	if err != nil {
		panic(err)
	}

	f, ferr := os.Create("diffcolors-palette.txt")
	if ferr != nil {
		Log("red", "Failed to create the file.")
		return
	}
	defer f.Close()
	if terr := tmpl.Execute(f, listing); terr != nil {
		Log("red", "Failed to write to the file.")
	} else {
		logExported("diffcolors-palette.txt")
	}
}

func markdownify(listing *Listing) {
	text := `
# {{ .Title }}

| Name | Hex |
| ---- | --- |
{{ range .Entries }}| {{ .Name }} | {{ .Hex }} |
{{ end }}`
	tmpl, err := template.New("listing").Parse(text)
	if err != nil {
		panic(err)
	}

	f, ferr := os.Create("diffcolors-palette.md")
	if ferr != nil {
		Log("red", "Failed to create the file.")
		return
	}
	defer f.Close()
	if terr := tmpl.Execute(f, listing); terr != nil {
		Log("red", "Failed to write to the file.")
	} else {
		logExported("diffcolors-palette.md")
	}
}

// jsonify converts the Listing struct to JSON.
func jsonify(listing *Listing) ([]byte, error) {
	return json.MarshalIndent(listing, "", "    ")
}

// csvify writes the Listing struct to a CSV file.
func csvify(listing *Listing) {
	text := `Name,Hex
{{ range .Entries }}{{ .Name }},{{ .Hex }}
{{ end }}`
	tmpl, err := template.New("listing").Parse(text)
	if err != nil {
		panic(err)
	}

	f, ferr := os.Create("diffcolors-palette.csv")
	if ferr != nil {
		Log("red", "Failed to create the file.")
		return
	}
	defer f.Close()
	if terr := tmpl.Execute(f, listing); terr != nil {
		Log("red", "Failed to write to the file.")
	} else {
		logExported("diffcolors-palette.csv")
	}
}

// logExported reports the absolute path a listing was written to.
func logExported(filename string) {
	absPath, err := filepath.Abs(filename)
	if err != nil {
		Log("red", "unable to get the absolute path for "+filename+": "+err.Error())
	} else {
		Log("green", "Successfully wrote the palette listing to `"+absPath+"`.")
	}
}

// Export writes the palette listing to a file in each of the comma separated
// formats.
func (listing *Listing) Export(exportFormats string) {
	for _, exportFormat := range strings.Split(exportFormats, ",") {
		exportFormat = strings.ToLower(strings.TrimSpace(exportFormat))
		if exportFormat == "json" {
			jsonText, e := jsonify(listing)
			if e != nil {
				Log("red", "Failed to export the listing to json.")
				return
			}
			if e := writeToFile(string(jsonText), "diffcolors-palette.json"); e != nil {
				Log("red", "Failed to write to the file.")
			} else {
				logExported("diffcolors-palette.json")
			}

		} else if exportFormat == "csv" {
			csvify(listing)

		} else if exportFormat == "text" {
			textify(listing)

		} else if exportFormat == "markdown" {
			markdownify(listing)

		} else if exportFormat != "none" && exportFormat != "" {
			Log("red", "Invalid export format: "+exportFormat+".")
		}
	}
}
