package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/differential-bio/diffcolors"
	"github.com/differential-bio/diffcolors/cmap"
	"github.com/differential-bio/diffcolors/internal"
	"github.com/schollz/progressbar/v3"
	"github.com/thatisuday/commando"
)

const (
	// NAME is the executable name.
	NAME = "diffcolors"
	// VERSION is the executable version.
	VERSION = "v0.1.0"
)

// loadConfig reads the optional TOML config, warning instead of failing when
// it cannot be parsed.
func loadConfig() *internal.Config {
	cfg, err := internal.LoadConfig("")
	if err != nil {
		internal.Log("yellow", "warning: "+err.Error())
	}
	return cfg
}

// resolveNoColor merges the inverted no-color flag with the config file
// preference.
func resolveNoColor(flags map[string]commando.FlagValue, cfg *internal.Config) {
	colorOn, e := flags["color"].GetBool()
	if e != nil {
		internal.Log("red", "Application error: cannot parse flag values.")
		return
	}
	internal.NO_COLOR = !colorOn || cfg.NoColor
}

// logSaved reports the absolute path an image was written to.
func logSaved(what, file string) {
	absPath, err := filepath.Abs(file)
	if err != nil {
		internal.Log("red", "unable to get the absolute path for "+file+": "+err.Error())
		return
	}
	internal.Log("green", "Successfully wrote the "+what+" to `"+absPath+"`.")
}

func paletteAction(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	cfg := loadConfig()
	resolveNoColor(flags, cfg)

	// * resolving the given names, default ordering when none are given
	var names []string
	namesArg := strings.TrimSpace(args["names"].Value)
	if namesArg != "" {
		var err error
		names, err = internal.ParseNames(namesArg)
		if err != nil {
			internal.Log("red", "unable to parse the given color names: "+namesArg)
			internal.Log("white", err.Error())
			return
		}
	}

	hexes, err := diffcolors.Palette(names...)
	if err != nil {
		internal.Log("red", err.Error())
		return
	}
	if len(names) == 0 {
		names = diffcolors.DefaultOrder()
	}

	// * palette preview and listing
	if strip := internal.SwatchStrip(hexes); strip != "" {
		fmt.Println()
		fmt.Println(strip)
	}
	listing := internal.NewListing("Differential Bio palette", names, hexes)
	listing.Consolify()

	// * getting export values
	exportFormat, ierr := flags["export"].GetString()
	if ierr != nil {
		internal.Log("red", "Application error: cannot parse flag values.")
		return
	}
	listing.Export(exportFormat)

	// * optional swatch strip image
	plotFile, perr := flags["plot"].GetString()
	if perr != nil {
		internal.Log("red", "Application error: cannot parse flag values.")
		return
	}
	if plotFile != "none" && plotFile != "" {
		pal, lerr := cmap.NewListed("", names...)
		if lerr != nil {
			internal.Log("red", lerr.Error())
			return
		}
		file := internal.AddExtension(plotFile, "png")
		if serr := internal.SavePaletteStrip(pal, "Differential Bio palette", file); serr != nil {
			internal.Log("red", "Failed to save the palette strip: "+serr.Error())
			return
		}
		logSaved("palette strip", file)
	}
}

func cmapAction(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	cfg := loadConfig()
	resolveNoColor(flags, cfg)

	// * getting args and flag values
	base := strings.TrimSpace(args["base"].Value)
	if base == "" {
		fmt.Println("Error: not enough arguments.")
		return
	}

	variantName, e := flags["variant"].GetString()
	if e != nil {
		internal.Log("red", "Application error: cannot parse flag values.")
		return
	}
	levels, e := flags["levels"].GetInt()
	if e != nil {
		internal.Log("red", "The number of levels must be an integer!")
		internal.Log("white", e.Error())
		return
	}
	reverse, e := flags["reverse"].GetBool()
	if e != nil {
		internal.Log("red", "Application error: cannot parse flag values.")
		return
	}
	customName, e := flags["name"].GetString()
	if e != nil {
		internal.Log("red", "Application error: cannot parse flag values.")
		return
	}

	if levels <= 0 {
		levels = cfg.Levels
	}

	spec, err := diffcolors.Gradient(base, diffcolors.Variant(variantName), levels, customName, reverse)
	if err != nil {
		internal.Log("red", err.Error())
		return
	}
	g, err := cmap.FromSpec(spec)
	if err != nil {
		internal.Log("red", err.Error())
		return
	}

	// * colormap summary
	fmt.Println()
	internal.Log("cyan", spec.Name)
	fmt.Println("stops : " + strings.Join(spec.Stops, " -> "))
	fmt.Printf("levels: %d\n", spec.Levels)
	if bar := internal.GradientBar(g, 48); bar != "" {
		fmt.Println(bar)
	}

	// * optional color bar image
	plotFile, perr := flags["plot"].GetString()
	if perr != nil {
		internal.Log("red", "Application error: cannot parse flag values.")
		return
	}
	if plotFile != "none" && plotFile != "" {
		file := internal.AddExtension(plotFile, "png")
		if serr := internal.SaveColorBar(g, spec.Name, file); serr != nil {
			internal.Log("red", "Failed to save the color bar: "+serr.Error())
			return
		}
		logSaved("color bar", file)
	}
}

func sheetAction(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	cfg := loadConfig()
	resolveNoColor(flags, cfg)

	variantsFlag, e := flags["variants"].GetString()
	if e != nil {
		internal.Log("red", "Application error: cannot parse flag values.")
		return
	}
	dirFlag, e := flags["dir"].GetString()
	if e != nil {
		internal.Log("red", "Application error: cannot parse flag values.")
		return
	}

	variantStrs := cfg.Variants
	if strings.TrimSpace(variantsFlag) != "" {
		variantStrs = strings.Split(variantsFlag, ",")
	}
	variants := internal.MapFunc[[]string, []diffcolors.Variant](func(s string) diffcolors.Variant {
		return diffcolors.Variant(strings.TrimSpace(strings.ToLower(s)))
	}, variantStrs)

	// * registering the whole gradient family
	if err := cmap.RegisterAll(variants...); err != nil {
		internal.Log("red", err.Error())
		return
	}

	dir := cfg.SheetDir
	if strings.TrimSpace(dirFlag) != "" {
		dir = dirFlag
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		internal.Log("red", "Failed to create the sheet directory: "+err.Error())
		return
	}

	names := cmap.Names()
	pbarOptions := []progressbar.Option{
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetDescription("Rendering the colormap sheet"),
		progressbar.OptionSetPredictTime(true),
	}
	if !internal.NO_COLOR {
		pbarOptions = []progressbar.Option{
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetDescription("[magenta]Rendering the colormap sheet[reset]"),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "|",
				BarEnd:        "|",
			}),
		}
	}
	bar := progressbar.NewOptions(len(names), pbarOptions...)

	for _, name := range names {
		bar.Add(1)
		cm, ok := cmap.Lookup(name)
		if !ok {
			// every name came from the registry a moment ago, ok to panic
			panic("registered colormap vanished: " + name)
		}
		file := filepath.Join(dir, internal.FileSafeName(name)+".png")
		if err := internal.SaveColorBar(cm, name, file); err != nil {
			bar.Finish()
			internal.Log("red", "Failed to render "+name+": "+err.Error())
			return
		}
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		absPath = dir
	}
	internal.Log("green", fmt.Sprintf("Rendered %d colormaps to `%s`.", len(names), absPath))
}

func main() {
	internal.Log("white", fmt.Sprintf("%v %v\n", NAME, VERSION))

	updateCh := make(chan string, 1)
	go internal.CheckForUpdates(VERSION, &updateCh)
	defer fmt.Println(<-updateCh)

	// * basic configuration
	commando.
		SetExecutableName(NAME).
		SetVersion(VERSION).
		SetDescription("diffcolors brings the Differential Bio brand palette to the terminal: categorical palettes, continuous colormaps and proof sheets. \nFor more info visit https://github.com/differential-bio/diffcolors.")

	// * root command
	commando.
		Register(nil).
		SetShortDescription("Show the available brand colors and how to use them.").
		SetDescription("Show the available brand colors and how to use them.").
		AddFlag("no-color", "Disable colored output.", commando.Bool, false).
		SetAction(func(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
			cfg := loadConfig()
			resolveNoColor(flags, cfg)
			fmt.Println(diffcolors.Tooltip())

			// * preview strip in the default ordering
			hexes, _ := diffcolors.Palette()
			if strip := internal.SwatchStrip(hexes); strip != "" {
				fmt.Println(strip)
				fmt.Println()
			}
		})

	// * palette command
	commando.
		Register("palette").
		SetShortDescription("Resolve brand color names to hex codes.").
		SetDescription("Resolve brand color names to an ordered categorical palette. Without names, the default brand ordering is used.").
		AddArgument("names...", "Brand color names, quoted when they contain spaces (e.g. 'Forest Green').", "").
		AddFlag("export,e", "Comma separated list of palette export formats, including json, text, csv and markdown.", commando.String, "none").
		AddFlag("plot,p", "Save a swatch strip image of the palette to the given PNG file.", commando.String, "none").
		AddFlag("no-color", "Disable colored output.", commando.Bool, false).
		SetAction(paletteAction)

	// * cmap command
	commando.
		Register("cmap").
		SetShortDescription("Build a continuous colormap from one brand color.").
		SetDescription("Build a continuous colormap from one brand color: light runs white to base, dark runs base to Almost Black, full runs white to base to Almost Black.").
		AddArgument("base", "The brand color the gradient is built from.", "").
		AddFlag("variant,V", "The gradient variant, one of light, dark and full.", commando.String, "full").
		AddFlag("levels,l", "The number of discrete color levels (0 means the configured default).", commando.Int, 0).
		AddFlag("reverse,r", "Reverse the gradient stops.", commando.Bool, false).
		AddFlag("name,n", "Register the colormap under this name instead of the generated one.", commando.String, "").
		AddFlag("plot,p", "Save a color bar image of the colormap to the given PNG file.", commando.String, "none").
		AddFlag("no-color", "Disable colored output.", commando.Bool, false).
		SetAction(cmapAction)

	// * sheet command
	commando.
		Register("sheet").
		SetShortDescription("Render a proof sheet of every brand colormap.").
		SetDescription("Register the whole brand gradient family and render each colormap to a PNG color bar in the sheet directory.").
		AddFlag("variants,V", "Comma separated gradient variants to render (empty means the configured ones).", commando.String, "").
		AddFlag("dir,d", "The directory to write the sheet into (empty means the configured one).", commando.String, "").
		AddFlag("no-color", "Disable colored output.", commando.Bool, false).
		SetAction(sheetAction)

	commando.Parse(nil)
}
