package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/differential-bio/diffcolors"
)

// Config holds the CLI defaults that can be overridden by an optional TOML
// file, e.g.
//
//	no_color = true
//	levels = 128
//	variants = ["light", "full"]
//	sheet_dir = "colormaps"
type Config struct {
	NoColor  bool     `toml:"no_color"`
	Levels   int      `toml:"levels"`
	Variants []string `toml:"variants"`
	SheetDir string   `toml:"sheet_dir"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Levels:   diffcolors.DefaultLevels,
		Variants: []string{"light", "dark", "full"},
		SheetDir: "diffcolors-sheet",
	}
}

// LoadConfig loads the configuration from the explicit path, or from the
// first existing search path when path is empty. A missing file just yields
// the defaults; read and parse failures yield the defaults plus the error so
// the caller can warn and continue.
func LoadConfig(path string) (*Config, error) {
	defaults := DefaultConfig()
	chosen := path
	if chosen == "" {
		for _, p := range configSearchPaths() {
			if checkPathExists(p) {
				chosen = p
				break
			}
		}
	}
	if chosen == "" {
		return defaults, nil
	}
	data, err := os.ReadFile(chosen)
	if err != nil {
		return defaults, fmt.Errorf("read config: %w", err)
	}
	// decode overlays onto defaults
	if _, err := toml.Decode(string(data), defaults); err != nil {
		return defaults, fmt.Errorf("parse config: %w", err)
	}
	defaults.normalize()
	return defaults, nil
}

func configSearchPaths() []string {
	var out []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		out = append(out, filepath.Join(xdg, "diffcolors", "config.toml"))
	}
	if home, _ := os.UserHomeDir(); home != "" {
		out = append(out, filepath.Join(home, ".config", "diffcolors", "config.toml"))
	}
	return out
}

// normalize clamps nonsense values back to their defaults after decoding.
func (c *Config) normalize() {
	if c.Levels <= 0 {
		c.Levels = diffcolors.DefaultLevels
	}
	if len(c.Variants) == 0 {
		c.Variants = []string{"light", "dark", "full"}
	}
	if c.SheetDir == "" {
		c.SheetDir = "diffcolors-sheet"
	}
}
