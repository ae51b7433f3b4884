// Package config loads and defaults a document's page geometry from a TOML
// project file (spandex.toml), grounded on rust-spandex's
// document/configuration.rs. BurntSushi/toml decodes straight into units.Pt
// fields: unlike the original's hand-written serde visitor (needed because
// Rust's Pt isn't natively (de)serializable), Go's reflection-based decoder
// handles a defined float64 type without any custom hook.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/SCKelemen/spandex/spandexerr"
	"github.com/SCKelemen/spandex/units"
)

// fileName is the project file every spandex document is configured by.
const fileName = "spandex.toml"

// Config holds the measurements and input file common to one document.
type Config struct {
	Title string `toml:"title"`

	PageWidth  units.Pt `toml:"page_width"`
	PageHeight units.Pt `toml:"page_height"`

	TopMargin  units.Pt `toml:"top_margin"`
	LeftMargin units.Pt `toml:"left_margin"`

	TextWidth  units.Pt `toml:"text_width"`
	TextHeight units.Pt `toml:"text_height"`

	// Columns selects the page layout policy: 1 for a single full-width
	// column (the default), 2 for two columns separated by Gutter.
	Columns int      `toml:"columns"`
	Gutter  units.Pt `toml:"gutter"`

	Input string `toml:"input"`
}

// WithTitle returns the default A4-ish configuration rust-spandex's `init`
// command writes out: a 210x297mm page with 30mm margins on every side.
func WithTitle(title string) Config {
	return Config{
		Title:      title,
		PageWidth:  units.Mm(210).ToPt(),
		PageHeight: units.Mm(297).ToPt(),
		TopMargin:  units.Mm(30).ToPt(),
		LeftMargin: units.Mm(30).ToPt(),
		TextWidth:  units.Mm(150).ToPt(),
		TextHeight: units.Mm(237).ToPt(),
		Columns:    1,
		Input:      "main.dex",
	}
}

// Load searches dir and its ancestors for spandex.toml and decodes it.
func Load(dir string) (Config, error) {
	path, err := findConfigFile(dir)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg as spandex.toml inside dir.
func Save(dir string, cfg Config) error {
	f, err := os.Create(filepath.Join(dir, fileName))
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// findConfigFile walks up from dir looking for spandex.toml, mirroring the
// original's loop of pushing/popping path components until the filesystem
// root is reached.
func findConfigFile(dir string) (string, error) {
	current := dir
	for {
		candidate := filepath.Join(current, fileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", spandexerr.ErrNoConfigFile
		}
		current = parent
	}
}
