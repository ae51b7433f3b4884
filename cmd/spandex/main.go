// Command spandex builds PDF documents from .dex markup projects.
//
// Grounded on rust-spandex's main.rs (the init/build subcommand split) and
// on the tdewolff/argp usage shown in the example pack's
// cmd/fontinfo and cmd/pdftext commands.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tdewolff/argp"

	"github.com/SCKelemen/spandex/config"
	"github.com/SCKelemen/spandex/document"
	"github.com/SCKelemen/spandex/font"
	"github.com/SCKelemen/spandex/hyphenate"
	"github.com/SCKelemen/spandex/layout"
	"github.com/SCKelemen/spandex/parse"
	"github.com/SCKelemen/spandex/pdf"
	"github.com/SCKelemen/spandex/spandexerr"
	"github.com/SCKelemen/spandex/units"
)

func main() {
	root := argp.New("Typesets .dex markup into PDF documents")
	root.AddCmd(&Init{}, "init", "Create a new spandex project in the current directory")
	root.AddCmd(&Build{}, "build", "Build the spandex project in the current directory")
	root.Parse()
}

// Init writes a default spandex.toml and a starter main.dex.
type Init struct {
	Title string `index:"0" desc:"Project title (defaults to the current directory's name)"`
}

// Run implements argp's command interface.
func (cmd *Init) Run() error {
	dir, err := os.Getwd()
	if err != nil {
		return spandexerr.ErrCannotReadCurrentDir
	}

	title := cmd.Title
	if title == "" {
		title = filepath.Base(dir)
	} else {
		dir = filepath.Join(dir, title)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	cfg := config.WithTitle(title)
	if err := config.Save(dir, cfg); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "main.dex"), []byte("# Hello world"), 0o644)
}

// Build typesets the project whose spandex.toml is found in the current
// directory or one of its ancestors. The input file and the fonts/
// directory are read from, and the PDF (named after the title) is written
// to, the current directory, not the directory holding spandex.toml.
type Build struct{}

// Run implements argp's command interface.
func (cmd *Build) Run() error {
	dir, err := os.Getwd()
	if err != nil {
		return spandexerr.ErrCannotReadCurrentDir
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	return build(dir, cfg)
}

func build(dir string, cfg config.Config) error {
	content, err := os.ReadFile(filepath.Join(dir, cfg.Input))
	if err != nil {
		return err
	}

	file := parse.Parse(cfg.Input, string(content))
	for _, d := range parse.Diagnostics(cfg.Input, file) {
		fmt.Fprintln(os.Stderr, d.Format(string(content)))
	}

	manager, err := loadFonts(dir)
	if err != nil {
		return err
	}
	faceConfig, err := manager.Config("regular", "bold", "italic", "bold-italic")
	if err != nil {
		return err
	}

	sink := pdf.New(cfg.PageWidth, cfg.PageHeight)
	policy := buildPolicy(cfg)

	baseSize := units.Pt(12)
	indent := units.FromPt(20)
	hyph := hyphenate.NewEnglish()

	doc := document.New(sink, faceConfig, policy, baseSize, indent, hyph)
	if err := doc.Render(file); err != nil {
		return err
	}

	outPath := filepath.Join(dir, cfg.Title+".pdf")
	return doc.Save(outPath)
}

// buildPolicy picks a layout.Policy from the project's configured column
// count: one full-width column by default, or two columns separated by
// cfg.Gutter when the project asks for columns = 2.
func buildPolicy(cfg config.Config) layout.Policy {
	x := units.FromPt(cfg.LeftMargin)
	y := units.FromPt(cfg.TopMargin)
	width := units.FromPt(cfg.TextWidth)
	height := units.FromPt(cfg.TextHeight)

	if cfg.Columns == 2 {
		gutter := units.FromPt(cfg.Gutter)
		if gutter <= 0 {
			gutter = units.FromPt(10)
		}
		return layout.TwoColumn{X: x, Y: y, Width: width, Height: height, Gutter: gutter}
	}
	return layout.OneColumn{X: x, Y: y, Width: width, Height: height}
}

// loadFonts reads the four faces (regular, bold, italic, bold-italic) a
// build needs from the project's fonts/ directory.
func loadFonts(dir string) (*font.Manager, error) {
	manager := font.NewManager()
	names := []string{"regular", "bold", "italic", "bold-italic"}

	for _, name := range names {
		path := filepath.Join(dir, "fonts", name+".ttf")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", spandexerr.ErrFontNotFound, path)
		}
		face, err := font.Parse(name, data)
		if err != nil {
			return nil, err
		}
		manager.Add(face)
	}

	return manager, nil
}
