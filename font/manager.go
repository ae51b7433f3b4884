package font

import (
	"fmt"

	"github.com/SCKelemen/spandex/spandexerr"
)

// Style selects one of the four faces a document typically carries.
type Style struct {
	IsBold   bool
	IsItalic bool
}

// Regular is the unstyled font style.
func Regular() Style { return Style{} }

// Bold returns style with bold set.
func (s Style) Bold() Style { s.IsBold = true; return s }

// Italic returns style with italic set.
func (s Style) Italic() Style { s.IsItalic = true; return s }

// Config names the four faces a document needs: regular, bold, italic, and
// bold-italic. Grounded on rust-spandex's FontConfig/FontManager.config in
// src/font.rs.
type Config struct {
	Regular    *Face
	Bold       *Face
	Italic     *Face
	BoldItalic *Face
}

// For returns the face matching style.
func (c Config) For(style Style) *Face {
	switch {
	case style.IsBold && style.IsItalic:
		return c.BoldItalic
	case style.IsBold:
		return c.Bold
	case style.IsItalic:
		return c.Italic
	default:
		return c.Regular
	}
}

// Manager holds every font loaded for a document, keyed by name, and builds
// Configs from it. Grounded on rust-spandex's FontManager.
type Manager struct {
	faces map[string]*Face
}

// NewManager returns an empty font manager.
func NewManager() *Manager {
	return &Manager{faces: make(map[string]*Face)}
}

// Add registers a face under its own Name.
func (m *Manager) Add(f *Face) {
	m.faces[f.Name] = f
}

// Get looks up a face by name.
func (m *Manager) Get(name string) (*Face, bool) {
	f, ok := m.faces[name]
	return f, ok
}

// Config builds a Config from four named faces, failing if any is missing.
func (m *Manager) Config(regular, bold, italic, boldItalic string) (Config, error) {
	get := func(name string) (*Face, error) {
		f, ok := m.faces[name]
		if !ok {
			return nil, fmt.Errorf("font: %q: %w", name, spandexerr.ErrFontNotFound)
		}
		return f, nil
	}

	r, err := get(regular)
	if err != nil {
		return Config{}, err
	}
	b, err := get(bold)
	if err != nil {
		return Config{}, err
	}
	i, err := get(italic)
	if err != nil {
		return Config{}, err
	}
	bi, err := get(boldItalic)
	if err != nil {
		return Config{}, err
	}

	return Config{Regular: r, Bold: b, Italic: i, BoldItalic: bi}, nil
}
