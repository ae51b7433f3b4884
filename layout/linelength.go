package layout

import (
	"github.com/SCKelemen/spandex/breaking"
	"github.com/SCKelemen/spandex/units"
)

// DefaultLineLength is the line length used for a column whose width is not
// positive. Named and valued
// after rust-spandex's layout/constants.rs DEFAULT_LINE_LENGTH (680pt).
var DefaultLineLength = units.FromPt(680.0)

// ForColumn builds the breaking.LineLength oracle for a paragraph poured
// into col: every line, including the first, is the column's full width. A
// paragraph's first-line indent is not modeled here — it is the leading
// glue item itemize.WithIndent prepends to the item stream, so it narrows
// the first line by occupying part of its width rather than by the oracle
// reporting a shorter one.
//
// Grounded on rust-spandex's utils/paragraphs.rs get_line_length, which
// indexes a precomputed per-line width slice and falls back to the first
// entry once a paragraph runs past it — the column's width never changes
// mid-paragraph here, so the same fallback is expressed directly rather
// than via a slice.
func ForColumn(col *Column) breaking.LineLength {
	width := col.Width
	if width <= 0 {
		width = DefaultLineLength
	}

	return func(line int) units.Sp {
		return width
	}
}
