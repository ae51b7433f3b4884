// Package itemize turns a parsed styled tree (package parse) into the flat
// sequence of boxes, glue, and penalties that package breaking consumes,
// following Knuth & Plass's item model for line breaking.
//
// Grounded on the teacher's textToBoxes in knuthplass.go, generalized from a
// fixed-width terminal model (string width in columns) to variable glyph
// widths measured with a real font face (package font) in scaled points
// (package units), and from "words separated by single spaces" to the full
// styled-tree traversal described for the .dex dialect.
package itemize

import (
	"github.com/SCKelemen/spandex/font"
	"github.com/SCKelemen/spandex/units"
)

// Kind distinguishes the three item shapes of the Knuth-Plass model.
type Kind int

const (
	// BoxKind is a fixed-width, unbreakable unit of content: a run of
	// glyphs (a word, the part of a word between hyphenation points, or
	// an inline math span), or a single bullet or title-number glyph.
	BoxKind Kind = iota
	// GlueKind is a variable-width unit (space) that the line breaker may
	// stretch or shrink to justify a line, and may break after.
	GlueKind
	// PenaltyKind is a zero-or-small-width marker of a potential break
	// with an explicit cost (a cost of -1000 or less forces a break,
	// PenaltyInfinity forbids one).
	PenaltyKind
)

// PenaltyInfinity marks a break as forbidden; PenaltyMinusInfinity forces
// one (paragraph end, explicit line break).
const (
	PenaltyInfinity      = 10000
	PenaltyMinusInfinity = -10000
)

// Glyph is a single positioned character, the unit that Box items carry so
// that later stages (package position) can place it precisely.
type Glyph struct {
	Character rune
	Width     units.Sp

	// Face and Size are the font and size the glyph was measured with, so
	// package pdf can draw it without re-deriving style from context.
	Face *font.Face
	Size units.Pt
}

// Item is one element of an itemized paragraph.
type Item struct {
	Kind Kind

	// Width is the natural width of a Box, the natural width of Glue, or
	// the width a Penalty adds to a line only if the break IS taken there
	// (the hyphen width for a hyphenation penalty, zero otherwise).
	Width units.Sp

	// Stretch and Shrink are the glue parameters: how far this glue may
	// grow or shrink when a line is justified. Zero for Box and Penalty.
	Stretch units.Sp
	Shrink  units.Sp

	// Cost is the penalty's badness contribution. Zero for Box and Glue.
	Cost int

	// Flagged marks a penalty as a hyphenation break. The line breaker
	// does not read it: consecutive flagged breaks cost no extra demerits.
	Flagged bool

	// Glyphs carries the glyphs a Box renders; empty for Glue and
	// Penalty.
	Glyphs []Glyph
}

// Box returns an unbreakable item of the given width carrying glyphs.
func Box(width units.Sp, glyphs ...Glyph) Item {
	return Item{Kind: BoxKind, Width: width, Glyphs: glyphs}
}

// Glue returns a breakable, stretchable/shrinkable space item.
func Glue(width, stretch, shrink units.Sp) Item {
	return Item{Kind: GlueKind, Width: width, Stretch: stretch, Shrink: shrink}
}

// Penalty returns a break candidate with the given cost and flagged state.
func Penalty(width units.Sp, cost int, flagged bool) Item {
	return Item{Kind: PenaltyKind, Width: width, Cost: cost, Flagged: flagged}
}

// WithIndent prepends a zero-elasticity glue of width indent to items, the
// first-line indent of a paragraph. Grounded on rust-spandex's itemize_ast
// (ast.rs), which pushes exactly this item — Item::glue(indent, 0, 0) —
// before itemizing the rest of the paragraph whenever indent is positive.
// It counts like any other glue against the line-breaker's running width
// (so it narrows how much text fits on the first line) and, unlike an
// ordinary inter-word glue, is never discarded at the start of a line.
func WithIndent(items []Item, indent units.Sp) []Item {
	if indent <= 0 {
		return items
	}
	return append([]Item{Glue(indent, 0, 0)}, items...)
}

// Paragraph is the itemized form of one document paragraph or title: a flat
// sequence the line breaker treats as the unit of work. A first-line indent
// is not a separate field: it is the leading glue item WithIndent prepends
// to Items, exactly as it is measured and broken on by package breaking.
type Paragraph struct {
	Items []Item
}
