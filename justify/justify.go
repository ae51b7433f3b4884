// Package justify turns an itemized paragraph into lines of positioned
// glyphs, in one of two ways: Optimal runs the full Knuth-Plass search
// (package breaking) for a globally minimal-demerit break sequence, while
// Naive greedily wraps to the next line as soon as a word would overtake
// the column width. Both satisfy Justifier, so callers can pick per block
// the way rust-spandex's document renderer does.
//
// Grounded on rust-spandex's layout/paragraphs/justification.rs.
package justify

import (
	"github.com/SCKelemen/spandex/breaking"
	"github.com/SCKelemen/spandex/itemize"
	"github.com/SCKelemen/spandex/layout"
	"github.com/SCKelemen/spandex/position"
	"github.com/SCKelemen/spandex/units"
)

// IdealSpacing is the inter-word gap the naive justifier falls back to when
// a line has only one word (so there is no gap to stretch). Named and
// valued after rust-spandex's layout/constants.rs IDEAL_SPACING (5pt).
var IdealSpacing = units.FromPt(5.0)

// Justifier lays out a paragraph's items within a column, returning the
// glyphs of each resulting line.
type Justifier interface {
	Justify(paragraph itemize.Paragraph, col *layout.Column) [][]position.Glyph
}

// Optimal justifies by running the Knuth-Plass line-breaking search and
// then distributing each line's glue proportionally to its chosen
// adjustment ratio. This is the justifier used for ordinary paragraphs and
// titles.
type Optimal struct{}

// Justify implements Justifier.
func (Optimal) Justify(paragraph itemize.Paragraph, col *layout.Column) [][]position.Glyph {
	lineLength := layout.ForColumn(col)
	breakpoints, _ := breaking.Break(paragraph.Items, lineLength)
	return position.Position(paragraph.Items, lineLength, breakpoints)
}

// Naive justifies by packing words onto a line until the next word would
// overtake the column width, then spreads the line's words evenly across
// the remaining space. It never hyphenates and never considers more than
// one line at a time, so it cannot produce the backtracking mistakes a
// single malformed line can cause in the optimal path — this is why the
// original renderer falls back to it for list items. See DESIGN.md.
type Naive struct{}

// Justify implements Justifier.
func (Naive) Justify(paragraph itemize.Paragraph, col *layout.Column) [][]position.Glyph {
	width := col.Width
	if width <= 0 {
		width = layout.DefaultLineLength
	}

	var lines [][]itemize.Item // each line holds a flat run of box/glue items, word boundaries implicit
	var currentLine []itemize.Item
	var currentWord []itemize.Item
	var currentX units.Sp

	flushWord := func() {
		currentLine = append(currentLine, currentWord...)
		currentWord = nil
	}

	for _, item := range paragraph.Items {
		switch item.Kind {
		case itemize.BoxKind:
			currentX = currentX.Add(item.Width)
			currentWord = append(currentWord, item)
		case itemize.GlueKind:
			flushWord()
			currentX = currentX.Add(item.Width)
			currentLine = append(currentLine, item)
		case itemize.PenaltyKind:
			// The naive justifier never breaks on a penalty; it only
			// reacts to line overflow, matching the original.
		}

		if currentX > width && countWords(currentLine) > 0 {
			lastWord, rest := splitLastWord(currentLine)
			lines = append(lines, rest)
			currentLine = lastWord
			currentX = 0
			for _, it := range lastWord {
				currentX = currentX.Add(it.Width)
			}
			for _, it := range currentWord {
				currentX = currentX.Add(it.Width)
			}
		}
	}
	flushWord()
	if len(currentLine) > 0 || len(lines) == 0 {
		lines = append(lines, currentLine)
	}

	out := make([][]position.Glyph, len(lines))
	for i, line := range lines {
		out[i] = placeLineEvenly(line, i, width)
	}
	return out
}

// countWords reports how many glue-separated words a line (a flat sequence
// of box and glue items) holds.
func countWords(line []itemize.Item) int {
	words := 0
	inWord := false
	for _, item := range line {
		if item.Kind == itemize.BoxKind {
			if !inWord {
				words++
				inWord = true
			}
		} else {
			inWord = false
		}
	}
	return words
}

// splitLastWord pulls the trailing run of boxes (the last word, if line
// ends on one) off of line, returning it separately from the remainder.
// Glue before that word stays in rest; a line ending on glue yields an
// empty lastWord.
func splitLastWord(line []itemize.Item) (lastWord, rest []itemize.Item) {
	i := len(line)
	for i > 0 && line[i-1].Kind == itemize.BoxKind {
		i--
	}
	return line[i:], line[:i]
}

// placeLineEvenly lays a naive-justified line's boxes left to right,
// spreading the remaining width evenly across its word gaps.
func placeLineEvenly(line []itemize.Item, lineIndex int, width units.Sp) []position.Glyph {
	var words [][]itemize.Item
	var word []itemize.Item
	for _, item := range line {
		if item.Kind == itemize.BoxKind {
			word = append(word, item)
		} else if len(word) > 0 {
			words = append(words, word)
			word = nil
		}
	}
	if len(word) > 0 {
		words = append(words, word)
	}

	var occupied units.Sp
	for _, w := range words {
		for _, item := range w {
			occupied = occupied.Add(item.Width)
		}
	}

	wordSpace := IdealSpacing
	if len(words) > 1 {
		wordSpace = (width - occupied) / units.Sp(len(words)-1)
	}

	var glyphs []position.Glyph
	var x units.Sp
	for _, w := range words {
		for _, item := range w {
			for _, g := range item.Glyphs {
				glyphs = append(glyphs, position.Glyph{Character: g.Character, Line: lineIndex, HorizontalOffset: x, Width: g.Width, Face: g.Face, Size: g.Size})
				x = x.Add(g.Width)
			}
		}
		x = x.Add(wordSpace)
	}
	return glyphs
}
