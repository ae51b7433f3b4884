// Package position turns a chosen breakpoint sequence into the final,
// per-glyph horizontal layout of each line: every glue on the line stretched
// or shrunk by that line's adjustment ratio, and a hyphen glyph appended
// where a line ends on a hyphenation penalty.
//
// Grounded on rust-spandex's layout/paragraphs/engine.rs: positionate_items
// and utils/linebreak.rs's compute_adjustment_ratios_with_breakpoints.
package position

import (
	"github.com/SCKelemen/spandex/breaking"
	"github.com/SCKelemen/spandex/font"
	"github.com/SCKelemen/spandex/itemize"
	"github.com/SCKelemen/spandex/units"
)

// Glyph is a single glyph placed at a specific offset on a specific line.
type Glyph struct {
	Character        rune
	Line             int
	HorizontalOffset units.Sp
	Width            units.Sp

	// Face and Size are carried through from itemize.Glyph so package pdf
	// can draw each glyph with the font it was measured with.
	Face *font.Face
	Size units.Pt
}

// dashGlyph is appended at a line that ends on a hyphenation break.
const dashGlyph = '-'

// Position lays out items line by line according to breakpoints (as
// returned by breaking.Break), stretching or shrinking each line's glue by
// that line's adjustment ratio.
func Position(items []itemize.Item, lineLength breaking.LineLength, breakpoints []int) [][]Glyph {
	if len(breakpoints) < 2 {
		return nil
	}

	ratios := adjustmentRatios(items, lineLength, breakpoints)
	var lines [][]Glyph

	for line := 0; line < len(breakpoints)-1; line++ {
		var glyphs []Glyph

		breakIndex := breakpoints[line]
		ratio := ratios[line]
		if ratio < breaking.MinAdjustmentRatio {
			ratio = breaking.MinAdjustmentRatio
		}

		offset := units.Sp(0)
		begin := breakIndex
		if line > 0 {
			begin = breakIndex + 1
		}
		end := breakpoints[line+1]

		var lastGlyphWidth units.Sp
		var lastFace *font.Face
		var lastSize units.Pt

		for p := begin; p <= end && p < len(items); p++ {
			item := items[p]

			switch item.Kind {
			case itemize.BoxKind:
				for _, g := range item.Glyphs {
					glyphs = append(glyphs, Glyph{Character: g.Character, Line: line, HorizontalOffset: offset, Width: g.Width, Face: g.Face, Size: g.Size})
					offset = offset.Add(g.Width)
				}
				if len(item.Glyphs) > 0 {
					last := item.Glyphs[len(item.Glyphs)-1]
					lastGlyphWidth = last.Width
					lastFace = last.Face
					lastSize = last.Size
				}

			case itemize.GlueKind:
				// The glue at end is the break itself and is not
				// rendered. Every other glue is, including one at begin:
				// on line 0 that is where a leading indent glue
				// (itemize.WithIndent) sits, rendering as a left margin.
				if p != end {
					gap := item.Width
					if ratio < 0 {
						gap = gap.Add(units.Sp(float64(item.Shrink) * ratio))
					} else {
						gap = gap.Add(units.Sp(float64(item.Stretch) * ratio))
					}
					offset = offset.Add(gap)
				}

			case itemize.PenaltyKind:
				if p == end && item.Width > 0 {
					glyphs = append(glyphs, Glyph{Character: dashGlyph, Line: line, HorizontalOffset: offset, Width: lastGlyphWidth, Face: lastFace, Size: lastSize})
				}
			}
		}

		lines = append(lines, glyphs)
	}

	return lines
}

// adjustmentRatios recomputes, for each chosen breakpoint, the adjustment
// ratio of the line it starts — the same computation breaking.Break used to
// decide feasibility, replayed here against the final chosen sequence.
func adjustmentRatios(items []itemize.Item, lineLength breaking.LineLength, breakpoints []int) []float64 {
	ratios := make([]float64, len(breakpoints))

	for line, breakIndex := range breakpoints {
		desired := lineLength(line)
		nextBreak := len(items) - 1
		if line < len(breakpoints)-1 {
			nextBreak = breakpoints[line+1]
		}

		begin := breakIndex
		if line > 0 {
			begin = breakIndex + 1
		}

		var actual, stretch, shrink units.Sp

		for p := begin; p < nextBreak && p < len(items); p++ {
			item := items[p]
			switch item.Kind {
			case itemize.BoxKind:
				actual = actual.Add(item.Width)
			case itemize.GlueKind:
				// Every glue before nextBreak counts, including one at
				// begin (on line 0, a leading indent glue), matching the
				// rendering loop above and breaking.Break's own sums,
				// which bill item 0 unconditionally (canBreak is false
				// for it).
				actual = actual.Add(item.Width)
				stretch = stretch.Add(item.Stretch)
				shrink = shrink.Add(item.Shrink)
			case itemize.PenaltyKind:
				// A penalty only contributes width if it is itself the
				// break, handled below.
			}
		}
		if nextBreak < len(items) && items[nextBreak].Kind == itemize.PenaltyKind {
			actual = actual.Add(items[nextBreak].Width)
		}

		ratios[line] = breaking.AdjustmentRatio(actual, desired, stretch, shrink)
	}

	return ratios
}
