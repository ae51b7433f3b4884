package justify

import (
	"testing"

	"github.com/SCKelemen/spandex/itemize"
	"github.com/SCKelemen/spandex/layout"
	"github.com/SCKelemen/spandex/units"
)

func word(width units.Sp, r rune) itemize.Item {
	return itemize.Box(width, itemize.Glyph{Character: r, Width: width})
}

func TestOptimalJustifySingleLine(t *testing.T) {
	items := []itemize.Item{
		word(30, 'a'),
		itemize.Glue(10, 5, 2),
		word(30, 'b'),
		itemize.Glue(0, units.PlusInfinity, 0),
		itemize.Penalty(0, itemize.PenaltyMinusInfinity, false),
	}
	paragraph := itemize.Paragraph{Items: items}
	col := layout.NewColumn(0, 0, 1000, 500)

	lines := Optimal{}.Justify(paragraph, &col)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if len(lines[0]) != 2 {
		t.Fatalf("got %d glyphs, want 2", len(lines[0]))
	}
}

func TestNaiveJustifyWrapsOnOverflow(t *testing.T) {
	items := []itemize.Item{
		word(60, 'a'),
		itemize.Glue(10, 5, 2),
		word(60, 'b'),
		itemize.Glue(10, 5, 2),
		word(60, 'c'),
	}
	paragraph := itemize.Paragraph{Items: items}
	col := layout.NewColumn(0, 0, 100, 500)

	lines := Naive{}.Justify(paragraph, &col)
	if len(lines) < 2 {
		t.Fatalf("got %d lines, want at least 2 for a narrow column", len(lines))
	}
}

func TestNaiveJustifySingleWordLineUsesIdealSpacing(t *testing.T) {
	items := []itemize.Item{word(60, 'a')}
	paragraph := itemize.Paragraph{Items: items}
	col := layout.NewColumn(0, 0, 1000, 500)

	lines := Naive{}.Justify(paragraph, &col)
	if len(lines) != 1 || len(lines[0]) != 1 {
		t.Fatalf("got %#v, want a single line with a single glyph", lines)
	}
	if lines[0][0].HorizontalOffset != 0 {
		t.Errorf("first glyph offset = %v, want 0", lines[0][0].HorizontalOffset)
	}
}

func TestCountWords(t *testing.T) {
	line := []itemize.Item{word(10, 'a'), itemize.Glue(5, 1, 1), word(10, 'b')}
	if got := countWords(line); got != 2 {
		t.Errorf("countWords = %d, want 2", got)
	}
}
