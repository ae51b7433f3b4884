package document

import (
	"github.com/SCKelemen/spandex/font"
	"github.com/SCKelemen/spandex/hyphenate"
	"github.com/SCKelemen/spandex/itemize"
	"github.com/SCKelemen/spandex/justify"
	"github.com/SCKelemen/spandex/layout"
	"github.com/SCKelemen/spandex/parse"
	"github.com/SCKelemen/spandex/pdf"
	"github.com/SCKelemen/spandex/units"

	"testing"
)

// wordItem builds a faceless box item (no font.Face attached): drawLine
// skips glyphs with no face, so tests can exercise pagination without a
// real embeddable TrueType font.
func wordItem(width units.Sp) itemize.Item {
	return itemize.Box(width, itemize.Glyph{Character: 'x', Width: width})
}

func newTestDocument(t *testing.T, columnHeight units.Sp) *Document {
	t.Helper()
	sink := pdf.New(units.Pt(400), units.Pt(600))
	policy := layout.OneColumn{X: 50, Y: 50, Width: 300, Height: columnHeight}
	return New(sink, font.Config{}, policy, units.Pt(12), 0, hyphenate.None{})
}

func TestNewDocumentStartsOnPageOne(t *testing.T) {
	d := newTestDocument(t, 500)
	if d.page.Number != 1 {
		t.Errorf("page number = %d, want 1", d.page.Number)
	}
}

func TestWriteParagraphTurnsPageWhenColumnFills(t *testing.T) {
	d := newTestDocument(t, 20) // room for one line at size 12 before overflow
	paragraph := itemize.Paragraph{Items: []itemize.Item{
		wordItem(10),
		itemize.Glue(0, units.PlusInfinity, 0),
		itemize.Penalty(0, itemize.PenaltyMinusInfinity, false),
	}}

	d.writeParagraph(paragraph, justify.Optimal{})

	if d.page.Number != 2 {
		t.Errorf("page number after overflow = %d, want 2", d.page.Number)
	}
}

func TestWriteParagraphAdvancesToNextColumnBeforeNewPage(t *testing.T) {
	sink := pdf.New(units.Pt(400), units.Pt(600))
	policy := layout.TwoColumn{X: 50, Y: 50, Width: 300, Height: 20, Gutter: 10}
	d := New(sink, font.Config{}, policy, units.Pt(12), 0, hyphenate.None{})

	paragraph := itemize.Paragraph{Items: []itemize.Item{
		wordItem(10),
		itemize.Glue(0, units.PlusInfinity, 0),
		itemize.Penalty(0, itemize.PenaltyMinusInfinity, false),
	}}

	firstColumnX := d.page.GetCurrentColumn().X
	d.writeParagraph(paragraph, justify.Optimal{})

	if d.page.Number != 1 {
		t.Errorf("page number = %d, want 1 (should move to the next column, not a new page)", d.page.Number)
	}
	if got := d.page.GetCurrentColumn().X; got == firstColumnX {
		t.Errorf("current column X = %v, want it to have advanced past the first column", got)
	}
}

func TestRenderEmptyFileReturnsErrEmptyDocument(t *testing.T) {
	d := newTestDocument(t, 500)
	err := d.Render(parse.File{Path: "empty.dex"})
	if err == nil {
		t.Fatalf("expected an error for an empty file")
	}
}

func TestTitleSizeScalesByLevel(t *testing.T) {
	base := units.Pt(10)
	if got := titleSize(base, 0); got != 20 {
		t.Errorf("titleSize(0) = %v, want 20", got)
	}
	if got := titleSize(base, 10); got != base {
		t.Errorf("titleSize(10) (out of range) = %v, want base %v", got, base)
	}
}
