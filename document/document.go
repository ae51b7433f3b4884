// Package document renders a parsed .dex file to a PDF, walking itemized
// blocks one at a time, pouring each into the current column, and turning
// the page whenever the column runs out of room.
//
// Grounded on rust-spandex's document/mod.rs Document.render/write_paragraph.
package document

import (
	"github.com/SCKelemen/spandex/font"
	"github.com/SCKelemen/spandex/hyphenate"
	"github.com/SCKelemen/spandex/itemize"
	"github.com/SCKelemen/spandex/justify"
	"github.com/SCKelemen/spandex/layout"
	"github.com/SCKelemen/spandex/parse"
	"github.com/SCKelemen/spandex/pdf"
	"github.com/SCKelemen/spandex/position"
	"github.com/SCKelemen/spandex/spandexerr"
	"github.com/SCKelemen/spandex/units"
)

// Document renders itemized blocks to a PDF sink, tracking pagination and
// title numbering across the whole file.
type Document struct {
	sink   *pdf.Sink
	cfg    font.Config
	policy layout.Policy // allocates the columns of every new page
	page   *layout.Page

	counters *Counters
	baseSize units.Pt
	indent   units.Sp
	hyph     hyphenate.Hyphenator
}

// New creates a Document that writes pages allocated by policy to sink.
func New(sink *pdf.Sink, cfg font.Config, policy layout.Policy, baseSize units.Pt, indent units.Sp, hyph hyphenate.Hyphenator) *Document {
	d := &Document{
		sink:     sink,
		cfg:      cfg,
		policy:   policy,
		counters: NewCounters(),
		baseSize: baseSize,
		indent:   indent,
		hyph:     hyph,
	}
	d.newPage()
	return d
}

// Render itemizes and writes every block of file to the document.
func (d *Document) Render(file parse.File) error {
	blocks := itemize.Document(file, d.cfg, d.baseSize, d.hyph, d.indent)
	if len(blocks) == 0 {
		return spandexerr.ErrEmptyDocument
	}

	for _, b := range blocks {
		d.renderBlock(b)
	}
	return nil
}

// Save flushes the document to path.
func (d *Document) Save(path string) error {
	if err := d.sink.Err(); err != nil {
		return err
	}
	return d.sink.Save(path)
}

func (d *Document) renderBlock(b itemize.Block) {
	switch b.Kind {
	case itemize.BlockTitle:
		d.counters.Increment(int(b.Level))
		prefix := prefixItems(d.counters.String()+"  ", font.Regular().Bold(), titleSize(d.baseSize, b.Level), d.cfg)
		paragraph := itemize.Paragraph{Items: append(prefix, b.Paragraph.Items...)}
		d.writeParagraph(paragraph, justify.Optimal{})
		d.advanceLine()
		d.advanceLine()

	case itemize.BlockParagraph:
		d.writeParagraph(b.Paragraph, justify.Optimal{})
		d.advanceLine()
		d.advanceLine()

	case itemize.BlockListItem:
		// The optimal justifier mis-wraps a list item whose body runs
		// onto a second line starting with a dash: justify.Naive side-
		// steps that instead of fixing the root cause, matching the
		// original renderer's documented workaround.
		d.writeParagraph(b.Paragraph, justify.Naive{})
		d.advanceLine()
	}
}

// titleSize mirrors itemize's own per-level title scale so the prefix
// numeral is drawn at the same size as the title text that follows it.
func titleSize(baseSize units.Pt, level uint8) units.Pt {
	scale := []float64{2.0, 1.6, 1.3, 1.1}
	if int(level) < len(scale) {
		return units.Pt(float64(baseSize) * scale[level])
	}
	return baseSize
}

// prefixItems glyph-boxes a short literal string (a title number like
// "1.2  ") with no internal break opportunities, since it is never long
// enough to need any.
func prefixItems(s string, style font.Style, size units.Pt, cfg font.Config) []itemize.Item {
	face := cfg.For(style)
	var items []itemize.Item
	for _, r := range s {
		w := face.AdvanceWidth(r, size)
		items = append(items, itemize.Box(w, itemize.Glyph{Character: r, Width: w, Face: face, Size: size}))
	}
	return items
}

// writeParagraph lays out paragraph with justifier and draws it into the
// current column, turning the page whenever a line doesn't fit.
func (d *Document) writeParagraph(paragraph itemize.Paragraph, justifier justify.Justifier) {
	column := d.page.GetCurrentColumn()
	lines := justifier.Justify(paragraph, column)

	for _, line := range lines {
		d.drawLine(line)
		d.advanceLine()
	}
}

func (d *Document) drawLine(line []position.Glyph) {
	column := d.page.GetCurrentColumn()
	for _, g := range line {
		if g.Face == nil {
			continue
		}
		x := column.X.Add(g.HorizontalOffset).ToPt()
		y := column.Y.Add(column.CurrentVerticalPosition).ToPt()
		d.sink.UseText(g.Character, g.Face, g.Size, x, y)
	}
}

// advanceLine moves the write cursor down by one line. If that runs out of
// room, it first tries the page's next column (GetNextColumn) before turning
// the page, following the original's new_line/new_page split generalized to
// a page that may hold more than one column.
func (d *Document) advanceLine() {
	column := d.page.GetCurrentColumn()
	if ok := column.Advance(units.FromPt(d.baseSize)); !ok {
		if next := d.page.GetNextColumn(); next != nil {
			return
		}
		d.newPage()
	}
}

func (d *Document) newPage() {
	number := 1
	if d.page != nil {
		number = d.page.Number + 1
	}
	d.page = d.policy.NewPage(number)
	d.sink.NewPage()
}
