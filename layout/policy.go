package layout

import "github.com/SCKelemen/spandex/units"

// Policy allocates the columns of a new page. rust-spandex's Page::new
// (layout/pages/mod.rs) takes an arbitrary caller-built columns slice; Policy
// generalizes that same choice into a reusable Go value so package document
// doesn't have to know how many columns a page has or how they're shaped.
type Policy interface {
	// NewPage returns a fresh page, numbered number, with this policy's
	// columns.
	NewPage(number int) *Page
}

// OneColumn is a Policy that gives every page a single column spanning the
// full writable area.
type OneColumn struct {
	X, Y          units.Sp
	Width, Height units.Sp
}

// NewPage implements Policy.
func (p OneColumn) NewPage(number int) *Page {
	return NewPage(number, NewColumn(p.X, p.Y, p.Width, p.Height))
}

// TwoColumn is a Policy that splits the writable area into two equal-width
// columns separated by Gutter, the layout spec.md §9 and SPEC_FULL.md §4.5
// require alongside OneColumn.
type TwoColumn struct {
	X, Y          units.Sp
	Width, Height units.Sp
	Gutter        units.Sp
}

// NewPage implements Policy.
func (p TwoColumn) NewPage(number int) *Page {
	columnWidth := (p.Width - p.Gutter) / 2
	left := NewColumn(p.X, p.Y, columnWidth, p.Height)
	right := NewColumn(p.X.Add(columnWidth).Add(p.Gutter), p.Y, columnWidth, p.Height)
	return NewPage(number, left, right)
}
