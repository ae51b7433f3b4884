package layout

// Page is one page of the document: a sequence of columns and which one the
// write cursor currently sits in.
//
// Grounded on rust-spandex's layout/pages/pages.rs and layout/pages/mod.rs.
type Page struct {
	Number             int
	Columns            []Column
	currentColumnIndex int
}

// NewPage creates a page with the given columns, starting at the first one.
func NewPage(number int, columns ...Column) *Page {
	return &Page{Number: number, Columns: columns}
}

// GetFirstColumn returns the page's first column.
func (p *Page) GetFirstColumn() *Column {
	if len(p.Columns) == 0 {
		return nil
	}
	return &p.Columns[0]
}

// GetCurrentColumn returns the column the write cursor is currently in.
func (p *Page) GetCurrentColumn() *Column {
	if p.currentColumnIndex >= len(p.Columns) {
		return nil
	}
	return &p.Columns[p.currentColumnIndex]
}

// GetIthColumnFromCurrent returns the column i positions after the current
// one, or nil if that would run past the last column on the page.
func (p *Page) GetIthColumnFromCurrent(i int) *Column {
	idx := p.currentColumnIndex + i
	if idx < 0 || idx >= len(p.Columns) {
		return nil
	}
	return &p.Columns[idx]
}

// GetNextColumn advances to and returns the column after the current one,
// or nil if the current column is the page's last.
func (p *Page) GetNextColumn() *Column {
	next := p.GetIthColumnFromCurrent(1)
	if next == nil {
		return nil
	}
	p.currentColumnIndex++
	return next
}

// AddColumn appends a column to the page.
func (p *Page) AddColumn(c Column) {
	p.Columns = append(p.Columns, c)
}
