package layout

import (
	"testing"

	"github.com/SCKelemen/spandex/units"
)

func TestColumnAdvanceReportsRoom(t *testing.T) {
	c := NewColumn(0, 0, 1000, 500)
	if !c.HasRoom() {
		t.Fatalf("freshly created column should have room")
	}
	if ok := c.Advance(400); !ok {
		t.Errorf("expected room to remain after advancing 400 of 500")
	}
	if ok := c.Advance(200); ok {
		t.Errorf("expected no room left after advancing past the column height")
	}
}

func TestColumnRemaining(t *testing.T) {
	c := NewColumn(0, 0, 1000, 500)
	c.MoveCursor(300)
	if got, want := c.Remaining(), units.Sp(200); got != want {
		t.Errorf("Remaining() = %v, want %v", got, want)
	}
	c.MoveCursor(600)
	if got := c.Remaining(); got != 0 {
		t.Errorf("Remaining() past the bottom = %v, want 0", got)
	}
}

func TestPageGetCurrentAndNextColumn(t *testing.T) {
	p := NewPage(1, NewColumn(0, 0, 100, 500), NewColumn(110, 0, 100, 500))

	first := p.GetCurrentColumn()
	if first == nil || first.X != 0 {
		t.Fatalf("expected current column to be the first, got %#v", first)
	}

	next := p.GetNextColumn()
	if next == nil || next.X != 110 {
		t.Fatalf("expected next column at x=110, got %#v", next)
	}

	if p.GetCurrentColumn().X != 110 {
		t.Errorf("GetNextColumn should have advanced the current column")
	}

	if p.GetNextColumn() != nil {
		t.Errorf("expected nil past the last column on the page")
	}
}

func TestPageAddColumn(t *testing.T) {
	p := NewPage(1)
	if p.GetFirstColumn() != nil {
		t.Fatalf("expected no columns on a freshly created page")
	}
	p.AddColumn(NewColumn(0, 0, 200, 800))
	if got := p.GetFirstColumn(); got == nil || got.Width != 200 {
		t.Errorf("GetFirstColumn() = %#v, want width 200", got)
	}
}

func TestForColumnReturnsFullWidthForEveryLine(t *testing.T) {
	c := NewColumn(0, 0, 1000, 500)
	ll := ForColumn(&c)
	if got, want := ll(0), units.Sp(1000); got != want {
		t.Errorf("ll(0) = %v, want %v", got, want)
	}
	if got, want := ll(1), units.Sp(1000); got != want {
		t.Errorf("ll(1) = %v, want %v", got, want)
	}
}

func TestForColumnFallsBackToDefaultWhenColumnHasNoWidth(t *testing.T) {
	c := NewColumn(0, 0, 0, 500)
	ll := ForColumn(&c)
	if got := ll(0); got != DefaultLineLength {
		t.Errorf("ll(0) = %v, want %v", got, DefaultLineLength)
	}
}
