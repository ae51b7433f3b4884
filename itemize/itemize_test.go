package itemize

import (
	"reflect"
	"testing"

	"github.com/SCKelemen/spandex/hyphenate"
	"github.com/SCKelemen/spandex/units"
)

// fakeFace reports a fixed advance width per rune so word/text itemization
// can be tested without parsing a real TrueType font.
type fakeFace struct{ width units.Sp }

func (f fakeFace) AdvanceWidth(rune, units.Pt) units.Sp { return f.width }

func TestSplitKeepingBoundaryPreservesSpaces(t *testing.T) {
	got := splitKeepingBoundary("a  b")
	want := []field{{"a", false}, {"  ", true}, {"b", false}}
	if len(got) != len(want) {
		t.Fatalf("got %d fields, want %d: %#v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestFinishAppendsKnuthPlassSentinel(t *testing.T) {
	items := finish(nil)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Kind != GlueKind || items[0].Stretch != units.PlusInfinity {
		t.Errorf("items[0] = %#v, want infinite-stretch glue", items[0])
	}
	if items[1].Kind != PenaltyKind || items[1].Cost != PenaltyMinusInfinity {
		t.Errorf("items[1] = %#v, want forced penalty", items[1])
	}
}

func TestItemizeWordInsertsHyphenPenaltyAtBreaks(t *testing.T) {
	face := fakeFace{width: 10}
	h := hyphenate.NewLiangDictionary([]string{"1a"}, 0, 0)
	items := itemizeWord("banana", face, 10, h)

	var penalties int
	for _, it := range items {
		if it.Kind == PenaltyKind {
			penalties++
			if !it.Flagged {
				t.Errorf("hyphenation penalty should be flagged")
			}
		}
	}
	if penalties == 0 {
		t.Errorf("expected at least one hyphenation penalty in %#v", items)
	}
}

func TestItemizeWordNoHyphenationIsOneBox(t *testing.T) {
	face := fakeFace{width: 10}
	items := itemizeWord("word", face, 10, hyphenate.None{})
	if len(items) != 1 || items[0].Kind != BoxKind {
		t.Fatalf("items = %#v, want a single Box", items)
	}
	if len(items[0].Glyphs) != 4 {
		t.Errorf("got %d glyphs, want 4", len(items[0].Glyphs))
	}
}

func TestItemizeWordWidthSumsGlyphWidths(t *testing.T) {
	face := fakeFace{width: 3}
	items := itemizeWord("ab", face, 10, hyphenate.None{})
	if items[0].Width != 6 {
		t.Errorf("width = %d, want 6", items[0].Width)
	}
}

func TestWithIndentPrependsZeroElasticityGlue(t *testing.T) {
	box := Box(10, Glyph{Character: 'a', Width: 10})
	got := WithIndent([]Item{box}, 40)
	if len(got) != 2 {
		t.Fatalf("got %d items, want 2", len(got))
	}
	if got[0].Kind != GlueKind || got[0].Width != 40 || got[0].Stretch != 0 || got[0].Shrink != 0 {
		t.Errorf("items[0] = %#v, want zero-elasticity glue of width 40", got[0])
	}
	if !reflect.DeepEqual(got[1], box) {
		t.Errorf("items[1] = %#v, want the original box untouched", got[1])
	}
}

func TestWithIndentIsNoOpForZeroIndent(t *testing.T) {
	box := Box(10, Glyph{Character: 'a', Width: 10})
	got := WithIndent([]Item{box}, 0)
	if len(got) != 1 || !reflect.DeepEqual(got[0], box) {
		t.Errorf("got %#v, want items unchanged", got)
	}
}
