package parse

import "testing"

func TestParseTitleLevel0(t *testing.T) {
	f := Parse("title.dex", "# A title\n")
	if len(f.Body) != 1 {
		t.Fatalf("got %d top-level nodes, want 1", len(f.Body))
	}
	title, ok := f.Body[0].(Title)
	if !ok {
		t.Fatalf("got %T, want Title", f.Body[0])
	}
	if title.Level != 0 {
		t.Errorf("Level = %d, want 0", title.Level)
	}
	if len(title.Body) != 1 || title.Body[0] != (Text{Content: "A title"}) {
		t.Errorf("Body = %#v, want [Text{A title}]", title.Body)
	}
}

func TestParseTitleLevel1(t *testing.T) {
	f := Parse("title.dex", "## A subtitle\n")
	title, ok := f.Body[0].(Title)
	if !ok {
		t.Fatalf("got %T, want Title", f.Body[0])
	}
	if title.Level != 1 {
		t.Errorf("Level = %d, want 1", title.Level)
	}
}

func TestParseSiblingTitles(t *testing.T) {
	f := Parse("titles.dex", "# First\n\n# Second\n")
	if len(f.Body) != 2 {
		t.Fatalf("got %d top-level nodes, want 2", len(f.Body))
	}
	for i, want := range []string{"First", "Second"} {
		title, ok := f.Body[i].(Title)
		if !ok {
			t.Fatalf("node %d: got %T, want Title", i, f.Body[i])
		}
		if len(title.Body) != 1 || title.Body[0] != (Text{Content: want}) {
			t.Errorf("node %d: Body = %#v, want [Text{%s}]", i, title.Body, want)
		}
	}
}

func TestParseMultiLineTitleEmitsError(t *testing.T) {
	f := Parse("title.dex", "# A title\nmore text on the next line\n")
	if len(f.Body) != 3 {
		t.Fatalf("got %d top-level nodes, want 3 (Title, Error, Paragraph)", len(f.Body))
	}
	if _, ok := f.Body[0].(Title); !ok {
		t.Errorf("node 0 = %T, want Title", f.Body[0])
	}
	errNode, ok := f.Body[1].(Error)
	if !ok {
		t.Fatalf("node 1 = %T, want Error", f.Body[1])
	}
	if errNode.Type != MultipleLinesTitle {
		t.Errorf("error type = %v, want MultipleLinesTitle", errNode.Type)
	}
	if errNode.Position.Line != 2 {
		t.Errorf("error line = %d, want 2", errNode.Position.Line)
	}
	if _, ok := f.Body[2].(Paragraph); !ok {
		t.Errorf("node 2 = %T, want Paragraph", f.Body[2])
	}
}

func TestParseTitleWithoutTrailingNewlineIsWellFormed(t *testing.T) {
	f := Parse("title.dex", "# A title")
	if len(f.Body) != 1 {
		t.Fatalf("got %d top-level nodes, want 1", len(f.Body))
	}
	if _, ok := f.Body[0].(Title); !ok {
		t.Fatalf("node 0 = %T, want Title", f.Body[0])
	}
	if errs := Errors(f); len(errs) != 0 {
		t.Errorf("got %d errors, want 0: %#v", len(errs), errs)
	}
}

func TestParseUnmatchedStarReportsPosition(t *testing.T) {
	f := Parse("body.dex", "A *bold\n")
	errs := Errors(f)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %#v", len(errs), errs)
	}
	if errs[0].Type != UnmatchedStar {
		t.Errorf("error type = %v, want UnmatchedStar", errs[0].Type)
	}
	if errs[0].Position.Line != 1 || errs[0].Position.Column != 3 {
		t.Errorf("position = %v, want 1:3", errs[0].Position)
	}
}

func TestParseConsecutiveStarsIsWarningNotError(t *testing.T) {
	f := Parse("body.dex", "A **B\n")
	if errs := Errors(f); len(errs) != 0 {
		t.Errorf("got %d errors, want 0: %#v", len(errs), errs)
	}
	warns := Warnings(f)
	if len(warns) != 1 {
		t.Fatalf("got %d warnings, want 1: %#v", len(warns), warns)
	}
	if warns[0].Type != ConsecutiveStars {
		t.Errorf("warning type = %v, want ConsecutiveStars", warns[0].Type)
	}
}

func TestParseBoldAndItalicSpans(t *testing.T) {
	f := Parse("body.dex", "A *bold* and /italic/ text\n")
	para, ok := f.Body[0].(Paragraph)
	if !ok {
		t.Fatalf("got %T, want Paragraph", f.Body[0])
	}
	var sawBold, sawItalic bool
	for _, n := range para.Body {
		switch n.(type) {
		case Bold:
			sawBold = true
		case Italic:
			sawItalic = true
		}
	}
	if !sawBold {
		t.Errorf("did not find a Bold node in %#v", para.Body)
	}
	if !sawItalic {
		t.Errorf("did not find an Italic node in %#v", para.Body)
	}
}

func TestParseTwoItemList(t *testing.T) {
	f := Parse("list.dex", "- Item 1\n- Item 2\n")
	if len(f.Body) != 1 {
		t.Fatalf("got %d top-level nodes, want 1", len(f.Body))
	}
	list, ok := f.Body[0].(UnorderedList)
	if !ok {
		t.Fatalf("got %T, want UnorderedList", f.Body[0])
	}
	if len(list.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(list.Items))
	}
	for i, want := range []string{"Item 1", "Item 2"} {
		item, ok := list.Items[i].(UnorderedListItem)
		if !ok {
			t.Fatalf("item %d: got %T, want UnorderedListItem", i, list.Items[i])
		}
		if item.Level != 0 {
			t.Errorf("item %d: Level = %d, want 0", i, item.Level)
		}
		if len(item.Body) != 1 || item.Body[0] != (Text{Content: want}) {
			t.Errorf("item %d: Body = %#v, want [Text{%s}]", i, item.Body, want)
		}
	}
}

func TestParseListItemSpansMultipleLines(t *testing.T) {
	f := Parse("list.dex", "- first line\n  second line\n")
	list := f.Body[0].(UnorderedList)
	if len(list.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(list.Items))
	}
	item := list.Items[0].(UnorderedListItem)
	joined := ""
	for _, n := range item.Body {
		if txt, ok := n.(Text); ok {
			joined += txt.Content
		}
	}
	if joined != "first line\n  second line" {
		t.Errorf("joined body = %q", joined)
	}
}

func TestDiagnosticsFormat(t *testing.T) {
	src := "A *bold\n"
	f := Parse("body.dex", src)
	diags := Diagnostics("body.dex", f)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	out := diags[0].Format(src)
	if out == "" {
		t.Errorf("formatted diagnostic is empty")
	}
}
