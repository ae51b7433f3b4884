package itemize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/SCKelemen/spandex/font"
	"github.com/SCKelemen/spandex/hyphenate"
	"github.com/SCKelemen/spandex/parse"
	"github.com/SCKelemen/spandex/units"
)

// hyphenPenalty is the cost charged for breaking at a hyphenation point
// inside a word, matching the teacher's KnuthPlassOptions.HyphenPenalty
// default in knuthplass.go.
const hyphenPenalty = 50

// titleScale is the per-level size multiplier applied to a title's base
// size: a level-0 title (one leading '#') is rendered largest.
var titleScale = []float64{2.0, 1.6, 1.3, 1.1}

// BlockKind identifies what kind of document block a Block itemizes.
type BlockKind int

const (
	// BlockParagraph is an ordinary paragraph.
	BlockParagraph BlockKind = iota
	// BlockTitle is a heading, with Level giving its nesting depth.
	BlockTitle
	// BlockListItem is a single entry of an unordered list, with Level
	// giving its indentation depth.
	BlockListItem
)

// Block is one itemized unit of document content: the flat item sequence
// package breaking will find line breaks in, tagged with enough context
// (kind, nesting level) for package document to lay it out and style it.
type Block struct {
	Kind      BlockKind
	Level     uint8
	Paragraph Paragraph
}

// Document walks every top-level node of a parsed file and itemizes it into
// one Block per title, paragraph, or list item. Grounded on the traversal
// described for rust-spandex's layout/paragraphs/engine.rs (Group/File
// recurse, Paragraph/Title/ListItem terminate a unit of breakable content).
func Document(file parse.File, cfg font.Config, baseSize units.Pt, hyph hyphenate.Hyphenator, indent units.Sp) []Block {
	var blocks []Block
	for _, n := range file.Body {
		blocks = append(blocks, block(n, cfg, baseSize, hyph, indent)...)
	}
	return blocks
}

func block(n parse.Node, cfg font.Config, baseSize units.Pt, hyph hyphenate.Hyphenator, indent units.Sp) []Block {
	switch t := n.(type) {
	case parse.Title:
		scale := 1.0
		if int(t.Level) < len(titleScale) {
			scale = titleScale[t.Level]
		}
		size := units.Pt(float64(baseSize) * scale)
		items := itemizeInline(t.Body, font.Regular().Bold(), size, cfg, hyph)
		return []Block{{Kind: BlockTitle, Level: t.Level, Paragraph: Paragraph{Items: finish(items)}}}

	case parse.Paragraph:
		items := itemizeInline(t.Body, font.Regular(), baseSize, cfg, hyph)
		return []Block{{Kind: BlockParagraph, Paragraph: Paragraph{Items: WithIndent(finish(items), indent)}}}

	case parse.UnorderedList:
		var out []Block
		for _, item := range t.Items {
			li, ok := item.(parse.UnorderedListItem)
			if !ok {
				continue
			}
			items := bullet(li.Level, baseSize, cfg)
			items = append(items, itemizeInline(li.Body, font.Regular(), baseSize, cfg, hyph)...)
			out = append(out, Block{Kind: BlockListItem, Level: li.Level, Paragraph: Paragraph{Items: WithIndent(finish(items), indent)}})
		}
		return out

	case parse.Group:
		var out []Block
		for _, c := range t.Body {
			out = append(out, block(c, cfg, baseSize, hyph, indent)...)
		}
		return out

	default:
		// Error and Warning leaves are diagnostics, surfaced separately
		// via parse.Errors/parse.Warnings; Newline and other leaves at
		// block level carry no content.
		return nil
	}
}

// bullet returns the items for a "• " prefix indented by level, following
// the teacher's css.go convention of indenting nested content by two spaces
// per level.
func bullet(level uint8, size units.Pt, cfg font.Config) []Item {
	face := cfg.For(font.Regular())
	indent := strings.Repeat("  ", int(level)) + "• "
	var items []Item
	for _, r := range indent {
		items = append(items, glyphBox(r, size, face))
	}
	return items
}

// itemizeInline walks inline content (the body of a Paragraph, Title, or
// UnorderedListItem) into boxes, glue, and hyphenation penalties.
func itemizeInline(nodes []parse.Node, style font.Style, size units.Pt, cfg font.Config, hyph hyphenate.Hyphenator) []Item {
	var items []Item
	for _, n := range nodes {
		items = append(items, itemizeNode(n, style, size, cfg, hyph)...)
	}
	return items
}

func itemizeNode(n parse.Node, style font.Style, size units.Pt, cfg font.Config, hyph hyphenate.Hyphenator) []Item {
	switch t := n.(type) {
	case parse.Text:
		return itemizeText(t.Content, style, size, cfg, hyph)

	case parse.Bold:
		return itemizeInline(t.Body, style.Bold(), size, cfg, hyph)

	case parse.Italic:
		return itemizeInline(t.Body, style.Italic(), size, cfg, hyph)

	case parse.InlineMath:
		// Inline math is laid out as a single indivisible run: no
		// internal break opportunities, no hyphenation.
		face := cfg.For(style)
		var glyphs []Glyph
		var width units.Sp
		for _, r := range t.Content {
			w := face.AdvanceWidth(r, size)
			glyphs = append(glyphs, Glyph{Character: r, Width: w, Face: face, Size: size})
			width = width.Add(w)
		}
		return []Item{Box(width, glyphs...)}

	default:
		// Newline, Group (inline position is flattened by the parser),
		// Error, Warning: no content to itemize.
		return nil
	}
}

// glyphMetrics is the narrow surface itemize needs from a font face. Any
// *font.Face satisfies it structurally.
type glyphMetrics interface {
	AdvanceWidth(r rune, size units.Pt) units.Sp
}

// itemizeText splits a text run on whitespace into words, inserting
// stretchable/shrinkable glue between them and a hyphenation penalty at
// every legal hyphenation point found inside a word, following the
// glue parameters and hyphen-penalty convention from the teacher's
// WrapKnuthPlass and DefaultKnuthPlassOptions.
func itemizeText(content string, style font.Style, size units.Pt, cfg font.Config, hyph hyphenate.Hyphenator) []Item {
	face := cfg.For(style)
	spaceWidth := face.AdvanceWidth(' ', size)

	var items []Item
	fields := splitKeepingBoundary(content)

	for _, f := range fields {
		if f.isSpace {
			items = append(items, Glue(spaceWidth, spaceWidth/2, spaceWidth/3))
			continue
		}
		items = append(items, itemizeWord(f.text, face, size, hyph)...)
	}
	return items
}

type field struct {
	text    string
	isSpace bool
}

// splitKeepingBoundary splits s into alternating runs of whitespace and
// non-whitespace, preserving both (unlike strings.Fields, which discards
// the separators).
func splitKeepingBoundary(s string) []field {
	var fields []field
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		isSpace := unicode.IsSpace(runes[i])
		j := i
		for j < len(runes) && unicode.IsSpace(runes[j]) == isSpace {
			j++
		}
		fields = append(fields, field{text: string(runes[i:j]), isSpace: isSpace})
		i = j
	}
	return fields
}

func itemizeWord(word string, face glyphMetrics, size units.Pt, hyph hyphenate.Hyphenator) []Item {
	// Glyph.Face is only set when the caller passed a real *font.Face
	// (tests exercise this package with a fakeFace, which has none to
	// carry): package pdf needs the concrete face to draw a glyph, but
	// nothing in this package does.
	concreteFace, _ := face.(*font.Face)

	breaks := hyph.Breaks(word)
	hyphenWidth := face.AdvanceWidth('-', size)

	breakSet := make(map[int]bool, len(breaks))
	for _, b := range breaks {
		breakSet[b] = true
	}

	var items []Item
	var glyphs []Glyph
	var width units.Sp
	flush := func() {
		if len(glyphs) > 0 {
			items = append(items, Box(width, glyphs...))
			glyphs = nil
			width = 0
		}
	}

	// breaks are byte offsets into word, so match them against the byte
	// offset just past each rune.
	for i, r := range word {
		w := face.AdvanceWidth(r, size)
		glyphs = append(glyphs, Glyph{Character: r, Width: w, Face: concreteFace, Size: size})
		width = width.Add(w)
		_, n := utf8.DecodeRuneInString(word[i:])
		if end := i + n; breakSet[end] && end < len(word) {
			flush()
			items = append(items, Penalty(hyphenWidth, hyphenPenalty, true))
		}
	}
	flush()
	return items
}

// finish appends the standard Knuth-Plass end-of-paragraph sequence: glue
// that can stretch without limit, followed by a forced break, guaranteeing
// the optimizer always finds a final breakpoint.
func finish(items []Item) []Item {
	return append(items, Glue(0, units.PlusInfinity, 0), Penalty(0, PenaltyMinusInfinity, false))
}

func glyphBox(r rune, size units.Pt, face glyphMetrics) Item {
	concreteFace, _ := face.(*font.Face)
	w := face.AdvanceWidth(r, size)
	return Box(w, Glyph{Character: r, Width: w, Face: concreteFace, Size: size})
}
