// Package font wraps golang/freetype/truetype to answer the one question
// the rest of the typesetter needs from a font: how wide is this glyph at
// this size. Rendering the glyphs themselves is the pdf package's job.
//
// Grounded on rust-spandex's src/font.rs (which wraps the freetype crate the
// same way, for the same reason) and on golang/freetype/truetype's Font,
// Parse, Index, HMetric, and UnitsPerEm, the only Go font-metrics library
// attested in the example pack.
package font

import (
	"fmt"

	"github.com/golang/freetype/truetype"

	"github.com/SCKelemen/spandex/spandexerr"
	"github.com/SCKelemen/spandex/units"
)

// Face is a parsed font ready to measure and to hand to the PDF sink for
// embedding.
type Face struct {
	Name  string
	Bytes []byte
	ttf   *truetype.Font
}

// Parse reads a TrueType/OpenType font from bytes.
func Parse(name string, data []byte) (*Face, error) {
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: parsing %s: %w: %v", name, spandexerr.ErrUnsupportedFontFormat, err)
	}
	return &Face{Name: name, Bytes: data, ttf: ttf}, nil
}

// AdvanceWidth returns the horizontal advance of r when set at size,
// following the same "unscaled glyph units, then rescale by unitsPerEm"
// computation as char_width in the teacher's source. A rune the font has no
// glyph for measures 0.
func (f *Face) AdvanceWidth(r rune, size units.Pt) units.Sp {
	index := f.ttf.Index(r)
	if index == 0 {
		// Index 0 is the font's .notdef glyph: r is not in the font.
		return 0
	}
	metric := f.ttf.HMetric(index)
	unitsPerEm := f.ttf.UnitsPerEm()
	if unitsPerEm == 0 {
		return 0
	}
	widthPt := float64(metric.AdvanceWidth) * float64(size) / float64(unitsPerEm)
	return units.FromPt(units.Pt(widthPt))
}

// TextWidth returns the summed advance width of every rune in s at size.
func (f *Face) TextWidth(s string, size units.Pt) units.Sp {
	var total units.Sp
	for _, r := range s {
		total = total.Add(f.AdvanceWidth(r, size))
	}
	return total
}
