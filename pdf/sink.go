// Package pdf renders positioned glyphs to a PDF file via
// codeberg.org/go-pdf/fpdf, the fork of jung-kurt/gofpdf the example pack
// otherwise shows (tdewolff-canvas's example/main.go drives the same API
// surface through the pre-fork import path). This replaces rust-spandex's
// printpdf dependency, which isn't available to this module — the fpdf
// family is the closest equivalent the pack actually demonstrates.
package pdf

import (
	"codeberg.org/go-pdf/fpdf"

	"github.com/SCKelemen/spandex/font"
	"github.com/SCKelemen/spandex/units"
)

// Sink accumulates pages of positioned text and writes them out as a single
// PDF document. Grounded on rust-spandex's document/mod.rs Document, with
// printpdf's page/layer model replaced by fpdf's simpler page-per-AddPage
// model.
type Sink struct {
	pdf                   *fpdf.Fpdf
	pageWidth, pageHeight units.Pt
	registered            map[string]bool
}

// New creates a sink for pages of the given size, in points.
func New(pageWidth, pageHeight units.Pt) *Sink {
	p := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        "",
		Size:           fpdf.SizeType{Wd: float64(pageWidth), Ht: float64(pageHeight)},
		FontDirStr:     "",
	})
	return &Sink{pdf: p, pageWidth: pageWidth, pageHeight: pageHeight, registered: map[string]bool{}}
}

// NewPage starts a fresh page.
func (s *Sink) NewPage() {
	s.pdf.AddPage()
}

// useFace registers face's bytes with fpdf under its own name, once.
func (s *Sink) useFace(face *font.Face) {
	if s.registered[face.Name] {
		return
	}
	s.pdf.AddUTF8FontFromBytes(face.Name, "", face.Bytes)
	s.registered[face.Name] = true
}

// UseText draws a single glyph at (x, y), measured from the page's top-left
// corner in points, using face at the given size.
func (s *Sink) UseText(r rune, face *font.Face, size units.Pt, x, y units.Pt) {
	s.useFace(face)
	s.pdf.SetFont(face.Name, "", float64(size))
	s.pdf.SetXY(float64(x), float64(y))
	s.pdf.CellFormat(float64(size), float64(size), string(r), "", 0, "LT", false, 0, "")
}

// Save writes the accumulated document to path.
func (s *Sink) Save(path string) error {
	return s.pdf.OutputFileAndClose(path)
}

// Err returns the first error fpdf recorded while building the document, if
// any — fpdf defers error reporting rather than returning it from each
// drawing call.
func (s *Sink) Err() error {
	return s.pdf.Error()
}
