package parse

import (
	"fmt"
	"strings"
)

// Diagnostic is a single formattable error or warning, the common shape
// Diagnostic.Format renders regardless of whether it came from an Error or a
// Warning leaf.
type Diagnostic struct {
	Path     string
	Position Position
	Severity string // "error" or "warning"
	Title    string
	Detail   string
}

// Diagnostics collects every Error leaf and then every Warning leaf in
// tree, each group in tree order, as Diagnostic values ready to format.
func Diagnostics(path string, tree Node) []Diagnostic {
	var diags []Diagnostic
	for _, e := range Errors(tree) {
		diags = append(diags, Diagnostic{
			Path: path, Position: e.Position, Severity: "error",
			Title: e.Type.Title(), Detail: e.Type.Detail(),
		})
	}
	for _, w := range Warnings(tree) {
		diags = append(diags, Diagnostic{
			Path: path, Position: w.Position, Severity: "warning",
			Title: w.Type.Title(), Detail: w.Type.Detail(),
		})
	}
	return diags
}

// Format renders a five-line diagnostic report in the style of:
//
//	error: unmatched *
//	  --> title.dex:1:11
//	   |
//	 1 | # A title *bold
//	   |           ^ bold content starts here but never ends
//
// source is the full original file content, used to recover the excerpt
// line and to compute caret alignment.
func (d Diagnostic) Format(source string) string {
	lines := splitLines(source)
	lineText := ""
	if d.Position.Line-1 < len(lines) {
		lineText = lines[d.Position.Line-1].text
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", d.Severity, d.Title)
	fmt.Fprintf(&b, "  --> %s:%d:%d\n", d.Path, d.Position.Line, d.Position.Column)
	fmt.Fprintf(&b, "   |\n")
	fmt.Fprintf(&b, "%2d | %s\n", d.Position.Line, lineText)
	fmt.Fprintf(&b, "   | %s^ %s", strings.Repeat(" ", d.Position.Column-1), d.Detail)
	return b.String()
}
