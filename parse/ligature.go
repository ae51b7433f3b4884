package parse

import "strings"

// ligatureTable is the fixed ASCII-to-Unicode substitution table applied to
// literal text runs. spec.md explicitly scopes ligature substitution beyond
// this fixed table as a Non-goal, implying the fixed table itself is in
// scope; grounded on rust-spandex's src/ligature.rs.
var ligatureTable = []struct {
	from string
	to   string
}{
	{"---", "—"}, // em dash
	{"--", "–"},  // en dash
	{"``", "“"},  // left double quotation mark
	{"''", "”"},  // right double quotation mark
	{"...", "…"}, // horizontal ellipsis
}

// Ligature rewrites the fixed ASCII sequences of ligatureTable into their
// Unicode counterparts within s. Longer sequences are replaced first so
// that "---" is not left as a leftover "-" after "--" substitution.
func Ligature(s string) string {
	for _, lig := range ligatureTable {
		s = strings.ReplaceAll(s, lig.from, lig.to)
	}
	return s
}
