package parse

import "strings"

// parseInline scans a run of inline source text (no block structure left in
// it) into a flat slice of Nodes. base is the absolute byte offset of s[0]
// in the original file, used to compute Position for embedded Error and
// Warning leaves. posAt converts an absolute offset to a Position.
//
// Grounded on rust-spandex's parser/combinators.rs: alt!() tries, in order,
// "**" (empty emphasis warning), "||..." (line comment), styled spans
// (bold/italic/inline math), a bare delimiter (unmatched-delimiter error),
// the literal pipe, and finally a run of plain text.
func parseInline(s string, base int, posAt func(int) Position) []Node {
	var nodes []Node
	i := 0
	n := len(s)

	for i < n {
		switch {
		case strings.HasPrefix(s[i:], "**"):
			nodes = append(nodes, Warning{Position: posAt(base + i), Type: ConsecutiveStars})
			i += 2

		case strings.HasPrefix(s[i:], "||"):
			rest := s[i:]
			if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
				nodes = append(nodes, Newline{})
				i += nl + 1
			} else {
				nodes = append(nodes, Newline{})
				i = n
			}

		case s[i] == '*':
			if j := strings.IndexByte(s[i+1:], '*'); j >= 0 {
				inner := s[i+1 : i+1+j]
				nodes = append(nodes, Bold{Body: parseInline(inner, base+i+1, posAt)})
				i = i + 1 + j + 1
			} else {
				nodes = append(nodes, Error{Position: posAt(base + i), Type: UnmatchedStar})
				i++
			}

		case s[i] == '/':
			if j := strings.IndexByte(s[i+1:], '/'); j >= 0 {
				inner := s[i+1 : i+1+j]
				nodes = append(nodes, Italic{Body: parseInline(inner, base+i+1, posAt)})
				i = i + 1 + j + 1
			} else {
				nodes = append(nodes, Error{Position: posAt(base + i), Type: UnmatchedSlash})
				i++
			}

		case s[i] == '$':
			if j := strings.IndexByte(s[i+1:], '$'); j >= 0 {
				nodes = append(nodes, InlineMath{Content: s[i+1 : i+1+j]})
				i = i + 1 + j + 1
			} else {
				nodes = append(nodes, Error{Position: posAt(base + i), Type: UnmatchedDollar})
				i++
			}

		case s[i] == '|':
			nodes = append(nodes, Text{Content: "|"})
			i++

		default:
			j := i
			for j < n && s[j] != '*' && s[j] != '/' && s[j] != '$' && s[j] != '|' {
				j++
			}
			nodes = append(nodes, Text{Content: Ligature(s[i:j])})
			i = j
		}
	}

	return nodes
}
