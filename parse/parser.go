package parse

import (
	"regexp"
	"sort"
	"strings"
)

var (
	titleRe    = regexp.MustCompile(`^(#+)([ \t]+)`)
	listItemRe = regexp.MustCompile(`^([ \t]*)- `)
)

// line is one line of source text, with no trailing newline, and the
// absolute byte offset of its first byte.
type line struct {
	text   string
	offset int
}

// splitLines breaks content into lines, each stripped of its trailing '\n'.
// A file with no trailing newline yields a final line holding whatever
// follows the last '\n' (possibly empty); this is deliberately not treated
// as an error condition (an unterminated final line, including an
// unterminated title, is well-formed).
func splitLines(content string) []line {
	var lines []line
	offset := 0
	for {
		idx := strings.IndexByte(content[offset:], '\n')
		if idx < 0 {
			lines = append(lines, line{text: content[offset:], offset: offset})
			return lines
		}
		lines = append(lines, line{text: content[offset : offset+idx], offset: offset})
		offset += idx + 1
	}
}

// Parse parses the full contents of a .dex source file, returning the
// styled tree. Errors and warnings are embedded as leaves in the tree
// (retrievable with Errors and Warnings) rather than aborting the parse;
// Parse itself never fails.
func Parse(path, content string) File {
	lines := splitLines(content)

	lineStarts := make([]int, len(lines))
	for i, l := range lines {
		lineStarts[i] = l.offset
	}

	posAt := func(offset int) Position {
		idx := sort.Search(len(lineStarts), func(i int) bool { return lineStarts[i] > offset }) - 1
		if idx < 0 {
			idx = 0
		}
		return Position{Line: idx + 1, Column: offset - lineStarts[idx] + 1, Offset: offset}
	}

	var body []Node
	i := 0
	for i < len(lines) {
		if strings.TrimSpace(lines[i].text) == "" {
			i++
			continue
		}
		start := i
		for i < len(lines) && strings.TrimSpace(lines[i].text) != "" {
			i++
		}
		body = append(body, parseBlock(content, lines[start:i], posAt)...)
	}

	return File{Path: path, Body: body}
}

// parseBlock parses one run of consecutive non-blank lines, dispatching on
// whether it opens as a title, a list, or plain paragraph text. It may
// return more than one Node (a title block spanning multiple lines yields
// the Title, a MultipleLinesTitle Error, and a trailing Paragraph).
func parseBlock(content string, lines []line, posAt func(int) Position) []Node {
	first := lines[0]

	if m := titleRe.FindStringSubmatch(first.text); m != nil {
		level := len(m[1]) - 1
		contentStart := first.offset + len(m[1]) + len(m[2])

		if len(lines) == 1 {
			title := Title{
				Level: uint8(level),
				Body:  parseInline(first.text[len(m[1])+len(m[2]):], contentStart, posAt),
			}
			return []Node{title}
		}

		title := Title{
			Level: uint8(level),
			Body:  parseInline(first.text[len(m[1])+len(m[2]):], contentStart, posAt),
		}
		rest := lines[1:]
		restStart := rest[0].offset
		restEnd := lines[len(lines)-1].offset + len(lines[len(lines)-1].text)
		return []Node{
			title,
			Error{Position: posAt(restStart), Type: MultipleLinesTitle},
			Paragraph{Body: parseInline(content[restStart:restEnd], restStart, posAt)},
		}
	}

	if listItemRe.MatchString(first.text) {
		return []Node{parseList(content, lines, posAt)}
	}

	blockStart := first.offset
	blockEnd := lines[len(lines)-1].offset + len(lines[len(lines)-1].text)
	return []Node{Paragraph{Body: parseInline(content[blockStart:blockEnd], blockStart, posAt)}}
}

// parseList parses a run of lines, all belonging to a single UnorderedList,
// splitting on every line that opens a new "- "-prefixed item. A line that
// does not open a new item is folded into the body of the preceding item,
// so list items may span multiple lines.
func parseList(content string, lines []line, posAt func(int) Position) Node {
	var items []Node

	i := 0
	for i < len(lines) {
		m := listItemRe.FindStringSubmatch(lines[i].text)
		level := len(m[1]) / 2
		itemStart := lines[i].offset + len(m[0])

		j := i + 1
		for j < len(lines) && !listItemRe.MatchString(lines[j].text) {
			j++
		}
		itemEnd := lines[j-1].offset + len(lines[j-1].text)

		items = append(items, UnorderedListItem{
			Level: uint8(level),
			Body:  parseInline(content[itemStart:itemEnd], itemStart, posAt),
		})
		i = j
	}

	return UnorderedList{Items: items}
}
