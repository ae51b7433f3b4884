// Package hyphenate implements Frank Liang's hyphenation pattern-matching
// algorithm (1983), used by TeX and carried over here for the same purpose:
// finding the legal hyphenation points inside a word so the line breaker has
// more candidate breakpoints to work with.
//
// Grounded on the teacher's text.HyphenationDictionary in hyphenate.go;
// generalized into a Hyphenator interface so package itemize can depend on
// the behavior without depending on a concrete dictionary implementation.
//
// Reference: "Word Hy-phen-a-tion by Com-put-er", Franklin Mark Liang,
// https://tug.org/docs/liang/
package hyphenate

import "strings"

// Hyphenator finds the legal hyphenation points within a word.
type Hyphenator interface {
	// Breaks returns the byte offsets into word, in ascending order, at
	// which a hyphen may legally be inserted.
	Breaks(word string) []int
}

// LiangDictionary is a Hyphenator backed by a table of Liang patterns.
type LiangDictionary struct {
	patterns map[string][]int // pattern letters -> priority at each gap
	minLeft  int
	minRight int
}

// NewLiangDictionary builds a dictionary from a set of patterns in the
// classic TeX notation (digits between letters give the priority of a
// break at that position; odd priorities permit a break, even priorities
// forbid one, overriding a lower-priority permission from another pattern).
// minLeft and minRight bound how close to either end of the word a break
// may fall.
func NewLiangDictionary(rawPatterns []string, minLeft, minRight int) *LiangDictionary {
	d := &LiangDictionary{
		patterns: make(map[string][]int, len(rawPatterns)),
		minLeft:  minLeft,
		minRight: minRight,
	}
	for _, raw := range rawPatterns {
		letters, numbers := splitPattern(raw)
		d.patterns[letters] = numbers
	}
	return d
}

// splitPattern separates a raw Liang pattern such as "hyph1en" into its
// letters ("hyphen") and the priority that follows each letter (the gap
// before letter i carries numbers[i]; numbers has len(letters)+1 entries).
func splitPattern(raw string) (string, []int) {
	var letters strings.Builder
	numbers := make([]int, 0, len(raw)+1)
	numbers = append(numbers, 0)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c >= '0' && c <= '9' {
			numbers[len(numbers)-1] = int(c - '0')
		} else {
			letters.WriteByte(c)
			numbers = append(numbers, 0)
		}
	}
	return letters.String(), numbers
}

// Breaks implements Hyphenator.
func (d *LiangDictionary) Breaks(word string) []int {
	if len(word) < d.minLeft+d.minRight {
		return nil
	}

	normalized := "." + strings.ToLower(word) + "."
	priorities := make([]int, len(normalized)+1)

	for letters, numbers := range d.patterns {
		applyPattern(normalized, letters, numbers, priorities)
	}

	var points []int
	for i := d.minLeft; i <= len(word)-d.minRight; i++ {
		if priorities[i+1]%2 == 1 {
			points = append(points, i)
		}
	}
	return points
}

// applyPattern finds every occurrence of letters in word (which is already
// dot-delimited and lowercased) and raises priorities at each matched gap to
// the pattern's value, never lowering an existing higher priority from a
// different pattern.
func applyPattern(word, letters string, numbers, priorities []int) {
	for i := 0; i+len(letters) <= len(word); i++ {
		if word[i:i+len(letters)] != letters {
			continue
		}
		for j, p := range numbers {
			if p > priorities[i+j] {
				priorities[i+j] = p
			}
		}
	}
}

// Insert returns word with a hyphen inserted at every legal break point.
func Insert(h Hyphenator, word, hyphen string) string {
	points := h.Breaks(word)
	if len(points) == 0 {
		return word
	}
	var b strings.Builder
	last := 0
	for _, p := range points {
		b.WriteString(word[last:p])
		b.WriteString(hyphen)
		last = p
	}
	b.WriteString(word[last:])
	return b.String()
}

// None is a Hyphenator that never proposes a break, for documents or
// languages with no hyphenation dictionary configured.
type None struct{}

// Breaks implements Hyphenator.
func (None) Breaks(string) []int { return nil }
