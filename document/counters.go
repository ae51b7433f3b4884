package document

import (
	"strconv"
	"strings"
)

// Counters tracks one running number per title nesting level (1., 1.1.,
// 1.1.1., ...). Incrementing a level resets every deeper level, the same
// rule LaTeX section counters follow.
//
// Grounded on rust-spandex's document/counters.rs.
type Counters struct {
	counters []int
}

// NewCounters returns an empty counter set.
func NewCounters() *Counters {
	return &Counters{counters: []int{0}}
}

// Increment bumps the counter at level (0-based) and resets every counter
// at a deeper level, returning the new value at level.
func (c *Counters) Increment(level int) int {
	if level+1 > len(c.counters) {
		grown := make([]int, level+1)
		copy(grown, c.counters)
		c.counters = grown
	} else {
		c.counters = c.counters[:level+1]
	}
	c.counters[level]++
	return c.counters[level]
}

// Counter returns the current value of the counter at level, or 0 if it has
// never been incremented.
func (c *Counters) Counter(level int) int {
	if level < 0 || level >= len(c.counters) {
		return 0
	}
	return c.counters[level]
}

// String renders the counters dot-joined, e.g. "2.1.3".
func (c *Counters) String() string {
	parts := make([]string, len(c.counters))
	for i, v := range c.counters {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ".")
}
