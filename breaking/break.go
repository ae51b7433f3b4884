package breaking

import (
	"fmt"

	"github.com/SCKelemen/spandex/itemize"
	"github.com/SCKelemen/spandex/units"
)

// LineLength is the line-length oracle the algorithm consults for the
// target width of the line-th line (0-based) of a paragraph; package layout's
// ForColumn builds one that returns a single column's width for every line.
type LineLength func(line int) units.Sp

// node is a feasible breakpoint: a candidate place to end a line, with
// enough accumulated state to extend it further and a parent pointer to
// reconstruct the full path once the best final node is known.
type node struct {
	index        int
	line         int
	fitnessClass int
	totals       measures
	demerits     float64
	prev         *node
}

// Break runs the Knuth-Plass algorithm over items, returning the item
// indices chosen as line breaks (the first is always 0; the paragraph's
// final forced penalty is always the last). If no feasible breakpoint
// sequence exists within the normal adjustment-ratio bounds (some line
// would have to stretch further than maxAdjustmentRatio allows), Break
// retries once with the upper bound relaxed to relaxedMaxAdjustmentRatio.
// If that pass fails too (for example a line too wide for its length with
// nothing to shrink), the whole paragraph is returned as a single line,
// [0, len(items)-1]. relaxed reports whether either fallback was used, so
// callers can surface a warning. Empty items yield nil.
//
// Break panics if an item has a negative width.
func Break(items []itemize.Item, lineLength LineLength) (breakpoints []int, relaxed bool) {
	if bp := run(items, lineLength, maxAdjustmentRatio); bp != nil {
		return bp, false
	}
	if bp := run(items, lineLength, relaxedMaxAdjustmentRatio); bp != nil {
		return bp, true
	}
	if len(items) == 0 {
		return nil, true
	}
	return []int{0, len(items) - 1}, true
}

// run executes one pass of the algorithm with the given upper adjustment
// ratio bound, returning nil if no active node survives to the end of the
// paragraph.
func run(items []itemize.Item, lineLength LineLength, maxRatio float64) []int {
	if len(items) == 0 {
		return nil
	}

	active := []*node{{index: 0, line: 0, fitnessClass: 1}}
	var sums measures
	linesBestNode := make(map[int]*node)
	farthestLine := 0

	for b, item := range items {
		if item.Width < 0 {
			panic(fmt.Sprintf("breaking: item %d has negative width %v", b, item.Width))
		}
		canBreak := false

		switch item.Kind {
		case itemize.BoxKind:
			sums.width = sums.width.Add(item.Width)

		case itemize.GlueKind:
			canBreak = b > 0 && items[b-1].Kind == itemize.BoxKind
			if !canBreak {
				sums.width = sums.width.Add(item.Width)
				sums.stretch = sums.stretch.Add(item.Stretch)
				sums.shrink = sums.shrink.Add(item.Shrink)
			}

		case itemize.PenaltyKind:
			canBreak = item.Cost < itemize.PenaltyInfinity
		}

		if !canBreak {
			continue
		}

		forced := item.Kind == itemize.PenaltyKind && float64(item.Cost) <= minCost

		ahead := aheadMeasures(items, b, sums)

		var feasible []*node
		var survivors []*node

		for _, a := range active {
			desired := lineLength(a.line)
			actualWidth := sums.width.Sub(a.totals.width)
			if item.Kind == itemize.PenaltyKind {
				// A penalty's width (the hyphen) counts only when the
				// line ends on it.
				actualWidth = actualWidth.Add(item.Width)
			}
			stretch := sums.stretch.Sub(a.totals.stretch)
			shrink := sums.shrink.Sub(a.totals.shrink)

			ratio := AdjustmentRatio(actualWidth, desired, stretch, shrink)

			if ratio >= minAdjustmentRatio && ratio <= maxRatio {
				penalty := 0.0
				if item.Kind == itemize.PenaltyKind {
					penalty = float64(item.Cost)
				}
				d := demerits(penalty, badness(ratio))
				fc := fitness(ratio)
				if a.index > 0 && abs(fc-a.fitnessClass) > 1 {
					d += adjacentLooseTightPenalty
				}

				feasible = append(feasible, &node{
					index:        b,
					line:         a.line + 1,
					fitnessClass: fc,
					totals:       ahead,
					demerits:     a.demerits + d,
					prev:         a,
				})
			}

			if ratio < minAdjustmentRatio || forced {
				continue // a cannot be extended past b; drop it
			}
			survivors = append(survivors, a)
		}

		if len(feasible) > 0 {
			best := feasible[0]
			for _, n := range feasible[1:] {
				if n.demerits < best.demerits {
					best = n
				}
			}

			if existing, ok := linesBestNode[best.line]; !ok || best.demerits < existing.demerits {
				linesBestNode[best.line] = best
				if best.line > farthestLine {
					farthestLine = best.line
				}
			}

			survivors = append(survivors, best)
		}

		active = survivors

		if item.Kind == itemize.GlueKind {
			sums.width = sums.width.Add(item.Width)
			sums.stretch = sums.stretch.Add(item.Stretch)
			sums.shrink = sums.shrink.Add(item.Shrink)
		}
	}

	best, ok := linesBestNode[farthestLine]
	if !ok || best.index != len(items)-1 {
		// No active node survived all the way to the paragraph's closing
		// forced break: the run is infeasible, not just imperfect.
		return nil
	}

	var result []int
	for n := best; n != nil; n = n.prev {
		result = append([]int{n.index}, result...)
	}
	return result
}

// aheadMeasures extends sums (the running totals not yet including items[from])
// past items[from] and any further glue or non-forcing penalties up to but
// not including the next box, so that a node's totals never bill a
// following line's leading discardable items to the line that just ended.
// Grounded on rust-spandex's get_measures_to_next_box (engine.rs/
// linebreak.rs), corrected here to accumulate each item's own width rather
// than re-adding the breakpoint item's width on every iteration.
func aheadMeasures(items []itemize.Item, from int, sums measures) measures {
	for i := from; i < len(items); i++ {
		item := items[i]
		switch item.Kind {
		case itemize.GlueKind:
			sums.width = sums.width.Add(item.Width)
			sums.stretch = sums.stretch.Add(item.Stretch)
			sums.shrink = sums.shrink.Add(item.Shrink)
		case itemize.PenaltyKind:
			if float64(item.Cost) <= minCost {
				return sums
			}
			// A non-forcing penalty contributes no width when the break is
			// taken there; keep scanning past it for further glue.
		default:
			return sums
		}
	}
	return sums
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// LegalBreakpoints returns every item index that is a legal place to break
// a line: the paragraph's start, every glue immediately preceded by a box,
// and every penalty whose cost is not PenaltyInfinity.
func LegalBreakpoints(items []itemize.Item) []int {
	breakpoints := []int{0}
	lastWasBox := false

	for i, item := range items {
		switch item.Kind {
		case itemize.PenaltyKind:
			if item.Cost < itemize.PenaltyInfinity {
				breakpoints = append(breakpoints, i)
			}
			lastWasBox = false
		case itemize.GlueKind:
			if lastWasBox {
				breakpoints = append(breakpoints, i)
			}
			lastWasBox = false
		case itemize.BoxKind:
			lastWasBox = true
		}
	}

	return breakpoints
}
