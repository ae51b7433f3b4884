// Package breaking finds the globally optimal set of line breaks for an
// itemized paragraph using the Knuth-Plass algorithm: the one that
// minimizes the total "demerits" (a combination of how far each line's
// natural width is from its target, and how its tightness/looseness
// compares to its neighbors) across every way of splitting the paragraph
// into lines.
//
// Grounded on rust-spandex's layout/paragraphs/engine.rs and
// utils/linebreak.rs for the adjustment-ratio, badness, demerits, and
// fitness formulas, and on the teacher's knuthplass.go for the Go shape of
// the active-node sweep (parent-pointer breakpoint nodes, no graph
// library — matching the original design's avoidance of petgraph, which
// this package has no grounded Go replacement for in the example pack).
package breaking

import (
	"math"

	"github.com/SCKelemen/spandex/units"
)

// Tuning constants for the algorithm, named and valued after rust-spandex's
// layout/constants.rs.
const (
	// MinAdjustmentRatio is the most a line may be asked to shrink before
	// a breakpoint there is considered infeasible. Exported so package
	// position can clamp a replayed ratio the same way.
	MinAdjustmentRatio = -1.0
	minAdjustmentRatio = MinAdjustmentRatio
	// maxAdjustmentRatio is the most a line may be asked to stretch
	// before a breakpoint there is considered infeasible, under normal
	// (non-relaxed) operation.
	maxAdjustmentRatio = 10.0
	// relaxedMaxAdjustmentRatio is used for the single bounded retry when
	// no breakpoint sequence is feasible under maxAdjustmentRatio: lines
	// may stretch up to this many times their stretchability. It does not
	// help a line that is too wide and has nothing to shrink.
	relaxedMaxAdjustmentRatio = 100000.0

	// minCost is the penalty threshold below which a break is forced.
	minCost = -1000.0
	// adjacentLooseTightPenalty punishes a line break between two lines
	// of very different fitness (e.g. a tight line next to a loose one).
	adjacentLooseTightPenalty = 50.0
)

// measures accumulates the three running sums the algorithm tracks from the
// start of the paragraph: width, stretchability, and shrinkability.
type measures struct {
	width   units.Sp
	stretch units.Sp
	shrink  units.Sp
}

// AdjustmentRatio reports how much a line of actualWidth must stretch
// (positive) or shrink (negative) to reach desiredWidth, given how much
// stretch/shrink glue is available on that line. +Inf means the line
// cannot possibly reach desiredWidth in that direction.
//
// Exported so package position can recompute the same per-line ratios
// once a breakpoint sequence is chosen, without duplicating the formula.
func AdjustmentRatio(actualWidth, desiredWidth, stretch, shrink units.Sp) float64 {
	switch {
	case actualWidth == desiredWidth:
		return 0
	case actualWidth < desiredWidth:
		if stretch != 0 {
			return float64(desiredWidth-actualWidth) / float64(stretch)
		}
		return math.Inf(1)
	default:
		if shrink != 0 {
			return float64(desiredWidth-actualWidth) / float64(shrink)
		}
		return math.Inf(1)
	}
}

// badness is the classic Knuth-Plass cost of a line's adjustment ratio: the
// cube of its absolute value, so small deviations cost little and large
// ones blow up fast.
func badness(ratio float64) float64 {
	a := ratio
	if a < 0 {
		a = -a
	}
	return a * a * a
}

// fitness classifies a line's looseness into one of four classes, used to
// penalize adjacent lines whose fitness differs by more than one class.
func fitness(ratio float64) int {
	switch {
	case ratio < -0.5:
		return 0 // tight
	case ratio < 0.5:
		return 1 // normal
	case ratio < 1.0:
		return 2 // loose
	default:
		return 3 // very loose
	}
}

// demerits combines a line's badness with the cost of the penalty (if any)
// at the chosen breakpoint.
func demerits(cost float64, badnessValue float64) float64 {
	switch {
	case cost >= 0:
		v := 1 + badnessValue + cost
		return v * v
	case cost > minCost:
		v := 1 + badnessValue
		return v*v - cost*cost
	default:
		v := 1 + badnessValue
		return v * v
	}
}
