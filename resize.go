package panelarea

import "math"

// ResizePolicy decides how a pointer delta is turned into a size transfer
// between the two regions next to the active gutter.
type ResizePolicy uint8

const (
	// ResizeHardStop moves the gutter only while both neighbours stay inside
	// their bounds. When the pointer overshoots, the gutter stops at the
	// bound and waits for the pointer to come back. A drag that starts with
	// a neighbour out of bounds only applies in-bounds pairs. The pair sum is
	// conserved exactly.
	ResizeHardStop ResizePolicy = iota

	// ResizeSplit clamps each neighbour on its own and splits the resulting
	// error evenly between them before a final clamp. Sum conservation is
	// approximate whenever the final clamp engages (max bounds below 100).
	ResizeSplit
)

// String returns the layout-file name of the policy.
func (p ResizePolicy) String() string {
	if p == ResizeSplit {
		return "split"
	}
	return "hard_stop"
}

// ParseResizePolicy converts a layout-file policy name.
func ParseResizePolicy(s string) (ResizePolicy, bool) {
	switch s {
	case "", "hard_stop":
		return ResizeHardStop, true
	case "split":
		return ResizeSplit, true
	}
	return ResizeHardStop, false
}

// transfer computes the new sizes of left and right for a drag that started
// at startLeft/startRight and has moved deltaPct percent along the main axis.
// ok is false when the event must not change anything.
func (p ResizePolicy) transfer(left, right *Region, startLeft, startRight, deltaPct float64) (newLeft, newRight float64, ok bool) {
	if math.IsNaN(deltaPct) || math.IsInf(deltaPct, 0) {
		return 0, 0, false
	}
	if p == ResizeSplit {
		return splitTransfer(left, right, startLeft, startRight, deltaPct)
	}
	return hardStopTransfer(left, right, startLeft, startRight, deltaPct)
}

// feasibleDelta returns the interval of deltas that keep both neighbours
// inside their bounds.
func feasibleDelta(left, right *Region, startLeft, startRight float64) (lo, hi float64) {
	lo = math.Max(left.MinSize()-startLeft, startRight-right.MaxSize())
	hi = math.Min(left.MaxSize()-startLeft, startRight-right.MinSize())
	return lo, hi
}

func hardStopTransfer(left, right *Region, startLeft, startRight, deltaPct float64) (float64, float64, bool) {
	total := startLeft + startRight

	// A drag that starts outside the bounds cannot be pinned to a bound
	// without a jump: only in-bounds candidate pairs are applied.
	if !left.inBounds(startLeft) || !right.inBounds(startRight) {
		newLeft := startLeft + deltaPct
		newRight := total - newLeft
		if !left.inBounds(newLeft) || !right.inBounds(newRight) {
			return 0, 0, false
		}
		return newLeft, newRight, true
	}

	lo, hi := feasibleDelta(left, right, startLeft, startRight)
	if lo > hi+sizeEpsilon {
		// No position of this gutter satisfies both bounds.
		return 0, 0, false
	}
	d := deltaPct
	if d < lo {
		d = lo
	}
	if d > hi {
		d = hi
	}
	newLeft := startLeft + d
	return newLeft, total - newLeft, true
}

func splitTransfer(left, right *Region, startLeft, startRight, deltaPct float64) (float64, float64, bool) {
	total := startLeft + startRight
	n1 := math.Max(left.MinSize(), math.Min(total-right.MinSize(), startLeft+deltaPct))
	n2 := math.Max(right.MinSize(), startRight-deltaPct)
	adjustment := total - (n1 + n2)
	n1 = clamp(n1+adjustment/2, left.MinSize(), left.MaxSize())
	n2 = clamp(n2+adjustment/2, right.MinSize(), right.MaxSize())
	return n1, n2, true
}
