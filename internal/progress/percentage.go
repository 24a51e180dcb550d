// Package progress turns raw funding numbers into display values: the
// clamped percent-funded figure and locale-aware currency strings.
package progress

import "math"

// Percentage returns raised/goal as an integer percent in [0, 100].
//
// A goal that is zero, negative, NaN or infinite yields 0, as does a
// non-positive or NaN raised amount. Values above the goal clamp to 100.
// Rounding is half-up.
func Percentage(raised, goal float64) int {
	if !(goal > 0) || math.IsInf(goal, 1) {
		return 0
	}
	if !(raised > 0) {
		return 0
	}

	p := raised / goal * 100
	if p >= 100 {
		return 100
	}
	return int(math.Floor(p + 0.5))
}
