// Package bootstrap - plain percentile confidence interval.
package bootstrap

import (
	"math"
	"sort"
)

// PercentileCI converts a sorted bootstrap distribution into a confidence
// interval by index selection on the order statistics.
//
// Index selection (1-based on the sorted distribution):
//
//	lo = round(alpha/2 * nboot) + 1
//	hi = nboot - lo + 1
//
// where round is round-half-away-from-zero (math.Round); both indices are
// clamped to [1, nboot]. The returned bounds are therefore always two
// actual elements of the distribution — no interpolation — and the
// interval is monotonically non-shrinking as alpha decreases.
//
// Errors:
//   - ErrSampleTooSmall if the distribution has fewer than two values.
//   - ErrBadAlpha if alpha is outside (0,1).
//   - ErrUnsorted if the distribution is not ascending (Build output
//     always is; this guards hand-assembled slices).
//
// Complexity: O(nboot) for the sortedness check, O(1) selection.
func PercentileCI(dist []float64, alpha float64) (Interval, error) {
	nboot := len(dist)
	if nboot < 2 {
		return Interval{}, ErrSampleTooSmall
	}
	if !(alpha > 0 && alpha < 1) {
		return Interval{}, ErrBadAlpha
	}
	if !sort.Float64sAreSorted(dist) {
		return Interval{}, ErrUnsorted
	}

	lo := int(math.Round(alpha/2*float64(nboot))) + 1
	hi := nboot - lo + 1
	lo = clampIndex(lo, nboot)
	hi = clampIndex(hi, nboot)
	if lo > hi {
		lo, hi = hi, lo
	}

	return Interval{Lower: dist[lo-1], Upper: dist[hi-1], Valid: true}, nil
}

// clampIndex clamps a 1-based index into [1, nboot].
func clampIndex(i, nboot int) int {
	if i < 1 {
		return 1
	}
	if i > nboot {
		return nboot
	}

	return i
}
