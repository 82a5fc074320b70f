// Package bootstrap - two-sided bootstrap p-value synthesis.
package bootstrap

import "math"

// PValue computes a two-sided bootstrap p-value for the hypothesis that
// the estimand equals null, from the bootstrap distribution of the
// estimator.
//
// Convention (tie-splitting, symmetrized):
//
//	pBelow = fraction of dist strictly below null
//	pTie   = 0.5 * fraction of dist exactly equal to null
//	p      = 2 * min(pBelow+pTie, 1-pBelow-pTie)
//
// Splitting ties in half keeps p <= 1 when the null value coincides with
// replicate values, and makes the two-sided test symmetric regardless of
// which tail the null falls in. The distribution need not be sorted.
//
// Returns NaN for an empty distribution; otherwise the result lies in [0,1].
//
// Complexity: O(nboot).
func PValue(dist []float64, null float64) float64 {
	if len(dist) == 0 {
		return nan()
	}

	var below, ties int
	for _, v := range dist {
		switch {
		case v < null:
			below++
		case v == null:
			ties++
		}
	}

	pstar := (float64(below) + 0.5*float64(ties)) / float64(len(dist))

	return 2 * math.Min(pstar, 1-pstar)
}

// nan returns a quiet NaN; used for genuinely undefined arithmetic, never
// for "not computed" (that is Value.Valid / Interval.Valid).
func nan() float64 { return math.NaN() }
