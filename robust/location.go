// Package robust - location estimators.
//
// All estimators here are pure: the input slice is never mutated, sorting
// happens on an internal copy, and no state survives the call.
package robust

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// sortedCopy returns an ascending copy of x.
func sortedCopy(x []float64) []float64 {
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)

	return cp
}

// Mean returns the arithmetic mean of x, NaN for empty input.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}

	return stat.Mean(x, nil)
}

// Median returns the sample median of x (mean of the two central order
// statistics for even n), NaN for empty input.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return math.NaN()
	}

	s := sortedCopy(x)
	mid := n / 2
	if n%2 == 1 {
		return s[mid]
	}

	return 0.5 * (s[mid-1] + s[mid])
}

// TrimMean returns the tr-trimmed mean of x: the mean after discarding the
// smallest and largest floor(tr*n) values. tr must lie in [0, 0.5);
// DefaultTrim (0.2) is the conventional choice. Returns NaN for empty
// input or an out-of-range tr.
func TrimMean(x []float64, tr float64) float64 {
	n := len(x)
	if n == 0 || tr < 0 || tr >= 0.5 {
		return math.NaN()
	}

	s := sortedCopy(x)
	g := int(math.Floor(tr * float64(n)))

	return stat.Mean(s[g:n-g], nil)
}

// Winsorize returns a copy of x with every value below the tr-quantile
// boundary replaced by that boundary, and symmetrically above. Order of
// the returned slice matches the input. Returns nil for empty input or an
// out-of-range tr.
func Winsorize(x []float64, tr float64) []float64 {
	n := len(x)
	if n == 0 || tr < 0 || tr >= 0.5 {
		return nil
	}

	s := sortedCopy(x)
	g := int(math.Floor(tr * float64(n)))
	lo, hi := s[g], s[n-g-1]

	w := make([]float64, n)
	for i, v := range x {
		switch {
		case v < lo:
			w[i] = lo
		case v > hi:
			w[i] = hi
		default:
			w[i] = v
		}
	}

	return w
}

// WinMean returns the tr-Winsorized mean of x.
func WinMean(x []float64, tr float64) float64 {
	w := Winsorize(x, tr)
	if w == nil {
		return math.NaN()
	}

	return stat.Mean(w, nil)
}

// MOM returns the modified one-step M-estimator of location: the mean of
// the observations whose distance from the median is at most
// DefaultMOMCutoff scale units. The scale resolves through
// ScaleWithFallback, so a zero MAD alone does not sink the estimate as
// long as the IQR or Winsorized fallbacks still see spread.
//
// Errors:
//   - ErrTooFewValues for fewer than two values.
//   - ErrZeroDispersion when the whole dispersion chain is exhausted.
func MOM(x []float64) (float64, error) {
	if len(x) < 2 {
		return 0, ErrTooFewValues
	}
	s, err := ScaleWithFallback(x)
	if err != nil {
		return 0, err
	}

	med := Median(x)
	var sum float64
	var kept int
	for _, v := range x {
		if math.Abs(v-med)/s <= DefaultMOMCutoff {
			sum += v
			kept++
		}
	}
	// kept >= 1 always: the observations that realize the median have zero
	// deviation, and the resolved scale is strictly positive.

	return sum / float64(kept), nil
}

// huberPsi is Huber's bounded influence function: y clipped to [-bend, bend].
func huberPsi(y, bend float64) float64 {
	if y < -bend {
		return -bend
	}
	if y > bend {
		return bend
	}

	return y
}

// huberStep performs one Huber-ψ update of mu with fixed scale s.
// Returns the additive step and the count of unclipped observations.
func huberStep(x []float64, mu, s, bend float64) (float64, int) {
	var sum float64
	var inside int
	for _, v := range x {
		y := (v - mu) / s
		sum += huberPsi(y, bend)
		if math.Abs(y) <= bend {
			inside++
		}
	}
	if inside == 0 {
		return 0, 0
	}

	return s * sum / float64(inside), inside
}

// OneStep returns the one-step Huber M-estimator of location, starting
// from the median with MAD scale. bend <= 0 selects DefaultBend.
//
// Errors:
//   - ErrTooFewValues for fewer than two values.
//   - ErrZeroDispersion when MAD(x) is zero.
//   - ErrDegenerateWeights when every observation is clipped.
func OneStep(x []float64, bend float64) (float64, error) {
	if len(x) < 2 {
		return 0, ErrTooFewValues
	}
	if bend <= 0 {
		bend = DefaultBend
	}
	s := MAD(x)
	if s == 0 {
		return 0, ErrZeroDispersion
	}

	step, inside := huberStep(x, Median(x), s, bend)
	if inside == 0 {
		return 0, ErrDegenerateWeights
	}

	return Median(x) + step, nil
}

// MEstimate returns the fully iterated Huber M-estimator of location:
// Newton steps from the median with fixed MAD scale until the step falls
// below the convergence tolerance. bend <= 0 selects DefaultBend.
//
// Errors: those of OneStep, plus ErrNoConvergence when the iteration
// budget is exhausted.
func MEstimate(x []float64, bend float64) (float64, error) {
	if len(x) < 2 {
		return 0, ErrTooFewValues
	}
	if bend <= 0 {
		bend = DefaultBend
	}
	s := MAD(x)
	if s == 0 {
		return 0, ErrZeroDispersion
	}

	mu := Median(x)
	for i := 0; i < maxIterations; i++ {
		step, inside := huberStep(x, mu, s, bend)
		if inside == 0 {
			return 0, ErrDegenerateWeights
		}
		mu += step
		if math.Abs(step) < convergenceTol {
			return mu, nil
		}
	}

	return 0, ErrNoConvergence
}

// TauLoc returns the tau measure of location: a smoothly weighted mean
// with bisquare-style weights on MAD-standardized distances from the
// median. cutoff <= 0 selects DefaultTauLocCutoff.
//
// Errors:
//   - ErrTooFewValues for fewer than two values.
//   - ErrZeroDispersion when MAD(x) is zero.
//   - ErrDegenerateWeights when every weight vanishes.
func TauLoc(x []float64, cutoff float64) (float64, error) {
	if len(x) < 2 {
		return 0, ErrTooFewValues
	}
	if cutoff <= 0 {
		cutoff = DefaultTauLocCutoff
	}
	s := MAD(x)
	if s == 0 {
		return 0, ErrZeroDispersion
	}

	med := Median(x)
	var wsum, wxsum float64
	for _, v := range x {
		y := (v - med) / s
		if math.Abs(y) > cutoff {
			continue
		}
		t := y / cutoff
		w := (1 - t*t) * (1 - t*t)
		wsum += w
		wxsum += w * v
	}
	if wsum == 0 {
		return 0, ErrDegenerateWeights
	}

	return wxsum / wsum, nil
}
