// Package robust - scale estimators and outlier screening.
//
// Scaling constants that make the estimators consistent for the standard
// deviation under normality are derived from the standard normal quantile
// function (gonum distuv) rather than hard-coded decimals.
package robust

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// normQ75 is the 0.75 quantile of the standard normal distribution,
// the consistency denominator of the scaled MAD and normalized IQR.
var normQ75 = distuv.UnitNormal.Quantile(0.75)

// winStdNormConst is the expected 20% Winsorized standard deviation of a
// standard normal variable; dividing by it makes WinStd a consistent
// sigma estimate in the fallback chain.
const winStdNormConst = 0.642

// rawMAD returns the unscaled median absolute deviation from the median.
func rawMAD(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}

	med := Median(x)
	dev := make([]float64, len(x))
	for i, v := range x {
		dev[i] = math.Abs(v - med)
	}

	return Median(dev)
}

// MAD returns the median absolute deviation scaled by 1/Φ⁻¹(0.75), making
// it consistent for the standard deviation under normality. NaN for empty
// input; zero when more than half the values tie at the median.
func MAD(x []float64) float64 {
	return rawMAD(x) / normQ75
}

// WinVar returns the tr-Winsorized sample variance of x (Bessel divisor),
// NaN for empty input or an out-of-range tr.
func WinVar(x []float64, tr float64) float64 {
	w := Winsorize(x, tr)
	if w == nil {
		return math.NaN()
	}

	return stat.Variance(w, nil)
}

// WinStd returns the tr-Winsorized sample standard deviation of x.
func WinStd(x []float64, tr float64) float64 {
	return math.Sqrt(WinVar(x, tr))
}

// TrimSE returns the standard error of the tr-trimmed mean:
//
//	sqrt(WinVar(x, tr)) / ((1-2tr) * sqrt(n))
//
// NaN for empty input or an out-of-range tr. A zero return signals zero
// Winsorized dispersion; scale-dependent callers must treat it as
// degenerate rather than divide by it.
func TrimSE(x []float64, tr float64) float64 {
	n := len(x)
	if n == 0 || tr < 0 || tr >= 0.5 {
		return math.NaN()
	}

	return WinStd(x, tr) / ((1 - 2*tr) * math.Sqrt(float64(n)))
}

// IdealFourths returns the ideal-fourths estimates of the lower and upper
// quartiles: interpolated order statistics at depth n/4 + 5/12. Requires
// n >= 4; returns NaNs otherwise.
func IdealFourths(x []float64) (ql, qu float64) {
	n := len(x)
	if n < 4 {
		return math.NaN(), math.NaN()
	}

	s := sortedCopy(x)
	depth := float64(n)/4 + 5.0/12.0
	j := int(math.Floor(depth))
	h := depth - float64(j)

	ql = (1-h)*s[j-1] + h*s[j]
	k := n - j + 1
	qu = (1-h)*s[k-1] + h*s[k-2]

	return ql, qu
}

// IQRScale returns the ideal-fourths interquartile range normalized by
// 2Φ⁻¹(0.75), a consistent sigma estimate under normality. NaN for n < 4.
func IQRScale(x []float64) float64 {
	ql, qu := IdealFourths(x)

	return (qu - ql) / (2 * normQ75)
}

// OutlierBox flags observations outside the boxplot fences
// [ql - 1.5*IQR, qu + 1.5*IQR] built on the ideal fourths.
//
// Errors: ErrTooFewValues for n < 4.
func OutlierBox(x []float64) ([]bool, error) {
	if len(x) < 4 {
		return nil, ErrTooFewValues
	}

	ql, qu := IdealFourths(x)
	iqr := qu - ql
	lo, hi := ql-1.5*iqr, qu+1.5*iqr

	flags := make([]bool, len(x))
	for i, v := range x {
		flags[i] = v < lo || v > hi
	}

	return flags, nil
}

// PBVar returns the percentage-bend midvariance of x with bend parameter
// beta (the fraction of observations allowed full influence is 1-beta).
// beta <= 0 selects DefaultBeta.
//
// Errors:
//   - ErrTooFewValues for fewer than two values.
//   - ErrZeroDispersion when the bend threshold or the inlier count
//     degenerates to zero.
func PBVar(x []float64, beta float64) (float64, error) {
	n := len(x)
	if n < 2 {
		return 0, ErrTooFewValues
	}
	if beta <= 0 {
		beta = DefaultBeta
	}

	med := Median(x)
	dev := make([]float64, n)
	for i, v := range x {
		dev[i] = math.Abs(v - med)
	}
	sort.Float64s(dev)

	m := int(math.Floor((1-beta)*float64(n) + 0.5))
	if m < 1 {
		m = 1
	}
	if m > n {
		m = n
	}
	omega := dev[m-1]
	if omega == 0 {
		return 0, ErrZeroDispersion
	}

	var sumPsi2 float64
	var inliers int
	for _, v := range x {
		y := (v - med) / omega
		psi := huberPsi(y, 1)
		sumPsi2 += psi * psi
		if math.Abs(y) < 1 {
			inliers++
		}
	}
	if inliers == 0 {
		return 0, ErrZeroDispersion
	}

	return float64(n) * omega * omega * sumPsi2 / (float64(inliers) * float64(inliers)), nil
}

// BiVar returns the biweight midvariance of x: a resistant variance
// estimate with bisquare weights on deviations standardized by nine raw
// MADs.
//
// Errors:
//   - ErrTooFewValues for fewer than two values.
//   - ErrZeroDispersion when the raw MAD is zero or all weights vanish.
func BiVar(x []float64) (float64, error) {
	n := len(x)
	if n < 2 {
		return 0, ErrTooFewValues
	}
	mad0 := rawMAD(x)
	if mad0 == 0 {
		return 0, ErrZeroDispersion
	}

	med := Median(x)
	var num, den float64
	for _, v := range x {
		u := (v - med) / (9 * mad0)
		if math.Abs(u) >= 1 {
			continue
		}
		t := 1 - u*u
		num += (v - med) * (v - med) * t * t * t * t
		den += t * (1 - 5*u*u)
	}
	if den == 0 {
		return 0, ErrZeroDispersion
	}

	return float64(n) * num / (den * den), nil
}

// TauVar returns the tau measure of variance: clipped squared deviations
// from TauLoc, standardized by the scaled MAD. cutoff <= 0 selects
// DefaultTauVarCutoff.
//
// Errors: those of TauLoc.
func TauVar(x []float64, cutoff float64) (float64, error) {
	if cutoff <= 0 {
		cutoff = DefaultTauVarCutoff
	}
	loc, err := TauLoc(x, DefaultTauLocCutoff)
	if err != nil {
		return 0, err
	}
	s := MAD(x)

	var sum float64
	for _, v := range x {
		y := (v - loc) / s
		sum += math.Min(y*y, cutoff*cutoff)
	}

	return s * s * sum / float64(len(x)), nil
}

// ScaleWithFallback resolves a dispersion estimate through a prioritized
// strategy chain: scaled MAD first, then the normalized IQR, then the
// normalized Winsorized standard deviation. The first strictly positive
// estimate wins.
//
// Errors: ErrZeroDispersion when the whole chain degenerates (e.g. more
// than 80% of the values are identical).
func ScaleWithFallback(x []float64) (float64, error) {
	if len(x) < 2 {
		return 0, ErrTooFewValues
	}

	if s := MAD(x); s > 0 {
		return s, nil
	}
	if s := IQRScale(x); s > 0 {
		return s, nil
	}
	if s := WinStd(x, DefaultTrim) / winStdNormConst; s > 0 {
		return s, nil
	}

	return 0, ErrZeroDispersion
}
