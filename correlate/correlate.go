// Package correlate - correlation estimators and paired-bootstrap tests.
package correlate

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/robstat/bootstrap"
	"github.com/katalvlaran/robstat/robust"
)

// Pearson returns the product-moment correlation of the paired vectors.
//
// Errors:
//   - bootstrap.ErrSampleTooSmall for fewer than two pairs.
//   - bootstrap.ErrLengthMismatch for unequal lengths.
//   - robust.ErrZeroDispersion when either vector is constant.
func Pearson(x, y []float64) (float64, error) {
	if len(x) < 2 {
		return 0, bootstrap.ErrSampleTooSmall
	}
	if len(x) != len(y) {
		return 0, bootstrap.ErrLengthMismatch
	}

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return 0, robust.ErrZeroDispersion
	}

	return r, nil
}

// pbTransform standardizes a vector for the percentage-bend correlation:
// deviations from the median scaled by the (1-beta) percentage-bend
// threshold, clipped to [-1, 1].
func pbTransform(x []float64, beta float64) ([]float64, error) {
	n := len(x)
	med := robust.Median(x)
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
		return nil, robust.ErrZeroDispersion
	}

	out := make([]float64, n)
	for i, v := range x {
		t := (v - med) / omega
		if t < -1 {
			t = -1
		} else if t > 1 {
			t = 1
		}
		out[i] = t
	}

	return out, nil
}

// PBCor computes the percentage-bend correlation of the paired vectors
// with bend parameter beta (robust.DefaultBeta when the option is unset),
// plus the Student-t test of zero correlation on n-2 degrees of freedom:
//
//	T = r * sqrt((n-2) / (1-r^2))
//
// Errors:
//   - bootstrap.ErrSampleTooSmall for fewer than three pairs (the test
//     needs at least one degree of freedom).
//   - bootstrap.ErrLengthMismatch for unequal lengths.
//   - robust.ErrZeroDispersion when either percentage-bend threshold or
//     the transformed cross-moments degenerate to zero.
//
// Complexity: O(n log n).
func PBCor(x, y []float64, opts ...Option) (bootstrap.Result, error) {
	o := gatherOptions(opts...)
	n := len(x)
	if n < 3 {
		return bootstrap.Result{}, bootstrap.ErrSampleTooSmall
	}
	if n != len(y) {
		return bootstrap.Result{}, bootstrap.ErrLengthMismatch
	}

	a, err := pbTransform(x, o.Beta)
	if err != nil {
		return bootstrap.Result{}, err
	}
	b, err := pbTransform(y, o.Beta)
	if err != nil {
		return bootstrap.Result{}, err
	}

	var sab, saa, sbb float64
	for i := range a {
		sab += a[i] * b[i]
		saa += a[i] * a[i]
		sbb += b[i] * b[i]
	}
	if saa == 0 || sbb == 0 {
		return bootstrap.Result{}, robust.ErrZeroDispersion
	}
	r := sab / math.Sqrt(saa*sbb)

	df := float64(n - 2)
	res := bootstrap.Result{
		Method:   "percentage-bend correlation",
		N:        n,
		Estimate: bootstrap.NewValue(r),
		DF:       bootstrap.NewValue(df),
	}
	if 1-r*r <= 0 {
		// perfectly collinear after bending: the test statistic diverges
		res.Statistic = bootstrap.NewValue(math.Inf(sign(r)))
		res.P = bootstrap.NewValue(0)

		return res, nil
	}

	tstat := r * math.Sqrt(df/(1-r*r))
	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	res.Statistic = bootstrap.NewValue(tstat)
	res.P = bootstrap.NewValue(2 * (1 - tdist.CDF(math.Abs(tstat))))

	return res, nil
}

// CorCI computes a paired percentile-bootstrap confidence interval for a
// correlation estimator (Pearson unless WithEstimator overrides it), plus
// the tie-aware two-sided bootstrap p-value against zero correlation —
// which makes the procedure a test of independence.
//
// Both vectors of every resample are gathered with the same index row;
// shuffling one vector independently of the other would destroy exactly
// the dependence being measured.
//
// Errors: validation sentinels of package bootstrap; estimator errors on
// degenerate resamples (e.g. a constant resampled vector) propagate.
func CorCI(x, y []float64, opts ...Option) (bootstrap.Result, error) {
	o := gatherOptions(opts...)
	if !(o.Alpha > 0 && o.Alpha < 1) {
		return bootstrap.Result{}, bootstrap.ErrBadAlpha
	}
	pe := o.Estimator
	if pe == nil {
		pe = Pearson
	}

	est, err := pe(x, y)
	if err != nil {
		return bootstrap.Result{}, err
	}

	dist, err := bootstrap.BuildPaired(x, y, pe, o.engineOpts()...)
	if err != nil {
		return bootstrap.Result{}, err
	}
	ci, err := bootstrap.PercentileCI(dist, o.Alpha)
	if err != nil {
		return bootstrap.Result{}, err
	}

	return bootstrap.Result{
		Method:   "paired percentile bootstrap correlation CI",
		N:        len(x),
		Estimate: bootstrap.NewValue(est),
		CI:       ci,
		P:        bootstrap.NewValue(bootstrap.PValue(dist, 0)),
	}, nil
}

// sign maps a non-negative r to +1 and a negative r to -1, for math.Inf.
func sign(r float64) int {
	if r < 0 {
		return -1
	}

	return 1
}
