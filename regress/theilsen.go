// Package regress - Theil–Sen resistant regression.
//
// Description:
//
//	The Theil–Sen estimator takes the median of all pairwise slopes
//	(y_j - y_i) / (x_j - x_i) over pairs with distinct x, and the median
//	residual as intercept. A single wild observation moves the fit far
//	less than under least squares: the slope has a breakdown point of
//	about 29%.
//
// Complexity: O(n^2) slopes plus the median sorts.
package regress

import (
	"github.com/katalvlaran/robstat/bootstrap"
	"github.com/katalvlaran/robstat/robust"
)

// TheilSen returns the Theil–Sen slope and intercept of y on x.
//
// Errors:
//   - bootstrap.ErrSampleTooSmall for fewer than two points.
//   - bootstrap.ErrLengthMismatch for unequal lengths.
//   - ErrConstantPredictor when every pair shares the same x.
func TheilSen(x, y []float64) (slope, intercept float64, err error) {
	n := len(x)
	if n < 2 {
		return 0, 0, bootstrap.ErrSampleTooSmall
	}
	if n != len(y) {
		return 0, 0, bootstrap.ErrLengthMismatch
	}

	slopes := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			if x[j] == x[i] {
				continue
			}
			slopes = append(slopes, (y[j]-y[i])/(x[j]-x[i]))
		}
	}
	if len(slopes) == 0 {
		return 0, 0, ErrConstantPredictor
	}

	slope = robust.Median(slopes)
	resid := make([]float64, n)
	for i := range x {
		resid[i] = y[i] - slope*x[i]
	}
	intercept = robust.Median(resid)

	return slope, intercept, nil
}

// TheilSenSlopeCI computes a paired percentile-bootstrap confidence
// interval for the Theil–Sen slope, plus the two-sided bootstrap p-value
// against a zero slope. Defaults: alpha 0.05, 599 replicates.
//
// A resample whose x values collapse to a single point makes the slope
// undefined; the resulting ErrConstantPredictor propagates rather than
// being skipped.
func TheilSenSlopeCI(x, y []float64, opts ...Option) (bootstrap.Result, error) {
	o := gatherOptions(opts...)
	if !(o.Alpha > 0 && o.Alpha < 1) {
		return bootstrap.Result{}, bootstrap.ErrBadAlpha
	}

	est, _, err := TheilSen(x, y)
	if err != nil {
		return bootstrap.Result{}, err
	}

	slopeEst := func(xs, ys []float64) (float64, error) {
		b, _, e := TheilSen(xs, ys)

		return b, e
	}
	dist, err := bootstrap.BuildPaired(x, y, slopeEst, o.engineOpts(DefaultSlopeBootstraps)...)
	if err != nil {
		return bootstrap.Result{}, err
	}
	ci, err := bootstrap.PercentileCI(dist, o.Alpha)
	if err != nil {
		return bootstrap.Result{}, err
	}

	return bootstrap.Result{
		Method:   "paired percentile bootstrap Theil-Sen slope CI",
		N:        len(x),
		Estimate: bootstrap.NewValue(est),
		CI:       ci,
		P:        bootstrap.NewValue(bootstrap.PValue(dist, 0)),
	}, nil
}
