// Package regress - bootstrap mediation analysis.
//
// Description:
//
//	The indirect effect of x on y through a mediator m is the product of
//	two path coefficients: a, the slope of m on x, and b, the partial
//	slope of m in the two-predictor model y ~ x + m. The sampling
//	distribution of a·b is skewed, so the interval comes from a
//	percentile bootstrap over whole (x, m, y) observations rather than a
//	normal approximation.
//
// Path algebra (per resample):
//
//	a = cov(x,m) / var(x)                        (simple regression)
//	b = (cov(m,y)·var(x) - cov(x,y)·cov(x,m)) /
//	    (var(x)·var(m) - cov(x,m)^2)             (normal equations)
//
// Complexity: O(nboot * n) plus the final sort.
package regress

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/robstat/bootstrap"
)

// indirectEffect computes a·b for one (x, m, y) triple.
func indirectEffect(cols ...[]float64) (float64, error) {
	x, m, y := cols[0], cols[1], cols[2]

	vx := stat.Variance(x, nil)
	if vx == 0 {
		return 0, ErrConstantPredictor
	}
	vm := stat.Variance(m, nil)
	cxm := stat.Covariance(x, m, nil)
	det := vx*vm - cxm*cxm
	if det == 0 {
		return 0, ErrSingularDesign
	}

	// a from the simple regression of m on x.
	_, a := stat.LinearRegression(x, m, nil, false)

	cxy := stat.Covariance(x, y, nil)
	cmy := stat.Covariance(m, y, nil)
	b := (cmy*vx - cxy*cxm) / det

	return a * b, nil
}

// Mediate computes a percentile-bootstrap confidence interval and
// two-sided p-value for the indirect effect of x on y through the
// mediator m. Defaults: alpha 0.05, 2000 replicates.
//
// Errors:
//   - bootstrap.ErrSampleTooSmall, bootstrap.ErrLengthMismatch,
//     bootstrap.ErrBadAlpha.
//   - ErrConstantPredictor / ErrSingularDesign on a degenerate original
//     sample or any degenerate resample (failures propagate).
func Mediate(x, m, y []float64, opts ...Option) (bootstrap.Result, error) {
	o := gatherOptions(opts...)
	if !(o.Alpha > 0 && o.Alpha < 1) {
		return bootstrap.Result{}, bootstrap.ErrBadAlpha
	}
	if len(x) < 2 {
		return bootstrap.Result{}, bootstrap.ErrSampleTooSmall
	}
	if len(m) != len(x) || len(y) != len(x) {
		return bootstrap.Result{}, bootstrap.ErrLengthMismatch
	}

	est, err := indirectEffect(x, m, y)
	if err != nil {
		return bootstrap.Result{}, err
	}

	dist, err := bootstrap.BuildMulti([][]float64{x, m, y}, indirectEffect,
		o.engineOpts(DefaultMediationBootstraps)...)
	if err != nil {
		return bootstrap.Result{}, err
	}
	ci, err := bootstrap.PercentileCI(dist, o.Alpha)
	if err != nil {
		return bootstrap.Result{}, err
	}

	return bootstrap.Result{
		Method:   "percentile bootstrap mediation (indirect effect) CI",
		N:        len(x),
		Estimate: bootstrap.NewValue(est),
		CI:       ci,
		P:        bootstrap.NewValue(bootstrap.PValue(dist, 0)),
	}, nil
}
