// Package infer - closed-form trimmed-mean inference.
package infer

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/robstat/bootstrap"
	"github.com/katalvlaran/robstat/robust"
)

// TrimMeanCI computes the classical Student-t confidence interval and
// two-sided test for the trimmed mean:
//
//	tmean ± t(1-alpha/2, n-2g-1) * trimse
//
// with g = floor(tr*n) values trimmed per tail, the trimmed standard
// error of robust.TrimSE, and test statistic (tmean - null) / trimse on
// n-2g-1 degrees of freedom.
//
// Errors:
//   - bootstrap.ErrSampleTooSmall, ErrBadTrim, bootstrap.ErrBadAlpha.
//   - ErrDegenerateTrim when trimming leaves no degrees of freedom.
//   - robust.ErrZeroDispersion when the Winsorized dispersion is zero.
//
// Complexity: O(n log n).
func TrimMeanCI(x []float64, opts ...Option) (bootstrap.Result, error) {
	o := gatherOptions(opts...)
	n := len(x)
	if err := validateTrim(n, o.Trim, o.Alpha); err != nil {
		return bootstrap.Result{}, err
	}

	g := int(math.Floor(o.Trim * float64(n)))
	df := n - 2*g - 1
	if df < 1 {
		return bootstrap.Result{}, ErrDegenerateTrim
	}

	se := robust.TrimSE(x, o.Trim)
	if !(se > 0) {
		return bootstrap.Result{}, robust.ErrZeroDispersion
	}

	tm := robust.TrimMean(x, o.Trim)
	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	crit := tdist.Quantile(1 - o.Alpha/2)
	stat := (tm - o.Null) / se
	p := 2 * (1 - tdist.CDF(math.Abs(stat)))

	return bootstrap.Result{
		Method:    "trimmed-mean t confidence interval",
		N:         n,
		Estimate:  bootstrap.NewValue(tm),
		CI:        bootstrap.Interval{Lower: tm - crit*se, Upper: tm + crit*se, Valid: true},
		Statistic: bootstrap.NewValue(stat),
		DF:        bootstrap.NewValue(float64(df)),
		P:         bootstrap.NewValue(p),
	}, nil
}
