// Package infer - bootstrap inference for robust location estimators.
//
// These procedures are thin, estimator-specific front-ends over the
// generic engine: they bind the estimator closure (and, for the
// studentized variant, its matching scale closure), select the replicate
// convention, and assemble the result envelope.
package infer

import (
	"github.com/katalvlaran/robstat/bootstrap"
	"github.com/katalvlaran/robstat/robust"
)

// TrimMeanBootCI computes a percentile-bootstrap confidence interval for
// the tr-trimmed mean, plus the tie-aware two-sided bootstrap p-value
// against the null value. Defaults: 20% trimming, alpha 0.05, 2000
// replicates, the engine's default seed policy.
//
// Errors: validation sentinels of this package and package bootstrap.
func TrimMeanBootCI(x []float64, opts ...Option) (bootstrap.Result, error) {
	o := gatherOptions(opts...)
	if err := validateTrim(len(x), o.Trim, o.Alpha); err != nil {
		return bootstrap.Result{}, err
	}

	est := func(xs []float64) (float64, error) { return robust.TrimMean(xs, o.Trim), nil }
	dist, err := bootstrap.Build(x, est, o.engineOpts(DefaultPercentileBootstraps)...)
	if err != nil {
		return bootstrap.Result{}, err
	}
	ci, err := bootstrap.PercentileCI(dist, o.Alpha)
	if err != nil {
		return bootstrap.Result{}, err
	}

	return bootstrap.Result{
		Method:   "percentile bootstrap trimmed-mean CI",
		N:        len(x),
		Estimate: bootstrap.NewValue(robust.TrimMean(x, o.Trim)),
		CI:       ci,
		P:        bootstrap.NewValue(bootstrap.PValue(dist, o.Null)),
	}, nil
}

// TrimMeanBootTCI computes a percentile-t (studentized) bootstrap
// confidence interval for the tr-trimmed mean, studentized by the trimmed
// standard error. Symmetric mode (the default) also reports a two-sided
// p-value; equal-tailed mode reports the interval only. Defaults: 20%
// trimming, alpha 0.05, 599 replicates.
//
// Errors: validation sentinels, robust.ErrZeroDispersion when a resample's
// Winsorized dispersion degenerates, bootstrap.ErrZeroScale when a scale
// estimate is non-positive.
func TrimMeanBootTCI(x []float64, opts ...Option) (bootstrap.Result, error) {
	o := gatherOptions(opts...)
	if err := validateTrim(len(x), o.Trim, o.Alpha); err != nil {
		return bootstrap.Result{}, err
	}

	point := func(xs []float64) (float64, error) { return robust.TrimMean(xs, o.Trim), nil }
	scale := func(xs []float64) (float64, error) {
		se := robust.TrimSE(xs, o.Trim)
		if !(se > 0) {
			return 0, robust.ErrZeroDispersion
		}

		return se, nil
	}

	res, err := bootstrap.StudentizedCI(x, point, scale, o.engineOpts(DefaultStudentizedBootstraps)...)
	if err != nil {
		return bootstrap.Result{}, err
	}
	if o.Symmetric {
		res.Method = "percentile-t bootstrap trimmed-mean CI (symmetric)"
	} else {
		res.Method = "percentile-t bootstrap trimmed-mean CI (equal-tailed)"
	}

	return res, nil
}

// MOMCI computes a percentile-bootstrap confidence interval for the
// modified one-step M-estimator of location, plus the two-sided bootstrap
// p-value against the null value. Defaults: alpha 0.05, 2000 replicates.
// MOM takes no trimming parameter, so the Trim option is ignored here.
//
// A resample whose dispersion chain fully degenerates (MAD, IQR and
// Winsorized spread all zero) makes MOM fail with
// robust.ErrZeroDispersion; the failure propagates rather than being
// skipped.
func MOMCI(x []float64, opts ...Option) (bootstrap.Result, error) {
	o := gatherOptions(opts...)
	if err := validateSample(len(x), o.Alpha); err != nil {
		return bootstrap.Result{}, err
	}

	est, err := robust.MOM(x)
	if err != nil {
		return bootstrap.Result{}, err
	}

	momEst := func(xs []float64) (float64, error) { return robust.MOM(xs) }
	dist, err := bootstrap.Build(x, momEst, o.engineOpts(DefaultPercentileBootstraps)...)
	if err != nil {
		return bootstrap.Result{}, err
	}
	ci, err := bootstrap.PercentileCI(dist, o.Alpha)
	if err != nil {
		return bootstrap.Result{}, err
	}

	return bootstrap.Result{
		Method:   "percentile bootstrap MOM CI",
		N:        len(x),
		Estimate: bootstrap.NewValue(est),
		CI:       ci,
		P:        bootstrap.NewValue(bootstrap.PValue(dist, o.Null)),
	}, nil
}
