// Package bootstrap - bootstrap standard error.
package bootstrap

import "gonum.org/v1/gonum/stat"

// StdError estimates the standard error of an estimator as the sample
// standard deviation of its bootstrap distribution.
//
// The replicate count defaults to DefaultBootstraps; procedures that follow
// the classical nboot=1000 convention pass WithBootstraps(1000) explicitly.
//
// Errors: those of Build.
//
// Complexity: that of Build plus O(nboot).
func StdError(data []float64, est Estimator, opts ...Option) (float64, error) {
	dist, err := Build(data, est, opts...)
	if err != nil {
		return 0, err
	}

	return stat.StdDev(dist, nil), nil
}
