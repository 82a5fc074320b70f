// Package robust: sentinel errors and tuning defaults.
package robust

import "errors"

// Sentinel errors returned by estimators that can hit degenerate inputs.
// All are matched with errors.Is; none of the estimators panic.
var (
	// ErrTooFewValues indicates an input vector too short for the estimator.
	ErrTooFewValues = errors.New("robust: too few values")

	// ErrZeroDispersion indicates that every dispersion estimate available
	// to the estimator came out zero, so a scaled statistic is undefined.
	ErrZeroDispersion = errors.New("robust: zero dispersion estimate")

	// ErrDegenerateWeights indicates that a weighting scheme assigned zero
	// weight to every observation (all flagged as outliers).
	ErrDegenerateWeights = errors.New("robust: all observations received zero weight")

	// ErrNoConvergence indicates that an iterative M-estimator failed to
	// converge within the iteration budget.
	ErrNoConvergence = errors.New("robust: M-estimator failed to converge")
)

// Tuning defaults (single source of truth). These mirror the conventional
// choices of the robust statistics literature.
const (
	// DefaultTrim is the fraction removed from each tail by trimmed and
	// Winsorized estimators.
	DefaultTrim = 0.2

	// DefaultBend is the Huber-ψ bending constant of OneStep and MEstimate.
	DefaultBend = 1.28

	// DefaultBeta is the percentage-bend parameter of PBVar.
	DefaultBeta = 0.2

	// DefaultMOMCutoff is the scaled-deviation cutoff beyond which MOM
	// discards an observation.
	DefaultMOMCutoff = 2.24

	// DefaultTauLocCutoff is the weight cutoff of the tau location measure.
	DefaultTauLocCutoff = 4.5

	// DefaultTauVarCutoff is the clipping cutoff of the tau variance.
	DefaultTauVarCutoff = 3.0

	// maxIterations bounds MEstimate's Newton iteration.
	maxIterations = 100

	// convergenceTol is MEstimate's absolute step tolerance.
	convergenceTol = 1e-6
)
