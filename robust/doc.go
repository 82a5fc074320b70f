// Package robust provides closed-form, outlier-resistant estimators of
// location and scale — the pluggable building blocks the bootstrap engine
// resamples.
//
// 🚀 What's inside?
//
//	Location:
//	  • Median, trimmed mean, Winsorized mean
//	  • MOM — the modified one-step M-estimator (outlier-pruned mean)
//	  • OneStep / MEstimate — Huber-ψ M-estimators (one step / iterated)
//	  • TauLoc — tau measure of location
//	Scale:
//	  • MAD (consistency-scaled), ideal-fourths quartiles, normalized IQR
//	  • Winsorized variance & standard deviation, trimmed standard error
//	  • Percentage-bend and biweight midvariances, TauVar
//	  • ScaleWithFallback — prioritized dispersion chain for degenerate data
//	Screening:
//	  • OutlierBox — boxplot-rule outlier flags via ideal fourths
//
// ✨ Conventions:
//   - Every estimator is pure and stateless: input slices are never
//     mutated; sorting happens on an internal copy.
//   - Estimators that are defined for every input return a plain float64
//     and yield NaN on nonsensical parameters.
//   - Estimators that divide by a dispersion estimate return an explicit
//     error (ErrZeroDispersion and friends) instead of a quiet NaN — the
//     bootstrap engine propagates such failures to the caller.
//
// ⚙️ Usage:
//
//	m := robust.TrimMean(xs, robust.DefaultTrim) // 20% trimmed mean
//	s := robust.MAD(xs)                          // scaled MAD
//	loc, err := robust.MOM(xs)                   // errs on zero dispersion
//
// Tuning constants follow the conventional defaults of the robust
// statistics literature (20% trimming, Huber bend 1.28, percentage-bend
// beta 0.2, MOM cutoff 2.24, tau cutoffs 4.5 and 3.0).
package robust
