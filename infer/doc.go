// Package infer provides one-sample confidence intervals and hypothesis
// tests for robust location estimators, combining the closed-form
// estimators of package robust with the resampling engine of package
// bootstrap.
//
// Procedures:
//   - TrimMeanCI      — closed-form Student-t interval for the trimmed mean
//   - TrimMeanBootCI  — percentile-bootstrap interval for the trimmed mean
//   - TrimMeanBootTCI — percentile-t (studentized) bootstrap interval,
//     symmetric or equal-tailed
//   - MOMCI           — percentile-bootstrap interval for the modified
//     one-step M-estimator
//
// Every procedure returns a bootstrap.Result envelope: fields that a
// procedure does not compute carry an explicit not-computed marker rather
// than NaN.
//
// ⚙️ Usage:
//
//	res, err := infer.TrimMeanBootCI(data,
//	    infer.WithTrim(0.2),
//	    infer.WithAlpha(0.05),
//	    infer.WithFixedSeed(2),
//	)
//	fmt.Printf("%.3f [%.3f, %.3f] p=%.3f\n",
//	    res.Estimate.Float64, res.CI.Lower, res.CI.Upper, res.P.Float64)
//
// Replicate-count conventions: percentile procedures default to 2000
// replicates, the studentized procedure to 599, matching the conventional
// choices for these methods; override with WithBootstraps.
package infer
