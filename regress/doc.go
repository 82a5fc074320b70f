// Package regress provides resistant regression summaries: the Theil–Sen
// estimator (median of pairwise slopes) with a paired-bootstrap slope
// interval, and a bootstrap mediation analysis for the indirect effect of
// a predictor through a mediator.
//
// The bootstrap procedures resample whole observations: every column of a
// resample is gathered with the same index row, so the (x, m, y) tuples
// stay intact — the same pairing rule the correlation procedures rely on.
//
// Procedures:
//   - TheilSen        — slope and intercept point estimates
//   - TheilSenSlopeCI — paired percentile-bootstrap CI for the slope
//   - Mediate         — indirect effect a·b with a percentile-bootstrap
//     CI and two-sided p-value against zero
//
// ⚙️ Usage:
//
//	slope, intercept, err := regress.TheilSen(x, y)
//	res, err := regress.Mediate(x, m, y, regress.WithFixedSeed(2))
package regress
