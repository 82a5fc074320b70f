// Package correlate provides correlation estimators — classical Pearson
// and the outlier-resistant percentage-bend correlation — together with
// paired-bootstrap interval and independence tests.
//
// Pairing is the load-bearing property here: every bootstrap resample
// applies one index row to both vectors, so the (x_i, y_i) couples stay
// intact. The engine's BuildPaired guarantees this.
//
// Procedures:
//   - Pearson — product-moment correlation (gonum)
//   - PBCor   — percentage-bend correlation with a Student-t test
//   - CorCI   — paired percentile-bootstrap CI for any pair estimator
//     (Pearson by default), with a two-sided bootstrap p-value against
//     zero correlation; doubles as a test of independence
//
// ⚙️ Usage:
//
//	res, err := correlate.CorCI(x, y, correlate.WithFixedSeed(2))
//	if res.P.Valid && res.P.Float64 < 0.05 {
//	    // dependence detected
//	}
package correlate
