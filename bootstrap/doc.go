// Package bootstrap implements a generic, reproducible resampling
// inference engine: it draws with-replacement resamples from a data
// vector, applies a pluggable estimator to each resample, and converts the
// resulting bootstrap distribution into confidence intervals and p-values.
//
// 🚀 What does it do?
//
//	The engine is the shared machinery behind the library's interval and
//	testing procedures:
//	  • deterministic resampling under an explicit seed policy
//	  • bootstrap distributions for any scalar estimator (uni-, bi- or
//	    multi-variate, pairing preserved across columns)
//	  • plain percentile confidence intervals by order-statistic selection
//	  • percentile-t (studentized) intervals, symmetric or equal-tailed
//	  • tie-aware symmetrized two-sided p-values
//	  • bootstrap standard errors
//
// ✨ Key properties:
//   - Reproducible: a fixed SeedPolicy yields bit-identical distributions
//     across runs of the same build
//   - Achievable intervals: percentile bounds are always two elements of
//     the sorted distribution — no interpolation
//   - Loud degeneracy: estimator failures on degenerate resamples
//     propagate; nothing is silently skipped
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/robstat/bootstrap"
//
//	est := func(xs []float64) (float64, error) { return robust.TrimMean(xs, 0.2), nil }
//	dist, err := bootstrap.Build(data, est,
//	    bootstrap.WithBootstraps(2000),
//	    bootstrap.WithFixedSeed(2),
//	)
//	ci, err := bootstrap.PercentileCI(dist, 0.05)
//	p := bootstrap.PValue(dist, 0)
//
// Concurrency:
//
//	A Source owns one pseudo-random stream behind a mutex; calls sharing a
//	Source serialize their index draws. For parallel invocations give each
//	call its own Source (WithSource). Replicate computation itself may be
//	parallelized with WithWorkers without affecting results, because the
//	index matrix is drawn up front and the distribution is sorted last.
package bootstrap
