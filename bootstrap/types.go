// Package bootstrap: core types, seed policy, sentinel errors and
// functional configuration for the resampling inference engine.
//
// Every public entry point of the engine accepts `...Option`, resolves the
// setters against documented defaults exactly once, validates its inputs,
// and only then computes. All user-triggered error conditions are reported
// through the sentinel errors below and matched with errors.Is; the engine
// never panics on user input.
package bootstrap

import "errors"

// Sentinel errors returned by the bootstrap engine.
var (
	// ErrSampleTooSmall indicates a data vector with fewer than two values.
	ErrSampleTooSmall = errors.New("bootstrap: sample length must be >= 2")

	// ErrBootTooSmall indicates a bootstrap replicate count below two.
	ErrBootTooSmall = errors.New("bootstrap: replicate count must be >= 2")

	// ErrBadAlpha indicates a confidence level outside the open interval (0,1).
	ErrBadAlpha = errors.New("bootstrap: alpha must lie in (0,1)")

	// ErrLengthMismatch indicates paired vectors of different lengths.
	ErrLengthMismatch = errors.New("bootstrap: paired vectors must have equal length")

	// ErrNilEstimator indicates a nil estimator function value.
	ErrNilEstimator = errors.New("bootstrap: estimator must be non-nil")

	// ErrUnsorted indicates a bootstrap distribution that is not in
	// ascending order. Build always returns sorted distributions; this
	// guards callers that assemble distributions by hand.
	ErrUnsorted = errors.New("bootstrap: distribution must be sorted ascending")

	// ErrZeroScale indicates a non-positive per-sample scale estimate in a
	// studentized computation. A scale-dependent statistic must fail loudly
	// rather than divide by zero.
	ErrZeroScale = errors.New("bootstrap: scale estimate must be positive")
)

// Engine defaults (single source of truth).
const (
	// DefaultSeedValue is the documented default seed applied by
	// DefaultSeed(). The value is arbitrary but stable so that default
	// resampling runs are reproducible out of the box.
	DefaultSeedValue int64 = 2

	// DefaultBootstraps is the replicate count used when WithBootstraps is
	// not supplied.
	DefaultBootstraps = 2000

	// DefaultAlpha is the confidence level used when WithAlpha is not
	// supplied (95% intervals).
	DefaultAlpha = 0.05

	// DefaultWorkers is the replicate-computation concurrency. One worker
	// means fully sequential evaluation.
	DefaultWorkers = 1
)

// Estimator is a pure function mapping a data vector to a scalar statistic.
// It must not retain or mutate its input; the slice it receives is a
// scratch buffer reused across replicates. Estimators that can hit a
// degenerate input (zero dispersion, too few distinct values) must return
// an error — the engine propagates it instead of skipping the replicate.
type Estimator func(xs []float64) (float64, error)

// PairEstimator is the bivariate analogue of Estimator. Both slices are
// gathered with the same resample indices, preserving pairing.
type PairEstimator func(xs, ys []float64) (float64, error)

// MultiEstimator generalizes PairEstimator to any number of columns, all
// gathered with the same resample indices (e.g. mediation triples).
type MultiEstimator func(cols ...[]float64) (float64, error)

// seedMode discriminates the SeedPolicy variants.
type seedMode int

const (
	seedDefault seedMode = iota // reseed with DefaultSeedValue
	seedFixed                   // reseed with an explicit seed
	seedNone                    // no reseed; use the source's current state
)

// SeedPolicy governs whether and how the pseudo-random source is reseeded
// before a resampling call. Exactly one policy applies per public entry
// point; it is resolved once and never mutated mid-run.
//
// The zero value is DefaultSeed(): reproducible by default.
type SeedPolicy struct {
	mode seedMode
	seed int64
}

// Seed returns the policy that reseeds the source with s.
// Two calls under Seed(s) with equal n and nboot draw identical indices.
func Seed(s int64) SeedPolicy { return SeedPolicy{mode: seedFixed, seed: s} }

// DefaultSeed returns the policy that reseeds with DefaultSeedValue.
func DefaultSeed() SeedPolicy { return SeedPolicy{mode: seedDefault} }

// NoSeed returns the policy that leaves the source's state untouched, so
// consecutive calls draw from wherever the stream currently is.
func NoSeed() SeedPolicy { return SeedPolicy{mode: seedNone} }

// SeedFromBool maps the boolean convenience form onto a typed policy:
// true means DefaultSeed(), false means NoSeed().
func SeedFromBool(b bool) SeedPolicy {
	if b {
		return DefaultSeed()
	}

	return NoSeed()
}

// Value is an optionally-populated numeric result field. Valid=false means
// "not computed by this procedure", which is deliberately distinct from a
// NaN produced by degenerate arithmetic.
type Value struct {
	Float64 float64
	Valid   bool
}

// NewValue wraps v as a populated Value.
func NewValue(v float64) Value { return Value{Float64: v, Valid: true} }

// Interval is a confidence interval on the scale of the original estimator,
// with Lower <= Upper whenever Valid. Valid=false means no interval was
// computed.
type Interval struct {
	Lower float64
	Upper float64
	Valid bool
}

// Width returns Upper-Lower, or NaN when the interval was not computed.
func (iv Interval) Width() float64 {
	if !iv.Valid {
		return nan()
	}

	return iv.Upper - iv.Lower
}

// Result is the uniform envelope returned by the inference procedures.
// Fields are populated per procedure; absent fields carry Valid=false.
type Result struct {
	Method    string   // human-readable description of the procedure
	N         int      // original sample size
	Estimate  Value    // point estimate on the original sample
	CI        Interval // confidence interval, original-estimator scale
	Statistic Value    // test statistic, when the procedure defines one
	DF        Value    // degrees of freedom, when meaningful
	P         Value    // two-sided p-value, when computed
}

// Option mutates engine options. Setters never panic; nonsensical values
// are caught by entry-point validation and reported as sentinel errors.
type Option func(*Options)

// Options stores the effective engine configuration after applying Option
// setters. Obtain a resolved copy with DefaultOptions or let entry points
// resolve `...Option` internally.
type Options struct {
	Bootstraps int        // number of replicates (nboot)
	Alpha      float64    // confidence level for interval procedures
	Seed       SeedPolicy // reseeding policy for this call
	Source     *Source    // nil means the process-wide default source
	Workers    int        // replicate-computation concurrency
	Symmetric  bool       // percentile-t mode: symmetric vs equal-tailed
	Null       float64    // null value for p-value synthesis
}

// WithBootstraps sets the replicate count. Values below 2 are rejected by
// the entry points with ErrBootTooSmall.
func WithBootstraps(nboot int) Option {
	return func(o *Options) { o.Bootstraps = nboot }
}

// WithAlpha sets the confidence level. Values outside (0,1) are rejected
// by the entry points with ErrBadAlpha.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithSeed installs an explicit seed policy.
func WithSeed(p SeedPolicy) Option {
	return func(o *Options) { o.Seed = p }
}

// WithFixedSeed is shorthand for WithSeed(Seed(s)).
func WithFixedSeed(s int64) Option {
	return func(o *Options) { o.Seed = Seed(s) }
}

// WithNoSeed is shorthand for WithSeed(NoSeed()).
func WithNoSeed() Option {
	return func(o *Options) { o.Seed = NoSeed() }
}

// WithSource directs resampling at an explicit Source instead of the
// process-wide default. Concurrent callers must use independent sources.
func WithSource(src *Source) Option {
	return func(o *Options) { o.Source = src }
}

// WithWorkers parallelizes replicate computation across k goroutines.
// Index drawing stays single-streamed, so results are identical to the
// sequential run. Values below 1 fall back to sequential evaluation.
func WithWorkers(k int) Option {
	return func(o *Options) { o.Workers = k }
}

// WithSymmetric selects the symmetric percentile-t interval (the default).
func WithSymmetric() Option {
	return func(o *Options) { o.Symmetric = true }
}

// WithEqualTailed selects the equal-tailed percentile-t interval. No
// p-value is produced in this mode; see StudentizedCI.
func WithEqualTailed() Option {
	return func(o *Options) { o.Symmetric = false }
}

// WithNull sets the null value used for p-value synthesis (default 0).
func WithNull(v float64) Option {
	return func(o *Options) { o.Null = v }
}

// DefaultOptions returns the documented engine defaults.
func DefaultOptions() Options {
	return Options{
		Bootstraps: DefaultBootstraps,
		Alpha:      DefaultAlpha,
		Seed:       DefaultSeed(),
		Source:     nil,
		Workers:    DefaultWorkers,
		Symmetric:  true,
		Null:       0,
	}
}

// gatherOptions applies user setters on top of DefaultOptions,
// last-writer-wins, and normalizes derived fields.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}
	if o.Workers < 1 {
		o.Workers = DefaultWorkers
	}
	if o.Source == nil {
		o.Source = DefaultSource()
	}

	return o
}

// validateCommon checks the constraints shared by every resampling entry
// point: sample size, replicate count, estimator presence.
func validateCommon(n, nboot int, estNil bool) error {
	if estNil {
		return ErrNilEstimator
	}
	if n < 2 {
		return ErrSampleTooSmall
	}
	if nboot < 2 {
		return ErrBootTooSmall
	}

	return nil
}
