// Package infer: sentinel errors and functional configuration.
package infer

import (
	"errors"

	"github.com/katalvlaran/robstat/bootstrap"
	"github.com/katalvlaran/robstat/robust"
)

// Sentinel errors specific to the inference layer. Shared conditions
// (sample size, alpha, replicate count) reuse the bootstrap sentinels so
// callers match one error set across the library.
var (
	// ErrBadTrim indicates a trim fraction outside [0, 0.5).
	ErrBadTrim = errors.New("infer: trim fraction must lie in [0, 0.5)")

	// ErrDegenerateTrim indicates that trimming left fewer than two
	// effective observations (degrees of freedom below one).
	ErrDegenerateTrim = errors.New("infer: too few observations after trimming")
)

// Replicate-count conventions per method family.
const (
	// DefaultPercentileBootstraps is the replicate count of the percentile
	// procedures (TrimMeanBootCI, MOMCI).
	DefaultPercentileBootstraps = 2000

	// DefaultStudentizedBootstraps is the replicate count of the
	// percentile-t procedure (TrimMeanBootTCI).
	DefaultStudentizedBootstraps = 599
)

// Option mutates inference options.
type Option func(*Options)

// Options stores the effective configuration of an inference call.
// Bootstraps == 0 selects the per-procedure convention.
type Options struct {
	Trim       float64
	Alpha      float64
	Bootstraps int
	Null       float64
	Symmetric  bool
	Seed       bootstrap.SeedPolicy
	Source     *bootstrap.Source
	Workers    int
}

// WithTrim sets the trimming fraction (default robust.DefaultTrim).
func WithTrim(tr float64) Option { return func(o *Options) { o.Trim = tr } }

// WithAlpha sets the confidence level (default bootstrap.DefaultAlpha).
func WithAlpha(alpha float64) Option { return func(o *Options) { o.Alpha = alpha } }

// WithBootstraps overrides the per-procedure replicate convention.
func WithBootstraps(nboot int) Option { return func(o *Options) { o.Bootstraps = nboot } }

// WithNull sets the null value tested against (default 0).
func WithNull(v float64) Option { return func(o *Options) { o.Null = v } }

// WithSymmetric selects the symmetric percentile-t interval (default).
func WithSymmetric() Option { return func(o *Options) { o.Symmetric = true } }

// WithEqualTailed selects the equal-tailed percentile-t interval.
func WithEqualTailed() Option { return func(o *Options) { o.Symmetric = false } }

// WithSeed installs an explicit seed policy.
func WithSeed(p bootstrap.SeedPolicy) Option { return func(o *Options) { o.Seed = p } }

// WithFixedSeed is shorthand for WithSeed(bootstrap.Seed(s)).
func WithFixedSeed(s int64) Option { return func(o *Options) { o.Seed = bootstrap.Seed(s) } }

// WithSource directs resampling at an explicit bootstrap.Source.
func WithSource(src *bootstrap.Source) Option { return func(o *Options) { o.Source = src } }

// WithWorkers parallelizes replicate computation.
func WithWorkers(k int) Option { return func(o *Options) { o.Workers = k } }

// DefaultOptions returns the documented inference defaults.
func DefaultOptions() Options {
	return Options{
		Trim:      robust.DefaultTrim,
		Alpha:     bootstrap.DefaultAlpha,
		Symmetric: true,
		Seed:      bootstrap.DefaultSeed(),
	}
}

// gatherOptions applies user setters on top of DefaultOptions.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}

// engineOpts translates inference options into bootstrap engine options,
// substituting the per-procedure replicate convention when unset.
func (o Options) engineOpts(defaultBoot int) []bootstrap.Option {
	nboot := o.Bootstraps
	if nboot == 0 {
		nboot = defaultBoot
	}

	opts := []bootstrap.Option{
		bootstrap.WithBootstraps(nboot),
		bootstrap.WithAlpha(o.Alpha),
		bootstrap.WithSeed(o.Seed),
		bootstrap.WithNull(o.Null),
		bootstrap.WithWorkers(o.Workers),
	}
	if o.Source != nil {
		opts = append(opts, bootstrap.WithSource(o.Source))
	}
	if o.Symmetric {
		opts = append(opts, bootstrap.WithSymmetric())
	} else {
		opts = append(opts, bootstrap.WithEqualTailed())
	}

	return opts
}

// validateSample checks the sample-size and alpha constraints shared by
// every procedure here.
func validateSample(n int, alpha float64) error {
	if n < 2 {
		return bootstrap.ErrSampleTooSmall
	}
	if !(alpha > 0 && alpha < 1) {
		return bootstrap.ErrBadAlpha
	}

	return nil
}

// validateTrim adds the trim-fraction constraint for the trimmed-mean
// procedures.
func validateTrim(n int, tr, alpha float64) error {
	if err := validateSample(n, alpha); err != nil {
		return err
	}
	if tr < 0 || tr >= 0.5 {
		return ErrBadTrim
	}

	return nil
}
