// Package correlate: functional configuration.
package correlate

import (
	"github.com/katalvlaran/robstat/bootstrap"
	"github.com/katalvlaran/robstat/robust"
)

// DefaultCorrelationBootstraps is the replicate convention of the paired
// bootstrap correlation procedures.
const DefaultCorrelationBootstraps = 599

// Option mutates correlation options.
type Option func(*Options)

// Options stores the effective configuration of a correlation call.
// Bootstraps == 0 selects DefaultCorrelationBootstraps.
type Options struct {
	Alpha      float64
	Beta       float64
	Bootstraps int
	Estimator  bootstrap.PairEstimator // nil means Pearson
	Seed       bootstrap.SeedPolicy
	Source     *bootstrap.Source
	Workers    int
}

// WithAlpha sets the confidence level (default bootstrap.DefaultAlpha).
func WithAlpha(alpha float64) Option { return func(o *Options) { o.Alpha = alpha } }

// WithBeta sets the percentage-bend parameter (default robust.DefaultBeta).
func WithBeta(beta float64) Option { return func(o *Options) { o.Beta = beta } }

// WithBootstraps overrides the replicate convention.
func WithBootstraps(nboot int) Option { return func(o *Options) { o.Bootstraps = nboot } }

// WithEstimator installs a custom pair estimator for CorCI (e.g. a
// percentage-bend closure); the default is Pearson.
func WithEstimator(pe bootstrap.PairEstimator) Option {
	return func(o *Options) { o.Estimator = pe }
}

// WithSeed installs an explicit seed policy.
func WithSeed(p bootstrap.SeedPolicy) Option { return func(o *Options) { o.Seed = p } }

// WithFixedSeed is shorthand for WithSeed(bootstrap.Seed(s)).
func WithFixedSeed(s int64) Option { return func(o *Options) { o.Seed = bootstrap.Seed(s) } }

// WithSource directs resampling at an explicit bootstrap.Source.
func WithSource(src *bootstrap.Source) Option { return func(o *Options) { o.Source = src } }

// WithWorkers parallelizes replicate computation.
func WithWorkers(k int) Option { return func(o *Options) { o.Workers = k } }

// DefaultOptions returns the documented correlation defaults.
func DefaultOptions() Options {
	return Options{
		Alpha: bootstrap.DefaultAlpha,
		Beta:  robust.DefaultBeta,
		Seed:  bootstrap.DefaultSeed(),
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

// engineOpts translates correlation options into engine options.
func (o Options) engineOpts() []bootstrap.Option {
	nboot := o.Bootstraps
	if nboot == 0 {
		nboot = DefaultCorrelationBootstraps
	}

	opts := []bootstrap.Option{
		bootstrap.WithBootstraps(nboot),
		bootstrap.WithAlpha(o.Alpha),
		bootstrap.WithSeed(o.Seed),
		bootstrap.WithWorkers(o.Workers),
	}
	if o.Source != nil {
		opts = append(opts, bootstrap.WithSource(o.Source))
	}

	return opts
}
