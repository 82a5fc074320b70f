// Package regress: sentinel errors and functional configuration.
package regress

import (
	"errors"

	"github.com/katalvlaran/robstat/bootstrap"
)

// Sentinel errors of the regression layer.
var (
	// ErrConstantPredictor indicates a predictor without variation, so no
	// slope is defined.
	ErrConstantPredictor = errors.New("regress: predictor has no variation")

	// ErrSingularDesign indicates collinear predictors in the mediation
	// model (the normal equations are singular).
	ErrSingularDesign = errors.New("regress: singular design matrix")
)

// Replicate-count conventions.
const (
	// DefaultSlopeBootstraps is the replicate count of TheilSenSlopeCI.
	DefaultSlopeBootstraps = 599

	// DefaultMediationBootstraps is the replicate count of Mediate.
	DefaultMediationBootstraps = 2000
)

// Option mutates regression options.
type Option func(*Options)

// Options stores the effective configuration of a regression call.
// Bootstraps == 0 selects the per-procedure convention.
type Options struct {
	Alpha      float64
	Bootstraps int
	Seed       bootstrap.SeedPolicy
	Source     *bootstrap.Source
	Workers    int
}

// WithAlpha sets the confidence level (default bootstrap.DefaultAlpha).
func WithAlpha(alpha float64) Option { return func(o *Options) { o.Alpha = alpha } }

// WithBootstraps overrides the per-procedure replicate convention.
func WithBootstraps(nboot int) Option { return func(o *Options) { o.Bootstraps = nboot } }

// WithSeed installs an explicit seed policy.
func WithSeed(p bootstrap.SeedPolicy) Option { return func(o *Options) { o.Seed = p } }

// WithFixedSeed is shorthand for WithSeed(bootstrap.Seed(s)).
func WithFixedSeed(s int64) Option { return func(o *Options) { o.Seed = bootstrap.Seed(s) } }

// WithSource directs resampling at an explicit bootstrap.Source.
func WithSource(src *bootstrap.Source) Option { return func(o *Options) { o.Source = src } }

// WithWorkers parallelizes replicate computation.
func WithWorkers(k int) Option { return func(o *Options) { o.Workers = k } }

// DefaultOptions returns the documented regression defaults.
func DefaultOptions() Options {
	return Options{
		Alpha: bootstrap.DefaultAlpha,
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

// engineOpts translates regression options into engine options.
func (o Options) engineOpts(defaultBoot int) []bootstrap.Option {
	nboot := o.Bootstraps
	if nboot == 0 {
		nboot = defaultBoot
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
