package bootstrap_test

import (
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/robstat/bootstrap"
)

// benchSample builds a deterministic n-value sample without touching the
// resampling source.
func benchSample(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i%17) + 0.25*float64(i%5)
	}

	return x
}

// BenchmarkBuild measures the plain replicate loop: 2000 means of a
// 100-value sample per iteration.
func BenchmarkBuild(b *testing.B) {
	x := benchSample(100)
	mean := func(v []float64) (float64, error) { return stat.Mean(v, nil), nil }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bootstrap.Build(x, mean,
			bootstrap.WithBootstraps(2000), bootstrap.WithFixedSeed(2)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuildWorkers measures the same load spread over four workers.
func BenchmarkBuildWorkers(b *testing.B) {
	x := benchSample(100)
	mean := func(v []float64) (float64, error) { return stat.Mean(v, nil), nil }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bootstrap.Build(x, mean,
			bootstrap.WithBootstraps(2000), bootstrap.WithFixedSeed(2),
			bootstrap.WithWorkers(4)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPercentileCI measures bound selection on a pre-sorted
// distribution, dominated by the sortedness check.
func BenchmarkPercentileCI(b *testing.B) {
	dist := make([]float64, 10000)
	for i := range dist {
		dist[i] = float64(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bootstrap.PercentileCI(dist, 0.05); err != nil {
			b.Fatal(err)
		}
	}
}
