package robust_test

import (
	"testing"

	"github.com/katalvlaran/robstat/robust"
)

// benchSample builds a deterministic n-value sample with a few heavy
// values mixed in.
func benchSample(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i % 23)
		if i%97 == 0 {
			x[i] *= 50
		}
	}

	return x
}

// BenchmarkMAD measures the dominant cost of most estimators here: two
// median passes over a thousand values.
func BenchmarkMAD(b *testing.B) {
	x := benchSample(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = robust.MAD(x)
	}
}

// BenchmarkTrimMean measures sort-and-average on a thousand values.
func BenchmarkTrimMean(b *testing.B) {
	x := benchSample(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = robust.TrimMean(x, robust.DefaultTrim)
	}
}

// BenchmarkMEstimate measures the iterated Huber location estimator.
func BenchmarkMEstimate(b *testing.B) {
	x := benchSample(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := robust.MEstimate(x, 0); err != nil {
			b.Fatal(err)
		}
	}
}
