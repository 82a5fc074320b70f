package bootstrap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/robstat/bootstrap"
)

// TestPValue_TieSplitting pins the tie-aware arithmetic on a four-value
// distribution: values strictly below the null count fully, exact ties
// count half.
func TestPValue_TieSplitting(t *testing.T) {
	dist := []float64{1, 2, 2, 3}

	// below = 1, ties = 2: p* = (1 + 1) / 4 = 0.5, p = 2*min(0.5, 0.5) = 1.
	assert.Equal(t, 1.0, bootstrap.PValue(dist, 2))

	// The null outside the distribution pins both extremes.
	assert.Equal(t, 0.0, bootstrap.PValue(dist, 0))
	assert.Equal(t, 0.0, bootstrap.PValue(dist, 10))
}

// TestPValue_Bounded verifies 0 <= p <= 1 across nulls sweeping through
// and beyond the distribution.
func TestPValue_Bounded(t *testing.T) {
	dist := ramp(100)

	for null := -10.0; null <= 120; null += 0.7 {
		p := bootstrap.PValue(dist, null)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

// TestPValue_SignSymmetry verifies that negating the distribution and the
// null leaves the two-sided p-value unchanged.
func TestPValue_SignSymmetry(t *testing.T) {
	dist := []float64{-2, -1, 0, 3, 5, 8}
	neg := make([]float64, len(dist))
	for i, v := range dist {
		neg[len(dist)-1-i] = -v
	}

	for _, null := range []float64{-3, 0, 2.5, 5, 9} {
		assert.InDelta(t, bootstrap.PValue(dist, null), bootstrap.PValue(neg, -null), 1e-15)
	}
}

// TestPValue_Empty verifies the degenerate-input convention.
func TestPValue_Empty(t *testing.T) {
	assert.True(t, math.IsNaN(bootstrap.PValue(nil, 0)))
}
