package infer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robstat/bootstrap"
	"github.com/katalvlaran/robstat/infer"
	"github.com/katalvlaran/robstat/robust"
)

// oneToTwenty is the shared clean sample; its trimmed mean, MOM and mean
// all sit at 10.5.
func oneToTwenty() []float64 {
	x := make([]float64, 20)
	for i := range x {
		x[i] = float64(i + 1)
	}

	return x
}

// TestTrimMeanCI_ClassicalStudent pins the untrimmed case against the
// textbook t interval: mean 5.5, se s/sqrt(10), 9 degrees of freedom.
func TestTrimMeanCI_ClassicalStudent(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	res, err := infer.TrimMeanCI(x, infer.WithTrim(0))
	require.NoError(t, err)

	assert.InDelta(t, 5.5, res.Estimate.Float64, 1e-12)
	require.True(t, res.DF.Valid)
	assert.Equal(t, 9.0, res.DF.Float64)
	assert.InDelta(t, 3.3339, res.CI.Lower, 1e-3)
	assert.InDelta(t, 7.6661, res.CI.Upper, 1e-3)

	require.True(t, res.P.Valid)
	assert.Greater(t, res.P.Float64, 0.0)
	assert.Less(t, res.P.Float64, 0.001, "mean 5.5 is far from a zero null")
}

// TestTrimMeanCI_NullAtEstimate verifies the test statistic and p-value
// when the null coincides with the estimate.
func TestTrimMeanCI_NullAtEstimate(t *testing.T) {
	x := oneToTwenty()
	tm := robust.TrimMean(x, robust.DefaultTrim)

	res, err := infer.TrimMeanCI(x, infer.WithNull(tm))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.Statistic.Float64, 1e-12)
	assert.InDelta(t, 1.0, res.P.Float64, 1e-12)
}

// TestTrimMeanCI_Validation covers the trim, alpha and degeneracy guards.
func TestTrimMeanCI_Validation(t *testing.T) {
	_, err := infer.TrimMeanCI([]float64{1})
	assert.ErrorIs(t, err, bootstrap.ErrSampleTooSmall)

	_, err = infer.TrimMeanCI(oneToTwenty(), infer.WithTrim(0.5))
	assert.ErrorIs(t, err, infer.ErrBadTrim)

	_, err = infer.TrimMeanCI(oneToTwenty(), infer.WithAlpha(0))
	assert.ErrorIs(t, err, bootstrap.ErrBadAlpha)

	// n = 3 at 40% trimming leaves zero degrees of freedom.
	_, err = infer.TrimMeanCI([]float64{1, 2, 3}, infer.WithTrim(0.4))
	assert.ErrorIs(t, err, infer.ErrDegenerateTrim)

	_, err = infer.TrimMeanCI([]float64{5, 5, 5}, infer.WithTrim(0))
	assert.ErrorIs(t, err, robust.ErrZeroDispersion)
}

// TestTrimMeanBootCI_Basics verifies reproducibility, the interval
// straddling the estimate, and the p-value at both an absurd and a
// matching null.
func TestTrimMeanBootCI_Basics(t *testing.T) {
	x := oneToTwenty()

	a, err := infer.TrimMeanBootCI(x, infer.WithFixedSeed(2))
	require.NoError(t, err)
	b, err := infer.TrimMeanBootCI(x, infer.WithFixedSeed(2))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	assert.InDelta(t, 10.5, a.Estimate.Float64, 1e-12)
	assert.Less(t, a.CI.Lower, 10.5)
	assert.Greater(t, a.CI.Upper, 10.5)
	assert.False(t, a.DF.Valid)

	// No resampled trimmed mean can reach a zero null.
	assert.Equal(t, 0.0, a.P.Float64)

	res, err := infer.TrimMeanBootCI(x, infer.WithFixedSeed(2), infer.WithNull(10.5))
	require.NoError(t, err)
	assert.Greater(t, res.P.Float64, 0.1, "a null at the estimate is not rejected")
}

// TestTrimMeanBootTCI_Symmetric verifies the symmetric percentile-t
// interval is centered on the trimmed mean and carries a p-value.
func TestTrimMeanBootTCI_Symmetric(t *testing.T) {
	x := oneToTwenty()

	res, err := infer.TrimMeanBootTCI(x, infer.WithFixedSeed(2))
	require.NoError(t, err)

	assert.Equal(t, "percentile-t bootstrap trimmed-mean CI (symmetric)", res.Method)
	assert.InDelta(t, res.Estimate.Float64, (res.CI.Lower+res.CI.Upper)/2, 1e-9)
	require.True(t, res.P.Valid)
	assert.GreaterOrEqual(t, res.P.Float64, 0.0)
	assert.LessOrEqual(t, res.P.Float64, 1.0)
}

// TestTrimMeanBootTCI_EqualTailed verifies the equal-tailed mode reports
// an interval and statistic but, deliberately, no p-value.
func TestTrimMeanBootTCI_EqualTailed(t *testing.T) {
	x := oneToTwenty()

	res, err := infer.TrimMeanBootTCI(x, infer.WithFixedSeed(2), infer.WithEqualTailed())
	require.NoError(t, err)

	assert.Equal(t, "percentile-t bootstrap trimmed-mean CI (equal-tailed)", res.Method)
	assert.True(t, res.CI.Valid)
	assert.LessOrEqual(t, res.CI.Lower, res.CI.Upper)
	assert.True(t, res.Statistic.Valid)
	assert.False(t, res.P.Valid)
}

// TestMOMCI_Basics verifies the MOM interval on clean data: estimate at
// the midpoint, reproducible under a fixed seed.
func TestMOMCI_Basics(t *testing.T) {
	x := oneToTwenty()

	a, err := infer.MOMCI(x, infer.WithFixedSeed(2))
	require.NoError(t, err)
	b, err := infer.MOMCI(x, infer.WithFixedSeed(2))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	assert.InDelta(t, 10.5, a.Estimate.Float64, 1e-12)
	assert.Less(t, a.CI.Lower, 10.5)
	assert.Greater(t, a.CI.Upper, 10.5)
}

// TestMOMCI_IgnoresTrim verifies that the trim option plays no role in
// the MOM procedure: a trim fraction that would be rejected by the
// trimmed-mean procedures neither fails nor changes the result.
func TestMOMCI_IgnoresTrim(t *testing.T) {
	x := oneToTwenty()

	plain, err := infer.MOMCI(x, infer.WithFixedSeed(2))
	require.NoError(t, err)
	trimmed, err := infer.MOMCI(x, infer.WithFixedSeed(2), infer.WithTrim(0.6))
	require.NoError(t, err)

	assert.Equal(t, plain, trimmed)

	// Sample-size and alpha constraints still apply.
	_, err = infer.MOMCI([]float64{1}, infer.WithFixedSeed(2))
	assert.ErrorIs(t, err, bootstrap.ErrSampleTooSmall)
	_, err = infer.MOMCI(x, infer.WithAlpha(1.5))
	assert.ErrorIs(t, err, bootstrap.ErrBadAlpha)
}

// TestMOMCI_ZeroDispersion verifies that a constant sample fails loudly
// before any resampling happens.
func TestMOMCI_ZeroDispersion(t *testing.T) {
	_, err := infer.MOMCI([]float64{5, 5}, infer.WithFixedSeed(2))
	assert.ErrorIs(t, err, robust.ErrZeroDispersion)
}
