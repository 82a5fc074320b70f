package robust_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robstat/robust"
)

// contaminated is 1..9 with a gross outlier in place of 10.
func contaminated() []float64 {
	return []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 1000}
}

// symmetric is the plain 1..10 sample; every location estimator should
// land on its midpoint.
func symmetric() []float64 {
	return []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
}

// TestMedian covers odd, even and empty inputs, and checks the input
// slice is left untouched.
func TestMedian(t *testing.T) {
	assert.Equal(t, 3.0, robust.Median([]float64{5, 1, 3, 2, 4}))
	assert.Equal(t, 2.5, robust.Median([]float64{4, 1, 3, 2}))
	assert.True(t, math.IsNaN(robust.Median(nil)))

	x := []float64{9, 1, 5}
	_ = robust.Median(x)
	assert.Equal(t, []float64{9, 1, 5}, x, "estimators must not mutate input")
}

// TestTrimMean_DiscardsTails pins the 20% trimmed mean: with n = 10 the
// two smallest and two largest values drop, so a wild maximum has no
// influence at all.
func TestTrimMean_DiscardsTails(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}

	assert.InDelta(t, 5.5, robust.TrimMean(x, robust.DefaultTrim), 1e-12)
	assert.InDelta(t, 14.5, robust.Mean(x), 1e-12, "the plain mean chases the outlier")

	// tr = 0 degrades to the plain mean.
	assert.InDelta(t, robust.Mean(x), robust.TrimMean(x, 0), 1e-12)

	assert.True(t, math.IsNaN(robust.TrimMean(x, 0.5)))
	assert.True(t, math.IsNaN(robust.TrimMean(x, -0.1)))
	assert.True(t, math.IsNaN(robust.TrimMean(nil, 0.2)))
}

// TestWinsorize_ClipsInPlaceOrder verifies boundary clipping with the
// original observation order preserved.
func TestWinsorize_ClipsInPlaceOrder(t *testing.T) {
	x := []float64{10, 1, 5, 2, 9, 3, 8, 4, 7, 6}

	w := robust.Winsorize(x, robust.DefaultTrim)
	require.Len(t, w, len(x))
	// Boundaries are the 3rd and 8th order statistics.
	assert.Equal(t, []float64{8, 3, 5, 3, 8, 3, 8, 4, 7, 6}, w)

	assert.Nil(t, robust.Winsorize(nil, 0.2))
	assert.Nil(t, robust.Winsorize(x, 0.6))
}

// TestWinMean pins the 20% Winsorized mean of 1..10: the clipped sample
// {3,3,3,4,5,6,7,8,8,8} averages to 5.5.
func TestWinMean(t *testing.T) {
	assert.InDelta(t, 5.5, robust.WinMean(symmetric(), robust.DefaultTrim), 1e-12)
}

// TestMOM_DropsOutliers pins the modified one-step M-estimator: on 1..9
// plus 1000 the outlier alone exceeds the 2.24-MAD fence, so the estimate
// is the mean of 1..9.
func TestMOM_DropsOutliers(t *testing.T) {
	got, err := robust.MOM(contaminated())
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got, 1e-12)
}

// TestMOM_DispersionFallback verifies that MOM survives a zero MAD when a
// later link of the dispersion chain still sees spread: on
// {1,1,1,1,1,2,3} the MAD collapses but the ideal-fourths IQR is
// positive, the fence keeps the 2 and drops the 3, so the estimate is 7/6.
func TestMOM_DispersionFallback(t *testing.T) {
	x := []float64{1, 1, 1, 1, 1, 2, 3}

	require.Equal(t, 0.0, robust.MAD(x))
	s, err := robust.ScaleWithFallback(x)
	require.NoError(t, err)
	require.Greater(t, s, 0.0)

	got, err := robust.MOM(x)
	require.NoError(t, err)
	assert.InDelta(t, 7.0/6, got, 1e-12)
}

// TestMOM_Degenerate verifies the dispersion and sample-size guards.
func TestMOM_Degenerate(t *testing.T) {
	_, err := robust.MOM([]float64{5, 5})
	assert.ErrorIs(t, err, robust.ErrZeroDispersion)

	_, err = robust.MOM([]float64{5})
	assert.ErrorIs(t, err, robust.ErrTooFewValues)
}

// TestOneStep_SymmetricFixedPoint verifies that a symmetric sample is a
// fixed point of the Huber update: the psi-sum cancels and the estimate
// stays at the median.
func TestOneStep_SymmetricFixedPoint(t *testing.T) {
	got, err := robust.OneStep(symmetric(), 0)
	require.NoError(t, err)
	assert.InDelta(t, 5.5, got, 1e-9)
}

// TestOneStep_ResistsOutlier verifies the bounded influence of a gross
// outlier: the estimate moves by a fraction of one scale unit instead of
// chasing the contaminated mean near 104.5.
func TestOneStep_ResistsOutlier(t *testing.T) {
	got, err := robust.OneStep(contaminated(), robust.DefaultBend)
	require.NoError(t, err)
	assert.Greater(t, got, 5.0)
	assert.Less(t, got, 6.0)
}

// TestMEstimate_Converges verifies full iteration on clean and
// contaminated samples.
func TestMEstimate_Converges(t *testing.T) {
	got, err := robust.MEstimate(symmetric(), 0)
	require.NoError(t, err)
	assert.InDelta(t, 5.5, got, 1e-9)

	got, err = robust.MEstimate(contaminated(), 0)
	require.NoError(t, err)
	assert.Greater(t, got, 5.0)
	assert.Less(t, got, 6.0)
}

// TestMEstimate_ZeroDispersion verifies the constant-sample guard.
func TestMEstimate_ZeroDispersion(t *testing.T) {
	_, err := robust.MEstimate([]float64{7, 7, 7}, 0)
	assert.ErrorIs(t, err, robust.ErrZeroDispersion)
}

// TestTauLoc_Symmetric verifies that symmetric bisquare weights keep the
// tau location at the midpoint.
func TestTauLoc_Symmetric(t *testing.T) {
	got, err := robust.TauLoc(symmetric(), 0)
	require.NoError(t, err)
	assert.InDelta(t, 5.5, got, 1e-9)

	_, err = robust.TauLoc([]float64{1, 1, 1}, 0)
	assert.ErrorIs(t, err, robust.ErrZeroDispersion)
}
