// Package bootstrap - bootstrap distribution builder.
//
// Description:
//
//	Build materializes the bootstrap distribution of an estimator: it
//	obtains a resample index matrix from the Source, gathers each resample
//	by index, applies the estimator, and sorts the replicate statistics
//	ascending. Sorting makes every subsequent percentile lookup an O(1)
//	index access, which is why the distribution is an ordered slice.
//
// Algorithm Outline:
//  1. Resolve options; validate n >= 2, nboot >= 2, estimator non-nil.
//  2. Draw the nboot x n index matrix under the call's SeedPolicy.
//  3. For each row, gather data[row[j]] into a scratch buffer and apply
//     the estimator. With WithWorkers(k), rows are split into k contiguous
//     chunks evaluated concurrently; each chunk owns its scratch buffers,
//     and replicate i always lands in slot i, so the result is identical
//     to the sequential run.
//  4. Sort the nboot replicate statistics ascending.
//
// Errors:
//   - ErrSampleTooSmall, ErrBootTooSmall, ErrNilEstimator, ErrLengthMismatch.
//   - Any estimator error propagates unmodified; failed replicates are
//     never silently skipped.
//
// Complexity:
//
//	Time  = O(nboot * (n + E)) + O(nboot log nboot), E = estimator cost.
//	Space = O(nboot * n) for the index matrix.
package bootstrap

import (
	"sort"

	"golang.org/x/sync/errgroup"
)

// Build returns the sorted bootstrap distribution of est over data.
func Build(data []float64, est Estimator, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if err := validateCommon(len(data), o.Bootstraps, est == nil); err != nil {
		return nil, err
	}

	wrapped := func(cols ...[]float64) (float64, error) { return est(cols[0]) }

	return buildMulti([][]float64{data}, wrapped, o)
}

// BuildPaired returns the sorted bootstrap distribution of a bivariate
// estimator over the paired vectors x and y. Both vectors are gathered
// with the same row of indices, preserving pairing — essential for
// correlation-type estimators.
func BuildPaired(x, y []float64, est PairEstimator, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if err := validateCommon(len(x), o.Bootstraps, est == nil); err != nil {
		return nil, err
	}
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}

	wrapped := func(cols ...[]float64) (float64, error) { return est(cols[0], cols[1]) }

	return buildMulti([][]float64{x, y}, wrapped, o)
}

// BuildMulti returns the sorted bootstrap distribution of a multivariate
// estimator over any number of equal-length columns, all gathered with the
// same row of indices (e.g. mediation triples x, m, y).
func BuildMulti(cols [][]float64, est MultiEstimator, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if len(cols) == 0 {
		return nil, ErrSampleTooSmall
	}
	if err := validateCommon(len(cols[0]), o.Bootstraps, est == nil); err != nil {
		return nil, err
	}
	for _, c := range cols[1:] {
		if len(c) != len(cols[0]) {
			return nil, ErrLengthMismatch
		}
	}

	return buildMulti(cols, est, o)
}

// buildMulti is the shared replicate loop. Inputs are validated.
func buildMulti(cols [][]float64, est MultiEstimator, o Options) ([]float64, error) {
	idx, err := o.Source.Indices(len(cols[0]), o.Bootstraps, o.Seed)
	if err != nil {
		return nil, err
	}

	out := make([]float64, o.Bootstraps)
	if err = forEachRow(idx, o.Workers, cols, est, out); err != nil {
		return nil, err
	}
	sort.Float64s(out)

	return out, nil
}

// forEachRow evaluates one replicate per index row into out. Rows are
// split into contiguous chunks; each chunk reuses its own scratch buffers
// so estimators may not retain their input slices.
func forEachRow(idx [][]int, workers int, cols [][]float64, est MultiEstimator, out []float64) error {
	if workers > len(idx) {
		workers = len(idx)
	}
	if workers <= 1 {
		return replicateRange(idx, 0, len(idx), cols, est, out)
	}

	var g errgroup.Group
	chunk := (len(idx) + workers - 1) / workers
	for lo := 0; lo < len(idx); lo += chunk {
		hi := lo + chunk
		if hi > len(idx) {
			hi = len(idx)
		}
		lo, hi := lo, hi
		g.Go(func() error {
			return replicateRange(idx, lo, hi, cols, est, out)
		})
	}

	return g.Wait()
}

// replicateRange evaluates rows [lo, hi) sequentially with one set of
// scratch buffers.
func replicateRange(idx [][]int, lo, hi int, cols [][]float64, est MultiEstimator, out []float64) error {
	n := len(cols[0])
	scratch := make([][]float64, len(cols))
	for c := range scratch {
		scratch[c] = make([]float64, n)
	}

	var err error
	for i := lo; i < hi; i++ {
		row := idx[i]
		for c, col := range cols {
			gather(scratch[c], col, row)
		}
		if out[i], err = est(scratch...); err != nil {
			return err
		}
	}

	return nil
}

// gather copies src[row[j]] into dst[j] for every j.
func gather(dst, src []float64, row []int) {
	for j, k := range row {
		dst[j] = src[k]
	}
}
