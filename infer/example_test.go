package infer_test

import (
	"fmt"

	"github.com/katalvlaran/robstat/infer"
)

// ExampleTrimMeanBootCI runs the default percentile bootstrap for the
// 20% trimmed mean and reports the envelope fields that are always
// populated.
func ExampleTrimMeanBootCI() {
	x := []float64{3, 5, 6, 7, 8, 9, 11, 12, 13, 14, 16, 18, 21, 25, 40}

	res, err := infer.TrimMeanBootCI(x, infer.WithFixedSeed(2))
	if err != nil {
		fmt.Println("inference failed:", err)

		return
	}

	fmt.Println(res.Method)
	fmt.Println(res.N, res.CI.Valid, res.P.Valid, res.DF.Valid)
	// Output:
	// percentile bootstrap trimmed-mean CI
	// 15 true true false
}
