// Package numeric adapts float64, float32 and big.Rat to Field. In ar and
// toeplitz the working precision is a type parameter constrained by Field;
// variance and diagnostics compute in plain float64.
//
//	sum := numeric.Sum(numeric.F64Slice([]float64{1e16, 1, -1e16, 1}))
//	mean := numeric.Mean(numeric.F64Slice([]float64{1e16, 1, -1e16, 1}))
//
// The naive left-to-right sum of that slice loses both small terms to
// float64 rounding; pairwise summation does not.
package numeric
