// Package toeplitz. Example: identity system (a all zeros).
//
//	a := numeric.F64Slice([]float64{0, 0, 0})
//	d := numeric.F64Slice([]float64{1, 2, 3, 4})
//	s, err := toeplitz.SolveSymmetric(a, d, nil)
//	// s == [1, 2, 3, 4]
package toeplitz
