// Package diagnostics cross-checks the outputs of ar and toeplitz against
// their defining linear-algebra relations, using gonum/mat for the matrix
// construction and matrix-vector products rather than hand-rolled loops. These are
// verification utilities for tests and callers who want robustness
// guarantees beyond what the core numeric kernels provide on their own
// (spec §7: the kernels propagate degeneracies instead of detecting them).
package diagnostics

import (
	"math"

	"github.com/arvo-dsp/burg/config"
	"gonum.org/v1/gonum/mat"
)

// VerifyYuleWalker checks that Burg-estimated AR coefficients params
// (params[0] is A_1, ..., params[p-1] is A_p) satisfy the Yule-Walker
// normal equations for the given autocorrelation sequence autocor
// (autocor[0] is rho_1, ..., autocor[p-1] is rho_p), within cfg's effective
// tolerance:
//
//	rho_j + sum_{i=1}^{p} A_i * rho_{j-i} = 0   for j = 1..p
//
// It builds the p x p Toeplitz coefficient matrix and RHS with gonum/mat
// and reports the max absolute residual alongside a pass/fail verdict. cfg
// may be nil, in which case config.DefaultEpsilon applies.
func VerifyYuleWalker(params, autocor []float64, cfg *config.Config) (residual float64, ok bool) {
	p := len(params)
	if p == 0 || len(autocor) != p {
		return 0, false
	}

	rho := func(lag int) float64 {
		if lag == 0 {
			return 1
		}
		l := lag
		if l < 0 {
			l = -l
		}
		if l > p {
			return 0
		}
		return autocor[l-1]
	}

	r := mat.NewVecDense(p, nil)
	for j := 1; j <= p; j++ {
		r.SetVec(j-1, -rho(j))
	}

	a := mat.NewVecDense(p, params)

	toeplitz := mat.NewDense(p, p, nil)
	for row := 1; row <= p; row++ {
		for col := 1; col <= p; col++ {
			toeplitz.Set(row-1, col-1, rho(row-col))
		}
	}

	var lhs mat.VecDense
	lhs.MulVec(toeplitz, a)

	residual = 0
	for j := 0; j < p; j++ {
		d := math.Abs(lhs.AtVec(j) - r.AtVec(j))
		if d > residual {
			residual = d
		}
	}
	return residual, residual <= cfg.EffectiveEpsilon()
}

// Resubstitute forms the (n+1)x(n+1) general Toeplitz matrix L with first
// row (1, a) and first column (1, r)^T, multiplies by s, and
// compares the result to d within cfg's effective tolerance. It is the
// direct check behind every round-trip property: a correct Zohar solve
// always resubstitutes. cfg may be nil, in which case config.DefaultEpsilon
// applies.
func Resubstitute(a, r, s, d []float64, cfg *config.Config) (residual float64, ok bool) {
	n := len(a)
	if len(r) != n || len(s) != n+1 || len(d) != n+1 {
		return 0, false
	}

	l := mat.NewDense(n+1, n+1, nil)
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			switch {
			case i == j:
				l.Set(i, j, 1)
			case j > i:
				l.Set(i, j, a[j-i-1])
			default:
				l.Set(i, j, r[i-j-1])
			}
		}
	}

	sv := mat.NewVecDense(n+1, s)
	var lhs mat.VecDense
	lhs.MulVec(l, sv)

	residual = 0
	for i := 0; i <= n; i++ {
		diff := math.Abs(lhs.AtVec(i) - d[i])
		if diff > residual {
			residual = diff
		}
	}
	return residual, residual <= cfg.EffectiveEpsilon()
}
