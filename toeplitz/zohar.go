// Package toeplitz solves general (non-symmetric) Toeplitz linear systems
// via the Zohar–Trench recursion: an O(n²) direct solver that exploits the
// bordering structure of a Toeplitz matrix instead of general Gaussian
// elimination's O(n³).
//
// The algorithm is Zohar, Shalhav. "The Solution of a Toeplitz Set of
// Linear Equations." J. ACM 21 (1974): 272-276, improving on Trench,
// William F. "Weighting Coefficients for the Prediction of Stationary Time
// Series from the Finite Past." SIAM J. Appl. Math. 15 (1967): 1502-1510.
package toeplitz

import (
	"errors"

	"github.com/arvo-dsp/burg/config"
	"github.com/arvo-dsp/burg/logging"
	"github.com/arvo-dsp/burg/numeric"
)

// ErrEmptySystem is returned when len(a) < 1: the problem size n =
// len(a) must be at least 1. The only other errors returned are for
// len(r) != len(a) and len(d) != len(a)+1; numerical failure modes such as
// a singular system propagate as infinities/NaNs in the result.
var ErrEmptySystem = errors.New("toeplitz: a must have at least one element")

// Solve finds s such that L*s = d, where L is the (n+1)x(n+1) general
// Toeplitz matrix with first row (1, ã) and first column (1, r)ᵀ. a and r
// each have length n = len(a); d has length n+1. The result has length n+1.
//
// Passing the same slice for a and r performs a symmetric Toeplitz solve.
func Solve[V numeric.Field[V]](a, r, d []V, cfg *config.Config) ([]V, error) {
	s := make([]V, len(d))
	copy(s, d)
	if err := solve(a, r, s, cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// SolveInPlace solves L*s = d and overwrites d with the solution s,
// avoiding a second n+1-length allocation.
func SolveInPlace[V numeric.Field[V]](a, r, d []V, cfg *config.Config) error {
	return solve(a, r, d, cfg)
}

// SolveSymmetric solves a real symmetric Toeplitz system where the first
// row and column share data: L's first row is (1, ã) and first column is
// (1, a)ᵀ for the same vector a.
func SolveSymmetric[V numeric.Field[V]](a, d []V, cfg *config.Config) ([]V, error) {
	return Solve(a, a, d, cfg)
}

// SolveSymmetricInPlace is SolveInPlace specialized to a symmetric system.
func SolveSymmetricInPlace[V numeric.Field[V]](a, d []V, cfg *config.Config) error {
	return SolveInPlace(a, a, d, cfg)
}

// solve is shared by all four exported entry points; d holds the RHS on
// entry and the solution s on return, with n+1 entries (n = len(a)).
func solve[V numeric.Field[V]](a, r, d []V, cfg *config.Config) error {
	n := len(a)
	if n < 1 {
		return ErrEmptySystem
	}
	if len(r) != n {
		return errors.New("toeplitz: len(r) must equal len(a)")
	}
	if len(d) != n+1 {
		return errors.New("toeplitz: len(d) must equal len(a)+1")
	}

	var zero V
	one := zero.One()

	// s, ehat (ê), g grow by one element per step; preallocate for n+1.
	s := make([]V, 1, n+1)
	s[0] = d[0]
	ehat := make([]V, 1, n)
	ehat[0] = numeric.Neg(a[0])
	g := make([]V, 1, n)
	g[0] = numeric.Neg(r[0])
	lambda := one.Sub(a[0].Mul(r[0]))

	nextEhat := make([]V, 0, n)

	for i := 1; i < n; i++ {
		if numeric.IsZeroish(lambda) {
			cfg.Warn("toeplitz: lambda collapsed to zero, system is singular", logging.Fields{"step": i})
		}

		// neg_theta = -d[i] + sum_j s[j]*rhat[j], rhat = r[0:i] reversed.
		negTheta := numeric.Neg(d[i])
		for j := 0; j < i; j++ {
			negTheta = negTheta.Add(s[j].Mul(r[i-1-j]))
		}

		// neg_eta = a[i] + sum_j ehat[j]*a[j].
		negEta := a[i]
		for j := 0; j < i; j++ {
			negEta = negEta.Add(ehat[j].Mul(a[j]))
		}

		// neg_gamma = r[i] + sum_j g[j]*rhat[j].
		negGamma := r[i]
		for j := 0; j < i; j++ {
			negGamma = negGamma.Add(g[j].Mul(r[i-1-j]))
		}

		thetaByLambda := numeric.Neg(negTheta).Div(lambda)
		etaByLambda := numeric.Neg(negEta).Div(lambda)
		gammaByLambda := numeric.Neg(negGamma).Div(lambda)

		nextEhat = nextEhat[:0]
		nextEhat = append(nextEhat, etaByLambda)
		for j := 0; j < i; j++ {
			s[j] = s[j].Add(thetaByLambda.Mul(ehat[j]))
			nextEhat = append(nextEhat, ehat[j].Add(etaByLambda.Mul(g[j])))
			g[j] = g[j].Add(gammaByLambda.Mul(ehat[j]))
		}
		s = append(s, thetaByLambda)
		g = append(g, gammaByLambda)
		ehat, nextEhat = nextEhat, ehat

		lambda = lambda.Sub(negEta.Mul(negGamma).Div(lambda))
	}

	// Final step (i = n): Zohar's "last computed values" optimization skips
	// eta, gamma, g, ehat, and lambda — only s needs its last entry.
	{
		negTheta := numeric.Neg(d[n])
		for j := 0; j < n; j++ {
			negTheta = negTheta.Add(s[j].Mul(r[n-1-j]))
		}
		thetaByLambda := numeric.Neg(negTheta).Div(lambda)
		for j := 0; j < n; j++ {
			s[j] = s[j].Add(thetaByLambda.Mul(ehat[j]))
		}
		s = append(s, thetaByLambda)
	}

	copy(d, s)
	return nil
}
