// Package ar fits autoregressive models to stationary scalar time series
// using Burg's method: a lattice recursion that jointly minimizes forward
// and backward one-step prediction error at every order, updating AR
// coefficients, innovation variance, gain, and the autocorrelation sequence
// in lock-step.
//
// The implementation follows Collomb's refactoring of Burg's original
// algorithm (itself following Broersen 2006 §5.2–5.3 for gain and
// autocorrelation), generalized here to any numeric.Field working
// precision rather than floating point alone.
package ar

import (
	"github.com/arvo-dsp/burg/config"
	"github.com/arvo-dsp/burg/logging"
	"github.com/arvo-dsp/burg/numeric"
)

// Result holds everything Burg's method produces for one invocation.
//
// Params is laid out as a jagged lower-triangular block when Hierarchy was
// requested: AR(1)'s single coefficient, then AR(2)'s two coefficients, ...,
// through AR(MaxOrder)'s MaxOrder coefficients — p(p+1)/2 values in total.
// When Hierarchy is false, Params holds only the final AR(MaxOrder)
// coefficients.
//
// Sigma2e and Gain have one entry per emitted order (matching Params'
// granularity); Autocorrelation always holds all MaxOrder lag values
// regardless of Hierarchy, since each order's recursion produces exactly
// one new lag.
type Result[V numeric.Field[V]] struct {
	Mean            V
	MaxOrder        int
	Params          []V
	Sigma2e         []V
	Gain            []V
	Autocorrelation []V
	Count           int
}

// Options controls how Burg fits and what it reports.
type Options struct {
	// MaxOrder is the desired maximum model order on input. The effective
	// order is clamped by the amount of data available; see Result.MaxOrder.
	MaxOrder int

	// SubtractMean removes the pairwise-computed mean from the working
	// copy of the data before fitting, when true.
	SubtractMean bool

	// Hierarchy, when true, emits every AR(1)..AR(MaxOrder) model instead
	// of only the final one. The full hierarchy is always computed
	// internally regardless of this flag — it controls output only.
	Hierarchy bool
}

// Fit runs Burg's method over x and returns the resulting model(s).
//
// x is consumed in one pass logically (it is copied once into the working
// forward-residual buffer); cfg may be nil, in which case diagnostics are
// silently dropped.
func Fit[V numeric.Field[V]](x []V, opts Options, cfg *config.Config) Result[V] {
	n := len(x)

	mean := numeric.Mean(x)

	// p = min(maxorder+1, N) - 1, clamped so p = 0 when N = 0. Using uint
	// arithmetic here would underflow at N=0; do the clamp in signed space.
	p := opts.MaxOrder + 1
	if p > n {
		p = n
	}
	p--
	if p < 0 {
		p = 0
	}

	result := Result[V]{Mean: mean, MaxOrder: p, Count: n}
	if p == 0 {
		return result
	}

	f := make([]V, n)
	copy(f, x)
	if opts.SubtractMean {
		for i := range f {
			f[i] = f[i].Sub(mean)
		}
	}

	zero := f[0].Zero()
	one := f[0].One()
	two := one.Add(one)

	// sigma2e := Σ f_i^2, then D := -f[0]^2 - f[N-1]^2 + 2*sigma2e, then
	// sigma2e /= N. Order matters: D depends on the pre-division sigma2e.
	sigma2e := zero
	for _, v := range f {
		sigma2e = sigma2e.Add(v.Mul(v))
	}
	d := numeric.Neg(f[0].Mul(f[0])).Sub(f[n-1].Mul(f[n-1])).Add(two.Mul(sigma2e))
	sigma2e = sigma2e.Div(numeric.FromInt[V](n))

	b := make([]V, n)
	copy(b, f)

	a := make([]V, p+1)
	a[0] = one
	gain := one

	autocor := make([]V, 0, p)

	for k := 1; k <= p; k++ {
		// mu = (2/D) * Σ_{m=k}^{N-1} f[m]*b[m-k]
		dot := zero
		for m := k; m < n; m++ {
			dot = dot.Add(f[m].Mul(b[m-k]))
		}
		if numeric.IsZeroish(d) {
			cfg.Warn("burg: D collapsed to zero, subsequent output is degenerate", logging.Fields{"order": k})
		}
		mu := two.Div(d).Mul(dot)

		sigma2e = sigma2e.Mul(one.Sub(mu.Mul(mu)))

		// Symmetric sweep: A[n] and A[k-n] updated together from old values.
		for m := 0; m <= k/2; m++ {
			t1 := a[m].Sub(mu.Mul(a[k-m]))
			t2 := a[k-m].Sub(mu.Mul(a[m]))
			a[m] = t1
			a[k-m] = t2
		}

		denomGain := one.Sub(a[k].Mul(a[k]))
		if numeric.IsZeroish(denomGain) {
			cfg.Warn("burg: reflection coefficient reached unit magnitude, gain is degenerate", logging.Fields{"order": k})
		}
		gain = gain.Div(denomGain)

		// rho_k = -(A[k] + Σ_{j=1}^{k-1} A[j]*rho_{k-j}), rho traversed in
		// reverse so it aligns A[1..k-1] with rho_{k-1..1}.
		cross := zero
		for j := 0; j < len(autocor); j++ {
			cross = cross.Add(a[j+1].Mul(autocor[len(autocor)-1-j]))
		}
		rho := numeric.Neg(a[k].Add(cross))
		autocor = append(autocor, rho)

		if opts.Hierarchy || k == p {
			params := make([]V, k)
			copy(params, a[1:k+1])
			result.Params = append(result.Params, params...)
			result.Sigma2e = append(result.Sigma2e, sigma2e)
			result.Gain = append(result.Gain, gain)
		}

		if k < p {
			for m := 0; m < n-k; m++ {
				t1 := f[m+k].Sub(mu.Mul(b[m]))
				t2 := b[m].Sub(mu.Mul(f[m+k]))
				f[m+k] = t1
				b[m] = t2
			}
			d = one.Sub(mu.Mul(mu)).Mul(d).Sub(f[k].Mul(f[k])).Sub(b[n-k-1].Mul(b[n-k-1]))
		}
	}

	result.Autocorrelation = autocor
	return result
}
