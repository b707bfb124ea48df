package ar

import (
	"math"
	"testing"

	"github.com/arvo-dsp/burg/numeric"
)

func fitF64(x []float64, opts Options) Result[numeric.F64] {
	return Fit(numeric.F64Slice(x), opts, nil)
}

func TestFitEmptyInput(t *testing.T) {
	r := fitF64(nil, Options{MaxOrder: 5})
	if r.MaxOrder != 0 {
		t.Fatalf("MaxOrder = %d, want 0", r.MaxOrder)
	}
	if len(r.Params) != 0 || len(r.Sigma2e) != 0 || len(r.Gain) != 0 || len(r.Autocorrelation) != 0 {
		t.Fatalf("expected no emissions for N=0, got %+v", r)
	}
	if r.Count != 0 {
		t.Fatalf("Count = %d, want 0", r.Count)
	}
}

func TestFitZeroMaxOrder(t *testing.T) {
	r := fitF64([]float64{1, 2, 3, 4, 5}, Options{MaxOrder: 0})
	if r.MaxOrder != 0 {
		t.Fatalf("MaxOrder = %d, want 0", r.MaxOrder)
	}
	if len(r.Params) != 0 {
		t.Fatalf("expected no parameters emitted, got %v", r.Params)
	}
}

func TestFitSingleSample(t *testing.T) {
	r := fitF64([]float64{42}, Options{MaxOrder: 5})
	if r.MaxOrder != 0 {
		t.Fatalf("MaxOrder = %d, want 0 (N=1 clamps to 0)", r.MaxOrder)
	}
}

func TestFitOrderBound(t *testing.T) {
	cases := []struct {
		n, pIn, wantP int
	}{
		{0, 5, 0},
		{1, 5, 0},
		{5, 0, 0},
		{5, 2, 2},
		{5, 10, 4},
		{100, 10, 10},
	}
	for _, c := range cases {
		x := make([]float64, c.n)
		for i := range x {
			x[i] = float64(i%7) - 3
		}
		r := fitF64(x, Options{MaxOrder: c.pIn})
		if r.MaxOrder != c.wantP {
			t.Fatalf("N=%d p_in=%d: MaxOrder = %d, want %d", c.n, c.pIn, r.MaxOrder, c.wantP)
		}
		if r.MaxOrder > c.pIn {
			t.Fatalf("MaxOrder %d exceeds requested p_in %d", r.MaxOrder, c.pIn)
		}
	}
}

func TestFitConstantSeries(t *testing.T) {
	x := []float64{5, 5, 5, 5, 5}
	r := fitF64(x, Options{MaxOrder: 2, SubtractMean: true})

	if math.Abs(float64(r.Mean)-5) > 1e-12 {
		t.Fatalf("Mean = %v, want 5", r.Mean)
	}
	// After mean subtraction the series is all zeros; this degenerates
	// sigma2e toward zero (0/0 via mu is possible) — the routine must not
	// panic, which is what running this test at all demonstrates.
}

func TestFitHierarchyMonotonicity(t *testing.T) {
	x := genAR2(2048, 0.6, -0.2, 7)
	r := fitF64(x, Options{MaxOrder: 12, Hierarchy: true})

	if len(r.Sigma2e) != r.MaxOrder || len(r.Gain) != r.MaxOrder {
		t.Fatalf("expected %d emissions, got sigma2e=%d gain=%d", r.MaxOrder, len(r.Sigma2e), len(r.Gain))
	}

	for k := 1; k < len(r.Sigma2e); k++ {
		if float64(r.Sigma2e[k]) > float64(r.Sigma2e[k-1])+1e-9 {
			t.Fatalf("sigma2e not nonincreasing at order %d: %v > %v", k+1, r.Sigma2e[k], r.Sigma2e[k-1])
		}
		if float64(r.Gain[k]) < float64(r.Gain[k-1])-1e-9 {
			t.Fatalf("gain not nondecreasing at order %d: %v < %v", k+1, r.Gain[k], r.Gain[k-1])
		}
	}

	if len(r.Params) != r.MaxOrder*(r.MaxOrder+1)/2 {
		t.Fatalf("Params length = %d, want %d (jagged triangle)", len(r.Params), r.MaxOrder*(r.MaxOrder+1)/2)
	}
	if len(r.Autocorrelation) != r.MaxOrder {
		t.Fatalf("Autocorrelation length = %d, want %d", len(r.Autocorrelation), r.MaxOrder)
	}
}

func TestFitAR1Coefficient(t *testing.T) {
	const phi = 0.7
	x := genAR1(1024, phi, 11)

	r := fitF64(x, Options{MaxOrder: 10, Hierarchy: true})
	if len(r.Params) < 1 {
		t.Fatalf("expected at least one AR(1) parameter, got %+v", r)
	}

	a1 := float64(r.Params[0]) // AR(1)'s single coefficient
	want := -phi
	if math.Abs(a1-want) > 0.15 {
		t.Fatalf("AR(1) coefficient = %v, want close to %v", a1, want)
	}

	// Higher-order coefficients of the AR(10) block should stay small
	// relative to a1, since the true process is order 1.
	tail := r.Params[len(r.Params)-10:]
	for i, v := range tail[1:] {
		if math.Abs(float64(v)) > 0.3 {
			t.Fatalf("AR(10) coefficient a[%d] = %v, expected small for a true AR(1) process", i+2, v)
		}
	}
}

func TestFitAutocorrelationConsistency(t *testing.T) {
	x := genAR2(4096, 0.5, -0.3, 3)
	r := fitF64(x, Options{MaxOrder: 6, Hierarchy: true})

	rho := func(lag int) float64 {
		if lag == 0 {
			return 1
		}
		l := lag
		if l < 0 {
			l = -l
		}
		return float64(r.Autocorrelation[l-1])
	}

	// Yule-Walker relation for the final AR(k) model at j=k: rho_k +
	// sum_i a_i*rho_{k-i} = 0. Higher j would need autocorrelation lags
	// beyond what was emitted (only lags 1..MaxOrder are produced).
	k := r.MaxOrder
	finalParams := r.Params[len(r.Params)-k:]
	sum := rho(k)
	for i := 1; i <= k; i++ {
		sum += float64(finalParams[i-1]) * rho(k-i)
	}
	if math.Abs(sum) > 0.2 {
		t.Fatalf("Yule-Walker residual at lag %d = %v, want near 0", k, sum)
	}
}

// genAR1 deterministically synthesizes x_n = phi*x_{n-1} + e_n using a
// simple linear-congruential noise source, so tests are reproducible
// without depending on math/rand's stream across Go versions.
func genAR1(n int, phi float64, seed uint64) []float64 {
	x := make([]float64, n)
	state := seed + 0x9E3779B97F4A7C15
	for i := 1; i < n; i++ {
		state = state*6364136223846793005 + 1442695040888963407
		noise := (float64(state>>32&0xFFFFFFFF)/float64(1<<32) - 0.5)
		x[i] = phi*x[i-1] + noise
	}
	return x
}

// genAR2 synthesizes x_n = phi1*x_{n-1} + phi2*x_{n-2} + e_n.
func genAR2(n int, phi1, phi2 float64, seed uint64) []float64 {
	x := make([]float64, n)
	state := seed + 0x9E3779B97F4A7C15
	for i := 2; i < n; i++ {
		state = state*6364136223846793005 + 1442695040888963407
		noise := (float64(state>>32&0xFFFFFFFF)/float64(1<<32) - 0.5)
		x[i] = phi1*x[i-1] + phi2*x[i-2] + noise
	}
	return x
}
