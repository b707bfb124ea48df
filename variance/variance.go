// Package variance supplies closed-form empirical-variance formulae used
// by model-order selection criteria. Four estimation methods (YuleWalker,
// Burg, LSFB, LSF) each cross two mean-handling policies (mean subtracted,
// mean retained), giving eight (method, policy) combinations; every one
// reduces to a single v_i(N) scalar per call with no hidden state.
package variance

import (
	"github.com/arvo-dsp/burg/internal/assert"
)

// Method names an estimation method whose asymptotic variance formula
// this package implements.
type Method int

const (
	YuleWalker Method = iota
	Burg
	LSFB
	LSF
)

func (m Method) String() string {
	switch m {
	case YuleWalker:
		return "YuleWalker"
	case Burg:
		return "Burg"
	case LSFB:
		return "LSFB"
	case LSF:
		return "LSF"
	default:
		return "Method(?)"
	}
}

// MeanHandling distinguishes whether the mean was removed from the series
// before fitting (mean_subtracted) or left in (mean_retained); the i=0
// variance differs between the two, every i>=1 formula does not.
type MeanHandling int

const (
	MeanSubtracted MeanHandling = iota
	MeanRetained
)

// EmpiricalVariance returns v_i(N) for the given method and mean-handling
// policy. N must be at least 1 and i must satisfy 0 <= i <= N; violating
// either is a debug-only precondition failure (spec §7 item 2), not a
// recoverable error, since these are internal bookkeeping invariants a
// caller constructs by loop, not user-supplied data.
func EmpiricalVariance(method Method, mean MeanHandling, N, i int) float64 {
	assert.True(N >= 1, "variance: N must be >= 1")
	assert.True(i >= 0 && i <= N, "variance: i must satisfy 0 <= i <= N")

	if i == 0 {
		if mean == MeanSubtracted {
			return 1 / float64(N)
		}
		return 0
	}

	n := float64(N)
	k := float64(i)

	switch method {
	case YuleWalker:
		return (n - k) / (n * (n + 2))
	case Burg:
		return 1 / (n + 1 - k)
	case LSFB:
		// Denominator left as N + 3/2 - 3i/2 rather than pre-factored to
		// (2N+3-3i)/2, per spec: avoids negative intermediates if a caller
		// substitutes integer-typed N and i upstream of this call.
		return 1 / (n + 1.5 - 1.5*k)
	case LSF:
		return 1 / (n + 2 - 2*k)
	default:
		assert.True(false, "variance: unknown method")
		return 0
	}
}
