package numeric

import "math"

// F64 adapts float64 to Field. It is the reference working precision: the
// one spec.md's algorithms were designed and tolerance-tested against.
type F64 float64

func (v F64) Add(o F64) F64 { return v + o }
func (v F64) Sub(o F64) F64 { return v - o }
func (v F64) Mul(o F64) F64 { return v * o }
func (v F64) Div(o F64) F64 { return v / o }
func (F64) Zero() F64       { return 0 }
func (F64) One() F64        { return 1 }

// IsZeroish reports whether v is within a small absolute tolerance of zero.
// Used only for optional degeneracy diagnostics, never for control flow
// that affects the numeric result.
func (v F64) IsZeroish() bool { return math.Abs(float64(v)) < 1e-12 }

// F64Slice converts a plain []float64 to []F64 for use with the generic
// estimators; the conversion is a relabeling, not a copy of semantics.
func F64Slice(x []float64) []F64 {
	out := make([]F64, len(x))
	for i, v := range x {
		out[i] = F64(v)
	}
	return out
}

// Float64Slice converts back to []float64.
func Float64Slice(x []F64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}
