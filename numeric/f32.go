package numeric

import "math"

// F32 adapts float32 to Field, for callers trading precision for memory
// bandwidth (e.g. large batches of short series).
type F32 float32

func (v F32) Add(o F32) F32 { return v + o }
func (v F32) Sub(o F32) F32 { return v - o }
func (v F32) Mul(o F32) F32 { return v * o }
func (v F32) Div(o F32) F32 { return v / o }
func (F32) Zero() F32       { return 0 }
func (F32) One() F32        { return 1 }

// IsZeroish reports whether v is within a small absolute tolerance of zero.
func (v F32) IsZeroish() bool { return math.Abs(float64(v)) < 1e-6 }
