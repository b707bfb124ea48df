package numeric

import "math/big"

// Rat adapts math/big.Rat to Field, giving exact rational arithmetic. This
// is the precision spec.md §3 and §9 require pairwise summation (and by
// extension the whole Burg recursion) to behave correctly under: no
// conditional rounding logic, just field operations that happen to be
// exact for this type.
//
// Rat has value semantics; the zero value is the exact rational 0, which is
// what lets generic code write "var zero V" or call v.Zero() without first
// constructing anything.
type Rat struct {
	r big.Rat
}

// NewRat returns the exact rational a/b.
func NewRat(a, b int64) Rat {
	var v Rat
	v.r.SetFrac64(a, b)
	return v
}

// RatFromInt returns the exact rational n/1.
func RatFromInt(n int64) Rat {
	return NewRat(n, 1)
}

func (v Rat) Add(o Rat) Rat {
	var z Rat
	z.r.Add(&v.r, &o.r)
	return z
}

func (v Rat) Sub(o Rat) Rat {
	var z Rat
	z.r.Sub(&v.r, &o.r)
	return z
}

func (v Rat) Mul(o Rat) Rat {
	var z Rat
	z.r.Mul(&v.r, &o.r)
	return z
}

func (v Rat) Div(o Rat) Rat {
	var z Rat
	z.r.Quo(&v.r, &o.r)
	return z
}

func (Rat) Zero() Rat { return Rat{} }

func (Rat) One() Rat { return RatFromInt(1) }

// Float64 returns the nearest float64 approximation, useful only for
// display/comparison in tests.
func (v Rat) Float64() float64 {
	f, _ := v.r.Float64()
	return f
}

func (v Rat) String() string { return v.r.RatString() }

// IsZeroish reports whether v is exactly zero; Rat has no rounding error so
// an exact comparison, not a tolerance, is correct here.
func (v Rat) IsZeroish() bool { return v.r.Sign() == 0 }
