// Package numeric defines the working-precision capability the rest of this
// module is parametric over: a field supporting addition, subtraction,
// multiplication, division, and the additive/multiplicative identities.
//
// The recursions in ar and toeplitz never branch on float64 versus anything
// else — they only ever call Field methods. That's what lets the same Burg
// and Zohar–Trench code serve float64 (the reference precision), float32,
// and exact rational arithmetic via Rat: the arithmetic ordering is fixed by
// the algorithm, not by the type doing the arithmetic.
package numeric

// Field is the numeric capability every working-precision type in this
// module must provide. Concrete values carry their own Zero/One so the
// algorithms never need a separately-threaded "numeric context" — any value
// of V, including its zero value, can answer Zero() and One().
type Field[V any] interface {
	Add(V) V
	Sub(V) V
	Mul(V) V
	Div(V) V

	// Zero returns the additive identity of the receiver's type. The
	// receiver's own value is irrelevant; it exists only to pick the type.
	Zero() V

	// One returns the multiplicative identity of the receiver's type.
	One() V
}

// Neg returns -v, expressed via Sub since Field does not require a unary
// negation method.
func Neg[V Field[V]](v V) V {
	return v.Zero().Sub(v)
}
