package numeric

// Diagnosable is implemented by working-precision types that can report
// near-zero values cheaply — F64 and F32 compare against a small epsilon,
// Rat compares exactly since it has no rounding error. Types that don't
// implement it simply never trigger IsZeroish; the recursions in ar and
// toeplitz never guard their own arithmetic on this, only whether to emit
// an optional diagnostic.
type Diagnosable interface {
	IsZeroish() bool
}

// IsZeroish reports whether v is near enough to zero to warrant a
// diagnostic, for any V that implements Diagnosable. It is used purely to
// decide whether to log a Warn-level degeneracy notice (collapsing D,
// collapsing 1-A[k]², collapsing λ); it never changes the arithmetic
// result, per spec.md §7's rationale that detection belongs at a higher
// layer than the numeric core.
func IsZeroish[V Field[V]](v V) bool {
	if d, ok := any(v).(Diagnosable); ok {
		return d.IsZeroish()
	}
	return false
}
