package variance

import "github.com/arvo-dsp/burg/internal/assert"

// Iterator is an immutable forward cursor over the (N+1)-length sequence
// i = 0..N for a fixed method and mean-handling policy, suitable for
// composition with accumulate/partial-sum-style reductions. The zero
// Iterator (Iterator{}) is a past-end sentinel regardless of N.
type Iterator struct {
	method Method
	mean   MeanHandling
	n      int
	i      int
	ok     bool
}

// NewIterator builds an Iterator positioned at i = 0.
func NewIterator(method Method, mean MeanHandling, N int) Iterator {
	assert.True(N >= 1, "variance: N must be >= 1")
	return Iterator{method: method, mean: mean, n: N, i: 0, ok: true}
}

// Done reports whether the iterator has advanced past i = N, or is the
// zero-value sentinel.
func (it Iterator) Done() bool {
	return !it.ok || it.i > it.n
}

// Value returns v_i(N) at the iterator's current position.
func (it Iterator) Value() float64 {
	assert.True(!it.Done(), "variance: dereferencing past-end iterator")
	return EmpiricalVariance(it.method, it.mean, it.n, it.i)
}

// Next returns the iterator advanced by one position.
func (it Iterator) Next() Iterator {
	return Iterator{method: it.method, mean: it.mean, n: it.n, i: it.i + 1, ok: it.ok}
}

// Equal compares two iterators over what should be the same sequence.
// Two past-end iterators (including any whose i == N+1) always compare
// equal to each other regardless of N; otherwise equality requires both
// N and i to match.
func (it Iterator) Equal(other Iterator) bool {
	if it.Done() && other.Done() {
		return true
	}
	if it.Done() != other.Done() {
		return false
	}
	return it.n == other.n && it.i == other.i
}

// Collect drains the iterator from its current position to the end,
// returning every remaining v_i(N) in order.
func Collect(it Iterator) []float64 {
	var out []float64
	for !it.Done() {
		out = append(out, it.Value())
		it = it.Next()
	}
	return out
}
