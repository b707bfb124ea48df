package variance

import "github.com/arvo-dsp/burg/internal/assert"

// Generator is a stateful cursor over i = 0, 1, 2, ... for a fixed N,
// method, and mean-handling policy. Each call to Next returns v_i(N) and
// advances i. It has no notion of an end; callers stop calling Next once
// they've consumed as many orders as they need (typically i = 0..N).
type Generator struct {
	method Method
	mean   MeanHandling
	n      int
	i      int
}

// NewGenerator builds a Generator starting at i = 0.
func NewGenerator(method Method, mean MeanHandling, N int) *Generator {
	assert.True(N >= 1, "variance: N must be >= 1")
	return &Generator{method: method, mean: mean, n: N}
}

// Next returns v_i(N) for the current i, then increments i.
func (g *Generator) Next() float64 {
	v := EmpiricalVariance(g.method, g.mean, g.n, g.i)
	g.i++
	return v
}

// I reports the cursor's current position (the i that the next call to
// Next will use).
func (g *Generator) I() int { return g.i }
