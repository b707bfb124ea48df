// Package variance's typical usage:
//
//	v := variance.EmpiricalVariance(variance.Burg, variance.MeanSubtracted, 100, 10)
//	// v == 1.0/91.0
//
//	g := variance.NewGenerator(variance.LSF, variance.MeanSubtracted, 100)
//	first := g.Next() // i=0
//	second := g.Next() // i=1
//
//	it := variance.NewIterator(variance.YuleWalker, variance.MeanRetained, 50)
//	all := variance.Collect(it) // length 51
package variance
