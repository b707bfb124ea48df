// Package ar implements autoregressive model fitting.
//
// # Fitting a single model
//
//	x := numeric.F64Slice(samples)
//	result := ar.Fit(x, ar.Options{MaxOrder: 10}, nil)
//	fmt.Printf("AR(%d): a=%v sigma2e=%v gain=%v\n",
//	    result.MaxOrder, result.Params, result.Sigma2e, result.Gain)
//
// # Fitting a hierarchy for order selection
//
//	result := ar.Fit(x, ar.Options{MaxOrder: 20, Hierarchy: true}, nil)
//	// result.Params is the jagged block AR(1), AR(2), ..., AR(20);
//	// result.Sigma2e[k] and result.Gain[k] describe the AR(k+1) model.
package ar
