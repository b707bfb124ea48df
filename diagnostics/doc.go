// Package diagnostics's typical usage, after fitting an AR model:
//
//	r := ar.Fit(x, ar.Options{MaxOrder: 6}, nil)
//	params := numeric.Float64Slice(r.Params)
//	autocor := numeric.Float64Slice(r.Autocorrelation)
//	residual, ok := diagnostics.VerifyYuleWalker(params, autocor, &config.Config{Epsilon: 1e-6})
package diagnostics
