// Package logging is intentionally small: a Logger interface, a colored
// stdlib-backed default implementation, and a no-op for tests and library
// embedding. Nothing in this module requires the caller to adopt it —
// every function that accepts a *config.Config falls back to a no-op
// logger when none is set.
package logging
