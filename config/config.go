// Package config carries the handful of tunables this module legitimately
// exposes. There is no file or environment loading here — spec.md §6 is
// explicit that the core has no wire protocol, no files, and no environment
// variables; construction is always programmatic.
package config

import "github.com/arvo-dsp/burg/logging"

// Config is shared by ar, toeplitz, and diagnostics. The zero value is
// usable: a nil Logger is treated as a no-op, and a zero Epsilon falls back
// to DefaultEpsilon.
type Config struct {
	// Logger receives Warn-level diagnostics at the numerical-degeneracy
	// points spec.md §7 identifies (collapsing D, collapsing 1-A[k]²,
	// collapsing λ). A nil Logger disables this entirely.
	Logger logging.Logger

	// Epsilon is the tolerance diagnostics.VerifyYuleWalker and
	// diagnostics.Resubstitute use when comparing floating-point
	// reconstructions against expected values.
	Epsilon float64
}

// DefaultEpsilon is used when Config.Epsilon is left at its zero value.
const DefaultEpsilon = 1e-9

// logger returns c.Logger, or a no-op logger if c is nil or c.Logger is nil.
func (c *Config) logger() logging.Logger {
	if c == nil || c.Logger == nil {
		return &logging.NoOpLogger{}
	}
	return c.Logger
}

// Warn is a convenience forwarding to Logger.Warn that tolerates a nil
// *Config and a nil Logger.
func (c *Config) Warn(msg string, fields ...logging.Fields) {
	c.logger().Warn(msg, fields...)
}

// epsilon returns c.Epsilon, or DefaultEpsilon if c is nil or unset.
func (c *Config) epsilon() float64 {
	if c == nil || c.Epsilon <= 0 {
		return DefaultEpsilon
	}
	return c.Epsilon
}

// EffectiveEpsilon returns the effective tolerance, applying DefaultEpsilon when c is
// nil or its Epsilon field is unset.
func (c *Config) EffectiveEpsilon() float64 {
	return c.epsilon()
}
