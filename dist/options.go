// Package dist: functional configuration shared by all node constructors.
// This file defines Option, the truncation state it populates, and the
// internal gather/validate helpers.

package dist

import "math"

// Option configures a density node at construction time.
type Option func(*truncation)

// truncation is the per-node truncation state. The zero value means
// "no truncation" (full natural support).
type truncation struct {
	enabled bool
	lower   float64
	upper   float64
}

// Truncated restricts the node's support to [lower, upper] and renormalizes
// the density over that window. Both bounds must be finite and lower < upper;
// the constructor rejects anything else with ErrInvalidTruncation.
func Truncated(lower, upper float64) Option {
	return func(t *truncation) {
		t.enabled = true
		t.lower = lower
		t.upper = upper
	}
}

// gatherOptions folds opts into a truncation state and validates it.
func gatherOptions(opts ...Option) (truncation, error) {
	var t truncation
	for _, opt := range opts {
		opt(&t)
	}
	if t.enabled {
		if math.IsNaN(t.lower) || math.IsNaN(t.upper) ||
			math.IsInf(t.lower, 0) || math.IsInf(t.upper, 0) {
			return truncation{}, ErrInvalidTruncation
		}
		if t.lower >= t.upper {
			return truncation{}, ErrInvalidTruncation
		}
	}

	return t, nil
}

// clip intersects the node's natural support [natLo, natHi] with the
// truncation window. Returns the effective support.
func (t truncation) clip(natLo, natHi float64) (lower, upper float64) {
	if !t.enabled {
		return natLo, natHi
	}

	return math.Max(natLo, t.lower), math.Min(natHi, t.upper)
}

// finiteValues reports whether every scalar value is finite.
func finiteValues(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// logAddExp returns log(exp(a) + exp(b)) without overflow.
func logAddExp(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	if a < b {
		a, b = b, a
	}

	return a + math.Log1p(math.Exp(b-a))
}
