// Package model provides validation helpers to enforce parameter and
// assignment contracts. Each function returns a sentinel error (optionally
// wrapped with call-site context by the caller) when its precondition is
// violated.

package model

import "math"

// validateBounds ensures lower < upper and that neither bound is NaN.
// ±Inf is a legal "absent" bound on either side.
//
// Complexity: O(1) time and space.
func validateBounds(lower, upper float64) error {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return ErrInvalidBounds
	}
	if lower >= upper {
		return ErrInvalidBounds
	}

	return nil
}

// validateAssignment ensures v is finite and lies inside [lower, upper]
// (bounds inclusive).
//
// Complexity: O(1) time and space.
func validateAssignment(v, lower, upper float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrValueOutOfBounds
	}
	if v < lower || v > upper {
		return ErrValueOutOfBounds
	}

	return nil
}
