// Package model: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the model
// package. All operations return these sentinels and tests check them via
// errors.Is. When extra context is essential, wrap at the call boundary with
// fmt.Errorf("Op(...): %w", ErrX) — callers still match with errors.Is.

package model

import "errors"

var (
	// ErrEmptyParamName indicates that Parameter was called with an empty name.
	ErrEmptyParamName = errors.New("model: parameter name is empty")

	// ErrDuplicateParam indicates a parameter name already declared in this model.
	ErrDuplicateParam = errors.New("model: duplicate parameter name")

	// ErrInvalidBounds indicates lower ≥ upper or a NaN bound on a parameter.
	ErrInvalidBounds = errors.New("model: invalid parameter bounds")

	// ErrForeignParam indicates a *Parameter owned by a different model.
	ErrForeignParam = errors.New("model: parameter belongs to another model")

	// ErrForeignNode indicates a Node that was not registered with this model.
	ErrForeignNode = errors.New("model: node belongs to another model")

	// ErrNilNode indicates a nil Node passed to Register or Observed.
	ErrNilNode = errors.New("model: node is nil")

	// ErrObservedAlreadySet indicates Observed was called more than once.
	ErrObservedAlreadySet = errors.New("model: observed node already set")

	// ErrNoObserved indicates evaluation before any Observed declaration.
	ErrNoObserved = errors.New("model: no observed node declared")

	// ErrValueOutOfBounds indicates an assignment outside declared bounds,
	// or a non-finite value.
	ErrValueOutOfBounds = errors.New("model: value outside declared bounds")
)
