// Package model defines the central Parameter, Scalar, Node, and Model types,
// and provides a deterministic registration context for building probability
// models before fitting.
//
// A Model is a scoped construction context: every Parameter and every density
// node is created against a specific *Model and is exclusively owned by it.
// There is no ambient "current model" — constructors receive the context
// explicitly, so two models can be built side by side without interference.
//
// Lifecycle of a model:
//
//  1. m := model.New()
//  2. declare parameters: m.Parameter("mu"), m.Parameter("f", model.WithBounds(0, 1)), ...
//  3. build density nodes from them (see package dist); each node registers itself
//  4. m.Observed(node) designates the likelihood target (exactly once)
//  5. m.Initialize(...) sets starting values (bounds-checked, all-or-nothing)
//  6. fit.MLE(m, data) mutates parameter values in place on success
//  7. m.PDF(xs) evaluates the observed density at the current values
//
// Concurrency: a Model carries no internal locking. Parameter values are
// mutated by Initialize, SetValue, and the fit loop; concurrent fits on one
// Model are not supported and must be serialized by the caller. Read-only
// evaluation (LogProb over a fixed value assignment) is safe from multiple
// goroutines, which is what the data-parallel likelihood reduction relies on.
//
// Errors:
//
//	ErrEmptyParamName     - parameter name is the empty string.
//	ErrDuplicateParam     - parameter name already declared in this model.
//	ErrInvalidBounds      - lower ≥ upper, or a NaN bound.
//	ErrForeignParam       - parameter belongs to a different model.
//	ErrForeignNode        - node was not registered with this model.
//	ErrNilNode            - nil node passed to Register or Observed.
//	ErrObservedAlreadySet - Observed called a second time.
//	ErrNoObserved         - PDF/LogPDF called before Observed.
//	ErrValueOutOfBounds   - assignment outside the declared bounds.
package model
