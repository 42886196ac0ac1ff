// Package fit compiles a model's observed node into a total negative
// log-likelihood objective and minimizes it over the free parameters with
// gonum's optimizers, respecting each parameter's box constraints.
//
// Pipeline of a single MLE call:
//
//  1. Validate configuration: observed node present, data non-empty, at
//     least one free parameter, sane options. These fail fast with
//     sentinel errors before any expensive computation.
//  2. Map every free parameter to an unconstrained coordinate through a
//     bijective transform (scaled logit for two-sided bounds, shifted log
//     for one-sided, identity for unbounded). Every iterate the optimizer
//     produces maps back inside the box, so the model never holds an
//     out-of-bounds value — even on a failed fit.
//  3. Evaluate the objective: sum of -LogProb(x_i) over the dataset at the
//     candidate parameter values. A non-finite log-density makes the whole
//     term +Inf; the backtracking line search treats +Inf as a rejected
//     step and shortens the step instead of crashing.
//  4. Minimize with L-BFGS (numerical gradients via gonum diff/fd) or
//     Nelder–Mead, under the iteration/evaluation budgets and function
//     converger from Options.
//  5. Report a Result{Success, Message, Func, Calls, NIter, X}. Fitted
//     values are written back into the model; non-convergence is reported
//     as Success=false with a descriptive message, never as an error.
//
// Parallelism: Options.Workers > 1 splits the dataset into Workers
// contiguous chunks summed on a bounded goroutine pool; chunk partials are
// combined in chunk order, so results differ from the serial sum only by
// floating-point association. One fit at a time per Model — see the model
// package's concurrency contract.
//
// Errors:
//
//	ErrNilModel     - model is nil.
//	ErrNoObserved   - model has no observed node.
//	ErrNoData       - empty dataset.
//	ErrNoFreeParams - every parameter is fixed (nothing to optimize).
//	ErrBadOption    - non-positive budget, tolerance, or negative Workers.
package fit
