// Package dist provides the density-node library: Normal, Exponential, and
// the two-component mixture Mix2, each optionally truncated to a finite
// window [lower, upper].
//
// Every constructor takes the owning *model.Model explicitly and registers
// the new node with it, so ownership checks happen at construction time and
// a node that failed validation never enters the model.
//
// Truncation semantics:
//
//	A primitive truncated to [lower, upper] renormalizes its density by the
//	probability mass of the window, p(x) / (CDF(upper) - CDF(lower)), so the
//	truncated density integrates to exactly 1 over its support and is 0
//	outside it. The normalization uses the distribution's analytic CDF
//	(gonum stat/distuv) — no numerical integration is involved.
//
//	A truncated Mix2 is equivalent to truncating each child to the same
//	window before mixing. The two views must agree: NewMix2 rejects a
//	truncation window that differs from either child's support with
//	ErrTruncationMismatch, instead of producing an ill-defined density.
//
// Evaluation semantics:
//
//	LogProb never panics. Invalid parameter values (sigma ≤ 0, lambda ≤ 0,
//	weight outside [0,1], non-finite operands) and points outside the
//	support yield math.Inf(-1); the fit package maps such terms to a +Inf
//	objective, which the optimizer treats as a rejected step.
//
// Errors:
//
//	ErrNilModel           - constructor received a nil *model.Model.
//	ErrNilOperand         - a scalar operand is nil.
//	ErrNilComponent       - a Mix2 component node is nil.
//	ErrInvalidTruncation  - non-finite window, or lower ≥ upper.
//	ErrTruncationMismatch - Mix2 window disagrees with a child's support.
package dist
