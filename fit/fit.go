package fit

import (
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/probfit/model"
)

// MLE — bounded maximum-likelihood fit
//
// Description:
//
//	MLE minimizes the total negative log-likelihood of the model's observed
//	node over the free parameters, starting from the values set by
//	Initialize (or each parameter's documented default), and respecting the
//	declared box constraints via bijective transforms.
//
// Algorithm Outline:
//  1. Validate model, data and options (fail fast, sentinel errors).
//  2. Build the transformed objective (see objective.go, transform.go).
//  3. Minimize with L-BFGS + backtracking line search and fd gradients,
//     or Nelder–Mead, under the budgets and converger from opts.
//  4. Map the best point back into the box, write it into the model, and
//     report Result{Success, Message, Func, Calls, NIter, X, Names}.
//
// A nil opts uses DefaultOptions(). Non-convergence within the budgets
// yields Success=false plus a descriptive Message — inspect Success before
// trusting the fitted values. The best-known feasible point is written back
// either way, so a failed fit still leaves the model in-bounds.
//
// Errors:
//   - ErrNilModel, ErrNoObserved, ErrNoData, ErrNoFreeParams, ErrBadOption.
//
// Complexity: O(calls · len(data) · graph depth) time,
// O(len(free) + Workers) space.
func MLE(m *model.Model, data []float64, opts *Options) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	if m.ObservedNode() == nil {
		return Result{}, ErrNoObserved
	}
	if len(data) == 0 {
		return Result{}, ErrNoData
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	obj := newObjective(m, data, o.Workers)
	if len(obj.free) == 0 {
		return Result{}, ErrNoFreeParams
	}

	problem := optimize.Problem{Func: obj.eval}
	var method optimize.Method
	switch o.Method {
	case NelderMead:
		method = &optimize.NelderMead{}
	default:
		problem.Grad = func(grad, t []float64) {
			fd.Gradient(grad, obj.eval, t, nil)
		}
		method = &optimize.LBFGS{Linesearcher: &optimize.Backtracking{}}
	}

	settings := &optimize.Settings{
		MajorIterations: o.MaxIterations,
		FuncEvaluations: o.MaxCalls,
		Converger: &optimize.FunctionConverge{
			Absolute:   o.Tolerance,
			Iterations: convergeIterations,
		},
	}

	res, err := optimize.Minimize(problem, obj.start(), settings, method)

	out := Result{Names: freeNames(obj.free)}
	if res == nil {
		// Optimizer failed before producing any location; the model keeps
		// its starting values, which are feasible.
		if err != nil {
			out.Message = err.Error()
		}

		return out, nil
	}

	// Write the best point back through the transforms so the model holds
	// feasible fitted values regardless of the termination status. A best
	// point that does not map into the box (its objective was +Inf) cannot
	// be a converged minimum; report it as a failed fit.
	feasible := obj.apply(res.Location.X)
	out.X = make([]float64, len(obj.free))
	for i, p := range obj.free {
		out.X[i] = p.Value()
	}
	out.Func = res.Location.F
	out.Calls = res.Stats.FuncEvaluations
	out.NIter = res.Stats.MajorIterations
	out.Message = res.Status.String()
	out.Success = err == nil && feasible && converged(res.Status)
	if err != nil {
		out.Message = res.Status.String() + ": " + err.Error()
	}
	if !feasible {
		out.Message = res.Status.String() + ": best point outside parameter bounds"
	}

	return out, nil
}

// NLL evaluates the total negative log-likelihood of the observed node over
// data at the model's current parameter values, without running a fit.
// Useful for profile scans and likelihood-ratio comparisons.
//
// Errors: ErrNilModel, ErrNoObserved, ErrNoData.
// Complexity: O(len(data) · graph depth) time, O(1) space.
func NLL(m *model.Model, data []float64) (float64, error) {
	if m == nil {
		return 0, ErrNilModel
	}
	if m.ObservedNode() == nil {
		return 0, ErrNoObserved
	}
	if len(data) == 0 {
		return 0, ErrNoData
	}

	return sumNLL(m.ObservedNode(), data), nil
}

// converged reports whether a termination status means the optimizer
// actually reached a minimum, as opposed to exhausting a budget.
func converged(s optimize.Status) bool {
	switch s {
	case optimize.Success,
		optimize.FunctionThreshold,
		optimize.FunctionConvergence,
		optimize.GradientThreshold,
		optimize.StepConvergence:
		return true
	default:
		return false
	}
}

// freeNames extracts parameter names aligned with the fitted vector.
func freeNames(free []*model.Parameter) []string {
	names := make([]string, len(free))
	for i, p := range free {
		names[i] = p.Name()
	}

	return names
}
