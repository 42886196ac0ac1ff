// Package fit defines the fitting options and the OptimizationResult record.

package fit

import (
	"fmt"
	"strings"
)

// Method selects the minimization algorithm.
//
//   - LBFGS      — limited-memory quasi-Newton with a backtracking line
//     search and numerical gradients. Default; fast on smooth likelihoods.
//   - NelderMead — derivative-free simplex. Slower but immune to noisy
//     gradients; use it when L-BFGS reports line-search failures.
type Method int

const (
	// LBFGS: gradient-based quasi-Newton minimization (default).
	LBFGS Method = iota

	// NelderMead: derivative-free simplex minimization.
	NelderMead
)

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in DefaultOptions.
const (
	// DefaultMaxIterations bounds the optimizer's major iterations.
	DefaultMaxIterations = 1000

	// DefaultMaxCalls bounds the number of objective evaluations.
	DefaultMaxCalls = 10000

	// DefaultTolerance is the absolute function-convergence tolerance:
	// the fit stops once the objective improves by less than this for
	// convergeIterations consecutive checks.
	DefaultTolerance = 1e-10

	// DefaultWorkers evaluates the likelihood serially.
	DefaultWorkers = 1

	// convergeIterations is the patience of the function converger.
	convergeIterations = 20
)

// Options configures MLE.
//
// Fields:
//   - Method        — LBFGS (default) or NelderMead.
//   - MaxIterations — major-iteration budget (> 0).
//   - MaxCalls      — objective-evaluation budget (> 0).
//   - Tolerance     — absolute function-convergence tolerance (> 0).
//   - Workers       — goroutines for the likelihood sum; 1 = serial,
//     0 is normalized to 1, negative is rejected with ErrBadOption.
//
// Example:
//
//	opts := fit.DefaultOptions()
//	opts.Method = fit.NelderMead
//	opts.Workers = 4
//	res, err := fit.MLE(m, data, &opts)
type Options struct {
	Method        Method
	MaxIterations int
	MaxCalls      int
	Tolerance     float64
	Workers       int
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		Method:        LBFGS,
		MaxIterations: DefaultMaxIterations,
		MaxCalls:      DefaultMaxCalls,
		Tolerance:     DefaultTolerance,
		Workers:       DefaultWorkers,
	}
}

// validate normalizes Workers=0 to serial and rejects nonsensical values.
func (o *Options) validate() error {
	if o.Method != LBFGS && o.Method != NelderMead {
		return fmt.Errorf("%w: unknown method %d", ErrBadOption, o.Method)
	}
	if o.MaxIterations <= 0 || o.MaxCalls <= 0 {
		return fmt.Errorf("%w: budgets must be positive", ErrBadOption)
	}
	if o.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive", ErrBadOption)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: negative Workers", ErrBadOption)
	}
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}

	return nil
}

// Result is the immutable record of one MLE run.
//
// Fields:
//   - Success — whether the optimizer converged within its budgets.
//   - Message — human-readable termination status (not a stable format).
//   - Func    — final objective value (total negative log-likelihood).
//   - Calls   — number of objective evaluations.
//   - NIter   — number of major iterations.
//   - X       — fitted free-parameter values in declaration order.
//   - Names   — free-parameter names aligned with X.
type Result struct {
	Success bool
	Message string
	Func    float64
	Calls   int
	NIter   int
	X       []float64
	Names   []string
}

// String renders the result as a multi-line block:
//
//	success: true
//	message: FunctionConvergence
//	func:    12345.678901
//	calls:   231
//	niter:   42
//	x:       [mu=19.98 sigma=2.01]
func (r Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "success: %t\n", r.Success)
	fmt.Fprintf(&b, "message: %s\n", r.Message)
	fmt.Fprintf(&b, "func:    %.6f\n", r.Func)
	fmt.Fprintf(&b, "calls:   %d\n", r.Calls)
	fmt.Fprintf(&b, "niter:   %d\n", r.NIter)
	b.WriteString("x:       [")
	for i, v := range r.X {
		if i > 0 {
			b.WriteByte(' ')
		}
		name := fmt.Sprintf("p%d", i)
		if i < len(r.Names) {
			name = r.Names[i]
		}
		fmt.Fprintf(&b, "%s=%.6g", name, v)
	}
	b.WriteByte(']')

	return b.String()
}
