// Package model: fundamental value types.
// This file declares Scalar, Const, Parameter, ParamOption, and the Node
// interface implemented by density nodes (see package dist).

package model

import "math"

// Scalar is a read-only scalar operand of a density node.
//
// Implemented by *Parameter (mutable unknown, owned by a Model) and by
// Const (an anonymous fixed value, shareable across models).
type Scalar interface {
	// Value returns the operand's current value.
	Value() float64
}

// Const is a fixed scalar operand. It participates in density expressions
// but is never touched by Initialize or by the fit loop.
type Const float64

// Value returns the constant itself.
func (c Const) Value() float64 { return float64(c) }

// Parameter is a named, boundable scalar unknown of a Model.
//
// Identity (name, bounds, fixed role, declaration index) is immutable after
// creation; only the current value mutates — via Initialize, SetValue, and a
// successful fit. A Parameter is exclusively owned by the Model that created
// it and must not be used as an operand in another model.
type Parameter struct {
	name  string
	lower float64 // math.Inf(-1) when absent
	upper float64 // math.Inf(+1) when absent
	value float64
	fixed bool
	owner *Model
	index int // declaration order within owner
}

// Name returns the parameter's unique (per model) name.
func (p *Parameter) Name() string { return p.name }

// Value returns the parameter's current value.
// Before any Initialize the value is the documented default:
// midpoint of finite bounds, bound±1 when half-bounded, 0 when unbounded.
func (p *Parameter) Value() float64 { return p.value }

// Bounds returns the declared box constraint. Absent bounds are ±Inf.
func (p *Parameter) Bounds() (lower, upper float64) { return p.lower, p.upper }

// Fixed reports whether the parameter is excluded from fitting.
func (p *Parameter) Fixed() bool { return p.fixed }

// ParamOption configures a Parameter at declaration time.
type ParamOption func(*Parameter)

// WithBounds constrains the parameter to [lower, upper].
// Validation (lower < upper, no NaN) happens in Model.Parameter.
func WithBounds(lower, upper float64) ParamOption {
	return func(p *Parameter) {
		p.lower = lower
		p.upper = upper
	}
}

// WithLower constrains the parameter to [lower, +Inf).
func WithLower(lower float64) ParamOption {
	return func(p *Parameter) { p.lower = lower }
}

// WithUpper constrains the parameter to (-Inf, upper].
func WithUpper(upper float64) ParamOption {
	return func(p *Parameter) { p.upper = upper }
}

// Fixed marks the parameter as fixed: it keeps whatever value Initialize or
// SetValue assigned and is skipped by the optimizer.
func Fixed() ParamOption {
	return func(p *Parameter) { p.fixed = true }
}

// Node is a composable probability-density building block.
//
// Implementations live in package dist and register themselves with their
// Model at construction. All methods are read-only with respect to the node
// itself; LogProb reads the *current* values of the node's parameters.
type Node interface {
	// LogProb returns the log-density at x under the current parameter
	// values. Points outside the support, and invalid parameter values
	// (e.g. sigma ≤ 0), yield math.Inf(-1) — never a panic.
	LogProb(x float64) float64

	// Support returns the interval on which the density may be non-zero.
	// Unbounded sides are ±Inf.
	Support() (lower, upper float64)

	// Operands returns the node's direct scalar operands (parameters and
	// constants) in positional order.
	Operands() []Scalar

	// Children returns the node's direct child nodes (empty for primitives).
	Children() []Node
}

// defaultValue derives the documented default starting value for a
// parameter with the given bounds: midpoint when both are finite,
// bound±1 when half-bounded, 0 when unbounded.
func defaultValue(lower, upper float64) float64 {
	loFin, hiFin := !math.IsInf(lower, -1), !math.IsInf(upper, 1)
	switch {
	case loFin && hiFin:
		return lower + (upper-lower)/2
	case loFin:
		return lower + 1
	case hiFin:
		return upper - 1
	default:
		return 0
	}
}
