// Package model: the Model registration context.
// This file declares the Model struct, the New constructor, and all
// model-level operations: Parameter, Register, Observed, Initialize,
// SetValue, and the read-only accessors.

package model

import (
	"fmt"
	"math"
)

// Model is the scoped construction context that owns every Parameter and
// Node declared against it, tracks the single observed node, and holds the
// current parameter-value assignment.
//
// Not safe for concurrent mutation; see package doc for the exact contract.
type Model struct {
	params   []*Parameter          // declaration order
	names    map[string]*Parameter // name → parameter
	nodes    []Node                // registration order
	nodeSet  map[Node]struct{}     // membership for ownership checks
	observed Node                  // likelihood target, nil until Observed
}

// New creates an empty Model.
// Complexity: O(1)
func New() *Model {
	return &Model{
		names:   make(map[string]*Parameter),
		nodeSet: make(map[Node]struct{}),
	}
}

// Parameter declares a new named scalar unknown in this model.
//
// The parameter starts at its documented default value (midpoint of finite
// bounds, bound±1 when half-bounded, 0 when unbounded); Initialize overrides
// the default before fitting.
//
// Errors:
//   - ErrEmptyParamName — name is "".
//   - ErrDuplicateParam — name already declared in this model.
//   - ErrInvalidBounds  — lower ≥ upper, or a NaN bound.
//
// Complexity: O(len(opts)) time, O(1) space.
func (m *Model) Parameter(name string, opts ...ParamOption) (*Parameter, error) {
	if name == "" {
		return nil, ErrEmptyParamName
	}
	if _, exists := m.names[name]; exists {
		return nil, fmt.Errorf("Parameter(%q): %w", name, ErrDuplicateParam)
	}

	p := &Parameter{
		name:  name,
		lower: math.Inf(-1),
		upper: math.Inf(1),
		owner: m,
		index: len(m.params),
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := validateBounds(p.lower, p.upper); err != nil {
		return nil, fmt.Errorf("Parameter(%q): %w", name, err)
	}
	p.value = defaultValue(p.lower, p.upper)

	m.params = append(m.params, p)
	m.names[name] = p

	return p, nil
}

// Register adds a density node to this model after verifying ownership of
// all its operands: every *Parameter operand must be owned by this model and
// every child node must already be registered here. A node that fails
// validation is not registered (nothing to roll back).
//
// Register is called by the dist constructors; application code normally
// never calls it directly.
//
// Errors:
//   - ErrNilNode      — n is nil.
//   - ErrForeignParam — an operand parameter belongs to another model.
//   - ErrForeignNode  — a child node was not registered with this model.
//
// Complexity: O(operands + children) time, O(1) space.
func (m *Model) Register(n Node) error {
	if n == nil {
		return ErrNilNode
	}
	for _, op := range n.Operands() {
		if p, ok := op.(*Parameter); ok && p.owner != m {
			return fmt.Errorf("Register: operand %q: %w", p.name, ErrForeignParam)
		}
	}
	for _, child := range n.Children() {
		if _, ok := m.nodeSet[child]; !ok {
			return fmt.Errorf("Register: %w", ErrForeignNode)
		}
	}

	m.nodes = append(m.nodes, n)
	m.nodeSet[n] = struct{}{}

	return nil
}

// Observed designates n as the likelihood target of this model.
// May be called exactly once per model.
//
// Errors:
//   - ErrNilNode            — n is nil.
//   - ErrObservedAlreadySet — a target was already designated.
//   - ErrForeignNode        — n was not registered with this model, so it
//     cannot have been built from the model's own parameters.
//
// Complexity: O(1) time and space.
func (m *Model) Observed(n Node) error {
	if n == nil {
		return ErrNilNode
	}
	if m.observed != nil {
		return ErrObservedAlreadySet
	}
	if _, ok := m.nodeSet[n]; !ok {
		return fmt.Errorf("Observed: %w", ErrForeignNode)
	}

	m.observed = n

	return nil
}

// ObservedNode returns the designated likelihood target, or nil when none
// has been declared yet.
func (m *Model) ObservedNode() Node { return m.observed }

// Initialize sets starting values for a subset (or all) of the model's
// parameters. Validation is all-or-nothing: every entry is checked before
// any assignment, so a failed Initialize leaves the model untouched.
//
// Errors:
//   - ErrForeignParam     — a key is nil or not a parameter of this model.
//   - ErrValueOutOfBounds — a value lies outside its key's declared bounds,
//     or is NaN/±Inf.
//
// Complexity: O(len(values)) time, O(1) space.
func (m *Model) Initialize(values map[*Parameter]float64) error {
	for p, v := range values {
		if p == nil || p.owner != m {
			return fmt.Errorf("Initialize: %w", ErrForeignParam)
		}
		if err := validateAssignment(v, p.lower, p.upper); err != nil {
			return fmt.Errorf("Initialize(%q): got %v, bounds [%v, %v]: %w",
				p.name, v, p.lower, p.upper, ErrValueOutOfBounds)
		}
	}
	for p, v := range values {
		p.value = v
	}

	return nil
}

// SetValue assigns a single parameter value with the same bounds check as
// Initialize. Used by the fit writeback and by callers doing manual profile
// scans over one parameter.
//
// Errors: ErrForeignParam, ErrValueOutOfBounds (as Initialize).
// Complexity: O(1) time and space.
func (m *Model) SetValue(p *Parameter, v float64) error {
	if p == nil || p.owner != m {
		return fmt.Errorf("SetValue: %w", ErrForeignParam)
	}
	if err := validateAssignment(v, p.lower, p.upper); err != nil {
		return fmt.Errorf("SetValue(%q): %w", p.name, err)
	}
	p.value = v

	return nil
}

// Params returns the model's parameters in declaration order.
// The returned slice is a copy; the *Parameter values are shared.
// Complexity: O(n) time and space.
func (m *Model) Params() []*Parameter {
	out := make([]*Parameter, len(m.params))
	copy(out, m.params)

	return out
}

// FreeParams returns the non-fixed parameters in declaration order.
// Complexity: O(n) time and space.
func (m *Model) FreeParams() []*Parameter {
	out := make([]*Parameter, 0, len(m.params))
	for _, p := range m.params {
		if !p.fixed {
			out = append(out, p)
		}
	}

	return out
}

// Lookup returns the parameter declared under name, if any.
// Complexity: O(1) time.
func (m *Model) Lookup(name string) (*Parameter, bool) {
	p, ok := m.names[name]

	return p, ok
}

// PDF evaluates the observed node's density at each point of xs using the
// model's current parameter values (post-fit values if a fit succeeded).
// The call is side-effect-free and repeatable; results are non-negative,
// with points outside the support mapping to exactly 0.
//
// Errors: ErrNoObserved when no observed node has been declared.
// Complexity: O(len(xs) · graph depth) time, O(len(xs)) space.
func (m *Model) PDF(xs []float64) ([]float64, error) {
	if m.observed == nil {
		return nil, ErrNoObserved
	}

	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = math.Exp(m.observed.LogProb(x)) // Exp(-Inf) == 0
	}

	return out, nil
}

// LogPDF is the log-density variant of PDF. Points outside the support
// yield math.Inf(-1).
//
// Errors: ErrNoObserved when no observed node has been declared.
// Complexity: O(len(xs) · graph depth) time, O(len(xs)) space.
func (m *Model) LogPDF(xs []float64) ([]float64, error) {
	if m.observed == nil {
		return nil, ErrNoObserved
	}

	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = m.observed.LogProb(x)
	}

	return out, nil
}
