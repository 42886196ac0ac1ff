package dist

import (
	"math"

	"github.com/katalvlaran/probfit/model"
)

// Mix2 — two-component mixture node.
//
// Description:
//
//	Mix2(weight, a, b) has density w·pA(x) + (1-w)·pB(x), with w read from
//	the weight operand at every evaluation. The sum is computed in log
//	space (log-sum-exp), so deep tails do not underflow before mixing.
//
//	Constraining w to [0, 1] is the weight parameter's job (declare it with
//	model.WithBounds(0, 1)); Mix2 itself only guards evaluation against a
//	weight that escaped that range via manual assignment.
//
// Truncation:
//
//	Truncating a mixture to [lower, upper] is equivalent to truncating each
//	child to the same window before mixing. NewMix2 therefore requires each
//	child's support to equal the declared window exactly and fails with
//	ErrTruncationMismatch otherwise — an ill-defined density is rejected at
//	construction, not discovered mid-fit. Without Truncated the mixture
//	support is the hull of the child supports and no agreement is required.
//
// Complexity: LogProb is O(child LogProb) time, O(1) space.
type Mix2 struct {
	weight model.Scalar
	a, b   model.Node
	trunc  truncation
}

// NewMix2 constructs a mixture of a and b weighted by weight (the weight
// multiplies a; b gets the complement) and registers it with m.
//
// Parameters:
//   - m:      owning model (nil → ErrNilModel).
//   - weight: mixing fraction operand (nil → ErrNilOperand).
//   - a, b:   component nodes (nil → ErrNilComponent), already registered
//     with m.
//   - opts:   optional Truncated(lower, upper); see truncation contract above.
//
// Errors:
//   - ErrNilModel, ErrNilOperand, ErrNilComponent, ErrInvalidTruncation,
//     ErrTruncationMismatch, and model.ErrForeignNode / model.ErrForeignParam
//     via registration.
func NewMix2(m *model.Model, weight model.Scalar, a, b model.Node, opts ...Option) (*Mix2, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if weight == nil {
		return nil, ErrNilOperand
	}
	if a == nil || b == nil {
		return nil, ErrNilComponent
	}
	t, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	if t.enabled {
		for _, child := range []model.Node{a, b} {
			lo, hi := child.Support()
			if lo != t.lower || hi != t.upper {
				return nil, ErrTruncationMismatch
			}
		}
	}

	mix := &Mix2{weight: weight, a: a, b: b, trunc: t}
	if err = m.Register(mix); err != nil {
		return nil, err
	}

	return mix, nil
}

// LogProb returns log(w·pA(x) + (1-w)·pB(x)) under the current values.
func (m2 *Mix2) LogProb(x float64) float64 {
	w := m2.weight.Value()
	if w < 0 || w > 1 || !finiteValues(w) {
		return math.Inf(-1)
	}

	lo, hi := m2.Support()
	if x < lo || x > hi {
		return math.Inf(-1)
	}

	la := math.Inf(-1)
	if w > 0 {
		la = math.Log(w) + m2.a.LogProb(x)
	}
	lb := math.Inf(-1)
	if w < 1 {
		lb = math.Log(1-w) + m2.b.LogProb(x)
	}

	return logAddExp(la, lb)
}

// Support returns the truncation window when set, otherwise the hull of the
// component supports.
func (m2 *Mix2) Support() (lower, upper float64) {
	if m2.trunc.enabled {
		return m2.trunc.lower, m2.trunc.upper
	}
	aLo, aHi := m2.a.Support()
	bLo, bHi := m2.b.Support()

	return math.Min(aLo, bLo), math.Max(aHi, bHi)
}

// Operands returns [weight].
func (m2 *Mix2) Operands() []model.Scalar { return []model.Scalar{m2.weight} }

// Children returns [a, b].
func (m2 *Mix2) Children() []model.Node { return []model.Node{m2.a, m2.b} }
