package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/probfit/model"
)

// Exponential — exponential density node.
//
// Description:
//
//	Exponential(lambda) is the density lambda·exp(-lambda·x) for x ≥ 0.
//	Truncated(lower, upper) intersects the window with the natural support
//	[0, +Inf) and renormalizes by the window mass, exactly as Normal does.
//	A window lying entirely at or below 0 is rejected at construction with
//	ErrInvalidTruncation, since no density mass could ever fall inside it.
//
// Evaluation:
//
//	lambda ≤ 0, a non-finite lambda, x outside the effective support, or a
//	vanishing window mass all yield math.Inf(-1) from LogProb.
//
// Complexity: LogProb is O(1) time and space.
type Exponential struct {
	lambda model.Scalar
	trunc  truncation
}

// NewExponential constructs an Exponential node over lambda and registers
// it with m.
//
// Parameters:
//   - m:      owning model (nil → ErrNilModel).
//   - lambda: rate operand (nil → ErrNilOperand).
//   - opts:   optional Truncated(lower, upper).
//
// Errors:
//   - ErrNilModel, ErrNilOperand, ErrInvalidTruncation,
//     and model.ErrForeignParam via registration.
func NewExponential(m *model.Model, lambda model.Scalar, opts ...Option) (*Exponential, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if lambda == nil {
		return nil, ErrNilOperand
	}
	t, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	// A window that never meets (0, +Inf) would make every density zero;
	// reject it at construction instead of yielding an unfittable node.
	if t.enabled && t.upper <= 0 {
		return nil, ErrInvalidTruncation
	}

	e := &Exponential{lambda: lambda, trunc: t}
	if err = m.Register(e); err != nil {
		return nil, err
	}

	return e, nil
}

// LogProb returns the log-density at x under the current lambda value.
func (e *Exponential) LogProb(x float64) float64 {
	lambda := e.lambda.Value()
	if lambda <= 0 || !finiteValues(lambda) {
		return math.Inf(-1)
	}

	lo, hi := e.Support()
	if x < lo || x > hi {
		return math.Inf(-1)
	}

	d := distuv.Exponential{Rate: lambda}
	lp := d.LogProb(x)
	if e.trunc.enabled {
		// CDF is 0 below the natural support, so the clipped window mass
		// falls out of the same expression.
		mass := d.CDF(hi) - d.CDF(lo)
		if mass <= 0 || math.IsNaN(mass) {
			return math.Inf(-1)
		}
		lp -= math.Log(mass)
	}

	return lp
}

// Support returns the effective support: the truncation window intersected
// with [0, +Inf).
func (e *Exponential) Support() (lower, upper float64) {
	return e.trunc.clip(0, math.Inf(1))
}

// Operands returns [lambda].
func (e *Exponential) Operands() []model.Scalar { return []model.Scalar{e.lambda} }

// Children returns nil: Exponential is a primitive.
func (e *Exponential) Children() []model.Node { return nil }
