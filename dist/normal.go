package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/probfit/model"
)

// Normal — Gaussian density node.
//
// Description:
//
//	Normal(mu, sigma) is the Gaussian density with mean mu and positive
//	scale sigma, read from its scalar operands at every evaluation. With
//	Truncated(lower, upper) the density is renormalized by the window mass
//	CDF(upper) - CDF(lower), so it integrates to exactly 1 over [lower,
//	upper] and is 0 outside it.
//
// Evaluation:
//
//	sigma ≤ 0, non-finite operand values, x outside the support, or a
//	vanishing window mass all yield math.Inf(-1) from LogProb.
//
// Complexity: LogProb is O(1) time and space.
type Normal struct {
	mu    model.Scalar
	sigma model.Scalar
	trunc truncation
}

// NewNormal constructs a Normal node over mu and sigma and registers it
// with m.
//
// Parameters:
//   - m:         owning model (nil → ErrNilModel).
//   - mu, sigma: scalar operands (nil → ErrNilOperand).
//   - opts:      optional Truncated(lower, upper).
//
// Errors:
//   - ErrNilModel, ErrNilOperand, ErrInvalidTruncation,
//     and model.ErrForeignParam via registration.
func NewNormal(m *model.Model, mu, sigma model.Scalar, opts ...Option) (*Normal, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if mu == nil || sigma == nil {
		return nil, ErrNilOperand
	}
	t, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	n := &Normal{mu: mu, sigma: sigma, trunc: t}
	if err = m.Register(n); err != nil {
		return nil, err
	}

	return n, nil
}

// LogProb returns the log-density at x under the current operand values.
func (n *Normal) LogProb(x float64) float64 {
	mu, sigma := n.mu.Value(), n.sigma.Value()
	if sigma <= 0 || !finiteValues(mu, sigma) {
		return math.Inf(-1)
	}

	lo, hi := n.Support()
	if x < lo || x > hi {
		return math.Inf(-1)
	}

	d := distuv.Normal{Mu: mu, Sigma: sigma}
	lp := d.LogProb(x)
	if n.trunc.enabled {
		mass := d.CDF(n.trunc.upper) - d.CDF(n.trunc.lower)
		if mass <= 0 || math.IsNaN(mass) {
			return math.Inf(-1)
		}
		lp -= math.Log(mass)
	}

	return lp
}

// Support returns the effective support: the truncation window when set,
// otherwise the whole real line.
func (n *Normal) Support() (lower, upper float64) {
	return n.trunc.clip(math.Inf(-1), math.Inf(1))
}

// Operands returns [mu, sigma].
func (n *Normal) Operands() []model.Scalar { return []model.Scalar{n.mu, n.sigma} }

// Children returns nil: Normal is a primitive.
func (n *Normal) Children() []model.Node { return nil }
