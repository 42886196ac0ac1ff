// Package fit: bijective transforms between a parameter's bounded domain
// and the optimizer's unconstrained coordinate space.
//
// Mapping per bound shape (lo, hi = declared bounds):
//   - both finite:  v = lo + (hi-lo)·sigmoid(t),  t = logit((v-lo)/(hi-lo))
//   - lower only:   v = lo + exp(t),              t = log(v - lo)
//   - upper only:   v = hi - exp(t),              t = log(hi - v)
//   - unbounded:    v = t
//
// Mathematically each transform maps all of ℝ into the box; in float64 the
// one-sided shapes overflow math.Exp to ±Inf for |t| beyond ~709.8, so the
// objective treats a non-finite toBounded output as an infeasible candidate
// worth +Inf (see objective.apply). Starting values sitting exactly on a
// closed bound are nudged inward by boundaryEps before inversion, since the
// open-interval transforms have no finite coordinate for the boundary.

package fit

import (
	"math"

	"github.com/katalvlaran/probfit/model"
)

// boundaryEps is the relative inward nudge applied when a starting value
// coincides with a closed bound.
const boundaryEps = 1e-12

// boundShape discriminates the four transform cases.
type boundShape int

const (
	shapeFree boundShape = iota
	shapeLower
	shapeUpper
	shapeBoth
)

// boxTransform maps one parameter between its bounded domain and ℝ.
type boxTransform struct {
	shape boundShape
	lower float64
	upper float64
}

// newBoxTransform derives the transform for p from its declared bounds.
func newBoxTransform(p *model.Parameter) boxTransform {
	lo, hi := p.Bounds()
	loFin, hiFin := !math.IsInf(lo, -1), !math.IsInf(hi, 1)
	switch {
	case loFin && hiFin:
		return boxTransform{shape: shapeBoth, lower: lo, upper: hi}
	case loFin:
		return boxTransform{shape: shapeLower, lower: lo}
	case hiFin:
		return boxTransform{shape: shapeUpper, upper: hi}
	default:
		return boxTransform{shape: shapeFree}
	}
}

// toBounded maps an unconstrained coordinate t into the parameter's box.
func (b boxTransform) toBounded(t float64) float64 {
	switch b.shape {
	case shapeBoth:
		return b.lower + (b.upper-b.lower)*sigmoid(t)
	case shapeLower:
		return b.lower + math.Exp(t)
	case shapeUpper:
		return b.upper - math.Exp(t)
	default:
		return t
	}
}

// toUnconstrained maps an in-box value v to its unconstrained coordinate.
// Values on a closed bound are nudged inward by boundaryEps first.
func (b boxTransform) toUnconstrained(v float64) float64 {
	switch b.shape {
	case shapeBoth:
		width := b.upper - b.lower
		frac := (v - b.lower) / width
		frac = math.Min(math.Max(frac, boundaryEps), 1-boundaryEps)

		return math.Log(frac / (1 - frac))
	case shapeLower:
		return math.Log(math.Max(v-b.lower, boundaryEps))
	case shapeUpper:
		return math.Log(math.Max(b.upper-v, boundaryEps))
	default:
		return v
	}
}

// sigmoid is the logistic function, stable for large |t|.
func sigmoid(t float64) float64 {
	if t >= 0 {
		return 1 / (1 + math.Exp(-t))
	}
	e := math.Exp(t)

	return e / (1 + e)
}
