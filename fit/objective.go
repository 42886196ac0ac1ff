// Package fit: negative log-likelihood compilation.
// This file builds the objective closure the optimizer minimizes: a function
// of the transformed free-parameter vector that writes the candidate values
// into the model and sums -LogProb over the dataset.

package fit

import (
	"math"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/probfit/model"
)

// objective holds the compiled likelihood state for one MLE run.
type objective struct {
	m       *model.Model
	node    model.Node
	free    []*model.Parameter // declaration order
	trs     []boxTransform     // aligned with free
	data    []float64
	workers int
}

// newObjective compiles the model's observed node into an objective over
// the free parameters.
func newObjective(m *model.Model, data []float64, workers int) *objective {
	free := m.FreeParams()
	trs := make([]boxTransform, len(free))
	for i, p := range free {
		trs[i] = newBoxTransform(p)
	}

	return &objective{
		m:       m,
		node:    m.ObservedNode(),
		free:    free,
		trs:     trs,
		data:    data,
		workers: workers,
	}
}

// start returns the unconstrained starting vector derived from the current
// (initialized or defaulted) parameter values.
func (o *objective) start() []float64 {
	x0 := make([]float64, len(o.free))
	for i, p := range o.free {
		x0[i] = o.trs[i].toUnconstrained(p.Value())
	}

	return x0
}

// apply writes the transformed candidate vector into the model's parameters
// and reports whether the whole vector was feasible. The optimizer may hand
// eval any finite coordinate, and the one-sided transforms overflow to ±Inf
// for t beyond ~709.8 (math.Exp saturates); such a point is infeasible, not
// a bug, and must surface as a rejected step. A false return may leave a
// prefix of the parameters updated; the next successful apply overwrites it.
func (o *objective) apply(t []float64) bool {
	for i, p := range o.free {
		v := o.trs[i].toBounded(t[i])
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
		if err := o.m.SetValue(p, v); err != nil {
			return false
		}
	}

	return true
}

// eval is the optimizer-facing objective: total NLL at the candidate point.
// Infeasible candidate coordinates and non-finite log-densities make the
// result +Inf (a rejected step), never a panic.
func (o *objective) eval(t []float64) float64 {
	if !o.apply(t) {
		return math.Inf(1)
	}

	if o.workers <= 1 || len(o.data) < 2*o.workers {
		return sumNLL(o.node, o.data)
	}

	// Chunked parallel reduction: fixed contiguous chunks, partials combined
	// in chunk order, so the only nondeterminism is float association.
	chunks := o.workers
	size := (len(o.data) + chunks - 1) / chunks
	partial := make([]float64, chunks)

	p := pool.New().WithMaxGoroutines(o.workers)
	for c := 0; c < chunks; c++ {
		c := c
		lo := c * size
		hi := lo + size
		if hi > len(o.data) {
			hi = len(o.data)
		}
		p.Go(func() {
			partial[c] = sumNLL(o.node, o.data[lo:hi])
		})
	}
	p.Wait()

	total := 0.0
	for _, s := range partial {
		total += s
	}

	return total
}

// sumNLL accumulates -LogProb over xs, short-circuiting to +Inf on the
// first non-finite term.
func sumNLL(n model.Node, xs []float64) float64 {
	total := 0.0
	for _, x := range xs {
		lp := n.LogProb(x)
		if math.IsNaN(lp) || math.IsInf(lp, 0) {
			return math.Inf(1)
		}
		total -= lp
	}

	return total
}
