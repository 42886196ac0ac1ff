package fit

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/probfit/dist"
	"github.com/katalvlaran/probfit/model"
)

// buildNormalModel declares Normal(mu, sigma) with mu, sigma free and marks
// it observed.
func buildNormalModel(t *testing.T) (*model.Model, *model.Parameter, *model.Parameter) {
	t.Helper()
	m := model.New()
	mu, err := m.Parameter("mu")
	require.NoError(t, err)
	sigma, err := m.Parameter("sigma", model.WithLower(0))
	require.NoError(t, err)
	n, err := dist.NewNormal(m, mu, sigma)
	require.NoError(t, err)
	require.NoError(t, m.Observed(n))

	return m, mu, sigma
}

// TestObjective_MatchesDirectSum checks that eval at the starting point
// equals the hand-computed -Σ log pdf.
func TestObjective_MatchesDirectSum(t *testing.T) {
	m, mu, sigma := buildNormalModel(t)
	require.NoError(t, m.Initialize(map[*model.Parameter]float64{mu: 1, sigma: 2}))

	data := []float64{-1, 0, 0.5, 1, 3, 8}
	obj := newObjective(m, data, 1)

	want := 0.0
	for _, x := range data {
		z := (x - 1.0) / 2.0
		want -= -z*z/2 - math.Log(2*math.Sqrt(2*math.Pi))
	}

	got := obj.eval(obj.start())
	assert.InDelta(t, want, got, 1e-9)
}

// TestObjective_ParallelMatchesSerial: the chunked reduction agrees with
// the serial sum within float association tolerance.
func TestObjective_ParallelMatchesSerial(t *testing.T) {
	m, mu, sigma := buildNormalModel(t)
	require.NoError(t, m.Initialize(map[*model.Parameter]float64{mu: 20, sigma: 2}))

	r := rand.New(rand.NewSource(7))
	data := make([]float64, 10000)
	for i := range data {
		data[i] = 20 + 2*r.NormFloat64()
	}

	serial := newObjective(m, data, 1)
	parallel := newObjective(m, data, 4)

	x0 := serial.start()
	a, b := serial.eval(x0), parallel.eval(x0)
	assert.InEpsilon(t, a, b, 1e-9)
}

// TestObjective_InfOnOverflowingCoordinate: the optimizer may propose any
// finite coordinate, and the one-sided transforms overflow math.Exp beyond
// t ≈ 709.8. Such candidates must score +Inf (a rejected step), not panic.
func TestObjective_InfOnOverflowingCoordinate(t *testing.T) {
	// Lower-bounded shape: lambda ∈ (0, +Inf), v = exp(t) overflows.
	m := model.New()
	lambda, err := m.Parameter("lambda", model.WithLower(0))
	require.NoError(t, err)
	e, err := dist.NewExponential(m, lambda)
	require.NoError(t, err)
	require.NoError(t, m.Observed(e))
	require.NoError(t, m.Initialize(map[*model.Parameter]float64{lambda: 1}))

	obj := newObjective(m, []float64{0.5, 2}, 1)
	require.NotPanics(t, func() {
		assert.True(t, math.IsInf(obj.eval([]float64{710}), 1))
	})
	assert.False(t, math.IsInf(obj.eval([]float64{0}), 1),
		"feasible coordinates still evaluate after a rejected one")

	// Upper-bounded shape: mu ∈ (-Inf, 0], v = -exp(t) overflows to -Inf.
	m2 := model.New()
	mu, err := m2.Parameter("mu", model.WithUpper(0))
	require.NoError(t, err)
	n, err := dist.NewNormal(m2, mu, model.Const(1))
	require.NoError(t, err)
	require.NoError(t, m2.Observed(n))
	require.NoError(t, m2.Initialize(map[*model.Parameter]float64{mu: -1}))

	obj2 := newObjective(m2, []float64{-0.5}, 1)
	require.NotPanics(t, func() {
		assert.True(t, math.IsInf(obj2.eval([]float64{710}), 1))
	})
}

// TestObjective_InfOnOutOfSupport: one observation outside the support
// poisons the whole objective with +Inf instead of panicking.
func TestObjective_InfOnOutOfSupport(t *testing.T) {
	m := model.New()
	lambda, err := m.Parameter("lambda", model.WithLower(0))
	require.NoError(t, err)
	e, err := dist.NewExponential(m, lambda)
	require.NoError(t, err)
	require.NoError(t, m.Observed(e))
	require.NoError(t, m.Initialize(map[*model.Parameter]float64{lambda: 1}))

	obj := newObjective(m, []float64{0.5, 2, -1}, 1)
	assert.True(t, math.IsInf(obj.eval(obj.start()), 1))
}
