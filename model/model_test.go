package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/probfit/model"
)

// stubNode is a minimal Node for registration and evaluation tests:
// log-density -x everywhere, unbounded support.
type stubNode struct {
	ops      []model.Scalar
	children []model.Node
}

func (n *stubNode) LogProb(x float64) float64   { return -x }
func (n *stubNode) Support() (float64, float64) { return math.Inf(-1), math.Inf(1) }
func (n *stubNode) Operands() []model.Scalar    { return n.ops }
func (n *stubNode) Children() []model.Node      { return n.children }

// TestParameter_Defaults verifies the documented default starting values
// for each bound shape.
func TestParameter_Defaults(t *testing.T) {
	m := model.New()

	free, err := m.Parameter("free")
	require.NoError(t, err)
	assert.Equal(t, 0.0, free.Value(), "unbounded default must be 0")

	boxed, err := m.Parameter("boxed", model.WithBounds(0, 1))
	require.NoError(t, err)
	assert.Equal(t, 0.5, boxed.Value(), "two-sided default must be the midpoint")

	low, err := m.Parameter("low", model.WithLower(2))
	require.NoError(t, err)
	assert.Equal(t, 3.0, low.Value(), "lower-only default must be lower+1")

	up, err := m.Parameter("up", model.WithUpper(10))
	require.NoError(t, err)
	assert.Equal(t, 9.0, up.Value(), "upper-only default must be upper-1")
}

// TestParameter_Identity checks name, bounds, fixed role, and declaration
// order bookkeeping.
func TestParameter_Identity(t *testing.T) {
	m := model.New()

	a, err := m.Parameter("a", model.WithBounds(-1, 1))
	require.NoError(t, err)
	b, err := m.Parameter("b", model.Fixed())
	require.NoError(t, err)

	assert.Equal(t, "a", a.Name())
	lo, hi := a.Bounds()
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 1.0, hi)
	assert.False(t, a.Fixed())
	assert.True(t, b.Fixed())

	assert.Equal(t, []*model.Parameter{a, b}, m.Params(), "declaration order")
	assert.Equal(t, []*model.Parameter{a}, m.FreeParams(), "fixed excluded")

	got, ok := m.Lookup("b")
	assert.True(t, ok)
	assert.Same(t, b, got)
	_, ok = m.Lookup("missing")
	assert.False(t, ok)
}

// TestParameter_Validation covers empty names, duplicates, and bad bounds.
func TestParameter_Validation(t *testing.T) {
	m := model.New()

	_, err := m.Parameter("")
	assert.ErrorIs(t, err, model.ErrEmptyParamName)

	_, err = m.Parameter("x")
	require.NoError(t, err)
	_, err = m.Parameter("x")
	assert.ErrorIs(t, err, model.ErrDuplicateParam)

	_, err = m.Parameter("bad", model.WithBounds(1, 1))
	assert.ErrorIs(t, err, model.ErrInvalidBounds, "lower == upper must be rejected")
	_, err = m.Parameter("bad", model.WithBounds(2, 1))
	assert.ErrorIs(t, err, model.ErrInvalidBounds, "lower > upper must be rejected")
	_, err = m.Parameter("bad", model.WithLower(math.NaN()))
	assert.ErrorIs(t, err, model.ErrInvalidBounds, "NaN bound must be rejected")
}

// TestInitialize_SetsValuesAndValidates checks assignment, bounds
// enforcement, foreign keys, and all-or-nothing semantics.
func TestInitialize_SetsValuesAndValidates(t *testing.T) {
	m := model.New()
	mu, err := m.Parameter("mu")
	require.NoError(t, err)
	f, err := m.Parameter("f", model.WithBounds(0, 1))
	require.NoError(t, err)

	require.NoError(t, m.Initialize(map[*model.Parameter]float64{mu: 25, f: 0.2}))
	assert.Equal(t, 25.0, mu.Value())
	assert.Equal(t, 0.2, f.Value())

	// Out-of-bounds value is rejected...
	err = m.Initialize(map[*model.Parameter]float64{f: 1.5})
	assert.ErrorIs(t, err, model.ErrValueOutOfBounds)
	// ...and non-finite values too.
	err = m.Initialize(map[*model.Parameter]float64{mu: math.NaN()})
	assert.ErrorIs(t, err, model.ErrValueOutOfBounds)

	// All-or-nothing: a failed batch must not move the valid entries.
	err = m.Initialize(map[*model.Parameter]float64{mu: 30, f: -0.1})
	assert.ErrorIs(t, err, model.ErrValueOutOfBounds)
	assert.Equal(t, 25.0, mu.Value(), "failed Initialize must leave the model untouched")

	// A parameter of another model is a foreign key.
	other := model.New()
	foreign, err := other.Parameter("mu")
	require.NoError(t, err)
	err = m.Initialize(map[*model.Parameter]float64{foreign: 1})
	assert.ErrorIs(t, err, model.ErrForeignParam)

	// Boundary values are legal (bounds inclusive).
	require.NoError(t, m.Initialize(map[*model.Parameter]float64{f: 0}))
	require.NoError(t, m.Initialize(map[*model.Parameter]float64{f: 1}))
}

// TestSetValue mirrors Initialize's validation for single assignments.
func TestSetValue(t *testing.T) {
	m := model.New()
	f, err := m.Parameter("f", model.WithBounds(0, 1))
	require.NoError(t, err)

	require.NoError(t, m.SetValue(f, 0.75))
	assert.Equal(t, 0.75, f.Value())

	assert.ErrorIs(t, m.SetValue(f, 2), model.ErrValueOutOfBounds)
	assert.ErrorIs(t, m.SetValue(nil, 0), model.ErrForeignParam)

	other := model.New()
	foreign, err := other.Parameter("f")
	require.NoError(t, err)
	assert.ErrorIs(t, m.SetValue(foreign, 0), model.ErrForeignParam)
}

// TestRegister_OwnershipChecks verifies that foreign parameters and
// unregistered children are rejected and register nothing.
func TestRegister_OwnershipChecks(t *testing.T) {
	m := model.New()
	other := model.New()

	foreign, err := other.Parameter("p")
	require.NoError(t, err)

	assert.ErrorIs(t, m.Register(nil), model.ErrNilNode)

	bad := &stubNode{ops: []model.Scalar{foreign}}
	assert.ErrorIs(t, m.Register(bad), model.ErrForeignParam)

	orphan := &stubNode{}
	withOrphan := &stubNode{children: []model.Node{orphan}}
	assert.ErrorIs(t, m.Register(withOrphan), model.ErrForeignNode,
		"child must be registered before its parent")

	// Proper order: child first, then parent.
	require.NoError(t, m.Register(orphan))
	require.NoError(t, m.Register(withOrphan))

	// Const operands are shareable and never foreign.
	shared := &stubNode{ops: []model.Scalar{model.Const(2)}}
	require.NoError(t, m.Register(shared))
	require.NoError(t, other.Register(&stubNode{ops: []model.Scalar{model.Const(2)}}))
}

// TestObserved covers the single-designation contract.
func TestObserved(t *testing.T) {
	m := model.New()
	n := &stubNode{}
	require.NoError(t, m.Register(n))

	assert.ErrorIs(t, m.Observed(nil), model.ErrNilNode)
	assert.ErrorIs(t, m.Observed(&stubNode{}), model.ErrForeignNode,
		"unregistered node cannot be observed")

	require.NoError(t, m.Observed(n))
	assert.Same(t, n, m.ObservedNode())

	assert.ErrorIs(t, m.Observed(n), model.ErrObservedAlreadySet)
}

// TestPDF_And_LogPDF checks evaluation against the stub's closed form and
// the ErrNoObserved guard.
func TestPDF_And_LogPDF(t *testing.T) {
	m := model.New()

	_, err := m.PDF([]float64{1})
	assert.ErrorIs(t, err, model.ErrNoObserved)
	_, err = m.LogPDF([]float64{1})
	assert.ErrorIs(t, err, model.ErrNoObserved)

	n := &stubNode{}
	require.NoError(t, m.Register(n))
	require.NoError(t, m.Observed(n))

	xs := []float64{0, 1, 2.5}
	pdf, err := m.PDF(xs)
	require.NoError(t, err)
	logp, err := m.LogPDF(xs)
	require.NoError(t, err)

	require.Len(t, pdf, len(xs))
	for i, x := range xs {
		assert.InDelta(t, math.Exp(-x), pdf[i], 1e-15)
		assert.InDelta(t, -x, logp[i], 1e-15)
	}
}
