package fit_test

import (
	"fmt"

	"github.com/katalvlaran/probfit/dist"
	"github.com/katalvlaran/probfit/fit"
	"github.com/katalvlaran/probfit/model"
)

// ExampleMLE demonstrates the fail-fast configuration contract: an empty
// dataset is rejected before any optimization work starts.
func ExampleMLE() {
	m := model.New()
	mu, _ := m.Parameter("mu")
	n, _ := dist.NewNormal(m, mu, model.Const(1))
	_ = m.Observed(n)

	_, err := fit.MLE(m, nil, nil)
	fmt.Println(err)
	// Output:
	// fit: dataset is empty
}

// ExampleNLL evaluates the objective at hand-picked parameter values
// without fitting — the building block of a manual profile scan.
func ExampleNLL() {
	m := model.New()
	lambda, _ := m.Parameter("lambda", model.WithLower(0))
	e, _ := dist.NewExponential(m, lambda)
	_ = m.Observed(e)
	_ = m.Initialize(map[*model.Parameter]float64{lambda: 1})

	nll, _ := fit.NLL(m, []float64{1, 2, 3})
	fmt.Printf("nll = %.1f\n", nll)
	// Output:
	// nll = 6.0
}
