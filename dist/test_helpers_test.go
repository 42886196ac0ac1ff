package dist_test

import (
	"math"

	"github.com/katalvlaran/probfit/model"
)

// pdfAt evaluates a node's density at x (exp of the log-density).
func pdfAt(n model.Node, x float64) float64 {
	return math.Exp(n.LogProb(x))
}

// simpson numerically integrates f over [a, b] with n subintervals
// (n is rounded up to the next even number). Accurate to O(h^4), which is
// far below the 1e-6 tolerance the normalization tests use.
func simpson(f func(float64) float64, a, b float64, n int) float64 {
	if n%2 == 1 {
		n++
	}
	h := (b - a) / float64(n)
	total := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			total += 4 * f(x)
		} else {
			total += 2 * f(x)
		}
	}

	return total * h / 3
}
