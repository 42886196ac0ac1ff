// Package dist: sentinel error set. Constructors return these sentinels
// (sometimes wrapped with call-site context); tests match via errors.Is.

package dist

import "errors"

var (
	// ErrNilModel indicates a constructor received a nil *model.Model.
	ErrNilModel = errors.New("dist: model is nil")

	// ErrNilOperand indicates a nil Scalar operand (mu, sigma, lambda, weight).
	ErrNilOperand = errors.New("dist: nil scalar operand")

	// ErrNilComponent indicates a nil component node passed to NewMix2.
	ErrNilComponent = errors.New("dist: nil mixture component")

	// ErrInvalidTruncation indicates a truncation window that is not a
	// finite interval with lower < upper.
	ErrInvalidTruncation = errors.New("dist: invalid truncation bounds")

	// ErrTruncationMismatch indicates a Mix2 truncation window that does not
	// match the support of each component, which would make the mixture
	// density ill-defined.
	ErrTruncationMismatch = errors.New("dist: mixture truncation disagrees with component supports")
)
