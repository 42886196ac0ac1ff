// Package fit: sentinel error set for configuration faults detected before
// optimization starts. Non-convergence is not an error — it is reported via
// Result.Success=false.

package fit

import "errors"

var (
	// ErrNilModel indicates MLE or NLL received a nil model.
	ErrNilModel = errors.New("fit: model is nil")

	// ErrNoObserved indicates the model has no observed node to fit.
	ErrNoObserved = errors.New("fit: model has no observed node")

	// ErrNoData indicates an empty dataset.
	ErrNoData = errors.New("fit: dataset is empty")

	// ErrNoFreeParams indicates every parameter is fixed.
	ErrNoFreeParams = errors.New("fit: model has no free parameters")

	// ErrBadOption indicates an Options field outside its legal range.
	ErrBadOption = errors.New("fit: invalid option value")
)
