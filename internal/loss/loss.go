// Package loss provides the error measures reported while training and evaluating.
//
// Training itself uses the signed residual target - output; these functions
// only summarize how far a network is from its targets.
package loss

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Loss measures the distance between predicted and true values.
type Loss interface {
	// Forward computes the loss between predicted and true values.
	Forward(yPred, yTrue []float64) float64

	// Name identifies the loss in reports.
	Name() string
}

// MSE (Mean Squared Error) loss.
type MSE struct{}

// Forward computes mean squared error: (1/n) * sum((y_pred - y_true)^2)
func (m MSE) Forward(yPred, yTrue []float64) float64 {
	if len(yPred) != len(yTrue) {
		panic("MSE: prediction and target must have same length")
	}
	if len(yPred) == 0 {
		return 0
	}
	d := floats.Distance(yPred, yTrue, 2)
	return d * d / float64(len(yPred))
}

func (m MSE) Name() string { return "mse" }

// L1Loss (Mean Absolute Error) loss.
type L1Loss struct{}

// Forward computes mean absolute error: (1/n) * sum(|y_pred - y_true|)
func (l L1Loss) Forward(yPred, yTrue []float64) float64 {
	if len(yPred) != len(yTrue) {
		panic("L1Loss: prediction and target must have same length")
	}
	if len(yPred) == 0 {
		return 0
	}
	return floats.Distance(yPred, yTrue, 1) / float64(len(yPred))
}

func (l L1Loss) Name() string { return "mae" }

// MaxError is the largest absolute difference: max(|y_pred - y_true|)
type MaxError struct{}

// Forward computes max(|y_pred - y_true|).
func (m MaxError) Forward(yPred, yTrue []float64) float64 {
	if len(yPred) != len(yTrue) {
		panic("MaxError: prediction and target must have same length")
	}
	if len(yPred) == 0 {
		return 0
	}
	return floats.Distance(yPred, yTrue, math.Inf(1))
}

func (m MaxError) Name() string { return "max" }
