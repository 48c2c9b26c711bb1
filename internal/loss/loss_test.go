// Package loss provides unit tests for loss functions.
package loss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMSE(t *testing.T) {
	tests := []struct {
		yPred, yTrue []float64
		expected     float64
	}{
		{[]float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{[]float64{0, 0}, []float64{1, 1}, 1},
		{[]float64{0.5}, []float64{1}, 0.25},
		{nil, nil, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, MSE{}.Forward(tt.yPred, tt.yTrue), 1e-12, "MSE(%v, %v)", tt.yPred, tt.yTrue)
	}
}

func TestL1Loss(t *testing.T) {
	tests := []struct {
		yPred, yTrue []float64
		expected     float64
	}{
		{[]float64{1, 2}, []float64{1, 2}, 0},
		{[]float64{0, 1}, []float64{1, 0}, 1},
		{[]float64{0.25, 0.75}, []float64{0, 1}, 0.25},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, L1Loss{}.Forward(tt.yPred, tt.yTrue), 1e-12)
	}
}

func TestMaxError(t *testing.T) {
	assert.Equal(t, 0.75, MaxError{}.Forward([]float64{0.25, 0.1}, []float64{1, 0}))
	assert.Equal(t, 0.0, MaxError{}.Forward(nil, nil))
}

func TestLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { MSE{}.Forward([]float64{1}, []float64{1, 2}) })
	assert.Panics(t, func() { L1Loss{}.Forward([]float64{1}, nil) })
	assert.Panics(t, func() { MaxError{}.Forward(nil, []float64{1}) })
}

func TestNames(t *testing.T) {
	assert.Equal(t, "mse", MSE{}.Name())
	assert.Equal(t, "mae", L1Loss{}.Name())
	assert.Equal(t, "max", MaxError{}.Name())
}
