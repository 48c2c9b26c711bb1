// Package layer provides unit tests for neurons and layers.
package layer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlavioCFOliveira/backprop/internal/activations"
)

func TestNewNeuronInitRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		n := NewNeuron("n", 5, activations.Sigmoid{}, rng)
		require.Len(t, n.Weights, 5)
		for _, w := range n.Weights {
			assert.GreaterOrEqual(t, w, -0.5)
			assert.Less(t, w, 0.5)
		}
		assert.GreaterOrEqual(t, n.Bias, -0.5)
		assert.Less(t, n.Bias, 0.5)
	}
}

// TestNeuronActivate tests bias + weighted sum through the activation.
func TestNeuronActivate(t *testing.T) {
	n := &Neuron{
		ID:      "n",
		Weights: []float64{0.5, -1, 2},
		Bias:    0.25,
		Act:     activations.ReLU{},
	}

	out, err := n.Activate([]float64{1, 2, 3})
	require.NoError(t, err)
	// 0.25 + 0.5 - 2 + 6
	assert.InDelta(t, 4.75, out, 1e-12)

	out, err = n.Activate([]float64{0, 10, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, out)
}

func TestNeuronActivateSizeMismatch(t *testing.T) {
	n := NewNeuron("n", 2, activations.Sigmoid{}, rand.New(rand.NewSource(1)))

	_, err := n.Activate([]float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInputSize)
}

func TestNeuronUpdate(t *testing.T) {
	n := &Neuron{Weights: []float64{1, 2}, Bias: 0, Act: activations.Sigmoid{}}

	n.Update([]float64{0.5, -1}, 0.1)

	assert.InDelta(t, 0.1, n.Bias, 1e-15)
	assert.InDelta(t, 1.05, n.Weights[0], 1e-15)
	assert.InDelta(t, 1.9, n.Weights[1], 1e-15)
}

// TestLayerForward tests output size and neuron order.
func TestLayerForward(t *testing.T) {
	l := New("Layer[1]", 2, 3, activations.Tanh{}, rand.New(rand.NewSource(7)))
	require.NoError(t, l.SetParams(
		[][]float64{{1, 0}, {0, 1}, {1, 1}},
		[]float64{0, 0, 0},
	))

	out, err := l.Forward([]float64{0.5, -0.25})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.InDelta(t, activations.Tanh{}.Activate(0.5), out[0], 1e-15)
	assert.InDelta(t, activations.Tanh{}.Activate(-0.25), out[1], 1e-15)
	assert.InDelta(t, activations.Tanh{}.Activate(0.25), out[2], 1e-15)

	assert.Equal(t, 2, l.InSize())
	assert.Equal(t, 3, l.OutSize())
	assert.Equal(t, "Layer[1],Neuron[2]", l.Neurons[2].ID)
}

func TestLayerForwardSizeMismatch(t *testing.T) {
	l := New("L", 3, 2, activations.Sigmoid{}, rand.New(rand.NewSource(1)))

	_, err := l.Forward([]float64{1})
	assert.ErrorIs(t, err, ErrInputSize)
}

func TestLayerSetParamsMismatchLeavesLayerUntouched(t *testing.T) {
	l := New("L", 2, 2, activations.Sigmoid{}, rand.New(rand.NewSource(3)))
	before := l.Weights()
	beforeB := l.Biases()

	err := l.SetParams([][]float64{{1, 2}, {3}}, []float64{0, 0})
	assert.ErrorIs(t, err, ErrInputSize)

	err = l.SetParams([][]float64{{1, 2}}, []float64{0})
	assert.ErrorIs(t, err, ErrInputSize)

	assert.Equal(t, before, l.Weights())
	assert.Equal(t, beforeB, l.Biases())
}

func TestLayerCopiesAreIndependent(t *testing.T) {
	l := New("L", 2, 1, activations.Sigmoid{}, rand.New(rand.NewSource(3)))

	w := l.Weights()
	w[0][0] = 42
	assert.NotEqual(t, 42.0, l.Neurons[0].Weights[0])
}

func TestLayerSetActivation(t *testing.T) {
	l := New("L", 2, 2, activations.Sigmoid{}, rand.New(rand.NewSource(3)))
	l.SetActivation(activations.ReLU{})

	assert.Equal(t, activations.ReLUName, l.Activation().Name())
	for _, n := range l.Neurons {
		assert.Equal(t, activations.ReLUName, n.Act.Name())
	}
}
