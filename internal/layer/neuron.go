package layer

import (
	"math/rand"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/FlavioCFOliveira/backprop/internal/activations"
)

// ErrInputSize is returned when an input vector does not match a neuron's weight count.
var ErrInputSize = errors.New("input size mismatch")

// Neuron holds one weight per input, a bias and the activation applied to
// the weighted sum. The weight count is fixed at construction.
type Neuron struct {
	ID      string
	Weights []float64
	Bias    float64
	Act     activations.Activation
}

// NewNeuron creates a neuron with weights and bias drawn uniformly from [-0.5, 0.5).
func NewNeuron(id string, inSize int, act activations.Activation, rng *rand.Rand) *Neuron {
	weights := make([]float64, inSize)
	for i := range weights {
		weights[i] = rng.Float64() - 0.5
	}
	return &Neuron{
		ID:      id,
		Weights: weights,
		Bias:    rng.Float64() - 0.5,
		Act:     act,
	}
}

// Activate computes act(bias + sum(inputs[i] * weights[i])).
func (n *Neuron) Activate(inputs []float64) (float64, error) {
	if len(inputs) != len(n.Weights) {
		return 0, errors.Wrapf(ErrInputSize, "neuron %s expects %d inputs, got %d",
			n.ID, len(n.Weights), len(inputs))
	}
	return n.Act.Activate(n.Bias + floats.Dot(inputs, n.Weights)), nil
}

// Derivative evaluates the activation derivative at an output of this neuron.
func (n *Neuron) Derivative(output float64) float64 {
	return n.Act.Derivative(output)
}

// Update adds gradient to the bias and inputs[k]*gradient to every weight.
func (n *Neuron) Update(inputs []float64, gradient float64) {
	n.Bias += gradient
	floats.AddScaled(n.Weights, gradient, inputs)
}
