// Package layer provides the neurons and fully connected layers of a network.
package layer

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/FlavioCFOliveira/backprop/internal/activations"
)

// Layer is an ordered group of neurons sharing input size and activation.
type Layer struct {
	ID      string
	Neurons []*Neuron
	inSize  int
}

// New creates a layer of out neurons, each taking in inputs.
// Neuron identifiers are derived from the layer identifier: "<id>,Neuron[<i>]".
func New(id string, in, out int, act activations.Activation, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, out)
	for i := range neurons {
		neurons[i] = NewNeuron(fmt.Sprintf("%s,Neuron[%d]", id, i), in, act, rng)
	}
	return &Layer{
		ID:      id,
		Neurons: neurons,
		inSize:  in,
	}
}

// Forward returns one output per neuron, in neuron order.
func (l *Layer) Forward(x []float64) ([]float64, error) {
	if len(x) != l.inSize {
		return nil, errors.Wrapf(ErrInputSize, "layer %s expects %d inputs, got %d",
			l.ID, l.inSize, len(x))
	}
	out := make([]float64, len(l.Neurons))
	for i, n := range l.Neurons {
		v, err := n.Activate(x)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// InSize returns the input size of the layer.
func (l *Layer) InSize() int {
	return l.inSize
}

// OutSize returns the number of neurons.
func (l *Layer) OutSize() int {
	return len(l.Neurons)
}

// Activation returns the activation shared by the layer's neurons.
func (l *Layer) Activation() activations.Activation {
	if len(l.Neurons) == 0 {
		return nil
	}
	return l.Neurons[0].Act
}

// SetActivation replaces the activation of every neuron.
func (l *Layer) SetActivation(act activations.Activation) {
	for _, n := range l.Neurons {
		n.Act = act
	}
}

// Weights returns a copy of the weight matrix, [neuron][input].
func (l *Layer) Weights() [][]float64 {
	w := make([][]float64, len(l.Neurons))
	for i, n := range l.Neurons {
		w[i] = append([]float64(nil), n.Weights...)
	}
	return w
}

// Biases returns a copy of the bias vector.
func (l *Layer) Biases() []float64 {
	b := make([]float64, len(l.Neurons))
	for i, n := range l.Neurons {
		b[i] = n.Bias
	}
	return b
}

// SetParams copies weights and biases into the layer in place.
// The shapes must match exactly; on mismatch nothing is modified.
func (l *Layer) SetParams(weights [][]float64, biases []float64) error {
	if len(weights) != len(l.Neurons) || len(biases) != len(l.Neurons) {
		return errors.Wrapf(ErrInputSize, "layer %s has %d neurons, got %d weight rows and %d biases",
			l.ID, len(l.Neurons), len(weights), len(biases))
	}
	for i, row := range weights {
		if len(row) != l.inSize {
			return errors.Wrapf(ErrInputSize, "layer %s neuron %d expects %d weights, got %d",
				l.ID, i, l.inSize, len(row))
		}
	}
	for i, n := range l.Neurons {
		copy(n.Weights, weights[i])
		n.Bias = biases[i]
	}
	return nil
}
