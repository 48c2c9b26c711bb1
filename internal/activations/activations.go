// Package activations provides the scalar activation functions used by neurons.
//
// Derivatives are expressed in terms of the activation's output, not its input:
// Derivative must only be called with a value previously returned by Activate.
package activations

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Activation is an activation function with derivative.
type Activation interface {
	// Activate computes f(x)
	Activate(x float64) float64

	// Derivative computes f'(x) given y = f(x)
	Derivative(output float64) float64

	// Name is the tag persisted with a trained network.
	Name() string
}

// Registered activation names.
const (
	SigmoidName = "sigmoid"
	ReLUName    = "relu"
	TanhName    = "tanh"
)

// Sigmoid activation function.
type Sigmoid struct{}

// Activate computes 1 / (1 + e^-x)
func (Sigmoid) Activate(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Derivative computes y * (1 - y)
func (Sigmoid) Derivative(output float64) float64 {
	return output * (1 - output)
}

func (Sigmoid) Name() string { return SigmoidName }

// ReLU activation function.
type ReLU struct{}

// Activate computes max(0, x)
func (ReLU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Derivative returns 1 if y > 0, else 0
func (ReLU) Derivative(output float64) float64 {
	if output > 0 {
		return 1
	}
	return 0
}

func (ReLU) Name() string { return ReLUName }

// Tanh activation function.
type Tanh struct{}

// Activate computes tanh(x)
func (Tanh) Activate(x float64) float64 {
	return math.Tanh(x)
}

// Derivative computes 1 - y^2
func (Tanh) Derivative(output float64) float64 {
	return 1 - output*output
}

func (Tanh) Name() string { return TanhName }

// Func wraps a caller supplied function pair.
// Label is what gets persisted; a Func is only restored on load when a network
// constructed with the same Label receives the record.
type Func struct {
	Label string
	Fn    func(x float64) float64
	Deriv func(output float64) float64
}

// Activate calls Fn.
func (f Func) Activate(x float64) float64 {
	return f.Fn(x)
}

// Derivative calls Deriv.
func (f Func) Derivative(output float64) float64 {
	return f.Deriv(output)
}

func (f Func) Name() string { return f.Label }

var registry = map[string]Activation{
	SigmoidName: Sigmoid{},
	ReLUName:    ReLU{},
	TanhName:    Tanh{},
}

// ByName returns the built-in activation registered under name.
func ByName(name string) (Activation, error) {
	act, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("unknown activation %q", name)
	}
	return act, nil
}

// Names lists the built-in activation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
