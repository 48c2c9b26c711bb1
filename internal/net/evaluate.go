package net

import (
	"gonum.org/v1/gonum/floats"

	"github.com/FlavioCFOliveira/backprop/internal/loss"
)

// Prediction pairs a sample with the network output for it.
type Prediction struct {
	Inputs  []float64
	Targets []float64
	Outputs []float64
}

// AbsError returns sum |target - output| over the outputs.
func (p Prediction) AbsError() float64 {
	if len(p.Targets) != len(p.Outputs) {
		return 0
	}
	return floats.Distance(p.Targets, p.Outputs, 1)
}

// Report predicts every sample.
func (n *Network) Report(samples []Sample) ([]Prediction, error) {
	preds := make([]Prediction, 0, len(samples))
	for _, s := range samples {
		out, err := n.Predict(s.Inputs)
		if err != nil {
			return nil, err
		}
		preds = append(preds, Prediction{Inputs: s.Inputs, Targets: s.Targets, Outputs: out})
	}
	return preds, nil
}

// Evaluate applies l to every sample and returns the per-sample values.
func (n *Network) Evaluate(samples []Sample, l loss.Loss) ([]float64, error) {
	preds, err := n.Report(samples)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(preds))
	for i, p := range preds {
		if len(p.Targets) != len(p.Outputs) {
			return nil, shapeErr("sample %d has %d targets, network expects %d", i, len(p.Targets), len(p.Outputs))
		}
		values[i] = l.Forward(p.Outputs, p.Targets)
	}
	return values, nil
}

// MeanAbsError returns the mean |target - output| over all samples and outputs.
func (n *Network) MeanAbsError(samples []Sample) (float64, error) {
	return n.mean(samples, loss.L1Loss{})
}

// MeanSquaredError returns the mean (target - output)^2 over all samples and outputs.
func (n *Network) MeanSquaredError(samples []Sample) (float64, error) {
	return n.mean(samples, loss.MSE{})
}

// MaxAbsError returns the largest |target - output| over all samples and outputs.
func (n *Network) MaxAbsError(samples []Sample) (float64, error) {
	values, err := n.Evaluate(samples, loss.MaxError{})
	if err != nil || len(values) == 0 {
		return 0, err
	}
	return floats.Max(values), nil
}

func (n *Network) mean(samples []Sample, l loss.Loss) (float64, error) {
	values, err := n.Evaluate(samples, l)
	if err != nil || len(values) == 0 {
		return 0, err
	}
	return floats.Sum(values) / float64(len(values)), nil
}
