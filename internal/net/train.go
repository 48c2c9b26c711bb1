package net

import (
	"math"
	"time"
)

// EpochStats summarizes one epoch of training.
type EpochStats struct {
	// MeanAbsError is the mean |target - output| over all samples and outputs,
	// measured before each sample's update.
	MeanAbsError float64
	// Skipped counts neuron updates skipped by the error threshold.
	Skipped int
	// Updated counts neuron updates applied.
	Updated int
}

// Train runs Epochs passes over samples in order, updating weights after every
// sample. Training continues from the current weights. When history recording
// is enabled every sample is recorded and the history is saved afterwards.
// All samples are shape-checked before any weight changes.
func (n *Network) Train(samples []Sample) error {
	outSize := n.sizes[len(n.sizes)-1]
	for i, s := range samples {
		if len(s.Inputs) != n.sizes[0] {
			return shapeErr("sample %d has %d inputs, network expects %d", i, len(s.Inputs), n.sizes[0])
		}
		if len(s.Targets) != outSize {
			return shapeErr("sample %d has %d targets, network expects %d", i, len(s.Targets), outSize)
		}
	}

	start := time.Now()
	for _, cb := range n.callbacks {
		cb.OnTrainBegin(n)
	}

	for epoch := 0; epoch < n.epochs; epoch++ {
		for _, cb := range n.callbacks {
			cb.OnEpochBegin(epoch, n)
		}

		var stats EpochStats
		var records []Record
		if n.recordHistory {
			records = make([]Record, 0, len(samples))
		}
		for _, s := range samples {
			rec, err := n.step(s, &stats)
			if err != nil {
				return err
			}
			if n.recordHistory {
				records = append(records, rec)
			}
		}
		if len(samples) > 0 {
			stats.MeanAbsError /= float64(len(samples) * outSize)
		}
		if n.recordHistory {
			n.history.Epochs = append(n.history.Epochs, records)
		}

		for _, cb := range n.callbacks {
			cb.OnEpochEnd(epoch, stats, n)
		}
	}

	for _, cb := range n.callbacks {
		cb.OnTrainEnd(n)
	}
	n.log("training completed", "epochs", n.epochs, "samples", len(samples),
		"seconds", time.Since(start).Seconds())

	if n.recordHistory {
		return n.SaveHistory()
	}
	return nil
}

// step runs one forward, error and update cycle. Errors for all layers are
// computed from the pre-update weights, then layers are updated last to first.
func (n *Network) step(s Sample, stats *EpochStats) (Record, error) {
	outputs, err := n.Forward(s.Inputs)
	if err != nil {
		return Record{}, err
	}
	final := outputs[len(outputs)-1]

	outputErrors := make([]float64, len(s.Targets))
	for i, t := range s.Targets {
		outputErrors[i] = t - final[i]
		stats.MeanAbsError += math.Abs(outputErrors[i])
	}

	errs, err := n.CalculateErrors(outputErrors)
	if err != nil {
		return Record{}, err
	}

	gradients := make([][]float64, len(n.layers))
	for i := len(n.layers) - 1; i >= 0; i-- {
		g, skipped := n.adjustWeights(n.layers[i], outputs[i], outputs[i+1], errs[i])
		gradients[i] = g
		stats.Skipped += skipped
		stats.Updated += len(g) - skipped
	}

	if !n.recordHistory {
		return Record{}, nil
	}
	return Record{
		Input: append([]float64(nil), s.Inputs...),
		Data: RecordData{
			Targets:   append([]float64(nil), s.Targets...),
			Outputs:   final,
			Errors:    errs,
			Weights:   n.Weights(),
			Biases:    n.Biases(),
			Gradients: gradients,
		},
	}, nil
}
