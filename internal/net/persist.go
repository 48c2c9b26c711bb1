package net

import (
	"github.com/pkg/errors"

	"github.com/FlavioCFOliveira/backprop/internal/activations"
)

// TrainingRecord is the persisted form of a trained network.
type TrainingRecord struct {
	Metadata Metadata      `json:"metadata"`
	Weights  [][][]float64 `json:"weights"`
	Biases   [][]float64   `json:"biases"`
}

func (n *Network) persistedMetadata() Metadata {
	m := n.Metadata()
	m.ErrorThreshold = n.errorThreshold
	m.TrainingName = n.trainingName
	if act := n.Activation(); act != nil {
		m.Activation = act.Name()
	}
	return m
}

// SaveTraining stores the metadata, weights and biases under the training name.
func (n *Network) SaveTraining() error {
	n.meta = n.persistedMetadata()
	rec := TrainingRecord{
		Metadata: n.Metadata(),
		Weights:  n.Weights(),
		Biases:   n.Biases(),
	}
	if err := n.store.Save(n.trainingName, rec); err != nil {
		return errors.WithMessagef(err, "save training %q", n.trainingName)
	}
	n.log("training saved", "key", n.trainingName)
	return nil
}

// LoadTraining restores weights, biases and activation saved under the
// training name. It returns false, leaving the network untouched, when no
// record exists. A record whose shape or activation does not fit the network
// is rejected before anything is modified.
func (n *Network) LoadTraining() (bool, error) {
	var rec TrainingRecord
	found, err := n.store.Load(n.trainingName, &rec)
	if err != nil {
		return false, errors.WithMessagef(err, "load training %q", n.trainingName)
	}
	if !found {
		n.log("training was not loaded", "key", n.trainingName)
		return false, nil
	}

	act, err := n.resolveActivation(rec.Metadata.Activation)
	if err != nil {
		return false, err
	}
	if err := n.SetParams(rec.Weights, rec.Biases); err != nil {
		return false, errors.WithMessagef(err, "load training %q", n.trainingName)
	}
	if act != nil {
		for _, l := range n.layers {
			l.SetActivation(act)
		}
	}
	n.meta = rec.Metadata

	n.log("training loaded", "key", n.trainingName)
	return true, nil
}

// resolveActivation maps a persisted tag to an activation. It returns nil when
// the current activation should be kept.
func (n *Network) resolveActivation(name string) (activations.Activation, error) {
	if name == "" || name == n.Activation().Name() {
		return nil, nil
	}
	act, err := activations.ByName(name)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownActivation, "training %q uses %q", n.trainingName, name)
	}
	return act, nil
}
