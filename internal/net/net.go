// Package net provides the feed-forward network and its online training loop.
//
// A Network is not safe for concurrent use. Callers sharing one across
// goroutines must serialize Train, Predict, SaveTraining and LoadTraining.
package net

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/FlavioCFOliveira/backprop/internal/activations"
	"github.com/FlavioCFOliveira/backprop/internal/layer"
	"github.com/FlavioCFOliveira/backprop/internal/storage"
)

// Network is an ordered sequence of fully connected layers trained one sample at a time.
type Network struct {
	layers       []*layer.Layer
	sizes        []int
	learningRate float64
	epochs       int

	errorThreshold float64
	trainingName   string
	showLogs       bool
	recordHistory  bool

	meta      Metadata
	history   *History
	store     storage.Store
	logger    *slog.Logger
	callbacks []Callback
}

// New creates a network from cfg. Layer i (1-based) is named "Layer[i]".
func New(cfg Config) (*Network, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	layers := make([]*layer.Layer, 0, len(cfg.Sizes)-1)
	for i := 1; i < len(cfg.Sizes); i++ {
		layers = append(layers, layer.New(
			fmt.Sprintf("Layer[%d]", i),
			cfg.Sizes[i-1],
			cfg.Sizes[i],
			cfg.Activation,
			cfg.Rand,
		))
	}

	n := &Network{
		layers:         layers,
		sizes:          cfg.Sizes,
		learningRate:   cfg.LearningRate,
		epochs:         cfg.Epochs,
		errorThreshold: cfg.ErrorThreshold,
		trainingName:   cfg.TrainingName,
		showLogs:       cfg.ShowLogs,
		recordHistory:  cfg.RecordHistory,
		store:          cfg.Store,
		logger:         cfg.Logger,
		callbacks:      cfg.Callbacks,
		meta: Metadata{
			Sizes:        append([]int(nil), cfg.Sizes...),
			LearningRate: cfg.LearningRate,
			Epochs:       cfg.Epochs,
			Activation:   cfg.Activation.Name(),

			ErrorThreshold: cfg.ErrorThreshold,
			TrainingName:   cfg.TrainingName,
		},
	}
	n.history = &History{MetaData: n.meta}
	return n, nil
}

// NewWithSizes creates a sigmoid network with default settings.
func NewWithSizes(sizes []int, learningRate float64, epochs int) (*Network, error) {
	return New(Config{Sizes: sizes, LearningRate: learningRate, Epochs: epochs})
}

// Forward returns the activation trace [inputs, layer1 output, ..., final output].
func (n *Network) Forward(inputs []float64) ([][]float64, error) {
	if want := n.sizes[0]; len(inputs) != want {
		return nil, shapeErr("network expects %d inputs, got %d", want, len(inputs))
	}
	outputs := make([][]float64, 0, len(n.layers)+1)
	outputs = append(outputs, append([]float64(nil), inputs...))
	for _, l := range n.layers {
		out, err := l.Forward(outputs[len(outputs)-1])
		if err != nil {
			return nil, wrapShape(err)
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

// Predict returns the final layer output for inputs.
func (n *Network) Predict(inputs []float64) ([]float64, error) {
	outputs, err := n.Forward(inputs)
	if err != nil {
		return nil, err
	}
	return outputs[len(outputs)-1], nil
}

// CalculateErrors propagates outputErrors back through the transposed weight
// matrices and returns one error vector per layer, first layer first.
// Hidden errors are plain fan-out sums; the activation derivative is applied
// later, when the layer's weights are adjusted.
func (n *Network) CalculateErrors(outputErrors []float64) ([][]float64, error) {
	last := len(n.layers) - 1
	if want := n.layers[last].OutSize(); len(outputErrors) != want {
		return nil, shapeErr("output layer has %d neurons, got %d errors", want, len(outputErrors))
	}

	errs := make([][]float64, len(n.layers))
	errs[last] = append([]float64(nil), outputErrors...)
	for i := last - 1; i >= 0; i-- {
		next := n.layers[i+1]
		hidden := make([]float64, n.layers[i].OutSize())
		for j := range hidden {
			sum := 0.0
			for k, nk := range next.Neurons {
				sum += errs[i+1][k] * nk.Weights[j]
			}
			hidden[j] = sum
		}
		errs[i] = hidden
	}
	return errs, nil
}

// adjustWeights updates every neuron of l whose |error| exceeds the threshold
// and returns the applied gradient per neuron (0 where skipped) and the skip count.
func (n *Network) adjustWeights(l *layer.Layer, inputs, outputs, errs []float64) ([]float64, int) {
	gradients := make([]float64, len(l.Neurons))
	skipped := 0
	for j, neuron := range l.Neurons {
		if abs := math.Abs(errs[j]); abs <= n.errorThreshold {
			skipped++
			n.log("neuron below error threshold, no weight or bias adjustment",
				"neuron", neuron.ID, "error", abs, "threshold", n.errorThreshold)
			continue
		}
		gradient := errs[j] * neuron.Derivative(outputs[j]) * n.learningRate
		neuron.Update(inputs, gradient)
		gradients[j] = gradient
	}
	return gradients, skipped
}

// Layers returns the network's layers.
func (n *Network) Layers() []*layer.Layer {
	return n.layers
}

// Sizes returns a copy of the layer sizes, input layer first.
func (n *Network) Sizes() []int {
	return append([]int(nil), n.sizes...)
}

// LearningRate returns the learning rate.
func (n *Network) LearningRate() float64 {
	return n.learningRate
}

// Epochs returns the number of epochs run by Train.
func (n *Network) Epochs() int {
	return n.epochs
}

// Activation returns the activation of the first layer.
func (n *Network) Activation() activations.Activation {
	return n.layers[0].Activation()
}

// TrainingName returns the persistence key.
func (n *Network) TrainingName() string {
	return n.trainingName
}

// SetTrainingName sets the persistence key.
func (n *Network) SetTrainingName(name string) {
	n.trainingName = name
}

// ErrorThreshold returns the per-neuron update threshold.
func (n *Network) ErrorThreshold() float64 {
	return n.errorThreshold
}

// SetErrorThreshold sets the per-neuron update threshold.
func (n *Network) SetErrorThreshold(v float64) {
	n.errorThreshold = v
}

// ShowLogs reports whether the network logs its events.
func (n *Network) ShowLogs() bool {
	return n.showLogs
}

// SetShowLogs toggles event logging.
func (n *Network) SetShowLogs(v bool) {
	n.showLogs = v
}

// SetRecordHistory toggles the training history recorder.
func (n *Network) SetRecordHistory(v bool) {
	n.recordHistory = v
}

// Metadata returns the configuration echo, including the last loaded or saved values.
func (n *Network) Metadata() Metadata {
	m := n.meta
	m.Sizes = append([]int(nil), m.Sizes...)
	return m
}

// Weights returns a copy of all weights, [layer][neuron][input].
func (n *Network) Weights() [][][]float64 {
	w := make([][][]float64, len(n.layers))
	for i, l := range n.layers {
		w[i] = l.Weights()
	}
	return w
}

// Biases returns a copy of all biases, [layer][neuron].
func (n *Network) Biases() [][]float64 {
	b := make([][]float64, len(n.layers))
	for i, l := range n.layers {
		b[i] = l.Biases()
	}
	return b
}

// SetParams overwrites every weight and bias. Shapes are checked for every
// layer before anything is written.
func (n *Network) SetParams(weights [][][]float64, biases [][]float64) error {
	if len(weights) != len(n.layers) || len(biases) != len(n.layers) {
		return shapeErr("network has %d layers, got %d weight and %d bias layers",
			len(n.layers), len(weights), len(biases))
	}
	for i, l := range n.layers {
		if len(weights[i]) != l.OutSize() || len(biases[i]) != l.OutSize() {
			return shapeErr("%s has %d neurons, got %d weight rows and %d biases",
				l.ID, l.OutSize(), len(weights[i]), len(biases[i]))
		}
		for j, row := range weights[i] {
			if len(row) != l.InSize() {
				return shapeErr("%s neuron %d has %d weights, got %d", l.ID, j, l.InSize(), len(row))
			}
		}
	}
	for i, l := range n.layers {
		if err := l.SetParams(weights[i], biases[i]); err != nil {
			return wrapShape(err)
		}
	}
	return nil
}

func (n *Network) log(msg string, args ...any) {
	if n.showLogs {
		n.logger.Info(msg, args...)
	}
}
