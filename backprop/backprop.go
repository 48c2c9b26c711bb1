// Package backprop is a small fully connected feed-forward network trained by
// per-sample backpropagation.
//
//	n, err := backprop.New(backprop.Config{Sizes: []int{2, 3, 1}, LearningRate: 0.1, Epochs: 10000})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n.SetTrainingName("AND_TRAINING")
//	if err := n.Train(backprop.AND()); err != nil {
//	    log.Fatal(err)
//	}
//	out, _ := n.Predict([]float64{1, 1})
package backprop

import (
	"github.com/FlavioCFOliveira/backprop/internal/activations"
	"github.com/FlavioCFOliveira/backprop/internal/datasets"
	"github.com/FlavioCFOliveira/backprop/internal/net"
	"github.com/FlavioCFOliveira/backprop/internal/storage"
)

// Re-export common types and functions for easier access
type (
	Network        = net.Network
	Config         = net.Config
	Sample         = net.Sample
	Metadata       = net.Metadata
	History        = net.History
	TrainingRecord = net.TrainingRecord
	Callback       = net.Callback
	EpochStats     = net.EpochStats
	Activation     = activations.Activation
	ActivationFunc = activations.Func
	Store          = storage.Store
)

// Error kinds
var (
	ErrShapeMismatch     = net.ErrShapeMismatch
	ErrInvalidConfig     = net.ErrInvalidConfig
	ErrUnknownActivation = net.ErrUnknownActivation
	ErrStorage           = storage.ErrStorage
)

// Activations
var (
	Sigmoid = activations.Sigmoid{}
	ReLU    = activations.ReLU{}
	Tanh    = activations.Tanh{}
)

// New creates a network from cfg.
func New(cfg Config) (*Network, error) {
	return net.New(cfg)
}

// NewWithSizes creates a sigmoid network with default settings.
func NewWithSizes(sizes []int, learningRate float64, epochs int) (*Network, error) {
	return net.NewWithSizes(sizes, learningRate, epochs)
}

// Stores
func FileStore(dir string) *storage.FileStore {
	return storage.NewFileStore(dir)
}

func MemoryStore() *storage.MemoryStore {
	return storage.NewMemoryStore()
}

// Truth tables
func AND() []Sample  { return datasets.AND() }
func OR() []Sample   { return datasets.OR() }
func XOR() []Sample  { return datasets.XOR() }
func NAND() []Sample { return datasets.NAND() }
func NOR() []Sample  { return datasets.NOR() }
func XNOR() []Sample { return datasets.XNOR() }
func NOT() []Sample  { return datasets.NOT() }
