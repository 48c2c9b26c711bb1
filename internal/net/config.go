package net

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/FlavioCFOliveira/backprop/internal/activations"
	"github.com/FlavioCFOliveira/backprop/internal/storage"
)

// DefaultErrorThreshold is the minimum absolute neuron error that triggers an update.
const DefaultErrorThreshold = 0.01

// Config describes a network to construct.
type Config struct {
	// Sizes lists the neuron count per layer, input layer first. len(Sizes) >= 2.
	Sizes        []int
	LearningRate float64
	Epochs       int

	// Activation defaults to Sigmoid.
	Activation activations.Activation

	// ErrorThreshold defaults to DefaultErrorThreshold when zero.
	// A negative value disables skipping.
	ErrorThreshold float64

	// TrainingName is the persistence key. Defaults to NeuralNetworkTraining_<unix millis>.
	TrainingName string

	// RecordHistory enables the per-sample training history. It grows with
	// epochs x samples x parameters and is meant for small demonstration networks.
	RecordHistory bool

	ShowLogs bool

	// Store defaults to a fresh storage.MemoryStore.
	Store storage.Store

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Rand is the source for initial weights. Defaults to a clock seeded source.
	Rand *rand.Rand

	// Callbacks are notified around training epochs.
	Callbacks []Callback
}

// Validate checks the topology and hyperparameters.
func (c *Config) Validate() error {
	if len(c.Sizes) < 2 {
		return errors.Wrapf(ErrInvalidConfig, "need at least 2 sizes, got %d", len(c.Sizes))
	}
	for i, s := range c.Sizes {
		if s <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "sizes[%d] = %d, must be positive", i, s)
		}
	}
	if !(c.LearningRate > 0) {
		return errors.Wrapf(ErrInvalidConfig, "learning rate %v, must be positive", c.LearningRate)
	}
	if c.Epochs <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "epochs %d, must be positive", c.Epochs)
	}
	switch f := c.Activation.(type) {
	case activations.Func:
		return validateFunc(f)
	case *activations.Func:
		if f == nil {
			return errors.Wrap(ErrInvalidConfig, "nil activation")
		}
		return validateFunc(*f)
	}
	return nil
}

func validateFunc(f activations.Func) error {
	if f.Fn == nil || f.Deriv == nil {
		return errors.Wrapf(ErrInvalidConfig, "activation %q needs both Fn and Deriv", f.Label)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Activation == nil {
		c.Activation = activations.Sigmoid{}
	}
	if c.ErrorThreshold == 0 {
		c.ErrorThreshold = DefaultErrorThreshold
	}
	if c.TrainingName == "" {
		c.TrainingName = DefaultTrainingName()
	}
	if c.Store == nil {
		c.Store = storage.NewMemoryStore()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c.Sizes = append([]int(nil), c.Sizes...)
	return c
}

// DefaultTrainingName returns NeuralNetworkTraining_<unix millis>.
func DefaultTrainingName() string {
	return fmt.Sprintf("NeuralNetworkTraining_%d", time.Now().UnixMilli())
}

// Metadata is the configuration echo persisted with trainings and histories.
type Metadata struct {
	Sizes          []int   `json:"sizes,omitempty"`
	LearningRate   float64 `json:"learningRate,omitempty"`
	Epochs         int     `json:"epochs,omitempty"`
	Activation     string  `json:"activation,omitempty"`
	ErrorThreshold float64 `json:"errorThreshold,omitempty"`
	TrainingName   string  `json:"trainingName,omitempty"`
}

// Sample is one training example.
type Sample struct {
	Inputs  []float64 `json:"inputs"`
	Targets []float64 `json:"targets"`
}
