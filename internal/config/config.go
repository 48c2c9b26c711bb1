// Package config loads run configuration files for the command-line tools.
package config

import (
	"log/slog"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/FlavioCFOliveira/backprop/internal/activations"
	"github.com/FlavioCFOliveira/backprop/internal/net"
	"github.com/FlavioCFOliveira/backprop/internal/storage"
)

// Run is the YAML run file.
//
//	sizes: [2, 3, 1]
//	learning_rate: 0.1
//	epochs: 10000
//	activation: sigmoid
//	error_threshold: 0.001
//	storage_dir: ./training
type Run struct {
	Sizes          []int   `yaml:"sizes"`
	LearningRate   float64 `yaml:"learning_rate"`
	Epochs         int     `yaml:"epochs"`
	Activation     string  `yaml:"activation"`
	ErrorThreshold float64 `yaml:"error_threshold"`
	TrainingName   string  `yaml:"training_name"`
	StorageDir     string  `yaml:"storage_dir"`
	RecordHistory  bool    `yaml:"record_history"`
	ShowLogs       bool    `yaml:"show_logs"`
	Seed           int64   `yaml:"seed"`
}

// Default returns the logic-gate run settings.
func Default() Run {
	return Run{
		Sizes:          []int{2, 3, 1},
		LearningRate:   0.1,
		Epochs:         10000,
		Activation:     activations.SigmoidName,
		ErrorThreshold: 0.001,
		StorageDir:     storage.DefaultDir,
	}
}

// Load reads a YAML run file. Keys missing from the file keep their Default values.
func Load(path string) (Run, error) {
	run := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return run, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &run); err != nil {
		return run, errors.Wrapf(err, "parse config %s", path)
	}
	return run, nil
}

// NetworkConfig converts the run settings into a net.Config backed by a FileStore
// under StorageDir.
func (r Run) NetworkConfig(logger *slog.Logger) (net.Config, error) {
	act, err := activations.ByName(r.Activation)
	if err != nil {
		return net.Config{}, err
	}

	store := storage.NewFileStore(r.StorageDir)
	if logger != nil {
		store.Logger = logger
	}

	cfg := net.Config{
		Sizes:          append([]int(nil), r.Sizes...),
		LearningRate:   r.LearningRate,
		Epochs:         r.Epochs,
		Activation:     act,
		ErrorThreshold: r.ErrorThreshold,
		TrainingName:   r.TrainingName,
		RecordHistory:  r.RecordHistory,
		ShowLogs:       r.ShowLogs,
		Store:          store,
		Logger:         logger,
	}
	if r.Seed != 0 {
		cfg.Rand = rand.New(rand.NewSource(r.Seed))
	}
	if err := cfg.Validate(); err != nil {
		return net.Config{}, err
	}
	return cfg, nil
}
