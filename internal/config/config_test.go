package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlavioCFOliveira/backprop/internal/activations"
	"github.com/FlavioCFOliveira/backprop/internal/net"
	"github.com/FlavioCFOliveira/backprop/internal/storage"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
sizes: [2, 4, 1]
learning_rate: 0.15
activation: tanh
training_name: XOR_TRAINING
record_history: true
seed: 7
`)

	run, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 4, 1}, run.Sizes)
	assert.Equal(t, 0.15, run.LearningRate)
	assert.Equal(t, 10000, run.Epochs)
	assert.Equal(t, "tanh", run.Activation)
	assert.Equal(t, 0.001, run.ErrorThreshold)
	assert.Equal(t, "XOR_TRAINING", run.TrainingName)
	assert.Equal(t, storage.DefaultDir, run.StorageDir)
	assert.True(t, run.RecordHistory)
	assert.Equal(t, int64(7), run.Seed)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "sizes: [2, oops"))
	assert.Error(t, err)
}

func TestNetworkConfig(t *testing.T) {
	run := Default()
	run.StorageDir = t.TempDir()
	run.Activation = activations.ReLUName
	run.Seed = 3

	cfg, err := run.NetworkConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, activations.ReLUName, cfg.Activation.Name())
	assert.Equal(t, 0.001, cfg.ErrorThreshold)
	assert.NotNil(t, cfg.Rand)
	require.IsType(t, &storage.FileStore{}, cfg.Store)
	assert.Equal(t, run.StorageDir, cfg.Store.(*storage.FileStore).Root)

	n, err := net.New(cfg)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1}, n.Sizes())
}

func TestNetworkConfigRejectsBadRuns(t *testing.T) {
	run := Default()
	run.Activation = "softplus"
	_, err := run.NetworkConfig(nil)
	assert.Error(t, err)

	run = Default()
	run.Sizes = []int{2}
	_, err = run.NetworkConfig(nil)
	assert.True(t, errors.Is(err, net.ErrInvalidConfig), "got %v", err)
}
