package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlavioCFOliveira/backprop/internal/net"
	"github.com/FlavioCFOliveira/backprop/internal/storage"
)

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sizes: [2, 3, 1]\nepochs: 200\nlearning_rate: 0.5\nseed: 1\n"), 0o644))
	return path
}

func TestTrainThenPredict(t *testing.T) {
	dir := t.TempDir()
	opts := options{
		configPath: writeConfig(t, dir),
		names:      "AND,not",
		dir:        filepath.Join(dir, "training"),
		history:    true,
		logCSV:     filepath.Join(dir, "epochs.csv"),
	}

	require.NoError(t, run("train", opts))

	store := storage.NewFileStore(opts.dir)
	for _, key := range []string{"AND_TRAINING", "NOT_TRAINING", "AND_TRAINING_history"} {
		_, err := os.Stat(filepath.Join(opts.dir, key+".json"))
		assert.NoError(t, err, key)
	}
	var rec net.TrainingRecord
	found, err := store.Load("NOT_TRAINING", &rec)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []int{1, 3, 1}, rec.Metadata.Sizes)

	_, err = os.Stat(opts.logCSV)
	assert.NoError(t, err)

	opts.history = false
	require.NoError(t, run("predict", opts))

	opts.names = "AND"
	opts.input = "1,1"
	require.NoError(t, run("predict", opts))
}

func TestPredictWithoutTraining(t *testing.T) {
	dir := t.TempDir()
	err := run("predict", options{configPath: writeConfig(t, dir), names: "XOR", dir: dir})
	assert.Error(t, err)
}

func TestEval(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run("eval", options{configPath: writeConfig(t, dir), names: "OR", dir: dir}))
}

func TestUnknownCommandAndDataset(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, run("serve", options{names: "AND", dir: dir}))
	assert.Error(t, run("train", options{names: "IMPLIES", dir: dir}))
}

func TestCSVJob(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "gate.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("0,0,0,1\n0,1,1,0\n1,0,1,0\n1,1,0,1\n"), 0o644))

	jobs, err := loadJobs(options{csvPath: csvPath, csvTargets: 2})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "gate", jobs[0].name)
	assert.Len(t, jobs[0].samples[0].Targets, 2)

	require.NoError(t, run("train", options{configPath: writeConfig(t, dir), csvPath: csvPath, csvTargets: 2, dir: dir}))
	_, err = os.Stat(filepath.Join(dir, "GATE_TRAINING.json"))
	assert.NoError(t, err)
}

func TestParseInput(t *testing.T) {
	x, err := parseInput("1, 0.5,-2")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0.5, -2}, x)

	_, err = parseInput("1,a")
	assert.Error(t, err)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, []float64{0.98, 0.01, 1}, round2([]float64{0.9837, 0.0149, 0.999}))
}
