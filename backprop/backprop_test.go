package backprop

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacadeTrainSaveLoad(t *testing.T) {
	store := FileStore(t.TempDir())
	cfg := Config{
		Sizes:        []int{1, 2, 1},
		LearningRate: 0.5,
		Epochs:       2000,
		Activation:   Sigmoid,
		Store:        store,
		TrainingName: "NOT_TRAINING",
		Rand:         rand.New(rand.NewSource(1)),
	}
	n, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, n.Train(NOT()))
	require.NoError(t, n.SaveTraining())

	on, err := n.Predict([]float64{0})
	require.NoError(t, err)
	off, err := n.Predict([]float64{1})
	require.NoError(t, err)
	assert.Greater(t, on[0], off[0])

	cfg.Rand = rand.New(rand.NewSource(2))
	loaded, err := New(cfg)
	require.NoError(t, err)
	ok, err := loaded.LoadTraining()
	require.NoError(t, err)
	require.True(t, ok)

	got, err := loaded.Predict([]float64{0})
	require.NoError(t, err)
	assert.Equal(t, on, got)
}

func TestFacadeTables(t *testing.T) {
	assert.Len(t, AND(), 4)
	assert.Len(t, OR(), 4)
	assert.Len(t, XOR(), 4)
	assert.Len(t, NAND(), 4)
	assert.Len(t, NOR(), 4)
	assert.Len(t, XNOR(), 4)
	assert.Len(t, NOT(), 2)
}

func TestFacadeErrors(t *testing.T) {
	_, err := NewWithSizes([]int{2}, 0.1, 1)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	n, err := NewWithSizes([]int{2, 1}, 0.1, 1)
	require.NoError(t, err)
	_, err = n.Predict([]float64{1})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.NotNil(t, MemoryStore())
}
