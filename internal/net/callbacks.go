package net

import "log/slog"

// Callback defines the interface for training callbacks.
type Callback interface {
	OnTrainBegin(n *Network)
	OnTrainEnd(n *Network)
	OnEpochBegin(epoch int, n *Network)
	OnEpochEnd(epoch int, stats EpochStats, n *Network)
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (c BaseCallback) OnTrainBegin(n *Network)                            {}
func (c BaseCallback) OnTrainEnd(n *Network)                              {}
func (c BaseCallback) OnEpochBegin(epoch int, n *Network)                 {}
func (c BaseCallback) OnEpochEnd(epoch int, stats EpochStats, n *Network) {}

// Logger logs training progress every Interval epochs.
type Logger struct {
	BaseCallback
	Interval int
	Log      *slog.Logger
}

func (c Logger) OnEpochEnd(epoch int, stats EpochStats, n *Network) {
	if c.Interval <= 0 || epoch%c.Interval != 0 {
		return
	}
	log := c.Log
	if log == nil {
		log = n.logger
	}
	log.Info("epoch finished",
		"training", n.trainingName,
		"epoch", epoch,
		"mean_abs_error", stats.MeanAbsError,
		"updated", stats.Updated,
		"skipped", stats.Skipped)
}

// StatsRecorder keeps the stats of every epoch in memory.
type StatsRecorder struct {
	BaseCallback
	Epochs []EpochStats
}

func (c *StatsRecorder) OnTrainBegin(n *Network) {
	c.Epochs = c.Epochs[:0]
}

func (c *StatsRecorder) OnEpochEnd(epoch int, stats EpochStats, n *Network) {
	c.Epochs = append(c.Epochs, stats)
}
