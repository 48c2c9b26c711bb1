package net

// HistorySuffix is appended to the training name to form the history key.
const HistorySuffix = "_history"

// History is the per-sample training trace read by visualization clients.
// It grows with epochs x samples x parameters.
type History struct {
	MetaData Metadata   `json:"metaData"`
	Epochs   [][]Record `json:"epochs"`
}

// Record is the state captured after one sample's update.
type Record struct {
	Input []float64  `json:"input"`
	Data  RecordData `json:"data"`
}

// RecordData holds the targets, outputs and post-update parameters of a Record.
type RecordData struct {
	// The misspelt key is the one visualization clients read.
	Targets   []float64     `json:"targents"`
	Outputs   []float64     `json:"outputs"`
	Errors    [][]float64   `json:"errors"`
	Weights   [][][]float64 `json:"weights"`
	Biases    [][]float64   `json:"biases"`
	Gradients [][]float64   `json:"gradients"`
}

// History returns the recorded training history. It is empty unless
// recording was enabled while training.
func (n *Network) History() *History {
	return n.history
}

// ResetHistory drops every recorded epoch.
func (n *Network) ResetHistory() {
	n.history = &History{MetaData: n.Metadata()}
}

// HistoryKey returns the key the history is saved under.
func (n *Network) HistoryKey() string {
	return n.trainingName + HistorySuffix
}

// SaveHistory writes the recorded history under HistoryKey.
func (n *Network) SaveHistory() error {
	n.history.MetaData = n.persistedMetadata()
	if err := n.store.Save(n.HistoryKey(), n.history); err != nil {
		return err
	}
	n.log("training history saved", "key", n.HistoryKey(), "epochs", len(n.history.Epochs))
	return nil
}

// LoadHistory reads a saved history for the current training name.
func (n *Network) LoadHistory() (*History, bool, error) {
	var h History
	found, err := n.store.Load(n.HistoryKey(), &h)
	if err != nil || !found {
		return nil, found, err
	}
	return &h, true, nil
}
