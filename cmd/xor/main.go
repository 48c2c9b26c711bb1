package main

import (
	"fmt"
	"math"
	"os"

	"github.com/FlavioCFOliveira/backprop/internal/activations"
	"github.com/FlavioCFOliveira/backprop/internal/datasets"
	"github.com/FlavioCFOliveira/backprop/internal/net"
	"github.com/FlavioCFOliveira/backprop/internal/storage"
)

func main() {
	fmt.Println("=== XOR Training Example ===")

	// XOR is not linearly separable: it needs at least one hidden layer
	sizes := []int{2, 3, 1}
	dir := "./training"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	fmt.Printf("Network architecture: %v\n", sizes)
	fmt.Println("Activation function: Sigmoid")
	fmt.Println("Learning rate: 0.15, error threshold: 0.001")

	cfg := net.Config{
		Sizes:          sizes,
		LearningRate:   0.15,
		Epochs:         10000,
		Activation:     activations.Sigmoid{},
		ErrorThreshold: 0.001,
		TrainingName:   datasets.TrainingName("XOR"),
		Store:          storage.NewFileStore(dir),
		Callbacks:      []net.Callback{net.Logger{Interval: 1000}},
	}
	network, err := net.New(cfg)
	if err != nil {
		fmt.Printf("Error creating network: %v\n", err)
		os.Exit(1)
	}

	trainData := datasets.XOR()
	if err := network.Train(trainData); err != nil {
		fmt.Printf("Error training network: %v\n", err)
		os.Exit(1)
	}

	// Test the network
	fmt.Println("\nTesting trained network:")
	for _, s := range trainData {
		pred, _ := network.Predict(s.Inputs)
		fmt.Printf("Input: %v, Predicted: %.4f, Target: %v\n", s.Inputs, pred[0], s.Targets[0])
	}

	// Save the trained network
	fmt.Printf("\nSaving network to %s...\n", dir)
	if err := network.SaveTraining(); err != nil {
		fmt.Printf("Error saving network: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Network saved successfully!")

	// Load into a fresh network with the same topology
	fmt.Println("Loading network from disk...")
	loaded, err := net.New(cfg)
	if err != nil {
		fmt.Printf("Error creating network: %v\n", err)
		os.Exit(1)
	}
	ok, err := loaded.LoadTraining()
	if err != nil || !ok {
		fmt.Printf("Error loading network: found=%v err=%v\n", ok, err)
		os.Exit(1)
	}
	fmt.Println("Network loaded successfully!")

	// Verify loaded network produces same predictions
	fmt.Println("\nVerifying loaded network:")
	allMatch := true
	for _, s := range trainData {
		originalPred, _ := network.Predict(s.Inputs)
		loadedPred, _ := loaded.Predict(s.Inputs)
		match := "OK"
		if math.Abs(originalPred[0]-loadedPred[0]) > 1e-12 {
			match = "MISMATCH"
			allMatch = false
		}
		fmt.Printf("Input: %v, Original: %.4f, Loaded: %.4f [%s]\n",
			s.Inputs, originalPred[0], loadedPred[0], match)
	}

	if allMatch {
		fmt.Println("\nSUCCESS: All predictions match between original and loaded network!")
	} else {
		fmt.Println("\nFAILURE: Predictions differ between original and loaded network!")
		os.Exit(1)
	}
}
