// Package datasets provides the logic-gate truth tables used to train and
// check small networks.
package datasets

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/FlavioCFOliveira/backprop/internal/net"
)

func table(rows ...[]float64) []net.Sample {
	samples := make([]net.Sample, len(rows))
	for i, r := range rows {
		samples[i] = net.Sample{Inputs: r[:len(r)-1 : len(r)-1], Targets: r[len(r)-1:]}
	}
	return samples
}

// AND returns the two-input AND truth table.
func AND() []net.Sample {
	return table([]float64{0, 0, 0}, []float64{0, 1, 0}, []float64{1, 0, 0}, []float64{1, 1, 1})
}

// OR returns the two-input OR truth table.
func OR() []net.Sample {
	return table([]float64{0, 0, 0}, []float64{0, 1, 1}, []float64{1, 0, 1}, []float64{1, 1, 1})
}

// XOR returns the two-input XOR truth table.
func XOR() []net.Sample {
	return table([]float64{0, 0, 0}, []float64{0, 1, 1}, []float64{1, 0, 1}, []float64{1, 1, 0})
}

// NAND returns the two-input NAND truth table.
func NAND() []net.Sample {
	return table([]float64{0, 0, 1}, []float64{0, 1, 1}, []float64{1, 0, 1}, []float64{1, 1, 0})
}

// NOR returns the two-input NOR truth table.
func NOR() []net.Sample {
	return table([]float64{0, 0, 1}, []float64{0, 1, 0}, []float64{1, 0, 0}, []float64{1, 1, 0})
}

// XNOR returns the two-input XNOR truth table.
func XNOR() []net.Sample {
	return table([]float64{0, 0, 1}, []float64{0, 1, 0}, []float64{1, 0, 0}, []float64{1, 1, 1})
}

// NOT returns the one-input NOT truth table.
func NOT() []net.Sample {
	return table([]float64{0, 1}, []float64{1, 0})
}

var tables = map[string]func() []net.Sample{
	"AND":  AND,
	"OR":   OR,
	"XOR":  XOR,
	"NAND": NAND,
	"NOR":  NOR,
	"XNOR": XNOR,
	"NOT":  NOT,
}

// ByName returns a fresh copy of the named truth table. Names are case-insensitive.
func ByName(name string) ([]net.Sample, error) {
	fn, ok := tables[strings.ToUpper(name)]
	if !ok {
		return nil, errors.Errorf("unknown dataset %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return fn(), nil
}

// Names lists the available truth tables.
func Names() []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TrainingName returns the persistence key used for a dataset, e.g. "XOR_TRAINING".
func TrainingName(dataset string) string {
	return strings.ToUpper(dataset) + "_TRAINING"
}
