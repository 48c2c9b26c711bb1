package datasets

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/FlavioCFOliveira/backprop/internal/net"
)

// LoadCSV loads samples from a CSV file. The last numTargets columns of every
// row are targets and the others are inputs. hasHeader skips the first line.
func LoadCSV(filename string, numTargets int, hasHeader bool) ([]net.Sample, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return ReadCSV(file, numTargets, hasHeader)
}

// ReadCSV reads samples in the LoadCSV layout from r.
func ReadCSV(r io.Reader, numTargets int, hasHeader bool) ([]net.Sample, error) {
	if numTargets <= 0 {
		return nil, errors.Errorf("numTargets must be positive, got %d", numTargets)
	}

	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read csv")
	}

	startRow := 0
	if hasHeader {
		startRow = 1
	}
	if len(records) <= startRow {
		return nil, errors.New("csv file has no data rows")
	}

	numCols := len(records[startRow])
	if numCols <= numTargets {
		return nil, errors.Errorf("csv has %d columns, need more than %d target columns", numCols, numTargets)
	}

	samples := make([]net.Sample, 0, len(records)-startRow)
	for i := startRow; i < len(records); i++ {
		record := records[i]
		if len(record) != numCols {
			return nil, errors.Errorf("inconsistent number of columns at row %d", i)
		}

		row := make([]float64, numCols)
		for j, valStr := range record {
			val, err := strconv.ParseFloat(valStr, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse value at row %d, col %d", i, j)
			}
			row[j] = val
		}

		split := numCols - numTargets
		samples = append(samples, net.Sample{
			Inputs:  row[:split:split],
			Targets: row[split:],
		})
	}

	return samples, nil
}
