// Command logic trains, reloads and checks logic-gate networks.
//
//	logic train   -datasets AND,OR,XOR
//	logic predict -datasets XOR -input 1,0
//	logic eval    -datasets NAND
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/FlavioCFOliveira/backprop/internal/config"
	"github.com/FlavioCFOliveira/backprop/internal/datasets"
	"github.com/FlavioCFOliveira/backprop/internal/net"
)

type options struct {
	configPath string
	names      string
	csvPath    string
	csvTargets int
	dir        string
	input      string
	logCSV     string
	history    bool
	verbose    bool
	seed       int64
	every      int
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd := os.Args[1]

	var opts options
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	fs.StringVar(&opts.configPath, "config", "", "YAML run file")
	fs.StringVar(&opts.names, "datasets", "AND,OR,XOR", "comma separated truth tables: "+strings.Join(datasets.Names(), ","))
	fs.StringVar(&opts.csvPath, "csv", "", "train on a CSV file instead of truth tables (name is the file base name)")
	fs.IntVar(&opts.csvTargets, "targets", 1, "number of target columns at the end of each CSV row")
	fs.StringVar(&opts.dir, "dir", "", "storage directory (overrides config)")
	fs.StringVar(&opts.input, "input", "", "comma separated input to predict; default predicts every row")
	fs.StringVar(&opts.logCSV, "log-csv", "", "write per-epoch error to this CSV file")
	fs.BoolVar(&opts.history, "history", false, "record and save the training history")
	fs.BoolVar(&opts.verbose, "v", false, "log network events to stderr")
	fs.Int64Var(&opts.seed, "seed", 0, "weight initialization seed (0 uses the clock)")
	fs.IntVar(&opts.every, "every", 0, "log progress every N epochs")
	fs.Parse(os.Args[2:])

	if err := run(cmd, opts); err != nil {
		fmt.Fprintf(os.Stderr, "logic %s: %v\n", cmd, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: logic <train|predict|eval> [flags]")
}

type job struct {
	name    string
	samples []net.Sample
}

func run(cmd string, opts options) error {
	rc := config.Default()
	if opts.configPath != "" {
		var err error
		if rc, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}
	if opts.dir != "" {
		rc.StorageDir = opts.dir
	}
	if opts.seed != 0 {
		rc.Seed = opts.seed
	}
	if opts.history {
		rc.RecordHistory = true
	}
	if opts.verbose {
		rc.ShowLogs = true
	}

	level := slog.LevelInfo
	if rc.ShowLogs {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	jobs, err := loadJobs(opts)
	if err != nil {
		return err
	}
	if len(jobs) != 1 {
		// one training name per dataset
		rc.TrainingName = ""
	}

	for _, j := range jobs {
		n, err := newNetwork(rc, j, opts, logger)
		if err != nil {
			return err
		}
		switch cmd {
		case "train":
			err = train(n, j)
		case "predict":
			err = predict(n, j, opts.input)
		case "eval":
			err = eval(n, j)
		default:
			usage()
			return errors.Errorf("unknown command %q", cmd)
		}
		if err != nil {
			return errors.WithMessage(err, j.name)
		}
	}
	return nil
}

func loadJobs(opts options) ([]job, error) {
	if opts.csvPath != "" {
		samples, err := datasets.LoadCSV(opts.csvPath, opts.csvTargets, false)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(opts.csvPath), ".csv")
		return []job{{name: name, samples: samples}}, nil
	}

	var jobs []job
	for _, name := range strings.Split(opts.names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		samples, err := datasets.ByName(name)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job{name: strings.ToUpper(name), samples: samples})
	}
	return jobs, nil
}

// newNetwork sizes the input and output layers to the job's samples.
// The training name defaults to "<NAME>_TRAINING".
func newNetwork(rc config.Run, j job, opts options, logger *slog.Logger) (*net.Network, error) {
	if len(j.samples) > 0 && len(rc.Sizes) >= 2 {
		sizes := append([]int(nil), rc.Sizes...)
		sizes[0] = len(j.samples[0].Inputs)
		sizes[len(sizes)-1] = len(j.samples[0].Targets)
		rc.Sizes = sizes
	}
	if rc.TrainingName == "" {
		rc.TrainingName = datasets.TrainingName(j.name)
	}

	cfg, err := rc.NetworkConfig(logger)
	if err != nil {
		return nil, err
	}
	if opts.every > 0 {
		cfg.Callbacks = append(cfg.Callbacks, net.Logger{Interval: opts.every, Log: logger.With("dataset", j.name)})
	}
	if opts.logCSV != "" {
		cfg.Callbacks = append(cfg.Callbacks, net.NewCSVLogger(opts.logCSV, true))
	}
	return net.New(cfg)
}

func train(n *net.Network, j job) error {
	start := time.Now()
	fmt.Printf("Training %s (%v, %d epochs) started at %s\n",
		n.TrainingName(), n.Sizes(), n.Epochs(), start.Format(time.DateTime))
	if err := n.Train(j.samples); err != nil {
		return err
	}
	fmt.Printf("Total time: %.3f seconds\n", totalTime(start))
	if err := n.SaveTraining(); err != nil {
		return err
	}
	return report(n, j.samples)
}

func predict(n *net.Network, j job, input string) error {
	ok, err := n.LoadTraining()
	if err != nil {
		return err
	}
	if !ok {
		return errors.Errorf("no saved training %q, run train first", n.TrainingName())
	}
	if input == "" {
		return report(n, j.samples)
	}

	x, err := parseInput(input)
	if err != nil {
		return err
	}
	start := time.Now()
	out, err := n.Predict(x)
	if err != nil {
		return err
	}
	fmt.Printf("Input: %v Result: %v\n", x, out)
	fmt.Printf("Total time: %.6f seconds\n", totalTime(start))
	return nil
}

func eval(n *net.Network, j job) error {
	before, err := n.MeanAbsError(j.samples)
	if err != nil {
		return err
	}
	if err := n.Train(j.samples); err != nil {
		return err
	}
	after, err := n.MeanAbsError(j.samples)
	if err != nil {
		return err
	}
	worst, err := n.MaxAbsError(j.samples)
	if err != nil {
		return err
	}
	fmt.Printf("%s: mean abs error %.4f -> %.4f, max abs error %.4f\n", j.name, before, after, worst)
	return nil
}

func report(n *net.Network, samples []net.Sample) error {
	preds, err := n.Report(samples)
	if err != nil {
		return err
	}
	fmt.Printf("\nTesting of %s:\n", n.TrainingName())
	for _, p := range preds {
		fmt.Printf("Inputs: %v Output: %v\n", p.Inputs, round2(p.Outputs))
	}
	return nil
}

func parseInput(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	x := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "input %d", i)
		}
		x[i] = v
	}
	return x, nil
}

func round2(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i], _ = strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	}
	return out
}

// totalTime returns the seconds elapsed since start.
func totalTime(start time.Time) float64 {
	return time.Since(start).Seconds()
}
